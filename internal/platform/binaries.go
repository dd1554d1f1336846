package platform

import (
	"fmt"
	"os/exec"
)

// RequiredBinaries lists external system binaries the app needs to function
var RequiredBinaries = []string{
	"yt-dlp",
}

// Optional helpers: without ffmpeg, merged video+audio formats and mp3
// transcoding are unavailable and yt-dlp falls back to single-stream formats.
var OptionalBinaries = map[string]string{
	"ffmpeg":  "stream merging and audio transcoding",
	"ffprobe": "media inspection",
}

func ValidateDependencies() error {
	for _, bin := range RequiredBinaries {
		_, err := exec.LookPath(bin)
		if err != nil {
			return fmt.Errorf("required dependency: '%s' not found in PATH", bin)
		}
	}

	// Check optional helpers
	for bin, purpose := range OptionalBinaries {
		if _, err := exec.LookPath(bin); err != nil {
			fmt.Printf("Info: %s not found. %s will be limited.\n", bin, purpose)
		}
	}

	return nil
}
