package fetcher

import (
	"fmt"
	"strings"

	"github.com/tubegrab/tubegrab/internal/domain"
)

// Recognized quality values, including the "p"-suffixed spellings clients
// send. Anything else falls back to best available.
var qualityAliases = map[string]string{
	"best": "best",
	"1080": "1080", "1080p": "1080",
	"720": "720", "720p": "720",
	"480": "480", "480p": "480",
	"360": "360", "360p": "360",
	"270": "270", "270p": "270",
	"144": "144", "144p": "144",
}

// NormalizeQuality maps a client-supplied quality onto a supported height cap.
func NormalizeQuality(q string) string {
	if v, ok := qualityAliases[strings.ToLower(strings.TrimSpace(q))]; ok {
		return v
	}
	return "best"
}

// NormalizeAudioFormat maps a client-supplied audio format onto mp3 or m4a.
func NormalizeAudioFormat(f string) string {
	if strings.ToLower(strings.TrimSpace(f)) == "mp3" {
		return "mp3"
	}
	return "m4a"
}

// FormatSelector builds the yt-dlp format selection string for a mode and
// quality. Audio mode ignores quality entirely.
func FormatSelector(mode, quality string) string {
	if mode == domain.ModeAudio {
		return "bestaudio/best"
	}

	switch q := NormalizeQuality(quality); q {
	case "1080", "720":
		return fmt.Sprintf("bestvideo[height<=%s]+bestaudio/best", q)
	case "480", "360", "270", "144":
		return fmt.Sprintf("bestvideo[height<=%s]+bestaudio/best[height<=%s]/best", q, q)
	default:
		return "bestvideo+bestaudio/best"
	}
}

// IsPlaylistURL reports whether a URL addresses a playlist rather than a
// single item.
func IsPlaylistURL(url string) bool {
	return strings.Contains(strings.ToLower(url), "list=")
}

// OutputTemplate returns the yt-dlp output template for single or playlist
// downloads.
func OutputTemplate(playlist bool) string {
	if playlist {
		return "%(playlist_index)03d - %(title)s.%(ext)s"
	}
	return "%(title)s.%(ext)s"
}
