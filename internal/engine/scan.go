package engine

import (
	"os"
	"strings"
	"time"
)

// Transient files yt-dlp leaves behind mid-download; never a finished artifact.
var transientSuffixes = []string{".part", ".ytdl", ".aria2"}

// latestArtifact returns the most recently modified regular file in dir and
// its size. An empty directory yields an empty name without error.
//
// This is a heuristic, not a precise handle: with several jobs completing in
// the same directory at the same instant, the scan can pick up a neighbor's
// file. The collaborator does not report the resolved output path for every
// postprocessing chain, so the mtime scan stays as the deliberate trade-off.
func latestArtifact(dir string) (string, int64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", 0, err
	}

	var (
		name    string
		size    int64
		modTime time.Time
	)

	for _, entry := range entries {
		if entry.IsDir() || isTransient(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if name == "" || info.ModTime().After(modTime) {
			name = entry.Name()
			size = info.Size()
			modTime = info.ModTime()
		}
	}

	return name, size, nil
}

func isTransient(name string) bool {
	for _, suffix := range transientSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
