// Package progress translates raw collaborator progress events into
// polling-friendly task records.
package progress

import (
	"math"
	"path/filepath"

	"github.com/tubegrab/tubegrab/internal/domain"
)

// Translate folds one collaborator event into the task record. The returned
// record is complete, matching the registry's full-overwrite semantics.
// Events with any other phase leave the record untouched and report false.
//
// While downloading, progress is computed from byte counters when the total
// is known, capped at 99.9 and never allowed to regress (a merged download
// restarts its counters for the second stream). 100 is reserved for terminal
// success.
func Translate(prev domain.Task, ev domain.ProgressEvent) (domain.Task, bool) {
	switch ev.Phase {
	case domain.PhaseDownloading:
		next := prev
		next.Status = domain.StatusDownloading
		if ev.TotalBytes > 0 {
			pct := float64(ev.DownloadedBytes) / float64(ev.TotalBytes) * 100
			pct = math.Round(pct*10) / 10
			if pct > 99.9 {
				pct = 99.9
			}
			if pct > next.Progress {
				next.Progress = pct
			}
		}
		next.Speed = ""
		if ev.Speed > 0 {
			next.Speed = domain.FormatBytes(int64(ev.Speed)) + "/s"
		}
		next.ETA = ""
		if ev.ETASeconds >= 0 {
			next.ETA = domain.FormatETA(ev.ETASeconds)
		}
		if ev.Filename != "" {
			next.Filename = filepath.Base(ev.Filename)
		}
		next.Error = ""
		return next, true

	case domain.PhaseFinished:
		next := prev
		next.Status = domain.StatusProcessing
		next.Progress = 99.9
		next.Speed = ""
		next.ETA = ""
		if ev.Filename != "" {
			next.Filename = filepath.Base(ev.Filename)
		}
		next.Error = ""
		return next, true

	default:
		return prev, false
	}
}
