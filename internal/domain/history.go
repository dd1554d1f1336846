package domain

import "time"

// HistoryEntry records one artifact known to have been produced. It is
// independent of the task that produced it: the file may be auto-deleted from
// disk while the entry remains.
type HistoryEntry struct {
	Filename    string    `json:"filename"`
	Size        int64     `json:"size"`
	SizeHuman   string    `json:"size_human"`
	Modified    time.Time `json:"modified"`
	DownloadURL string    `json:"download_url,omitempty"`
}
