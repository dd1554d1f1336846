package domain

// Progress phases reported by the external collaborator. "finished" means the
// primary transfer is complete; postprocessing (merging, transcoding,
// embedding) may still be running.
const (
	PhaseDownloading = "downloading"
	PhaseFinished    = "finished"
)

// ProgressEvent is one callback-delivered update from the collaborator.
// Speed is bytes per second, 0 when unknown. ETASeconds is -1 when unknown.
type ProgressEvent struct {
	Phase           string
	DownloadedBytes int64
	TotalBytes      int64
	Speed           float64
	ETASeconds      int
	Filename        string
}
