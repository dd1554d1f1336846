package domain

// Status is the lifecycle state of a fetch task.
type Status string

const (
	StatusPending     Status = "pending"
	StatusDownloading Status = "downloading"
	StatusProcessing  Status = "processing" // transfer done, postprocessing (merge/transcode) still running
	StatusDone        Status = "done"
	StatusError       Status = "error"
)

// Terminal reports whether no further transitions can happen.
func (s Status) Terminal() bool {
	return s == StatusDone || s == StatusError
}

// Task represents one submitted fetch job and its mutable status record.
// The record is mutated only by the worker executing the job; everyone else
// reads it through the registry. Speed and ETA are present only while
// downloading, Filename once an artifact name is known, Error only on failure.
type Task struct {
	ID       string  `json:"task_id"`
	Status   Status  `json:"status"`
	Progress float64 `json:"progress"`
	Speed    string  `json:"speed,omitempty"`
	ETA      string  `json:"eta,omitempty"`
	Filename string  `json:"filename,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// NewPendingTask returns the record every accepted job starts from.
func NewPendingTask(id string) Task {
	return Task{ID: id, Status: StatusPending}
}
