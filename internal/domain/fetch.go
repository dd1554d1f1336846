package domain

// Modes select what the collaborator produces.
const (
	ModeVideo = "video"
	ModeAudio = "audio"
)

// FetchRequest is the parameter bundle handed to the external collaborator
// for one job. Quality and AudioFormat are normalized by the collaborator
// adapter; unrecognized values fall back to best available.
type FetchRequest struct {
	URL         string
	Mode        string
	Quality     string
	AudioFormat string
	Playlist    bool
}

// MediaInfo is the metadata a probe resolves for a URL.
type MediaInfo struct {
	Title          string `json:"title"`
	Channel        string `json:"channel"`
	Duration       int    `json:"duration,omitempty"`
	DurationString string `json:"duration_string,omitempty"`
	Thumbnail      string `json:"thumbnail,omitempty"`
	ViewCount      int64  `json:"view_count,omitempty"`
	UploadDate     string `json:"upload_date,omitempty"`
	IsPlaylist     bool   `json:"is_playlist"`
	PlaylistCount  int    `json:"playlist_count,omitempty"`
}
