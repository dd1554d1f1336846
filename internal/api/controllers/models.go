package controllers

import "github.com/tubegrab/tubegrab/internal/domain"

// -- VALIDATE --
type ValidateRequest struct {
	URL string `json:"url"`
}

type ValidateResponse struct {
	Valid bool              `json:"valid"`
	Info  *domain.MediaInfo `json:"info,omitempty"`
	Error string            `json:"error,omitempty"`
}

// -- DOWNLOAD --
type DownloadRequest struct {
	URL         string `json:"url"`
	Mode        string `json:"mode"`
	Quality     string `json:"quality"`
	AudioFormat string `json:"audio_format"`
}

type DownloadResponse struct {
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
}

// -- MISC --
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
