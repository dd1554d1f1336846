package domain

import "errors"

// ErrEmptyURL indicates a submission or probe with no URL
var ErrEmptyURL = errors.New("URL cannot be empty")

// ErrInvalidMode indicates a submission with a mode other than video/audio
var ErrInvalidMode = errors.New("mode must be 'video' or 'audio'")

// ErrTaskNotFound indicates a poll for an id the registry has never seen
var ErrTaskNotFound = errors.New("task not found")

// ErrPathEscape indicates a filename that resolves outside the download directory
var ErrPathEscape = errors.New("path resolves outside the download directory")
