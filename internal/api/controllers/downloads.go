package controllers

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v5"

	"github.com/tubegrab/tubegrab/internal/app"
	"github.com/tubegrab/tubegrab/internal/domain"
	"github.com/tubegrab/tubegrab/internal/engine"
	"github.com/tubegrab/tubegrab/internal/fetcher"
)

// DownloadController maps the HTTP surface onto the task subsystem.
type DownloadController struct {
	App        *app.Context
	Dispatcher *engine.Dispatcher
}

// HandleValidate probes a URL for metadata. Probe failures are never surfaced
// as server errors; they come back as {valid:false, error} so the client can
// show them inline.
func (ctrl *DownloadController) HandleValidate(c *echo.Context) error {
	var req ValidateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	rawURL := strings.TrimSpace(req.URL)
	if rawURL == "" {
		return c.JSON(http.StatusOK, ValidateResponse{Valid: false, Error: domain.ErrEmptyURL.Error()})
	}

	info, err := ctrl.App.Fetcher.Probe(c.Request().Context(), rawURL)
	if err != nil {
		return c.JSON(http.StatusOK, ValidateResponse{Valid: false, Error: err.Error()})
	}

	return c.JSON(http.StatusOK, ValidateResponse{Valid: true, Info: &info})
}

// HandleDownload accepts a fetch job and returns its task id. The task is
// observable via the status endpoint before this handler returns.
func (ctrl *DownloadController) HandleDownload(c *echo.Context) error {
	var req DownloadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	rawURL := strings.TrimSpace(req.URL)
	if rawURL == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrEmptyURL.Error()})
	}

	if req.Mode == "" {
		req.Mode = domain.ModeVideo
	}
	if req.Mode != domain.ModeVideo && req.Mode != domain.ModeAudio {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrInvalidMode.Error()})
	}

	taskID := ctrl.Dispatcher.Submit(domain.FetchRequest{
		URL:         rawURL,
		Mode:        req.Mode,
		Quality:     req.Quality,
		AudioFormat: req.AudioFormat,
		Playlist:    fetcher.IsPlaylistURL(rawURL),
	})

	return c.JSON(http.StatusOK, DownloadResponse{TaskID: taskID, Message: "Download started"})
}

// HandleStatus returns the current task record for polling clients.
func (ctrl *DownloadController) HandleStatus(c *echo.Context) error {
	task, ok := ctrl.App.Tasks.Get(c.Param("taskId"))
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: domain.ErrTaskNotFound.Error()})
	}
	return c.JSON(http.StatusOK, task)
}

// HandleHistory lists produced artifacts, newest first, with a relative
// download URL per entry. Entries may describe files already auto-deleted.
func (ctrl *DownloadController) HandleHistory(c *echo.Context) error {
	entries := ctrl.App.History.Entries()
	for i := range entries {
		entries[i].DownloadURL = "/downloads/" + url.PathEscape(entries[i].Filename)
	}
	return c.JSON(http.StatusOK, entries)
}

// HandleHistoryDelete removes an artifact from history and from disk, and
// cancels any pending auto-deletion for it.
func (ctrl *DownloadController) HandleHistoryDelete(c *echo.Context) error {
	filename := c.Param("filename")

	path, err := ctrl.artifactPath(filename)
	if err != nil {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "Access denied"})
	}

	ctrl.App.History.Remove(filename)
	ctrl.App.Janitor.Cancel(path)

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Removed " + filename})
}

// HandleServeFile streams an artifact back to the client. A missing file is
// 410 Gone rather than 404: artifacts are auto-deleted on a timer, and the
// client should re-submit instead of retrying the same link.
func (ctrl *DownloadController) HandleServeFile(c *echo.Context) error {
	filename := c.Param("filename")

	path, err := ctrl.artifactPath(filename)
	if err != nil {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "Access denied"})
	}

	if _, err := os.Stat(path); err != nil {
		return c.JSON(http.StatusGone, ErrorResponse{Error: "File has been auto-deleted. Please re-download."})
	}

	return c.Attachment(path, filename)
}

// HandleHealth never fails.
func (ctrl *DownloadController) HandleHealth(c *echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// artifactPath resolves a client-supplied filename inside the output
// directory. Any name that resolves outside it is rejected before any
// filesystem operation happens; this is a security boundary, not a not-found
// case.
func (ctrl *DownloadController) artifactPath(filename string) (string, error) {
	if filename == "" {
		return "", domain.ErrPathEscape
	}

	root, err := filepath.Abs(ctrl.App.Config.Download.OutDir)
	if err != nil {
		return "", err
	}

	path, err := filepath.Abs(filepath.Join(root, filename))
	if err != nil {
		return "", err
	}

	if path == root || !strings.HasPrefix(path, root+string(os.PathSeparator)) {
		return "", domain.ErrPathEscape
	}

	return path, nil
}
