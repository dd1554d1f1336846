package app

import (
	"context"

	"github.com/tubegrab/tubegrab/internal/domain"
	"github.com/tubegrab/tubegrab/internal/infra/config"
	"github.com/tubegrab/tubegrab/internal/infra/logger"
	"github.com/tubegrab/tubegrab/internal/registry"
	"github.com/tubegrab/tubegrab/internal/retention"
)

// Fetcher is the external collaborator all media-specific work is delegated
// to. Probe resolves metadata for a URL; Fetch downloads it, reporting raw
// progress through the callback from within its own call stack.
type Fetcher interface {
	Probe(ctx context.Context, url string) (domain.MediaInfo, error)
	Fetch(ctx context.Context, req domain.FetchRequest, onEvent func(domain.ProgressEvent)) error
}

// Context holds the core environment and shared resources for tubegrab.
// It acts as the "Single Source of Truth" for the application state and is
// threaded explicitly through every entry point (no process-wide singletons).
type Context struct {
	Config *config.Config
	Logger *logger.Logger

	Fetcher Fetcher

	Tasks   *registry.Registry
	History *retention.Log
	Janitor *retention.Janitor
}

// NewContext initializes the base environment with empty task and history
// state. The Fetcher is wired by the caller.
func NewContext(cfg *config.Config, log *logger.Logger) *Context {
	return &Context{
		Config:  cfg,
		Logger:  log,
		Tasks:   registry.New(),
		History: retention.NewLog(cfg.Download.HistoryLimit),
		Janitor: retention.NewJanitor(cfg.AutoDeleteDelay(), log),
	}
}
