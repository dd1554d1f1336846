package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tubegrab/tubegrab/internal/app"
	"github.com/tubegrab/tubegrab/internal/domain"
	"github.com/tubegrab/tubegrab/internal/fetcher"
	"github.com/tubegrab/tubegrab/internal/infra/config"
	"github.com/tubegrab/tubegrab/internal/infra/logger"
)

func newTestContext(t *testing.T, workers int) *app.Context {
	t.Helper()

	log, err := logger.New(filepath.Join(t.TempDir(), "test.log"), logger.LevelError, false)
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	cfg := &config.Config{
		Host: "127.0.0.1",
		Port: "0",
		Download: config.DownloadConfig{
			OutDir:            t.TempDir(),
			MaxWorkers:        workers,
			AutoDeleteSeconds: 300,
			HistoryLimit:      100,
		},
	}

	return app.NewContext(cfg, log)
}

func TestSubmitCommitsPendingBeforeReturning(t *testing.T) {
	appCtx := newTestContext(t, 1)

	release := make(chan struct{})
	appCtx.Fetcher = &fetcher.Mock{
		FetchFunc: func(ctx context.Context, req domain.FetchRequest, onEvent func(domain.ProgressEvent)) error {
			<-release
			return nil
		},
	}

	d := NewDispatcher(appCtx)
	id := d.Submit(domain.FetchRequest{URL: "https://example.com/v"})

	task, ok := appCtx.Tasks.Get(id)
	if !ok {
		t.Fatal("task not visible immediately after Submit")
	}
	if task.Status != domain.StatusPending && task.Status != domain.StatusDownloading {
		t.Errorf("status = %s, want pending (or already running)", task.Status)
	}

	close(release)
	d.Wait()
}

func TestSuccessfulFetchRecordsArtifact(t *testing.T) {
	appCtx := newTestContext(t, 1)
	outDir := appCtx.Config.Download.OutDir

	appCtx.Fetcher = &fetcher.Mock{
		FetchFunc: func(ctx context.Context, req domain.FetchRequest, onEvent func(domain.ProgressEvent)) error {
			onEvent(domain.ProgressEvent{
				Phase:           domain.PhaseDownloading,
				DownloadedBytes: 50,
				TotalBytes:      100,
				ETASeconds:      -1,
				Filename:        "clip.mp4",
			})
			if err := os.WriteFile(filepath.Join(outDir, "clip.mp4"), []byte("data"), 0644); err != nil {
				return err
			}
			onEvent(domain.ProgressEvent{Phase: domain.PhaseFinished, Filename: "clip.mp4"})
			return nil
		},
	}

	d := NewDispatcher(appCtx)
	id := d.Submit(domain.FetchRequest{URL: "https://example.com/v"})
	d.Wait()

	task, _ := appCtx.Tasks.Get(id)
	if task.Status != domain.StatusDone {
		t.Fatalf("status = %s (%s), want done", task.Status, task.Error)
	}
	if task.Progress != 100 {
		t.Errorf("progress = %v, want 100", task.Progress)
	}
	if task.Filename != "clip.mp4" {
		t.Errorf("filename = %q, want clip.mp4", task.Filename)
	}

	entries := appCtx.History.Entries()
	if len(entries) != 1 || entries[0].Filename != "clip.mp4" {
		t.Errorf("history = %+v, want one entry for clip.mp4", entries)
	}
	if !appCtx.Janitor.Cancel(filepath.Join(outDir, "clip.mp4")) {
		t.Error("expected a pending auto-deletion for the artifact")
	}
}

func TestSuccessWithoutArtifactIsStillDone(t *testing.T) {
	appCtx := newTestContext(t, 1)
	appCtx.Fetcher = &fetcher.Mock{} // succeeds, writes nothing

	d := NewDispatcher(appCtx)
	id := d.Submit(domain.FetchRequest{URL: "https://example.com/v"})
	d.Wait()

	task, _ := appCtx.Tasks.Get(id)
	if task.Status != domain.StatusDone || task.Progress != 100 {
		t.Errorf("record = %+v, want done/100 even without an artifact", task)
	}
	if task.Filename != "" {
		t.Errorf("filename = %q, want empty", task.Filename)
	}
	if appCtx.History.Len() != 0 {
		t.Error("no artifact should mean no history entry")
	}
}

func TestFailedFetchKeepsMessageVerbatim(t *testing.T) {
	appCtx := newTestContext(t, 1)
	appCtx.Fetcher = &fetcher.Mock{
		FetchFunc: func(ctx context.Context, req domain.FetchRequest, onEvent func(domain.ProgressEvent)) error {
			return errors.New("ERROR: [youtube] abc: Video unavailable")
		},
	}

	d := NewDispatcher(appCtx)
	id := d.Submit(domain.FetchRequest{URL: "https://example.com/v"})
	d.Wait()

	task, _ := appCtx.Tasks.Get(id)
	if task.Status != domain.StatusError {
		t.Fatalf("status = %s, want error", task.Status)
	}
	if task.Error != "ERROR: [youtube] abc: Video unavailable" {
		t.Errorf("error = %q, want collaborator message verbatim", task.Error)
	}
}

func TestPoolBoundsConcurrency(t *testing.T) {
	appCtx := newTestContext(t, 1)

	var current, peak atomic.Int32
	appCtx.Fetcher = &fetcher.Mock{
		FetchFunc: func(ctx context.Context, req domain.FetchRequest, onEvent func(domain.ProgressEvent)) error {
			n := current.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			defer current.Add(-1)
			time.Sleep(2 * time.Millisecond)
			return nil
		},
	}

	d := NewDispatcher(appCtx)
	for i := 0; i < 8; i++ {
		d.Submit(domain.FetchRequest{URL: "https://example.com/v"})
	}
	d.Wait()

	if peak.Load() > 1 {
		t.Errorf("peak concurrency = %d, want 1 with a single worker", peak.Load())
	}
	if appCtx.Tasks.Len() != 8 {
		t.Errorf("tracked tasks = %d, want 8", appCtx.Tasks.Len())
	}
}

func TestLatestArtifactSkipsTransientFiles(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"video.mp4.part", "video.ytdl", "seg.aria2"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	name, _, err := latestArtifact(dir)
	if err != nil {
		t.Fatal(err)
	}
	if name != "" {
		t.Errorf("picked %q, want nothing among transient files", name)
	}

	if err := os.WriteFile(filepath.Join(dir, "video.mp4"), []byte("xyz"), 0644); err != nil {
		t.Fatal(err)
	}

	name, size, err := latestArtifact(dir)
	if err != nil {
		t.Fatal(err)
	}
	if name != "video.mp4" || size != 3 {
		t.Errorf("got %q (%d bytes), want video.mp4 (3 bytes)", name, size)
	}
}

func TestLatestArtifactEmptyDir(t *testing.T) {
	name, size, err := latestArtifact(t.TempDir())
	if err != nil || name != "" || size != 0 {
		t.Errorf("got (%q, %d, %v), want empty result without error", name, size, err)
	}
}
