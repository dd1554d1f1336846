// Package engine runs accepted fetch jobs on a bounded pool of background
// workers and drives the task registry through the progress translator.
package engine

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/segmentio/ksuid"
	"golang.org/x/sync/semaphore"

	"github.com/tubegrab/tubegrab/internal/app"
	"github.com/tubegrab/tubegrab/internal/domain"
	"github.com/tubegrab/tubegrab/internal/progress"
)

// Dispatcher hands accepted jobs to background workers. The pool size is the
// only concurrency knob in the system: at most MaxWorkers fetches execute at
// once, excess submissions simply wait for a free worker. Submission itself
// never blocks and there is no queue visibility.
type Dispatcher struct {
	ctx *app.Context
	sem *semaphore.Weighted
	wg  sync.WaitGroup
}

func NewDispatcher(appCtx *app.Context) *Dispatcher {
	workers := appCtx.Config.Download.MaxWorkers
	if workers <= 0 {
		workers = 3
	}
	return &Dispatcher{
		ctx: appCtx,
		sem: semaphore.NewWeighted(int64(workers)),
	}
}

// Submit registers a new pending task and hands the job to the pool. The
// registry entry is committed before Submit returns, so a poll immediately
// after submission never misses it.
func (d *Dispatcher) Submit(req domain.FetchRequest) string {
	id := ksuid.New().String()
	d.ctx.Tasks.Set(id, domain.NewPendingTask(id))

	d.wg.Add(1)
	go d.run(id, req)

	return id
}

// Wait blocks until every in-flight job has reached a terminal state. Used
// on shutdown; jobs are never cancelled mid-flight.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) run(id string, req domain.FetchRequest) {
	defer d.wg.Done()

	ctx := context.Background()
	if err := d.sem.Acquire(ctx, 1); err != nil {
		d.fail(id, err)
		return
	}
	defer d.sem.Release(1)

	started := time.Now()
	d.ctx.Logger.Info("Task %s: starting fetch for %s", id, req.URL)

	err := d.ctx.Fetcher.Fetch(ctx, req, func(ev domain.ProgressEvent) {
		// Single writer per task: this callback runs inside the worker's
		// call stack, so registry writes for one task are strictly ordered.
		prev, _ := d.ctx.Tasks.Get(id)
		if next, ok := progress.Translate(prev, ev); ok {
			d.ctx.Tasks.Set(id, next)
		}
	})
	if err != nil {
		d.fail(id, err)
		return
	}

	d.finish(id, time.Since(started))
}

// finish resolves the produced artifact, hands it to retention, and commits
// the terminal record. Finding no artifact is degraded success, not an error.
func (d *Dispatcher) finish(id string, elapsed time.Duration) {
	outDir := d.ctx.Config.Download.OutDir

	name, size, err := latestArtifact(outDir)
	if err != nil {
		d.fail(id, err)
		return
	}

	done := domain.Task{ID: id, Status: domain.StatusDone, Progress: 100}

	if name != "" {
		done.Filename = name
		d.ctx.History.Record(name, size)
		d.ctx.Janitor.Schedule(filepath.Join(outDir, name))
		d.ctx.Logger.Info("Task %s: done in %s, artifact %s (%s)",
			id, elapsed.Truncate(time.Millisecond), name, domain.FormatBytes(size))
	} else {
		d.ctx.Logger.Warn("Task %s: fetch succeeded but no artifact found in %s", id, outDir)
	}

	d.ctx.Tasks.Set(id, done)
}

func (d *Dispatcher) fail(id string, err error) {
	d.ctx.Logger.Error("Task %s: %v", id, err)
	d.ctx.Tasks.Set(id, domain.Task{
		ID:     id,
		Status: domain.StatusError,
		Error:  err.Error(),
	})
}
