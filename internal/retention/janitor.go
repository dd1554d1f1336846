package retention

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tubegrab/tubegrab/internal/infra/logger"
)

// Janitor removes artifacts from disk once their retention window elapses.
// Deletion is best-effort: a file that is already gone, or that cannot be
// removed, is logged and forgotten. A scheduled deletion can be cancelled
// when a client deletes the file first.
type Janitor struct {
	mu     sync.Mutex
	delay  time.Duration
	log    *logger.Logger
	timers map[string]*time.Timer

	afterFunc func(time.Duration, func()) *time.Timer // swapped in tests
}

func NewJanitor(delay time.Duration, log *logger.Logger) *Janitor {
	return &Janitor{
		delay:     delay,
		log:       log,
		timers:    make(map[string]*time.Timer),
		afterFunc: time.AfterFunc,
	}
}

// Delay returns the configured retention window.
func (j *Janitor) Delay() time.Duration {
	return j.delay
}

// Schedule arranges for path to be removed after the retention window,
// without blocking the caller. Re-scheduling the same path resets its timer.
func (j *Janitor) Schedule(path string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if t, ok := j.timers[path]; ok {
		t.Stop()
	}
	j.timers[path] = j.afterFunc(j.delay, func() {
		j.expire(path)
	})
}

// Cancel stops a pending deletion and reports whether one was scheduled.
func (j *Janitor) Cancel(path string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	t, ok := j.timers[path]
	if !ok {
		return false
	}
	delete(j.timers, path)
	return t.Stop()
}

func (j *Janitor) expire(path string) {
	j.mu.Lock()
	delete(j.timers, path)
	j.mu.Unlock()

	err := os.Remove(path)
	switch {
	case err == nil:
		j.log.Info("[cleanup] Auto-deleted: %s", filepath.Base(path))
	case os.IsNotExist(err):
		j.log.Debug("[cleanup] Already gone: %s", filepath.Base(path))
	default:
		j.log.Warn("[cleanup] Failed to delete %s: %v", filepath.Base(path), err)
	}
}
