// Package retention owns what happens to artifacts after a job completes:
// the bounded history log and the deferred deletion of downloaded files.
package retention

import (
	"sync"
	"time"

	"github.com/tubegrab/tubegrab/internal/domain"
)

// DefaultHistoryLimit caps the history log when no limit is configured.
const DefaultHistoryLimit = 100

// Log is the bounded in-memory record of produced artifacts, newest first.
// Entries outlive the files they describe: an artifact may be auto-deleted
// from disk while its entry remains.
type Log struct {
	mu      sync.Mutex
	limit   int
	entries []domain.HistoryEntry

	now func() time.Time // swapped in tests
}

func NewLog(limit int) *Log {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Log{limit: limit, now: time.Now}
}

// Record inserts an entry at the front of the log, evicting the oldest entry
// once the log exceeds its cap.
func (l *Log) Record(filename string, size int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := domain.HistoryEntry{
		Filename:  filename,
		Size:      size,
		SizeHuman: domain.FormatBytes(size),
		Modified:  l.now().UTC(),
	}

	l.entries = append([]domain.HistoryEntry{entry}, l.entries...)
	if len(l.entries) > l.limit {
		l.entries = l.entries[:l.limit]
	}
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []domain.HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.HistoryEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Remove drops every entry for filename and reports whether any was present.
func (l *Log) Remove(filename string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.entries[:0]
	removed := false
	for _, e := range l.entries {
		if e.Filename == filename {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	l.entries = kept
	return removed
}

// Len returns the current number of entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
