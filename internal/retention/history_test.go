package retention

import (
	"fmt"
	"testing"
	"time"
)

func TestLogRecordNewestFirst(t *testing.T) {
	l := NewLog(10)

	l.Record("first.mp4", 100)
	l.Record("second.mp4", 200)
	l.Record("third.mp4", 300)

	entries := l.Entries()
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	if entries[0].Filename != "third.mp4" || entries[2].Filename != "first.mp4" {
		t.Errorf("order = [%s %s %s], want newest first",
			entries[0].Filename, entries[1].Filename, entries[2].Filename)
	}
	if entries[0].SizeHuman != "300 B" {
		t.Errorf("size_human = %q, want 300 B", entries[0].SizeHuman)
	}
}

func TestLogEvictsOldestAtCap(t *testing.T) {
	l := NewLog(3)

	for i := 1; i <= 5; i++ {
		l.Record(fmt.Sprintf("file%d.mp4", i), int64(i))
	}

	entries := l.Entries()
	if len(entries) != 3 {
		t.Fatalf("len = %d, want cap 3", len(entries))
	}
	if entries[0].Filename != "file5.mp4" || entries[2].Filename != "file3.mp4" {
		t.Errorf("kept [%s %s %s], want three newest",
			entries[0].Filename, entries[1].Filename, entries[2].Filename)
	}
}

func TestLogRemove(t *testing.T) {
	l := NewLog(10)
	l.Record("a.mp4", 1)
	l.Record("b.mp4", 2)

	if !l.Remove("a.mp4") {
		t.Error("expected Remove to report a hit")
	}
	if l.Remove("a.mp4") {
		t.Error("expected second Remove to miss")
	}
	if l.Len() != 1 {
		t.Errorf("len = %d, want 1", l.Len())
	}
	if l.Entries()[0].Filename != "b.mp4" {
		t.Error("wrong entry removed")
	}
}

func TestLogEntriesIsACopy(t *testing.T) {
	l := NewLog(10)
	l.Record("a.mp4", 1)

	entries := l.Entries()
	entries[0].Filename = "mutated.mp4"

	if l.Entries()[0].Filename != "a.mp4" {
		t.Error("caller mutation leaked into the log")
	}
}

func TestLogTimestampsAreUTC(t *testing.T) {
	l := NewLog(10)
	l.now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.FixedZone("X", 3600))
	}

	l.Record("a.mp4", 1)

	got := l.Entries()[0].Modified
	if got.Location() != time.UTC || got.Hour() != 11 {
		t.Errorf("modified = %v, want UTC", got)
	}
}
