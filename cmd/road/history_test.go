package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-road/internal/storage"
)

func TestClearRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	now := time.Now()
	for _, player := range []string{"alice", "bob"} {
		if _, err := store.SaveRun(storage.RunEntry{Player: player, StartedAt: now, Scrolled: 50}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	n, err := clearRuns(store)
	if err != nil {
		t.Fatalf("clearRuns() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("clearRuns() = %d, expected 2", n)
	}
	if runs, _ := store.RecentRuns("", 10); len(runs) != 0 {
		t.Errorf("RecentRuns() after clear returned %d runs", len(runs))
	}

	// Clearing an empty store is not an error
	if n, err := clearRuns(store); err != nil || n != 0 {
		t.Errorf("clearRuns() on empty store = %d, %v; expected 0, nil", n, err)
	}
}
