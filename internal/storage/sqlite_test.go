package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	runs := []RunEntry{
		{Player: "local", StartedAt: base, Duration: 90 * time.Second, Frames: 5400, Scrolled: 900},
		{Player: "alice", StartedAt: base.Add(time.Hour), Duration: 30 * time.Second, Frames: 1800, Scrolled: 300},
		{Player: "local", StartedAt: base.Add(2 * time.Hour), Duration: 1500 * time.Millisecond, Frames: 90, Scrolled: 15.5},
	}
	for _, r := range runs {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if id == "" {
			t.Error("SaveRun() should assign an ID")
		}
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(all))
	}

	// Newest first
	if !all[0].StartedAt.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("first run started %v, expected newest", all[0].StartedAt)
	}
	if all[0].Duration != 1500*time.Millisecond || all[0].Frames != 90 || all[0].Scrolled != 15.5 {
		t.Errorf("round trip mismatch: %+v", all[0])
	}

	local, err := store.RecentRuns("local", 10)
	if err != nil {
		t.Fatalf("RecentRuns(local) failed: %v", err)
	}
	if len(local) != 2 {
		t.Errorf("Expected 2 local runs, got %d", len(local))
	}

	limited, _ := store.RecentRuns("", 1)
	if len(limited) != 1 {
		t.Errorf("Expected 1 run with limit, got %d", len(limited))
	}
}

func TestStoreKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunEntry{ID: "fixed-id", Player: "local", StartedAt: time.Now()})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("SaveRun() = %q, expected fixed-id", id)
	}

	if _, err := store.SaveRun(RunEntry{ID: "fixed-id", Player: "local", StartedAt: time.Now()}); err == nil {
		t.Error("duplicate IDs should be rejected")
	}
}

func TestStoreLongestRunAndCount(t *testing.T) {
	store := openTestStore(t)

	longest, err := store.LongestRun()
	if err != nil {
		t.Fatalf("LongestRun() failed: %v", err)
	}
	if longest != nil {
		t.Errorf("LongestRun() on empty store = %+v, expected nil", longest)
	}

	now := time.Now()
	store.SaveRun(RunEntry{Player: "a", StartedAt: now, Scrolled: 10})
	store.SaveRun(RunEntry{Player: "b", StartedAt: now, Scrolled: 250})
	store.SaveRun(RunEntry{Player: "c", StartedAt: now, Scrolled: 40})

	longest, err = store.LongestRun()
	if err != nil {
		t.Fatalf("LongestRun() failed: %v", err)
	}
	if longest == nil || longest.Player != "b" {
		t.Errorf("LongestRun() = %+v, expected player b", longest)
	}

	n, err := store.RunCount()
	if err != nil || n != 3 {
		t.Errorf("RunCount() = %d, %v; expected 3", n, err)
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n, _ := store.RunCount(); n != 0 {
		t.Errorf("RunCount() after clear = %d, expected 0", n)
	}
}
