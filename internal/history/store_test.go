package history

import (
	"os"
	"testing"
	"time"
)

// openTestStore points the data directory at a temp location so tests
// never touch the real history database.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	originalXDG := os.Getenv("XDG_DATA_HOME")
	os.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Cleanup(func() { os.Setenv("XDG_DATA_HOME", originalXDG) })

	store, err := Open()
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestRecordAndList(t *testing.T) {
	store := openTestStore(t)

	for i, pkg := range []string{"htop", "ripgrep", "jq"} {
		entry := NewEntry(OpInstall, "deb", pkg)
		entry.Timestamp = time.Now().Add(time.Duration(i) * time.Millisecond)
		entry.MarkSuccess("installed")
		if err := store.Record(entry); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	entries, err := store.List(10)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("List() returned %d entries, want 3", len(entries))
	}
	// Newest first.
	if entries[0].Package != "jq" {
		t.Errorf("first entry = %q, want jq", entries[0].Package)
	}
	if entries[2].Package != "htop" {
		t.Errorf("last entry = %q, want htop", entries[2].Package)
	}
}

func TestListLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		entry := NewEntry(OpInstall, "deb", "pkg")
		entry.Timestamp = time.Now().Add(time.Duration(i) * time.Millisecond)
		if err := store.Record(entry); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	entries, err := store.List(2)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("List(2) returned %d entries", len(entries))
	}
}

func TestLast(t *testing.T) {
	store := openTestStore(t)

	entry, err := store.Last()
	if err != nil {
		t.Fatalf("Last() error: %v", err)
	}
	if entry != nil {
		t.Error("Last() on empty store should return nil")
	}

	first := NewEntry(OpInstall, "deb", "htop")
	first.Timestamp = time.Now().Add(-time.Minute)
	second := NewEntry(OpRemove, "deb", "htop")

	if err := store.Record(first); err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if err := store.Record(second); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	entry, err = store.Last()
	if err != nil {
		t.Fatalf("Last() error: %v", err)
	}
	if entry == nil || entry.Operation != OpRemove {
		t.Errorf("Last() = %+v, want the remove entry", entry)
	}
}

func TestCountAndClear(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		entry := NewEntry(OpInstall, "apk", "htop")
		entry.Timestamp = time.Now().Add(time.Duration(i) * time.Millisecond)
		if err := store.Record(entry); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 3 {
		t.Errorf("Count() = %d, want 3", count)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}

	count, err = store.Count()
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 0 {
		t.Errorf("Count() after Clear = %d, want 0", count)
	}
}

func TestPrune(t *testing.T) {
	store := openTestStore(t)

	old := NewEntry(OpInstall, "deb", "ancient")
	old.Timestamp = time.Now().Add(-48 * time.Hour)
	recent := NewEntry(OpInstall, "deb", "fresh")

	if err := store.Record(old); err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if err := store.Record(recent); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	deleted, err := store.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune() error: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Prune() deleted %d entries, want 1", deleted)
	}

	entries, err := store.List(10)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 1 || entries[0].Package != "fresh" {
		t.Errorf("surviving entries = %+v, want only fresh", entries)
	}
}
