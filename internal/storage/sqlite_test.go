package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	store, err := Open("")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "journal.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreMemoryIsPrivate(t *testing.T) {
	a := openMemory(t)
	b := openMemory(t)

	if _, err := a.SaveRound(RoundEntry{Round: 1, CellsPerSide: 3, Points: 9, Moves: 8}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	n, err := b.RoundCount()
	if err != nil {
		t.Fatalf("RoundCount() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("second memory store sees %d rounds, expected 0", n)
	}
}

func TestStoreSaveAndList(t *testing.T) {
	store := openMemory(t)

	entries := []RoundEntry{
		{Round: 1, CellsPerSide: 3, Points: 9, Moves: 8, Duration: 4 * time.Second},
		{Round: 2, CellsPerSide: 5, Points: 25, Moves: 30, Duration: 12 * time.Second},
		{Round: 3, CellsPerSide: 7, Points: 49, Moves: 60, Duration: 25 * time.Second},
	}
	for _, e := range entries {
		if _, err := store.SaveRound(e); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	rounds, err := store.Rounds(2)
	if err != nil {
		t.Fatalf("Rounds() failed: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("Expected 2 rounds with limit, got %d", len(rounds))
	}

	// Newest first
	if rounds[0].Round != 3 || rounds[1].Round != 2 {
		t.Errorf("Rounds not newest first: %+v", rounds)
	}
	if rounds[0].Duration != 25*time.Second {
		t.Errorf("Duration = %v, expected 25s", rounds[0].Duration)
	}
	if rounds[0].CellsPerSide != 7 || rounds[0].Points != 49 || rounds[0].Moves != 60 {
		t.Errorf("Round fields not round-tripped: %+v", rounds[0])
	}

	all, err := store.Rounds(0)
	if err != nil {
		t.Fatalf("Rounds(0) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 rounds, got %d", len(all))
	}
}

func TestStoreFastestRound(t *testing.T) {
	store := openMemory(t)

	if _, ok, err := store.FastestRound(3); err != nil || ok {
		t.Fatalf("FastestRound() on empty journal = ok %v, err %v", ok, err)
	}

	store.SaveRound(RoundEntry{Round: 1, CellsPerSide: 3, Points: 9, Duration: 9 * time.Second})
	store.SaveRound(RoundEntry{Round: 5, CellsPerSide: 3, Points: 9, Duration: 3 * time.Second})
	store.SaveRound(RoundEntry{Round: 2, CellsPerSide: 5, Points: 25, Duration: time.Second})

	d, ok, err := store.FastestRound(3)
	if err != nil {
		t.Fatalf("FastestRound() failed: %v", err)
	}
	if !ok || d != 3*time.Second {
		t.Errorf("FastestRound(3) = %v, %v, expected 3s", d, ok)
	}

	if _, ok, _ := store.FastestRound(9); ok {
		t.Error("FastestRound(9) should report no rounds")
	}
}
