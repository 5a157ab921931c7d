package storage

import (
	"sync"
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoreStartsEmpty(t *testing.T) {
	store := openStore(t)

	runs, err := store.TopRuns("flappy", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs, got %d", len(runs))
	}

	best, err := store.BestScore("flappy")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score 0, got %d", best)
	}
}

func TestStoreRecordAndRetrieve(t *testing.T) {
	store := openStore(t)

	runs := []RunEntry{
		{GameID: "flappy", Player: "alice", Score: 12, Ticks: 900, Cause: "obstacle"},
		{GameID: "flappy", Player: "bob", Score: 3, Ticks: 200, Cause: "floor"},
		{GameID: "flappy", Player: "carol", Score: 12, Ticks: 950, Cause: "ceiling"},
		{GameID: "other", Player: "dave", Score: 99},
	}
	for _, r := range runs {
		if _, err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("flappy", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Ties keep insertion order
	wantPlayers := []string{"alice", "carol", "bob"}
	for i, want := range wantPlayers {
		if top[i].Player != want {
			t.Errorf("Run %d: expected player %s, got %s", i, want, top[i].Player)
		}
	}
	if top[0].Ticks != 900 || top[0].Cause != "obstacle" {
		t.Errorf("Unexpected first run: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	best, err := store.BestScore("flappy")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 12 {
		t.Errorf("Expected best score 12, got %d", best)
	}

	n, err := store.RunCount("flappy")
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Expected 3 runs, got %d", n)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.RecordRun(RunEntry{GameID: "flappy", Score: i}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("flappy", 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Fatalf("Expected 5 runs, got %d", len(top))
	}
	if top[0].Score != 19 || top[4].Score != 15 {
		t.Errorf("Unexpected range: first %d, last %d", top[0].Score, top[4].Score)
	}

	// Non-positive limit falls back to 10
	top, err = store.TopRuns("flappy", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected default limit 10, got %d", len(top))
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openStore(t)

	store.RecordRun(RunEntry{GameID: "flappy", Score: 5})
	store.RecordRun(RunEntry{GameID: "other", Score: 7})

	if err := store.ClearRuns("flappy"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if n, _ := store.RunCount("flappy"); n != 0 {
		t.Errorf("Expected 0 flappy runs, got %d", n)
	}
	if n, _ := store.RunCount("other"); n != 1 {
		t.Errorf("Other games should be untouched, got %d", n)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openStore(t)
	b := openStore(t)

	a.RecordRun(RunEntry{GameID: "flappy", Score: 5})

	if n, _ := b.RunCount("flappy"); n != 0 {
		t.Errorf("Separate stores should not share runs, got %d", n)
	}
}

func TestStoreConcurrentRecord(t *testing.T) {
	store := openStore(t)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				if _, err := store.RecordRun(RunEntry{GameID: "flappy", Score: w*10 + i}); err != nil {
					t.Errorf("RecordRun() failed: %v", err)
				}
			}
		}(w)
	}
	wg.Wait()

	if n, _ := store.RunCount("flappy"); n != 80 {
		t.Errorf("Expected 80 runs, got %d", n)
	}
}
