package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var keyClear = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}

func TestBoardTotals(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, score := range []int{3, 9, 5} {
		if _, err := store.RecordRun(storage.RunEntry{GameID: "flappy", Player: "p", Score: score, Cause: "floor"}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}
	store.RecordRun(storage.RunEntry{GameID: "other", Score: 50})

	b := NewBoard(store, "flappy", "Flappy Bird", 80, 24)
	b.Refresh()

	if b.Best() != 9 {
		t.Errorf("Best() = %d, expected 9", b.Best())
	}
	if b.Total() != 3 {
		t.Errorf("Total() = %d, expected 3", b.Total())
	}
	if !strings.Contains(b.View(), "best 9, 3 runs") {
		t.Errorf("title should show totals:\n%s", b.View())
	}
}

func TestBoardClear(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.RecordRun(storage.RunEntry{GameID: "flappy", Score: 2})
	store.RecordRun(storage.RunEntry{GameID: "other", Score: 7})

	b := NewBoard(store, "flappy", "Flappy Bird", 80, 24)
	b.Refresh()
	if len(b.Runs()) != 1 {
		t.Fatalf("expected 1 run before clear, got %d", len(b.Runs()))
	}

	b, _ = b.Update(keyClear)
	if len(b.Runs()) != 0 || b.Total() != 0 || b.Best() != 0 {
		t.Errorf("clear should empty the board, got runs=%d total=%d best=%d", len(b.Runs()), b.Total(), b.Best())
	}
	if !strings.Contains(b.View(), "No runs finished yet") {
		t.Errorf("cleared board should show the empty message:\n%s", b.View())
	}

	n, err := store.RunCount("other")
	if err != nil || n != 1 {
		t.Errorf("other game's runs should survive, got %d (%v)", n, err)
	}
}

func TestBoardWithoutStore(t *testing.T) {
	b := NewBoard(nil, "flappy", "Flappy Bird", 80, 24)
	b.Refresh()
	if err := b.Clear(); err != nil {
		t.Errorf("Clear() without a store should be a no-op, got %v", err)
	}
	if !strings.Contains(b.View(), "Run log disabled") {
		t.Errorf("expected disabled message:\n%s", b.View())
	}
}
