package tui

import (
	"strings"
	"testing"
)

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "tetris"
	cfg.HostKeyPath = t.TempDir() + "/host_key"

	_, err := NewSSHServer(cfg)
	if err == nil {
		t.Fatal("NewSSHServer() should reject an unknown game")
	}
	// flappy registers itself through the model tests' import
	if !strings.Contains(err.Error(), "tetris") || !strings.Contains(err.Error(), "flappy") {
		t.Errorf("error should name the game and the registered IDs, got %q", err)
	}
}
