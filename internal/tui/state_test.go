package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gpumock/internal/logging"
)

func newManager(t *testing.T) (*UIStateManager, string) {
	t.Helper()
	dir := t.TempDir()
	return NewUIStateManager(dir, logging.NewLogger(logging.LevelError)), dir
}

func TestUIStateManager_SaveAndLoad(t *testing.T) {
	manager, _ := newManager(t)

	if err := manager.Save(&UIState{CurrentScreen: ScreenTopology, Selection: 4, LastError: "test error"}); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}

	loaded, err := manager.Load()
	if err != nil {
		t.Fatalf("Failed to load state: %v", err)
	}
	if loaded.CurrentScreen != ScreenTopology {
		t.Errorf("Expected screen topology, got %s", loaded.CurrentScreen)
	}
	if loaded.Selection != 4 {
		t.Errorf("Expected selection 4, got %d", loaded.Selection)
	}
	if loaded.LastError != "test error" {
		t.Errorf("Expected error 'test error', got %s", loaded.LastError)
	}
	if loaded.Updated.IsZero() {
		t.Error("Expected Updated to be stamped on save")
	}
}

func TestUIStateManager_LoadNonExistent(t *testing.T) {
	manager, _ := newManager(t)

	state, err := manager.Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if state.CurrentScreen != ScreenDevices {
		t.Errorf("Expected default screen devices, got %s", state.CurrentScreen)
	}
	if state.Selection != 0 || state.LastError != "" {
		t.Errorf("Expected zero state, got %+v", state)
	}
}

func TestUIStateManager_LoadCorrupt(t *testing.T) {
	manager, dir := newManager(t)
	if err := os.WriteFile(filepath.Join(dir, UIStateFileName), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := manager.Load()
	if err == nil || !strings.Contains(err.Error(), "failed to unmarshal state") {
		t.Errorf("Expected unmarshal error, got %v", err)
	}
}

func TestUIStateManager_SaveAndClearError(t *testing.T) {
	manager, _ := newManager(t)

	if err := manager.SaveError("session leaked"); err != nil {
		t.Fatalf("Failed to save error: %v", err)
	}
	state, err := manager.Load()
	if err != nil {
		t.Fatalf("Failed to load state: %v", err)
	}
	if state.LastError != "session leaked" {
		t.Errorf("Expected saved error, got %q", state.LastError)
	}

	if err := manager.ClearError(); err != nil {
		t.Fatalf("Failed to clear error: %v", err)
	}
	state, err = manager.Load()
	if err != nil {
		t.Fatalf("Failed to load state: %v", err)
	}
	if state.LastError != "" {
		t.Errorf("Expected empty error, got %q", state.LastError)
	}
}

func TestUIStateManager_AtomicWrite(t *testing.T) {
	manager, dir := newManager(t)

	if err := manager.Save(&UIState{CurrentScreen: ScreenDevices}); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != UIStateFileName {
		t.Errorf("Expected only %s in state dir, got %v", UIStateFileName, entries)
	}

	info, err := os.Stat(manager.Path())
	if err != nil {
		t.Fatalf("State file should exist: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("Expected 0600 permissions, got %o", info.Mode().Perm())
	}
}

func TestDefaultShortcuts(t *testing.T) {
	items := DefaultShortcuts()

	seen := make(map[string]bool)
	for _, item := range items {
		if seen[item.Key] {
			t.Errorf("Duplicate shortcut key %q", item.Key)
		}
		seen[item.Key] = true
		if item.Screen == "" {
			t.Errorf("Shortcut %q has no screen", item.Key)
		}
	}

	if items[len(items)-1].Screen != ScreenHelp {
		t.Errorf("Expected help as the last shortcut, got %s", items[len(items)-1].Screen)
	}
}
