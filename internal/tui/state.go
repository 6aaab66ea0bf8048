package tui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gpumock/internal/fsutil"
	"gpumock/internal/logging"
)

// UIStateFileName is the state file inside the state directory.
const UIStateFileName = "ui_state.json"

// UIStateManager persists the browser position between runs.
type UIStateManager struct {
	stateDir string
	logger   *logging.Logger
}

// NewUIStateManager creates a manager rooted at stateDir.
func NewUIStateManager(stateDir string, logger *logging.Logger) *UIStateManager {
	return &UIStateManager{stateDir: stateDir, logger: logger}
}

// Path returns the state file location.
func (m *UIStateManager) Path() string {
	return filepath.Join(m.stateDir, UIStateFileName)
}

func defaultState() *UIState {
	return &UIState{CurrentScreen: ScreenDevices, Updated: time.Now().UTC()}
}

// Load reads the state file. A missing file yields the default state.
func (m *UIStateManager) Load() (*UIState, error) {
	data, err := os.ReadFile(m.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultState(), nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state UIState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}
	if state.CurrentScreen == "" {
		state.CurrentScreen = ScreenDevices
	}
	return &state, nil
}

// Save writes state atomically, creating the state directory if needed.
func (m *UIStateManager) Save(state *UIState) error {
	if err := fsutil.EnsureStateDirectory(m.stateDir); err != nil {
		return err
	}

	state.Updated = time.Now().UTC()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := fsutil.AtomicWriteFile(m.Path(), data, fsutil.DefaultFilePermissions, m.logger); err != nil {
		return err
	}

	m.logger.Debug("tui.state.saved", "UI state saved", map[string]interface{}{
		"screen":    state.CurrentScreen,
		"selection": state.Selection,
	})
	return nil
}

// SaveError records msg as the last error, keeping the rest of the state.
func (m *UIStateManager) SaveError(msg string) error {
	state, err := m.Load()
	if err != nil {
		state = defaultState()
	}
	state.LastError = msg
	return m.Save(state)
}

// ClearError drops the last error.
func (m *UIStateManager) ClearError() error {
	state, err := m.Load()
	if err != nil {
		return err
	}
	state.LastError = ""
	return m.Save(state)
}
