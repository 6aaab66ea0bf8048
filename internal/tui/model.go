package tui

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gpumock/internal/inventory"
	"gpumock/internal/logging"
	"gpumock/internal/mocknvml"
)

// Model is the device browser state.
type Model struct {
	startTime time.Time
	quitting  bool

	logger   *logging.Logger
	lib      *mocknvml.Library
	interval time.Duration

	// UI State
	currentScreen Screen
	selection     int
	lastError     string
	stateManager  *UIStateManager

	// Library State
	snapshot      inventory.Snapshot
	hasSnapshot   bool
	loadedAt      time.Time
	statusMessage string
}

const down = "down"

// refreshMsg is delivered by the auto-refresh tick.
type refreshMsg time.Time

// NewModel loads a first snapshot from lib and restores the saved position
// from stateDir. A positive interval re-reads the library on a tick.
func NewModel(logger *logging.Logger, lib *mocknvml.Library, stateDir string, interval time.Duration) Model {
	m := Model{
		startTime:     time.Now(),
		logger:        logger.With("tui"),
		lib:           lib,
		interval:      interval,
		currentScreen: ScreenDevices,
		stateManager:  NewUIStateManager(stateDir, logger),
	}

	if state, err := m.stateManager.Load(); err == nil {
		m.currentScreen = state.CurrentScreen
		m.selection = state.Selection
		m.lastError = state.LastError
	} else {
		m.logger.Warn("tui.state.load_failed", "Failed to load UI state", map[string]interface{}{
			"error": err.Error(),
		})
	}

	m.loadSnapshot()
	m.clampSelection()
	return m
}

func (m Model) tick() tea.Cmd {
	if m.interval <= 0 {
		return nil
	}
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return refreshMsg(t) })
}

// Init starts the refresh tick when one is configured.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles key presses and refresh ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		m.loadSnapshot()
		m.clampSelection()
		return m, m.tick()
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	if next, handled, cmd := m.handleQuitKeys(key); handled {
		return next, cmd
	}
	if next, handled := m.handleEscapeKey(key); handled {
		return next, nil
	}
	if next, handled := m.handleDeviceKeys(key); handled {
		return next, nil
	}
	if next, handled := m.handleShortcutKeys(key); handled {
		return next, nil
	}
	if key == "r" {
		return m.refresh(), nil
	}
	return m, nil
}

func (m Model) handleQuitKeys(key string) (tea.Model, bool, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		m.saveState()
		return m, true, tea.Quit
	}
	return m, false, nil
}

func (m Model) handleEscapeKey(key string) (tea.Model, bool) {
	if key == "esc" && m.currentScreen != ScreenDevices {
		m.currentScreen = ScreenDevices
		m.lastError = ""
		m.saveState()
		return m, true
	}
	return m, false
}

func (m Model) handleDeviceKeys(key string) (tea.Model, bool) {
	if m.currentScreen != ScreenDevices {
		return m, false
	}

	switch key {
	case "up", "k":
		return m.navigateUp(), true
	case down, "j":
		return m.navigateDown(), true
	}

	if index, err := strconv.Atoi(key); err == nil {
		if index < len(m.snapshot.Devices) {
			m.selection = index
		} else {
			m.statusMessage = fmt.Sprintf("No device %d", index)
		}
		return m, true
	}
	return m, false
}

func (m Model) handleShortcutKeys(key string) (tea.Model, bool) {
	for _, item := range DefaultShortcuts() {
		if item.Key == key {
			m.currentScreen = item.Screen
			m.lastError = ""
			m.saveState()
			return m, true
		}
	}
	return m, false
}

func (m Model) navigateUp() Model {
	if m.selection > 0 {
		m.selection--
	} else if n := len(m.snapshot.Devices); n > 0 {
		m.selection = n - 1
	}
	return m
}

func (m Model) navigateDown() Model {
	if m.selection < len(m.snapshot.Devices)-1 {
		m.selection++
	} else {
		m.selection = 0
	}
	return m
}

func (m *Model) clampSelection() {
	if m.selection >= len(m.snapshot.Devices) || m.selection < 0 {
		m.selection = 0
	}
}

func (m Model) refresh() Model {
	m.loadSnapshot()
	m.clampSelection()
	if m.lastError == "" {
		m.statusMessage = "Refreshed device state"
	}
	return m
}

// loadSnapshot re-reads the library inside its own session.
func (m *Model) loadSnapshot() {
	snap, err := inventory.Collect(m.lib)
	if err != nil {
		m.lastError = err.Error()
		m.hasSnapshot = false
		m.logger.Error("tui.snapshot.failed", "Failed to read device state", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	m.snapshot = snap
	m.hasSnapshot = true
	m.loadedAt = time.Now()
	m.lastError = ""
}

// Selected returns the highlighted device.
func (m Model) Selected() (inventory.Device, bool) {
	if !m.hasSnapshot || m.selection >= len(m.snapshot.Devices) {
		return inventory.Device{}, false
	}
	return m.snapshot.Devices[m.selection], true
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.currentScreen {
	case ScreenTopology:
		return m.renderTopologyScreen()
	case ScreenSystem:
		return m.renderSystemScreen()
	case ScreenHelp:
		return m.renderHelpScreen()
	default:
		return m.renderDevicesScreen()
	}
}

func (m *Model) saveState() {
	state := &UIState{
		CurrentScreen: m.currentScreen,
		Selection:     m.selection,
		LastError:     m.lastError,
	}
	if err := m.stateManager.Save(state); err != nil {
		m.logger.Warn("tui.state.save_failed", "Failed to save UI state", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
