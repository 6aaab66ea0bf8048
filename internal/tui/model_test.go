package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gpumock/internal/logging"
	"gpumock/internal/mocknvml"
	"gpumock/internal/session"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	logger := logging.NewLogger(logging.LevelError)
	lib := mocknvml.New(mocknvml.WithSession(session.New()))
	return NewModel(logger, lib, t.TempDir(), 0)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatal("Expected Model type from Update")
	}
	return next
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t)

	if m.startTime.IsZero() {
		t.Error("Expected startTime to be set, got zero time")
	}
	if !m.hasSnapshot {
		t.Fatalf("Expected a snapshot, got error %q", m.lastError)
	}
	if len(m.snapshot.Devices) != 8 {
		t.Errorf("Expected 8 devices, got %d", len(m.snapshot.Devices))
	}
	if m.lib.Session().Active() {
		t.Error("Expected snapshot session to be released")
	}
	if m.currentScreen != ScreenDevices {
		t.Errorf("Expected devices screen, got %s", m.currentScreen)
	}
}

func TestModelInit(t *testing.T) {
	m := newTestModel(t)
	if cmd := m.Init(); cmd != nil {
		t.Error("Expected Init to return nil command without a refresh interval")
	}

	m.interval = time.Second
	if cmd := m.Init(); cmd == nil {
		t.Error("Expected Init to schedule a refresh tick")
	}
}

func TestModelUpdate_QuitOnQ(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(runes("q"))
	next := updated.(Model)

	if !next.quitting {
		t.Error("Expected quitting to be true after 'q' key")
	}
	if cmd == nil {
		t.Error("Expected quit command to be returned")
	}
	if next.View() != "" {
		t.Error("Expected empty view when quitting")
	}
}

func TestModelUpdate_QuitOnCtrlC(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !updated.(Model).quitting {
		t.Error("Expected quitting to be true after Ctrl+C")
	}
	if cmd == nil {
		t.Error("Expected quit command to be returned")
	}
}

func TestModelUpdate_Navigation(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.selection != 7 {
		t.Errorf("Expected wrap to last device, got %d", m.selection)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.selection != 0 {
		t.Errorf("Expected wrap to first device, got %d", m.selection)
	}

	m = press(t, m, runes("j"))
	if m.selection != 1 {
		t.Errorf("Expected selection 1, got %d", m.selection)
	}

	m = press(t, m, runes("5"))
	if m.selection != 5 {
		t.Errorf("Expected selection 5, got %d", m.selection)
	}

	m = press(t, m, runes("9"))
	if m.selection != 5 {
		t.Errorf("Expected selection to stay at 5, got %d", m.selection)
	}
	if m.statusMessage != "No device 9" {
		t.Errorf("Unexpected status message %q", m.statusMessage)
	}
}

func TestModelUpdate_Screens(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, runes("t"))
	if m.currentScreen != ScreenTopology {
		t.Fatalf("Expected topology screen, got %s", m.currentScreen)
	}
	view := m.View()
	if !strings.Contains(view, "NV2") || !strings.Contains(view, "SYS") {
		t.Error("Expected topology cells in view")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.currentScreen != ScreenDevices {
		t.Errorf("Expected devices screen after Esc, got %s", m.currentScreen)
	}

	m = press(t, m, runes("s"))
	if !strings.Contains(m.View(), "550.54.15") {
		t.Error("Expected driver version on system screen")
	}

	m = press(t, m, runes("?"))
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("Expected help screen")
	}
}

func TestModelView_DeviceDetail(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("3"))

	view := m.View()
	for _, want := range []string{
		"00000000:03:00.0",
		"0000:03:00.0",
		"40GiB total",
		"1410 / 1410 MHz",
		"GPU1:",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}

	d, ok := m.Selected()
	if !ok || d.Index != 3 {
		t.Errorf("Expected device 3 selected, got %+v", d)
	}
}

func TestModelUpdate_Refresh(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, runes("r"))
	if m.statusMessage != "Refreshed device state" {
		t.Errorf("Unexpected status message %q", m.statusMessage)
	}

	updated, cmd := m.Update(refreshMsg(time.Now()))
	if cmd != nil {
		t.Error("Expected no follow-up tick without an interval")
	}
	if !updated.(Model).hasSnapshot {
		t.Error("Expected snapshot after refresh tick")
	}
}

func TestModel_RestoresState(t *testing.T) {
	dir := t.TempDir()
	logger := logging.NewLogger(logging.LevelError)
	lib := mocknvml.New(mocknvml.WithSession(session.New()))

	m := NewModel(logger, lib, dir, 0)
	m = press(t, m, runes("6"))
	m = press(t, m, runes("t"))

	restored := NewModel(logger, lib, dir, 0)
	if restored.currentScreen != ScreenTopology {
		t.Errorf("Expected topology screen restored, got %s", restored.currentScreen)
	}
	if restored.selection != 6 {
		t.Errorf("Expected selection 6 restored, got %d", restored.selection)
	}
}

func TestNvlinkSummary(t *testing.T) {
	m := newTestModel(t)
	got := nvlinkSummary(m.snapshot.Devices[0].Links)
	if !strings.HasPrefix(got, "GPU1: 0,1  GPU2: 2,3") {
		t.Errorf("Unexpected summary %q", got)
	}

	if nvlinkSummary(nil) != "no active links" {
		t.Error("Expected empty summary for no links")
	}
}
