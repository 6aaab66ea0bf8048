package tui

import "time"

// Screen names a TUI view.
type Screen string

const (
	// ScreenDevices lists every device with a detail pane for the selection
	ScreenDevices Screen = "devices"
	// ScreenTopology shows the pairwise matrix
	ScreenTopology Screen = "topology"
	// ScreenSystem shows driver identity and the fixture fingerprint
	ScreenSystem Screen = "system"
	// ScreenHelp shows key bindings
	ScreenHelp Screen = "help"
)

// ShortcutItem binds a key to a screen.
type ShortcutItem struct {
	Key         string
	Label       string
	Description string
	Screen      Screen
}

// UIState is persisted between runs in ui_state.json.
type UIState struct {
	CurrentScreen Screen    `json:"screen"`
	Selection     int       `json:"selection"`
	LastError     string    `json:"last_error"`
	Updated       time.Time `json:"updated"`
}

// DefaultShortcuts returns the screen shortcuts shown in the footer.
func DefaultShortcuts() []ShortcutItem {
	return []ShortcutItem{
		{Key: "d", Label: "Devices", Description: "Device list and details", Screen: ScreenDevices},
		{Key: "t", Label: "Topology", Description: "NVLink and PCIe matrix", Screen: ScreenTopology},
		{Key: "s", Label: "System", Description: "Driver and fixture identity", Screen: ScreenSystem},
		{Key: "?", Label: "Help", Description: "Key bindings", Screen: ScreenHelp},
	}
}
