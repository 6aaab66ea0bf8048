package fixture

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// DefaultMachine names the profile served when nothing else is selected.
const DefaultMachine = "dgxa100"

// ErrUnknownMachine is returned by Machine for names without a profile.
var ErrUnknownMachine = errors.New("unsupported machine type")

// Profile builds a fresh table for a machine type.
type Profile func() *Table

var (
	machinesMu sync.RWMutex
	machines   = map[string]Profile{
		DefaultMachine: DGXA100,
	}
)

// Register adds or replaces the profile for name.
func Register(name string, p Profile) {
	machinesMu.Lock()
	defer machinesMu.Unlock()
	machines[name] = p
}

// Machines returns the registered profile names in sorted order.
func Machines() []string {
	machinesMu.RLock()
	defer machinesMu.RUnlock()

	names := make([]string, 0, len(machines))
	for name := range machines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Machine returns the table for a registered machine type.
func Machine(name string) (*Table, error) {
	machinesMu.RLock()
	p, ok := machines[name]
	machinesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownMachine, name, strings.Join(Machines(), ", "))
	}
	return p(), nil
}

// Fallback returns count A100-shaped devices reporting model as their name.
// It stands in for machine types that have no profile.
func Fallback(count int, model string) *Table {
	if model == "" {
		model = a100Name
	}
	devices := make([]DeviceRecord, count)
	for i := range devices {
		devices[i] = templateRecord(i)
		devices[i].Name = model
	}
	return &Table{System: DefaultSystem, Devices: devices}
}
