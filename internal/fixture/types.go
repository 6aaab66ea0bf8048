package fixture

import (
	"strings"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// SystemInfo holds the driver-level identity reported by the mock.
type SystemInfo struct {
	DriverVersion     string
	NVMLVersion       string
	CUDADriverVersion int
	DriverBranch      string
}

// PCIInfo holds the PCI coordinates of one device.
type PCIInfo struct {
	Domain      uint32
	Bus         uint32
	Device      uint32
	DeviceID    uint32
	SubsystemID uint32
	BaseClass   uint32
	SubClass    uint32
	// BusID uses the 8-digit domain form, e.g. 00000000:07:00.0.
	BusID string
	// BusIDLegacy uses the 4-digit domain form, e.g. 0000:07:00.0.
	BusIDLegacy string
}

// MemoryInfo holds byte counts. Free always equals Total - Used.
type MemoryInfo struct {
	Total uint64
	Free  uint64
	Used  uint64
}

// Clocks holds clock speeds in MHz.
type Clocks struct {
	Graphics uint32
	SM       uint32
	Memory   uint32
}

// DeviceRecord is the immutable description of one simulated device.
type DeviceRecord struct {
	Index           int
	Name            string
	UUID            string
	Serial          string
	BoardPartNumber string
	MinorNumber     int
	Brand           nvml.BrandType
	PCI             PCIInfo
	Memory          MemoryInfo
	BAR1            MemoryInfo
	Clocks          Clocks
	MaxClocks       Clocks
	TemperatureC    uint32
	PowerUsageMW    uint32
	PowerLimitMW    uint32
	ComputeMajor    int
	ComputeMinor    int
	PersistenceMode nvml.EnableState
	DisplayMode     nvml.EnableState
	DisplayActive   nvml.EnableState
	ComputeMode     nvml.ComputeMode

	MultiprocessorCount   uint32
	SharedCopyEngineCount uint32
}

// Table is the ordered, read-only device table.
type Table struct {
	System  SystemInfo
	Devices []DeviceRecord
}

// Count returns the number of devices.
func (t *Table) Count() int {
	return len(t.Devices)
}

// Device returns the record at index.
func (t *Table) Device(index uint32) (*DeviceRecord, bool) {
	if uint64(index) >= uint64(len(t.Devices)) {
		return nil, false
	}
	return &t.Devices[index], true
}

// FindUUID returns the index of the device with an exactly matching UUID.
func (t *Table) FindUUID(uuid string) (int, bool) {
	for i := range t.Devices {
		if t.Devices[i].UUID == uuid {
			return i, true
		}
	}
	return -1, false
}

// FindBusID returns the index of the device whose full or legacy bus id
// matches id. Hex digits compare case-insensitively.
func (t *Table) FindBusID(id string) (int, bool) {
	for i := range t.Devices {
		pci := t.Devices[i].PCI
		if strings.EqualFold(pci.BusID, id) || strings.EqualFold(pci.BusIDLegacy, id) {
			return i, true
		}
	}
	return -1, false
}
