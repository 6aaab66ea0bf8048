package fixture

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"gopkg.in/yaml.v3"
)

// FileVersion is the fixture file format understood by Parse.
const FileVersion = "1"

// MaxDevices bounds num_devices so bus numbers stay within one byte.
const MaxDevices = 256

// File is the on-disk fixture format.
type File struct {
	Version        string       `yaml:"version"`
	System         SystemSpec   `yaml:"system,omitempty"`
	NumDevices     int          `yaml:"num_devices,omitempty"`
	DeviceDefaults DeviceSpec   `yaml:"device_defaults,omitempty"`
	Devices        []DeviceSpec `yaml:"devices,omitempty"`
}

// SystemSpec overrides SystemInfo fields.
type SystemSpec struct {
	DriverVersion     string `yaml:"driver_version,omitempty"`
	NVMLVersion       string `yaml:"nvml_version,omitempty"`
	CUDADriverVersion int    `yaml:"cuda_driver_version,omitempty"`
	DriverBranch      string `yaml:"driver_branch,omitempty"`
}

// DeviceSpec overrides DeviceRecord fields. Zero values keep the template.
type DeviceSpec struct {
	Index             *int      `yaml:"index,omitempty"`
	Name              string    `yaml:"name,omitempty"`
	UUID              string    `yaml:"uuid,omitempty"`
	Serial            string    `yaml:"serial,omitempty"`
	BoardPartNumber   string    `yaml:"board_part_number,omitempty"`
	BusID             string    `yaml:"bus_id,omitempty"`
	PCIDeviceID       uint32    `yaml:"pci_device_id,omitempty"`
	PCISubsystemID    uint32    `yaml:"pci_subsystem_id,omitempty"`
	MemoryTotalBytes  uint64    `yaml:"memory_total_bytes,omitempty"`
	MemoryUsedBytes   uint64    `yaml:"memory_used_bytes,omitempty"`
	BAR1TotalBytes    uint64    `yaml:"bar1_total_bytes,omitempty"`
	Clocks            ClockSpec `yaml:"clocks,omitempty"`
	MaxClocks         ClockSpec `yaml:"max_clocks,omitempty"`
	TemperatureC      uint32    `yaml:"temperature_c,omitempty"`
	PowerUsageMW      uint32    `yaml:"power_usage_mw,omitempty"`
	PowerLimitMW      uint32    `yaml:"power_limit_mw,omitempty"`
	ComputeCapability string    `yaml:"compute_capability,omitempty"`
	PersistenceMode   string    `yaml:"persistence_mode,omitempty"`
	ComputeMode       string    `yaml:"compute_mode,omitempty"`
	Multiprocessors   uint32    `yaml:"multiprocessor_count,omitempty"`
	CopyEngines       uint32    `yaml:"shared_copy_engine_count,omitempty"`
}

// ClockSpec overrides clock speeds in MHz.
type ClockSpec struct {
	GraphicsMHz uint32 `yaml:"graphics_mhz,omitempty"`
	SMMHz       uint32 `yaml:"sm_mhz,omitempty"`
	MemoryMHz   uint32 `yaml:"memory_mhz,omitempty"`
}

var computeModes = map[string]nvml.ComputeMode{
	"default":           nvml.COMPUTEMODE_DEFAULT,
	"exclusive_thread":  nvml.COMPUTEMODE_EXCLUSIVE_THREAD,
	"prohibited":        nvml.COMPUTEMODE_PROHIBITED,
	"exclusive_process": nvml.COMPUTEMODE_EXCLUSIVE_PROCESS,
}

// Load reads and validates a fixture file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 -- fixture path is operator supplied
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	table, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixture %s: %w", path, err)
	}
	return table, nil
}

// Parse builds a table from fixture YAML. Devices without overrides take
// the built-in A100 template for their position.
func Parse(data []byte) (*Table, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return Build(file)
}

// Build applies file on top of the built-in templates.
func Build(file File) (*Table, error) {
	if file.Version != "" && file.Version != FileVersion {
		return nil, fmt.Errorf("unsupported fixture version %q", file.Version)
	}

	count := file.NumDevices
	if count == 0 {
		count = len(dgxA100UUIDs)
		if n := len(file.Devices); n > count {
			count = n
		}
	}
	if count < 1 || count > MaxDevices {
		return nil, fmt.Errorf("num_devices must be between 1 and %d, got %d", MaxDevices, count)
	}

	table := &Table{System: DefaultSystem, Devices: make([]DeviceRecord, count)}
	mergeSystem(&table.System, file.System)

	for i := range table.Devices {
		table.Devices[i] = templateRecord(i)
		if err := applyDevice(&table.Devices[i], file.DeviceDefaults); err != nil {
			return nil, fmt.Errorf("device_defaults: %w", err)
		}
	}

	for pos, spec := range file.Devices {
		index := pos
		if spec.Index != nil {
			index = *spec.Index
		}
		if index < 0 || index >= count {
			return nil, fmt.Errorf("devices[%d]: index %d out of range [0, %d)", pos, index, count)
		}
		if err := applyDevice(&table.Devices[index], spec); err != nil {
			return nil, fmt.Errorf("devices[%d]: %w", pos, err)
		}
	}

	for i := range table.Devices {
		rec := &table.Devices[i]
		if rec.Memory.Used <= rec.Memory.Total {
			rec.Memory.Free = rec.Memory.Total - rec.Memory.Used
		}
		rec.BAR1.Free = rec.BAR1.Total - rec.BAR1.Used
	}

	if errs := table.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("fixture.validation.error: %s", formatValidationErrors(errs))
	}
	return table, nil
}

func mergeSystem(dst *SystemInfo, src SystemSpec) {
	if src.DriverVersion != "" {
		dst.DriverVersion = src.DriverVersion
	}
	if src.NVMLVersion != "" {
		dst.NVMLVersion = src.NVMLVersion
	}
	if src.CUDADriverVersion != 0 {
		dst.CUDADriverVersion = src.CUDADriverVersion
	}
	if src.DriverBranch != "" {
		dst.DriverBranch = src.DriverBranch
	}
}

func applyDevice(rec *DeviceRecord, spec DeviceSpec) error {
	if spec.Name != "" {
		rec.Name = spec.Name
	}
	if spec.Serial != "" {
		rec.Serial = spec.Serial
		if spec.UUID == "" && rec.Index >= len(dgxA100UUIDs) {
			rec.UUID = DeriveUUID(spec.Serial)
		}
	}
	if spec.UUID != "" {
		rec.UUID = spec.UUID
	}
	if spec.BoardPartNumber != "" {
		rec.BoardPartNumber = spec.BoardPartNumber
	}
	if spec.BusID != "" {
		pci, err := parseBusID(spec.BusID)
		if err != nil {
			return err
		}
		pci.DeviceID, pci.SubsystemID = rec.PCI.DeviceID, rec.PCI.SubsystemID
		pci.BaseClass, pci.SubClass = rec.PCI.BaseClass, rec.PCI.SubClass
		rec.PCI = pci
	}
	if spec.PCIDeviceID != 0 {
		rec.PCI.DeviceID = spec.PCIDeviceID
	}
	if spec.PCISubsystemID != 0 {
		rec.PCI.SubsystemID = spec.PCISubsystemID
	}
	if spec.MemoryTotalBytes != 0 {
		rec.Memory.Total = spec.MemoryTotalBytes
	}
	if spec.MemoryUsedBytes != 0 {
		rec.Memory.Used = spec.MemoryUsedBytes
	}
	if spec.BAR1TotalBytes != 0 {
		rec.BAR1.Total = spec.BAR1TotalBytes
	}
	mergeClocks(&rec.Clocks, spec.Clocks)
	mergeClocks(&rec.MaxClocks, spec.MaxClocks)
	if spec.TemperatureC != 0 {
		rec.TemperatureC = spec.TemperatureC
	}
	if spec.PowerUsageMW != 0 {
		rec.PowerUsageMW = spec.PowerUsageMW
	}
	if spec.PowerLimitMW != 0 {
		rec.PowerLimitMW = spec.PowerLimitMW
	}
	if spec.ComputeCapability != "" {
		major, minor, err := parseComputeCapability(spec.ComputeCapability)
		if err != nil {
			return err
		}
		rec.ComputeMajor, rec.ComputeMinor = major, minor
	}
	switch strings.ToLower(spec.PersistenceMode) {
	case "":
	case "enabled":
		rec.PersistenceMode = nvml.FEATURE_ENABLED
	case "disabled":
		rec.PersistenceMode = nvml.FEATURE_DISABLED
	default:
		return fmt.Errorf("persistence_mode must be 'enabled' or 'disabled', got '%s'", spec.PersistenceMode)
	}
	if spec.ComputeMode != "" {
		mode, ok := computeModes[strings.ToLower(spec.ComputeMode)]
		if !ok {
			return fmt.Errorf("unknown compute_mode '%s'", spec.ComputeMode)
		}
		rec.ComputeMode = mode
	}
	if spec.Multiprocessors != 0 {
		rec.MultiprocessorCount = spec.Multiprocessors
	}
	if spec.CopyEngines != 0 {
		rec.SharedCopyEngineCount = spec.CopyEngines
	}
	return nil
}

func mergeClocks(dst *Clocks, src ClockSpec) {
	if src.GraphicsMHz != 0 {
		dst.Graphics = src.GraphicsMHz
	}
	if src.SMMHz != 0 {
		dst.SM = src.SMMHz
	}
	if src.MemoryMHz != 0 {
		dst.Memory = src.MemoryMHz
	}
}

// parseBusID accepts DDDDDDDD:BB:DD.F or DDDD:BB:DD.F.
func parseBusID(id string) (PCIInfo, error) {
	parts := strings.Split(id, ":")
	if len(parts) != 3 {
		return PCIInfo{}, fmt.Errorf("malformed bus_id '%s'", id)
	}
	devFn := strings.SplitN(parts[2], ".", 2)
	if len(devFn) != 2 {
		return PCIInfo{}, fmt.Errorf("malformed bus_id '%s'", id)
	}

	domain, err := strconv.ParseUint(parts[0], 16, 32)
	if err != nil {
		return PCIInfo{}, fmt.Errorf("malformed bus_id domain '%s': %w", parts[0], err)
	}
	bus, err := strconv.ParseUint(parts[1], 16, 8)
	if err != nil {
		return PCIInfo{}, fmt.Errorf("malformed bus_id bus '%s': %w", parts[1], err)
	}
	device, err := strconv.ParseUint(devFn[0], 16, 8)
	if err != nil {
		return PCIInfo{}, fmt.Errorf("malformed bus_id device '%s': %w", devFn[0], err)
	}
	if _, err := strconv.ParseUint(devFn[1], 16, 8); err != nil {
		return PCIInfo{}, fmt.Errorf("malformed bus_id function '%s': %w", devFn[1], err)
	}

	return PCIInfo{
		Domain:      uint32(domain),
		Bus:         uint32(bus),
		Device:      uint32(device),
		BusID:       fmt.Sprintf("%08X:%02X:%02X.%s", domain, bus, device, devFn[1]),
		BusIDLegacy: fmt.Sprintf("%04X:%02X:%02X.%s", domain, bus, device, devFn[1]),
	}, nil
}

func parseComputeCapability(s string) (int, int, error) {
	major, minor, ok := strings.Cut(s, ".")
	if !ok {
		return 0, 0, fmt.Errorf("compute_capability must look like '8.0', got '%s'", s)
	}
	maj, err := strconv.Atoi(major)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid compute_capability major '%s': %w", major, err)
	}
	mnr, err := strconv.Atoi(minor)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid compute_capability minor '%s': %w", minor, err)
	}
	return maj, mnr, nil
}

// Encode writes t as a fully expanded fixture file.
func Encode(w io.Writer, t *Table) error {
	file := File{
		Version:    FileVersion,
		NumDevices: t.Count(),
		System: SystemSpec{
			DriverVersion:     t.System.DriverVersion,
			NVMLVersion:       t.System.NVMLVersion,
			CUDADriverVersion: t.System.CUDADriverVersion,
			DriverBranch:      t.System.DriverBranch,
		},
	}
	for i := range t.Devices {
		file.Devices = append(file.Devices, specFromRecord(&t.Devices[i]))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("failed to encode fixture: %w", err)
	}
	return enc.Close()
}

func specFromRecord(rec *DeviceRecord) DeviceSpec {
	index := rec.Index
	persistence := "disabled"
	if rec.PersistenceMode == nvml.FEATURE_ENABLED {
		persistence = "enabled"
	}
	computeMode := "default"
	for name, mode := range computeModes {
		if mode == rec.ComputeMode {
			computeMode = name
		}
	}

	return DeviceSpec{
		Index:             &index,
		Name:              rec.Name,
		UUID:              rec.UUID,
		Serial:            rec.Serial,
		BoardPartNumber:   rec.BoardPartNumber,
		BusID:             rec.PCI.BusID,
		PCIDeviceID:       rec.PCI.DeviceID,
		PCISubsystemID:    rec.PCI.SubsystemID,
		MemoryTotalBytes:  rec.Memory.Total,
		MemoryUsedBytes:   rec.Memory.Used,
		BAR1TotalBytes:    rec.BAR1.Total,
		Clocks:            ClockSpec{GraphicsMHz: rec.Clocks.Graphics, SMMHz: rec.Clocks.SM, MemoryMHz: rec.Clocks.Memory},
		MaxClocks:         ClockSpec{GraphicsMHz: rec.MaxClocks.Graphics, SMMHz: rec.MaxClocks.SM, MemoryMHz: rec.MaxClocks.Memory},
		TemperatureC:      rec.TemperatureC,
		PowerUsageMW:      rec.PowerUsageMW,
		PowerLimitMW:      rec.PowerLimitMW,
		ComputeCapability: fmt.Sprintf("%d.%d", rec.ComputeMajor, rec.ComputeMinor),
		PersistenceMode:   persistence,
		ComputeMode:       computeMode,
		Multiprocessors:   rec.MultiprocessorCount,
		CopyEngines:       rec.SharedCopyEngineCount,
	}
}
