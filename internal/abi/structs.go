package abi

import (
	"unsafe"

	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"gpumock/internal/fixture"
)

// StructVersion builds a version tag the way the vendor headers do:
// struct size in the low bits, revision in the top byte.
func StructVersion(size uintptr, revision uint32) uint32 {
	return uint32(size) | revision<<24
}

// MemoryV2Version is the tag callers place in nvml.Memory_v2.Version.
var MemoryV2Version = StructVersion(unsafe.Sizeof(nvml.Memory_v2{}), 2)

// DriverBranchVersion is the tag of nvml.SystemDriverBranchInfo.
var DriverBranchVersion = StructVersion(unsafe.Sizeof(nvml.SystemDriverBranchInfo{}), 1)

// Memory returns the v1 memory shape.
func Memory(m fixture.MemoryInfo) nvml.Memory {
	return nvml.Memory{
		Total: m.Total,
		Free:  m.Free,
		Used:  m.Used,
	}
}

// CheckMemoryV2Version accepts the v2 tag or the unset zero tag.
func CheckMemoryV2Version(version uint32) nvml.Return {
	if version != 0 && version != MemoryV2Version {
		return nvml.ERROR_INVALID_ARGUMENT
	}
	return nvml.SUCCESS
}

// FillMemoryV2 overwrites every field of dst with the v2 shape of m.
func FillMemoryV2(dst *nvml.Memory_v2, m fixture.MemoryInfo) {
	*dst = nvml.Memory_v2{
		Version:  MemoryV2Version,
		Total:    m.Total,
		Reserved: 0,
		Free:     m.Free,
		Used:     m.Used,
	}
}

// BAR1Memory returns the BAR1 aperture shape.
func BAR1Memory(m fixture.MemoryInfo) nvml.BAR1Memory {
	return nvml.BAR1Memory{
		Bar1Total: m.Total,
		Bar1Free:  m.Free,
		Bar1Used:  m.Used,
	}
}

// PciInfo returns the PCI shape shared by the v2 and v3 entry points.
func PciInfo(p fixture.PCIInfo) nvml.PciInfo {
	var info nvml.PciInfo
	info.Domain = p.Domain
	info.Bus = p.Bus
	info.Device = p.Device
	info.PciDeviceId = p.DeviceID
	info.PciSubSystemId = p.SubsystemID
	putFixed(info.BusId[:], p.BusID)
	putFixed(info.BusIdLegacy[:], p.BusIDLegacy)
	return info
}

// BusID returns the 8-digit-domain bus id carried in info.
func BusID(info nvml.PciInfo) string {
	return CString(info.BusId[:])
}

// ProcessRecord lists the process-info shapes of each API revision.
type ProcessRecord interface {
	nvml.ProcessInfo_v1 | nvml.ProcessInfo_v2 | nvml.ProcessInfo
}

// RunningProcesses applies the two-phase list protocol to an always empty
// process list. out is never written.
func RunningProcesses[T ProcessRecord](out []T) (int, nvml.Return) {
	return 0, nvml.SUCCESS
}

// ListResult applies the two-phase list protocol: a nil out reports the
// required count, a short out reports it with INSUFFICIENT_SIZE, otherwise
// fill writes the first required elements.
func ListResult[T any](out []T, required int, fill func(out []T)) (int, nvml.Return) {
	if out == nil {
		return required, nvml.SUCCESS
	}
	if len(out) < required {
		return required, nvml.ERROR_INSUFFICIENT_SIZE
	}
	fill(out[:required])
	return required, nvml.SUCCESS
}
