package mocknvml

import (
	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"gpumock/internal/abi"
	"gpumock/internal/fixture"
	"gpumock/internal/handle"
)

const mib = 1024 * 1024

// energyPerIndexMJ scales the synthetic energy counter by device position.
const energyPerIndexMJ = 1000000

// stringField runs the gate, decodes h and applies the capacity rule to the
// field selected by get.
func (l *Library) stringField(h handle.Handle, length uint32, get func(*fixture.DeviceRecord) string) (string, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return "", ret
	}
	value := get(rec)
	if ret := abi.CheckString(value, length); ret != nvml.SUCCESS {
		return "", ret
	}
	return value, nvml.SUCCESS
}

// DeviceGetName returns the product name. length is the caller's buffer
// capacity including the terminator.
func (l *Library) DeviceGetName(h handle.Handle, length uint32) (string, nvml.Return) {
	return l.stringField(h, length, func(r *fixture.DeviceRecord) string { return r.Name })
}

func (l *Library) DeviceGetUUID(h handle.Handle, length uint32) (string, nvml.Return) {
	return l.stringField(h, length, func(r *fixture.DeviceRecord) string { return r.UUID })
}

func (l *Library) DeviceGetSerial(h handle.Handle, length uint32) (string, nvml.Return) {
	return l.stringField(h, length, func(r *fixture.DeviceRecord) string { return r.Serial })
}

func (l *Library) DeviceGetBoardPartNumber(h handle.Handle, length uint32) (string, nvml.Return) {
	return l.stringField(h, length, func(r *fixture.DeviceRecord) string { return r.BoardPartNumber })
}

func (l *Library) DeviceGetMinorNumber(h handle.Handle) (int, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return 0, ret
	}
	return rec.MinorNumber, nvml.SUCCESS
}

func (l *Library) DeviceGetIndex(h handle.Handle) (int, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return 0, ret
	}
	return rec.Index, nvml.SUCCESS
}

func (l *Library) DeviceGetBrand(h handle.Handle) (nvml.BrandType, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return 0, ret
	}
	return rec.Brand, nvml.SUCCESS
}

// DeviceGetPciInfo backs every PCI info revision.
func (l *Library) DeviceGetPciInfo(h handle.Handle) (nvml.PciInfo, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return nvml.PciInfo{}, ret
	}
	return abi.PciInfo(rec.PCI), nvml.SUCCESS
}

func (l *Library) DeviceGetPciInfo_v2(h handle.Handle) (nvml.PciInfo, nvml.Return) {
	return l.DeviceGetPciInfo(h)
}

func (l *Library) DeviceGetPciInfo_v3(h handle.Handle) (nvml.PciInfo, nvml.Return) {
	return l.DeviceGetPciInfo(h)
}

// DeviceGetMemoryInfo returns the v1 memory shape.
func (l *Library) DeviceGetMemoryInfo(h handle.Handle) (nvml.Memory, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return nvml.Memory{}, ret
	}
	return abi.Memory(rec.Memory), nvml.SUCCESS
}

// DeviceGetMemoryInfo_v2 fills mem. mem.Version must be zero or
// abi.MemoryV2Version; on success it is set to the latter.
func (l *Library) DeviceGetMemoryInfo_v2(h handle.Handle, mem *nvml.Memory_v2) nvml.Return {
	if ret := l.gate(); ret != nvml.SUCCESS {
		return ret
	}
	if mem == nil {
		return nvml.ERROR_INVALID_ARGUMENT
	}
	rec, ret := l.lookup(h)
	if ret != nvml.SUCCESS {
		return ret
	}
	if ret := abi.CheckMemoryV2Version(mem.Version); ret != nvml.SUCCESS {
		return ret
	}
	abi.FillMemoryV2(mem, rec.Memory)
	return nvml.SUCCESS
}

func (l *Library) DeviceGetBAR1MemoryInfo(h handle.Handle) (nvml.BAR1Memory, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return nvml.BAR1Memory{}, ret
	}
	return abi.BAR1Memory(rec.BAR1), nvml.SUCCESS
}

// DeviceGetTemperature reads the GPU die sensor. Other sensors are
// NOT_SUPPORTED.
func (l *Library) DeviceGetTemperature(h handle.Handle, sensor nvml.TemperatureSensors) (uint32, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return 0, ret
	}
	if sensor != nvml.TEMPERATURE_GPU {
		return 0, nvml.ERROR_NOT_SUPPORTED
	}
	return rec.TemperatureC, nvml.SUCCESS
}

// DeviceGetPowerUsage returns milliwatts.
func (l *Library) DeviceGetPowerUsage(h handle.Handle) (uint32, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return 0, ret
	}
	return rec.PowerUsageMW, nvml.SUCCESS
}

func (l *Library) DeviceGetEnforcedPowerLimit(h handle.Handle) (uint32, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return 0, ret
	}
	return rec.PowerLimitMW, nvml.SUCCESS
}

func (l *Library) DeviceGetPowerManagementLimit(h handle.Handle) (uint32, nvml.Return) {
	return l.DeviceGetEnforcedPowerLimit(h)
}

// DeviceGetTotalEnergyConsumption returns millijoules since an arbitrary
// epoch. The counter is fixed per device.
func (l *Library) DeviceGetTotalEnergyConsumption(h handle.Handle) (uint64, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return 0, ret
	}
	return energyPerIndexMJ * uint64(rec.Index+1), nvml.SUCCESS
}

func pickClock(c fixture.Clocks, clockType nvml.ClockType) (uint32, nvml.Return) {
	switch clockType {
	case nvml.CLOCK_GRAPHICS:
		return c.Graphics, nvml.SUCCESS
	case nvml.CLOCK_SM:
		return c.SM, nvml.SUCCESS
	case nvml.CLOCK_MEM:
		return c.Memory, nvml.SUCCESS
	default:
		return 0, nvml.ERROR_NOT_SUPPORTED
	}
}

func (l *Library) DeviceGetClockInfo(h handle.Handle, clockType nvml.ClockType) (uint32, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return 0, ret
	}
	return pickClock(rec.Clocks, clockType)
}

func (l *Library) DeviceGetMaxClockInfo(h handle.Handle, clockType nvml.ClockType) (uint32, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return 0, ret
	}
	return pickClock(rec.MaxClocks, clockType)
}

// DeviceGetClock reports the boost ceiling for CLOCK_ID_CUSTOMER_BOOST_MAX
// and the current clock for every other id.
func (l *Library) DeviceGetClock(h handle.Handle, clockType nvml.ClockType, clockID nvml.ClockId) (uint32, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return 0, ret
	}
	if clockID == nvml.CLOCK_ID_CUSTOMER_BOOST_MAX {
		return pickClock(rec.MaxClocks, clockType)
	}
	return pickClock(rec.Clocks, clockType)
}

func (l *Library) DeviceGetCudaComputeCapability(h handle.Handle) (int, int, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return 0, 0, ret
	}
	return rec.ComputeMajor, rec.ComputeMinor, nvml.SUCCESS
}

func (l *Library) DeviceGetPersistenceMode(h handle.Handle) (nvml.EnableState, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return nvml.FEATURE_DISABLED, ret
	}
	return rec.PersistenceMode, nvml.SUCCESS
}

func (l *Library) DeviceGetDisplayMode(h handle.Handle) (nvml.EnableState, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return nvml.FEATURE_DISABLED, ret
	}
	return rec.DisplayMode, nvml.SUCCESS
}

func (l *Library) DeviceGetDisplayActive(h handle.Handle) (nvml.EnableState, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return nvml.FEATURE_DISABLED, ret
	}
	return rec.DisplayActive, nvml.SUCCESS
}

func (l *Library) DeviceGetComputeMode(h handle.Handle) (nvml.ComputeMode, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return nvml.COMPUTEMODE_DEFAULT, ret
	}
	return rec.ComputeMode, nvml.SUCCESS
}

// DeviceGetAttributes reports the whole-GPU attributes. MIG slice counts
// are zero.
func (l *Library) DeviceGetAttributes(h handle.Handle) (nvml.DeviceAttributes, nvml.Return) {
	rec, ret := l.device(h)
	if ret != nvml.SUCCESS {
		return nvml.DeviceAttributes{}, ret
	}
	return nvml.DeviceAttributes{
		MultiprocessorCount:   rec.MultiprocessorCount,
		SharedCopyEngineCount: rec.SharedCopyEngineCount,
		MemorySizeMB:          rec.Memory.Total / mib,
	}, nvml.SUCCESS
}

// DeviceGetUtilizationRates reports an idle device.
func (l *Library) DeviceGetUtilizationRates(h handle.Handle) (nvml.Utilization, nvml.Return) {
	if _, ret := l.device(h); ret != nvml.SUCCESS {
		return nvml.Utilization{}, ret
	}
	return nvml.Utilization{Gpu: 0, Memory: 0}, nvml.SUCCESS
}
