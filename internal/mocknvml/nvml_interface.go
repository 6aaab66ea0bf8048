package mocknvml

import (
	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"gpumock/internal/abi"
	"gpumock/internal/handle"
)

//go:generate go run ./internal/fallbackgen -out zz_generated.fallback.go

// iface exposes a Library through go-nvml's nvml.Interface. Methods the
// mock does not model return ERROR_NOT_SUPPORTED. Handle-bound methods such
// as DeviceGetName forward to the handle.
type iface struct {
	fallbackInterface
	lib *Library
}

// device is the nvml.Device view of one handle.
type device struct {
	fallbackDevice
	lib *Library
	h   handle.Handle
}

// eventSet is the nvml.EventSet view of a mock event set.
type eventSet struct {
	fallbackEventSet
	lib *Library
	set EventSet
}

// gpuInstance is the nvml.GpuInstance view of a MIG handle. The mock never
// issues one, but the type keeps the list calls honest.
type gpuInstance struct {
	fallbackGpuInstance
	lib *Library
	gi  GpuInstance
}

// NewInterface adapts lib to nvml.Interface so code written against the
// real bindings can run against the mock.
func NewInterface(lib *Library) nvml.Interface {
	return &iface{lib: lib}
}

// HandleOf returns the mock handle behind d, if d came from this package.
func HandleOf(d nvml.Device) (handle.Handle, bool) {
	dev, ok := d.(*device)
	if !ok || dev == nil {
		return handle.Invalid, false
	}
	return dev.h, true
}

func (i *iface) wrap(h handle.Handle, ret nvml.Return) (nvml.Device, nvml.Return) {
	if ret != nvml.SUCCESS {
		return nil, ret
	}
	return &device{lib: i.lib, h: h}, nvml.SUCCESS
}

// fetchList runs the two-phase protocol for the caller: size query, then
// fill.
func fetchList[T any](query func([]T) (int, nvml.Return)) ([]T, nvml.Return) {
	n, ret := query(nil)
	if ret != nvml.SUCCESS {
		return nil, ret
	}
	out := make([]T, n)
	if n == 0 {
		return out, nvml.SUCCESS
	}
	n, ret = query(out)
	if ret != nvml.SUCCESS {
		return nil, ret
	}
	return out[:n], nvml.SUCCESS
}

func (i *iface) devices(handles []handle.Handle) []nvml.Device {
	out := make([]nvml.Device, len(handles))
	for n, h := range handles {
		out[n] = &device{lib: i.lib, h: h}
	}
	return out
}

func (i *iface) Init() nvml.Return { return i.lib.Init() }
func (i *iface) InitWithFlags(flags uint32) nvml.Return { return i.lib.InitWithFlags(flags) }
func (i *iface) Shutdown() nvml.Return { return i.lib.Shutdown() }
func (i *iface) ErrorString(ret nvml.Return) string { return ErrorString(ret) }
func (i *iface) DeviceGetCount() (int, nvml.Return) { return i.lib.DeviceGetCount() }
func (i *iface) UnitGetCount() (int, nvml.Return) { return i.lib.UnitGetCount() }

func (i *iface) SystemGetCudaDriverVersion() (int, nvml.Return) {
	return i.lib.SystemGetCudaDriverVersion()
}

func (i *iface) SystemGetCudaDriverVersion_v2() (int, nvml.Return) {
	return i.lib.SystemGetCudaDriverVersion_v2()
}

func (i *iface) DeviceGetHandleByIndex(index int) (nvml.Device, nvml.Return) {
	return i.wrap(i.lib.DeviceGetHandleByIndex(index))
}

func (i *iface) DeviceGetHandleByUUID(uuid string) (nvml.Device, nvml.Return) {
	return i.wrap(i.lib.DeviceGetHandleByUUID(uuid))
}

func (i *iface) DeviceGetHandleByPciBusId(busID string) (nvml.Device, nvml.Return) {
	return i.wrap(i.lib.DeviceGetHandleByPciBusId(busID))
}

func (i *iface) SystemGetDriverVersion() (string, nvml.Return) {
	return i.lib.SystemGetDriverVersion(abi.SystemDriverVersionBufferSize)
}

func (i *iface) SystemGetNVMLVersion() (string, nvml.Return) {
	return i.lib.SystemGetNVMLVersion(abi.SystemNVMLVersionBufferSize)
}

func (i *iface) SystemGetProcessName(pid int) (string, nvml.Return) {
	return i.lib.SystemGetProcessName(pid, abi.ProcessNameBufferSize)
}

// SystemGetDriverBranch fills the versioned branch record.
func (i *iface) SystemGetDriverBranch() (nvml.SystemDriverBranchInfo, nvml.Return) {
	var info nvml.SystemDriverBranchInfo
	branch, ret := i.lib.SystemGetDriverBranch(abi.DriverBranchBufferSize)
	if ret != nvml.SUCCESS {
		return info, ret
	}
	info.Version = abi.DriverBranchVersion
	if ret := abi.PutCString(info.Branch[:], branch); ret != nvml.SUCCESS {
		return nvml.SystemDriverBranchInfo{}, ret
	}
	return info, nvml.SUCCESS
}

func (i *iface) SystemGetHicVersion() ([]nvml.HwbcEntry, nvml.Return) {
	return fetchList(i.lib.SystemGetHicVersion)
}

// UnitGetHandleByIndex never yields a unit.
func (i *iface) UnitGetHandleByIndex(index int) (nvml.Unit, nvml.Return) {
	_, ret := i.lib.UnitGetHandleByIndex(index)
	if ret == nvml.SUCCESS {
		ret = nvml.ERROR_INVALID_ARGUMENT
	}
	return nil, ret
}

func (i *iface) EventSetCreate() (nvml.EventSet, nvml.Return) {
	set, ret := i.lib.EventSetCreate()
	if ret != nvml.SUCCESS {
		return nil, ret
	}
	return &eventSet{lib: i.lib, set: set}, nvml.SUCCESS
}

func (i *iface) SystemGetTopologyGpuSet(cpuNumber int) ([]nvml.Device, nvml.Return) {
	if cpuNumber < 0 {
		return nil, nvml.ERROR_INVALID_ARGUMENT
	}
	handles, ret := fetchList(func(out []handle.Handle) (int, nvml.Return) {
		return i.lib.SystemGetTopologyGpuSet(uint32(cpuNumber), out)
	})
	if ret != nvml.SUCCESS {
		return nil, ret
	}
	return i.devices(handles), nvml.SUCCESS
}

func (d *device) GetName() (string, nvml.Return) {
	return d.lib.DeviceGetName(d.h, abi.DeviceNameBufferSize)
}

func (d *device) GetUUID() (string, nvml.Return) {
	return d.lib.DeviceGetUUID(d.h, abi.DeviceUUIDBufferSize)
}

func (d *device) GetSerial() (string, nvml.Return) {
	return d.lib.DeviceGetSerial(d.h, abi.DeviceSerialBufferSize)
}

func (d *device) GetBoardPartNumber() (string, nvml.Return) {
	return d.lib.DeviceGetBoardPartNumber(d.h, abi.DevicePartNumberBufferSize)
}

func (d *device) GetMinorNumber() (int, nvml.Return) { return d.lib.DeviceGetMinorNumber(d.h) }
func (d *device) GetIndex() (int, nvml.Return) { return d.lib.DeviceGetIndex(d.h) }
func (d *device) GetBrand() (nvml.BrandType, nvml.Return) { return d.lib.DeviceGetBrand(d.h) }
func (d *device) GetPciInfo() (nvml.PciInfo, nvml.Return) { return d.lib.DeviceGetPciInfo(d.h) }
func (d *device) GetMemoryInfo() (nvml.Memory, nvml.Return) { return d.lib.DeviceGetMemoryInfo(d.h) }
func (d *device) GetPowerUsage() (uint32, nvml.Return) { return d.lib.DeviceGetPowerUsage(d.h) }
func (d *device) GetMaxMigDeviceCount() (int, nvml.Return) { return d.lib.DeviceGetMaxMigDeviceCount(d.h) }

func (d *device) GetSupportedEventTypes() (uint64, nvml.Return) {
	return d.lib.DeviceGetSupportedEventTypes(d.h)
}

func (d *device) GetMemoryInfo_v2() (nvml.Memory_v2, nvml.Return) {
	var mem nvml.Memory_v2
	ret := d.lib.DeviceGetMemoryInfo_v2(d.h, &mem)
	return mem, ret
}

func (d *device) GetBAR1MemoryInfo() (nvml.BAR1Memory, nvml.Return) {
	return d.lib.DeviceGetBAR1MemoryInfo(d.h)
}

func (d *device) GetTemperature(sensor nvml.TemperatureSensors) (uint32, nvml.Return) {
	return d.lib.DeviceGetTemperature(d.h, sensor)
}

func (d *device) GetEnforcedPowerLimit() (uint32, nvml.Return) {
	return d.lib.DeviceGetEnforcedPowerLimit(d.h)
}

func (d *device) GetPowerManagementLimit() (uint32, nvml.Return) {
	return d.lib.DeviceGetPowerManagementLimit(d.h)
}

func (d *device) GetTotalEnergyConsumption() (uint64, nvml.Return) {
	return d.lib.DeviceGetTotalEnergyConsumption(d.h)
}

func (d *device) GetClockInfo(clockType nvml.ClockType) (uint32, nvml.Return) {
	return d.lib.DeviceGetClockInfo(d.h, clockType)
}

func (d *device) GetMaxClockInfo(clockType nvml.ClockType) (uint32, nvml.Return) {
	return d.lib.DeviceGetMaxClockInfo(d.h, clockType)
}

func (d *device) GetClock(clockType nvml.ClockType, clockID nvml.ClockId) (uint32, nvml.Return) {
	return d.lib.DeviceGetClock(d.h, clockType, clockID)
}

func (d *device) GetCudaComputeCapability() (int, int, nvml.Return) {
	return d.lib.DeviceGetCudaComputeCapability(d.h)
}

func (d *device) GetPersistenceMode() (nvml.EnableState, nvml.Return) {
	return d.lib.DeviceGetPersistenceMode(d.h)
}

func (d *device) GetDisplayMode() (nvml.EnableState, nvml.Return) {
	return d.lib.DeviceGetDisplayMode(d.h)
}

func (d *device) GetDisplayActive() (nvml.EnableState, nvml.Return) {
	return d.lib.DeviceGetDisplayActive(d.h)
}

func (d *device) GetComputeMode() (nvml.ComputeMode, nvml.Return) {
	return d.lib.DeviceGetComputeMode(d.h)
}

func (d *device) GetAttributes() (nvml.DeviceAttributes, nvml.Return) {
	return d.lib.DeviceGetAttributes(d.h)
}

func (d *device) GetUtilizationRates() (nvml.Utilization, nvml.Return) {
	return d.lib.DeviceGetUtilizationRates(d.h)
}

func (d *device) SetPersistenceMode(mode nvml.EnableState) nvml.Return {
	return d.lib.DeviceSetPersistenceMode(d.h, mode)
}

func (d *device) SetComputeMode(mode nvml.ComputeMode) nvml.Return {
	return d.lib.DeviceSetComputeMode(d.h, mode)
}

func (d *device) GetMigMode() (int, int, nvml.Return) {
	return d.lib.DeviceGetMigMode(d.h)
}

func (d *device) GetComputeRunningProcesses() ([]nvml.ProcessInfo, nvml.Return) {
	return fetchList(func(out []nvml.ProcessInfo) (int, nvml.Return) {
		return d.lib.DeviceGetComputeRunningProcesses(d.h, out)
	})
}

func (d *device) GetGraphicsRunningProcesses() ([]nvml.ProcessInfo, nvml.Return) {
	return fetchList(func(out []nvml.ProcessInfo) (int, nvml.Return) {
		return d.lib.DeviceGetGraphicsRunningProcesses(d.h, out)
	})
}

func (d *device) GetMPSComputeRunningProcesses() ([]nvml.ProcessInfo, nvml.Return) {
	return fetchList(func(out []nvml.ProcessInfo) (int, nvml.Return) {
		return d.lib.DeviceGetMPSComputeRunningProcesses(d.h, out)
	})
}

func (d *device) GetNvLinkState(link int) (nvml.EnableState, nvml.Return) {
	return d.lib.DeviceGetNvLinkState(d.h, link)
}

func (d *device) GetNvLinkRemotePciInfo(link int) (nvml.PciInfo, nvml.Return) {
	return d.lib.DeviceGetNvLinkRemotePciInfo(d.h, link)
}

func (d *device) GetP2PStatus(other nvml.Device, caps nvml.GpuP2PCapsIndex) (nvml.GpuP2PStatus, nvml.Return) {
	h, _ := HandleOf(other)
	return d.lib.DeviceGetP2PStatus(d.h, h, caps)
}

func (d *device) GetTopologyCommonAncestor(other nvml.Device) (nvml.GpuTopologyLevel, nvml.Return) {
	h, _ := HandleOf(other)
	return d.lib.DeviceGetTopologyCommonAncestor(d.h, h)
}

func (d *device) GetTopologyNearestGpus(level nvml.GpuTopologyLevel) ([]nvml.Device, nvml.Return) {
	handles, ret := fetchList(func(out []handle.Handle) (int, nvml.Return) {
		return d.lib.DeviceGetTopologyNearestGpus(d.h, level, out)
	})
	if ret != nvml.SUCCESS {
		return nil, ret
	}
	out := make([]nvml.Device, len(handles))
	for n, h := range handles {
		out[n] = &device{lib: d.lib, h: h}
	}
	return out, nvml.SUCCESS
}

// argument reports the session and handle checks for d, or
// INVALID_ARGUMENT when both pass. It serves calls with a nil or foreign
// argument.
func (d *device) argument() nvml.Return {
	if _, ret := d.lib.DeviceGetIndex(d.h); ret != nvml.SUCCESS {
		return ret
	}
	return nvml.ERROR_INVALID_ARGUMENT
}

func (d *device) RegisterEvents(eventTypes uint64, set nvml.EventSet) nvml.Return {
	es, ok := set.(*eventSet)
	if !ok || es == nil {
		return d.argument()
	}
	return d.lib.DeviceRegisterEvents(d.h, eventTypes, es.set)
}

func (d *device) GetGpuInstancePossiblePlacements(info *nvml.GpuInstanceProfileInfo) ([]nvml.GpuInstancePlacement, nvml.Return) {
	if info == nil {
		return nil, d.argument()
	}
	return fetchList(func(out []nvml.GpuInstancePlacement) (int, nvml.Return) {
		return d.lib.DeviceGetGpuInstancePossiblePlacements(d.h, int(info.Id), out)
	})
}

func (d *device) GetGpuInstances(info *nvml.GpuInstanceProfileInfo) ([]nvml.GpuInstance, nvml.Return) {
	if info == nil {
		return nil, d.argument()
	}
	instances, ret := fetchList(func(out []GpuInstance) (int, nvml.Return) {
		return d.lib.DeviceGetGpuInstances(d.h, int(info.Id), out)
	})
	if ret != nvml.SUCCESS {
		return nil, ret
	}
	out := make([]nvml.GpuInstance, len(instances))
	for n, gi := range instances {
		out[n] = &gpuInstance{lib: d.lib, gi: gi}
	}
	return out, nvml.SUCCESS
}

func (d *device) CreateGpuInstance(info *nvml.GpuInstanceProfileInfo) (nvml.GpuInstance, nvml.Return) {
	if info == nil {
		return nil, d.argument()
	}
	gi, ret := d.lib.DeviceCreateGpuInstance(d.h, int(info.Id))
	if ret != nvml.SUCCESS {
		return nil, ret
	}
	return &gpuInstance{lib: d.lib, gi: gi}, nvml.SUCCESS
}

func (g *gpuInstance) Destroy() nvml.Return { return g.lib.GpuInstanceDestroy(g.gi) }

// Wait blocks for at most timeoutMs and reports ERROR_TIMEOUT.
func (e *eventSet) Wait(timeoutMs uint32) (nvml.EventData, nvml.Return) {
	var data EventData
	ret := e.lib.EventSetWait(e.set, &data, timeoutMs)
	return nvml.EventData{}, ret
}

func (e *eventSet) Free() nvml.Return { return e.lib.EventSetFree(e.set) }
