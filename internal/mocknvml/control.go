package mocknvml

import (
	"time"

	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"gpumock/internal/abi"
	"gpumock/internal/handle"
)

// DeviceSetPersistenceMode validates mode and returns SUCCESS. The stored
// mode never changes.
func (l *Library) DeviceSetPersistenceMode(h handle.Handle, mode nvml.EnableState) nvml.Return {
	if _, ret := l.device(h); ret != nvml.SUCCESS {
		return ret
	}
	if mode != nvml.FEATURE_DISABLED && mode != nvml.FEATURE_ENABLED {
		return nvml.ERROR_INVALID_ARGUMENT
	}
	l.logger.Debug("mocknvml.device.set_persistence", "Ignored persistence mode change", map[string]interface{}{
		"handle": uint32(h),
		"mode":   int(mode),
	})
	return nvml.SUCCESS
}

// DeviceSetComputeMode validates mode and returns SUCCESS. The stored mode
// never changes.
func (l *Library) DeviceSetComputeMode(h handle.Handle, mode nvml.ComputeMode) nvml.Return {
	if _, ret := l.device(h); ret != nvml.SUCCESS {
		return ret
	}
	switch mode {
	case nvml.COMPUTEMODE_DEFAULT, nvml.COMPUTEMODE_EXCLUSIVE_THREAD,
		nvml.COMPUTEMODE_PROHIBITED, nvml.COMPUTEMODE_EXCLUSIVE_PROCESS:
	default:
		return nvml.ERROR_INVALID_ARGUMENT
	}
	l.logger.Debug("mocknvml.device.set_compute_mode", "Ignored compute mode change", map[string]interface{}{
		"handle": uint32(h),
		"mode":   int(mode),
	})
	return nvml.SUCCESS
}

// GpuInstance and ComputeInstance are MIG handles. No valid value exists.
type (
	GpuInstance     uint32
	ComputeInstance uint32
)

// ComputeInstanceInfo mirrors the vendor record for a compute instance.
type ComputeInstanceInfo struct {
	Device      handle.Handle
	GpuInstance GpuInstance
	ID          uint32
	ProfileID   uint32
}

// DeviceGetMigMode is NOT_SUPPORTED for every valid device.
func (l *Library) DeviceGetMigMode(h handle.Handle) (current, pending int, ret nvml.Return) {
	if _, ret := l.device(h); ret != nvml.SUCCESS {
		return 0, 0, ret
	}
	return 0, 0, nvml.ERROR_NOT_SUPPORTED
}

// DeviceGetMaxMigDeviceCount returns zero with SUCCESS, unlike the other
// MIG queries.
func (l *Library) DeviceGetMaxMigDeviceCount(h handle.Handle) (int, nvml.Return) {
	if _, ret := l.device(h); ret != nvml.SUCCESS {
		return 0, ret
	}
	return 0, nvml.SUCCESS
}

// DeviceGetGpuInstancePossiblePlacements reports a count of zero and
// NOT_SUPPORTED. out is never written.
func (l *Library) DeviceGetGpuInstancePossiblePlacements(h handle.Handle, profileID int, out []nvml.GpuInstancePlacement) (int, nvml.Return) {
	if _, ret := l.device(h); ret != nvml.SUCCESS {
		return 0, ret
	}
	return 0, nvml.ERROR_NOT_SUPPORTED
}

// DeviceGetGpuInstances reports a count of zero and NOT_SUPPORTED.
func (l *Library) DeviceGetGpuInstances(h handle.Handle, profileID int, out []GpuInstance) (int, nvml.Return) {
	if _, ret := l.device(h); ret != nvml.SUCCESS {
		return 0, ret
	}
	return 0, nvml.ERROR_NOT_SUPPORTED
}

func (l *Library) DeviceCreateGpuInstance(h handle.Handle, profileID int) (GpuInstance, nvml.Return) {
	if _, ret := l.device(h); ret != nvml.SUCCESS {
		return 0, ret
	}
	return 0, nvml.ERROR_NOT_SUPPORTED
}

func (l *Library) GpuInstanceDestroy(gi GpuInstance) nvml.Return {
	if ret := l.gate(); ret != nvml.SUCCESS {
		return ret
	}
	return nvml.ERROR_NOT_SUPPORTED
}

func (l *Library) ComputeInstanceGetInfo(ci ComputeInstance) (ComputeInstanceInfo, nvml.Return) {
	if ret := l.gate(); ret != nvml.SUCCESS {
		return ComputeInstanceInfo{}, ret
	}
	return ComputeInstanceInfo{}, nvml.ERROR_NOT_SUPPORTED
}

func runningProcesses[T abi.ProcessRecord](l *Library, h handle.Handle, out []T) (int, nvml.Return) {
	if _, ret := l.device(h); ret != nvml.SUCCESS {
		return 0, ret
	}
	return abi.RunningProcesses(out)
}

// DeviceGetComputeRunningProcesses uses the current process record shape.
// Every process query reports zero processes.
func (l *Library) DeviceGetComputeRunningProcesses(h handle.Handle, out []nvml.ProcessInfo) (int, nvml.Return) {
	return runningProcesses(l, h, out)
}

func (l *Library) DeviceGetComputeRunningProcesses_v1(h handle.Handle, out []nvml.ProcessInfo_v1) (int, nvml.Return) {
	return runningProcesses(l, h, out)
}

func (l *Library) DeviceGetComputeRunningProcesses_v2(h handle.Handle, out []nvml.ProcessInfo_v2) (int, nvml.Return) {
	return runningProcesses(l, h, out)
}

func (l *Library) DeviceGetGraphicsRunningProcesses(h handle.Handle, out []nvml.ProcessInfo) (int, nvml.Return) {
	return runningProcesses(l, h, out)
}

func (l *Library) DeviceGetGraphicsRunningProcesses_v1(h handle.Handle, out []nvml.ProcessInfo_v1) (int, nvml.Return) {
	return runningProcesses(l, h, out)
}

func (l *Library) DeviceGetGraphicsRunningProcesses_v2(h handle.Handle, out []nvml.ProcessInfo_v2) (int, nvml.Return) {
	return runningProcesses(l, h, out)
}

func (l *Library) DeviceGetMPSComputeRunningProcesses(h handle.Handle, out []nvml.ProcessInfo) (int, nvml.Return) {
	return runningProcesses(l, h, out)
}

func (l *Library) DeviceGetMPSComputeRunningProcesses_v1(h handle.Handle, out []nvml.ProcessInfo_v1) (int, nvml.Return) {
	return runningProcesses(l, h, out)
}

func (l *Library) DeviceGetMPSComputeRunningProcesses_v2(h handle.Handle, out []nvml.ProcessInfo_v2) (int, nvml.Return) {
	return runningProcesses(l, h, out)
}

// EventSet is an opaque event-set token. Zero is never issued.
type EventSet uint32

// EventData is the record EventSetWait would fill. It is never filled.
type EventData struct {
	Device            handle.Handle
	EventType         uint64
	EventData         uint64
	GpuInstanceID     uint32
	ComputeInstanceID uint32
}

// EventSetCreate returns a fresh non-zero set.
func (l *Library) EventSetCreate() (EventSet, nvml.Return) {
	if ret := l.gate(); ret != nvml.SUCCESS {
		return 0, ret
	}
	l.eventMu.Lock()
	l.nextEventSet++
	if l.nextEventSet == 0 {
		l.nextEventSet = 1
	}
	set := l.nextEventSet
	l.eventMu.Unlock()
	return set, nvml.SUCCESS
}

// DeviceRegisterEvents accepts only the empty mask.
func (l *Library) DeviceRegisterEvents(h handle.Handle, eventTypes uint64, set EventSet) nvml.Return {
	if _, ret := l.device(h); ret != nvml.SUCCESS {
		return ret
	}
	if eventTypes != 0 {
		return nvml.ERROR_NOT_SUPPORTED
	}
	return nvml.SUCCESS
}

// DeviceGetSupportedEventTypes returns an empty mask.
func (l *Library) DeviceGetSupportedEventTypes(h handle.Handle) (uint64, nvml.Return) {
	if _, ret := l.device(h); ret != nvml.SUCCESS {
		return 0, ret
	}
	return 0, nvml.SUCCESS
}

// EventSetWait never delivers an event. It sleeps for at most timeoutMs,
// capped by the configured wait limit, and returns ERROR_TIMEOUT.
func (l *Library) EventSetWait(set EventSet, data *EventData, timeoutMs uint32) nvml.Return {
	if ret := l.gate(); ret != nvml.SUCCESS {
		return ret
	}
	if data == nil {
		return nvml.ERROR_INVALID_ARGUMENT
	}
	wait := min(time.Duration(timeoutMs)*time.Millisecond, l.eventWaitLimit)
	if wait > 0 {
		time.Sleep(wait)
	}
	return nvml.ERROR_TIMEOUT
}

func (l *Library) EventSetFree(set EventSet) nvml.Return {
	return l.gate()
}

// UnitGetCount reports no S-class units.
func (l *Library) UnitGetCount() (int, nvml.Return) {
	if ret := l.gate(); ret != nvml.SUCCESS {
		return 0, ret
	}
	return 0, nvml.SUCCESS
}

// UnitGetHandleByIndex fails for every index since no units exist.
func (l *Library) UnitGetHandleByIndex(index int) (uint32, nvml.Return) {
	if ret := l.gate(); ret != nvml.SUCCESS {
		return 0, ret
	}
	return 0, nvml.ERROR_INVALID_ARGUMENT
}
