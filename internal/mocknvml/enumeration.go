package mocknvml

import (
	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"gpumock/internal/handle"
)

// DeviceGetCount returns the size of the device table.
func (l *Library) DeviceGetCount() (int, nvml.Return) {
	if ret := l.gate(); ret != nvml.SUCCESS {
		return 0, ret
	}
	return l.codec.Count(), nvml.SUCCESS
}

// DeviceGetHandleByIndex returns the handle of the device at index.
func (l *Library) DeviceGetHandleByIndex(index int) (handle.Handle, nvml.Return) {
	if ret := l.gate(); ret != nvml.SUCCESS {
		return handle.Invalid, ret
	}
	h, ok := l.codec.Encode(index)
	if !ok {
		return handle.Invalid, nvml.ERROR_INVALID_ARGUMENT
	}
	return h, nvml.SUCCESS
}

// DeviceGetHandleByUUID returns the handle of the device whose UUID matches
// exactly.
func (l *Library) DeviceGetHandleByUUID(uuid string) (handle.Handle, nvml.Return) {
	if ret := l.gate(); ret != nvml.SUCCESS {
		return handle.Invalid, ret
	}
	if uuid == "" {
		return handle.Invalid, nvml.ERROR_INVALID_ARGUMENT
	}
	index, ok := l.table.FindUUID(uuid)
	if !ok {
		return handle.Invalid, nvml.ERROR_NOT_FOUND
	}
	h, _ := l.codec.Encode(index)
	return h, nvml.SUCCESS
}

// DeviceGetHandleByPciBusId accepts either bus id form.
func (l *Library) DeviceGetHandleByPciBusId(busID string) (handle.Handle, nvml.Return) {
	if ret := l.gate(); ret != nvml.SUCCESS {
		return handle.Invalid, ret
	}
	if busID == "" {
		return handle.Invalid, nvml.ERROR_INVALID_ARGUMENT
	}
	index, ok := l.table.FindBusID(busID)
	if !ok {
		return handle.Invalid, nvml.ERROR_NOT_FOUND
	}
	h, _ := l.codec.Encode(index)
	return h, nvml.SUCCESS
}
