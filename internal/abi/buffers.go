// Package abi converts fixture records into the versioned result shapes of
// the vendor library and enforces its caller-buffer conventions.
package abi

import (
	"math"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// Default capacities the vendor library documents for string outputs.
const (
	DeviceNameBufferSize          = 96
	DeviceUUIDBufferSize          = 80
	DeviceSerialBufferSize        = 30
	DevicePartNumberBufferSize    = 80
	PCIBusIDBufferSize            = 32
	PCIBusIDLegacyBufferSize      = 16
	SystemDriverVersionBufferSize = 80
	SystemNVMLVersionBufferSize   = 80
	DriverBranchBufferSize        = 80
	ProcessNameBufferSize         = 256
)

// CheckString applies the capacity rule to a string result: a zero
// capacity is INVALID_ARGUMENT, a capacity below len(value)+1 is
// INSUFFICIENT_SIZE.
func CheckString(value string, length uint32) nvml.Return {
	if length == 0 {
		return nvml.ERROR_INVALID_ARGUMENT
	}
	if uint64(len(value))+1 > uint64(length) {
		return nvml.ERROR_INSUFFICIENT_SIZE
	}
	return nvml.SUCCESS
}

// PutCString copies value into dst followed by a NUL and zeroes the rest.
// dst is untouched when the call fails.
func PutCString(dst []byte, value string) nvml.Return {
	length := uint32(math.MaxUint32)
	if uint64(len(dst)) < math.MaxUint32 {
		length = uint32(len(dst))
	}
	if ret := CheckString(value, length); ret != nvml.SUCCESS {
		return ret
	}
	n := copy(dst, value)
	clear(dst[n:])
	return nvml.SUCCESS
}

// CString returns the bytes of dst up to the first NUL.
func CString(dst []byte) string {
	for i, b := range dst {
		if b == 0 {
			return string(dst[:i])
		}
	}
	return string(dst)
}

// putFixed truncates value to fit a fixed array, always leaving a NUL.
func putFixed(dst []uint8, value string) {
	if len(dst) == 0 {
		return
	}
	if len(value) > len(dst)-1 {
		value = value[:len(dst)-1]
	}
	n := copy(dst, value)
	clear(dst[n:])
}
