package abi

import (
	"testing"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gpumock/internal/fixture"
)

const a100Name = "NVIDIA A100-SXM4-40GB"

func TestCheckString(t *testing.T) {
	tests := []struct {
		name   string
		length uint32
		want   nvml.Return
	}{
		{"zero capacity", 0, nvml.ERROR_INVALID_ARGUMENT},
		{"one short", uint32(len(a100Name)), nvml.ERROR_INSUFFICIENT_SIZE},
		{"exact", uint32(len(a100Name) + 1), nvml.SUCCESS},
		{"default", DeviceNameBufferSize, nvml.SUCCESS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckString(a100Name, tt.length))
		})
	}
}

func TestPutCString(t *testing.T) {
	t.Run("exact fit terminates", func(t *testing.T) {
		buf := make([]byte, len(a100Name)+1)
		require.Equal(t, nvml.SUCCESS, PutCString(buf, a100Name))
		assert.Equal(t, byte(0), buf[len(a100Name)])
		assert.Equal(t, a100Name, CString(buf))
	})

	t.Run("one short leaves buffer untouched", func(t *testing.T) {
		buf := make([]byte, len(a100Name))
		for i := range buf {
			buf[i] = 'x'
		}
		require.Equal(t, nvml.ERROR_INSUFFICIENT_SIZE, PutCString(buf, a100Name))
		for _, b := range buf {
			assert.Equal(t, byte('x'), b)
		}
	})

	t.Run("nil buffer", func(t *testing.T) {
		assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, PutCString(nil, a100Name))
	})

	t.Run("tail zeroed", func(t *testing.T) {
		buf := []byte("garbage-garbage-garbage")
		require.Equal(t, nvml.SUCCESS, PutCString(buf, "abc"))
		assert.Equal(t, "abc", CString(buf))
		for _, b := range buf[3:] {
			assert.Equal(t, byte(0), b)
		}
	})
}

func TestMemoryShapes(t *testing.T) {
	m := fixture.MemoryInfo{Total: 42949672960, Free: 42949672960}

	v1 := Memory(m)
	assert.Equal(t, v1.Total, v1.Free+v1.Used)

	v2 := nvml.Memory_v2{Version: 0xdead, Reserved: 99}
	FillMemoryV2(&v2, m)
	assert.Equal(t, MemoryV2Version, v2.Version)
	assert.Equal(t, uint64(0), v2.Reserved)
	assert.Equal(t, v2.Total, v2.Free+v2.Used)
}

func TestMemoryV2Version(t *testing.T) {
	assert.Equal(t, uint32(0x02000028), MemoryV2Version)
	assert.Equal(t, nvml.SUCCESS, CheckMemoryV2Version(0))
	assert.Equal(t, nvml.SUCCESS, CheckMemoryV2Version(MemoryV2Version))
	assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, CheckMemoryV2Version(StructVersion(40, 1)))
	assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, CheckMemoryV2Version(1))
}

func TestPciInfo(t *testing.T) {
	rec := fixture.DGXA100().Devices[3]
	info := PciInfo(rec.PCI)

	assert.Equal(t, "00000000:03:00.0", BusID(info))
	assert.Equal(t, "0000:03:00.0", CString(info.BusIdLegacy[:]))
	assert.Equal(t, uint32(3), info.Bus)
	assert.Equal(t, uint32(0x20B010DE), info.PciDeviceId)
	assert.Equal(t, uint32(0x134F10DE), info.PciSubSystemId)
}

func TestPutFixed_Truncates(t *testing.T) {
	var legacy [16]uint8
	putFixed(legacy[:], "00000000:03:00.0-too-long")
	assert.Equal(t, "00000000:03:00.", CString(legacy[:]))
	assert.Equal(t, uint8(0), legacy[15])
}

func TestRunningProcesses(t *testing.T) {
	n, ret := RunningProcesses[nvml.ProcessInfo_v1](nil)
	assert.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, 0, n)

	out := make([]nvml.ProcessInfo_v2, 4)
	n, ret = RunningProcesses(out)
	assert.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, 0, n)
	assert.Equal(t, make([]nvml.ProcessInfo_v2, 4), out)

	n, ret = RunningProcesses(make([]nvml.ProcessInfo, 0))
	assert.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, 0, n)
}

func TestListResult(t *testing.T) {
	fill := func(out []int) {
		for i := range out {
			out[i] = i + 10
		}
	}

	n, ret := ListResult[int](nil, 3, fill)
	assert.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, 3, n)

	short := []int{-1, -1}
	n, ret = ListResult(short, 3, fill)
	assert.Equal(t, nvml.ERROR_INSUFFICIENT_SIZE, ret)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{-1, -1}, short)

	big := []int{-1, -1, -1, -1}
	n, ret = ListResult(big, 3, fill)
	assert.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{10, 11, 12, -1}, big)
}
