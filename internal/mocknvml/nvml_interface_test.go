package mocknvml

import (
	"testing"
	"time"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gpumock/internal/abi"
	"gpumock/internal/config"
)

func newAdapter(t *testing.T) (nvml.Interface, nvml.Device) {
	t.Helper()
	lib := New(WithEventWaitLimit(time.Millisecond))
	iface := NewInterface(lib)
	require.Equal(t, nvml.SUCCESS, iface.Init())
	t.Cleanup(func() {
		for lib.Session().Active() {
			iface.Shutdown()
		}
	})
	dev, ret := iface.DeviceGetHandleByIndex(0)
	require.Equal(t, nvml.SUCCESS, ret)
	return iface, dev
}

func TestInterface_ModeledCalls(t *testing.T) {
	iface, dev := newAdapter(t)
	profile := &nvml.GpuInstanceProfileInfo{Id: 0}

	tests := []struct {
		name string
		call func() nvml.Return
		want nvml.Return
	}{
		{"SystemGetDriverBranch", func() nvml.Return { _, ret := iface.SystemGetDriverBranch(); return ret }, nvml.SUCCESS},
		{"SystemGetHicVersion", func() nvml.Return { _, ret := iface.SystemGetHicVersion(); return ret }, nvml.SUCCESS},
		{"UnitGetHandleByIndex", func() nvml.Return { _, ret := iface.UnitGetHandleByIndex(0); return ret }, nvml.ERROR_INVALID_ARGUMENT},
		{"EventSetCreate", func() nvml.Return { _, ret := iface.EventSetCreate(); return ret }, nvml.SUCCESS},
		{"GetGpuInstances", func() nvml.Return { _, ret := dev.GetGpuInstances(profile); return ret }, nvml.ERROR_NOT_SUPPORTED},
		{"GetGpuInstances nil profile", func() nvml.Return { _, ret := dev.GetGpuInstances(nil); return ret }, nvml.ERROR_INVALID_ARGUMENT},
		{"GetGpuInstancePossiblePlacements", func() nvml.Return {
			_, ret := dev.GetGpuInstancePossiblePlacements(profile)
			return ret
		}, nvml.ERROR_NOT_SUPPORTED},
		{"CreateGpuInstance", func() nvml.Return { _, ret := dev.CreateGpuInstance(profile); return ret }, nvml.ERROR_NOT_SUPPORTED},
		{"RegisterEvents nil set", func() nvml.Return { return dev.RegisterEvents(0, nil) }, nvml.ERROR_INVALID_ARGUMENT},
		{"DeviceGetName", func() nvml.Return { _, ret := iface.DeviceGetName(dev); return ret }, nvml.SUCCESS},
		{"DeviceGetName nil device", func() nvml.Return { _, ret := iface.DeviceGetName(nil); return ret }, nvml.ERROR_INVALID_ARGUMENT},
		{"DeviceGetMigMode", func() nvml.Return { _, _, ret := iface.DeviceGetMigMode(dev); return ret }, nvml.ERROR_NOT_SUPPORTED},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ret nvml.Return
			require.NotPanics(t, func() { ret = tt.call() })
			assert.Equal(t, tt.want, ret)
		})
	}
}

func TestInterface_UnmodeledCallsAreNotSupported(t *testing.T) {
	iface, dev := newAdapter(t)

	tests := []struct {
		name string
		call func() nvml.Return
	}{
		{"GetFanSpeed", func() nvml.Return { _, ret := dev.GetFanSpeed(); return ret }},
		{"GetEccMode", func() nvml.Return { _, _, ret := dev.GetEccMode(); return ret }},
		{"GetPciInfoExt", func() nvml.Return { _, ret := dev.GetPciInfoExt(); return ret }},
		{"DeviceGetFanSpeed", func() nvml.Return { _, ret := iface.DeviceGetFanSpeed(dev); return ret }},
		{"DeviceGetHandleBySerial", func() nvml.Return { _, ret := iface.DeviceGetHandleBySerial("x"); return ret }},
		{"GetExcludedDeviceCount", func() nvml.Return { _, ret := iface.GetExcludedDeviceCount(); return ret }},
		{"GpmSampleAlloc", func() nvml.Return { _, ret := iface.GpmSampleAlloc(); return ret }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ret nvml.Return
			require.NotPanics(t, func() { ret = tt.call() })
			assert.Equal(t, nvml.ERROR_NOT_SUPPORTED, ret)
		})
	}

	require.NotPanics(t, func() {
		assert.Error(t, iface.Extensions().LookupSymbol("nvmlDeviceGetFanSpeed"))
	})
}

func TestInterface_DriverBranch(t *testing.T) {
	iface, _ := newAdapter(t)

	info, ret := iface.SystemGetDriverBranch()
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, abi.DriverBranchVersion, info.Version)
	assert.Equal(t, "r550_00", abi.CString(info.Branch[:]))
}

func TestInterface_EventSet(t *testing.T) {
	iface, dev := newAdapter(t)

	set, ret := iface.EventSetCreate()
	require.Equal(t, nvml.SUCCESS, ret)

	assert.Equal(t, nvml.SUCCESS, dev.RegisterEvents(0, set))
	assert.Equal(t, nvml.ERROR_NOT_SUPPORTED, dev.RegisterEvents(nvml.EventTypeXidCriticalError, set))
	assert.Equal(t, nvml.SUCCESS, iface.DeviceRegisterEvents(dev, 0, set))

	data, ret := set.Wait(1000)
	assert.Equal(t, nvml.ERROR_TIMEOUT, ret)
	assert.Equal(t, nvml.EventData{}, data)

	_, ret = iface.EventSetWait(set, 0)
	assert.Equal(t, nvml.ERROR_TIMEOUT, ret)

	assert.Equal(t, nvml.SUCCESS, iface.EventSetFree(set))
}

func TestInterface_AfterShutdown(t *testing.T) {
	iface, dev := newAdapter(t)
	require.Equal(t, nvml.SUCCESS, iface.Shutdown())

	_, ret := iface.EventSetCreate()
	assert.Equal(t, nvml.ERROR_UNINITIALIZED, ret)
	assert.Equal(t, nvml.ERROR_UNINITIALIZED, dev.RegisterEvents(0, nil))
	_, ret = dev.GetGpuInstances(nil)
	assert.Equal(t, nvml.ERROR_UNINITIALIZED, ret)
	_, ret = iface.SystemGetDriverBranch()
	assert.Equal(t, nvml.ERROR_UNINITIALIZED, ret)
}

func TestNew_DefaultEventWaitLimit(t *testing.T) {
	lib := New()
	assert.Equal(t, DefaultEventWaitLimit, lib.eventWaitLimit)

	want := time.Duration(config.DefaultConfig().Events.MaxWaitMS) * time.Millisecond
	assert.Equal(t, want, DefaultEventWaitLimit)

	assert.Zero(t, New(WithEventWaitLimit(0)).eventWaitLimit)
}
