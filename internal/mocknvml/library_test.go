package mocknvml

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gpumock/internal/abi"
	"gpumock/internal/fixture"
	"gpumock/internal/handle"
	"gpumock/internal/logging"
	"gpumock/internal/session"
)

func newInitialized(t *testing.T, opts ...Option) *Library {
	t.Helper()
	lib := New(opts...)
	require.Equal(t, nvml.SUCCESS, lib.Init())
	t.Cleanup(func() {
		for lib.Session().Active() {
			lib.Shutdown()
		}
	})
	return lib
}

func firstHandle(t *testing.T, lib *Library) handle.Handle {
	t.Helper()
	h, ret := lib.DeviceGetHandleByIndex(0)
	require.Equal(t, nvml.SUCCESS, ret)
	return h
}

func TestLifecycle_RefCount(t *testing.T) {
	lib := New()

	assert.Equal(t, nvml.ERROR_UNINITIALIZED, lib.Shutdown())
	assert.False(t, lib.Session().Active())

	require.Equal(t, nvml.SUCCESS, lib.Init())
	require.Equal(t, nvml.SUCCESS, lib.InitWithFlags(0))
	assert.Equal(t, uint64(2), lib.Session().Count())

	assert.Equal(t, nvml.SUCCESS, lib.Shutdown())
	assert.True(t, lib.Session().Active())
	assert.Equal(t, nvml.SUCCESS, lib.Shutdown())
	assert.False(t, lib.Session().Active())
	assert.Equal(t, nvml.ERROR_UNINITIALIZED, lib.Shutdown())
	assert.Equal(t, uint64(0), lib.Session().Count())
}

func TestLifecycle_SharedSession(t *testing.T) {
	s := session.New()
	a := New(WithSession(s))
	b := New(WithSession(s))

	require.Equal(t, nvml.SUCCESS, a.Init())
	n, ret := b.DeviceGetCount()
	assert.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, 8, n)

	require.Equal(t, nvml.SUCCESS, b.Shutdown())
	_, ret = a.DeviceGetCount()
	assert.Equal(t, nvml.ERROR_UNINITIALIZED, ret)
}

func TestDefault(t *testing.T) {
	t.Setenv(ConfigEnv, "")

	lib := Default()
	assert.Same(t, lib, Default())
	assert.Same(t, session.Default(), lib.Session())
}

func TestLifecycle_Concurrent(t *testing.T) {
	lib := New()

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lib.Init()
			lib.DeviceGetCount()
			lib.Shutdown()
		}()
	}
	wg.Wait()

	assert.False(t, lib.Session().Active())
	assert.Equal(t, nvml.ERROR_UNINITIALIZED, lib.Shutdown())
}

func TestLifecycle_LogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriterLogger(&buf, logging.LevelDebug, logging.FormatJSON)
	lib := New(WithLogger(logger))

	lib.Init()
	lib.Shutdown()

	out := buf.String()
	assert.Contains(t, out, "mocknvml.fixture.loaded")
	assert.Contains(t, out, "mocknvml.session.init")
	assert.Contains(t, out, "mocknvml.session.shutdown")
	assert.Contains(t, out, `"component":"mocknvml"`)
}

func TestUninitialized_GatesEveryFamily(t *testing.T) {
	lib := New()
	h := handle.Handle(1)
	var mem nvml.Memory_v2

	checks := map[string]nvml.Return{}
	_, checks["DeviceGetCount"] = lib.DeviceGetCount()
	_, checks["DeviceGetHandleByIndex"] = lib.DeviceGetHandleByIndex(0)
	_, checks["DeviceGetHandleByUUID"] = lib.DeviceGetHandleByUUID("")
	_, checks["DeviceGetHandleByPciBusId"] = lib.DeviceGetHandleByPciBusId("")
	_, checks["DeviceGetName"] = lib.DeviceGetName(h, 0)
	_, checks["DeviceGetMemoryInfo"] = lib.DeviceGetMemoryInfo(h)
	checks["DeviceGetMemoryInfo_v2"] = lib.DeviceGetMemoryInfo_v2(h, nil)
	_, checks["DeviceGetTemperature"] = lib.DeviceGetTemperature(h, nvml.TEMPERATURE_GPU)
	checks["DeviceSetPersistenceMode"] = lib.DeviceSetPersistenceMode(h, 99)
	_, _, checks["DeviceGetMigMode"] = lib.DeviceGetMigMode(h)
	_, checks["DeviceGetMaxMigDeviceCount"] = lib.DeviceGetMaxMigDeviceCount(h)
	checks["GpuInstanceDestroy"] = lib.GpuInstanceDestroy(0)
	_, checks["DeviceGetComputeRunningProcesses"] = lib.DeviceGetComputeRunningProcesses(h, nil)
	_, checks["EventSetCreate"] = lib.EventSetCreate()
	checks["EventSetWait"] = lib.EventSetWait(1, nil, 0)
	checks["EventSetFree"] = lib.EventSetFree(1)
	_, checks["DeviceGetNvLinkState"] = lib.DeviceGetNvLinkState(h, 99)
	_, checks["DeviceGetP2PStatus"] = lib.DeviceGetP2PStatus(0, 0, nvml.P2P_CAPS_INDEX_READ)
	_, checks["SystemGetTopologyGpuSet"] = lib.SystemGetTopologyGpuSet(0, nil)
	_, checks["UnitGetCount"] = lib.UnitGetCount()
	_, checks["SystemGetDriverVersion"] = lib.SystemGetDriverVersion(0)
	_, checks["SystemGetProcessName"] = lib.SystemGetProcessName(1, 0)
	_, checks["SystemGetHicVersion"] = lib.SystemGetHicVersion(nil)

	for name, ret := range checks {
		assert.Equal(t, nvml.ERROR_UNINITIALIZED, ret, name)
	}
	assert.Equal(t, nvml.Memory_v2{}, mem)
}

func TestEnumeration(t *testing.T) {
	lib := newInitialized(t)

	for i := 0; i < 3; i++ {
		n, ret := lib.DeviceGetCount()
		require.Equal(t, nvml.SUCCESS, ret)
		assert.Equal(t, 8, n)
	}

	h, ret := lib.DeviceGetHandleByIndex(7)
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, handle.Handle(8), h)

	for _, index := range []int{-1, 8, 1 << 20} {
		h, ret := lib.DeviceGetHandleByIndex(index)
		assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, ret, "index %d", index)
		assert.Equal(t, handle.Invalid, h)
	}
}

func TestEnumeration_Lookups(t *testing.T) {
	lib := newInitialized(t)
	rec := lib.Table().Devices[3]

	h, ret := lib.DeviceGetHandleByUUID(rec.UUID)
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, handle.Handle(4), h)

	_, ret = lib.DeviceGetHandleByUUID("GPU-00000000-0000-0000-0000-000000000000")
	assert.Equal(t, nvml.ERROR_NOT_FOUND, ret)
	_, ret = lib.DeviceGetHandleByUUID("")
	assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, ret)

	for _, id := range []string{rec.PCI.BusID, rec.PCI.BusIDLegacy, strings.ToLower(rec.PCI.BusID)} {
		h, ret := lib.DeviceGetHandleByPciBusId(id)
		require.Equal(t, nvml.SUCCESS, ret, id)
		assert.Equal(t, handle.Handle(4), h, id)
	}

	_, ret = lib.DeviceGetHandleByPciBusId("0000:FF:00.0")
	assert.Equal(t, nvml.ERROR_NOT_FOUND, ret)
	_, ret = lib.DeviceGetHandleByPciBusId("")
	assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, ret)
}

func TestInvalidHandles(t *testing.T) {
	lib := newInitialized(t)

	for _, h := range []handle.Handle{handle.Invalid, 9, handle.Handle(handle.NoIndex)} {
		_, ret := lib.DeviceGetName(h, abi.DeviceNameBufferSize)
		assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, ret, "handle %d", h)
		_, ret = lib.DeviceGetIndex(h)
		assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, ret)
		_, ret = lib.DeviceGetPciInfo(h)
		assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, ret)
		_, _, ret = lib.DeviceGetMigMode(h)
		assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, ret)
		_, ret = lib.DeviceGetMaxMigDeviceCount(h)
		assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, ret)
		assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, lib.DeviceRegisterEvents(h, 0, 1))
	}
}

func TestStringGetters_BufferContract(t *testing.T) {
	lib := newInitialized(t)
	h := firstHandle(t, lib)
	rec := lib.Table().Devices[0]

	getters := map[string]struct {
		get  func(handle.Handle, uint32) (string, nvml.Return)
		want string
	}{
		"name":   {lib.DeviceGetName, rec.Name},
		"uuid":   {lib.DeviceGetUUID, rec.UUID},
		"serial": {lib.DeviceGetSerial, rec.Serial},
		"part":   {lib.DeviceGetBoardPartNumber, rec.BoardPartNumber},
	}

	for name, g := range getters {
		exact := uint32(len(g.want) + 1)

		got, ret := g.get(h, exact)
		require.Equal(t, nvml.SUCCESS, ret, name)
		assert.Equal(t, g.want, got, name)

		got, ret = g.get(h, exact-1)
		assert.Equal(t, nvml.ERROR_INSUFFICIENT_SIZE, ret, name)
		assert.Empty(t, got, name)

		_, ret = g.get(h, 0)
		assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, ret, name)
	}

	name, ret := lib.DeviceGetName(h, abi.DeviceNameBufferSize)
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, "NVIDIA A100-SXM4-40GB", name)
}

func TestIdentityGetters(t *testing.T) {
	lib := newInitialized(t)

	for i := 0; i < 8; i++ {
		h, ret := lib.DeviceGetHandleByIndex(i)
		require.Equal(t, nvml.SUCCESS, ret)

		index, ret := lib.DeviceGetIndex(h)
		require.Equal(t, nvml.SUCCESS, ret)
		assert.Equal(t, i, index)

		minor, ret := lib.DeviceGetMinorNumber(h)
		require.Equal(t, nvml.SUCCESS, ret)
		assert.Equal(t, i, minor)

		brand, ret := lib.DeviceGetBrand(h)
		require.Equal(t, nvml.SUCCESS, ret)
		assert.Equal(t, nvml.BRAND_TESLA, brand)

		major, minorCC, ret := lib.DeviceGetCudaComputeCapability(h)
		require.Equal(t, nvml.SUCCESS, ret)
		assert.Equal(t, 8, major)
		assert.Equal(t, 0, minorCC)
	}
}

func TestPciInfo_Revisions(t *testing.T) {
	lib := newInitialized(t)
	h := firstHandle(t, lib)

	v1, ret := lib.DeviceGetPciInfo(h)
	require.Equal(t, nvml.SUCCESS, ret)
	v2, _ := lib.DeviceGetPciInfo_v2(h)
	v3, _ := lib.DeviceGetPciInfo_v3(h)
	assert.Equal(t, v1, v2)
	assert.Equal(t, v1, v3)

	rec := lib.Table().Devices[0]
	assert.Equal(t, rec.PCI.DeviceID, v1.PciDeviceId)
	assert.Equal(t, rec.PCI.BusID, abi.CString(int8Bytes(v1.BusId[:])))
	assert.Equal(t, rec.PCI.BusIDLegacy, abi.CString(int8Bytes(v1.BusIdLegacy[:])))
}

func TestMemory_Invariant(t *testing.T) {
	lib := newInitialized(t)

	for i := 0; i < 8; i++ {
		h, _ := lib.DeviceGetHandleByIndex(i)

		v1, ret := lib.DeviceGetMemoryInfo(h)
		require.Equal(t, nvml.SUCCESS, ret)
		assert.Equal(t, v1.Total, v1.Free+v1.Used)
		assert.Equal(t, uint64(42949672960), v1.Total)
		assert.Zero(t, v1.Used)

		v2 := nvml.Memory_v2{Reserved: 12345}
		require.Equal(t, nvml.SUCCESS, lib.DeviceGetMemoryInfo_v2(h, &v2))
		assert.Equal(t, v2.Total, v2.Free+v2.Used)
		assert.Zero(t, v2.Reserved)
		assert.Equal(t, abi.MemoryV2Version, v2.Version)

		bar1, ret := lib.DeviceGetBAR1MemoryInfo(h)
		require.Equal(t, nvml.SUCCESS, ret)
		assert.Equal(t, bar1.Bar1Total, bar1.Bar1Free+bar1.Bar1Used)
	}
}

func TestMemoryV2_Validation(t *testing.T) {
	lib := newInitialized(t)
	h := firstHandle(t, lib)

	assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, lib.DeviceGetMemoryInfo_v2(h, nil))

	tagged := nvml.Memory_v2{Version: abi.MemoryV2Version}
	assert.Equal(t, nvml.SUCCESS, lib.DeviceGetMemoryInfo_v2(h, &tagged))

	skewed := nvml.Memory_v2{Version: 0x01000028}
	assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, lib.DeviceGetMemoryInfo_v2(h, &skewed))
	assert.Zero(t, skewed.Total)

	// The handle is checked before the version tag.
	assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, lib.DeviceGetMemoryInfo_v2(99, &skewed))
}

func TestTelemetry(t *testing.T) {
	lib := newInitialized(t)
	h, _ := lib.DeviceGetHandleByIndex(2)

	temp, ret := lib.DeviceGetTemperature(h, nvml.TEMPERATURE_GPU)
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, lib.Table().Devices[2].TemperatureC, temp)
	_, ret = lib.DeviceGetTemperature(h, nvml.TemperatureSensors(1))
	assert.Equal(t, nvml.ERROR_NOT_SUPPORTED, ret)

	power, ret := lib.DeviceGetPowerUsage(h)
	require.Equal(t, nvml.SUCCESS, ret)
	limit, _ := lib.DeviceGetEnforcedPowerLimit(h)
	mgmt, _ := lib.DeviceGetPowerManagementLimit(h)
	assert.LessOrEqual(t, power, limit)
	assert.Equal(t, limit, mgmt)

	energy, ret := lib.DeviceGetTotalEnergyConsumption(h)
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, uint64(3000000), energy)

	util, ret := lib.DeviceGetUtilizationRates(h)
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, nvml.Utilization{}, util)

	attrs, ret := lib.DeviceGetAttributes(h)
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, uint32(108), attrs.MultiprocessorCount)
	assert.Equal(t, uint32(5), attrs.SharedCopyEngineCount)
	assert.Equal(t, uint64(40960), attrs.MemorySizeMB)
	assert.Zero(t, attrs.GpuInstanceSliceCount)
}

func TestClocks(t *testing.T) {
	lib := newInitialized(t)
	h := firstHandle(t, lib)

	tests := []struct {
		clock nvml.ClockType
		want  uint32
	}{
		{nvml.CLOCK_GRAPHICS, 1410},
		{nvml.CLOCK_SM, 1410},
		{nvml.CLOCK_MEM, 1593},
	}
	for _, tt := range tests {
		got, ret := lib.DeviceGetClockInfo(h, tt.clock)
		require.Equal(t, nvml.SUCCESS, ret)
		assert.Equal(t, tt.want, got)

		got, ret = lib.DeviceGetMaxClockInfo(h, tt.clock)
		require.Equal(t, nvml.SUCCESS, ret)
		assert.Equal(t, tt.want, got)

		got, ret = lib.DeviceGetClock(h, tt.clock, nvml.CLOCK_ID_CURRENT)
		require.Equal(t, nvml.SUCCESS, ret)
		assert.Equal(t, tt.want, got)
	}

	_, ret := lib.DeviceGetClockInfo(h, nvml.CLOCK_VIDEO)
	assert.Equal(t, nvml.ERROR_NOT_SUPPORTED, ret)
	_, ret = lib.DeviceGetClock(h, nvml.CLOCK_VIDEO, nvml.CLOCK_ID_CURRENT)
	assert.Equal(t, nvml.ERROR_NOT_SUPPORTED, ret)
}

func TestModes_AndMutators(t *testing.T) {
	lib := newInitialized(t)
	h := firstHandle(t, lib)

	before, ret := lib.DeviceGetPersistenceMode(h)
	require.Equal(t, nvml.SUCCESS, ret)

	assert.Equal(t, nvml.SUCCESS, lib.DeviceSetPersistenceMode(h, nvml.FEATURE_DISABLED))
	assert.Equal(t, nvml.SUCCESS, lib.DeviceSetPersistenceMode(h, nvml.FEATURE_ENABLED))
	assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, lib.DeviceSetPersistenceMode(h, nvml.EnableState(7)))

	after, _ := lib.DeviceGetPersistenceMode(h)
	assert.Equal(t, before, after)

	for _, mode := range []nvml.ComputeMode{
		nvml.COMPUTEMODE_DEFAULT, nvml.COMPUTEMODE_EXCLUSIVE_THREAD,
		nvml.COMPUTEMODE_PROHIBITED, nvml.COMPUTEMODE_EXCLUSIVE_PROCESS,
	} {
		assert.Equal(t, nvml.SUCCESS, lib.DeviceSetComputeMode(h, mode))
	}
	assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, lib.DeviceSetComputeMode(h, nvml.ComputeMode(42)))

	compute, _ := lib.DeviceGetComputeMode(h)
	assert.Equal(t, nvml.COMPUTEMODE_DEFAULT, compute)

	display, ret := lib.DeviceGetDisplayMode(h)
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, nvml.FEATURE_DISABLED, display)
	active, _ := lib.DeviceGetDisplayActive(h)
	assert.Equal(t, nvml.FEATURE_DISABLED, active)
}

func TestMIG_Asymmetry(t *testing.T) {
	lib := newInitialized(t)
	h := firstHandle(t, lib)

	_, _, ret := lib.DeviceGetMigMode(h)
	assert.Equal(t, nvml.ERROR_NOT_SUPPORTED, ret)

	count, ret := lib.DeviceGetMaxMigDeviceCount(h)
	assert.Equal(t, nvml.SUCCESS, ret)
	assert.Zero(t, count)

	n, ret := lib.DeviceGetGpuInstancePossiblePlacements(h, 0, make([]nvml.GpuInstancePlacement, 4))
	assert.Equal(t, nvml.ERROR_NOT_SUPPORTED, ret)
	assert.Zero(t, n)

	n, ret = lib.DeviceGetGpuInstances(h, 0, nil)
	assert.Equal(t, nvml.ERROR_NOT_SUPPORTED, ret)
	assert.Zero(t, n)

	_, ret = lib.DeviceCreateGpuInstance(h, 0)
	assert.Equal(t, nvml.ERROR_NOT_SUPPORTED, ret)
	assert.Equal(t, nvml.ERROR_NOT_SUPPORTED, lib.GpuInstanceDestroy(1))
	_, ret = lib.ComputeInstanceGetInfo(1)
	assert.Equal(t, nvml.ERROR_NOT_SUPPORTED, ret)
}

func TestProcesses_AlwaysEmpty(t *testing.T) {
	lib := newInitialized(t)
	h := firstHandle(t, lib)

	v3 := make([]nvml.ProcessInfo, 4)
	v2 := make([]nvml.ProcessInfo_v2, 4)
	v1 := make([]nvml.ProcessInfo_v1, 4)

	counts := []func() (int, nvml.Return){
		func() (int, nvml.Return) { return lib.DeviceGetComputeRunningProcesses(h, v3) },
		func() (int, nvml.Return) { return lib.DeviceGetComputeRunningProcesses_v2(h, v2) },
		func() (int, nvml.Return) { return lib.DeviceGetComputeRunningProcesses_v1(h, v1) },
		func() (int, nvml.Return) { return lib.DeviceGetGraphicsRunningProcesses(h, nil) },
		func() (int, nvml.Return) { return lib.DeviceGetGraphicsRunningProcesses_v2(h, v2) },
		func() (int, nvml.Return) { return lib.DeviceGetGraphicsRunningProcesses_v1(h, nil) },
		func() (int, nvml.Return) { return lib.DeviceGetMPSComputeRunningProcesses(h, v3) },
		func() (int, nvml.Return) { return lib.DeviceGetMPSComputeRunningProcesses_v2(h, nil) },
		func() (int, nvml.Return) { return lib.DeviceGetMPSComputeRunningProcesses_v1(h, v1) },
	}
	for i, count := range counts {
		n, ret := count()
		assert.Equal(t, nvml.SUCCESS, ret, "query %d", i)
		assert.Zero(t, n, "query %d", i)
	}
	assert.Equal(t, make([]nvml.ProcessInfo, 4), v3)

	_, ret := lib.DeviceGetComputeRunningProcesses(0, nil)
	assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, ret)
}

func TestEvents(t *testing.T) {
	lib := newInitialized(t, WithEventWaitLimit(5*time.Millisecond))
	h := firstHandle(t, lib)

	set, ret := lib.EventSetCreate()
	require.Equal(t, nvml.SUCCESS, ret)
	assert.NotZero(t, set)
	other, _ := lib.EventSetCreate()
	assert.NotEqual(t, set, other)

	assert.Equal(t, nvml.SUCCESS, lib.DeviceRegisterEvents(h, 0, set))
	assert.Equal(t, nvml.ERROR_NOT_SUPPORTED, lib.DeviceRegisterEvents(h, 1, set))

	mask, ret := lib.DeviceGetSupportedEventTypes(h)
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Zero(t, mask)

	assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, lib.EventSetWait(set, nil, 10))

	var data EventData
	start := time.Now()
	assert.Equal(t, nvml.ERROR_TIMEOUT, lib.EventSetWait(set, &data, 60000))
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, EventData{}, data)

	assert.Equal(t, nvml.ERROR_TIMEOUT, lib.EventSetWait(set, &data, 0))
	assert.Equal(t, nvml.SUCCESS, lib.EventSetFree(set))
}

func TestTopology_Facade(t *testing.T) {
	lib := newInitialized(t)
	h := firstHandle(t, lib)

	for link := 0; link < 12; link++ {
		state, ret := lib.DeviceGetNvLinkState(h, link)
		require.Equal(t, nvml.SUCCESS, ret)
		assert.Equal(t, nvml.FEATURE_ENABLED, state)

		first, ret := lib.DeviceGetNvLinkRemotePciInfo(h, link)
		require.Equal(t, nvml.SUCCESS, ret)
		second, _ := lib.DeviceGetNvLinkRemotePciInfo(h, link)
		assert.Equal(t, first, second)
	}

	_, ret := lib.DeviceGetNvLinkState(h, 12)
	assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, ret)
	_, ret = lib.DeviceGetNvLinkRemotePciInfo(h, 12)
	assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, ret)

	remote, _ := lib.DeviceGetNvLinkRemotePciInfo(h, 0)
	assert.Contains(t, abi.CString(int8Bytes(remote.BusId[:])), "0000:")
	assert.Equal(t, lib.Table().Devices[1].PCI.Bus, remote.Bus)

	status, ret := lib.DeviceGetP2PStatus(1, 2, nvml.P2P_CAPS_INDEX_NVLINK)
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, nvml.P2P_STATUS_OK, status)
	_, ret = lib.DeviceGetP2PStatus(1, 9, nvml.P2P_CAPS_INDEX_READ)
	assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, ret)

	level, ret := lib.DeviceGetTopologyCommonAncestor(1, 8)
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, nvml.TOPOLOGY_SYSTEM, level)
	_, ret = lib.DeviceGetTopologyCommonAncestor(0, 1)
	assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, ret)
}

func TestTopology_TwoPhaseLists(t *testing.T) {
	lib := newInitialized(t)
	h, _ := lib.DeviceGetHandleByIndex(2)

	n, ret := lib.DeviceGetTopologyNearestGpus(h, nvml.TOPOLOGY_SINGLE, nil)
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, 7, n)

	short := make([]handle.Handle, 6)
	n, ret = lib.DeviceGetTopologyNearestGpus(h, nvml.TOPOLOGY_SINGLE, short)
	assert.Equal(t, nvml.ERROR_INSUFFICIENT_SIZE, ret)
	assert.Equal(t, 7, n)
	assert.Equal(t, make([]handle.Handle, 6), short)

	out := make([]handle.Handle, 10)
	n, ret = lib.DeviceGetTopologyNearestGpus(h, nvml.TOPOLOGY_SYSTEM, out)
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, []handle.Handle{1, 2, 4, 5, 6, 7, 8}, out[:n])

	n, ret = lib.SystemGetTopologyGpuSet(0, nil)
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, 8, n)
	_, ret = lib.SystemGetTopologyGpuSet(0, make([]handle.Handle, 7))
	assert.Equal(t, nvml.ERROR_INSUFFICIENT_SIZE, ret)
	all := make([]handle.Handle, 8)
	_, ret = lib.SystemGetTopologyGpuSet(3, all)
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, []handle.Handle{1, 2, 3, 4, 5, 6, 7, 8}, all)
}

func TestUnits(t *testing.T) {
	lib := newInitialized(t)

	n, ret := lib.UnitGetCount()
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Zero(t, n)

	_, ret = lib.UnitGetHandleByIndex(0)
	assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, ret)
}

func TestSystemStrings(t *testing.T) {
	lib := newInitialized(t)

	tests := []struct {
		get  func(uint32) (string, nvml.Return)
		want string
	}{
		{lib.SystemGetDriverVersion, "550.54.15"},
		{lib.SystemGetNVMLVersion, "12.550.54"},
		{lib.SystemGetDriverBranch, "r550_00"},
	}
	for _, tt := range tests {
		got, ret := tt.get(80)
		require.Equal(t, nvml.SUCCESS, ret)
		assert.Equal(t, tt.want, got)

		_, ret = tt.get(uint32(len(tt.want)))
		assert.Equal(t, nvml.ERROR_INSUFFICIENT_SIZE, ret)
		_, ret = tt.get(0)
		assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, ret)
	}

	cuda, ret := lib.SystemGetCudaDriverVersion()
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, 12040, cuda)
	cuda2, _ := lib.SystemGetCudaDriverVersion_v2()
	assert.Equal(t, cuda, cuda2)

	n, ret := lib.SystemGetHicVersion(nil)
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Zero(t, n)
}

func TestSystemGetProcessName(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "4242"), 0o755))
	require.NoError(t, os.Symlink("/opt/bin/trainer", filepath.Join(root, "4242", "exe")))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "77"), 0o755))

	lib := newInitialized(t, WithProcRoot(root))

	name, ret := lib.SystemGetProcessName(4242, 8)
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, "trainer", name)

	_, ret = lib.SystemGetProcessName(4242, 7)
	assert.Equal(t, nvml.ERROR_INSUFFICIENT_SIZE, ret)
	_, ret = lib.SystemGetProcessName(4242, 0)
	assert.Equal(t, nvml.ERROR_INVALID_ARGUMENT, ret)

	_, ret = lib.SystemGetProcessName(999999, 256)
	assert.Equal(t, nvml.ERROR_NOT_FOUND, ret)
	_, ret = lib.SystemGetProcessName(77, 256)
	assert.Equal(t, nvml.ERROR_NOT_FOUND, ret)
}

func TestErrorString(t *testing.T) {
	lib := New()

	assert.Equal(t, "Success", lib.ErrorString(nvml.SUCCESS))
	assert.Equal(t, "NVML was not first initialized with nvmlInit()", ErrorString(nvml.ERROR_UNINITIALIZED))
	assert.Equal(t, "An input argument is not large enough", ErrorString(nvml.ERROR_INSUFFICIENT_SIZE))
	assert.Equal(t, "User provided timeout passed", ErrorString(nvml.ERROR_TIMEOUT))
	assert.Equal(t, "Unknown error", ErrorString(nvml.ERROR_UNKNOWN))
	assert.Equal(t, "Unknown error", ErrorString(nvml.Return(12345)))

	for ret := range errorStrings {
		assert.NotEmpty(t, ErrorString(ret))
	}
}

func TestCustomTable(t *testing.T) {
	table, err := fixture.Parse([]byte("version: \"1\"\nnum_devices: 2\n"))
	require.NoError(t, err)
	lib := newInitialized(t, WithTable(table))

	n, _ := lib.DeviceGetCount()
	assert.Equal(t, 2, n)

	remote, ret := lib.DeviceGetNvLinkRemotePciInfo(2, 0)
	require.Equal(t, nvml.SUCCESS, ret)
	assert.Equal(t, uint32(0), remote.Bus)

	nearest, _ := lib.DeviceGetTopologyNearestGpus(1, nvml.TOPOLOGY_SYSTEM, nil)
	assert.Equal(t, 1, nearest)
}

// int8Bytes converts a fixed C char array to bytes.
func int8Bytes[T ~int8 | ~uint8](in []T) []byte {
	out := make([]byte, len(in))
	for i, c := range in {
		out[i] = byte(c)
	}
	return out
}
