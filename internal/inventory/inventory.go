// Package inventory takes a consistent snapshot of a mock library through
// its query facade. The snapshot feeds the smi renderer, the HTTP API and
// the terminal browser.
package inventory

import (
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"gpumock/internal/abi"
	"gpumock/internal/handle"
	"gpumock/internal/mocknvml"
	"gpumock/internal/topology"
)

// Error reports the facade call that failed.
type Error struct {
	Op  string
	Ret nvml.Return
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, mocknvml.ErrorString(e.Ret))
}

// System is the driver-level identity.
type System struct {
	DriverVersion     string `json:"driver_version"`
	NVMLVersion       string `json:"nvml_version"`
	CUDADriverVersion int    `json:"cuda_driver_version"`
	CUDAVersion       string `json:"cuda_version"`
	DriverBranch      string `json:"driver_branch"`
	DeviceCount       int    `json:"device_count"`
	Fingerprint       string `json:"fingerprint"`
}

// Memory is a byte-count triple.
type Memory struct {
	TotalBytes uint64 `json:"total_bytes"`
	UsedBytes  uint64 `json:"used_bytes"`
	FreeBytes  uint64 `json:"free_bytes"`
}

// Clocks are speeds in MHz.
type Clocks struct {
	GraphicsMHz uint32 `json:"graphics_mhz"`
	SMMHz       uint32 `json:"sm_mhz"`
	MemoryMHz   uint32 `json:"memory_mhz"`
}

// Link is one NVLink and the device at its far end.
type Link struct {
	Link        int    `json:"link"`
	Active      bool   `json:"active"`
	RemoteBusID string `json:"remote_bus_id"`
	RemoteIndex int    `json:"remote_index"`
}

// Device is everything the facade reports about one device.
type Device struct {
	Index             int     `json:"index"`
	Name              string  `json:"name"`
	UUID              string  `json:"uuid"`
	Serial            string  `json:"serial"`
	BoardPartNumber   string  `json:"board_part_number"`
	MinorNumber       int     `json:"minor_number"`
	BusID             string  `json:"bus_id"`
	BusIDLegacy       string  `json:"bus_id_legacy"`
	Memory            Memory  `json:"memory"`
	BAR1              Memory  `json:"bar1"`
	TemperatureC      uint32  `json:"temperature_c"`
	PowerW            float64 `json:"power_w"`
	PowerLimitW       float64 `json:"power_limit_w"`
	EnergyJ           float64 `json:"energy_j"`
	GPUUtil           uint32  `json:"gpu_util"`
	MemUtil           uint32  `json:"mem_util"`
	Clocks            Clocks  `json:"clocks"`
	MaxClocks         Clocks  `json:"max_clocks"`
	ComputeCapability string  `json:"compute_capability"`
	Persistence       bool    `json:"persistence_mode"`
	ComputeMode       string  `json:"compute_mode"`
	Multiprocessors   uint32  `json:"multiprocessor_count"`
	Links             []Link  `json:"nvlinks"`
}

// Topology holds the pairwise view of every device. Diagonal cells of
// Levels are "X".
type Topology struct {
	BusIDs []string   `json:"bus_ids"`
	Links  [][]int    `json:"nvlinks"`
	Levels [][]string `json:"levels"`
}

// Snapshot is one consistent view of the library.
type Snapshot struct {
	System   System   `json:"system"`
	Devices  []Device `json:"devices"`
	Topology Topology `json:"topology"`
}

var computeModeNames = map[nvml.ComputeMode]string{
	nvml.COMPUTEMODE_DEFAULT:           "Default",
	nvml.COMPUTEMODE_EXCLUSIVE_THREAD:  "Exclusive_Thread",
	nvml.COMPUTEMODE_PROHIBITED:        "Prohibited",
	nvml.COMPUTEMODE_EXCLUSIVE_PROCESS: "Exclusive_Process",
}

// LevelName returns the nvidia-smi abbreviation of a topology level.
func LevelName(level nvml.GpuTopologyLevel) string {
	switch level {
	case nvml.TOPOLOGY_INTERNAL:
		return "X"
	case nvml.TOPOLOGY_SINGLE:
		return "PIX"
	case nvml.TOPOLOGY_MULTIPLE:
		return "PXB"
	case nvml.TOPOLOGY_HOSTBRIDGE:
		return "PHB"
	case nvml.TOPOLOGY_NODE:
		return "NODE"
	case nvml.TOPOLOGY_SYSTEM:
		return "SYS"
	default:
		return "?"
	}
}

// withSession runs fn between Init and Shutdown.
func withSession(lib *mocknvml.Library, fn func() error) error {
	if ret := lib.Init(); ret != nvml.SUCCESS {
		return &Error{Op: "init", Ret: ret}
	}
	defer lib.Shutdown()
	return fn()
}

// Collect takes a full snapshot inside its own session.
func Collect(lib *mocknvml.Library) (Snapshot, error) {
	var snap Snapshot
	err := withSession(lib, func() error {
		var err error
		if snap.System, err = system(lib); err != nil {
			return err
		}
		handles, err := handles(lib)
		if err != nil {
			return err
		}
		snap.Devices = make([]Device, len(handles))
		for i, h := range handles {
			if snap.Devices[i], err = device(lib, h); err != nil {
				return err
			}
		}
		snap.Topology, err = pairwise(lib, handles, snap.Devices)
		return err
	})
	return snap, err
}

// CollectSystem reports the driver identity inside its own session.
func CollectSystem(lib *mocknvml.Library) (System, error) {
	var sys System
	err := withSession(lib, func() error {
		var err error
		sys, err = system(lib)
		return err
	})
	return sys, err
}

// CollectDevice reports one device inside its own session. An index the
// library does not know is an *Error carrying INVALID_ARGUMENT.
func CollectDevice(lib *mocknvml.Library, index int) (Device, error) {
	var dev Device
	err := withSession(lib, func() error {
		h, ret := lib.DeviceGetHandleByIndex(index)
		if ret != nvml.SUCCESS {
			return &Error{Op: "device handle", Ret: ret}
		}
		var err error
		dev, err = device(lib, h)
		return err
	})
	return dev, err
}

func system(lib *mocknvml.Library) (System, error) {
	var sys System
	var ret nvml.Return

	if sys.DriverVersion, ret = lib.SystemGetDriverVersion(abi.SystemDriverVersionBufferSize); ret != nvml.SUCCESS {
		return sys, &Error{Op: "driver version", Ret: ret}
	}
	if sys.NVMLVersion, ret = lib.SystemGetNVMLVersion(abi.SystemNVMLVersionBufferSize); ret != nvml.SUCCESS {
		return sys, &Error{Op: "NVML version", Ret: ret}
	}
	if sys.DriverBranch, ret = lib.SystemGetDriverBranch(abi.DriverBranchBufferSize); ret != nvml.SUCCESS {
		return sys, &Error{Op: "driver branch", Ret: ret}
	}
	if sys.CUDADriverVersion, ret = lib.SystemGetCudaDriverVersion_v2(); ret != nvml.SUCCESS {
		return sys, &Error{Op: "CUDA driver version", Ret: ret}
	}
	sys.CUDAVersion = fmt.Sprintf("%d.%d", sys.CUDADriverVersion/1000, (sys.CUDADriverVersion%1000)/10)
	if sys.DeviceCount, ret = lib.DeviceGetCount(); ret != nvml.SUCCESS {
		return sys, &Error{Op: "device count", Ret: ret}
	}
	sys.Fingerprint = lib.Table().Fingerprint()
	return sys, nil
}

func handles(lib *mocknvml.Library) ([]handle.Handle, error) {
	count, ret := lib.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return nil, &Error{Op: "device count", Ret: ret}
	}
	out := make([]handle.Handle, count)
	for i := range out {
		if out[i], ret = lib.DeviceGetHandleByIndex(i); ret != nvml.SUCCESS {
			return nil, &Error{Op: fmt.Sprintf("device %d handle", i), Ret: ret}
		}
	}
	return out, nil
}

func device(lib *mocknvml.Library, h handle.Handle) (Device, error) {
	var d Device
	var ret nvml.Return
	fail := func(op string) (Device, error) {
		return d, &Error{Op: op, Ret: ret}
	}

	if d.Index, ret = lib.DeviceGetIndex(h); ret != nvml.SUCCESS {
		return fail("index")
	}
	if d.Name, ret = lib.DeviceGetName(h, abi.DeviceNameBufferSize); ret != nvml.SUCCESS {
		return fail("name")
	}
	if d.UUID, ret = lib.DeviceGetUUID(h, abi.DeviceUUIDBufferSize); ret != nvml.SUCCESS {
		return fail("uuid")
	}
	if d.Serial, ret = lib.DeviceGetSerial(h, abi.DeviceSerialBufferSize); ret != nvml.SUCCESS {
		return fail("serial")
	}
	if d.BoardPartNumber, ret = lib.DeviceGetBoardPartNumber(h, abi.DevicePartNumberBufferSize); ret != nvml.SUCCESS {
		return fail("board part number")
	}
	if d.MinorNumber, ret = lib.DeviceGetMinorNumber(h); ret != nvml.SUCCESS {
		return fail("minor number")
	}

	pci, ret := lib.DeviceGetPciInfo_v3(h)
	if ret != nvml.SUCCESS {
		return fail("pci info")
	}
	d.BusID = abi.BusID(pci)
	d.BusIDLegacy = abi.CString(pci.BusIdLegacy[:])

	mem, ret := lib.DeviceGetMemoryInfo(h)
	if ret != nvml.SUCCESS {
		return fail("memory info")
	}
	d.Memory = Memory{TotalBytes: mem.Total, UsedBytes: mem.Used, FreeBytes: mem.Free}

	bar1, ret := lib.DeviceGetBAR1MemoryInfo(h)
	if ret != nvml.SUCCESS {
		return fail("BAR1 memory info")
	}
	d.BAR1 = Memory{TotalBytes: bar1.Bar1Total, UsedBytes: bar1.Bar1Used, FreeBytes: bar1.Bar1Free}

	if d.TemperatureC, ret = lib.DeviceGetTemperature(h, nvml.TEMPERATURE_GPU); ret != nvml.SUCCESS {
		return fail("temperature")
	}
	mw, ret := lib.DeviceGetPowerUsage(h)
	if ret != nvml.SUCCESS {
		return fail("power usage")
	}
	d.PowerW = float64(mw) / 1000
	if mw, ret = lib.DeviceGetEnforcedPowerLimit(h); ret != nvml.SUCCESS {
		return fail("power limit")
	}
	d.PowerLimitW = float64(mw) / 1000
	mj, ret := lib.DeviceGetTotalEnergyConsumption(h)
	if ret != nvml.SUCCESS {
		return fail("energy")
	}
	d.EnergyJ = float64(mj) / 1000

	util, ret := lib.DeviceGetUtilizationRates(h)
	if ret != nvml.SUCCESS {
		return fail("utilization")
	}
	d.GPUUtil, d.MemUtil = util.Gpu, util.Memory

	if d.Clocks, ret = clocks(lib.DeviceGetClockInfo, h); ret != nvml.SUCCESS {
		return fail("clocks")
	}
	if d.MaxClocks, ret = clocks(lib.DeviceGetMaxClockInfo, h); ret != nvml.SUCCESS {
		return fail("max clocks")
	}

	major, minor, ret := lib.DeviceGetCudaComputeCapability(h)
	if ret != nvml.SUCCESS {
		return fail("compute capability")
	}
	d.ComputeCapability = fmt.Sprintf("%d.%d", major, minor)

	persistence, ret := lib.DeviceGetPersistenceMode(h)
	if ret != nvml.SUCCESS {
		return fail("persistence mode")
	}
	d.Persistence = persistence == nvml.FEATURE_ENABLED

	mode, ret := lib.DeviceGetComputeMode(h)
	if ret != nvml.SUCCESS {
		return fail("compute mode")
	}
	d.ComputeMode = computeModeNames[mode]

	attrs, ret := lib.DeviceGetAttributes(h)
	if ret != nvml.SUCCESS {
		return fail("attributes")
	}
	d.Multiprocessors = attrs.MultiprocessorCount

	links, err := Links(lib, h)
	if err != nil {
		return d, err
	}
	d.Links = links
	return d, nil
}

func clocks(get func(handle.Handle, nvml.ClockType) (uint32, nvml.Return), h handle.Handle) (Clocks, nvml.Return) {
	var c Clocks
	var ret nvml.Return
	if c.GraphicsMHz, ret = get(h, nvml.CLOCK_GRAPHICS); ret != nvml.SUCCESS {
		return c, ret
	}
	if c.SMMHz, ret = get(h, nvml.CLOCK_SM); ret != nvml.SUCCESS {
		return c, ret
	}
	c.MemoryMHz, ret = get(h, nvml.CLOCK_MEM)
	return c, ret
}

// Links walks every NVLink of h. The caller must hold a session.
func Links(lib *mocknvml.Library, h handle.Handle) ([]Link, error) {
	out := make([]Link, 0, topology.LinkCount)
	for link := 0; link < topology.LinkCount; link++ {
		state, ret := lib.DeviceGetNvLinkState(h, link)
		if ret != nvml.SUCCESS {
			return nil, &Error{Op: fmt.Sprintf("nvlink %d state", link), Ret: ret}
		}
		l := Link{Link: link, Active: state == nvml.FEATURE_ENABLED, RemoteIndex: -1}
		if l.Active {
			remote, ret := lib.DeviceGetNvLinkRemotePciInfo(h, link)
			if ret != nvml.SUCCESS {
				return nil, &Error{Op: fmt.Sprintf("nvlink %d remote", link), Ret: ret}
			}
			l.RemoteBusID = abi.BusID(remote)
			if rh, ret := lib.DeviceGetHandleByPciBusId(l.RemoteBusID); ret == nvml.SUCCESS {
				l.RemoteIndex, _ = lib.DeviceGetIndex(rh)
			}
		}
		out = append(out, l)
	}
	return out, nil
}

func pairwise(lib *mocknvml.Library, handles []handle.Handle, devices []Device) (Topology, error) {
	n := len(handles)
	topo := Topology{
		BusIDs: make([]string, n),
		Links:  make([][]int, n),
		Levels: make([][]string, n),
	}
	for i := range handles {
		topo.BusIDs[i] = devices[i].BusID
		topo.Links[i] = make([]int, n)
		topo.Levels[i] = make([]string, n)
		for _, l := range devices[i].Links {
			if l.Active && l.RemoteIndex >= 0 && l.RemoteIndex != i {
				topo.Links[i][l.RemoteIndex]++
			}
		}
		for j := range handles {
			if i == j {
				topo.Levels[i][j] = "X"
				continue
			}
			level, ret := lib.DeviceGetTopologyCommonAncestor(handles[i], handles[j])
			if ret != nvml.SUCCESS {
				return topo, &Error{Op: "common ancestor", Ret: ret}
			}
			topo.Levels[i][j] = LevelName(level)
		}
	}
	return topo, nil
}

// Cell renders one topology matrix cell the way nvidia-smi topo -m does:
// NV<n> for NVLink-connected pairs, the ancestor level otherwise.
func (t Topology) Cell(i, j int) string {
	if i != j && t.Links[i][j] > 0 {
		return fmt.Sprintf("NV%d", t.Links[i][j])
	}
	return t.Levels[i][j]
}
