package mocknvml

import (
	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"gpumock/internal/abi"
	"gpumock/internal/handle"
)

// DeviceGetNvLinkState reports every link in [0, topology.LinkCount) as
// enabled.
func (l *Library) DeviceGetNvLinkState(h handle.Handle, link int) (nvml.EnableState, nvml.Return) {
	if _, ret := l.device(h); ret != nvml.SUCCESS {
		return nvml.FEATURE_DISABLED, ret
	}
	index, _ := l.codec.Decode(h)
	return l.topo.LinkState(index, link)
}

// DeviceGetNvLinkRemotePciInfo returns the PCI identity of the device at
// the far end of link.
func (l *Library) DeviceGetNvLinkRemotePciInfo(h handle.Handle, link int) (nvml.PciInfo, nvml.Return) {
	if _, ret := l.device(h); ret != nvml.SUCCESS {
		return nvml.PciInfo{}, ret
	}
	index, _ := l.codec.Decode(h)
	remote, ret := l.topo.RemoteIndex(index, link)
	if ret != nvml.SUCCESS {
		return nvml.PciInfo{}, ret
	}
	rec, _ := l.table.Device(remote)
	return abi.PciInfo(rec.PCI), nvml.SUCCESS
}

// pair runs the gate and decodes two handles.
func (l *Library) pair(a, b handle.Handle) (uint32, uint32, nvml.Return) {
	if ret := l.gate(); ret != nvml.SUCCESS {
		return 0, 0, ret
	}
	ia, okA := l.codec.Decode(a)
	ib, okB := l.codec.Decode(b)
	if !okA || !okB {
		return 0, 0, nvml.ERROR_INVALID_ARGUMENT
	}
	return ia, ib, nvml.SUCCESS
}

// DeviceGetP2PStatus reports P2P_STATUS_OK for every capability.
func (l *Library) DeviceGetP2PStatus(a, b handle.Handle, caps nvml.GpuP2PCapsIndex) (nvml.GpuP2PStatus, nvml.Return) {
	ia, ib, ret := l.pair(a, b)
	if ret != nvml.SUCCESS {
		return nvml.P2P_STATUS_UNKNOWN, ret
	}
	return l.topo.P2PStatus(ia, ib)
}

func (l *Library) DeviceGetTopologyCommonAncestor(a, b handle.Handle) (nvml.GpuTopologyLevel, nvml.Return) {
	ia, ib, ret := l.pair(a, b)
	if ret != nvml.SUCCESS {
		return 0, ret
	}
	return l.topo.CommonAncestor(ia, ib)
}

// DeviceGetTopologyNearestGpus lists every other device whatever level is
// asked for. A nil out queries the count.
func (l *Library) DeviceGetTopologyNearestGpus(h handle.Handle, level nvml.GpuTopologyLevel, out []handle.Handle) (int, nvml.Return) {
	if _, ret := l.device(h); ret != nvml.SUCCESS {
		return 0, ret
	}
	index, _ := l.codec.Decode(h)
	nearest, ret := l.topo.Nearest(index)
	if ret != nvml.SUCCESS {
		return 0, ret
	}
	return abi.ListResult(out, len(nearest), func(dst []handle.Handle) {
		for i, idx := range nearest {
			dst[i], _ = l.codec.Encode(int(idx))
		}
	})
}

// SystemGetTopologyGpuSet lists every device for any CPU.
func (l *Library) SystemGetTopologyGpuSet(cpuNumber uint32, out []handle.Handle) (int, nvml.Return) {
	if ret := l.gate(); ret != nvml.SUCCESS {
		return 0, ret
	}
	all := l.codec.All()
	return abi.ListResult(out, len(all), func(dst []handle.Handle) {
		copy(dst, all)
	})
}
