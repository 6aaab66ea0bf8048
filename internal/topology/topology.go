// Package topology derives NVLink adjacency, peer-to-peer status and
// common-ancestor levels from device indices. Nothing is stored: every
// answer is recomputed from index arithmetic.
package topology

import "github.com/NVIDIA/go-nvml/pkg/nvml"

// LinkCount is the number of NVLink links on every device.
const LinkCount = 12

// Synthesizer answers topology queries for a table of fixed size.
type Synthesizer struct {
	count uint32
}

// New returns a synthesizer for count devices.
func New(count int) Synthesizer {
	if count < 0 {
		count = 0
	}
	return Synthesizer{count: uint32(count)}
}

func (s Synthesizer) validIndex(index uint32) bool {
	return index < s.count
}

func validLink(link int) bool {
	return link >= 0 && link < LinkCount
}

// LinkState reports every valid link as enabled.
func (s Synthesizer) LinkState(index uint32, link int) (nvml.EnableState, nvml.Return) {
	if !s.validIndex(index) || !validLink(link) {
		return nvml.FEATURE_DISABLED, nvml.ERROR_INVALID_ARGUMENT
	}
	return nvml.FEATURE_ENABLED, nvml.SUCCESS
}

// RemoteIndex returns the device at the far end of link. Links pair up two
// by two onto successive neighbours around a ring.
func (s Synthesizer) RemoteIndex(index uint32, link int) (uint32, nvml.Return) {
	if !s.validIndex(index) || !validLink(link) {
		return 0, nvml.ERROR_INVALID_ARGUMENT
	}
	return (index + uint32(link/2) + 1) % s.count, nvml.SUCCESS
}

// P2PStatus reports a fully connected fabric.
func (s Synthesizer) P2PStatus(a, b uint32) (nvml.GpuP2PStatus, nvml.Return) {
	if !s.validIndex(a) || !s.validIndex(b) {
		return nvml.P2P_STATUS_UNKNOWN, nvml.ERROR_INVALID_ARGUMENT
	}
	return nvml.P2P_STATUS_OK, nvml.SUCCESS
}

// CommonAncestor reports a single-node system for every pair.
func (s Synthesizer) CommonAncestor(a, b uint32) (nvml.GpuTopologyLevel, nvml.Return) {
	if !s.validIndex(a) || !s.validIndex(b) {
		return 0, nvml.ERROR_INVALID_ARGUMENT
	}
	return nvml.TOPOLOGY_SYSTEM, nvml.SUCCESS
}

// Nearest returns every other device in index order, whatever the level.
func (s Synthesizer) Nearest(index uint32) ([]uint32, nvml.Return) {
	if !s.validIndex(index) {
		return nil, nvml.ERROR_INVALID_ARGUMENT
	}
	out := make([]uint32, 0, s.count-1)
	for i := uint32(0); i < s.count; i++ {
		if i != index {
			out = append(out, i)
		}
	}
	return out, nvml.SUCCESS
}

// LinksBetween counts the links of device a that land on device b.
func (s Synthesizer) LinksBetween(a, b uint32) int {
	if !s.validIndex(a) || !s.validIndex(b) {
		return 0
	}
	n := 0
	for link := 0; link < LinkCount; link++ {
		if remote, _ := s.RemoteIndex(a, link); remote == b {
			n++
		}
	}
	return n
}
