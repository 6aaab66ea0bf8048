package gpu

// GPUInfo represents information about a single GPU
type GPUInfo struct {
	Index             int          `json:"index"`
	Name              string       `json:"name"`
	UUID              string       `json:"uuid"`
	Serial            string       `json:"serial,omitempty"`
	BusID             string       `json:"bus_id"`
	MemoryMB          uint64       `json:"memory_mb"`
	ComputeCapability string       `json:"compute_capability,omitempty"`
	PowerLimitW       uint32       `json:"power_limit_w,omitempty"`
	NVLinks           []NVLinkPeer `json:"nvlinks,omitempty"`
}

// NVLinkPeer describes the far end of one active link.
type NVLinkPeer struct {
	Link        int    `json:"link"`
	RemoteBusID string `json:"remote_bus_id"`
	// RemoteIndex is -1 when the remote bus id does not resolve to a device.
	RemoteIndex int `json:"remote_index"`
}

// GPUReport represents the complete GPU detection report
type GPUReport struct {
	DriverVersion string    `json:"driver_version"`
	NVMLVersion   string    `json:"nvml_version"`
	CUDAVersion   int       `json:"cuda_version"`
	NVMLOk        bool      `json:"nvml_ok"`
	GPUs          []GPUInfo `json:"gpus"`
	ErrorMessage  string    `json:"error_message,omitempty"`
}

// CUDAVersionString renders CUDAVersion (1000*major + 10*minor) as
// "major.minor".
func (r GPUReport) CUDAVersionString() string {
	if r.CUDAVersion <= 0 {
		return ""
	}
	return formatCUDA(r.CUDAVersion)
}
