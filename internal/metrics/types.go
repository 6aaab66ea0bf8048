package metrics

import (
	"time"
)

// DeviceSample holds one reading of one device. A nil field means the
// getter failed for that sample.
type DeviceSample struct {
	Index       int      `json:"index"`
	UUID        string   `json:"uuid"`
	GPUUtil     *float64 `json:"gpu_util,omitempty"`      // GPU utilization percentage (0-100)
	MemUtil     *float64 `json:"mem_util,omitempty"`      // Memory controller utilization percentage
	MemUsedMB   *uint64  `json:"mem_used_mb,omitempty"`   // Framebuffer memory in use
	MemTotalMB  *uint64  `json:"mem_total_mb,omitempty"`  // Framebuffer memory installed
	PowerW      *float64 `json:"power_w,omitempty"`       // Current draw in watts
	PowerLimitW *float64 `json:"power_limit_w,omitempty"` // Enforced limit in watts
	TempC       *float64 `json:"temp_c,omitempty"`        // GPU core temperature
	EnergyJ     *float64 `json:"energy_j,omitempty"`      // Energy since driver load
}

// MetricsSample is one line of the samples log
type MetricsSample struct {
	Timestamp time.Time      `json:"ts"`
	Devices   []DeviceSample `json:"devices"`
	EstTotalW *float64       `json:"est_total_w,omitempty"` // Baseline plus every device's draw
}

// MetricsConfig holds configuration for metrics collection
type MetricsConfig struct {
	SampleInterval time.Duration // How often to collect metrics
	BaselinePowerW float64       // Baseline power consumption (system overhead)
	MaxSamples     int           // Stop after this many samples; 0 runs until stopped
}

// DefaultConfig returns a default metrics configuration
func DefaultConfig() MetricsConfig {
	return MetricsConfig{
		SampleInterval: 10 * time.Second,
		BaselinePowerW: 50.0,
	}
}
