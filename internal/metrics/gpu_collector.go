package metrics

import (
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"gpumock/internal/logging"
	"gpumock/internal/mocknvml"
)

const bytesPerMB = 1024 * 1024

// GPUCollector samples every device of an nvml.Interface. It holds one
// session reference between Initialize and Shutdown.
type GPUCollector struct {
	logger      *logging.Logger
	nvml        nvml.Interface
	devices     []nvml.Device
	uuids       []string
	initialized bool
}

// NewGPUCollector creates a collector over the process-wide mock library
func NewGPUCollector(logger *logging.Logger) *GPUCollector {
	return NewGPUCollectorWithNVML(mocknvml.NewInterface(mocknvml.Default()), logger)
}

// NewGPUCollectorWithNVML creates a collector over any nvml.Interface
func NewGPUCollectorWithNVML(nvmlInterface nvml.Interface, logger *logging.Logger) *GPUCollector {
	return &GPUCollector{
		logger: logger,
		nvml:   nvmlInterface,
	}
}

// Initialize opens a session and resolves every device handle
func (g *GPUCollector) Initialize() error {
	if g.initialized {
		return nil
	}

	ret := g.nvml.Init()
	if ret != nvml.SUCCESS {
		return fmt.Errorf("failed to initialize NVML: %v", mocknvml.ErrorString(ret))
	}

	count, ret := g.nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		g.release("NVML shutdown reported an error during init")
		return fmt.Errorf("failed to get device count: %v", mocknvml.ErrorString(ret))
	}

	g.devices = make([]nvml.Device, 0, count)
	g.uuids = make([]string, 0, count)
	for i := 0; i < count; i++ {
		device, ret := g.nvml.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			g.release("NVML shutdown reported an error during init")
			return fmt.Errorf("failed to get GPU device %d: %v", i, mocknvml.ErrorString(ret))
		}
		uuid, _ := device.GetUUID()
		g.devices = append(g.devices, device)
		g.uuids = append(g.uuids, uuid)
	}

	g.initialized = true

	g.logger.Info("gpu.collector.initialized", "GPU metrics collector initialized", map[string]interface{}{
		"devices": count,
	})

	return nil
}

func (g *GPUCollector) release(message string) {
	if ret := g.nvml.Shutdown(); ret != nvml.SUCCESS {
		g.logger.Warn("gpu.collector.shutdown.failed", message, map[string]interface{}{
			"error": mocknvml.ErrorString(ret),
		})
	}
}

// Collect reads every device once
func (g *GPUCollector) Collect() ([]DeviceSample, error) {
	if !g.initialized {
		return nil, fmt.Errorf("GPU collector not initialized")
	}

	samples := make([]DeviceSample, len(g.devices))
	for i, device := range g.devices {
		samples[i] = g.sample(i, device)
	}
	return samples, nil
}

func (g *GPUCollector) sample(index int, device nvml.Device) DeviceSample {
	s := DeviceSample{Index: index, UUID: g.uuids[index]}

	if utilization, ret := device.GetUtilizationRates(); ret == nvml.SUCCESS {
		s.GPUUtil = floatPtr(float64(utilization.Gpu))
		s.MemUtil = floatPtr(float64(utilization.Memory))
	} else {
		g.warn("gpu.utilization.failed", "Failed to get GPU utilization", index, ret)
	}

	if memInfo, ret := device.GetMemoryInfo(); ret == nvml.SUCCESS {
		used, total := memInfo.Used/bytesPerMB, memInfo.Total/bytesPerMB
		s.MemUsedMB, s.MemTotalMB = &used, &total
	} else {
		g.warn("gpu.memory.failed", "Failed to get GPU memory", index, ret)
	}

	if milliwatts, ret := device.GetPowerUsage(); ret == nvml.SUCCESS {
		s.PowerW = floatPtr(float64(milliwatts) / 1000.0)
	} else {
		g.warn("gpu.power.failed", "Failed to get GPU power", index, ret)
	}

	if milliwatts, ret := device.GetEnforcedPowerLimit(); ret == nvml.SUCCESS {
		s.PowerLimitW = floatPtr(float64(milliwatts) / 1000.0)
	} else {
		g.warn("gpu.power_limit.failed", "Failed to get GPU power limit", index, ret)
	}

	if temp, ret := device.GetTemperature(nvml.TEMPERATURE_GPU); ret == nvml.SUCCESS {
		s.TempC = floatPtr(float64(temp))
	} else {
		g.warn("gpu.temperature.failed", "Failed to get GPU temperature", index, ret)
	}

	if millijoules, ret := device.GetTotalEnergyConsumption(); ret == nvml.SUCCESS {
		s.EnergyJ = floatPtr(float64(millijoules) / 1000.0)
	} else {
		g.warn("gpu.energy.failed", "Failed to get GPU energy", index, ret)
	}

	return s
}

func (g *GPUCollector) warn(eventType, message string, index int, ret nvml.Return) {
	g.logger.Warn(eventType, message, map[string]interface{}{
		"index": index,
		"error": mocknvml.ErrorString(ret),
	})
}

// Shutdown releases the session reference taken by Initialize
func (g *GPUCollector) Shutdown() {
	if g.initialized {
		g.release("NVML shutdown reported an error")
		g.initialized = false
		g.devices, g.uuids = nil, nil
		g.logger.Info("gpu.collector.shutdown", "GPU metrics collector shut down", nil)
	}
}

// IsInitialized returns whether the collector is initialized
func (g *GPUCollector) IsInitialized() bool {
	return g.initialized
}

// DeviceCount returns the number of devices resolved by Initialize
func (g *GPUCollector) DeviceCount() int {
	return len(g.devices)
}

func floatPtr(v float64) *float64 {
	return &v
}
