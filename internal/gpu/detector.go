package gpu

import (
	"encoding/json"
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"gpumock/internal/abi"
	"gpumock/internal/fsutil"
	"gpumock/internal/logging"
	"gpumock/internal/mocknvml"
	"gpumock/internal/topology"
)

// Detector handles GPU detection and reporting
type Detector struct {
	nvml   nvml.Interface
	logger *logging.Logger
}

// NewDetector creates a detector bound to the process-wide mock library
func NewDetector(logger *logging.Logger) *Detector {
	return NewDetectorWithNVML(mocknvml.NewInterface(mocknvml.Default()), logger)
}

// NewDetectorWithNVML creates a detector over any nvml.Interface
func NewDetectorWithNVML(nvmlInterface nvml.Interface, logger *logging.Logger) *Detector {
	return &Detector{
		nvml:   nvmlInterface,
		logger: logger,
	}
}

func formatCUDA(version int) string {
	return fmt.Sprintf("%d.%d", version/1000, (version%1000)/10)
}

// DetectGPUs performs GPU detection and returns a report
func (d *Detector) DetectGPUs() GPUReport {
	d.logger.Info("gpu.detect.start", "Starting GPU detection", nil)

	report := GPUReport{
		GPUs: make([]GPUInfo, 0),
	}

	ret := d.nvml.Init()
	if ret != nvml.SUCCESS {
		report.ErrorMessage = fmt.Sprintf("Failed to initialize NVML: %v", mocknvml.ErrorString(ret))
		d.logger.Warn("gpu.nvml.init.failed", "NVML initialization failed", map[string]interface{}{
			"error": report.ErrorMessage,
		})
		return report
	}
	defer d.nvml.Shutdown()

	report.NVMLOk = true

	if driverVersion, ret := d.nvml.SystemGetDriverVersion(); ret != nvml.SUCCESS {
		d.warn("gpu.driver.version.failed", "Failed to get driver version", ret, nil)
	} else {
		report.DriverVersion = driverVersion
	}

	if nvmlVersion, ret := d.nvml.SystemGetNVMLVersion(); ret != nvml.SUCCESS {
		d.warn("gpu.nvml.version.failed", "Failed to get NVML version", ret, nil)
	} else {
		report.NVMLVersion = nvmlVersion
	}

	if cudaVersion, ret := d.nvml.SystemGetCudaDriverVersion(); ret != nvml.SUCCESS {
		d.warn("gpu.cuda.version.failed", "Failed to get CUDA version", ret, nil)
	} else {
		report.CUDAVersion = cudaVersion
	}

	count, ret := d.nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		report.ErrorMessage = fmt.Sprintf("Failed to get device count: %v", mocknvml.ErrorString(ret))
		d.logger.Error("gpu.device.count.failed", "Failed to get GPU count", map[string]interface{}{
			"error": report.ErrorMessage,
		})
		return report
	}

	d.logger.Info("gpu.device.count", "Found GPU devices", map[string]interface{}{
		"count": count,
	})

	for i := 0; i < count; i++ {
		device, ret := d.nvml.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			d.warn("gpu.device.handle.failed", "Failed to get device handle", ret, map[string]interface{}{
				"index": i,
			})
			continue
		}

		gpuInfo := d.describe(i, device)
		report.GPUs = append(report.GPUs, gpuInfo)

		d.logger.Info("gpu.device.detected", "GPU device detected", map[string]interface{}{
			"index":     i,
			"name":      gpuInfo.Name,
			"uuid":      gpuInfo.UUID,
			"bus_id":    gpuInfo.BusID,
			"memory_mb": gpuInfo.MemoryMB,
			"nvlinks":   len(gpuInfo.NVLinks),
		})
	}

	return report
}

// describe collects what it can; a failing getter leaves its field empty.
func (d *Detector) describe(index int, device nvml.Device) GPUInfo {
	info := GPUInfo{Index: index}

	if name, ret := device.GetName(); ret == nvml.SUCCESS {
		info.Name = name
	}
	if uuid, ret := device.GetUUID(); ret == nvml.SUCCESS {
		info.UUID = uuid
	}
	if serial, ret := device.GetSerial(); ret == nvml.SUCCESS {
		info.Serial = serial
	}
	if pci, ret := device.GetPciInfo(); ret == nvml.SUCCESS {
		info.BusID = abi.BusID(pci)
	}
	if memInfo, ret := device.GetMemoryInfo(); ret == nvml.SUCCESS {
		info.MemoryMB = memInfo.Total / (1024 * 1024)
	}
	if major, minor, ret := device.GetCudaComputeCapability(); ret == nvml.SUCCESS {
		info.ComputeCapability = fmt.Sprintf("%d.%d", major, minor)
	}
	if limit, ret := device.GetEnforcedPowerLimit(); ret == nvml.SUCCESS {
		info.PowerLimitW = limit / 1000
	}

	info.NVLinks = d.links(device)
	return info
}

func (d *Detector) links(device nvml.Device) []NVLinkPeer {
	var peers []NVLinkPeer
	for link := 0; link < topology.LinkCount; link++ {
		state, ret := device.GetNvLinkState(link)
		if ret != nvml.SUCCESS || state != nvml.FEATURE_ENABLED {
			continue
		}
		remote, ret := device.GetNvLinkRemotePciInfo(link)
		if ret != nvml.SUCCESS {
			continue
		}

		peer := NVLinkPeer{Link: link, RemoteBusID: abi.BusID(remote), RemoteIndex: -1}
		if dev, ret := d.nvml.DeviceGetHandleByPciBusId(peer.RemoteBusID); ret == nvml.SUCCESS {
			if idx, ret := dev.GetIndex(); ret == nvml.SUCCESS {
				peer.RemoteIndex = idx
			}
		}
		peers = append(peers, peer)
	}
	return peers
}

func (d *Detector) warn(eventType, message string, ret nvml.Return, payload map[string]interface{}) {
	if payload == nil {
		payload = map[string]interface{}{}
	}
	payload["error"] = mocknvml.ErrorString(ret)
	d.logger.Warn(eventType, message, payload)
}

// SaveReport writes the GPU report as indented JSON, replacing path atomically
func (d *Detector) SaveReport(report GPUReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := fsutil.AtomicWriteFile(path, data, fsutil.DefaultFilePermissions, d.logger); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	d.logger.Info("gpu.report.saved", "GPU report saved", map[string]interface{}{
		"filepath": path,
	})

	return nil
}
