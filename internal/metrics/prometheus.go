package metrics

import (
	"strconv"
	"sync"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/prometheus/client_golang/prometheus"

	"gpumock/internal/abi"
	"gpumock/internal/logging"
	"gpumock/internal/mocknvml"
	"gpumock/internal/topology"
)

const namespace = "gpumock"

var deviceLabels = []string{"gpu", "uuid"}

// DeviceCollector exports device telemetry on every scrape. Each Collect
// runs inside its own Init/Shutdown pair so it never keeps a session open.
type DeviceCollector struct {
	sync.Mutex

	nvml   nvml.Interface
	logger *logging.Logger

	infoDesc        *prometheus.Desc
	memUsedDesc     *prometheus.Desc
	memTotalDesc    *prometheus.Desc
	powerDesc       *prometheus.Desc
	powerLimitDesc  *prometheus.Desc
	temperatureDesc *prometheus.Desc
	utilDesc        *prometheus.Desc
	energyDesc      *prometheus.Desc
	nvlinkDesc      *prometheus.Desc
}

// NewDeviceCollector creates a Prometheus collector over nvmlInterface
func NewDeviceCollector(nvmlInterface nvml.Interface, logger *logging.Logger) *DeviceCollector {
	desc := func(name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "device", name), help, labels, nil)
	}

	return &DeviceCollector{
		nvml:            nvmlInterface,
		logger:          logger,
		infoDesc:        desc("info", "Device identity, always 1", "gpu", "uuid", "name", "bus_id"),
		memUsedDesc:     desc("memory_used_bytes", "Framebuffer memory in use", deviceLabels...),
		memTotalDesc:    desc("memory_total_bytes", "Framebuffer memory installed", deviceLabels...),
		powerDesc:       desc("power_watts", "Current power draw", deviceLabels...),
		powerLimitDesc:  desc("power_limit_watts", "Enforced power limit", deviceLabels...),
		temperatureDesc: desc("temperature_celsius", "GPU core temperature", deviceLabels...),
		utilDesc:        desc("utilization_ratio", "GPU utilization between 0 and 1", deviceLabels...),
		energyDesc:      desc("energy_joules_total", "Energy consumed since driver load", deviceLabels...),
		nvlinkDesc:      desc("nvlink_active_links", "NVLink links reported as enabled", deviceLabels...),
	}
}

// Describe sends every descriptor of the collector
func (c *DeviceCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.infoDesc
	ch <- c.memUsedDesc
	ch <- c.memTotalDesc
	ch <- c.powerDesc
	ch <- c.powerLimitDesc
	ch <- c.temperatureDesc
	ch <- c.utilDesc
	ch <- c.energyDesc
	ch <- c.nvlinkDesc
}

// Collect reads every device and emits its metrics. Getters that fail
// leave their metric out for that device; a device without a UUID is
// skipped.
func (c *DeviceCollector) Collect(ch chan<- prometheus.Metric) {
	c.Lock()
	defer c.Unlock()

	if ret := c.nvml.Init(); ret != nvml.SUCCESS {
		c.logger.Error("metrics.scrape.init_failed", "NVML initialization failed", map[string]interface{}{
			"error": mocknvml.ErrorString(ret),
		})
		return
	}
	defer c.nvml.Shutdown()

	count, ret := c.nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		c.logger.Error("metrics.scrape.count_failed", "Failed to get device count", map[string]interface{}{
			"error": mocknvml.ErrorString(ret),
		})
		return
	}

	for i := 0; i < count; i++ {
		device, ret := c.nvml.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			continue
		}
		c.collectDevice(ch, i, device)
	}
}

func (c *DeviceCollector) collectDevice(ch chan<- prometheus.Metric, index int, device nvml.Device) {
	gpu := strconv.Itoa(index)
	uuid, ret := device.GetUUID()
	if ret != nvml.SUCCESS {
		c.logger.Warn("metrics.scrape.device_skipped", "Failed to get device UUID", map[string]interface{}{
			"gpu":   index,
			"error": mocknvml.ErrorString(ret),
		})
		return
	}
	gauge := func(desc *prometheus.Desc, value float64) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, value, gpu, uuid)
	}

	name, ret := device.GetName()
	if ret != nvml.SUCCESS {
		c.logger.Warn("metrics.scrape.name_failed", "Failed to get device name", map[string]interface{}{
			"gpu":   index,
			"error": mocknvml.ErrorString(ret),
		})
	}
	var busID string
	if pci, ret := device.GetPciInfo(); ret == nvml.SUCCESS {
		busID = abi.BusID(pci)
	}
	ch <- prometheus.MustNewConstMetric(c.infoDesc, prometheus.GaugeValue, 1, gpu, uuid, name, busID)

	if mem, ret := device.GetMemoryInfo(); ret == nvml.SUCCESS {
		gauge(c.memUsedDesc, float64(mem.Used))
		gauge(c.memTotalDesc, float64(mem.Total))
	}
	if mw, ret := device.GetPowerUsage(); ret == nvml.SUCCESS {
		gauge(c.powerDesc, float64(mw)/1000)
	}
	if mw, ret := device.GetEnforcedPowerLimit(); ret == nvml.SUCCESS {
		gauge(c.powerLimitDesc, float64(mw)/1000)
	}
	if temp, ret := device.GetTemperature(nvml.TEMPERATURE_GPU); ret == nvml.SUCCESS {
		gauge(c.temperatureDesc, float64(temp))
	}
	if util, ret := device.GetUtilizationRates(); ret == nvml.SUCCESS {
		gauge(c.utilDesc, float64(util.Gpu)/100)
	}
	if mj, ret := device.GetTotalEnergyConsumption(); ret == nvml.SUCCESS {
		ch <- prometheus.MustNewConstMetric(c.energyDesc, prometheus.CounterValue, float64(mj)/1000, gpu, uuid)
	}

	active := 0
	for link := 0; link < topology.LinkCount; link++ {
		if state, ret := device.GetNvLinkState(link); ret == nvml.SUCCESS && state == nvml.FEATURE_ENABLED {
			active++
		}
	}
	gauge(c.nvlinkDesc, float64(active))
}
