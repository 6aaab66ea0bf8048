package metrics

import (
	"fmt"
	"time"

	"gpumock/internal/logging"
)

// Collector samples devices on a ticker and appends them to a JSONL log
type Collector struct {
	logger       *logging.Logger
	config       MetricsConfig
	gpuCollector *GPUCollector
	writer       *Writer
}

// NewCollector creates a new metrics collector over the process-wide mock library
func NewCollector(config MetricsConfig, logger *logging.Logger) *Collector {
	return NewCollectorWithGPU(config, NewGPUCollector(logger), logger)
}

// NewCollectorWithGPU creates a collector around an existing GPU collector
func NewCollectorWithGPU(config MetricsConfig, gpu *GPUCollector, logger *logging.Logger) *Collector {
	return &Collector{
		logger:       logger,
		config:       config,
		gpuCollector: gpu,
		writer:       NewWriter(logger),
	}
}

// Initialize initializes the metrics collector
func (c *Collector) Initialize() error {
	c.logger.Info("metrics.collector.init", "Initializing metrics collector", map[string]interface{}{
		"sample_interval": c.config.SampleInterval.String(),
		"max_samples":     c.config.MaxSamples,
	})

	if c.config.SampleInterval <= 0 {
		return fmt.Errorf("sample interval must be positive, got %s", c.config.SampleInterval)
	}

	if err := c.gpuCollector.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize GPU collector: %w", err)
	}

	return nil
}

// CollectSample collects a single metrics sample
func (c *Collector) CollectSample() (MetricsSample, error) {
	devices, err := c.gpuCollector.Collect()
	if err != nil {
		return MetricsSample{}, err
	}

	sample := MetricsSample{
		Timestamp: time.Now().UTC(),
		Devices:   devices,
	}

	estTotal := c.calculateTotalPower(sample)
	sample.EstTotalW = &estTotal

	return sample, nil
}

// calculateTotalPower adds every device's draw to the baseline
func (c *Collector) calculateTotalPower(sample MetricsSample) float64 {
	total := c.config.BaselinePowerW

	for _, d := range sample.Devices {
		if d.PowerW != nil {
			total += *d.PowerW
		}
	}

	return total
}

// WriteSample writes a sample to the metrics log
func (c *Collector) WriteSample(sample MetricsSample, logPath string) error {
	return c.writer.Write(sample, logPath)
}

// Run starts the metrics collection loop. It returns when stopChan closes
// or after MaxSamples samples have been written.
func (c *Collector) Run(logPath string, stopChan <-chan struct{}) error {
	ticker := time.NewTicker(c.config.SampleInterval)
	defer ticker.Stop()

	c.logger.Info("metrics.collector.start", "Metrics collection started", map[string]interface{}{
		"interval": c.config.SampleInterval.String(),
		"log_path": logPath,
	})

	written := 0
	for {
		select {
		case <-ticker.C:
			sample, err := c.CollectSample()
			if err != nil {
				c.logger.Error("metrics.sample.failed", "Failed to collect sample", map[string]interface{}{
					"error": err.Error(),
				})
				continue
			}

			if err := c.WriteSample(sample, logPath); err != nil {
				c.logger.Error("metrics.write.failed", "Failed to write sample", map[string]interface{}{
					"error": err.Error(),
				})
				continue
			}

			written++
			if c.config.MaxSamples > 0 && written >= c.config.MaxSamples {
				c.logger.Info("metrics.collector.done", "Sample limit reached", map[string]interface{}{
					"samples": written,
				})
				return nil
			}

		case <-stopChan:
			c.logger.Info("metrics.collector.stop", "Metrics collection stopped", map[string]interface{}{
				"samples": written,
			})
			return nil
		}
	}
}

// Shutdown shuts down the collector
func (c *Collector) Shutdown() {
	c.gpuCollector.Shutdown()
}
