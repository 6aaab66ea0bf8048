package metrics

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.SampleInterval != 10*time.Second {
		t.Errorf("Expected sample interval 10s, got %v", config.SampleInterval)
	}
	if config.BaselinePowerW != 50.0 {
		t.Errorf("Expected baseline power 50W, got %f", config.BaselinePowerW)
	}
	if config.MaxSamples != 0 {
		t.Errorf("Expected unlimited samples, got %d", config.MaxSamples)
	}
}

func TestCalculateTotalPower_SkipsMissingReadings(t *testing.T) {
	c := &Collector{config: MetricsConfig{BaselinePowerW: 10}}
	watts := 90.0

	total := c.calculateTotalPower(MetricsSample{
		Devices: []DeviceSample{{PowerW: &watts}, {}},
	})
	if total != 100 {
		t.Errorf("Expected 100W, got %f", total)
	}
}
