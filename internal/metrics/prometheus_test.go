package metrics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gpumock/internal/logging"
	"gpumock/internal/mocknvml"
)

func TestDeviceCollector_Describe(t *testing.T) {
	collector := NewDeviceCollector(stubNVML{}, nil)

	ch := make(chan *prometheus.Desc, 16)
	collector.Describe(ch)
	close(ch)

	var descs []string
	for d := range ch {
		descs = append(descs, d.String())
	}
	assert.Len(t, descs, 9)
	assert.Contains(t, descs[0], "gpumock_device_info")
}

func TestDeviceCollector_Count(t *testing.T) {
	lib := newLibrary(t, "")
	collector := NewDeviceCollector(mocknvml.NewInterface(lib), nil)

	// 9 series per device
	assert.Equal(t, 72, testutil.CollectAndCount(collector))
	assert.False(t, lib.Session().Active(), "scrape must release its session")
}

func TestDeviceCollector_Values(t *testing.T) {
	collector := NewDeviceCollector(mocknvml.NewInterface(newLibrary(t, loadedFixture)), nil)

	expected := `
# HELP gpumock_device_temperature_celsius GPU core temperature
# TYPE gpumock_device_temperature_celsius gauge
gpumock_device_temperature_celsius{gpu="0",uuid="GPU-4404041a-04cf-1ccf-9e70-f139a9b1e23c"} 72
gpumock_device_temperature_celsius{gpu="1",uuid="GPU-b8ea3855-276c-c9cb-b366-c6fa655957c5"} 31
# HELP gpumock_device_energy_joules_total Energy consumed since driver load
# TYPE gpumock_device_energy_joules_total counter
gpumock_device_energy_joules_total{gpu="0",uuid="GPU-4404041a-04cf-1ccf-9e70-f139a9b1e23c"} 1000
gpumock_device_energy_joules_total{gpu="1",uuid="GPU-b8ea3855-276c-c9cb-b366-c6fa655957c5"} 2000
# HELP gpumock_device_nvlink_active_links NVLink links reported as enabled
# TYPE gpumock_device_nvlink_active_links gauge
gpumock_device_nvlink_active_links{gpu="0",uuid="GPU-4404041a-04cf-1ccf-9e70-f139a9b1e23c"} 12
gpumock_device_nvlink_active_links{gpu="1",uuid="GPU-b8ea3855-276c-c9cb-b366-c6fa655957c5"} 12
`
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected),
		"gpumock_device_temperature_celsius",
		"gpumock_device_energy_joules_total",
		"gpumock_device_nvlink_active_links",
	)
	require.NoError(t, err)
}

func TestDeviceCollector_InitFailure(t *testing.T) {
	collector := NewDeviceCollector(stubNVML{}, nil)

	assert.Equal(t, 0, testutil.CollectAndCount(collector))
}

func TestDeviceCollector_Registers(t *testing.T) {
	registry := prometheus.NewPedanticRegistry()
	collector := NewDeviceCollector(mocknvml.NewInterface(newLibrary(t, "")), nil)

	require.NoError(t, registry.Register(collector))

	families, err := registry.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 9)
}

// flakyIdentity fails GetUUID on device 1 and GetName on device 2.
type flakyIdentity struct {
	nvml.Interface
}

func (f flakyIdentity) DeviceGetHandleByIndex(index int) (nvml.Device, nvml.Return) {
	device, ret := f.Interface.DeviceGetHandleByIndex(index)
	switch index {
	case 1:
		return noUUID{device}, ret
	case 2:
		return noName{device}, ret
	}
	return device, ret
}

type noUUID struct{ nvml.Device }

func (noUUID) GetUUID() (string, nvml.Return) { return "", nvml.ERROR_UNKNOWN }

type noName struct{ nvml.Device }

func (noName) GetName() (string, nvml.Return) { return "", nvml.ERROR_UNKNOWN }

func TestDeviceCollector_IdentityFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriterLogger(&buf, logging.LevelWarn, logging.FormatText)
	collector := NewDeviceCollector(flakyIdentity{mocknvml.NewInterface(newLibrary(t, ""))}, logger)

	// device 1 is dropped, device 2 keeps its series with an empty name
	assert.Equal(t, 63, testutil.CollectAndCount(collector))
	assert.Equal(t, 7, testutil.CollectAndCount(collector, "gpumock_device_info"))

	logs := buf.String()
	assert.Contains(t, logs, "metrics.scrape.device_skipped")
	assert.Contains(t, logs, "metrics.scrape.name_failed")
}
