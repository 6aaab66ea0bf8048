package fixture

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDGXA100_Table(t *testing.T) {
	table := DGXA100()

	require.Equal(t, 8, table.Count())
	assert.Empty(t, table.Validate())
	assert.Equal(t, "550.54.15", table.System.DriverVersion)
	assert.Equal(t, 12040, table.System.CUDADriverVersion)

	for i, rec := range table.Devices {
		assert.Equal(t, i, rec.Index)
		assert.Equal(t, i, rec.MinorNumber)
		assert.Equal(t, "NVIDIA A100-SXM4-40GB", rec.Name)
		assert.Equal(t, nvml.BRAND_TESLA, rec.Brand)
		assert.Equal(t, uint64(42949672960), rec.Memory.Total)
		assert.Equal(t, rec.Memory.Total, rec.Memory.Free+rec.Memory.Used)
		assert.Equal(t, uint64(0), rec.Memory.Used)
		assert.Equal(t, uint32(30+i), rec.TemperatureC)
		assert.Equal(t, 8, rec.ComputeMajor)
		assert.Equal(t, 0, rec.ComputeMinor)
		assert.True(t, strings.HasPrefix(rec.PCI.BusID, "00000000:"))
		assert.True(t, strings.HasPrefix(rec.PCI.BusIDLegacy, "0000:"))
	}

	assert.Equal(t, "GPU-4404041a-04cf-1ccf-9e70-f139a9b1e23c", table.Devices[0].UUID)
	assert.Equal(t, "1563221000001", table.Devices[0].Serial)
	assert.Equal(t, "00000000:07:00.0", table.Devices[7].PCI.BusID)
	assert.Equal(t, "0000:07:00.0", table.Devices[7].PCI.BusIDLegacy)
}

func TestTable_Lookups(t *testing.T) {
	table := DGXA100()

	idx, ok := table.FindUUID("GPU-c9dea5de-06db-44ff-c80f-ce1d407e77ba")
	assert.True(t, ok)
	assert.Equal(t, 7, idx)

	_, ok = table.FindUUID("GPU-C9DEA5DE-06DB-44FF-C80F-CE1D407E77BA")
	assert.False(t, ok, "UUID lookup is exact")

	idx, ok = table.FindBusID("00000000:03:00.0")
	assert.True(t, ok)
	assert.Equal(t, 3, idx)

	idx, ok = table.FindBusID("0000:05:00.0")
	assert.True(t, ok)
	assert.Equal(t, 5, idx)

	_, ok = table.FindBusID("0000:42:00.0")
	assert.False(t, ok)

	_, ok = table.Device(8)
	assert.False(t, ok)
	rec, ok := table.Device(2)
	require.True(t, ok)
	assert.Equal(t, 2, rec.Index)
}

func TestParse_Empty(t *testing.T) {
	table, err := Parse([]byte("version: \"1\"\n"))
	require.NoError(t, err)
	assert.Equal(t, DGXA100(), table)
}

func TestParse_Overrides(t *testing.T) {
	data := []byte(`
version: "1"
system:
  driver_version: "560.35.03"
  cuda_driver_version: 12060
num_devices: 10
device_defaults:
  name: "NVIDIA H100 80GB HBM3"
  memory_total_bytes: 85899345920
  compute_capability: "9.0"
devices:
  - index: 1
    memory_used_bytes: 1073741824
    persistence_mode: disabled
  - index: 9
    serial: "1654922000010"
    compute_mode: exclusive_process
`)

	table, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, 10, table.Count())

	assert.Equal(t, "560.35.03", table.System.DriverVersion)
	assert.Equal(t, "12.550.54", table.System.NVMLVersion)
	assert.Equal(t, 12060, table.System.CUDADriverVersion)

	for _, rec := range table.Devices {
		assert.Equal(t, "NVIDIA H100 80GB HBM3", rec.Name)
		assert.Equal(t, 9, rec.ComputeMajor)
		assert.Equal(t, rec.Memory.Total, rec.Memory.Free+rec.Memory.Used)
	}

	dev1 := table.Devices[1]
	assert.Equal(t, uint64(1073741824), dev1.Memory.Used)
	assert.Equal(t, uint64(85899345920-1073741824), dev1.Memory.Free)
	assert.Equal(t, nvml.FEATURE_DISABLED, dev1.PersistenceMode)

	dev9 := table.Devices[9]
	assert.Equal(t, "1654922000010", dev9.Serial)
	assert.Equal(t, DeriveUUID("1654922000010"), dev9.UUID)
	assert.Equal(t, nvml.COMPUTEMODE_EXCLUSIVE_PROCESS, dev9.ComputeMode)
	assert.Equal(t, "00000000:09:00.0", dev9.PCI.BusID)

	// Built-in UUIDs survive for the first eight positions.
	assert.Equal(t, DGXA100().Devices[0].UUID, table.Devices[0].UUID)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad yaml", "devices: [", "failed to parse YAML"},
		{"bad version", "version: \"2\"", "unsupported fixture version"},
		{"too many devices", "num_devices: 300", "num_devices must be between"},
		{"index out of range", "num_devices: 2\ndevices:\n  - index: 4\n", "out of range"},
		{"bad bus id", "devices:\n  - bus_id: \"nonsense\"\n", "malformed bus_id"},
		{"bad compute mode", "devices:\n  - compute_mode: turbo\n", "unknown compute_mode"},
		{"bad persistence", "devices:\n  - persistence_mode: maybe\n", "persistence_mode"},
		{"bad capability", "devices:\n  - compute_capability: eight\n", "compute_capability"},
		{"used over total", "devices:\n  - memory_total_bytes: 10\n    memory_used_bytes: 20\n", "memory_used_bytes"},
		{"bad uuid", "devices:\n  - uuid: \"not-a-uuid\"\n", "uuid"},
		{"duplicate uuid", "devices:\n  - uuid: \"GPU-b8ea3855-276c-c9cb-b366-c6fa655957c5\"\n", "duplicates"},
		{"duplicate bus", "devices:\n  - bus_id: \"0000:01:00.0\"\n", "duplicates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEncode_ParseRoundTrip(t *testing.T) {
	original, err := Parse([]byte("num_devices: 12\ndevice_defaults:\n  power_usage_mw: 250000\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, original))

	decoded, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
	assert.Equal(t, original.Fingerprint(), decoded.Fingerprint())
}

func TestFingerprint(t *testing.T) {
	a := DGXA100()
	b := DGXA100()

	assert.Len(t, a.Fingerprint(), 64)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.Devices[3].TemperatureC++
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte("num_devices: 2\n"), 0600))

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Count())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidUUID(t *testing.T) {
	assert.True(t, ValidUUID("GPU-4404041a-04cf-1ccf-9e70-f139a9b1e23c"))
	assert.True(t, ValidUUID(DeriveUUID("anything")))
	assert.False(t, ValidUUID("4404041a-04cf-1ccf-9e70-f139a9b1e23c"))
	assert.False(t, ValidUUID("GPU-4404041a04cf1ccf9e70f139a9b1e23c"))
	assert.False(t, ValidUUID("GPU-"))
}
