package mockfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gpumock/internal/fixture"
)

func TestNormPCI(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"00000000:07:00.0", "0000:07:00.0"},
		{"0000:0A:00.0", "0000:0a:00.0"},
		{"0000:b7:00.0", "0000:b7:00.0"},
		{"bogus", "bogus"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormPCI(tt.in), tt.in)
	}
}

func TestFromTable(t *testing.T) {
	layout := FromTable("/tmp/root/", fixture.DGXA100())

	assert.Equal(t, "/tmp/root", layout.Base)
	assert.Equal(t, "550.54.15", layout.DriverVersion)
	require.Len(t, layout.GPUs, 8)
	assert.Equal(t, GPU{
		Minor: 3,
		PCI:   "0000:03:00.0",
		UUID:  "GPU-3dc6c589-3bea-2eb8-263e-d7a5b2b3b1ba",
		Model: "NVIDIA A100-SXM4-40GB",
	}, layout.GPUs[3])
}

func TestNodes(t *testing.T) {
	nodes := Nodes([]GPU{{Minor: 0}, {Minor: 1}})

	assert.Equal(t, []Node{
		{Name: "nvidia0", Major: 195, Minor: 0},
		{Name: "nvidia1", Major: 195, Minor: 1},
		{Name: "nvidiactl", Major: 195, Minor: 255},
		{Name: "nvidia-uvm", Major: 235, Minor: 0},
		{Name: "nvidia-uvm-tools", Major: 235, Minor: 1},
	}, nodes)
}

func TestInformation(t *testing.T) {
	info := Information(GPU{Minor: 2, PCI: "0000:0c:00.0", UUID: "GPU-x", Model: "NVIDIA A100-SXM4-40GB"})

	assert.Contains(t, info, "Model: NVIDIA A100-SXM4-40GB\n")
	assert.Contains(t, info, "IRQ:   112\n")
	assert.Contains(t, info, "GPU UUID: GPU-x\n")
	assert.Contains(t, info, "Bus Location: 0000:0c:00.0\n")
	assert.Contains(t, info, "Device Minor: 2\n")
}

func TestLayout_Write(t *testing.T) {
	base := t.TempDir()
	layout := FromTable(base, fixture.DGXA100())

	require.NoError(t, layout.Write(nil))

	for _, name := range []string{"nvidia0", "nvidia7", "nvidiactl", "nvidia-uvm", "nvidia-uvm-tools"} {
		info, err := os.Stat(filepath.Join(base, "dev", name))
		require.NoError(t, err, name)
		assert.True(t, info.Mode().IsRegular(), name)
		assert.Zero(t, info.Size(), name)
		assert.Equal(t, os.FileMode(0o666), info.Mode().Perm(), name)
	}

	version, err := os.ReadFile(filepath.Join(base, "proc", "driver", "nvidia", "version"))
	require.NoError(t, err)
	assert.Contains(t, string(version), "550.54.15")

	info, err := os.ReadFile(filepath.Join(base, "proc", "driver", "nvidia", "gpus", "0000:07:00.0", "information"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "GPU UUID: GPU-c9dea5de-06db-44ff-c80f-ce1d407e77ba")

	// a second write replaces the tree in place
	require.NoError(t, layout.Write(nil))
	entries, err := os.ReadDir(filepath.Join(base, "proc", "driver", "nvidia", "gpus"))
	require.NoError(t, err)
	assert.Len(t, entries, 8)
}

func TestLayout_WriteBlockedBase(t *testing.T) {
	base := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(base, nil, 0o600))

	err := FromTable(base, fixture.DGXA100()).Write(nil)
	assert.Error(t, err)
}
