package cdi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gpumock/internal/fixture"
)

func TestBuild(t *testing.T) {
	spec := Build(fixture.DGXA100(), Options{DevRoot: "/run/mock", DriverRoot: "/drv"})

	assert.Equal(t, Version, spec.Version)
	assert.Equal(t, "nvidia.com/gpu", spec.Kind)
	// index and UUID entries per GPU, plus "all"
	require.Len(t, spec.Devices, 17)

	first := spec.Devices[0]
	assert.Equal(t, "0", first.Name)
	assert.Equal(t, "NVIDIA A100-SXM4-40GB", first.Annotations[ModelAnnotation])
	assert.Equal(t, []DeviceNode{{
		Path:     "/dev/nvidia0",
		HostPath: "/run/mock/dev/nvidia0",
		Type:     "c",
		Major:    195,
		Minor:    0,
	}}, first.ContainerEdits.DeviceNodes)
	assert.Equal(t, "GPU-4404041a-04cf-1ccf-9e70-f139a9b1e23c", spec.Devices[1].Name)

	all := spec.Devices[16]
	assert.Equal(t, "all", all.Name)
	assert.Len(t, all.ContainerEdits.DeviceNodes, 8)

	require.Len(t, spec.ContainerEdits.DeviceNodes, 3)
	assert.Equal(t, "/dev/nvidiactl", spec.ContainerEdits.DeviceNodes[0].Path)
	assert.Equal(t, "/drv/lib64/libcuda.so.550.54.15", spec.ContainerEdits.Mounts[0].HostPath)
	assert.Equal(t, "/usr/lib64/libcuda.so.550.54.15", spec.ContainerEdits.Mounts[0].ContainerPath)
}

func TestBuild_CustomKindAndRootHostPaths(t *testing.T) {
	spec := Build(fixture.DGXA100(), Options{Vendor: "example.com", Class: "mockgpu"})

	assert.Equal(t, "example.com/mockgpu", spec.Kind)
	assert.Empty(t, spec.Devices[0].ContainerEdits.DeviceNodes[0].HostPath)
	assert.Equal(t, "/lib64/libcuda.so.550.54.15", spec.ContainerEdits.Mounts[0].HostPath)
}

func TestGenerate_Validates(t *testing.T) {
	data, err := Generate(fixture.DGXA100(), Options{})
	require.NoError(t, err)

	assert.Contains(t, string(data), "cdiVersion: 0.6.0")
	require.NoError(t, Validate(data))

	spec, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Build(fixture.DGXA100(), Options{}), spec)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"malformed", "cdiVersion: [", "invalid CDI spec"},
		{"no version", "kind: nvidia.com/gpu\ndevices: [{name: '0'}]", "missing CDI version"},
		{"no kind", "cdiVersion: 0.6.0\ndevices: [{name: '0'}]", "missing CDI kind"},
		{"bad kind", "cdiVersion: 0.6.0\nkind: gpu\ndevices: [{name: '0'}]", "must be vendor/class"},
		{"no devices", "cdiVersion: 0.6.0\nkind: nvidia.com/gpu", "no devices defined"},
		{"unnamed", "cdiVersion: 0.6.0\nkind: nvidia.com/gpu\ndevices: [{name: ''}]", "has no name"},
		{"duplicate", "cdiVersion: 0.6.0\nkind: nvidia.com/gpu\ndevices: [{name: a}, {name: a}]", "duplicates name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDetectArchitecture(t *testing.T) {
	tests := map[string]string{
		"NVIDIA A100-SXM4-40GB": "dgxa100",
		"NVIDIA H100 80GB HBM3": "h100",
		"NVIDIA H200":           "h200",
		"NVIDIA B200":           "b200",
		"Tesla V100":            "dgxa100",
	}
	for model, want := range tests {
		assert.Equal(t, want, DetectArchitecture(model), model)
	}
}

const jsonSpec = `{
  "cdiVersion": "0.5.0",
  "kind": "nvidia.com/gpu",
  "devices": [
    {
      "name": "gpu0",
      "annotations": {"nvidia.com/gpu.model": "NVIDIA H100 80GB HBM3"},
      "containerEdits": {
        "deviceNodes": [{"path": "/dev/nvidia0", "type": "c", "major": 195, "minor": 0, "fileMode": 432}],
        "mounts": [{"hostPath": "/usr/lib/libcuda.so", "containerPath": "/usr/lib/libcuda.so", "options": ["ro"]}],
        "env": ["NVIDIA_VISIBLE_DEVICES=0", "BROKEN"]
      }
    },
    {
      "name": "gpu1",
      "containerEdits": {"deviceNodes": [{"path": "/dev/nvidia1", "type": "c", "major": 195, "minor": 1}]}
    }
  ]
}`

func TestMockConfig_FromJSON(t *testing.T) {
	spec, err := Parse([]byte(jsonSpec))
	require.NoError(t, err)

	cfg := spec.MockConfig("")

	assert.Equal(t, 2, cfg.GPUCount)
	assert.Equal(t, "h100", cfg.Architecture)
	assert.Equal(t, map[string]string{"NVIDIA_VISIBLE_DEVICES": "0"}, cfg.Environment)
	require.Len(t, cfg.Mounts, 1)
	assert.Equal(t, MountSpec{Source: "/usr/lib/libcuda.so", Target: "/usr/lib/libcuda.so", Options: []string{"ro"}}, cfg.Mounts[0])

	var paths []string
	for _, n := range cfg.DeviceNodes {
		paths = append(paths, n.Path)
	}
	assert.Equal(t, []string{"/dev/nvidia0", "/dev/nvidia1", "/dev/nvidiactl", "/dev/nvidia-uvm", "/dev/nvidia-uvm-tools"}, paths)
	assert.Equal(t, uint32(0o660), cfg.DeviceNodes[0].Mode)
	assert.Equal(t, uint32(0o666), cfg.DeviceNodes[1].Mode)
	assert.Equal(t, int64(235), cfg.DeviceNodes[3].Major)

	require.Len(t, cfg.ProcEntries, 2)
	assert.Equal(t, "/proc/driver/nvidia/gpus/0000:01:00.0/information", cfg.ProcEntries[1].Path)
	assert.Contains(t, cfg.ProcEntries[0].Content, "Model: NVIDIA H100 80GB HBM3")
	assert.Contains(t, cfg.ProcEntries[1].Content, "Model: NVIDIA A100-SXM4-40GB")
	assert.Contains(t, cfg.ProcEntries[1].Content, "GPU UUID: GPU-00000000-0000-0000-0000-000000000001")
}

func TestMockConfig_ArchitectureOverride(t *testing.T) {
	spec, err := Parse([]byte(jsonSpec))
	require.NoError(t, err)

	assert.Equal(t, "b200", spec.MockConfig("b200").Architecture)
}

func TestMockConfig_GeneratedSpec(t *testing.T) {
	spec := Build(fixture.DGXA100(), Options{})

	cfg := spec.MockConfig("")

	assert.Equal(t, 8, cfg.GPUCount)
	assert.Equal(t, "dgxa100", cfg.Architecture)
	// index, UUID and "all" entries share nodes, which appear once
	assert.Len(t, cfg.DeviceNodes, 11)
	assert.Contains(t, cfg.ProcEntries[7].Content, "GPU UUID: GPU-c9dea5de-06db-44ff-c80f-ce1d407e77ba")
	assert.Equal(t, "void", cfg.Environment["NVIDIA_VISIBLE_DEVICES"])
}

func TestMockConfig_NoNodes(t *testing.T) {
	spec := &Spec{Devices: []Device{{Name: "a"}, {Name: "b"}, {Name: "all"}}}

	cfg := spec.MockConfig("")

	assert.Equal(t, 2, cfg.GPUCount)
	assert.Equal(t, "dgxa100", cfg.Architecture)
	assert.Len(t, cfg.DeviceNodes, 3)
	assert.Empty(t, cfg.ProcEntries)
}

func TestMockConfig_Write(t *testing.T) {
	spec, err := Parse([]byte(jsonSpec))
	require.NoError(t, err)
	base := t.TempDir()

	require.NoError(t, spec.MockConfig("").Write(base, nil))

	info, err := os.Stat(filepath.Join(base, "dev", "nvidia0"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o660), info.Mode().Perm())

	_, err = os.Stat(filepath.Join(base, "dev", "nvidia-uvm-tools"))
	assert.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(base, "proc", "driver", "nvidia", "gpus", "0000:00:00.0", "information"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Device Minor: 0")
}
