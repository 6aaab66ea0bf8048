package cdi

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gpumock/internal/fsutil"
	"gpumock/internal/logging"
	"gpumock/internal/mockfs"
)

// defaultModel names GPUs whose spec entry carries no model annotation.
const defaultModel = "NVIDIA A100-SXM4-40GB"

var gpuNode = regexp.MustCompile(`^/dev/nvidia(\d+)$`)

// MockConfig is what a spec asks of the host: the nodes, proc entries,
// mounts and environment a mock driver tree has to provide.
type MockConfig struct {
	GPUCount     int               `json:"gpuCount"`
	Architecture string            `json:"architecture"`
	DeviceNodes  []DeviceNodeSpec  `json:"deviceNodes"`
	ProcEntries  []ProcEntry       `json:"procEntries"`
	Mounts       []MountSpec       `json:"mounts"`
	Environment  map[string]string `json:"environment"`
}

// DeviceNodeSpec is a node to create.
type DeviceNodeSpec struct {
	Path  string `json:"path"`
	Type  string `json:"type"`
	Major int64  `json:"major"`
	Minor int64  `json:"minor"`
	Mode  uint32 `json:"mode"`
}

// ProcEntry is a file to create below /proc.
type ProcEntry struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// MountSpec is a mount the container expects.
type MountSpec struct {
	Source  string   `json:"source"`
	Target  string   `json:"target"`
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

// DetectArchitecture maps a product name to a machine family.
func DetectArchitecture(model string) string {
	model = strings.ToLower(model)
	switch {
	case strings.Contains(model, "a100"):
		return "dgxa100"
	case strings.Contains(model, "h100"):
		return "h100"
	case strings.Contains(model, "h200"):
		return "h200"
	case strings.Contains(model, "b200"):
		return "b200"
	default:
		return "dgxa100"
	}
}

// MockConfig converts s. An empty arch is detected from the first model
// annotation. GPUs are the distinct /dev/nvidia<N> nodes; a spec without
// any counts its named devices other than "all". nvidiactl and the UVM
// nodes are added when the spec omits them.
func (s *Spec) MockConfig(arch string) *MockConfig {
	cfg := &MockConfig{
		Architecture: arch,
		DeviceNodes:  []DeviceNodeSpec{},
		ProcEntries:  []ProcEntry{},
		Mounts:       []MountSpec{},
		Environment:  make(map[string]string),
	}

	gpus := make(map[int]mockfs.GPU)
	seen := make(map[string]bool)
	named := 0

	addEdits := func(edits ContainerEdits) {
		for _, n := range edits.DeviceNodes {
			if seen[n.Path] {
				continue
			}
			seen[n.Path] = true
			mode := uint32(0o666)
			if n.FileMode != nil {
				mode = *n.FileMode
			}
			cfg.DeviceNodes = append(cfg.DeviceNodes, DeviceNodeSpec{
				Path:  n.Path,
				Type:  n.Type,
				Major: n.Major,
				Minor: n.Minor,
				Mode:  mode,
			})
		}
		for _, m := range edits.Mounts {
			cfg.Mounts = append(cfg.Mounts, MountSpec{
				Source:  m.HostPath,
				Target:  m.ContainerPath,
				Type:    m.Type,
				Options: m.Options,
			})
		}
		for _, env := range edits.Env {
			if k, v, ok := strings.Cut(env, "="); ok {
				cfg.Environment[k] = v
			}
		}
	}

	addEdits(s.ContainerEdits)
	for _, d := range s.Devices {
		if d.Name != "all" {
			named++
		}
		model := d.Annotations[ModelAnnotation]
		if cfg.Architecture == "" && model != "" {
			cfg.Architecture = DetectArchitecture(model)
		}
		addEdits(d.ContainerEdits)

		if len(d.ContainerEdits.DeviceNodes) != 1 {
			continue
		}
		match := gpuNode.FindStringSubmatch(d.ContainerEdits.DeviceNodes[0].Path)
		if match == nil {
			continue
		}
		minor, _ := strconv.Atoi(match[1])
		if _, ok := gpus[minor]; ok {
			continue
		}
		if model == "" {
			model = defaultModel
		}
		id := d.Annotations[UUIDAnnotation]
		if id == "" {
			id = fmt.Sprintf("GPU-00000000-0000-0000-0000-%012d", minor)
		}
		gpus[minor] = mockfs.GPU{
			Minor: minor,
			PCI:   fmt.Sprintf("0000:%02x:00.0", minor),
			UUID:  id,
			Model: model,
		}
	}
	if cfg.Architecture == "" {
		cfg.Architecture = DetectArchitecture("")
	}

	for path := range seen {
		if match := gpuNode.FindStringSubmatch(path); match != nil {
			minor, _ := strconv.Atoi(match[1])
			if _, ok := gpus[minor]; !ok {
				gpus[minor] = mockfs.GPU{
					Minor: minor,
					PCI:   fmt.Sprintf("0000:%02x:00.0", minor),
					UUID:  fmt.Sprintf("GPU-00000000-0000-0000-0000-%012d", minor),
					Model: defaultModel,
				}
			}
		}
	}

	minors := make([]int, 0, len(gpus))
	for minor := range gpus {
		minors = append(minors, minor)
	}
	sort.Ints(minors)
	for _, minor := range minors {
		g := gpus[minor]
		cfg.ProcEntries = append(cfg.ProcEntries, ProcEntry{
			Path:    filepath.Join("/proc/driver/nvidia/gpus", g.PCI, "information"),
			Content: mockfs.Information(g),
		})
	}

	cfg.GPUCount = len(gpus)
	if cfg.GPUCount == 0 {
		cfg.GPUCount = named
	}

	var missing []DeviceNodeSpec
	for _, n := range mockfs.Nodes(nil) {
		path := "/dev/" + n.Name
		if !seen[path] {
			missing = append(missing, DeviceNodeSpec{
				Path:  path,
				Type:  "c",
				Major: int64(n.Major),
				Minor: int64(n.Minor),
				Mode:  0o666,
			})
		}
	}
	cfg.DeviceNodes = append(cfg.DeviceNodes, missing...)

	return cfg
}

// Write creates the device nodes as empty files and the proc entries below
// base.
func (c *MockConfig) Write(base string, logger *logging.Logger) error {
	write := func(path string, content []byte, mode os.FileMode) error {
		full := filepath.Join(base, filepath.Clean("/"+path))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(full), err)
		}
		return fsutil.AtomicWriteFile(full, content, mode, logger)
	}

	for _, n := range c.DeviceNodes {
		if err := write(n.Path, nil, os.FileMode(n.Mode)&os.ModePerm); err != nil {
			return err
		}
	}
	for _, p := range c.ProcEntries {
		if err := write(p.Path, []byte(p.Content), 0o644); err != nil {
			return err
		}
	}

	logger.Info("cdi.mock_config.written", "Mock config applied", map[string]interface{}{
		"base":  base,
		"nodes": len(c.DeviceNodes),
		"gpus":  c.GPUCount,
	})
	return nil
}
