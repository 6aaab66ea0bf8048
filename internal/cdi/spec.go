// Package cdi produces and consumes Container Device Interface specs for
// the simulated devices.
package cdi

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"gpumock/internal/fixture"
	"gpumock/internal/mockdriver"
	"gpumock/internal/mockfs"
)

const (
	// Version is the CDI spec version written by Generate.
	Version = "0.6.0"
	// DefaultVendor and DefaultClass form the kind nvidia.com/gpu.
	DefaultVendor = "nvidia.com"
	DefaultClass  = "gpu"

	// ModelAnnotation carries the product name of a device.
	ModelAnnotation = "nvidia.com/gpu.model"
	// UUIDAnnotation carries the UUID of a device.
	UUIDAnnotation = "nvidia.com/gpu.uuid"
)

// Spec is the subset of a CDI spec the mock reads and writes.
type Spec struct {
	Version        string         `yaml:"cdiVersion" json:"cdiVersion"`
	Kind           string         `yaml:"kind" json:"kind"`
	Devices        []Device       `yaml:"devices" json:"devices"`
	ContainerEdits ContainerEdits `yaml:"containerEdits,omitempty" json:"containerEdits,omitempty"`
}

// Device is one named device of a spec.
type Device struct {
	Name           string            `yaml:"name" json:"name"`
	Annotations    map[string]string `yaml:"annotations,omitempty" json:"annotations,omitempty"`
	ContainerEdits ContainerEdits    `yaml:"containerEdits" json:"containerEdits"`
}

// ContainerEdits are the changes applied to a container using a device.
type ContainerEdits struct {
	Env         []string     `yaml:"env,omitempty" json:"env,omitempty"`
	DeviceNodes []DeviceNode `yaml:"deviceNodes,omitempty" json:"deviceNodes,omitempty"`
	Mounts      []Mount      `yaml:"mounts,omitempty" json:"mounts,omitempty"`
}

// DeviceNode is a device node injected into the container.
type DeviceNode struct {
	Path     string  `yaml:"path" json:"path"`
	HostPath string  `yaml:"hostPath,omitempty" json:"hostPath,omitempty"`
	Type     string  `yaml:"type,omitempty" json:"type,omitempty"`
	Major    int64   `yaml:"major,omitempty" json:"major,omitempty"`
	Minor    int64   `yaml:"minor,omitempty" json:"minor,omitempty"`
	FileMode *uint32 `yaml:"fileMode,omitempty" json:"fileMode,omitempty"`
}

// Mount is a bind mount injected into the container.
type Mount struct {
	HostPath      string   `yaml:"hostPath" json:"hostPath"`
	ContainerPath string   `yaml:"containerPath" json:"containerPath"`
	Type          string   `yaml:"type,omitempty" json:"type,omitempty"`
	Options       []string `yaml:"options,omitempty" json:"options,omitempty"`
}

// Options tune Generate. Zero values select the defaults.
type Options struct {
	Vendor string
	Class  string
	// DevRoot prefixes host paths of device nodes.
	DevRoot string
	// DriverRoot prefixes host paths of library mounts.
	DriverRoot string
}

// Kind returns vendor/class with defaults applied.
func (o Options) Kind() string {
	vendor, class := o.Vendor, o.Class
	if vendor == "" {
		vendor = DefaultVendor
	}
	if class == "" {
		class = DefaultClass
	}
	return vendor + "/" + class
}

// Build returns the spec for table: one device per index, one per UUID and
// "all". Control nodes and driver libraries go into the spec-wide edits.
func Build(table *fixture.Table, o Options) *Spec {
	if o.DevRoot == "" {
		o.DevRoot = "/"
	}
	if o.DriverRoot == "" {
		o.DriverRoot = "/"
	}

	layout := mockfs.FromTable("/", table)
	spec := &Spec{Version: Version, Kind: o.Kind()}

	var all []DeviceNode
	for i, g := range layout.GPUs {
		node := deviceNode(o.DevRoot, mockfs.Nodes([]mockfs.GPU{g})[0])
		all = append(all, node)

		annotations := map[string]string{
			ModelAnnotation: g.Model,
			UUIDAnnotation:  g.UUID,
		}
		edits := ContainerEdits{DeviceNodes: []DeviceNode{node}}
		spec.Devices = append(spec.Devices,
			Device{Name: strconv.Itoa(i), Annotations: annotations, ContainerEdits: edits},
			Device{Name: g.UUID, Annotations: annotations, ContainerEdits: edits},
		)
	}
	spec.Devices = append(spec.Devices, Device{Name: "all", ContainerEdits: ContainerEdits{DeviceNodes: all}})

	control := mockfs.Nodes(nil)
	for _, n := range control {
		spec.ContainerEdits.DeviceNodes = append(spec.ContainerEdits.DeviceNodes, deviceNode(o.DevRoot, n))
	}
	for _, lib := range mockdriver.Libraries {
		host := mockdriver.LibraryPath(o.DriverRoot, lib, table.System.DriverVersion)
		spec.ContainerEdits.Mounts = append(spec.ContainerEdits.Mounts, Mount{
			HostPath:      host,
			ContainerPath: filepath.Join("/usr/lib64", filepath.Base(host)),
			Type:          "bind",
			Options:       []string{"ro", "nosuid", "nodev", "bind"},
		})
	}
	spec.ContainerEdits.Env = []string{"NVIDIA_VISIBLE_DEVICES=void"}

	return spec
}

func deviceNode(devRoot string, n mockfs.Node) DeviceNode {
	path := "/dev/" + n.Name
	node := DeviceNode{
		Path:  path,
		Type:  "c",
		Major: int64(n.Major),
		Minor: int64(n.Minor),
	}
	if devRoot != "/" {
		node.HostPath = filepath.Join(devRoot, path)
	}
	return node
}

// Generate renders the spec for table as YAML.
func Generate(table *fixture.Table, o Options) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Build(table, o)); err != nil {
		return nil, fmt.Errorf("failed to encode CDI spec: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode CDI spec: %w", err)
	}
	return buf.Bytes(), nil
}

// Parse decodes a YAML or JSON spec.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("invalid CDI spec: %w", err)
	}
	return &spec, nil
}

// Validate parses data and checks the fields every consumer relies on.
func Validate(data []byte) error {
	spec, err := Parse(data)
	if err != nil {
		return err
	}
	return spec.Validate()
}

// Validate checks version, kind and device names.
func (s *Spec) Validate() error {
	var errs []error
	if s.Version == "" {
		errs = append(errs, errors.New("missing CDI version"))
	}
	if s.Kind == "" {
		errs = append(errs, errors.New("missing CDI kind"))
	} else if vendor, class, ok := strings.Cut(s.Kind, "/"); !ok || vendor == "" || class == "" {
		errs = append(errs, fmt.Errorf("kind %q must be vendor/class", s.Kind))
	}
	if len(s.Devices) == 0 {
		errs = append(errs, errors.New("no devices defined"))
	}

	seen := make(map[string]bool, len(s.Devices))
	for i, d := range s.Devices {
		switch {
		case d.Name == "":
			errs = append(errs, fmt.Errorf("devices[%d] has no name", i))
		case seen[d.Name]:
			errs = append(errs, fmt.Errorf("devices[%d] duplicates name %q", i, d.Name))
		}
		seen[d.Name] = true
	}
	return errors.Join(errs...)
}
