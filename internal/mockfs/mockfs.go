// Package mockfs writes the files an NVIDIA driver exposes under /dev and
// /proc/driver/nvidia, laid out under a base directory so container tooling
// can be pointed at it.
//
// Device nodes are written as empty regular files. Creating real character
// devices needs CAP_MKNOD, and the toolkit treats plain files as nodes when
// __NVCT_TESTING_DEVICES_ARE_FILES is set.
package mockfs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gpumock/internal/fixture"
	"gpumock/internal/fsutil"
	"gpumock/internal/logging"
)

// Character device numbers used by the NVIDIA kernel modules.
const (
	NvidiaMajor  = 195
	ControlMinor = 255
	UVMMajor     = 235
)

const (
	nodeMode = 0o666
	procMode = 0o644
	dirMode  = 0o755
)

// GPU is one device as the driver files describe it.
type GPU struct {
	// PCI is the lowercase 4-digit domain bus id, e.g. 0000:07:00.0.
	PCI   string
	UUID  string
	Model string
	Minor int
}

// Node is a character device under dev/.
type Node struct {
	Name  string
	Major uint32
	Minor uint32
}

// Layout is the complete mock driver tree below Base.
type Layout struct {
	Base          string
	DriverVersion string
	GPUs          []GPU
}

// FromTable builds the layout for every device in table.
func FromTable(base string, table *fixture.Table) Layout {
	layout := Layout{
		Base:          filepath.Clean(base),
		DriverVersion: table.System.DriverVersion,
	}
	for _, rec := range table.Devices {
		layout.GPUs = append(layout.GPUs, GPU{
			Minor: rec.MinorNumber,
			PCI:   NormPCI(rec.PCI.BusIDLegacy),
			UUID:  rec.UUID,
			Model: rec.Name,
		})
	}
	return layout
}

// NormPCI lowercases id and trims an 8-digit domain to the 4 digits procfs
// uses for directory names.
func NormPCI(id string) string {
	id = strings.ToLower(id)
	if domain, rest, ok := strings.Cut(id, ":"); ok && len(domain) == 8 {
		return domain[4:] + ":" + rest
	}
	return id
}

// Nodes lists the per-GPU nodes followed by nvidiactl and the UVM pair.
func Nodes(gpus []GPU) []Node {
	nodes := make([]Node, 0, len(gpus)+3)
	for _, g := range gpus {
		nodes = append(nodes, Node{Name: fmt.Sprintf("nvidia%d", g.Minor), Major: NvidiaMajor, Minor: uint32(g.Minor)})
	}
	return append(nodes,
		Node{Name: "nvidiactl", Major: NvidiaMajor, Minor: ControlMinor},
		Node{Name: "nvidia-uvm", Major: UVMMajor, Minor: 0},
		Node{Name: "nvidia-uvm-tools", Major: UVMMajor, Minor: 1},
	)
}

// Information renders /proc/driver/nvidia/gpus/<pci>/information.
func Information(g GPU) string {
	var bus int
	if _, rest, ok := strings.Cut(g.PCI, ":"); ok {
		_, _ = fmt.Sscanf(rest, "%x:", &bus)
	}
	return fmt.Sprintf(`Model: %s
IRQ:   %d
GPU UUID: %s
Video BIOS: 92.00.19.00.01
Bus Type: PCIe
DMA Size: 47 bits
DMA Mask: 0x7fffffffffff
Bus Location: %s
Device Minor: %d
`, g.Model, 100+bus, g.UUID, g.PCI, g.Minor)
}

// Version renders /proc/driver/nvidia/version.
func Version(driverVersion string) string {
	return fmt.Sprintf("NVRM version: NVIDIA UNIX x86_64 Kernel Module  %s  (gpumock)\n", driverVersion)
}

// Write creates dev/ and proc/driver/nvidia/ under Base. Existing files are
// replaced.
func (l Layout) Write(logger *logging.Logger) error {
	dev := filepath.Join(l.Base, "dev")
	proc := filepath.Join(l.Base, "proc", "driver", "nvidia")

	for _, dir := range []string{dev, proc} {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	for _, node := range Nodes(l.GPUs) {
		if err := fsutil.AtomicWriteFile(filepath.Join(dev, node.Name), nil, nodeMode, logger); err != nil {
			return fmt.Errorf("failed to write device node %s: %w", node.Name, err)
		}
	}

	if err := fsutil.AtomicWriteFile(filepath.Join(proc, "version"), []byte(Version(l.DriverVersion)), procMode, logger); err != nil {
		return fmt.Errorf("failed to write driver version: %w", err)
	}

	for _, g := range l.GPUs {
		dir := filepath.Join(proc, "gpus", g.PCI)
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
		if err := fsutil.AtomicWriteFile(filepath.Join(dir, "information"), []byte(Information(g)), procMode, logger); err != nil {
			return fmt.Errorf("failed to write information for %s: %w", g.PCI, err)
		}
	}

	logger.Info("mockfs.written", "Mock driver filesystem written", map[string]interface{}{
		"base": l.Base,
		"gpus": len(l.GPUs),
	})
	return nil
}
