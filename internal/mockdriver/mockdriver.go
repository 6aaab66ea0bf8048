// Package mockdriver lays out the user-space half of a driver install:
// versioned libraries with their soname links, utility binaries and the
// container runtime config. Libraries are empty files, which is enough for
// tools that only discover them by path.
package mockdriver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gpumock/internal/fsutil"
	"gpumock/internal/logging"
	"gpumock/internal/mockfs"
)

// Libraries are the shared objects every driver install carries.
var Libraries = []string{
	"libcuda",
	"libnvidia-ml",
	"libnvidia-encode",
	"libnvcuvid",
	"libnvidia-ptxjitcompiler",
	"libnvidia-fatbinaryloader",
}

// Binaries are the utilities placed under bin/.
var Binaries = []string{
	"nvidia-smi",
	"nvidia-debugdump",
	"nvidia-persistenced",
	"nvidia-modprobe",
}

// RuntimeConfig is the container runtime config path below the root.
const RuntimeConfig = "etc/nvidia-container-runtime/config.toml"

// FileSpec is one entry of the tree: a symlink when SymlinkTo is set,
// otherwise a regular file holding Content.
type FileSpec struct {
	Path      string
	SymlinkTo string
	Content   string
	Mode      os.FileMode
}

// LibraryPath returns the versioned path of lib below root.
func LibraryPath(root, lib, driverVersion string) string {
	return filepath.Join(root, "lib64", lib+".so."+driverVersion)
}

// DefaultFiles returns the driver tree for driverVersion below root.
func DefaultFiles(root, driverVersion string) []FileSpec {
	var files []FileSpec
	for _, lib := range Libraries {
		files = append(files,
			FileSpec{Path: LibraryPath(root, lib, driverVersion), Mode: 0o644},
			FileSpec{Path: filepath.Join(root, "lib64", lib+".so.1"), SymlinkTo: lib + ".so." + driverVersion},
			FileSpec{Path: filepath.Join(root, "lib64", lib+".so"), SymlinkTo: lib + ".so.1"},
		)
	}

	for _, bin := range Binaries {
		label := bin + " (mock)"
		if bin == "nvidia-smi" {
			label = "NVIDIA-SMI (mock)"
		}
		files = append(files, FileSpec{
			Path:    filepath.Join(root, "bin", bin),
			Content: fmt.Sprintf("#!/bin/sh\necho '%s'\n", label),
			Mode:    0o755,
		})
	}

	return append(files, FileSpec{
		Path:    filepath.Join(root, RuntimeConfig),
		Content: "# mock nvidia-container-runtime config\n",
		Mode:    0o644,
	})
}

// DeviceNodes returns empty node files for gpus under root/dev, plus the
// first DRI render node when withDRI is set.
func DeviceNodes(root string, gpus []mockfs.GPU, withDRI bool) []FileSpec {
	var files []FileSpec
	for _, node := range mockfs.Nodes(gpus) {
		files = append(files, FileSpec{Path: filepath.Join(root, "dev", node.Name), Mode: 0o666})
	}
	if withDRI {
		files = append(files, FileSpec{Path: filepath.Join(root, "dev", "dri", "renderD128"), Mode: 0o666})
	}
	return files
}

// WriteAll writes files in order, replacing whatever is already there.
func WriteAll(files []FileSpec, logger *logging.Logger) error {
	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(f.Path), err)
		}

		if f.SymlinkTo != "" {
			if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to replace %s: %w", f.Path, err)
			}
			if err := os.Symlink(f.SymlinkTo, f.Path); err != nil {
				return fmt.Errorf("failed to link %s to %s: %w", f.Path, f.SymlinkTo, err)
			}
			continue
		}

		if err := fsutil.AtomicWriteFile(f.Path, []byte(f.Content), f.Mode, logger); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
	}

	logger.Debug("mockdriver.written", "Mock driver files written", map[string]interface{}{
		"files": len(files),
	})
	return nil
}
