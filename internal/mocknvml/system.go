package mocknvml

import (
	"path/filepath"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/prometheus/procfs"

	"gpumock/internal/abi"
)

// DefaultProcRoot is where process names are looked up.
const DefaultProcRoot = procfs.DefaultMountPoint

func (l *Library) systemString(value string, length uint32) (string, nvml.Return) {
	if ret := l.gate(); ret != nvml.SUCCESS {
		return "", ret
	}
	if ret := abi.CheckString(value, length); ret != nvml.SUCCESS {
		return "", ret
	}
	return value, nvml.SUCCESS
}

func (l *Library) SystemGetDriverVersion(length uint32) (string, nvml.Return) {
	return l.systemString(l.table.System.DriverVersion, length)
}

func (l *Library) SystemGetNVMLVersion(length uint32) (string, nvml.Return) {
	return l.systemString(l.table.System.NVMLVersion, length)
}

func (l *Library) SystemGetDriverBranch(length uint32) (string, nvml.Return) {
	return l.systemString(l.table.System.DriverBranch, length)
}

// SystemGetCudaDriverVersion returns the version as 1000*major + 10*minor.
func (l *Library) SystemGetCudaDriverVersion() (int, nvml.Return) {
	if ret := l.gate(); ret != nvml.SUCCESS {
		return 0, ret
	}
	return l.table.System.CUDADriverVersion, nvml.SUCCESS
}

func (l *Library) SystemGetCudaDriverVersion_v2() (int, nvml.Return) {
	return l.SystemGetCudaDriverVersion()
}

// SystemGetHicVersion reports no interface cards.
func (l *Library) SystemGetHicVersion(out []nvml.HwbcEntry) (int, nvml.Return) {
	if ret := l.gate(); ret != nvml.SUCCESS {
		return 0, ret
	}
	return abi.ListResult(out, 0, func([]nvml.HwbcEntry) {})
}

// SystemGetProcessName resolves the executable of pid through procfs and
// returns its base name. A process without a readable executable link is
// NOT_FOUND.
func (l *Library) SystemGetProcessName(pid int, length uint32) (string, nvml.Return) {
	if ret := l.gate(); ret != nvml.SUCCESS {
		return "", ret
	}
	if length == 0 {
		return "", nvml.ERROR_INVALID_ARGUMENT
	}

	name, err := l.processName(pid)
	if err != nil || name == "" {
		l.logger.Debug("mocknvml.system.process_lookup", "Process name not found", map[string]interface{}{
			"pid":   pid,
			"error": errString(err),
		})
		return "", nvml.ERROR_NOT_FOUND
	}
	if uint64(len(name)) >= uint64(length) {
		return "", nvml.ERROR_INSUFFICIENT_SIZE
	}
	return name, nvml.SUCCESS
}

func (l *Library) processName(pid int) (string, error) {
	fs, err := procfs.NewFS(l.procRoot)
	if err != nil {
		return "", err
	}
	proc, err := fs.Proc(pid)
	if err != nil {
		return "", err
	}
	exe, err := proc.Executable()
	if err != nil || exe == "" {
		return "", err
	}
	return filepath.Base(exe), nil
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
