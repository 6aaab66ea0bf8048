package gpu

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"gpumock/internal/fixture"
	"gpumock/internal/logging"
	"gpumock/internal/mocknvml"
	"gpumock/internal/session"
)

// stubNVML overrides the few entry points the failure tests need; anything
// else panics through the nil embedded interface.
type stubNVML struct {
	nvml.Interface
	initReturn  nvml.Return
	countReturn nvml.Return
}

func (s *stubNVML) Init() nvml.Return     { return s.initReturn }
func (s *stubNVML) Shutdown() nvml.Return { return nvml.SUCCESS }

func (s *stubNVML) SystemGetDriverVersion() (string, nvml.Return) {
	return "", nvml.ERROR_NOT_SUPPORTED
}

func (s *stubNVML) SystemGetNVMLVersion() (string, nvml.Return) {
	return "", nvml.ERROR_NOT_SUPPORTED
}

func (s *stubNVML) SystemGetCudaDriverVersion() (int, nvml.Return) {
	return 0, nvml.ERROR_NOT_SUPPORTED
}

func (s *stubNVML) DeviceGetCount() (int, nvml.Return) {
	return 0, s.countReturn
}

func newMockDetector(t *testing.T, lib *mocknvml.Library, logger *logging.Logger) *Detector {
	t.Helper()
	if lib == nil {
		lib = mocknvml.New(mocknvml.WithSession(session.New()))
	}
	return NewDetectorWithNVML(mocknvml.NewInterface(lib), logger)
}

func TestDetector_DetectGPUs_Success(t *testing.T) {
	lib := mocknvml.New(mocknvml.WithSession(session.New()))
	detector := newMockDetector(t, lib, logging.NewLogger(logging.LevelError))

	report := detector.DetectGPUs()

	if !report.NVMLOk {
		t.Fatalf("Expected NVML to be OK, got error: %s", report.ErrorMessage)
	}
	if report.DriverVersion != "550.54.15" {
		t.Errorf("Expected driver version 550.54.15, got: %s", report.DriverVersion)
	}
	if report.NVMLVersion != "12.550.54" {
		t.Errorf("Expected NVML version 12.550.54, got: %s", report.NVMLVersion)
	}
	if report.CUDAVersion != 12040 {
		t.Errorf("Expected CUDA version 12040, got: %d", report.CUDAVersion)
	}
	if got := report.CUDAVersionString(); got != "12.4" {
		t.Errorf("Expected CUDA version string 12.4, got: %s", got)
	}
	if len(report.GPUs) != 8 {
		t.Fatalf("Expected 8 GPUs, got: %d", len(report.GPUs))
	}

	gpu := report.GPUs[3]
	if gpu.Index != 3 {
		t.Errorf("Expected index 3, got: %d", gpu.Index)
	}
	if gpu.Name != "NVIDIA A100-SXM4-40GB" {
		t.Errorf("Unexpected name: %s", gpu.Name)
	}
	if !strings.HasPrefix(gpu.UUID, "GPU-") {
		t.Errorf("Unexpected UUID: %s", gpu.UUID)
	}
	if gpu.BusID != "00000000:03:00.0" {
		t.Errorf("Expected bus id 00000000:03:00.0, got: %s", gpu.BusID)
	}
	if gpu.MemoryMB != 40960 {
		t.Errorf("Expected 40960 MB, got: %d", gpu.MemoryMB)
	}
	if gpu.ComputeCapability != "8.0" {
		t.Errorf("Expected compute capability 8.0, got: %s", gpu.ComputeCapability)
	}
	if gpu.PowerLimitW != 400 {
		t.Errorf("Expected power limit 400 W, got: %d", gpu.PowerLimitW)
	}

	if lib.Session().Active() {
		t.Error("Expected detector to release its session")
	}
}

func TestDetector_DetectGPUs_NVLinks(t *testing.T) {
	report := newMockDetector(t, nil, nil).DetectGPUs()

	links := report.GPUs[0].NVLinks
	if len(links) != 12 {
		t.Fatalf("Expected 12 NVLink peers, got: %d", len(links))
	}

	first, last := links[0], links[11]
	if first.RemoteBusID != "00000000:01:00.0" || first.RemoteIndex != 1 {
		t.Errorf("Unexpected first peer: %+v", first)
	}
	if last.Link != 11 || last.RemoteIndex != 6 {
		t.Errorf("Unexpected last peer: %+v", last)
	}
}

func TestDetector_DetectGPUs_CustomTable(t *testing.T) {
	table, err := fixture.Parse([]byte(`
version: "1"
num_devices: 2
devices:
  - index: 1
    name: NVIDIA H100 80GB HBM3
`))
	if err != nil {
		t.Fatalf("fixture.Parse() error = %v", err)
	}

	lib := mocknvml.New(mocknvml.WithSession(session.New()), mocknvml.WithTable(table))
	report := newMockDetector(t, lib, nil).DetectGPUs()

	if len(report.GPUs) != 2 {
		t.Fatalf("Expected 2 GPUs, got: %d", len(report.GPUs))
	}
	if report.GPUs[1].Name != "NVIDIA H100 80GB HBM3" {
		t.Errorf("Unexpected name: %s", report.GPUs[1].Name)
	}
	// Link pairs alternate between the peer and the device itself.
	links := report.GPUs[0].NVLinks
	if len(links) != 12 {
		t.Fatalf("Expected 12 NVLink peers, got: %d", len(links))
	}
	if links[0].RemoteIndex != 1 || links[2].RemoteIndex != 0 {
		t.Errorf("Unexpected remote indices: %+v", links[:4])
	}
}

func TestDetector_DetectGPUs_InitFailed(t *testing.T) {
	detector := NewDetectorWithNVML(&stubNVML{initReturn: nvml.ERROR_LIBRARY_NOT_FOUND}, nil)
	report := detector.DetectGPUs()

	if report.NVMLOk {
		t.Error("Expected NVML to be not OK when init fails")
	}
	if !strings.Contains(report.ErrorMessage, "NVML Shared Library couldn't be found") {
		t.Errorf("Unexpected error message: %s", report.ErrorMessage)
	}
	if len(report.GPUs) != 0 {
		t.Error("Expected no GPUs when NVML init fails")
	}
}

func TestDetector_DetectGPUs_DeviceCountFailed(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriterLogger(&buf, logging.LevelWarn, logging.FormatJSON)

	detector := NewDetectorWithNVML(&stubNVML{
		initReturn:  nvml.SUCCESS,
		countReturn: nvml.ERROR_UNKNOWN,
	}, logger)
	report := detector.DetectGPUs()

	if !report.NVMLOk {
		t.Error("Expected NVML to be OK (init succeeded)")
	}
	if report.ErrorMessage == "" {
		t.Error("Expected error message when device count fails")
	}
	if report.DriverVersion != "" {
		t.Errorf("Expected empty driver version, got: %s", report.DriverVersion)
	}

	logs := buf.String()
	for _, event := range []string{"gpu.driver.version.failed", "gpu.cuda.version.failed", "gpu.device.count.failed"} {
		if !strings.Contains(logs, event) {
			t.Errorf("Expected %s in logs, got:\n%s", event, logs)
		}
	}
}

func TestDetector_SaveReport(t *testing.T) {
	detector := newMockDetector(t, nil, nil)
	report := detector.DetectGPUs()

	path := filepath.Join(t.TempDir(), "gpu_report.json")
	if err := detector.SaveReport(report, path); err != nil {
		t.Fatalf("Expected no error saving report, got: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report file: %v", err)
	}

	var loaded GPUReport
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Failed to decode report: %v", err)
	}
	if len(loaded.GPUs) != 8 || loaded.GPUs[7].BusID != "00000000:07:00.0" {
		t.Errorf("Saved report does not match: %+v", loaded.GPUs)
	}
}

func TestDetector_SaveReport_MissingDirectory(t *testing.T) {
	detector := newMockDetector(t, nil, nil)

	err := detector.SaveReport(GPUReport{}, filepath.Join(t.TempDir(), "missing", "report.json"))
	if err == nil {
		t.Error("Expected error when the target directory does not exist")
	}
}
