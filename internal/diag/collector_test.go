package diag

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gpumock/internal/config"
	"gpumock/internal/fixture"
	"gpumock/internal/inventory"
	"gpumock/internal/logging"
	"gpumock/internal/mocknvml"
	"gpumock/internal/session"
)

func newCollector(t *testing.T, opts *Options) *Collector {
	t.Helper()
	lib := mocknvml.New(mocknvml.WithSession(session.New()))
	return NewCollector(opts, lib, config.DefaultConfig(), logging.NewLogger(logging.LevelError))
}

func TestCollector_CollectLogs(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "gpumock.log")
	content := "{\"type\":\"mocknvml.fixture.loaded\"}\n"
	if err := os.WriteFile(logFile, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	files, err := newCollector(t, &Options{LogFile: logFile, IncludeLogs: true}).CollectLogs()
	if err != nil {
		t.Fatalf("CollectLogs() error = %v", err)
	}
	if string(files["logs/gpumock.log"]) != content {
		t.Errorf("Unexpected log content %q", files["logs/gpumock.log"])
	}
}

func TestCollector_CollectLogs_Missing(t *testing.T) {
	files, err := newCollector(t, &Options{LogFile: "/nonexistent/gpumock.log", IncludeLogs: true}).CollectLogs()
	if err != nil {
		t.Fatalf("CollectLogs() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Expected no files, got %d", len(files))
	}
}

func TestCollector_CollectLogs_Disabled(t *testing.T) {
	files, err := newCollector(t, &Options{LogFile: "/tmp/x.log"}).CollectLogs()
	if err != nil || files != nil {
		t.Errorf("Expected nil, nil; got %v, %v", files, err)
	}
}

func TestCollector_CollectConfig(t *testing.T) {
	files, err := newCollector(t, &Options{}).CollectConfig()
	if err != nil {
		t.Fatalf("CollectConfig() error = %v", err)
	}
	if !strings.Contains(string(files["config/effective.yaml"]), "max_wait_ms: 100") {
		t.Errorf("Unexpected config:\n%s", files["config/effective.yaml"])
	}
}

func TestCollector_CollectFixture(t *testing.T) {
	c := newCollector(t, &Options{})
	files, err := c.CollectFixture()
	if err != nil {
		t.Fatalf("CollectFixture() error = %v", err)
	}

	table, err := fixture.Parse(files["fixture/table.yaml"])
	if err != nil {
		t.Fatalf("Dumped fixture does not parse: %v", err)
	}
	if table.Fingerprint() != c.lib.Table().Fingerprint() {
		t.Error("Expected dumped fixture to reproduce the served table")
	}
}

func TestCollector_CollectSnapshot(t *testing.T) {
	c := newCollector(t, &Options{})
	files, err := c.CollectSnapshot()
	if err != nil {
		t.Fatalf("CollectSnapshot() error = %v", err)
	}

	var snap inventory.Snapshot
	if err := json.Unmarshal(files["inventory/snapshot.json"], &snap); err != nil {
		t.Fatalf("Snapshot is not JSON: %v", err)
	}
	if len(snap.Devices) != 8 {
		t.Errorf("Expected 8 devices, got %d", len(snap.Devices))
	}
	if c.lib.Session().Active() {
		t.Error("Expected snapshot session to be released")
	}
}

func TestCollector_CollectSystemInfo(t *testing.T) {
	files, err := newCollector(t, &Options{Version: "1.2.3"}).CollectSystemInfo()
	if err != nil {
		t.Fatalf("CollectSystemInfo() error = %v", err)
	}

	var info map[string]interface{}
	if err := json.Unmarshal(files["system_info.json"], &info); err != nil {
		t.Fatal(err)
	}
	if info["gpumock_version"] != "1.2.3" {
		t.Errorf("Unexpected version %v", info["gpumock_version"])
	}
	if info["device_count"] != float64(8) {
		t.Errorf("Unexpected device count %v", info["device_count"])
	}
}

func TestCalculateSHA256(t *testing.T) {
	got := CalculateSHA256([]byte("abc"))
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Errorf("CalculateSHA256 = %s, want %s", got, want)
	}
}

func TestNewOptions(t *testing.T) {
	opts := NewOptions("0.1.0", "")
	if opts.IncludeLogs {
		t.Error("Expected logs excluded without a log file")
	}
	if !strings.HasPrefix(opts.OutputPath, "gpumock-diag-") || !strings.HasSuffix(opts.OutputPath, ".zip") {
		t.Errorf("Unexpected output path %s", opts.OutputPath)
	}
}
