package diag

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gpumock/internal/config"
	"gpumock/internal/fixture"
	"gpumock/internal/inventory"
	"gpumock/internal/logging"
	"gpumock/internal/mocknvml"
)

// Collector gathers diagnostic artifacts
type Collector struct {
	opts     *Options
	lib      *mocknvml.Library
	settings config.Config
	logger   *logging.Logger
}

// NewCollector creates a collector for lib running under settings.
func NewCollector(opts *Options, lib *mocknvml.Library, settings config.Config, logger *logging.Logger) *Collector {
	return &Collector{
		opts:     opts,
		lib:      lib,
		settings: settings,
		logger:   logger,
	}
}

// CollectLogs includes the event log file. A missing file is skipped.
func (c *Collector) CollectLogs() (map[string][]byte, error) {
	if !c.opts.IncludeLogs || c.opts.LogFile == "" {
		return nil, nil
	}

	files := make(map[string][]byte)
	content, err := os.ReadFile(filepath.Clean(c.opts.LogFile)) // #nosec G304 -- path comes from logging.file
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.logger.Warn("diag.collect.logs.missing", "Log file not found", map[string]interface{}{
				"path": c.opts.LogFile,
			})
			return files, nil
		}
		return files, fmt.Errorf("failed to read log file: %w", err)
	}

	files["logs/"+filepath.Base(c.opts.LogFile)] = content
	c.logger.Info("diag.collect.logs.complete", "Log collection complete", map[string]interface{}{
		"bytes": len(content),
	})
	return files, nil
}

// CollectConfig renders the effective configuration.
func (c *Collector) CollectConfig() (map[string][]byte, error) {
	data, err := config.Encode(c.settings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return map[string][]byte{"config/effective.yaml": data}, nil
}

// CollectFixture writes the served table as a fixture file that
// reproduces it with --fixture.
func (c *Collector) CollectFixture() (map[string][]byte, error) {
	var buf bytes.Buffer
	if err := fixture.Encode(&buf, c.lib.Table()); err != nil {
		return nil, err
	}
	return map[string][]byte{"fixture/table.yaml": buf.Bytes()}, nil
}

// CollectSnapshot queries every device through the facade.
func (c *Collector) CollectSnapshot() (map[string][]byte, error) {
	snap, err := inventory.Collect(c.lib)
	if err != nil {
		return nil, fmt.Errorf("failed to collect snapshot: %w", err)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	c.logger.Info("diag.collect.snapshot.complete", "Snapshot collection complete", map[string]interface{}{
		"devices": len(snap.Devices),
	})
	return map[string][]byte{"inventory/snapshot.json": data}, nil
}

// CollectSystemInfo gathers host and session information
func (c *Collector) CollectSystemInfo() (map[string][]byte, error) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	sysInfo := map[string]interface{}{
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
		"host":            hostname,
		"gpumock_version": c.opts.Version,
		"device_count":    c.lib.Table().Count(),
		"fingerprint":     c.lib.Table().Fingerprint(),
		"session_count":   c.lib.Session().Count(),
	}

	data, err := json.MarshalIndent(sysInfo, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal system info: %w", err)
	}
	return map[string][]byte{"system_info.json": data}, nil
}

// CalculateSHA256 computes SHA256 hash of data
func CalculateSHA256(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
