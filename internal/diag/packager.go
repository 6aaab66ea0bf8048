package diag

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gpumock/internal/config"
	"gpumock/internal/fsutil"
	"gpumock/internal/logging"
	"gpumock/internal/mocknvml"
)

// Packager creates diagnostic ZIP packages
type Packager struct {
	opts      *Options
	collector *Collector
	logger    *logging.Logger
}

// NewPackager creates a new diagnostic packager
func NewPackager(opts *Options, lib *mocknvml.Library, settings config.Config, logger *logging.Logger) *Packager {
	return &Packager{
		opts:      opts,
		collector: NewCollector(opts, lib, settings, logger),
		logger:    logger,
	}
}

// CreatePackage collects every artifact and writes the ZIP. A failing
// collector is logged and left out; the package is still written.
func (p *Packager) CreatePackage() (string, error) {
	p.logger.Info("diag.package.start", "Creating diagnostic package", map[string]interface{}{
		"output": p.opts.OutputPath,
	})

	steps := []struct {
		name    string
		collect func() (map[string][]byte, error)
	}{
		{"logs", p.collector.CollectLogs},
		{"config", p.collector.CollectConfig},
		{"fixture", p.collector.CollectFixture},
		{"snapshot", p.collector.CollectSnapshot},
		{"sysinfo", p.collector.CollectSystemInfo},
	}

	allFiles := make(map[string][]byte)
	for _, step := range steps {
		files, err := step.collect()
		if err != nil {
			p.logger.Error("diag.package."+step.name+"_error", "Failed to collect "+step.name, map[string]interface{}{
				"error": err.Error(),
			})
		}
		for path, content := range files {
			allFiles[path] = content
		}
	}

	manifestJSON, err := json.MarshalIndent(p.createManifest(allFiles), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}
	allFiles["diag_manifest.json"] = manifestJSON

	if err := p.createZIP(allFiles); err != nil {
		return "", fmt.Errorf("failed to create ZIP: %w", err)
	}

	p.logger.Info("diag.package.complete", "Diagnostic package created", map[string]interface{}{
		"output":     p.opts.OutputPath,
		"file_count": len(allFiles),
	})
	return p.opts.OutputPath, nil
}

func sortedPaths(files map[string][]byte) []string {
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func (p *Packager) createManifest(files map[string][]byte) *Manifest {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	manifest := &Manifest{
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Host:        hostname,
		Version:     p.opts.Version,
		Fingerprint: p.collector.lib.Table().Fingerprint(),
		Files:       make([]ManifestFile, 0, len(files)),
	}
	for _, path := range sortedPaths(files) {
		manifest.Files = append(manifest.Files, ManifestFile{
			Path:      path,
			SizeBytes: int64(len(files[path])),
			SHA256:    CalculateSHA256(files[path]),
		})
	}
	return manifest
}

func (p *Packager) createZIP(files map[string][]byte) error {
	zipFile, err := os.Create(filepath.Clean(p.opts.OutputPath))
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer fsutil.CloseWithError(zipFile.Close, p.logger, p.opts.OutputPath)

	zipWriter := zip.NewWriter(zipFile)
	for _, path := range sortedPaths(files) {
		writer, err := zipWriter.Create(path)
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", path, err)
		}
		if _, err := writer.Write(files[path]); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return zipWriter.Close()
}
