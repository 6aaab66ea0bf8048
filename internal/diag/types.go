// Package diag bundles the state of a mock library into a ZIP for bug
// reports: effective config, the served fixture, a full inventory
// snapshot and the event log.
package diag

import "time"

// Manifest lists every file in a package with its digest.
type Manifest struct {
	Timestamp   string         `json:"timestamp"`
	Host        string         `json:"host"`
	Version     string         `json:"gpumock_version"`
	Fingerprint string         `json:"fixture_fingerprint"`
	Files       []ManifestFile `json:"files"`
}

// ManifestFile represents a file in the diagnostic package
type ManifestFile struct {
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes"`
	SHA256    string `json:"sha256"`
}

// Options configures diagnostic collection
type Options struct {
	LogFile     string
	OutputPath  string
	IncludeLogs bool
	Version     string
}

// NewOptions returns options writing a timestamped package into the
// working directory.
func NewOptions(version, logFile string) *Options {
	return &Options{
		LogFile:     logFile,
		OutputPath:  generateOutputPath(),
		IncludeLogs: logFile != "",
		Version:     version,
	}
}

func generateOutputPath() string {
	timestamp := time.Now().UTC().Format("20060102-150405")
	return "gpumock-diag-" + timestamp + ".zip"
}
