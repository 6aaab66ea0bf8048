package config

// Config represents the complete gpumock configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Fixture  FixtureConfig  `yaml:"fixture"`
	Events   EventsConfig   `yaml:"events"`
	Server   ServerConfig   `yaml:"server"`
	Sampling SamplingConfig `yaml:"sampling"`
	Layout   LayoutConfig   `yaml:"layout"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File appends events to a file instead of stderr when set.
	File string `yaml:"file"`
}

// FixtureConfig selects the device table. An empty path serves the
// built-in DGX A100 table.
type FixtureConfig struct {
	Path string `yaml:"path"`
}

// EventsConfig bounds the event subsystem
type EventsConfig struct {
	MaxWaitMS int `yaml:"max_wait_ms"`
}

// ServerConfig represents the HTTP inspection server configuration
type ServerConfig struct {
	Listen             string `yaml:"listen"`
	ReadTimeoutSeconds int    `yaml:"read_timeout_seconds"`
}

// SamplingConfig represents the telemetry sampler configuration
type SamplingConfig struct {
	IntervalSeconds int    `yaml:"interval_seconds"`
	Output          string `yaml:"output"`
}

// LayoutConfig places the mock driver tree written by fs, driver and all.
type LayoutConfig struct {
	// Base receives dev/ and proc/driver/nvidia/.
	Base string `yaml:"base"`
	// DriverRoot receives lib64/, bin/ and etc/.
	DriverRoot string `yaml:"driver_root"`
	// Machine selects a built-in profile when no fixture path is set.
	Machine string `yaml:"machine"`
	// AllowUnsupported serves a fallback table for unknown machines.
	AllowUnsupported bool `yaml:"allow_unsupported"`
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) Error() string {
	return e.Path + ": " + e.Message
}
