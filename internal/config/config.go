package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"gpumock/internal/configdir"
)

const (
	systemConfigFile = "config.yaml"
	userConfigDir    = ".gpumock"
	userConfigFile   = "config.yaml"

	// FixtureEnv overrides fixture.path after every file has been merged.
	FixtureEnv = "MOCK_NVML_CONFIG"
	// MachineEnv overrides layout.machine.
	MachineEnv = "MACHINE_TYPE"
	// AllowUnsupportedEnv set to "true" enables layout.allow_unsupported.
	AllowUnsupportedEnv = "ALLOW_UNSUPPORTED"
)

// Load loads and merges configuration from system and user files
// Priority: defaults < system config < user config < environment
func Load() (Config, error) {
	return LoadWith("")
}

// LoadWith behaves like Load and additionally merges the file at explicit,
// which must exist, on top of the user config.
func LoadWith(explicit string) (Config, error) {
	cfg := DefaultConfig()

	if err := mergeConfigFile(&cfg, SystemConfigPath()); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("failed to load system config: %w", err)
		}
	}

	if userPath := UserConfigPath(); userPath != "" {
		if err := mergeConfigFile(&cfg, userPath); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return cfg, fmt.Errorf("failed to load user config: %w", err)
			}
		}
	}

	if explicit != "" {
		if err := mergeConfigFile(&cfg, explicit); err != nil {
			return cfg, fmt.Errorf("failed to load config from %s: %w", explicit, err)
		}
	}

	applyEnv(&cfg)

	if validationErrors := cfg.Validate(); len(validationErrors) > 0 {
		return cfg, fmt.Errorf("config.validation.error: %v", formatValidationErrors(validationErrors))
	}

	return cfg, nil
}

// LoadFrom loads configuration from a specific file path
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := mergeConfigFile(&cfg, path); err != nil {
		return cfg, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	applyEnv(&cfg)

	if validationErrors := cfg.Validate(); len(validationErrors) > 0 {
		return cfg, fmt.Errorf("config.validation.error: %v", formatValidationErrors(validationErrors))
	}

	return cfg, nil
}

// Encode renders cfg as YAML.
func Encode(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func applyEnv(cfg *Config) {
	if path := os.Getenv(FixtureEnv); path != "" {
		cfg.Fixture.Path = path
	}
	if machine := os.Getenv(MachineEnv); machine != "" {
		cfg.Layout.Machine = machine
	}
	if os.Getenv(AllowUnsupportedEnv) == "true" {
		cfg.Layout.AllowUnsupported = true
	}
}

// mergeConfigFile reads a YAML file and merges it into the existing config
func mergeConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 -- path is constructed from trusted sources
	if err != nil {
		return err
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfig(cfg, &overlay)

	return nil
}

// mergeConfig merges non-zero values from src into dst
func mergeConfig(dst, src *Config) {
	if src.Logging.Level != "" {
		dst.Logging.Level = src.Logging.Level
	}
	if src.Logging.Format != "" {
		dst.Logging.Format = src.Logging.Format
	}
	if src.Logging.File != "" {
		dst.Logging.File = src.Logging.File
	}

	if src.Fixture.Path != "" {
		dst.Fixture.Path = src.Fixture.Path
	}

	// A zero wait cannot be told apart from an unset one, so it is only
	// reachable through the defaults.
	if src.Events.MaxWaitMS != 0 {
		dst.Events.MaxWaitMS = src.Events.MaxWaitMS
	}

	if src.Server.Listen != "" {
		dst.Server.Listen = src.Server.Listen
	}
	if src.Server.ReadTimeoutSeconds != 0 {
		dst.Server.ReadTimeoutSeconds = src.Server.ReadTimeoutSeconds
	}

	if src.Sampling.IntervalSeconds != 0 {
		dst.Sampling.IntervalSeconds = src.Sampling.IntervalSeconds
	}
	if src.Sampling.Output != "" {
		dst.Sampling.Output = src.Sampling.Output
	}

	if src.Layout.Base != "" {
		dst.Layout.Base = src.Layout.Base
	}
	if src.Layout.DriverRoot != "" {
		dst.Layout.DriverRoot = src.Layout.DriverRoot
	}
	if src.Layout.Machine != "" {
		dst.Layout.Machine = src.Layout.Machine
	}
	if src.Layout.AllowUnsupported {
		dst.Layout.AllowUnsupported = true
	}
}

// formatValidationErrors formats validation errors for display
func formatValidationErrors(errors []ValidationError) string {
	if len(errors) == 0 {
		return ""
	}
	if len(errors) == 1 {
		return errors[0].Error()
	}
	result := fmt.Sprintf("%d validation errors:\n", len(errors))
	for _, err := range errors {
		result += "  - " + err.Error() + "\n"
	}
	return result
}

// SystemConfigPath returns the path to the system configuration file
func SystemConfigPath() string {
	return filepath.Join(configdir.ConfigDir(), systemConfigFile)
}

// UserConfigPath returns the path to the user configuration file
func UserConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, userConfigDir, userConfigFile)
}
