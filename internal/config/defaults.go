package config

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Events: EventsConfig{
			MaxWaitMS: 100,
		},
		Server: ServerConfig{
			Listen:             ":9400",
			ReadTimeoutSeconds: 10,
		},
		Sampling: SamplingConfig{
			IntervalSeconds: 10,
			Output:          "gpumock-samples.jsonl",
		},
		Layout: LayoutConfig{
			Base:       "/run/nvidia/driver",
			DriverRoot: "/var/lib/nvidia-mock/driver",
			Machine:    "dgxa100",
		},
	}
}
