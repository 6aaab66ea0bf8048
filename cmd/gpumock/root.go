package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gpumock/internal/config"
	"gpumock/internal/fixture"
	"gpumock/internal/logging"
	"gpumock/internal/mocknvml"
	"gpumock/internal/session"
)

// skipSetup marks commands that run without a loaded config.
const skipSetup = "skip-setup"

// fallbackDevices is the size of the table served for unknown machines.
const fallbackDevices = 8

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	configPath  string
	fixturePath string
	machine     string
	logLevel    string

	cfg    config.Config
	logger *logging.Logger
	lib    *mocknvml.Library
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "gpumock",
		Short:         "Mock NVIDIA management library for GPU-less hosts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipSetup] == "true" {
				return nil
			}
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Close()
		},
		RunE: func(c *cobra.Command, _ []string) error {
			return c.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "configuration file merged on top of system and user config")
	flags.StringVar(&a.fixturePath, "fixture", "", "fixture file to serve instead of the built-in DGX A100 table")
	flags.StringVar(&a.machine, "machine", "", "override layout.machine; ignored when a fixture is set")
	flags.StringVar(&a.logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	cmd.AddCommand(
		a.smiCommand(),
		a.topoCommand(),
		a.detectCommand(),
		a.sampleCommand(),
		a.serveCommand(),
		a.tuiCommand(),
		a.diagCommand(),
		a.fsCommand(),
		a.driverCommand(),
		a.allCommand(),
		a.cdiCommand(),
		a.fixtureCommand(),
		a.configCommand(),
		versionCommand(),
	)
	return cmd
}

// setup loads config, opens the logger and builds the library.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadWith(a.configPath)
	if err != nil {
		return err
	}
	if a.fixturePath != "" {
		cfg.Fixture.Path = a.fixturePath
	}
	if a.machine != "" {
		cfg.Layout.Machine = a.machine
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	a.cfg = cfg

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	format := logging.Format(cfg.Logging.Format)
	if cfg.Logging.File != "" {
		if a.logger, err = logging.NewFileLogger(level, format, cfg.Logging.File); err != nil {
			return err
		}
	} else {
		a.logger = logging.NewWriterLogger(cmd.ErrOrStderr(), level, format)
	}

	table, err := a.table()
	if err != nil {
		return err
	}
	a.lib = mocknvml.New(
		mocknvml.WithSession(session.Default()),
		mocknvml.WithLogger(a.logger),
		mocknvml.WithEventWaitLimit(time.Duration(cfg.Events.MaxWaitMS)*time.Millisecond),
		mocknvml.WithTable(table),
	)
	return nil
}

// table resolves the device table: a fixture file wins over the machine
// profile, and unknown machines fall back only when allowed.
func (a *app) table() (*fixture.Table, error) {
	if a.cfg.Fixture.Path != "" {
		table, err := fixture.Load(a.cfg.Fixture.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load fixture: %w", err)
		}
		return table, nil
	}

	table, err := fixture.Machine(a.cfg.Layout.Machine)
	if err == nil {
		return table, nil
	}
	if !a.cfg.Layout.AllowUnsupported {
		return nil, fmt.Errorf("%w; set %s=true to use a fallback", err, config.AllowUnsupportedEnv)
	}
	a.logger.Warn("machine.fallback", "Unsupported machine, serving fallback table", map[string]interface{}{
		"machine": a.cfg.Layout.Machine,
		"devices": fallbackDevices,
	})
	return fixture.Fallback(fallbackDevices, ""), nil
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the gpumock version",
		Annotations: map[string]string{skipSetup: "true"},
		Args:        cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gpumock version %s\n", version)
		},
	}
}
