package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gpumock/internal/config"
)

func (a *app) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or validate configuration",
	}
	cmd.AddCommand(a.configShowCommand(), configTestCommand())
	return cmd
}

func (a *app) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Encode(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// configTestCommand validates one file, or the system and user merge when
// no path is given. It runs without setup so invalid config is reported
// instead of aborting.
func configTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "test [path]",
		Short:       "Validate configuration",
		Annotations: map[string]string{skipSetup: "true"},
		Args:        cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var (
				cfg config.Config
				err error
			)
			if len(args) == 1 {
				fmt.Fprintf(out, "Testing configuration file: %s\n", args[0])
				cfg, err = config.LoadFrom(args[0])
			} else {
				fmt.Fprintln(out, "Testing configuration (system + user merge):")
				fmt.Fprintf(out, "  System config: %s\n", config.SystemConfigPath())
				if userPath := config.UserConfigPath(); userPath != "" {
					fmt.Fprintf(out, "  User config:   %s\n", userPath)
				}
				fmt.Fprintln(out)
				cfg, err = config.Load()
			}

			if err != nil {
				fmt.Fprintf(out, "❌ Configuration validation FAILED:\n   %v\n", err)
				return fmt.Errorf("invalid configuration")
			}

			fmt.Fprintln(out, "✓ Configuration is VALID")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Configuration Summary:")
			fmt.Fprintf(out, "  Log Level:      %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Fixture:        %s\n", fixtureLabel(cfg.Fixture.Path))
			fmt.Fprintf(out, "  Machine:        %s\n", cfg.Layout.Machine)
			fmt.Fprintf(out, "  Event Wait Cap: %d ms\n", cfg.Events.MaxWaitMS)
			fmt.Fprintf(out, "  Listen:         %s\n", cfg.Server.Listen)
			fmt.Fprintf(out, "  Sample Output:  %s\n", cfg.Sampling.Output)
			return nil
		},
	}
}

func fixtureLabel(path string) string {
	if path == "" {
		return "built-in DGX A100"
	}
	return path
}
