package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"gpumock/internal/fixture"
	"gpumock/internal/fsutil"
)

func (a *app) fixtureCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Inspect device tables",
	}
	cmd.AddCommand(a.fixtureDumpCommand(), fixtureCheckCommand())
	return cmd
}

// fixtureDumpCommand writes the table being served, fully expanded, so it
// can be edited and passed back with --fixture.
func (a *app) fixtureDumpCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the active device table as a fixture file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var buf bytes.Buffer
			if err := fixture.Encode(&buf, a.lib.Table()); err != nil {
				return err
			}
			if output == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := fsutil.AtomicWriteFile(output, buf.Bytes(), fsutil.DefaultFilePermissions, a.logger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Fixture written to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write instead of stdout")
	return cmd
}

func fixtureCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "check <path>",
		Short:       "Validate a fixture file",
		Annotations: map[string]string{skipSetup: "true"},
		Args:        cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Testing fixture file: %s\n", args[0])

			table, err := fixture.Load(args[0])
			if err != nil {
				fmt.Fprintf(out, "❌ Fixture validation FAILED:\n   %v\n", err)
				return fmt.Errorf("invalid fixture")
			}

			fmt.Fprintln(out, "✓ Fixture is VALID")
			fmt.Fprintf(out, "  Devices:        %d\n", table.Count())
			fmt.Fprintf(out, "  Driver Version: %s\n", table.System.DriverVersion)
			fmt.Fprintf(out, "  Fingerprint:    %s\n", table.Fingerprint())
			return nil
		},
	}
}
