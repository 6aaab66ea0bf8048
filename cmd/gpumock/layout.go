package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gpumock/internal/cdi"
	"gpumock/internal/fsutil"
	"gpumock/internal/mockdriver"
	"gpumock/internal/mockfs"
)

// devicesAreFilesEnv makes the container toolkit accept regular files as
// device nodes; driver writes node files into the driver root when it is set.
const devicesAreFilesEnv = "__NVCT_TESTING_DEVICES_ARE_FILES"

func (a *app) fsCommand() *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "fs",
		Short: "Write mock device nodes and proc entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.writeFS(cmd, pick(base, a.cfg.Layout.Base))
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "root for dev/ and proc/ (default layout.base)")
	return cmd
}

func (a *app) driverCommand() *cobra.Command {
	var (
		root        string
		deviceNodes bool
		withDRI     bool
	)

	cmd := &cobra.Command{
		Use:   "driver",
		Short: "Write mock driver libraries, binaries and config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nodes := deviceNodes || os.Getenv(devicesAreFilesEnv) == "true"
			return a.writeDriver(cmd, pick(root, a.cfg.Layout.DriverRoot), nodes, withDRI)
		},
	}

	cmd.Flags().StringVar(&root, "driver-root", "", "root for lib64/, bin/ and etc/ (default layout.driver_root)")
	cmd.Flags().BoolVar(&deviceNodes, "device-nodes", false, "also write device node files under the driver root")
	cmd.Flags().BoolVar(&withDRI, "with-dri", false, "include dev/dri/renderD128 with --device-nodes")
	return cmd
}

func (a *app) allCommand() *cobra.Command {
	var base, root string

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Write both the mock filesystem and the driver tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.writeFS(cmd, pick(base, a.cfg.Layout.Base)); err != nil {
				return fmt.Errorf("failed to create filesystem: %w", err)
			}
			nodes := os.Getenv(devicesAreFilesEnv) == "true"
			if err := a.writeDriver(cmd, pick(root, a.cfg.Layout.DriverRoot), nodes, false); err != nil {
				return fmt.Errorf("failed to deploy driver files: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "root for dev/ and proc/ (default layout.base)")
	cmd.Flags().StringVar(&root, "driver-root", "", "root for lib64/, bin/ and etc/ (default layout.driver_root)")
	return cmd
}

func (a *app) writeFS(cmd *cobra.Command, base string) error {
	layout := mockfs.FromTable(base, a.lib.Table())
	if err := layout.Write(a.logger); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Mock filesystem written under %s (%d GPUs)\n", layout.Base, len(layout.GPUs))
	return nil
}

func (a *app) writeDriver(cmd *cobra.Command, root string, deviceNodes, withDRI bool) error {
	table := a.lib.Table()
	root = filepath.Clean(root)

	files := mockdriver.DefaultFiles(root, table.System.DriverVersion)
	if deviceNodes {
		files = append(files, mockdriver.DeviceNodes(root, mockfs.FromTable(root, table).GPUs, withDRI)...)
	}
	if err := mockdriver.WriteAll(files, a.logger); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Mock driver %s written under %s (%d files)\n", table.System.DriverVersion, root, len(files))
	return nil
}

func (a *app) cdiCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cdi",
		Short: "Generate, validate and parse CDI specs",
	}
	cmd.AddCommand(a.cdiGenerateCommand(), cdiValidateCommand(), a.cdiParseCommand())
	return cmd
}

func (a *app) cdiGenerateCommand() *cobra.Command {
	var (
		output string
		opts   cdi.Options
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a CDI spec for the active device table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.DevRoot = pick(opts.DevRoot, a.cfg.Layout.Base)
			opts.DriverRoot = pick(opts.DriverRoot, a.cfg.Layout.DriverRoot)

			data, err := cdi.Generate(a.lib.Table(), opts)
			if err != nil {
				return err
			}
			return a.emit(cmd, output, data, "CDI spec")
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "file to write instead of stdout")
	flags.StringVar(&opts.Vendor, "vendor", cdi.DefaultVendor, "CDI vendor")
	flags.StringVar(&opts.Class, "class", cdi.DefaultClass, "CDI class")
	flags.StringVar(&opts.DevRoot, "dev-root", "", "host prefix of device nodes (default layout.base)")
	flags.StringVar(&opts.DriverRoot, "driver-root", "", "host prefix of driver libraries (default layout.driver_root)")
	return cmd
}

func cdiValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "validate <path>",
		Short:       "Check a CDI spec file",
		Annotations: map[string]string{skipSetup: "true"},
		Args:        cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(filepath.Clean(args[0]))
			if err != nil {
				return fmt.Errorf("failed to read CDI spec: %w", err)
			}
			if err := cdi.Validate(data); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "❌ CDI spec validation FAILED:\n   %v\n", err)
				return fmt.Errorf("invalid CDI spec")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ CDI spec is VALID")
			return nil
		},
	}
}

func (a *app) cdiParseCommand() *cobra.Command {
	var (
		specPath string
		output   string
		arch     string
		apply    string
	)

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Convert a CDI spec into the mock config it requires",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(filepath.Clean(specPath))
			if err != nil {
				return fmt.Errorf("failed to read CDI spec: %w", err)
			}
			spec, err := cdi.Parse(data)
			if err != nil {
				return err
			}

			mock := spec.MockConfig(arch)
			if apply != "" {
				if err := mock.Write(apply, a.logger); err != nil {
					return err
				}
			}

			out, err := json.MarshalIndent(mock, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to serialize mock config: %w", err)
			}
			return a.emit(cmd, output, append(out, '\n'), "Mock config")
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&specPath, "spec", "", "CDI spec file, YAML or JSON")
	flags.StringVarP(&output, "output", "o", "", "file to write instead of stdout")
	flags.StringVar(&arch, "architecture", "", "override the architecture detected from gpu.model annotations")
	flags.StringVar(&apply, "apply", "", "also create the nodes and proc entries under this directory")
	_ = cmd.MarkFlagRequired("spec")
	return cmd
}

// emit writes data to stdout, or atomically to output when it is set.
func (a *app) emit(cmd *cobra.Command, output string, data []byte, what string) error {
	if output == "" || output == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := fsutil.AtomicWriteFile(output, data, 0o644, a.logger); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s written to %s\n", what, output)
	return nil
}

func pick(flag, configured string) string {
	if flag != "" {
		return flag
	}
	return configured
}
