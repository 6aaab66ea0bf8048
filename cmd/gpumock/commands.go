package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"gpumock/internal/api"
	"gpumock/internal/diag"
	"gpumock/internal/fsutil"
	"gpumock/internal/gpu"
	"gpumock/internal/inventory"
	"gpumock/internal/metrics"
	"gpumock/internal/mocknvml"
	"gpumock/internal/smi"
	"gpumock/internal/tui"
)

// reportFileName is written under the state directory by detect --save.
const reportFileName = "gpu_report.json"

func (a *app) smiCommand() *cobra.Command {
	var (
		format string
		id     int
	)

	cmd := &cobra.Command{
		Use:   "smi",
		Short: "List devices the way nvidia-smi does",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := smi.ParseFormat(format)
			if err != nil {
				return err
			}

			snap, err := inventory.Collect(a.lib)
			if err != nil {
				return err
			}
			if id >= 0 {
				if id >= len(snap.Devices) {
					return fmt.Errorf("no device with index %d (found %d)", id, len(snap.Devices))
				}
				snap.Devices = snap.Devices[id : id+1]
			}
			return smi.Write(cmd.OutOrStdout(), snap, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(smi.FormatTable), "output format: table, csv or json")
	cmd.Flags().IntVarP(&id, "id", "i", -1, "show only the device with this index")
	return cmd
}

func (a *app) topoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "topo",
		Short: "Print the GPU topology matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := inventory.Collect(a.lib)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), smi.TopologyMatrix(snap.Topology))
			return nil
		},
	}
}

func (a *app) detectCommand() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Probe the library through the nvml bindings and print a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			detector := gpu.NewDetectorWithNVML(mocknvml.NewInterface(a.lib), a.logger)
			report := detector.DetectGPUs()

			fmt.Fprintln(out, "=== GPU Detection Report ===")
			if !report.NVMLOk {
				fmt.Fprintf(out, "❌ NVML Status: FAILED\n")
				fmt.Fprintf(out, "   Error: %s\n", report.ErrorMessage)
				return fmt.Errorf("detection failed")
			}

			fmt.Fprintf(out, "✓ NVML Status: OK\n")
			fmt.Fprintf(out, "  Driver Version: %s\n", report.DriverVersion)
			fmt.Fprintf(out, "  NVML Version:   %s\n", report.NVMLVersion)
			fmt.Fprintf(out, "  CUDA Version:   %s\n", report.CUDAVersionString())
			fmt.Fprintf(out, "  GPU Count:      %d\n", len(report.GPUs))
			for _, g := range report.GPUs {
				fmt.Fprintf(out, "\n  GPU %d:\n", g.Index)
				fmt.Fprintf(out, "    Name:    %s\n", g.Name)
				fmt.Fprintf(out, "    UUID:    %s\n", g.UUID)
				fmt.Fprintf(out, "    Bus id:  %s\n", g.BusID)
				fmt.Fprintf(out, "    Memory:  %s\n", units.BytesSize(float64(g.MemoryMB)*units.MiB))
				fmt.Fprintf(out, "    NVLinks: %d\n", len(g.NVLinks))
			}

			if !save {
				return nil
			}
			stateDir := fsutil.GetStateDir(fsutil.DefaultStateDir)
			if err := fsutil.EnsureStateDirectory(stateDir); err != nil {
				return err
			}
			path := filepath.Join(stateDir, reportFileName)
			if err := detector.SaveReport(report, path); err != nil {
				return err
			}
			fmt.Fprintf(out, "\n✓ Report saved to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "write the report to the state directory")
	return cmd
}

func (a *app) sampleCommand() *cobra.Command {
	var (
		count    int
		interval time.Duration
		output   string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Append device samples to a JSONL file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := metrics.DefaultConfig()
			cfg.SampleInterval = time.Duration(a.cfg.Sampling.IntervalSeconds) * time.Second
			if interval > 0 {
				cfg.SampleInterval = interval
			}
			cfg.MaxSamples = count
			if output == "" {
				output = a.cfg.Sampling.Output
			}

			gpuCollector := metrics.NewGPUCollectorWithNVML(mocknvml.NewInterface(a.lib), a.logger)
			collector := metrics.NewCollectorWithGPU(cfg, gpuCollector, a.logger)
			if err := collector.Initialize(); err != nil {
				return err
			}
			defer collector.Shutdown()

			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := collector.Run(output, ctx.Done()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Samples written to %s\n", output)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "stop after this many samples (0 runs until interrupted)")
	cmd.Flags().DurationVar(&interval, "interval", 0, "sampling interval (default sampling.interval_seconds)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "JSONL file to append to (default sampling.output)")
	return cmd
}

func (a *app) serveCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP inspection API and Prometheus metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Server
			if listen != "" {
				cfg.Listen = listen
			}

			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return api.NewServer(a.lib, cfg, a.logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default server.listen)")
	return cmd
}

func (a *app) tuiCommand() *cobra.Command {
	var refresh time.Duration

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse devices interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			startTime := time.Now()
			a.logger.Info("app.started", "Application started", map[string]interface{}{
				"version": version,
				"ts":      startTime.UTC().Format(time.RFC3339),
			})

			stateDir := fsutil.GetStateDir(fsutil.DefaultStateDir)
			p := tea.NewProgram(tui.NewModel(a.logger, a.lib, stateDir, refresh), tea.WithContext(contextOf(cmd)))

			exitReason := "normal"
			_, err := p.Run()
			if err != nil {
				exitReason = "error"
				a.logger.Error("app.error", "Application error", map[string]interface{}{
					"error": err.Error(),
				})
			}

			a.logger.Info("app.exited", "Application exited", map[string]interface{}{
				"ts":     time.Now().UTC().Format(time.RFC3339),
				"reason": exitReason,
			})
			return err
		},
	}

	cmd.Flags().DurationVar(&refresh, "refresh", 2*time.Second, "re-read interval (0 disables)")
	return cmd
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func (a *app) diagCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "diag",
		Short: "Write a diagnostic ZIP with config, fixture, snapshot and logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := diag.NewOptions(version, a.cfg.Logging.File)
			if output != "" {
				opts.OutputPath = output
			}

			path, err := diag.NewPackager(opts, a.lib, a.cfg, a.logger).CreatePackage()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Diagnostic package written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "package path (default gpumock-diag-<timestamp>.zip)")
	return cmd
}
