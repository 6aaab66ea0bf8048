// Package smi renders inventory snapshots the way nvidia-smi prints them:
// a device table, a CSV query result and the topology matrix.
package smi

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/docker/go-units"
	"github.com/jszwec/csvutil"

	"gpumock/internal/inventory"
)

// Format selects an output rendering.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// Row is one device line. The csv tags follow nvidia-smi --query-gpu field
// names.
type Row struct {
	Index       int     `csv:"index"`
	Name        string  `csv:"name"`
	UUID        string  `csv:"uuid"`
	BusID       string  `csv:"pci.bus_id"`
	Persistence string  `csv:"persistence_mode"`
	TempC       uint32  `csv:"temperature.gpu"`
	PowerW      float64 `csv:"power.draw"`
	PowerLimitW float64 `csv:"power.limit"`
	MemoryUsed  string  `csv:"memory.used"`
	MemoryTotal string  `csv:"memory.total"`
	GPUUtil     uint32  `csv:"utilization.gpu"`
	ComputeMode string  `csv:"compute_mode"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00d7ff")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

// ParseFormat accepts table, csv or json.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want table, csv or json)", s)
	}
}

// Rows flattens the snapshot's devices.
func Rows(snap inventory.Snapshot) []Row {
	rows := make([]Row, len(snap.Devices))
	for i, d := range snap.Devices {
		persistence := "Disabled"
		if d.Persistence {
			persistence = "Enabled"
		}
		rows[i] = Row{
			Index:       d.Index,
			Name:        d.Name,
			UUID:        d.UUID,
			BusID:       d.BusID,
			Persistence: persistence,
			TempC:       d.TemperatureC,
			PowerW:      d.PowerW,
			PowerLimitW: d.PowerLimitW,
			MemoryUsed:  units.BytesSize(float64(d.Memory.UsedBytes)),
			MemoryTotal: units.BytesSize(float64(d.Memory.TotalBytes)),
			GPUUtil:     d.GPUUtil,
			ComputeMode: d.ComputeMode,
		}
	}
	return rows
}

// Write renders snap to w in the given format.
func Write(w io.Writer, snap inventory.Snapshot, format Format) error {
	switch format {
	case FormatCSV:
		data, err := CSV(Rows(snap))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	default:
		_, err := io.WriteString(w, Table(snap)+"\n")
		return err
	}
}

// CSV encodes rows with a header line.
func CSV(rows []Row) ([]byte, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	data, err := csvutil.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to encode csv: %w", err)
	}
	return data, nil
}

// Table renders the summary banner and one bordered row per device.
func Table(snap inventory.Snapshot) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Driver Version: %s    NVML Version: %s    CUDA Version: %s",
		snap.System.DriverVersion, snap.System.NVMLVersion, snap.System.CUDAVersion)))
	b.WriteString("\n")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("GPU", "Name", "Bus-Id", "Persistence", "Temp", "Pwr:Usage/Cap", "Memory-Usage", "GPU-Util", "Compute M.")

	for _, r := range Rows(snap) {
		t.Row(
			fmt.Sprintf("%d", r.Index),
			r.Name,
			r.BusID,
			r.Persistence,
			fmt.Sprintf("%dC", r.TempC),
			fmt.Sprintf("%.0fW / %.0fW", r.PowerW, r.PowerLimitW),
			fmt.Sprintf("%s / %s", r.MemoryUsed, r.MemoryTotal),
			fmt.Sprintf("%d%%", r.GPUUtil),
			r.ComputeMode,
		)
	}
	b.WriteString(t.Render())
	return b.String()
}

// TopologyMatrix renders the nvidia-smi topo -m view: one row and column per
// device, NV<n> cells for NVLink-connected pairs.
func TopologyMatrix(topo inventory.Topology) string {
	n := len(topo.BusIDs)
	headers := make([]string, 0, n+1)
	headers = append(headers, "")
	for j := 0; j < n; j++ {
		headers = append(headers, fmt.Sprintf("GPU%d", j))
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)

	for i := 0; i < n; i++ {
		cells := make([]string, 0, n+1)
		cells = append(cells, fmt.Sprintf("GPU%d", i))
		for j := 0; j < n; j++ {
			cells = append(cells, topo.Cell(i, j))
		}
		t.Row(cells...)
	}

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n\nLegend:\n\n")
	b.WriteString("  X    = Self\n")
	b.WriteString("  SYS  = Connection traversing PCIe as well as the SMP interconnect between NUMA nodes\n")
	b.WriteString("  NV#  = Connection traversing a bonded set of # NVLinks\n")
	return b.String()
}
