package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/docker/go-units"

	"gpumock/internal/inventory"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00d7ff")).MarginBottom(1)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd700")).MarginTop(1)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#87d7af"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff"))
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#00d7ff")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fafff")).MarginTop(1)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true)
	listPane      = lipgloss.NewStyle().PaddingRight(4)
)

func field(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", label)))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}

func (m Model) footer(b *strings.Builder, hint string) {
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(hint))
	b.WriteString("\n")
	if m.lastError != "" {
		b.WriteString(errorStyle.Render("⚠ " + m.lastError))
		b.WriteString("\n")
	} else if m.statusMessage != "" {
		b.WriteString(dimStyle.Render(m.statusMessage))
		b.WriteString("\n")
	}
}

func (m Model) renderDevicesScreen() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("gpumock: Devices"))
	b.WriteString("\n\n")

	if !m.hasSnapshot {
		b.WriteString(errorStyle.Render("No device state available"))
		b.WriteString("\n")
		m.footer(&b, "Refresh: r | Quit: q")
		return b.String()
	}

	var list strings.Builder
	for i, d := range m.snapshot.Devices {
		line := fmt.Sprintf("[%d] %s", d.Index, d.Name)
		if i == m.selection {
			list.WriteString(selectedStyle.Render(line))
		} else {
			list.WriteString(itemStyle.Render(line))
		}
		list.WriteString("\n")
		list.WriteString(dimStyle.Render("    " + d.BusID))
		list.WriteString("\n")
	}

	detail := ""
	if d, ok := m.Selected(); ok {
		detail = renderDetail(d)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, listPane.Render(list.String()), detail))
	b.WriteString("\n")

	m.footer(&b, "Navigate: ↑/↓ or digits | Topology: t | System: s | Help: ? | Refresh: r | Quit: q")
	return b.String()
}

func memoryLine(mem inventory.Memory) string {
	return fmt.Sprintf("%s used / %s total (%s free)",
		units.BytesSize(float64(mem.UsedBytes)),
		units.BytesSize(float64(mem.TotalBytes)),
		units.BytesSize(float64(mem.FreeBytes)))
}

func renderDetail(d inventory.Device) string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Identity"))
	b.WriteString("\n")
	field(&b, "Name", d.Name)
	field(&b, "UUID", d.UUID)
	field(&b, "Serial", d.Serial)
	field(&b, "Part number", d.BoardPartNumber)
	field(&b, "Minor", fmt.Sprintf("%d", d.MinorNumber))
	field(&b, "Compute cap.", d.ComputeCapability)
	field(&b, "SMs", fmt.Sprintf("%d", d.Multiprocessors))

	b.WriteString(sectionStyle.Render("PCI"))
	b.WriteString("\n")
	field(&b, "Bus id", d.BusID)
	field(&b, "Legacy bus id", d.BusIDLegacy)

	b.WriteString(sectionStyle.Render("Memory"))
	b.WriteString("\n")
	field(&b, "Framebuffer", memoryLine(d.Memory))
	field(&b, "BAR1", memoryLine(d.BAR1))

	b.WriteString(sectionStyle.Render("Clocks"))
	b.WriteString("\n")
	field(&b, "Graphics", fmt.Sprintf("%d / %d MHz", d.Clocks.GraphicsMHz, d.MaxClocks.GraphicsMHz))
	field(&b, "SM", fmt.Sprintf("%d / %d MHz", d.Clocks.SMMHz, d.MaxClocks.SMMHz))
	field(&b, "Memory", fmt.Sprintf("%d / %d MHz", d.Clocks.MemoryMHz, d.MaxClocks.MemoryMHz))

	b.WriteString(sectionStyle.Render("Power"))
	b.WriteString("\n")
	field(&b, "Draw", fmt.Sprintf("%.0f W of %.0f W", d.PowerW, d.PowerLimitW))
	field(&b, "Energy", fmt.Sprintf("%.0f J", d.EnergyJ))
	field(&b, "Temperature", fmt.Sprintf("%d C", d.TemperatureC))

	b.WriteString(sectionStyle.Render("NVLink"))
	b.WriteString("\n")
	b.WriteString(valueStyle.Render(nvlinkSummary(d.Links)))
	b.WriteString("\n")

	return b.String()
}

// nvlinkSummary groups active links by peer: "GPU1: 0,1  GPU2: 2,3".
func nvlinkSummary(links []inventory.Link) string {
	var order []int
	peers := make(map[int][]string)
	for _, l := range links {
		if !l.Active {
			continue
		}
		if _, seen := peers[l.RemoteIndex]; !seen {
			order = append(order, l.RemoteIndex)
		}
		peers[l.RemoteIndex] = append(peers[l.RemoteIndex], fmt.Sprintf("%d", l.Link))
	}
	if len(order) == 0 {
		return "no active links"
	}

	parts := make([]string, 0, len(order))
	for _, idx := range order {
		name := fmt.Sprintf("GPU%d", idx)
		if idx < 0 {
			name = "unresolved"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(peers[idx], ",")))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderTopologyScreen() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("gpumock: Topology"))
	b.WriteString("\n\n")

	topo := m.snapshot.Topology
	n := len(topo.BusIDs)
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-6s", "")))
	for j := 0; j < n; j++ {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-6s", fmt.Sprintf("GPU%d", j))))
	}
	b.WriteString("\n")
	for i := 0; i < n; i++ {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-6s", fmt.Sprintf("GPU%d", i))))
		for j := 0; j < n; j++ {
			b.WriteString(valueStyle.Render(fmt.Sprintf("%-6s", topo.Cell(i, j))))
		}
		b.WriteString("\n")
	}

	m.footer(&b, "X = self | SYS = across NUMA nodes | NV# = bonded NVLinks | Back: Esc")
	return b.String()
}

func (m Model) renderSystemScreen() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("gpumock: System"))
	b.WriteString("\n\n")

	sys := m.snapshot.System
	field(&b, "Driver", sys.DriverVersion)
	field(&b, "Branch", sys.DriverBranch)
	field(&b, "NVML", sys.NVMLVersion)
	field(&b, "CUDA", sys.CUDAVersion)
	field(&b, "Devices", fmt.Sprintf("%d", sys.DeviceCount))
	field(&b, "Fingerprint", sys.Fingerprint)
	if !m.loadedAt.IsZero() {
		field(&b, "Loaded", m.loadedAt.Format("15:04:05"))
	}

	m.footer(&b, "Refresh: r | Back: Esc | Quit: q")
	return b.String()
}

func (m Model) renderHelpScreen() string {
	var b strings.Builder
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#87d7af")).Bold(true)

	b.WriteString(titleStyle.Render("Help: Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Screens"))
	b.WriteString("\n")
	for _, item := range DefaultShortcuts() {
		b.WriteString(keyStyle.Render(fmt.Sprintf("%-12s", item.Key)))
		b.WriteString(valueStyle.Render(item.Description))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Devices"))
	b.WriteString("\n")
	b.WriteString(keyStyle.Render("↑ / ↓       "))
	b.WriteString(valueStyle.Render("Move selection"))
	b.WriteString("\n")
	b.WriteString(keyStyle.Render("0-9         "))
	b.WriteString(valueStyle.Render("Jump to device index"))
	b.WriteString("\n")
	b.WriteString(keyStyle.Render("r           "))
	b.WriteString(valueStyle.Render("Re-read the library"))
	b.WriteString("\n")
	b.WriteString(keyStyle.Render("q / Ctrl+C  "))
	b.WriteString(valueStyle.Render("Quit"))
	b.WriteString("\n")

	m.footer(&b, "Back: Esc")
	return b.String()
}
