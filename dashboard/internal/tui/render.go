package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var b strings.Builder
	summary := m.dashboard.Summary()

	b.WriteString(titleStyle.Render("Kubernetes Manager"))
	b.WriteString("  ")
	b.WriteString(valueStyle.Render(summary.Server.Name))
	b.WriteString(" ")
	b.WriteString(labelStyle.Render("[" + summary.Server.Status + "]"))
	b.WriteString("\n")

	if !m.state.Collapsed {
		b.WriteString(m.serverDetails())
	}

	tiles := make([]string, 0, 3)
	for _, t := range m.dashboard.Tiles() {
		tiles = append(tiles, tileStyle.Render(
			statusStyle(t.Status).Render(t.Status.String())+"\n"+valueStyle.Render(fmt.Sprint(t.Count))))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Search: "))
	if m.filtering {
		b.WriteString(m.filterInput.View())
	} else if m.state.Filter != "" {
		b.WriteString(valueStyle.Render(m.state.Filter))
	} else {
		b.WriteString(disabledStyle.Render("(press / to search)"))
	}
	b.WriteString("\n")
	b.WriteString(m.presetMenu())
	b.WriteString("\n\n")

	b.WriteString(WorkloadTable(m.page, m.state, m.selected))
	b.WriteString("\n")
	b.WriteString(Pager(m.page))
	b.WriteString("\n")

	if m.message != "" {
		style := infoStyle
		if m.failed {
			style = errorStyle
		}
		b.WriteString(style.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

func (m Model) serverDetails() string {
	summary := m.dashboard.Summary()
	s := summary.Server

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s   %s %s   %s %d\n",
		labelStyle.Render("Uptime"), s.Uptime,
		labelStyle.Render("Version"), s.Version,
		labelStyle.Render("Nodes"), s.Nodes)
	fmt.Fprintf(&b, "%s %s   %s %s\n",
		labelStyle.Render("CPU requested"), summary.Totals.CPU.String(),
		labelStyle.Render("Memory requested"), summary.Totals.Memory.String())

	services := make([]string, len(s.Services))
	for i, svc := range s.Services {
		services[i] = svc.Name + " " + serviceStyle(svc.Status).Render(svc.Status.String())
	}
	b.WriteString(labelStyle.Render("Services "))
	b.WriteString(strings.Join(services, "  "))
	b.WriteString("\n\n")
	return b.String()
}

func (m Model) presetMenu() string {
	items := []string{}
	for i, p := range m.dashboard.Presets() {
		label := fmt.Sprintf("%d %s", i+1, p.Name)
		if p.Filter == m.state.Filter {
			label = activeStyle.Render(label)
		}
		items = append(items, label)
	}
	return labelStyle.Render("Presets: ") + strings.Join(items, "  ")
}

func (m Model) helpLine() string {
	parts := []string{}
	for _, k := range m.keys.help() {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
