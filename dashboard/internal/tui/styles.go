package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/williamhogman/kubedash/dashboard/internal/types"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle    = lipgloss.NewStyle().Faint(true)
	valueStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Padding(0, 1).Reverse(true)
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	activeStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	disabledStyle = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	tileStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
)

// statusStyle colours a workload status: green running, red failed,
// yellow disconnected.
func statusStyle(status types.WorkloadStatus) lipgloss.Style {
	switch status {
	case types.StatusRunning:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case types.StatusFailed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case types.StatusDisconnected:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	}
	return lipgloss.NewStyle().Faint(true)
}

func serviceStyle(state types.ServiceState) lipgloss.Style {
	if state.IsUp() {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
}
