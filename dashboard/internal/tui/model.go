// Package tui is the interactive terminal front end of the dashboard.
package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/williamhogman/kubedash/dashboard/internal/export"
	"github.com/williamhogman/kubedash/dashboard/internal/records"
	"github.com/williamhogman/kubedash/dashboard/internal/service"
	"github.com/williamhogman/kubedash/dashboard/internal/types"
	"github.com/williamhogman/kubedash/dashboard/internal/view"
)

// Dashboard is what the terminal UI needs from the dashboard service
type Dashboard interface {
	Summary() service.Summary
	Tiles() []service.Tile
	Presets() []view.Preset
	Initial() view.State
	Dispatch(ctx context.Context, state view.State, action view.Action) (view.State, view.Page, error)
	RequestLogs(id types.WorkloadID) (records.WorkloadRecord, error)
	SaveExport(ctx context.Context, format export.Format) (string, error)
}

type exportDoneMsg struct {
	path string
	err  error
}

// Model is the bubbletea model holding one view state
type Model struct {
	ctx         context.Context
	dashboard   Dashboard
	logger      *zap.Logger
	keys        keyMap
	state       view.State
	page        view.Page
	selected    int
	filtering   bool
	filterInput textinput.Model
	message     string
	failed      bool
}

// New creates the model at the initial view state
func New(ctx context.Context, dashboard Dashboard, logger *zap.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "filter by name, cluster or status"
	ti.CharLimit = 128
	ti.Width = 40

	m := Model{
		ctx:         ctx,
		dashboard:   dashboard,
		logger:      logger.Named("tui"),
		keys:        defaultKeyMap(),
		state:       dashboard.Initial(),
		filterInput: ti,
	}
	m.dispatch(view.Action{Type: view.ActionRefresh})
	return m
}

// Run starts the full-screen UI and blocks until the user quits
func Run(ctx context.Context, dashboard Dashboard, logger *zap.Logger) error {
	p := tea.NewProgram(New(ctx, dashboard, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		if msg.err != nil {
			m.setMessage("Export failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.setMessage("Exported to "+msg.path, false)
		return m, nil
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "ctrl+c":
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if m.filterInput.Value() != m.state.Filter {
		m.dispatch(view.Action{Type: view.ActionSetFilter, Text: m.filterInput.Value()})
	}
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filterInput.Focus()
	case key.Matches(msg, m.keys.Preset):
		m.applyPreset(msg.String())
	case key.Matches(msg, m.keys.SortName):
		m.dispatch(sortAction(view.SortByName))
	case key.Matches(msg, m.keys.SortCluster):
		m.dispatch(sortAction(view.SortByCluster))
	case key.Matches(msg, m.keys.SortStatus):
		m.dispatch(sortAction(view.SortByStatus))
	case key.Matches(msg, m.keys.SortCPU):
		m.dispatch(sortAction(view.SortByCPU))
	case key.Matches(msg, m.keys.SortMemory):
		m.dispatch(sortAction(view.SortByMemory))
	case key.Matches(msg, m.keys.PrevPage):
		m.dispatch(view.Action{Type: view.ActionPrevPage})
	case key.Matches(msg, m.keys.NextPage):
		m.dispatch(view.Action{Type: view.ActionNextPage})
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.page.Rows)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Logs):
		m.requestLogs()
	case key.Matches(msg, m.keys.Collapse):
		m.dispatch(view.Action{Type: view.ActionToggleCollapsed})
	case key.Matches(msg, m.keys.Export):
		m.setMessage("Exporting...", false)
		return m, m.exportCmd()
	case key.Matches(msg, m.keys.Refresh):
		m.dispatch(view.Action{Type: view.ActionRefresh})
		m.filterInput.SetValue("")
		m.selected = 0
		m.setMessage("Refreshed", false)
	}
	return m, nil
}

func sortAction(k view.SortKey) view.Action {
	return view.Action{Type: view.ActionSetSort, Sort: string(k)}
}

func (m *Model) applyPreset(digit string) {
	n, err := strconv.Atoi(digit)
	presets := m.dashboard.Presets()
	if err != nil || n < 1 || n > len(presets) {
		return
	}
	preset := presets[n-1]
	m.dispatch(view.Action{Type: view.ActionApplyPreset, Preset: preset.Name})
	m.filterInput.SetValue(m.state.Filter)
}

func (m *Model) dispatch(action view.Action) {
	state, page, err := m.dashboard.Dispatch(m.ctx, m.state, action)
	if err != nil {
		m.logger.Warn("View action rejected", zap.String("action", string(action.Type)), zap.Error(err))
		m.setMessage(err.Error(), true)
		return
	}
	m.state, m.page = state, page
	if m.selected >= len(page.Rows) {
		m.selected = max(0, len(page.Rows)-1)
	}
}

func (m *Model) requestLogs() {
	if m.selected < 0 || m.selected >= len(m.page.Rows) {
		return
	}
	w, err := m.dashboard.RequestLogs(m.page.Rows[m.selected].ID)
	if err != nil {
		m.setMessage(err.Error(), true)
		return
	}
	m.logger.Info("log download requested", w.ID.ZapField(), zap.String("workload", w.Name))
	m.setMessage(fmt.Sprintf("Log download requested for %s", w.Name), false)
}

func (m Model) exportCmd() tea.Cmd {
	ctx, dashboard := m.ctx, m.dashboard
	return func() tea.Msg {
		path, err := dashboard.SaveExport(ctx, "")
		return exportDoneMsg{path: path, err: err}
	}
}

func (m *Model) setMessage(msg string, failed bool) {
	m.message = msg
	m.failed = failed
}

// State returns the current view state
func (m Model) State() view.State {
	return m.state
}
