package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Filter      key.Binding
	Preset      key.Binding
	SortName    key.Binding
	SortCluster key.Binding
	SortStatus  key.Binding
	SortCPU     key.Binding
	SortMemory  key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
	Up          key.Binding
	Down        key.Binding
	Logs        key.Binding
	Collapse    key.Binding
	Export      key.Binding
	Refresh     key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Preset: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "presets"),
		),
		SortName: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "sort name"),
		),
		SortCluster: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "sort cluster"),
		),
		SortStatus: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort status"),
		),
		SortCPU: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "sort cpu"),
		),
		SortMemory: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "sort memory"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Logs: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "download log"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "server details"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{
		k.Filter, k.Preset, k.SortName, k.SortCluster, k.SortStatus, k.SortCPU, k.SortMemory,
		k.PrevPage, k.NextPage, k.Logs, k.Collapse, k.Export, k.Refresh, k.Quit,
	}
}
