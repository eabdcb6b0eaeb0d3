package view

import (
	"fmt"
	"strings"
)

// Preset is a named, fixed search-text shortcut
type Preset struct {
	Name   string `json:"name" yaml:"name"`
	Filter string `json:"filter" yaml:"filter"`
}

var presets = []Preset{
	{Name: "All", Filter: ""},
	{Name: "Database", Filter: "database"},
	{Name: "Running", Filter: "Running"},
	{Name: "Failed", Filter: "Failed"},
}

// Presets returns the preset menu in display order
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// LookupPreset finds a preset by name, ignoring case
func LookupPreset(name string) (Preset, error) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
}
