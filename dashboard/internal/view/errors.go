package view

import "errors"

// Common errors for view transitions
var (
	// ErrUnknownPreset is returned when a preset name is not in the preset menu
	ErrUnknownPreset = errors.New("unknown preset filter")

	// ErrUnknownSortKey is returned for a sort key outside the sortable fields
	ErrUnknownSortKey = errors.New("unknown sort key")

	// ErrUnknownAction is returned by Dispatch for an unrecognised action type
	ErrUnknownAction = errors.New("unknown view action")

	// ErrUnknownOrdering is returned for an unrecognised quantity ordering
	ErrUnknownOrdering = errors.New("unknown quantity ordering")
)
