package view

import (
	"fmt"
	"strings"
)

// Direction is the sort direction
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Flip returns the opposite direction
func (d Direction) Flip() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// Arrow is the header marker for the direction
func (d Direction) Arrow() string {
	if d == Descending {
		return "↓"
	}
	return "↑"
}

// SortKey names one of the sortable workload fields
type SortKey string

const (
	SortNone      SortKey = ""
	SortByID      SortKey = "id"
	SortByName    SortKey = "name"
	SortByCluster SortKey = "cluster"
	SortByStatus  SortKey = "status"
	SortByCPU     SortKey = "cpu"
	SortByMemory  SortKey = "memory"
	SortByCreated SortKey = "createdAt"
)

// SortKeys lists the sortable fields in column order
var SortKeys = []SortKey{SortByID, SortByName, SortByCluster, SortByStatus, SortByCPU, SortByMemory, SortByCreated}

// ParseSortKey resolves a field name case-insensitively. The empty string is SortNone.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortNone, nil
	}
	for _, k := range SortKeys {
		if strings.EqualFold(string(k), s) {
			return k, nil
		}
	}
	return SortNone, fmt.Errorf("%q: %w", s, ErrUnknownSortKey)
}

// Valid reports whether k is SortNone or one of SortKeys
func (k SortKey) Valid() bool {
	if k == SortNone {
		return true
	}
	_, ok := comparators[k]
	return ok
}

// State is the transient interaction state of one dashboard view
type State struct {
	Filter    string    `json:"filter"`
	SortKey   SortKey   `json:"sortKey"`
	Direction Direction `json:"direction"`
	// Page is 1-based
	Page      int  `json:"page"`
	Collapsed bool `json:"collapsed"`
}

// InitialState is the state of a freshly loaded view
func InitialState() State {
	return State{
		Direction: Ascending,
		Page:      1,
		Collapsed: true,
	}
}
