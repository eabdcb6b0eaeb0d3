package view

import "fmt"

// ActionType names a view transition
type ActionType string

const (
	ActionSetFilter       ActionType = "set_filter"
	ActionApplyPreset     ActionType = "apply_preset"
	ActionSetSort         ActionType = "set_sort"
	ActionSetPage         ActionType = "set_page"
	ActionNextPage        ActionType = "next_page"
	ActionPrevPage        ActionType = "prev_page"
	ActionToggleCollapsed ActionType = "toggle_collapsed"
	ActionRefresh         ActionType = "refresh"
)

// Action is a serialisable transition request
type Action struct {
	Type   ActionType `json:"type"`
	Text   string     `json:"text,omitempty"`
	Preset string     `json:"preset,omitempty"`
	Sort   string     `json:"sort,omitempty"`
	Page   int        `json:"page,omitempty"`
}

// Dispatch applies a to s. On error the input state is returned unchanged.
func (c *Controller) Dispatch(s State, a Action) (State, error) {
	switch a.Type {
	case ActionSetFilter:
		return c.SetFilter(s, a.Text), nil
	case ActionApplyPreset:
		p, err := LookupPreset(a.Preset)
		if err != nil {
			return s, err
		}
		return c.ApplyPreset(s, p), nil
	case ActionSetSort:
		key, err := ParseSortKey(a.Sort)
		if err != nil {
			return s, err
		}
		return c.SetSort(s, key), nil
	case ActionSetPage:
		return c.SetPage(s, a.Page), nil
	case ActionNextPage:
		return c.NextPage(s), nil
	case ActionPrevPage:
		return c.PrevPage(s), nil
	case ActionToggleCollapsed:
		return c.ToggleCollapsed(s), nil
	case ActionRefresh:
		return c.Refresh(), nil
	}
	return s, fmt.Errorf("%q: %w", a.Type, ErrUnknownAction)
}
