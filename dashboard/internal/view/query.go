package view

// Query describes a view by its inputs rather than by a State. It is how
// stateless callers (HTTP queries, CLI flags) reach a state.
type Query struct {
	Filter     string
	Preset     string
	Sort       string
	Descending bool
	Page       int
}

// FromQuery replays q through the transitions, starting from the initial
// state. A preset takes precedence over a filter and descending order is
// reached by selecting the sort key twice.
func (c *Controller) FromQuery(q Query) (State, error) {
	state := c.Initial()

	if q.Preset != "" {
		preset, err := LookupPreset(q.Preset)
		if err != nil {
			return state, err
		}
		state = c.ApplyPreset(state, preset)
	} else if q.Filter != "" {
		state = c.SetFilter(state, q.Filter)
	}

	if q.Sort != "" {
		key, err := ParseSortKey(q.Sort)
		if err != nil {
			return state, err
		}
		state = c.SetSort(state, key)
		if q.Descending {
			state = c.SetSort(state, key)
		}
	}

	if q.Page != 0 {
		state = c.SetPage(state, q.Page)
	}
	return state, nil
}
