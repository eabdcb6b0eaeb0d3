// Package view holds the dashboard's interaction state and the pure
// transitions over it. A State is a plain value: every transition returns a
// new State and Derive turns a State into the visible page.
package view

import (
	"github.com/williamhogman/kubedash/dashboard/internal/records"
)

// Page is the visible slice of the workload table for one State
type Page struct {
	Rows      []records.WorkloadRecord `json:"rows"`
	Total     int                      `json:"total"`
	Page      int                      `json:"page"`
	PageCount int                      `json:"pageCount"`
	PageSize  int                      `json:"pageSize"`
	HasPrev   bool                     `json:"hasPrev"`
	HasNext   bool                     `json:"hasNext"`
}

// Option configures a Controller
type Option func(*Controller)

// WithQuantityOrdering sets how the cpu and memory columns compare
func WithQuantityOrdering(o QuantityOrdering) Option {
	return func(c *Controller) {
		c.ordering = o
	}
}

// WithPageSize overrides PageSize
func WithPageSize(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// Controller applies transitions to view states over a record store
type Controller struct {
	store    records.Store
	ordering QuantityOrdering
	pageSize int
}

// NewController creates a controller reading workloads from store
func NewController(store records.Store, opts ...Option) *Controller {
	c := &Controller{
		store:    store,
		ordering: OrderLexical,
		pageSize: PageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ordering returns the configured quantity ordering
func (c *Controller) Ordering() QuantityOrdering {
	return c.ordering
}

// Initial returns the state of a freshly loaded view
func (c *Controller) Initial() State {
	return InitialState()
}

// SetFilter replaces the filter text and returns to the first page
func (c *Controller) SetFilter(s State, text string) State {
	s.Filter = text
	s.Page = 1
	return c.normalize(s)
}

// ApplyPreset behaves as SetFilter with the preset's text
func (c *Controller) ApplyPreset(s State, p Preset) State {
	return c.SetFilter(s, p.Filter)
}

// SetSort selects key ascending, or flips the direction when key is already
// the active sort. Unknown keys leave the state unchanged.
func (c *Controller) SetSort(s State, key SortKey) State {
	if !key.Valid() {
		return c.normalize(s)
	}
	if key != SortNone && key == s.SortKey {
		s.Direction = s.Direction.Flip()
	} else {
		s.SortKey = key
		s.Direction = Ascending
	}
	return c.normalize(s)
}

// SetPage moves to page n, clamped to the available pages
func (c *Controller) SetPage(s State, n int) State {
	s.Page = n
	return c.normalize(s)
}

func (c *Controller) NextPage(s State) State {
	return c.SetPage(s, c.normalize(s).Page+1)
}

func (c *Controller) PrevPage(s State) State {
	return c.SetPage(s, c.normalize(s).Page-1)
}

// ToggleCollapsed flips the server detail block
func (c *Controller) ToggleCollapsed(s State) State {
	s.Collapsed = !s.Collapsed
	return c.normalize(s)
}

// Refresh reloads the static view, discarding the interaction state
func (c *Controller) Refresh() State {
	return c.Initial()
}

// PageCount returns the number of pages for the state's filter
func (c *Controller) PageCount(s State) int {
	return PageCount(len(Filter(c.store.Workloads(), s.Filter)), c.pageSize)
}

// Derive runs filter, stable sort and pagination for s
func (c *Controller) Derive(s State) Page {
	filtered := Filter(c.store.Workloads(), s.Filter)
	sorted := Sort(filtered, s.SortKey, s.Direction, c.ordering)

	count := PageCount(len(sorted), c.pageSize)
	page := ClampPage(s.Page, count)

	return Page{
		Rows:      Paginate(sorted, page, c.pageSize),
		Total:     len(sorted),
		Page:      page,
		PageCount: count,
		PageSize:  c.pageSize,
		HasPrev:   page > 1,
		HasNext:   page < count,
	}
}

// normalize repairs fields a remote caller may have left zero or invalid
func (c *Controller) normalize(s State) State {
	if s.Direction != Descending {
		s.Direction = Ascending
	}
	if !s.SortKey.Valid() {
		s.SortKey = SortNone
		s.Direction = Ascending
	}
	s.Page = ClampPage(s.Page, c.PageCount(s))
	return s
}
