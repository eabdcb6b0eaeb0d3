// Package aggregate derives summary figures from the full, unfiltered
// record store.
package aggregate

import (
	"encoding/json"

	"github.com/williamhogman/kubedash/dashboard/internal/records"
	"github.com/williamhogman/kubedash/dashboard/internal/types"
)

// StatusCount is the number of workloads reporting one status
type StatusCount struct {
	Status types.WorkloadStatus `json:"status" yaml:"status"`
	Count  int                  `json:"count" yaml:"count"`
}

// Counts maps status to workload count. Entries keep the order in which each
// status first appears in the input.
type Counts struct {
	entries []StatusCount
	index   map[types.WorkloadStatus]int
}

// StatusCounts counts workloads per status. Unrecognised statuses are counted
// under their own key.
func StatusCounts(workloads []records.WorkloadRecord) Counts {
	c := Counts{index: make(map[types.WorkloadStatus]int)}
	for _, w := range workloads {
		idx, seen := c.index[w.Status]
		if !seen {
			idx = len(c.entries)
			c.index[w.Status] = idx
			c.entries = append(c.entries, StatusCount{Status: w.Status})
		}
		c.entries[idx].Count++
	}
	return c
}

// Get returns the count for a status, 0 if no workload has it
func (c Counts) Get(status types.WorkloadStatus) int {
	idx, ok := c.index[status]
	if !ok {
		return 0
	}
	return c.entries[idx].Count
}

// Entries returns a copy of the counts in first-seen order
func (c Counts) Entries() []StatusCount {
	return append([]StatusCount(nil), c.entries...)
}

// Len returns the number of distinct statuses
func (c Counts) Len() int {
	return len(c.entries)
}

// Total returns the number of workloads counted
func (c Counts) Total() int {
	total := 0
	for _, e := range c.entries {
		total += e.Count
	}
	return total
}

// MarshalJSON renders the counts as a status -> count object
func (c Counts) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, len(c.entries))
	for _, e := range c.entries {
		m[e.Status.String()] = e.Count
	}
	return json.Marshal(m)
}
