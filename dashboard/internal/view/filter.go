package view

import (
	"strings"

	"github.com/williamhogman/kubedash/dashboard/internal/records"
)

// Matches reports whether the filter text is a case-insensitive substring of
// the workload's name, cluster or status. The empty filter matches everything.
func Matches(w records.WorkloadRecord, filter string) bool {
	needle := strings.ToLower(filter)
	return strings.Contains(strings.ToLower(w.Name), needle) ||
		strings.Contains(strings.ToLower(w.Cluster), needle) ||
		strings.Contains(strings.ToLower(w.Status.String()), needle)
}

// Filter keeps the workloads matching filter, preserving input order
func Filter(workloads []records.WorkloadRecord, filter string) []records.WorkloadRecord {
	out := make([]records.WorkloadRecord, 0, len(workloads))
	for _, w := range workloads {
		if Matches(w, filter) {
			out = append(out, w)
		}
	}
	return out
}
