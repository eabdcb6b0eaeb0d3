package records

import (
	"github.com/williamhogman/kubedash/dashboard/internal/types"
)

// Store defines the read-only interface over the fixed dataset.
// Implementations must return copies so callers can never mutate the store.
type Store interface {
	// Workloads returns every workload in canonical order
	Workloads() []WorkloadRecord

	// Workload returns a single workload, or ErrNotFound
	Workload(id types.WorkloadID) (WorkloadRecord, error)

	// Server returns the server summary
	Server() ServerSummary

	// Len returns the number of workloads
	Len() int
}
