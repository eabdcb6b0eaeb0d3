package records

import "errors"

// Common errors for record store operations
var (
	// ErrNotFound is returned when a workload ID is not in the store
	ErrNotFound = errors.New("workload not found in store")

	// ErrDuplicateID is returned when two workloads share an ID
	ErrDuplicateID = errors.New("duplicate workload ID")

	// ErrInvalidQuantity is returned when a cpu or memory value is not a resource quantity
	ErrInvalidQuantity = errors.New("invalid resource quantity")
)
