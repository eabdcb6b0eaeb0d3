package records

import (
	"fmt"

	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/williamhogman/kubedash/dashboard/internal/types"
)

// memoryStore provides an immutable in-memory implementation of Store
type memoryStore struct {
	workloads []WorkloadRecord
	byID      map[types.WorkloadID]int // workload ID -> index in workloads
	server    ServerSummary
}

// NewMemoryStore validates the dataset and freezes a private copy of it
func NewMemoryStore(workloads []WorkloadRecord, server ServerSummary) (Store, error) {
	m := &memoryStore{
		workloads: make([]WorkloadRecord, 0, len(workloads)),
		byID:      make(map[types.WorkloadID]int, len(workloads)),
		server:    server.clone(),
	}

	for _, w := range workloads {
		if _, exists := m.byID[w.ID]; exists {
			return nil, fmt.Errorf("workload %s: %w", w.ID, ErrDuplicateID)
		}
		if err := validateQuantity(w.CPU); err != nil {
			return nil, fmt.Errorf("workload %s cpu: %w", w.ID, err)
		}
		if err := validateQuantity(w.Memory); err != nil {
			return nil, fmt.Errorf("workload %s memory: %w", w.ID, err)
		}
		m.byID[w.ID] = len(m.workloads)
		m.workloads = append(m.workloads, w)
	}

	return m, nil
}

func validateQuantity(value string) error {
	if _, err := resource.ParseQuantity(value); err != nil {
		return fmt.Errorf("%q: %w", value, ErrInvalidQuantity)
	}
	return nil
}

// Workloads returns a copy of all workloads in canonical order
func (m *memoryStore) Workloads() []WorkloadRecord {
	return append([]WorkloadRecord(nil), m.workloads...)
}

// Workload looks up a workload by ID
func (m *memoryStore) Workload(id types.WorkloadID) (WorkloadRecord, error) {
	idx, exists := m.byID[id]
	if !exists {
		return WorkloadRecord{}, ErrNotFound
	}
	return m.workloads[idx], nil
}

// Server returns a copy of the server summary
func (m *memoryStore) Server() ServerSummary {
	return m.server.clone()
}

// Len returns the number of workloads
func (m *memoryStore) Len() int {
	return len(m.workloads)
}
