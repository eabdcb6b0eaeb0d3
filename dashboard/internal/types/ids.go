package types

import (
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// WorkloadPrefix is accepted (and stripped) when parsing workload IDs
const WorkloadPrefix = "workload-"

// Common errors for ID validation
var (
	ErrEmptyID   = errors.New("ID cannot be empty")
	ErrInvalidID = errors.New("ID must be a positive integer")
)

// WorkloadID is a typed wrapper for workload record identifiers
type WorkloadID int

// ParseWorkloadID parses a workload ID, removing the prefix if present
func ParseWorkloadID(id string) (WorkloadID, error) {
	cleanID := strings.TrimPrefix(strings.TrimSpace(id), WorkloadPrefix)
	if cleanID == "" {
		return 0, ErrEmptyID
	}

	n, err := strconv.Atoi(cleanID)
	if err != nil || n <= 0 {
		return 0, ErrInvalidID
	}
	return WorkloadID(n), nil
}

// IsValid returns true if the workload ID is positive
func (w WorkloadID) IsValid() bool {
	return w > 0
}

// String returns the raw numeric ID
func (w WorkloadID) String() string {
	return strconv.Itoa(int(w))
}

// WithPrefix returns the workload ID with the 'workload-' prefix
func (w WorkloadID) WithPrefix() string {
	if !w.IsValid() {
		return ""
	}
	return WorkloadPrefix + w.String()
}

func (w WorkloadID) ZapField() zap.Field {
	if !w.IsValid() {
		return zap.Skip()
	}
	return zap.Int("workloadID", int(w))
}
