package view

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/williamhogman/kubedash/dashboard/internal/records"
)

// QuantityOrdering selects how cpu and memory columns compare
type QuantityOrdering string

const (
	// OrderLexical compares the raw strings, so "100m" sorts before "50m"
	OrderLexical QuantityOrdering = "lexical"
	// OrderNumeric parses the values as resource quantities
	OrderNumeric QuantityOrdering = "numeric"
)

// ParseQuantityOrdering resolves an ordering name; empty means lexical
func ParseQuantityOrdering(s string) (QuantityOrdering, error) {
	switch QuantityOrdering(strings.ToLower(strings.TrimSpace(s))) {
	case "", OrderLexical:
		return OrderLexical, nil
	case OrderNumeric:
		return OrderNumeric, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownOrdering)
}

type comparator func(a, b records.WorkloadRecord) int

var comparators = map[SortKey]comparator{
	SortByID:      func(a, b records.WorkloadRecord) int { return cmp.Compare(a.ID, b.ID) },
	SortByName:    func(a, b records.WorkloadRecord) int { return strings.Compare(a.Name, b.Name) },
	SortByCluster: func(a, b records.WorkloadRecord) int { return strings.Compare(a.Cluster, b.Cluster) },
	SortByStatus:  func(a, b records.WorkloadRecord) int { return strings.Compare(a.Status.String(), b.Status.String()) },
	SortByCPU:     func(a, b records.WorkloadRecord) int { return strings.Compare(a.CPU, b.CPU) },
	SortByMemory:  func(a, b records.WorkloadRecord) int { return strings.Compare(a.Memory, b.Memory) },
	SortByCreated: func(a, b records.WorkloadRecord) int { return strings.Compare(a.CreatedAt, b.CreatedAt) },
}

var numericComparators = map[SortKey]comparator{
	SortByCPU:    func(a, b records.WorkloadRecord) int { return compareQuantity(a.CPU, b.CPU) },
	SortByMemory: func(a, b records.WorkloadRecord) int { return compareQuantity(a.Memory, b.Memory) },
}

// compareQuantity orders parsable quantities by value and falls back to the
// raw strings when either side does not parse.
func compareQuantity(a, b string) int {
	qa, errA := resource.ParseQuantity(a)
	qb, errB := resource.ParseQuantity(b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return qa.Cmp(qb)
}

func comparatorFor(key SortKey, ordering QuantityOrdering) (comparator, bool) {
	if ordering == OrderNumeric {
		if c, ok := numericComparators[key]; ok {
			return c, true
		}
	}
	c, ok := comparators[key]
	return c, ok
}

// Sort returns a stably sorted copy of workloads. Equal keys keep their
// relative input order in both directions. SortNone returns the input order.
func Sort(workloads []records.WorkloadRecord, key SortKey, dir Direction, ordering QuantityOrdering) []records.WorkloadRecord {
	out := append([]records.WorkloadRecord(nil), workloads...)
	compare, ok := comparatorFor(key, ordering)
	if !ok {
		return out
	}
	slices.SortStableFunc(out, func(a, b records.WorkloadRecord) int {
		if dir == Descending {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return out
}
