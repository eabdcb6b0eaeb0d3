// Package export serialises a dashboard snapshot to a downloadable file.
//
// A snapshot always holds the full record store: the server summary, the
// per-status worker numbers and every workload in canonical order. The view
// state (filter, sort, page) never affects what is exported.
package export

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/williamhogman/kubedash/dashboard/internal/aggregate"
	"github.com/williamhogman/kubedash/dashboard/internal/records"
)

// Sheet and section names, in file order
const (
	SheetServerDetails = "Server Details"
	SheetWorkerNumbers = "Worker Numbers"
	SheetWorkerDetails = "Worker Details"
)

// Snapshot is the full dashboard data at one point in time
type Snapshot struct {
	ID          uuid.UUID
	GeneratedAt time.Time
	Server      records.ServerSummary
	Counts      aggregate.Counts
	Workloads   []records.WorkloadRecord
}

// NewSnapshot captures the data to export
func NewSnapshot(server records.ServerSummary, counts aggregate.Counts, workloads []records.WorkloadRecord, now time.Time) Snapshot {
	return Snapshot{
		ID:          uuid.New(),
		GeneratedAt: now.UTC(),
		Server:      server,
		Counts:      counts,
		Workloads:   append([]records.WorkloadRecord(nil), workloads...),
	}
}

// Len is the number of workload records in the snapshot
func (s Snapshot) Len() int {
	return len(s.Workloads)
}

// JoinServices flattens services to "name: status" pairs joined by ", "
func JoinServices(services []records.ServiceStatus) string {
	parts := make([]string, len(services))
	for i, svc := range services {
		parts[i] = svc.Name + ": " + svc.Status.String()
	}
	return strings.Join(parts, ", ")
}

var (
	serverHeader   = []any{"name", "status", "uptime", "version", "nodes", "services"}
	workloadHeader = []any{"id", "name", "cluster", "status", "cpu", "memory", "createdAt"}
)

func serverRow(s records.ServerSummary) []any {
	return []any{s.Name, s.Status, s.Uptime, s.Version, s.Nodes, JoinServices(s.Services)}
}

func workloadRow(w records.WorkloadRecord) []any {
	return []any{int(w.ID), w.Name, w.Cluster, w.Status.String(), w.CPU, w.Memory, w.CreatedAt}
}

// countRows returns the header of status names and the row of counts
func countRows(c aggregate.Counts) (header, values []any) {
	for _, e := range c.Entries() {
		header = append(header, e.Status.String())
		values = append(values, e.Count)
	}
	return header, values
}
