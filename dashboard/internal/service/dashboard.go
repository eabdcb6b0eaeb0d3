package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/williamhogman/kubedash/dashboard/internal/aggregate"
	"github.com/williamhogman/kubedash/dashboard/internal/export"
	"github.com/williamhogman/kubedash/dashboard/internal/metrics"
	"github.com/williamhogman/kubedash/dashboard/internal/records"
	"github.com/williamhogman/kubedash/dashboard/internal/types"
	"github.com/williamhogman/kubedash/dashboard/internal/view"
)

// Summary is the server card and the figures derived from the whole store
type Summary struct {
	Server    records.ServerSummary `json:"server"`
	Counts    aggregate.Counts      `json:"statusCounts"`
	Totals    aggregate.Totals      `json:"totals"`
	Workloads int                   `json:"workloads"`
}

// Tile is one of the status summary tiles. Count is 0 when no workload has the status.
type Tile struct {
	Status types.WorkloadStatus `json:"status"`
	Count  int                  `json:"count"`
}

// DashboardService composes the record store, view controller and exporter
type DashboardService struct {
	store      records.Store
	controller *view.Controller
	writer     *export.Writer
	counts     aggregate.Counts
	totals     aggregate.Totals
	logger     *zap.Logger
	now        func() time.Time
}

// NewDashboardService creates the service. Status counts and resource totals
// are computed once because the store never changes.
func NewDashboardService(
	store records.Store,
	controller *view.Controller,
	writer *export.Writer,
	logger *zap.Logger,
) (*DashboardService, error) {
	workloads := store.Workloads()
	totals, err := aggregate.ResourceTotals(workloads)
	if err != nil {
		return nil, fmt.Errorf("failed to total resources: %w", err)
	}

	return &DashboardService{
		store:      store,
		controller: controller,
		writer:     writer,
		counts:     aggregate.StatusCounts(workloads),
		totals:     totals,
		logger:     logger.Named("dashboard-service"),
		now:        time.Now,
	}, nil
}

// Summary returns the server summary with status counts and resource totals
func (s *DashboardService) Summary() Summary {
	return Summary{
		Server:    s.store.Server(),
		Counts:    s.counts,
		Totals:    s.totals,
		Workloads: s.store.Len(),
	}
}

// Tiles returns the Running, Failed and Disconnected tiles in display order
func (s *DashboardService) Tiles() []Tile {
	statuses := []types.WorkloadStatus{types.StatusRunning, types.StatusFailed, types.StatusDisconnected}
	tiles := make([]Tile, len(statuses))
	for i, status := range statuses {
		tiles[i] = Tile{Status: status, Count: s.counts.Get(status)}
	}
	return tiles
}

// Presets returns the preset filter menu
func (s *DashboardService) Presets() []view.Preset {
	return view.Presets()
}

// Initial returns the state of a freshly loaded view
func (s *DashboardService) Initial() view.State {
	return s.controller.Initial()
}

// Controller exposes the view controller for interactive front ends
func (s *DashboardService) Controller() *view.Controller {
	return s.controller
}

// Dispatch applies an action and derives the resulting page. On error the
// input state is returned with its page.
func (s *DashboardService) Dispatch(ctx context.Context, state view.State, action view.Action) (view.State, view.Page, error) {
	next, err := s.controller.Dispatch(state, action)
	if err != nil {
		s.logger.Debug("Rejected view action",
			zap.String("action", string(action.Type)),
			zap.Error(err))
		return state, s.controller.Derive(state), err
	}

	metrics.ViewTransitionsTotal.WithLabelValues(string(action.Type)).Inc()
	return next, s.controller.Derive(next), nil
}

// Derive returns the visible page for state
func (s *DashboardService) Derive(state view.State) view.Page {
	return s.controller.Derive(state)
}

// Workload looks up a single workload by ID
func (s *DashboardService) Workload(id types.WorkloadID) (records.WorkloadRecord, error) {
	return s.store.Workload(id)
}

// RequestLogs records a log download request. Logs are not fetched.
func (s *DashboardService) RequestLogs(id types.WorkloadID) (records.WorkloadRecord, error) {
	w, err := s.store.Workload(id)
	if err != nil {
		return records.WorkloadRecord{}, err
	}
	s.logger.Info("Log download requested",
		w.ID.ZapField(),
		zap.String("workload", w.Name),
		zap.String("cluster", w.Cluster))
	return w, nil
}

// Snapshot captures the full store for export, independent of any view state
func (s *DashboardService) Snapshot() export.Snapshot {
	return export.NewSnapshot(s.store.Server(), s.counts, s.store.Workloads(), s.now())
}

// DefaultFormat is the configured export format
func (s *DashboardService) DefaultFormat() export.Format {
	return s.writer.DefaultFormat()
}

// Render encodes a fresh snapshot for download. Failures are logged and
// returned; nothing is retried.
func (s *DashboardService) Render(ctx context.Context, format export.Format) (export.File, error) {
	snap := s.Snapshot()
	file, err := s.writer.Render(snap, format)
	s.recordExport(snap, file.Format, format, err)
	if err != nil {
		return export.File{}, err
	}
	return file, nil
}

// SaveExport writes a fresh snapshot into the export directory
func (s *DashboardService) SaveExport(ctx context.Context, format export.Format) (string, error) {
	snap := s.Snapshot()
	path, err := s.writer.Save(ctx, snap, format)
	s.recordExport(snap, format, format, err)
	if err != nil {
		return "", err
	}
	return path, nil
}

func (s *DashboardService) recordExport(snap export.Snapshot, used, requested export.Format, err error) {
	label := string(used)
	if label == "" {
		label = string(requested)
	}
	if label == "" {
		label = string(s.writer.DefaultFormat())
	}

	if err != nil {
		metrics.ExportsTotal.WithLabelValues(exportLabel(label), metrics.ResultError).Inc()
		s.logger.Error("Failed to export snapshot",
			zap.String("snapshotID", snap.ID.String()),
			zap.String("format", label),
			zap.Error(err))
		return
	}
	metrics.ExportsTotal.WithLabelValues(exportLabel(label), metrics.ResultSuccess).Inc()
}

// exportLabel keeps arbitrary user input out of metric labels
func exportLabel(format string) string {
	for _, f := range export.Formats {
		if string(f) == format {
			return format
		}
	}
	return "unknown"
}
