package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/williamhogman/kubedash/dashboard/internal/export"
	"github.com/williamhogman/kubedash/dashboard/internal/records"
	"github.com/williamhogman/kubedash/dashboard/internal/service"
	"github.com/williamhogman/kubedash/dashboard/internal/types"
	"github.com/williamhogman/kubedash/dashboard/internal/view"
)

type summaryResponse struct {
	service.Summary
	Tiles []service.Tile `json:"tiles"`
}

type workloadsResponse struct {
	State view.State `json:"state"`
	Page  view.Page  `json:"page"`
}

// healthHandler returns a 200 OK for health checks
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// readyHandler returns a 200 OK for readiness checks
func (s *Server) readyHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Ready"))
}

func (s *Server) summaryHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, summaryResponse{
		Summary: s.dashboard.Summary(),
		Tiles:   s.dashboard.Tiles(),
	})
}

func (s *Server) presetsHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.dashboard.Presets())
}

// workloadsHandler derives one table page from query parameters
func (s *Server) workloadsHandler(w http.ResponseWriter, r *http.Request) {
	state, err := s.stateFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, workloadsResponse{
		State: state,
		Page:  s.dashboard.Derive(state),
	})
}

func (s *Server) stateFromQuery(r *http.Request) (view.State, error) {
	q := r.URL.Query()
	query := view.Query{
		Filter: q.Get("filter"),
		Preset: q.Get("preset"),
		Sort:   q.Get("sort"),
	}

	switch view.Direction(q.Get("direction")) {
	case "", view.Ascending:
	case view.Descending:
		query.Descending = true
	default:
		return view.State{}, fmt.Errorf("unknown sort direction %q", q.Get("direction"))
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return view.State{}, fmt.Errorf("invalid page %q", raw)
		}
		query.Page = page
	}

	return s.dashboard.Controller().FromQuery(query)
}

func (s *Server) workloadHandler(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseWorkloadID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	workload, err := s.dashboard.Workload(id)
	if err != nil {
		s.respondLookupError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, workload)
}

// logsHandler accepts a log download request. Logs are not fetched; the
// request is only recorded.
func (s *Server) logsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseWorkloadID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	workload, err := s.dashboard.RequestLogs(id)
	if err != nil {
		s.respondLookupError(w, err)
		return
	}
	respondJSON(w, http.StatusAccepted, map[string]string{
		"status":   "requested",
		"workload": workload.Name,
	})
}

func (s *Server) respondLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, records.ErrNotFound) {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}

// exportHandler streams a snapshot of the full store as an attachment
func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	var format export.Format
	if raw := r.URL.Query().Get("format"); raw != "" {
		f, err := export.ParseFormat(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		format = f
	}

	file, err := s.dashboard.Render(r.Context(), format)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to export snapshot")
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Data); err != nil {
		s.logger.Warn("Failed to write export response", zap.Error(err))
	}
}
