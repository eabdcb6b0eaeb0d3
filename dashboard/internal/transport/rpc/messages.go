package rpc

import (
	"github.com/williamhogman/kubedash/dashboard/internal/view"
)

const (
	// ServiceName is the fully-qualified name of the dashboard service
	ServiceName = "kubedash.v1.DashboardService"

	// DispatchProcedure applies one view action to a caller-held state
	DispatchProcedure = "/" + ServiceName + "/Dispatch"
	// ExportProcedure returns an encoded snapshot of the full store
	ExportProcedure = "/" + ServiceName + "/Export"
)

type DispatchRequest struct {
	State  view.State  `json:"state"`
	Action view.Action `json:"action"`
}

type DispatchResponse struct {
	State view.State `json:"state"`
	Page  view.Page  `json:"page"`
}

type ExportRequest struct {
	// Format is xlsx or yaml; empty selects the server default
	Format string `json:"format"`
}

type ExportResponse struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
	Records     int    `json:"records"`
}
