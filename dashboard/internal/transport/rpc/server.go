package rpc

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"
	"go.uber.org/zap"

	"github.com/williamhogman/kubedash/dashboard/internal/export"
	"github.com/williamhogman/kubedash/dashboard/internal/service"
	"github.com/williamhogman/kubedash/dashboard/internal/view"
)

// DashboardServer implements the ConnectRPC DashboardService
type DashboardServer struct {
	dashboard *service.DashboardService
	logger    *zap.Logger
}

// NewDashboardServer creates a new instance of DashboardServer
func NewDashboardServer(dashboard *service.DashboardService, logger *zap.Logger) *DashboardServer {
	return &DashboardServer{
		dashboard: dashboard,
		logger:    logger.Named("dashboard-server"),
	}
}

// Dispatch implements the Dispatch method from the DashboardService
func (s *DashboardServer) Dispatch(
	ctx context.Context,
	req *connect.Request[DispatchRequest],
) (*connect.Response[DispatchResponse], error) {
	state, page, err := s.dashboard.Dispatch(ctx, req.Msg.State, req.Msg.Action)
	if err != nil {
		s.logger.Info("Rejected view action",
			zap.String("action", string(req.Msg.Action.Type)),
			zap.Error(err))
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&DispatchResponse{State: state, Page: page}), nil
}

// Export implements the Export method from the DashboardService
func (s *DashboardServer) Export(
	ctx context.Context,
	req *connect.Request[ExportRequest],
) (*connect.Response[ExportResponse], error) {
	var format export.Format
	if req.Msg.Format != "" {
		f, err := export.ParseFormat(req.Msg.Format)
		if err != nil {
			return nil, toConnectError(err)
		}
		format = f
	}

	file, err := s.dashboard.Render(ctx, format)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&ExportResponse{
		FileName:    file.Name,
		ContentType: file.ContentType,
		Data:        file.Data,
		Records:     file.Records,
	}), nil
}

func toConnectError(err error) error {
	switch {
	case errors.Is(err, view.ErrUnknownAction),
		errors.Is(err, view.ErrUnknownPreset),
		errors.Is(err, view.ErrUnknownSortKey),
		errors.Is(err, export.ErrUnsupportedFormat):
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// NewHandler builds the HTTP handler for the service. It returns the path
// prefix to mount it on.
func NewHandler(server *DashboardServer, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	dispatch := connect.NewUnaryHandler(DispatchProcedure, server.Dispatch, opts...)
	exportHandler := connect.NewUnaryHandler(ExportProcedure, server.Export, opts...)

	return "/" + ServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case DispatchProcedure:
			dispatch.ServeHTTP(w, r)
		case ExportProcedure:
			exportHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
