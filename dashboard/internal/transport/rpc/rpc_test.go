package rpc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"

	"github.com/williamhogman/kubedash/dashboard/internal/export"
	"github.com/williamhogman/kubedash/dashboard/internal/records"
	"github.com/williamhogman/kubedash/dashboard/internal/service"
	"github.com/williamhogman/kubedash/dashboard/internal/view"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	logger := zaptest.NewLogger(t)

	store, err := records.NewMemoryStore(records.SampleWorkloads(), records.SampleServer())
	require.NoError(t, err)
	svc, err := service.NewDashboardService(store, view.NewController(store),
		export.NewWriter(t.TempDir(), "", export.FormatXLSX, false, logger), logger)
	require.NoError(t, err)

	mux := http.NewServeMux()
	path, handler := NewHandler(NewDashboardServer(svc, logger))
	mux.Handle(path, handler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return NewClient(srv.Client(), srv.URL+"/")
}

func TestDispatch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	resp, err := client.Dispatch(ctx, view.State{}, view.Action{Type: view.ActionRefresh})
	require.NoError(t, err)
	assert.Equal(t, view.InitialState(), resp.State)
	assert.Equal(t, 12, resp.Page.Total)
	assert.Len(t, resp.Page.Rows, 10)

	resp, err = client.Dispatch(ctx, resp.State, view.Action{Type: view.ActionNextPage})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.State.Page)
	require.Len(t, resp.Page.Rows, 2)
	assert.Equal(t, "api-gateway", resp.Page.Rows[0].Name)

	resp, err = client.Dispatch(ctx, resp.State, view.Action{Type: view.ActionApplyPreset, Preset: "Failed"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.State.Page)
	assert.Equal(t, 2, resp.Page.Total)
}

func TestDispatch_InvalidArgument(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Dispatch(context.Background(), view.InitialState(), view.Action{Type: view.ActionSetSort, Sort: "colour"})
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.Dispatch(context.Background(), view.InitialState(), view.Action{Type: "explode"})
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestExport(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.Export(context.Background(), "yaml")
	require.NoError(t, err)
	assert.Equal(t, "kubernetes_manager_data.yaml", resp.FileName)
	assert.Equal(t, "application/yaml", resp.ContentType)
	assert.Equal(t, 12, resp.Records)

	var doc export.Document
	require.NoError(t, yaml.Unmarshal(resp.Data, &doc))
	assert.Len(t, doc.WorkerDetails, 12)

	resp, err = client.Export(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "kubernetes_manager_data.xlsx", resp.FileName)

	_, err = client.Export(context.Background(), "csv")
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestHandler_UnknownProcedure(t *testing.T) {
	logger := zaptest.NewLogger(t)
	path, handler := NewHandler(NewDashboardServer(nil, logger))
	assert.Equal(t, "/kubedash.v1.DashboardService/", path)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/kubedash.v1.DashboardService/Delete", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
