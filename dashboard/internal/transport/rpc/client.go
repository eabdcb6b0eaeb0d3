package rpc

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/williamhogman/kubedash/dashboard/internal/view"
)

// Client is a typed client for the DashboardService
type Client struct {
	dispatch *connect.Client[DispatchRequest, DispatchResponse]
	export   *connect.Client[ExportRequest, ExportResponse]
}

// NewClient creates a client for the service at baseURL, e.g. http://localhost:8080
func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)

	return &Client{
		dispatch: connect.NewClient[DispatchRequest, DispatchResponse](httpClient, baseURL+DispatchProcedure, opts...),
		export:   connect.NewClient[ExportRequest, ExportResponse](httpClient, baseURL+ExportProcedure, opts...),
	}
}

// Dispatch applies action to state on the server
func (c *Client) Dispatch(ctx context.Context, state view.State, action view.Action) (*DispatchResponse, error) {
	resp, err := c.dispatch.CallUnary(ctx, connect.NewRequest(&DispatchRequest{State: state, Action: action}))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

// Export fetches an encoded snapshot. An empty format uses the server default.
func (c *Client) Export(ctx context.Context, format string) (*ExportResponse, error) {
	resp, err := c.export.CallUnary(ctx, connect.NewRequest(&ExportRequest{Format: format}))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}
