package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripboard/pkg/api"
)

// ChecklistServiceName is the fully-qualified name of the ChecklistService service.
const ChecklistServiceName = "tripboard.v1.ChecklistService"

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
const (
	// ChecklistServiceGetChecklistProcedure is the fully-qualified name of the ChecklistService's GetChecklist RPC.
	ChecklistServiceGetChecklistProcedure = "/tripboard.v1.ChecklistService/GetChecklist"
	// ChecklistServiceToggleItemProcedure is the fully-qualified name of the ChecklistService's ToggleItem RPC.
	ChecklistServiceToggleItemProcedure = "/tripboard.v1.ChecklistService/ToggleItem"
)

// ChecklistServiceClient is a client for the tripboard.v1.ChecklistService service.
type ChecklistServiceClient interface {
	GetChecklist(context.Context, *connect.Request[api.GetChecklistRequest]) (*connect.Response[api.GetChecklistResponse], error)
	ToggleItem(context.Context, *connect.Request[api.ToggleItemRequest]) (*connect.Response[api.ToggleItemResponse], error)
}

// NewChecklistServiceClient constructs a client for the tripboard.v1.ChecklistService service. Messages are
// exchanged as JSON.
//
// The URL supplied here should be the base URL for the Connect server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewChecklistServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ChecklistServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{api.WithJSON()}, opts...)
	return &checklistServiceClient{
		getChecklist: connect.NewClient[api.GetChecklistRequest, api.GetChecklistResponse](
			httpClient,
			baseURL+ChecklistServiceGetChecklistProcedure,
			opts...,
		),
		toggleItem: connect.NewClient[api.ToggleItemRequest, api.ToggleItemResponse](
			httpClient,
			baseURL+ChecklistServiceToggleItemProcedure,
			opts...,
		),
	}
}

// checklistServiceClient implements ChecklistServiceClient.
type checklistServiceClient struct {
	getChecklist *connect.Client[api.GetChecklistRequest, api.GetChecklistResponse]
	toggleItem   *connect.Client[api.ToggleItemRequest, api.ToggleItemResponse]
}

// GetChecklist calls tripboard.v1.ChecklistService.GetChecklist.
func (c *checklistServiceClient) GetChecklist(ctx context.Context, req *connect.Request[api.GetChecklistRequest]) (*connect.Response[api.GetChecklistResponse], error) {
	return c.getChecklist.CallUnary(ctx, req)
}

// ToggleItem calls tripboard.v1.ChecklistService.ToggleItem.
func (c *checklistServiceClient) ToggleItem(ctx context.Context, req *connect.Request[api.ToggleItemRequest]) (*connect.Response[api.ToggleItemResponse], error) {
	return c.toggleItem.CallUnary(ctx, req)
}

// ChecklistServiceHandler is an implementation of the tripboard.v1.ChecklistService service. It persists packing checklist progress.
type ChecklistServiceHandler interface {
	GetChecklist(context.Context, *connect.Request[api.GetChecklistRequest]) (*connect.Response[api.GetChecklistResponse], error)
	ToggleItem(context.Context, *connect.Request[api.ToggleItemRequest]) (*connect.Response[api.ToggleItemResponse], error)
}

// NewChecklistServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
func NewChecklistServiceHandler(svc ChecklistServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{api.WithJSON()}, opts...)
	checklistServiceGetChecklistHandler := connect.NewUnaryHandler(
		ChecklistServiceGetChecklistProcedure,
		svc.GetChecklist,
		opts...,
	)
	checklistServiceToggleItemHandler := connect.NewUnaryHandler(
		ChecklistServiceToggleItemProcedure,
		svc.ToggleItem,
		opts...,
	)
	return "/tripboard.v1.ChecklistService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ChecklistServiceGetChecklistProcedure:
			checklistServiceGetChecklistHandler.ServeHTTP(w, r)
		case ChecklistServiceToggleItemProcedure:
			checklistServiceToggleItemHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedChecklistServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedChecklistServiceHandler struct{}

func (UnimplementedChecklistServiceHandler) GetChecklist(context.Context, *connect.Request[api.GetChecklistRequest]) (*connect.Response[api.GetChecklistResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripboard.v1.ChecklistService.GetChecklist is not implemented"))
}

func (UnimplementedChecklistServiceHandler) ToggleItem(context.Context, *connect.Request[api.ToggleItemRequest]) (*connect.Response[api.ToggleItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripboard.v1.ChecklistService.ToggleItem is not implemented"))
}
