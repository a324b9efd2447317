package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripboard/pkg/api"
)

// TripServiceName is the fully-qualified name of the TripService service.
const TripServiceName = "tripboard.v1.TripService"

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
const (
	// TripServiceGetTripProcedure is the fully-qualified name of the TripService's GetTrip RPC.
	TripServiceGetTripProcedure = "/tripboard.v1.TripService/GetTrip"
	// TripServiceGetScheduleProcedure is the fully-qualified name of the TripService's GetSchedule RPC.
	TripServiceGetScheduleProcedure = "/tripboard.v1.TripService/GetSchedule"
	// TripServiceListCandidatesProcedure is the fully-qualified name of the TripService's ListCandidates RPC.
	TripServiceListCandidatesProcedure = "/tripboard.v1.TripService/ListCandidates"
)

// TripServiceClient is a client for the tripboard.v1.TripService service.
type TripServiceClient interface {
	GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error)
	GetSchedule(context.Context, *connect.Request[api.GetScheduleRequest]) (*connect.Response[api.GetScheduleResponse], error)
	ListCandidates(context.Context, *connect.Request[api.ListCandidatesRequest]) (*connect.Response[api.ListCandidatesResponse], error)
}

// NewTripServiceClient constructs a client for the tripboard.v1.TripService service. Messages are
// exchanged as JSON.
//
// The URL supplied here should be the base URL for the Connect server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewTripServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TripServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{api.WithJSON()}, opts...)
	return &tripServiceClient{
		getTrip: connect.NewClient[api.GetTripRequest, api.GetTripResponse](
			httpClient,
			baseURL+TripServiceGetTripProcedure,
			opts...,
		),
		getSchedule: connect.NewClient[api.GetScheduleRequest, api.GetScheduleResponse](
			httpClient,
			baseURL+TripServiceGetScheduleProcedure,
			opts...,
		),
		listCandidates: connect.NewClient[api.ListCandidatesRequest, api.ListCandidatesResponse](
			httpClient,
			baseURL+TripServiceListCandidatesProcedure,
			opts...,
		),
	}
}

// tripServiceClient implements TripServiceClient.
type tripServiceClient struct {
	getTrip        *connect.Client[api.GetTripRequest, api.GetTripResponse]
	getSchedule    *connect.Client[api.GetScheduleRequest, api.GetScheduleResponse]
	listCandidates *connect.Client[api.ListCandidatesRequest, api.ListCandidatesResponse]
}

// GetTrip calls tripboard.v1.TripService.GetTrip.
func (c *tripServiceClient) GetTrip(ctx context.Context, req *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	return c.getTrip.CallUnary(ctx, req)
}

// GetSchedule calls tripboard.v1.TripService.GetSchedule.
func (c *tripServiceClient) GetSchedule(ctx context.Context, req *connect.Request[api.GetScheduleRequest]) (*connect.Response[api.GetScheduleResponse], error) {
	return c.getSchedule.CallUnary(ctx, req)
}

// ListCandidates calls tripboard.v1.TripService.ListCandidates.
func (c *tripServiceClient) ListCandidates(ctx context.Context, req *connect.Request[api.ListCandidatesRequest]) (*connect.Response[api.ListCandidatesResponse], error) {
	return c.listCandidates.CallUnary(ctx, req)
}

// TripServiceHandler is an implementation of the tripboard.v1.TripService service. It serves the itinerary, trip information and candidates lists.
type TripServiceHandler interface {
	GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error)
	GetSchedule(context.Context, *connect.Request[api.GetScheduleRequest]) (*connect.Response[api.GetScheduleResponse], error)
	ListCandidates(context.Context, *connect.Request[api.ListCandidatesRequest]) (*connect.Response[api.ListCandidatesResponse], error)
}

// NewTripServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
func NewTripServiceHandler(svc TripServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{api.WithJSON()}, opts...)
	tripServiceGetTripHandler := connect.NewUnaryHandler(
		TripServiceGetTripProcedure,
		svc.GetTrip,
		opts...,
	)
	tripServiceGetScheduleHandler := connect.NewUnaryHandler(
		TripServiceGetScheduleProcedure,
		svc.GetSchedule,
		opts...,
	)
	tripServiceListCandidatesHandler := connect.NewUnaryHandler(
		TripServiceListCandidatesProcedure,
		svc.ListCandidates,
		opts...,
	)
	return "/tripboard.v1.TripService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TripServiceGetTripProcedure:
			tripServiceGetTripHandler.ServeHTTP(w, r)
		case TripServiceGetScheduleProcedure:
			tripServiceGetScheduleHandler.ServeHTTP(w, r)
		case TripServiceListCandidatesProcedure:
			tripServiceListCandidatesHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedTripServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedTripServiceHandler struct{}

func (UnimplementedTripServiceHandler) GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripboard.v1.TripService.GetTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) GetSchedule(context.Context, *connect.Request[api.GetScheduleRequest]) (*connect.Response[api.GetScheduleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripboard.v1.TripService.GetSchedule is not implemented"))
}

func (UnimplementedTripServiceHandler) ListCandidates(context.Context, *connect.Request[api.ListCandidatesRequest]) (*connect.Response[api.ListCandidatesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripboard.v1.TripService.ListCandidates is not implemented"))
}
