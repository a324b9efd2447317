package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripboard/pkg/api"
)

// LedgerServiceName is the fully-qualified name of the LedgerService service.
const LedgerServiceName = "tripboard.v1.LedgerService"

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
const (
	// LedgerServiceGetLedgerProcedure is the fully-qualified name of the LedgerService's GetLedger RPC.
	LedgerServiceGetLedgerProcedure = "/tripboard.v1.LedgerService/GetLedger"
	// LedgerServiceAddMemberProcedure is the fully-qualified name of the LedgerService's AddMember RPC.
	LedgerServiceAddMemberProcedure = "/tripboard.v1.LedgerService/AddMember"
	// LedgerServiceDeleteMemberProcedure is the fully-qualified name of the LedgerService's DeleteMember RPC.
	LedgerServiceDeleteMemberProcedure = "/tripboard.v1.LedgerService/DeleteMember"
	// LedgerServiceAddExpenseProcedure is the fully-qualified name of the LedgerService's AddExpense RPC.
	LedgerServiceAddExpenseProcedure = "/tripboard.v1.LedgerService/AddExpense"
	// LedgerServiceDeleteExpenseProcedure is the fully-qualified name of the LedgerService's DeleteExpense RPC.
	LedgerServiceDeleteExpenseProcedure = "/tripboard.v1.LedgerService/DeleteExpense"
	// LedgerServiceGetBalancesProcedure is the fully-qualified name of the LedgerService's GetBalances RPC.
	LedgerServiceGetBalancesProcedure = "/tripboard.v1.LedgerService/GetBalances"
)

// LedgerServiceClient is a client for the tripboard.v1.LedgerService service.
type LedgerServiceClient interface {
	GetLedger(context.Context, *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error)
	AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error)
	DeleteMember(context.Context, *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error)
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error)
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
}

// NewLedgerServiceClient constructs a client for the tripboard.v1.LedgerService service. Messages are
// exchanged as JSON.
//
// The URL supplied here should be the base URL for the Connect server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{api.WithJSON()}, opts...)
	return &ledgerServiceClient{
		getLedger: connect.NewClient[api.GetLedgerRequest, api.GetLedgerResponse](
			httpClient,
			baseURL+LedgerServiceGetLedgerProcedure,
			opts...,
		),
		addMember: connect.NewClient[api.AddMemberRequest, api.AddMemberResponse](
			httpClient,
			baseURL+LedgerServiceAddMemberProcedure,
			opts...,
		),
		deleteMember: connect.NewClient[api.DeleteMemberRequest, api.DeleteMemberResponse](
			httpClient,
			baseURL+LedgerServiceDeleteMemberProcedure,
			opts...,
		),
		addExpense: connect.NewClient[api.AddExpenseRequest, api.AddExpenseResponse](
			httpClient,
			baseURL+LedgerServiceAddExpenseProcedure,
			opts...,
		),
		deleteExpense: connect.NewClient[api.DeleteExpenseRequest, api.DeleteExpenseResponse](
			httpClient,
			baseURL+LedgerServiceDeleteExpenseProcedure,
			opts...,
		),
		getBalances: connect.NewClient[api.GetBalancesRequest, api.GetBalancesResponse](
			httpClient,
			baseURL+LedgerServiceGetBalancesProcedure,
			opts...,
		),
	}
}

// ledgerServiceClient implements LedgerServiceClient.
type ledgerServiceClient struct {
	getLedger     *connect.Client[api.GetLedgerRequest, api.GetLedgerResponse]
	addMember     *connect.Client[api.AddMemberRequest, api.AddMemberResponse]
	deleteMember  *connect.Client[api.DeleteMemberRequest, api.DeleteMemberResponse]
	addExpense    *connect.Client[api.AddExpenseRequest, api.AddExpenseResponse]
	deleteExpense *connect.Client[api.DeleteExpenseRequest, api.DeleteExpenseResponse]
	getBalances   *connect.Client[api.GetBalancesRequest, api.GetBalancesResponse]
}

// GetLedger calls tripboard.v1.LedgerService.GetLedger.
func (c *ledgerServiceClient) GetLedger(ctx context.Context, req *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error) {
	return c.getLedger.CallUnary(ctx, req)
}

// AddMember calls tripboard.v1.LedgerService.AddMember.
func (c *ledgerServiceClient) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	return c.addMember.CallUnary(ctx, req)
}

// DeleteMember calls tripboard.v1.LedgerService.DeleteMember.
func (c *ledgerServiceClient) DeleteMember(ctx context.Context, req *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error) {
	return c.deleteMember.CallUnary(ctx, req)
}

// AddExpense calls tripboard.v1.LedgerService.AddExpense.
func (c *ledgerServiceClient) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

// DeleteExpense calls tripboard.v1.LedgerService.DeleteExpense.
func (c *ledgerServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

// GetBalances calls tripboard.v1.LedgerService.GetBalances.
func (c *ledgerServiceClient) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

// LedgerServiceHandler is an implementation of the tripboard.v1.LedgerService service. It manages the shared expense ledger.
type LedgerServiceHandler interface {
	GetLedger(context.Context, *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error)
	AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error)
	DeleteMember(context.Context, *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error)
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error)
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{api.WithJSON()}, opts...)
	ledgerServiceGetLedgerHandler := connect.NewUnaryHandler(
		LedgerServiceGetLedgerProcedure,
		svc.GetLedger,
		opts...,
	)
	ledgerServiceAddMemberHandler := connect.NewUnaryHandler(
		LedgerServiceAddMemberProcedure,
		svc.AddMember,
		opts...,
	)
	ledgerServiceDeleteMemberHandler := connect.NewUnaryHandler(
		LedgerServiceDeleteMemberProcedure,
		svc.DeleteMember,
		opts...,
	)
	ledgerServiceAddExpenseHandler := connect.NewUnaryHandler(
		LedgerServiceAddExpenseProcedure,
		svc.AddExpense,
		opts...,
	)
	ledgerServiceDeleteExpenseHandler := connect.NewUnaryHandler(
		LedgerServiceDeleteExpenseProcedure,
		svc.DeleteExpense,
		opts...,
	)
	ledgerServiceGetBalancesHandler := connect.NewUnaryHandler(
		LedgerServiceGetBalancesProcedure,
		svc.GetBalances,
		opts...,
	)
	return "/tripboard.v1.LedgerService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case LedgerServiceGetLedgerProcedure:
			ledgerServiceGetLedgerHandler.ServeHTTP(w, r)
		case LedgerServiceAddMemberProcedure:
			ledgerServiceAddMemberHandler.ServeHTTP(w, r)
		case LedgerServiceDeleteMemberProcedure:
			ledgerServiceDeleteMemberHandler.ServeHTTP(w, r)
		case LedgerServiceAddExpenseProcedure:
			ledgerServiceAddExpenseHandler.ServeHTTP(w, r)
		case LedgerServiceDeleteExpenseProcedure:
			ledgerServiceDeleteExpenseHandler.ServeHTTP(w, r)
		case LedgerServiceGetBalancesProcedure:
			ledgerServiceGetBalancesHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedLedgerServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLedgerServiceHandler struct{}

func (UnimplementedLedgerServiceHandler) GetLedger(context.Context, *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripboard.v1.LedgerService.GetLedger is not implemented"))
}

func (UnimplementedLedgerServiceHandler) AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripboard.v1.LedgerService.AddMember is not implemented"))
}

func (UnimplementedLedgerServiceHandler) DeleteMember(context.Context, *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripboard.v1.LedgerService.DeleteMember is not implemented"))
}

func (UnimplementedLedgerServiceHandler) AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripboard.v1.LedgerService.AddExpense is not implemented"))
}

func (UnimplementedLedgerServiceHandler) DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripboard.v1.LedgerService.DeleteExpense is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripboard.v1.LedgerService.GetBalances is not implemented"))
}
