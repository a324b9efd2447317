package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripboard/internal/calculator"
	"github.com/mmynk/tripboard/internal/ledger"
	"github.com/mmynk/tripboard/internal/middleware"
	"github.com/mmynk/tripboard/pkg/api"
	"github.com/mmynk/tripboard/pkg/api/apiconnect"
)

// LedgerService implements the Connect LedgerService
type LedgerService struct {
	apiconnect.UnimplementedLedgerServiceHandler
	session *ledger.Session
}

// NewLedgerService creates a new LedgerService over a ledger session.
func NewLedgerService(session *ledger.Session) *LedgerService {
	return &LedgerService{session: session}
}

// GetLedger reloads the ledger and returns members and expenses.
func (s *LedgerService) GetLedger(ctx context.Context, req *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error) {
	slog.Info("GetLedger request received")

	st, err := s.session.Refresh(ctx)
	if err != nil {
		slog.Error("GetLedger failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("GetLedger successful", "members", len(st.Members), "expenses", len(st.Expenses))
	return connect.NewResponse(&api.GetLedgerResponse{
		Members:  nonNil(st.Members),
		Expenses: nonNil(st.Expenses),
	}), nil
}

// AddMember adds a member to the roster. Blank and duplicate names are
// accepted and change nothing.
func (s *LedgerService) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	slog.Info("AddMember request received", "name", req.Msg.Name, "by", middleware.GetMember(ctx))

	if _, err := s.session.Ensure(ctx); err != nil {
		return nil, connectError(err)
	}
	if err := s.session.AddMember(ctx, req.Msg.Name); err != nil {
		slog.Error("AddMember failed", "name", req.Msg.Name, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.AddMemberResponse{
		Members: nonNil(s.session.Snapshot().Members),
	}), nil
}

// DeleteMember removes a member from the roster. Their expenses are kept.
func (s *LedgerService) DeleteMember(ctx context.Context, req *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error) {
	slog.Info("DeleteMember request received", "name", req.Msg.Name, "by", middleware.GetMember(ctx))

	if strings.TrimSpace(req.Msg.Name) == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("name is required"))
	}
	if _, err := s.session.Ensure(ctx); err != nil {
		return nil, connectError(err)
	}
	if err := s.session.RemoveMember(ctx, req.Msg.Name); err != nil {
		slog.Error("DeleteMember failed", "name", req.Msg.Name, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.DeleteMemberResponse{
		Members: nonNil(s.session.Snapshot().Members),
	}), nil
}

// AddExpense records a new expense with a generated ID and date.
func (s *LedgerService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	slog.Info("AddExpense request received",
		"title", req.Msg.Title,
		"amount", req.Msg.Amount,
		"payer", req.Msg.Payer,
		"split_count", len(req.Msg.SplitWith),
	)

	e, err := ledger.NewExpense(req.Msg.Title, req.Msg.Amount, req.Msg.Payer, req.Msg.Category, req.Msg.SplitWith)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if err := ledger.Validate(e); err != nil {
		return nil, connectError(err)
	}

	if _, err := s.session.Ensure(ctx); err != nil {
		return nil, connectError(err)
	}
	if err := s.session.AddExpense(ctx, e); err != nil {
		slog.Error("AddExpense failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Expense added", "expense_id", e.ID)
	return connect.NewResponse(&api.AddExpenseResponse{Expense: e}), nil
}

// DeleteExpense removes an expense by ID.
func (s *LedgerService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "expense_id", req.Msg.ID, "by", middleware.GetMember(ctx))

	if req.Msg.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("id is required"))
	}
	if _, err := s.session.Ensure(ctx); err != nil {
		return nil, connectError(err)
	}
	if err := s.session.RemoveExpense(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// GetBalances settles the current ledger.
func (s *LedgerService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	slog.Info("GetBalances request received")

	st, err := s.session.Refresh(ctx)
	if err != nil {
		slog.Error("GetBalances failed", "error", err)
		return nil, connectError(err)
	}

	balances := st.Balances()
	sorted := calculator.SortForDisplay(balances)
	views := make([]api.BalanceView, len(sorted))
	for i, b := range sorted {
		views[i] = api.BalanceView{
			Name:      b.Name,
			Paid:      b.Paid,
			Net:       b.Net,
			Direction: string(calculator.DirectionOf(b.Net)),
			Display:   calculator.FormatAmount(b.Net),
		}
	}

	return connect.NewResponse(&api.GetBalancesResponse{
		Balances:  views,
		Transfers: nonNil(calculator.SuggestTransfers(balances)),
		Total:     calculator.Total(st.Expenses),
	}), nil
}

// nonNil keeps empty lists as [] on the wire.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
