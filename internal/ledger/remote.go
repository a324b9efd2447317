package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmynk/tripboard/internal/models"
	"github.com/mmynk/tripboard/internal/storage"
)

// Remote is the authoritative copy of the ledger.
type Remote interface {
	Load(ctx context.Context) (State, error)
	AddMember(ctx context.Context, name string) error
	DeleteMember(ctx context.Context, name string) error
	AddExpense(ctx context.Context, e models.Expense) error
	DeleteExpense(ctx context.Context, id string) error
}

// Local is a Remote backed by the server's own storage.
type Local struct {
	store storage.LedgerStore
}

// NewLocal creates a Remote over store.
func NewLocal(store storage.LedgerStore) *Local {
	return &Local{store: store}
}

// Load reads members and expenses from storage.
func (l *Local) Load(ctx context.Context) (State, error) {
	members, err := l.store.ListMembers(ctx)
	if err != nil {
		return State{}, fmt.Errorf("failed to load members: %w", err)
	}
	expenses, err := l.store.ListExpenses(ctx)
	if err != nil {
		return State{}, fmt.Errorf("failed to load expenses: %w", err)
	}
	return State{Members: members, Expenses: expenses}, nil
}

// AddMember stores the trimmed name. Blank names are ignored.
func (l *Local) AddMember(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return l.store.AddMember(ctx, name)
}

func (l *Local) DeleteMember(ctx context.Context, name string) error {
	return l.store.DeleteMember(ctx, name)
}

func (l *Local) AddExpense(ctx context.Context, e models.Expense) error {
	return l.store.AddExpense(ctx, &e)
}

func (l *Local) DeleteExpense(ctx context.Context, id string) error {
	return l.store.DeleteExpense(ctx, id)
}
