// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tripboard/internal/models"
)

var (
	// ErrDuplicate is returned when an expense ID already exists.
	ErrDuplicate = errors.New("already exists")
)

// LedgerStore is the system of record for the shared trip ledger.
//
// Deletes are idempotent: removing something that is not there succeeds.
// Removing a member never rewrites expenses that reference them.
type LedgerStore interface {
	// ListMembers returns the roster in the order members were added.
	ListMembers(ctx context.Context) ([]string, error)

	// AddMember appends name to the roster. Adding an existing name is a no-op.
	AddMember(ctx context.Context, name string) error

	// DeleteMember removes name from the roster.
	DeleteMember(ctx context.Context, name string) error

	// ListExpenses returns all expenses in the order they were added.
	ListExpenses(ctx context.Context) ([]models.Expense, error)

	// AddExpense persists a new expense. expense.ID must be set.
	AddExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense by ID.
	DeleteExpense(ctx context.Context, id string) error
}

// ChecklistStore persists packing-list progress as one boolean map per key.
type ChecklistStore interface {
	// LoadChecklist returns the saved map for key, or an empty map.
	LoadChecklist(ctx context.Context, key string) (map[string]bool, error)

	// SaveChecklist replaces the saved map for key.
	SaveChecklist(ctx context.Context, key string, checked map[string]bool) error
}

// Store defines the interface for all storage operations.
// This abstraction allows swapping storage backends (SQLite, MongoDB)
// without changing the service layer.
type Store interface {
	LedgerStore
	ChecklistStore

	// Close releases any resources held by the store.
	Close() error
}
