package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mmynk/tripboard/internal/models"
	"github.com/mmynk/tripboard/internal/storage"
)

// AddExpense persists a new expense with its split list.
func (s *SQLiteStore) AddExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		return fmt.Errorf("expense id required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var category interface{} = nil
	if expense.Category != "" {
		category = expense.Category
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, title, amount, payer, date, category)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.Title, expense.Amount, expense.Payer, expense.Date, category,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("expense %s: %w", expense.ID, storage.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i, member := range expense.SplitWith {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, position, member) VALUES (?, ?, ?)",
			expense.ID, i, member,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListExpenses retrieves all expenses in insertion order.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, amount, payer, date, category FROM expenses ORDER BY seq`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	index := make(map[string]int)
	for rows.Next() {
		var e models.Expense
		var category sql.NullString
		if err := rows.Scan(&e.ID, &e.Title, &e.Amount, &e.Payer, &e.Date, &category); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if category.Valid {
			e.Category = category.String
		}
		index[e.ID] = len(expenses)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	rows.Close()

	splitRows, err := s.db.QueryContext(ctx,
		"SELECT expense_id, member FROM expense_splits ORDER BY expense_id, position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense splits: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var id, member string
		if err := splitRows.Scan(&id, &member); err != nil {
			return nil, fmt.Errorf("failed to scan expense split: %w", err)
		}
		if i, ok := index[id]; ok {
			expenses[i].SplitWith = append(expenses[i].SplitWith, member)
		}
	}
	if err := splitRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense splits: %w", err)
	}

	return expenses, nil
}

// DeleteExpense removes an expense by ID. Its splits cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
