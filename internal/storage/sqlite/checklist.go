package sqlite

import (
	"context"
	"fmt"
)

// LoadChecklist returns the saved item states for one checklist key.
func (s *SQLiteStore) LoadChecklist(ctx context.Context, key string) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT item_id, checked FROM checklist_items WHERE checklist = ?",
		key,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load checklist: %w", err)
	}
	defer rows.Close()

	checked := make(map[string]bool)
	for rows.Next() {
		var id string
		var v bool
		if err := rows.Scan(&id, &v); err != nil {
			return nil, fmt.Errorf("failed to scan checklist item: %w", err)
		}
		checked[id] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate checklist items: %w", err)
	}

	return checked, nil
}

// SaveChecklist replaces the saved item states for one checklist key.
func (s *SQLiteStore) SaveChecklist(ctx context.Context, key string, checked map[string]bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM checklist_items WHERE checklist = ?", key); err != nil {
		return fmt.Errorf("failed to clear checklist: %w", err)
	}

	for id, v := range checked {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO checklist_items (checklist, item_id, checked) VALUES (?, ?, ?)",
			key, id, v,
		)
		if err != nil {
			return fmt.Errorf("failed to insert checklist item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
