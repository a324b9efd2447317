package sqlite

import (
	"context"
	"fmt"
)

// ListMembers returns the roster in insertion order.
func (s *SQLiteStore) ListMembers(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM members ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// AddMember appends a member. Existing names are left where they are.
func (s *SQLiteStore) AddMember(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, "INSERT OR IGNORE INTO members (name) VALUES (?)", name)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

// DeleteMember removes a member from the roster. Expenses are untouched.
func (s *SQLiteStore) DeleteMember(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM members WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}
