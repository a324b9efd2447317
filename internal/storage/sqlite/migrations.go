package sqlite

import "database/sql"

// schema sets up the database. It runs on startup to ensure tables exist.
// Expense split members keep their position so SplitWith round-trips in order.
const schema = `
CREATE TABLE IF NOT EXISTS members (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS expenses (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    amount REAL NOT NULL,
    payer TEXT NOT NULL,
    date TEXT NOT NULL,
    category TEXT
);

CREATE TABLE IF NOT EXISTS expense_splits (
    expense_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    member TEXT NOT NULL,
    PRIMARY KEY (expense_id, position),
    FOREIGN KEY (expense_id) REFERENCES expenses(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS checklist_items (
    checklist TEXT NOT NULL,
    item_id TEXT NOT NULL,
    checked INTEGER NOT NULL,
    PRIMARY KEY (checklist, item_id)
);

CREATE INDEX IF NOT EXISTS idx_expense_splits_expense_id ON expense_splits(expense_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
