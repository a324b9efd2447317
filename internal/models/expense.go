package models

// Expense is one entry in the shared trip ledger.
// The JSON shape matches the spreadsheet backend's row format.
type Expense struct {
	// ID is unique and time-derived (UUIDv7), assigned when the expense is created.
	ID string `json:"id"`

	// Title is the free-text description (e.g., "Dinner at the night market").
	Title string `json:"title"`

	// Amount is a non-negative currency value in whole or fractional units.
	Amount float64 `json:"amount"`

	// Payer is the member name who paid.
	// It may name someone who has since been removed from the roster.
	Payer string `json:"payer"`

	// Date is the ISO-8601 creation timestamp.
	Date string `json:"date"`

	// Category is an optional label such as 食物, 購物, 交通 or 住宿.
	Category string `json:"category,omitempty"`

	// SplitWith is the cost-sharing subset of member names.
	// Empty means "everyone currently on the roster", evaluated at settlement
	// time rather than at creation time.
	SplitWith []string `json:"splitWith,omitempty"`
}

// Balance is one member's derived ledger position.
type Balance struct {
	// Name is the member name.
	Name string `json:"name"`

	// Paid is the sum of amounts this member paid.
	Paid float64 `json:"paid"`

	// Net is Paid minus this member's shares.
	// Positive = should receive money, negative = owes money.
	Net float64 `json:"net"`
}

// Transfer is a suggested payment that clears part of the outstanding balances.
type Transfer struct {
	From   string  `json:"from"` // Member who owes
	To     string  `json:"to"`   // Member who is owed
	Amount float64 `json:"amount"`
}
