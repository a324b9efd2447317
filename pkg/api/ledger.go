package api

import "github.com/mmynk/tripboard/internal/models"

type GetLedgerRequest struct{}

type GetLedgerResponse struct {
	Members  []string         `json:"members"`
	Expenses []models.Expense `json:"expenses"`
}

type AddMemberRequest struct {
	Name string `json:"name"`
}

type AddMemberResponse struct {
	Members []string `json:"members"`
}

type DeleteMemberRequest struct {
	Name string `json:"name"`
}

type DeleteMemberResponse struct {
	Members []string `json:"members"`
}

type AddExpenseRequest struct {
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Payer    string  `json:"payer"`
	Category string  `json:"category,omitempty"`

	// SplitWith empty means everyone on the roster at settlement time.
	SplitWith []string `json:"splitWith,omitempty"`
}

type AddExpenseResponse struct {
	Expense models.Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	ID string `json:"id"`
}

type DeleteExpenseResponse struct{}

type GetBalancesRequest struct{}

// BalanceView is a settled balance with its display form.
type BalanceView struct {
	Name string  `json:"name"`
	Paid float64 `json:"paid"`
	Net  float64 `json:"net"`

	// Direction is "receive" or "pay".
	Direction string `json:"direction"`

	// Display is |Net| rounded to whole currency units.
	Display string `json:"display"`
}

type GetBalancesResponse struct {
	// Balances are sorted most-owing first.
	Balances  []BalanceView     `json:"balances"`
	Transfers []models.Transfer `json:"transfers"`
	Total     float64           `json:"total"`
}
