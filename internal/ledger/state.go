// Package ledger keeps the shared trip ledger: the member roster and the
// expense list, how they are mutated, and how they are mirrored to a remote
// system of record.
package ledger

import (
	"slices"
	"strings"

	"github.com/mmynk/tripboard/internal/calculator"
	"github.com/mmynk/tripboard/internal/models"
)

// State is a snapshot of the ledger. Transitions return a new State and never
// modify the receiver's slices.
type State struct {
	Members  []string         `json:"members"`
	Expenses []models.Expense `json:"expenses"`
}

// Clone returns a deep-enough copy for independent mutation.
func (s State) Clone() State {
	out := State{
		Members:  slices.Clone(s.Members),
		Expenses: make([]models.Expense, len(s.Expenses)),
	}
	for i, e := range s.Expenses {
		e.SplitWith = slices.Clone(e.SplitWith)
		out.Expenses[i] = e
	}
	return out
}

// HasMember reports whether name is on the roster.
func (s State) HasMember(name string) bool {
	return slices.Contains(s.Members, name)
}

// AddMember appends the trimmed name. It reports false, and returns s
// unchanged, when the name is blank or already present.
func (s State) AddMember(name string) (State, bool) {
	name = strings.TrimSpace(name)
	if name == "" || s.HasMember(name) {
		return s, false
	}
	next := s.Clone()
	next.Members = append(next.Members, name)
	return next, true
}

// RemoveMember drops name from the roster. Expenses that mention the member
// are kept as they are.
func (s State) RemoveMember(name string) State {
	next := s.Clone()
	next.Members = slices.DeleteFunc(next.Members, func(m string) bool { return m == name })
	return next
}

// AddExpense appends e.
func (s State) AddExpense(e models.Expense) State {
	next := s.Clone()
	e.SplitWith = slices.Clone(e.SplitWith)
	next.Expenses = append(next.Expenses, e)
	return next
}

// RemoveExpense drops every expense with the given ID.
func (s State) RemoveExpense(id string) State {
	next := s.Clone()
	next.Expenses = slices.DeleteFunc(next.Expenses, func(e models.Expense) bool { return e.ID == id })
	return next
}

// Balances settles the snapshot.
func (s State) Balances() []models.Balance {
	return calculator.Settle(s.Expenses, s.Members)
}

func trimmed(name string) string {
	return strings.TrimSpace(name)
}
