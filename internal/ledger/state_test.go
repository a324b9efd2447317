package ledger

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/mmynk/tripboard/internal/models"
)

func TestState_AddMember(t *testing.T) {
	base := State{Members: []string{"Alice"}}

	tests := []struct {
		name        string
		input       string
		wantChanged bool
		wantMembers []string
	}{
		{name: "new member", input: "Bob", wantChanged: true, wantMembers: []string{"Alice", "Bob"}},
		{name: "trimmed", input: "  Bob  ", wantChanged: true, wantMembers: []string{"Alice", "Bob"}},
		{name: "duplicate", input: "Alice", wantMembers: []string{"Alice"}},
		{name: "duplicate after trim", input: " Alice ", wantMembers: []string{"Alice"}},
		{name: "blank", input: "   ", wantMembers: []string{"Alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := base.AddMember(tt.input)
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if strings.Join(got.Members, ",") != strings.Join(tt.wantMembers, ",") {
				t.Errorf("Members = %v, want %v", got.Members, tt.wantMembers)
			}
			if len(base.Members) != 1 {
				t.Errorf("receiver modified: %v", base.Members)
			}
		})
	}
}

func TestState_RemoveMemberKeepsExpenses(t *testing.T) {
	st := State{
		Members:  []string{"A", "B", "C"},
		Expenses: []models.Expense{{ID: "1", Amount: 300, Payer: "C"}},
	}

	next := st.RemoveMember("C")
	if strings.Join(next.Members, ",") != "A,B" {
		t.Errorf("Members = %v", next.Members)
	}
	if len(next.Expenses) != 1 || next.Expenses[0].Payer != "C" {
		t.Errorf("Expenses changed: %+v", next.Expenses)
	}
	if len(st.Members) != 3 {
		t.Errorf("receiver modified: %v", st.Members)
	}

	// A removed payer is no longer credited; the remaining members split 300.
	balances := next.Balances()
	for _, b := range balances {
		if b.Net != -150 {
			t.Errorf("%s net = %v, want -150", b.Name, b.Net)
		}
	}
}

func TestState_Expenses(t *testing.T) {
	st := State{Members: []string{"A"}}
	st = st.AddExpense(models.Expense{ID: "1", Amount: 10, Payer: "A", SplitWith: []string{"A"}})
	st = st.AddExpense(models.Expense{ID: "2", Amount: 20, Payer: "A"})

	clone := st.Clone()
	clone.Expenses[0].SplitWith[0] = "Z"
	if st.Expenses[0].SplitWith[0] != "A" {
		t.Error("Clone shares SplitWith backing array")
	}

	st = st.RemoveExpense("1")
	if len(st.Expenses) != 1 || st.Expenses[0].ID != "2" {
		t.Errorf("Expenses = %+v", st.Expenses)
	}
	st = st.RemoveExpense("missing")
	if len(st.Expenses) != 1 {
		t.Errorf("Removing a missing ID changed state: %+v", st.Expenses)
	}
}

func TestNewExpense(t *testing.T) {
	e, err := NewExpense(" Dinner ", 900, " Alice ", "食物", nil)
	if err != nil {
		t.Fatalf("NewExpense failed: %v", err)
	}
	if e.ID == "" {
		t.Error("Expected ID to be generated")
	}
	if e.Title != "Dinner" || e.Payer != "Alice" {
		t.Errorf("Expected trimmed title and payer, got %q %q", e.Title, e.Payer)
	}
	if _, err := time.Parse(time.RFC3339, e.Date); err != nil {
		t.Errorf("Date %q is not RFC 3339: %v", e.Date, err)
	}

	other, _ := NewExpense("x", 1, "A", "", nil)
	if other.ID == e.ID {
		t.Error("Expected unique IDs")
	}
	if other.ID < e.ID {
		t.Errorf("Expected time-ordered IDs, got %s before %s", e.ID, other.ID)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		expense models.Expense
		wantErr bool
	}{
		{name: "valid", expense: models.Expense{Title: "Taxi", Amount: 120, Payer: "A"}},
		{name: "missing title", expense: models.Expense{Amount: 120, Payer: "A"}, wantErr: true},
		{name: "zero amount", expense: models.Expense{Title: "Free shuttle", Payer: "A"}},
		{name: "negative amount", expense: models.Expense{Title: "Taxi", Amount: -1, Payer: "A"}, wantErr: true},
		{name: "NaN amount", expense: models.Expense{Title: "Taxi", Amount: math.NaN(), Payer: "A"}, wantErr: true},
		{name: "infinite amount", expense: models.Expense{Title: "Taxi", Amount: math.Inf(1), Payer: "A"}, wantErr: true},
		{name: "missing payer", expense: models.Expense{Title: "Taxi", Amount: 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.expense)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidExpense) {
					t.Errorf("Expected ErrInvalidExpense, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
