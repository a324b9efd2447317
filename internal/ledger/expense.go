package ledger

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripboard/internal/models"
)

// DateLayout is the ISO-8601 form used for expense dates (millisecond UTC).
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

// ErrInvalidExpense is returned for expenses that cannot be recorded.
var ErrInvalidExpense = errors.New("invalid expense")

// Categories offered when recording an expense. Any other value is allowed
// and displayed as "other".
var Categories = []string{"食物", "購物", "交通", "住宿"}

// NewExpense builds an expense with a time-derived ID and the current date.
func NewExpense(title string, amount float64, payer, category string, splitWith []string) (models.Expense, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return models.Expense{}, fmt.Errorf("failed to generate expense id: %w", err)
	}

	return models.Expense{
		ID:        id.String(),
		Title:     strings.TrimSpace(title),
		Amount:    amount,
		Payer:     strings.TrimSpace(payer),
		Date:      time.Now().UTC().Format(DateLayout),
		Category:  category,
		SplitWith: splitWith,
	}, nil
}

// Validate checks that e can be recorded.
func Validate(e models.Expense) error {
	switch {
	case strings.TrimSpace(e.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidExpense)
	case math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0):
		return fmt.Errorf("%w: amount must be a number", ErrInvalidExpense)
	case e.Amount < 0:
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidExpense)
	case strings.TrimSpace(e.Payer) == "":
		return fmt.Errorf("%w: payer is required", ErrInvalidExpense)
	}
	return nil
}
