package ledger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mmynk/tripboard/internal/models"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// request is a POST body: {action, ...payload}.
type request struct {
	Action string `json:"action"`
	Name   string `json:"name,omitempty"`
	ID     string `json:"id,omitempty"`
	// Data is a JSON-encoded expense (addExpense only).
	Data string `json:"data,omitempty"`
}

// response is what the endpoint answers.
type response struct {
	Status   string        `json:"status"`
	Message  string        `json:"message,omitempty"`
	Expenses []wireExpense `json:"expenses,omitempty"`
	Members  []flexString  `json:"members,omitempty"`
}

// dataResponse is the getData answer written by Handler.
type dataResponse struct {
	Status   string           `json:"status"`
	Expenses []models.Expense `json:"expenses"`
	Members  []string         `json:"members"`
}

// wireExpense tolerates the loose typing of spreadsheet cells: numeric IDs,
// amounts stored as text, split lists stored as comma-joined strings.
type wireExpense struct {
	ID        flexString `json:"id"`
	Title     flexString `json:"title"`
	Amount    flexFloat  `json:"amount"`
	Payer     flexString `json:"payer"`
	Date      flexString `json:"date"`
	Category  flexString `json:"category"`
	SplitWith flexList   `json:"splitWith"`
}

func (w wireExpense) expense() models.Expense {
	return models.Expense{
		ID:        string(w.ID),
		Title:     string(w.Title),
		Amount:    float64(w.Amount),
		Payer:     string(w.Payer),
		Date:      string(w.Date),
		Category:  string(w.Category),
		SplitWith: []string(w.SplitWith),
	}
}

func (r response) state() State {
	st := State{
		Members:  make([]string, 0, len(r.Members)),
		Expenses: make([]models.Expense, 0, len(r.Expenses)),
	}
	for _, m := range r.Members {
		if name := strings.TrimSpace(string(m)); name != "" {
			st.Members = append(st.Members, name)
		}
	}
	for _, e := range r.Expenses {
		st.Expenses = append(st.Expenses, e.expense())
	}
	return st
}

// flexString accepts a JSON string, number or bool.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
	default:
		*f = flexString(data)
	}
	return nil
}

// flexFloat accepts a JSON number or a numeric string such as "1,200" or
// "$350". Anything else is 0.
type flexFloat float64

var amountCleaner = strings.NewReplacer(",", "", "$", "", " ", "")

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	var s flexString
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	raw := strings.TrimSpace(string(s))
	if raw == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(amountCleaner.Replace(raw), 64)
	if err != nil {
		slog.Warn("Unparsable amount, counting as 0", "value", raw)
		v = 0
	}
	*f = flexFloat(v)
	return nil
}

// flexList accepts a JSON array or a comma-separated string.
type flexList []string

func (f *flexList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []flexString
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		out := make([]string, 0, len(items))
		for _, it := range items {
			if s := strings.TrimSpace(string(it)); s != "" {
				out = append(out, s)
			}
		}
		*f = out
		return nil
	}

	var s flexString
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	var out []string
	for _, part := range strings.Split(string(s), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*f = out
	return nil
}
