package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmynk/tripboard/internal/models"
)

// maxRequestBody caps POST bodies.
const maxRequestBody = 1 << 20

// Handler serves the ledger wire protocol on top of a Remote, so this server
// can stand in for the spreadsheet script.
//
// Logic failures are answered with HTTP 200 and {status:"error", message},
// which is what clients of the script expect.
type Handler struct {
	backend Remote
}

// NewHandler creates a Handler.
func NewHandler(backend Remote) *Handler {
	return &Handler{backend: backend}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.serveGet(w, r)
	case http.MethodPost:
		h.servePost(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) serveGet(w http.ResponseWriter, r *http.Request) {
	action := r.URL.Query().Get("action")
	if action != ActionGetData {
		writeError(w, fmt.Errorf("unknown action %q", action))
		return
	}

	st, err := h.backend.Load(r.Context())
	if err != nil {
		slog.Error("Failed to load ledger", "error", err)
		writeError(w, err)
		return
	}
	if st.Members == nil {
		st.Members = []string{}
	}
	if st.Expenses == nil {
		st.Expenses = []models.Expense{}
	}

	writeJSON(w, dataResponse{Status: statusSuccess, Expenses: st.Expenses, Members: st.Members})
}

func (h *Handler) servePost(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		writeError(w, fmt.Errorf("failed to read body: %w", err))
		return
	}

	var req request
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, fmt.Errorf("invalid request body: %w", err))
		return
	}

	slog.Info("Ledger request received", "action", req.Action)

	if err := h.dispatch(r.Context(), req); err != nil {
		slog.Error("Ledger request failed", "action", req.Action, "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, response{Status: statusSuccess})
}

func (h *Handler) dispatch(ctx context.Context, req request) error {
	switch req.Action {
	case ActionAddMember:
		name := strings.TrimSpace(req.Name)
		if name == "" {
			return errors.New("name is required")
		}
		return h.backend.AddMember(ctx, name)

	case ActionDeleteMember:
		if req.Name == "" {
			return errors.New("name is required")
		}
		return h.backend.DeleteMember(ctx, req.Name)

	case ActionAddExpense:
		e, err := decodeExpense(req.Data)
		if err != nil {
			return err
		}
		return h.backend.AddExpense(ctx, e)

	case ActionDeleteExpense:
		if req.ID == "" {
			return errors.New("id is required")
		}
		return h.backend.DeleteExpense(ctx, req.ID)

	default:
		return fmt.Errorf("unknown action %q", req.Action)
	}
}

// decodeExpense parses the data payload, filling in a missing ID or date.
func decodeExpense(data string) (e models.Expense, err error) {
	if strings.TrimSpace(data) == "" {
		return e, errors.New("data is required")
	}

	var w wireExpense
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return e, fmt.Errorf("invalid expense data: %w", err)
	}
	e = w.expense()

	if e.ID == "" {
		fresh, err := NewExpense(e.Title, e.Amount, e.Payer, e.Category, e.SplitWith)
		if err != nil {
			return e, err
		}
		e.ID = fresh.ID
	}
	if e.Date == "" {
		e.Date = time.Now().UTC().Format(DateLayout)
	}

	if err := Validate(e); err != nil {
		return e, err
	}
	return e, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to write ledger response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, response{Status: statusError, Message: err.Error()})
}
