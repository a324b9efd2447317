package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmynk/tripboard/internal/models"
	"github.com/mmynk/tripboard/internal/remote"
	"github.com/mmynk/tripboard/internal/storage/sqlite"
)

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient("", nil)
	if _, err := c.Load(context.Background()); !errors.Is(err, remote.ErrNotConfigured) {
		t.Errorf("Load: expected ErrNotConfigured, got %v", err)
	}
	if err := c.AddMember(context.Background(), "A"); !errors.Is(err, remote.ErrNotConfigured) {
		t.Errorf("AddMember: expected ErrNotConfigured, got %v", err)
	}
}

func TestClient_LoadScriptResponse(t *testing.T) {
	// Spreadsheet cells come back loosely typed.
	body := `{
		"status": "success",
		"members": ["Alice", "Bob", " "],
		"expenses": [
			{"id": 1735689600000, "title": "Dinner", "amount": "900", "payer": "Alice", "date": "2025-01-01T00:00:00.000Z", "category": "食物", "splitWith": "Alice, Bob"},
			{"id": "b", "title": "Taxi", "amount": 120.5, "payer": "Bob", "date": "2025-01-01T01:00:00.000Z", "splitWith": []}
		]
	}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		if got := r.URL.Query().Get("action"); got != "getData" {
			t.Errorf("Expected action=getData, got %q", got)
		}
		w.Write([]byte(body))
	}))
	defer srv.Close()

	st, err := NewClient(srv.URL+"/exec", srv.Client()).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if strings.Join(st.Members, ",") != "Alice,Bob" {
		t.Errorf("Members = %v", st.Members)
	}
	if len(st.Expenses) != 2 {
		t.Fatalf("Expected 2 expenses, got %d", len(st.Expenses))
	}
	first := st.Expenses[0]
	if first.ID != "1735689600000" || first.Amount != 900 {
		t.Errorf("Unexpected first expense %+v", first)
	}
	if strings.Join(first.SplitWith, "|") != "Alice|Bob" {
		t.Errorf("SplitWith = %v", first.SplitWith)
	}
	if st.Expenses[1].Amount != 120.5 || len(st.Expenses[1].SplitWith) != 0 {
		t.Errorf("Unexpected second expense %+v", st.Expenses[1])
	}
}

func TestFlexFloat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"number", `1200`, 1200},
		{"numeric string", `"350.5"`, 350.5},
		{"thousands separator", `"1,200"`, 1200},
		{"currency and separator", `"$ 12,345.5"`, 12345.5},
		{"empty", `""`, 0},
		{"null", `null`, 0},
		{"text", `"about 300"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f flexFloat
			if err := json.Unmarshal([]byte(tt.raw), &f); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if float64(f) != tt.want {
				t.Errorf("got %v, want %v", float64(f), tt.want)
			}
		})
	}
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLogic string
		wantNet   bool
	}{
		{name: "script error", status: 200, body: `{"status":"error","message":"Sheet 'Expenses' not found"}`, wantLogic: "Sheet 'Expenses' not found"},
		{name: "http failure", status: 500, body: "oops", wantNet: true},
		{name: "not json", status: 200, body: "<html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, srv.Client()).Load(context.Background())
			if err == nil {
				t.Fatal("Expected error")
			}

			var le *remote.LogicError
			switch {
			case tt.wantLogic != "":
				if !errors.As(err, &le) || le.Message != tt.wantLogic {
					t.Errorf("Expected LogicError %q, got %v", tt.wantLogic, err)
				}
			case tt.wantNet:
				if !remote.IsNetwork(err) {
					t.Errorf("Expected NetworkError, got %v", err)
				}
			default:
				if remote.IsNetwork(err) || remote.IsLogic(err) {
					t.Errorf("Expected decode error, got %v", err)
				}
			}
		})
	}
}

func TestClient_PostFormat(t *testing.T) {
	var got map[string]string
	var contentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		got = nil
		json.Unmarshal(body, &got)
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	ctx := context.Background()

	if err := c.AddMember(ctx, "Alice"); err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	if contentType != "text/plain;charset=utf-8" {
		t.Errorf("Content-Type = %q", contentType)
	}
	if got["action"] != "addMember" || got["name"] != "Alice" {
		t.Errorf("Unexpected body %v", got)
	}

	e := models.Expense{ID: "x1", Title: "Tea", Amount: 60, Payer: "Alice", Date: "2025-01-01T00:00:00.000Z"}
	if err := c.AddExpense(ctx, e); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	if got["action"] != "addExpense" {
		t.Errorf("Unexpected action %q", got["action"])
	}
	var decoded models.Expense
	if err := json.Unmarshal([]byte(got["data"]), &decoded); err != nil {
		t.Fatalf("data is not an encoded expense: %v", err)
	}
	if decoded.ID != "x1" || decoded.Amount != 60 {
		t.Errorf("Unexpected data %+v", decoded)
	}

	if err := c.DeleteExpense(ctx, "x1"); err != nil {
		t.Fatalf("DeleteExpense failed: %v", err)
	}
	if got["action"] != "deleteExpense" || got["id"] != "x1" {
		t.Errorf("Unexpected body %v", got)
	}
}

// The Go handler speaks the same protocol as the script, so a Client can
// drive it end to end.
func TestClientAgainstHandler(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	srv := httptest.NewServer(NewHandler(NewLocal(store)))
	defer srv.Close()

	ctx := context.Background()
	s := NewSession(NewClient(srv.URL, srv.Client()), nil)

	if _, err := s.Ensure(ctx); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	for _, name := range []string{"A", "B", "C"} {
		if err := s.AddMember(ctx, name); err != nil {
			t.Fatalf("AddMember failed: %v", err)
		}
	}
	e, _ := NewExpense("Hotel", 300, "A", "住宿", nil)
	if err := s.AddExpense(ctx, e); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	st, err := s.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if strings.Join(st.Members, ",") != "A,B,C" || len(st.Expenses) != 1 {
		t.Fatalf("Unexpected state %+v", st)
	}
	if st.Expenses[0].ID != e.ID || st.Expenses[0].Category != "住宿" {
		t.Errorf("Unexpected expense %+v", st.Expenses[0])
	}

	want := map[string]float64{"A": 200, "B": -100, "C": -100}
	for _, b := range s.Balances() {
		if b.Net != want[b.Name] {
			t.Errorf("%s net = %v, want %v", b.Name, b.Net, want[b.Name])
		}
	}

	// Duplicate ID is a logic error and triggers a resync.
	err = s.AddExpense(ctx, e)
	if !remote.IsLogic(err) {
		t.Errorf("Expected LogicError for duplicate, got %v", err)
	}
	if st := s.Snapshot(); len(st.Expenses) != 1 {
		t.Errorf("Expected resync to drop the duplicate, got %d expenses", len(st.Expenses))
	}

	if err := s.RemoveExpense(ctx, e.ID); err != nil {
		t.Fatalf("RemoveExpense failed: %v", err)
	}
	if err := s.RemoveMember(ctx, "C"); err != nil {
		t.Fatalf("RemoveMember failed: %v", err)
	}
	st, _ = s.Refresh(ctx)
	if strings.Join(st.Members, ",") != "A,B" || len(st.Expenses) != 0 {
		t.Errorf("Unexpected final state %+v", st)
	}
}

func TestHandler_Errors(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()
	h := NewHandler(NewLocal(store))

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantCode   int
		wantStatus string
	}{
		{name: "getData", method: "GET", target: "/?action=getData", wantCode: 200, wantStatus: "success"},
		{name: "unknown get action", method: "GET", target: "/?action=nope", wantCode: 200, wantStatus: "error"},
		{name: "bad json", method: "POST", target: "/", body: "{", wantCode: 200, wantStatus: "error"},
		{name: "unknown action", method: "POST", target: "/", body: `{"action":"wipe"}`, wantCode: 200, wantStatus: "error"},
		{name: "blank member", method: "POST", target: "/", body: `{"action":"addMember","name":"  "}`, wantCode: 200, wantStatus: "error"},
		{name: "invalid expense", method: "POST", target: "/", body: `{"action":"addExpense","data":"{\"title\":\"x\",\"amount\":0,\"payer\":\"A\"}"}`, wantCode: 200, wantStatus: "error"},
		{name: "expense without id", method: "POST", target: "/", body: `{"action":"addExpense","data":"{\"title\":\"x\",\"amount\":5,\"payer\":\"A\"}"}`, wantCode: 200, wantStatus: "success"},
		{name: "put", method: "PUT", target: "/", wantCode: 405},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("Code = %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantStatus == "" {
				return
			}
			var resp struct {
				Status   string          `json:"status"`
				Message  string          `json:"message"`
				Members  json.RawMessage `json:"members"`
				Expenses json.RawMessage `json:"expenses"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Invalid JSON: %v", err)
			}
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q (%s), want %q", resp.Status, resp.Message, tt.wantStatus)
			}
			if tt.name == "getData" && (string(resp.Members) != "[]" || string(resp.Expenses) != "[]") {
				t.Errorf("Expected empty arrays, got members=%s expenses=%s", resp.Members, resp.Expenses)
			}
		})
	}

	expenses, _ := store.ListExpenses(context.Background())
	if len(expenses) != 1 || expenses[0].ID == "" || expenses[0].Date == "" {
		t.Errorf("Expected generated id and date, got %+v", expenses)
	}
}
