package service

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tripboard/internal/auth"
	"github.com/mmynk/tripboard/internal/checklist"
	"github.com/mmynk/tripboard/internal/ledger"
	"github.com/mmynk/tripboard/internal/middleware"
	"github.com/mmynk/tripboard/internal/sheets"
	"github.com/mmynk/tripboard/internal/storage/sqlite"
	"github.com/mmynk/tripboard/pkg/api/apiconnect"
)

// testOptions configures setupTestServer. The zero value serves the built-in
// itinerary, no candidates sheet, a local SQLite ledger and no passcode.
type testOptions struct {
	scheduleURL   string
	candidatesURL string
	passcodeHash  string

	// ledger replaces the SQLite-backed ledger when set.
	ledger ledger.Remote
}

type testClients struct {
	trip      apiconnect.TripServiceClient
	ledger    apiconnect.LedgerServiceClient
	checklist apiconnect.ChecklistServiceClient
	auth      apiconnect.AuthServiceClient
}

// setupTestServer wires every service the way cmd/server does and returns
// clients pointed at an httptest server.
func setupTestServer(t *testing.T, opts testOptions) testClients {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	backend := opts.ledger
	if backend == nil {
		backend = ledger.NewLocal(store)
	}

	authenticator := auth.NewPasscodeAuthenticator(opts.passcodeHash)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	interceptors := []connect.Interceptor{middleware.OptionalAuth(jwtManager), middleware.LoggingInterceptor()}
	if authenticator.Enabled() {
		interceptors = append(interceptors, middleware.RequireAuth(jwtManager, MutationProcedures...))
	}
	handlerOpts := connect.WithInterceptors(interceptors...)

	fetcher := sheets.NewFetcher(nil, nil)
	tripSvc := NewTripService(sheets.New(fetcher, opts.scheduleURL, opts.candidatesURL), Features{
		LedgerConfigured: true,
		AuthRequired:     authenticator.Enabled(),
	})
	ledgerSvc := NewLedgerService(ledger.NewSession(backend, nil))
	checklistSvc := NewChecklistService(checklist.New(store))
	authSvc := NewAuthService(authenticator, jwtManager, slog.Default())

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewTripServiceHandler(tripSvc, handlerOpts))
	mux.Handle(apiconnect.NewLedgerServiceHandler(ledgerSvc, handlerOpts))
	mux.Handle(apiconnect.NewChecklistServiceHandler(checklistSvc, handlerOpts))
	mux.Handle(apiconnect.NewAuthServiceHandler(authSvc, handlerOpts))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return testClients{
		trip:      apiconnect.NewTripServiceClient(http.DefaultClient, server.URL),
		ledger:    apiconnect.NewLedgerServiceClient(http.DefaultClient, server.URL),
		checklist: apiconnect.NewChecklistServiceClient(http.DefaultClient, server.URL),
		auth:      apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
	}
}

// serveText starts a server answering every request with body and status.
func serveText(t *testing.T, status int, body string) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server.URL
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("code = %v, want %v (err: %v)", got, want, err)
	}
}
