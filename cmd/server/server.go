package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/tripboard/internal/auth"
	"github.com/mmynk/tripboard/internal/checklist"
	"github.com/mmynk/tripboard/internal/config"
	"github.com/mmynk/tripboard/internal/ledger"
	"github.com/mmynk/tripboard/internal/metrics"
	"github.com/mmynk/tripboard/internal/middleware"
	"github.com/mmynk/tripboard/internal/service"
	"github.com/mmynk/tripboard/internal/sheets"
	"github.com/mmynk/tripboard/internal/storage"
	"github.com/mmynk/tripboard/pkg/api/apiconnect"
)

// apiPrefix is the path prefix shared by every Connect procedure.
const apiPrefix = "/tripboard.v1."

// newHandler assembles the HTTP surface: Connect services, the ledger wire
// endpoint, /metrics and static files.
func newHandler(cfg *config.Config, store storage.Store, reg *prometheus.Registry) http.Handler {
	m := metrics.New(reg)
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	// The ledger lives in the store unless a remote endpoint is configured.
	var backend ledger.Remote
	local := ledger.NewLocal(store)
	if cfg.LedgerURL != "" {
		backend = ledger.NewClient(cfg.LedgerURL, httpClient)
		slog.Info("Using remote ledger", "url", cfg.LedgerURL)
	} else {
		backend = local
	}

	authenticator := auth.NewPasscodeAuthenticator(cfg.PasscodeHash)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	interceptors := []connect.Interceptor{
		middleware.OptionalAuth(jwtManager),
		middleware.LoggingInterceptor(),
	}
	if authenticator.Enabled() {
		interceptors = append(interceptors, middleware.RequireAuth(jwtManager, service.MutationProcedures...))
		slog.Info("Passcode login enabled")
	}
	opts := connect.WithInterceptors(interceptors...)

	fetcher := sheets.NewFetcher(httpClient, m)
	tripSvc := service.NewTripService(sheets.New(fetcher, cfg.ScheduleURL, cfg.CandidatesURL), service.Features{
		LedgerConfigured: true,
		AuthRequired:     authenticator.Enabled(),
	})
	ledgerSvc := service.NewLedgerService(ledger.NewSession(backend, m))
	checklistSvc := service.NewChecklistService(checklist.New(store))
	authSvc := service.NewAuthService(authenticator, jwtManager, slog.Default())

	mux := http.NewServeMux()

	// Register Connect services
	mux.Handle(apiconnect.NewTripServiceHandler(tripSvc, opts))
	mux.Handle(apiconnect.NewLedgerServiceHandler(ledgerSvc, opts))
	mux.Handle(apiconnect.NewChecklistServiceHandler(checklistSvc, opts))
	mux.Handle(apiconnect.NewAuthServiceHandler(authSvc, opts))

	// Spreadsheet-compatible ledger endpoint for clients of the script API.
	if cfg.LedgerURL == "" {
		var ledgerHandler http.Handler = ledger.NewHandler(local)
		if authenticator.Enabled() {
			ledgerHandler = middleware.RequireBearer(jwtManager, ledgerHandler)
		}
		mux.Handle("/ledger", ledgerHandler)
	}

	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("/", staticHandler(cfg.StaticPath))

	return middleware.Logging(middleware.CORS(mux))
}

// staticHandler serves files under dir and falls back to index.html.
func staticHandler(dir string) http.HandlerFunc {
	staticDir, err := filepath.Abs(dir)
	if err != nil {
		staticDir = dir
	}
	slog.Info("Serving static files", "path", staticDir)

	return func(w http.ResponseWriter, r *http.Request) {
		// Unknown Connect procedures are not pages.
		if strings.HasPrefix(r.URL.Path, apiPrefix) {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean("/"+urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	}
}
