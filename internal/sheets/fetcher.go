// Package sheets fetches published spreadsheet sources and turns them into
// itinerary records.
package sheets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/mmynk/tripboard/internal/ingest"
	"github.com/mmynk/tripboard/internal/metrics"
	"github.com/mmynk/tripboard/internal/remote"
	"github.com/mmynk/tripboard/internal/sheetcsv"
)

// Source names.
const (
	SourceSchedule   = "schedule"
	SourceCandidates = "candidates"
)

// Source is a published sheet. An empty URL means not configured.
type Source struct {
	Name string
	URL  string
}

// Fetcher downloads sources and returns their cell matrix.
type Fetcher struct {
	httpClient *http.Client
	metrics    *metrics.Metrics
}

// NewFetcher creates a Fetcher. m may be nil.
func NewFetcher(httpClient *http.Client, m *metrics.Metrics) *Fetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Fetcher{httpClient: httpClient, metrics: m}
}

// Fetch downloads src and parses it as CSV, or as XLSX when the response is
// a workbook.
//
// Errors: remote.ErrNotConfigured, *remote.NetworkError, and
// remote.ErrEmptyResult when fewer than two rows came back. Malformed rows
// are never an error.
func (f *Fetcher) Fetch(ctx context.Context, src Source) ([][]string, error) {
	if src.URL == "" {
		f.metrics.Fetch(src.Name, metrics.OutcomeNotConfigured, 0)
		return nil, remote.ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		f.metrics.Fetch(src.Name, metrics.OutcomeError, 0)
		return nil, fmt.Errorf("invalid %s url: %w", src.Name, err)
	}

	resp, err := remote.Do(f.httpClient, req)
	if err != nil {
		f.metrics.Fetch(src.Name, metrics.OutcomeNetworkError, 0)
		slog.Warn("Sheet fetch failed", "source", src.Name, "error", err)
		return nil, err
	}

	var rows [][]string
	if isXLSX(src.URL, resp.Header.Get("Content-Type")) {
		rows, err = ingest.ReadXLSX(bytes.NewReader(resp.Body), "")
		if err != nil {
			f.metrics.Fetch(src.Name, metrics.OutcomeError, 0)
			return nil, fmt.Errorf("failed to read %s workbook: %w", src.Name, err)
		}
	} else {
		rows = sheetcsv.Parse(string(resp.Body))
	}

	if len(rows) < 2 {
		f.metrics.Fetch(src.Name, metrics.OutcomeEmpty, 0)
		return rows, remote.ErrEmptyResult
	}

	f.metrics.Fetch(src.Name, metrics.OutcomeOK, len(rows)-1)
	slog.Debug("Sheet fetched", "source", src.Name, "rows", len(rows)-1)
	return rows, nil
}

// isXLSX reports whether a response should be read as a workbook.
func isXLSX(rawURL, contentType string) bool {
	if strings.Contains(contentType, "spreadsheetml") {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Query().Get("output"), "xlsx")
}

// IsEmpty reports whether err means the source had no data rows.
func IsEmpty(err error) bool {
	return errors.Is(err, remote.ErrEmptyResult)
}
