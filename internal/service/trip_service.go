package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tripboard/internal/ingest"
	"github.com/mmynk/tripboard/internal/models"
	"github.com/mmynk/tripboard/internal/sheets"
	"github.com/mmynk/tripboard/internal/tripdata"
	"github.com/mmynk/tripboard/pkg/api"
	"github.com/mmynk/tripboard/pkg/api/apiconnect"
)

// Schedule sources reported by GetTrip.
const (
	ScheduleSourceSheet   = "sheet"
	ScheduleSourceBuiltin = "builtin"
)

// Features tells clients which optional backends are wired.
type Features struct {
	LedgerConfigured bool
	AuthRequired     bool
}

// TripService implements the Connect TripService
type TripService struct {
	apiconnect.UnimplementedTripServiceHandler
	sheets   *sheets.Sheets
	features Features
}

// NewTripService creates a new TripService reading from the given sheets.
func NewTripService(sh *sheets.Sheets, features Features) *TripService {
	return &TripService{sheets: sh, features: features}
}

// GetTrip returns the static trip content for a language.
func (s *TripService) GetTrip(ctx context.Context, req *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	lang := tripdata.ParseLang(req.Msg.Lang)
	slog.Debug("GetTrip request received", "lang", lang)

	trip, err := tripdata.Load(lang)
	if err != nil {
		slog.Error("GetTrip failed", "lang", lang, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	source := ScheduleSourceBuiltin
	if s.sheets.ScheduleConfigured() {
		source = ScheduleSourceSheet
	}

	return connect.NewResponse(&api.GetTripResponse{
		Info:             trip.Info,
		HikingGuide:      trip.HikingGuide,
		PrepIcons:        trip.PrepIcons,
		Labels:           trip.Labels,
		ReturnReminder:   trip.Labels.Format("returnReminderText", trip.Info.Return.Time),
		ScheduleSource:   source,
		LedgerConfigured: s.features.LedgerConfigured,
		AuthRequired:     s.features.AuthRequired,
	}), nil
}

// GetSchedule returns the itinerary, optionally for one day, with icon
// names resolved.
func (s *TripService) GetSchedule(ctx context.Context, req *connect.Request[api.GetScheduleRequest]) (*connect.Response[api.GetScheduleResponse], error) {
	lang := tripdata.ParseLang(req.Msg.Lang)
	slog.Info("GetSchedule request received", "lang", lang, "day", req.Msg.Day)

	if req.Msg.Day < 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("day must not be negative, got %d", req.Msg.Day))
	}

	items, err := s.sheets.Schedule(ctx, lang)
	if err != nil && !sheets.IsEmpty(err) {
		slog.Error("GetSchedule failed", "error", err)
		return nil, connectError(err)
	}

	if req.Msg.Day != 0 {
		items = ingest.ForDay(items, req.Msg.Day)
	}

	out := make([]models.ScheduleItem, len(items))
	for i, it := range items {
		it.Icon = string(ingest.IconFor(it.Icon))
		out[i] = it
	}

	slog.Info("GetSchedule successful", "count", len(out))
	return connect.NewResponse(&api.GetScheduleResponse{Items: out}), nil
}

// ListCandidates returns the candidates sheet filtered by category.
func (s *TripService) ListCandidates(ctx context.Context, req *connect.Request[api.ListCandidatesRequest]) (*connect.Response[api.ListCandidatesResponse], error) {
	category := ingest.ParseCategory(req.Msg.Category)
	slog.Info("ListCandidates request received", "category", category)

	items, err := s.sheets.Candidates(ctx)
	switch {
	case sheets.IsEmpty(err):
		items = nil
	case err != nil:
		slog.Error("ListCandidates failed", "error", err)
		return nil, connectError(err)
	}

	filtered := ingest.FilterCandidates(items, category)
	if filtered == nil {
		filtered = []models.Candidate{}
	}

	slog.Info("ListCandidates successful", "count", len(filtered))
	return connect.NewResponse(&api.ListCandidatesResponse{Candidates: filtered}), nil
}
