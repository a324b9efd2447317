package sheets

import (
	"context"
	"slices"

	"github.com/mmynk/tripboard/internal/ingest"
	"github.com/mmynk/tripboard/internal/models"
	"github.com/mmynk/tripboard/internal/tripdata"
)

// Sheets serves the schedule and candidates lists.
type Sheets struct {
	fetcher    *Fetcher
	schedule   Source
	candidates Source
}

// New creates a Sheets reading from the given URLs. Either may be empty.
func New(fetcher *Fetcher, scheduleURL, candidatesURL string) *Sheets {
	return &Sheets{
		fetcher:    fetcher,
		schedule:   Source{Name: SourceSchedule, URL: scheduleURL},
		candidates: Source{Name: SourceCandidates, URL: candidatesURL},
	}
}

// ScheduleConfigured reports whether a schedule sheet is set.
func (s *Sheets) ScheduleConfigured() bool {
	return s.schedule.URL != ""
}

// Schedule returns the itinerary sorted by day and time.
//
// Without a schedule sheet the built-in itinerary for lang is returned.
// An empty sheet yields an empty list along with remote.ErrEmptyResult.
func (s *Sheets) Schedule(ctx context.Context, lang tripdata.Lang) ([]models.ScheduleItem, error) {
	if !s.ScheduleConfigured() {
		trip, err := tripdata.Load(lang)
		if err != nil {
			return nil, err
		}
		return slices.Clone(trip.Schedule), nil
	}

	rows, err := s.fetcher.Fetch(ctx, s.schedule)
	if err != nil {
		if IsEmpty(err) {
			return []models.ScheduleItem{}, err
		}
		return nil, err
	}
	return ingest.Schedule(rows), nil
}

// Candidates returns the candidates sheet in row order.
func (s *Sheets) Candidates(ctx context.Context) ([]models.Candidate, error) {
	rows, err := s.fetcher.Fetch(ctx, s.candidates)
	if err != nil {
		if IsEmpty(err) {
			return []models.Candidate{}, err
		}
		return nil, err
	}
	return ingest.MapCandidates(rows), nil
}
