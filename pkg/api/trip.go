package api

import "github.com/mmynk/tripboard/internal/models"

type GetTripRequest struct {
	// Lang is "zh" (default) or "en".
	Lang string `json:"lang,omitempty"`
}

type GetTripResponse struct {
	Info        models.TripInfo    `json:"info"`
	HikingGuide models.HikingGuide `json:"hikingGuide"`
	PrepIcons   []models.PrepIcon  `json:"prepIcons"`
	Labels      map[string]string  `json:"labels"`

	// ReturnReminder is the formatted car-return reminder.
	ReturnReminder string `json:"returnReminder"`

	// ScheduleSource is "sheet" or "builtin".
	ScheduleSource   string `json:"scheduleSource"`
	LedgerConfigured bool   `json:"ledgerConfigured"`
	AuthRequired     bool   `json:"authRequired"`
}

type GetScheduleRequest struct {
	Lang string `json:"lang,omitempty"`

	// Day selects one trip day. 0 returns every item, including items whose
	// day did not parse.
	Day int `json:"day,omitempty"`
}

type GetScheduleResponse struct {
	Items []models.ScheduleItem `json:"items"`
}

type ListCandidatesRequest struct {
	// Category is "all" (default), "food" or "fun".
	Category string `json:"category,omitempty"`
}

type ListCandidatesResponse struct {
	Candidates []models.Candidate `json:"candidates"`
}
