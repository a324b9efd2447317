package api

import "github.com/mmynk/tripboard/internal/models"

type GetChecklistRequest struct {
	Lang string `json:"lang,omitempty"`
}

// ChecklistView is a category with its saved progress.
type ChecklistView struct {
	Category models.ChecklistCategory `json:"category"`
	Checked  map[string]bool          `json:"checked"`
	Done     int                      `json:"done"`
	Total    int                      `json:"total"`
}

type GetChecklistResponse struct {
	Categories []ChecklistView `json:"categories"`
}

type ToggleItemRequest struct {
	Category string `json:"category"`
	Item     string `json:"item"`
}

type ToggleItemResponse struct {
	Checked bool `json:"checked"`
	Done    int  `json:"done"`
	Total   int  `json:"total"`
}
