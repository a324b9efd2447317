package models

// Candidate is a suggested place from the shared candidates sheet.
type Candidate struct {
	Name string `json:"name"`

	// Type is a free-text category label (e.g., "美食", "景點", "food").
	Type string `json:"type"`

	Description string `json:"description"`
	MapLink     string `json:"mapLink"`
}
