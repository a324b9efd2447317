package models

// TripInfo is the static header information for a trip.
type TripInfo struct {
	Title  string `json:"title" yaml:"title"`
	Dates  string `json:"dates" yaml:"dates"`
	Pickup Place  `json:"pickup" yaml:"pickup"`
	Stay   Place  `json:"stay" yaml:"stay"`
	Return Place  `json:"return" yaml:"return"`
}

// Place is a named location with an optional time and map link.
type Place struct {
	Location string `json:"location" yaml:"location"`
	Sub      string `json:"sub,omitempty" yaml:"sub,omitempty"`
	Time     string `json:"time,omitempty" yaml:"time,omitempty"`
	Link     string `json:"link,omitempty" yaml:"link,omitempty"`
}

// HikingGuide is the attached content for a SpecialContentHikingGuide stop.
type HikingGuide struct {
	PrepList   []string          `json:"prepList,omitempty" yaml:"prepList,omitempty"`
	Stats      HikingStats       `json:"stats" yaml:"stats"`
	Milestones []HikingMilestone `json:"milestones" yaml:"milestones"`
}

// HikingStats are the estimated durations for the hike.
type HikingStats struct {
	UpTime    string `json:"upTime" yaml:"upTime"`
	RestTime  string `json:"restTime" yaml:"restTime"`
	DownTime  string `json:"downTime" yaml:"downTime"`
	TotalTime string `json:"totalTime" yaml:"totalTime"`
}

// HikingMilestone is one checkpoint on the hiking timeline.
type HikingMilestone struct {
	Time  string `json:"time" yaml:"time"`
	Event string `json:"event" yaml:"event"`
	Note  string `json:"note,omitempty" yaml:"note,omitempty"`
}

// ChecklistCategory is a group of packing items.
// ID is stable across languages so persisted progress survives a language switch.
type ChecklistCategory struct {
	ID    string          `json:"id" yaml:"id"`
	Title string          `json:"title" yaml:"title"`
	Items []ChecklistItem `json:"items" yaml:"items"`
}

// ChecklistItem is one packing item.
type ChecklistItem struct {
	ID          string   `json:"id" yaml:"id"`
	Label       string   `json:"label" yaml:"label"`
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Description []string `json:"description,omitempty" yaml:"description,omitempty"`
}

// PrepIcon is a quick-glance gear reminder shown with the hiking guide.
type PrepIcon struct {
	Icon  string `json:"icon" yaml:"icon"`
	Label string `json:"label" yaml:"label"`
}
