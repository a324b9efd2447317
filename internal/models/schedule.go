package models

// ItemType classifies a schedule stop for display.
type ItemType string

const (
	ItemTypeDefault   ItemType = "default"
	ItemTypeActivity  ItemType = "activity"
	ItemTypeFood      ItemType = "food"
	ItemTypeTransport ItemType = "transport"
	ItemTypeRest      ItemType = "rest"
)

// ParseItemType maps free text to an ItemType, falling back to ItemTypeDefault.
func ParseItemType(s string) ItemType {
	switch t := ItemType(s); t {
	case ItemTypeActivity, ItemTypeFood, ItemTypeTransport, ItemTypeRest:
		return t
	default:
		return ItemTypeDefault
	}
}

// SpecialContent marks a stop that carries an attached guide.
type SpecialContent string

const (
	SpecialContentNone        SpecialContent = ""
	SpecialContentHikingGuide SpecialContent = "hiking_guide"
)

// ScheduleItem is one timed stop in the itinerary.
type ScheduleItem struct {
	// ID is the spreadsheet-assigned identifier. May be empty.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Day is the 1-based trip day. Zero means the source value did not parse;
	// such items are kept but never appear under a day tab.
	Day int `json:"day" yaml:"day"`

	// Time is the start time as written in the sheet ("HH:mm", leniently).
	Time string `json:"time" yaml:"time"`

	Title    string `json:"title" yaml:"title"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	MapLink  string `json:"mapLink,omitempty" yaml:"mapLink,omitempty"`

	// Icon is the icon name from the sheet; resolved to a known icon only at
	// render time.
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`

	Type           ItemType       `json:"type" yaml:"type"`
	SpecialContent SpecialContent `json:"specialContent,omitempty" yaml:"specialContent,omitempty"`
	Description    string         `json:"description,omitempty" yaml:"description,omitempty"`

	// Options are the alternative plans for this stop, in slot order.
	// Slots without a title are skipped, so labels may have gaps (A, C).
	Options []Option `json:"options,omitempty" yaml:"options,omitempty"`
}

// Option is one alternative plan attached to a schedule stop.
type Option struct {
	// ID is the slot label: "A", "B" or "C".
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Subtitle    string   `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Description []string `json:"description,omitempty" yaml:"description,omitempty"`
	MapLink     string   `json:"mapLink,omitempty" yaml:"mapLink,omitempty"`
	Recommended bool     `json:"recommended,omitempty" yaml:"recommended,omitempty"`
}
