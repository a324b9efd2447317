package ingest

import (
	"cmp"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/mmynk/tripboard/internal/models"
)

// Option slot labels, in display order.
var optionSlots = []string{"A", "B", "C"}

// Schedule field names.
const (
	fieldID             = "id"
	fieldDay            = "day"
	fieldTime           = "time"
	fieldTitle          = "title"
	fieldLocation       = "location"
	fieldMapLink        = "maplink"
	fieldType           = "type"
	fieldSpecialContent = "specialcontent"
	fieldIcon           = "icon"
	fieldDescription    = "description"
)

// ScheduleSchema is the header table for the itinerary sheet. Every field
// needs an exact (case- and space-insensitive) header.
var ScheduleSchema = buildScheduleSchema()

func buildScheduleSchema() Schema {
	s := Schema{
		{Name: fieldID, Keywords: []string{"id"}, Exact: true},
		{Name: fieldDay, Keywords: []string{"day"}, Exact: true},
		{Name: fieldTime, Keywords: []string{"time"}, Exact: true},
		{Name: fieldTitle, Keywords: []string{"title"}, Exact: true},
		{Name: fieldLocation, Keywords: []string{"location"}, Exact: true},
		{Name: fieldMapLink, Keywords: []string{"maplink"}, Exact: true},
		{Name: fieldType, Keywords: []string{"type"}, Exact: true},
		{Name: fieldSpecialContent, Keywords: []string{"specialcontent", "special_content"}, Exact: true},
		{Name: fieldIcon, Keywords: []string{"icon"}, Exact: true},
		{Name: fieldDescription, Keywords: []string{"description"}, Exact: true},
	}
	for _, slot := range optionSlots {
		for _, part := range []string{"title", "subtitle", "desc", "tags", "map"} {
			name := slotField(slot, part)
			s = append(s, Field{Name: name, Keywords: []string{name}, Exact: true})
		}
	}
	return s
}

// slotField returns the column name of one part of an option slot,
// e.g. slotField("B", "tags") == "opt_b_tags".
func slotField(slot, part string) string {
	return "opt_" + strings.ToLower(slot) + "_" + part
}

// MapSchedule maps itinerary rows to schedule items in sheet order.
// Call SortSchedule afterwards for display order.
func MapSchedule(rows [][]string) []models.ScheduleItem {
	return MapRows(rows, ScheduleSchema, func(r Resolved, row []string) models.ScheduleItem {
		item := models.ScheduleItem{
			ID:             r.Get(row, fieldID),
			Day:            ParseDay(r.Get(row, fieldDay)),
			Time:           r.Get(row, fieldTime),
			Title:          r.Get(row, fieldTitle),
			Location:       r.Get(row, fieldLocation),
			MapLink:        r.Get(row, fieldMapLink),
			Icon:           r.Get(row, fieldIcon),
			Type:           models.ParseItemType(r.Get(row, fieldType)),
			SpecialContent: parseSpecialContent(r.Get(row, fieldSpecialContent)),
			Description:    r.Get(row, fieldDescription),
			Options:        mapOptions(r, row),
		}
		if item.Day == 0 {
			slog.Warn("Schedule row has no usable day, it will not show under any day",
				"title", item.Title,
				"day", r.Get(row, fieldDay),
			)
		}
		return item
	})
}

func mapOptions(r Resolved, row []string) []models.Option {
	var options []models.Option
	for _, slot := range optionSlots {
		title := r.Get(row, slotField(slot, "title"))
		if title == "" {
			continue
		}
		options = append(options, models.Option{
			ID:          slot,
			Title:       title,
			Subtitle:    r.Get(row, slotField(slot, "subtitle")),
			Description: splitList(r.Get(row, slotField(slot, "desc"))),
			Tags:        splitList(r.Get(row, slotField(slot, "tags"))),
			MapLink:     r.Get(row, slotField(slot, "map")),
		})
	}
	return options
}

func parseSpecialContent(s string) models.SpecialContent {
	if models.SpecialContent(s) == models.SpecialContentHikingGuide {
		return models.SpecialContentHikingGuide
	}
	return models.SpecialContentNone
}

// ParseDay parses a trip day. Anything that is not a positive integer is 0.
func ParseDay(s string) int {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// TimeToMinutes converts "HH:mm" to minutes since midnight.
// Parsing is lenient: "6:5" is 365, and a missing or malformed component
// counts as 0, so an empty time sorts at the start of the day.
func TimeToMinutes(s string) int {
	if s == "" {
		return 0
	}
	parts := strings.Split(s, ":")
	h := atoiOrZero(parts[0])
	m := 0
	if len(parts) > 1 {
		m = atoiOrZero(parts[1])
	}
	return h*60 + m
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// SortSchedule orders items by day, then start time. Items that share both
// keep their sheet order.
func SortSchedule(items []models.ScheduleItem) {
	slices.SortStableFunc(items, func(a, b models.ScheduleItem) int {
		if c := cmp.Compare(a.Day, b.Day); c != 0 {
			return c
		}
		return cmp.Compare(TimeToMinutes(a.Time), TimeToMinutes(b.Time))
	})
}

// ForDay returns the items of one day. Day-0 items (unparsable day) are
// only returned when day is 0.
func ForDay(items []models.ScheduleItem, day int) []models.ScheduleItem {
	var out []models.ScheduleItem
	for _, it := range items {
		if it.Day == day {
			out = append(out, it)
		}
	}
	return out
}

// Schedule runs the full pipeline: map, then sort.
func Schedule(rows [][]string) []models.ScheduleItem {
	items := MapSchedule(rows)
	SortSchedule(items)
	return items
}
