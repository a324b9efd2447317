// Package tripdata holds the built-in bilingual trip content: the itinerary
// served when no schedule sheet is configured, the hiking guide, the packing
// checklist and the display labels.
package tripdata

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/mmynk/tripboard/internal/ingest"
	"github.com/mmynk/tripboard/internal/models"
)

//go:embed data/*.yaml
var files embed.FS

// Lang is a content language.
type Lang string

const (
	LangZH Lang = "zh"
	LangEN Lang = "en"
)

// Langs lists the supported languages, default first.
var Langs = []Lang{LangZH, LangEN}

// ParseLang maps a language tag to a supported Lang. Anything that is not
// English falls back to Chinese.
func ParseLang(s string) Lang {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "en" || strings.HasPrefix(s, "en-") || strings.HasPrefix(s, "en_") {
		return LangEN
	}
	return LangZH
}

// Trip is the full built-in content for one language. Treat it as read-only.
type Trip struct {
	Info        models.TripInfo            `yaml:"trip"`
	Schedule    []models.ScheduleItem      `yaml:"schedule"`
	HikingGuide models.HikingGuide         `yaml:"hikingGuide"`
	Checklist   []models.ChecklistCategory `yaml:"checklist"`
	PrepIcons   []models.PrepIcon          `yaml:"prepIcons"`
	Labels      Labels                     `yaml:"labels"`
}

// Labels are UI strings by key.
type Labels map[string]string

// Get returns the label for key, or key itself when missing.
func (l Labels) Get(key string) string {
	if v, ok := l[key]; ok {
		return v
	}
	return key
}

// Format applies args to the label for key (labels such as
// returnReminderText carry fmt verbs).
func (l Labels) Format(key string, args ...any) string {
	return fmt.Sprintf(l.Get(key), args...)
}

var (
	loadOnce sync.Once
	trips    map[Lang]*Trip
	loadErr  error
)

// Load returns the built-in content for lang.
func Load(lang Lang) (*Trip, error) {
	loadOnce.Do(func() {
		trips = make(map[Lang]*Trip, len(Langs))
		for _, l := range Langs {
			data, err := files.ReadFile("data/" + string(l) + ".yaml")
			if err != nil {
				loadErr = fmt.Errorf("failed to read trip data %s: %w", l, err)
				return
			}
			trip, err := Parse(data)
			if err != nil {
				loadErr = fmt.Errorf("failed to parse trip data %s: %w", l, err)
				return
			}
			trips[l] = trip
		}
	})
	if loadErr != nil {
		return nil, loadErr
	}

	trip, ok := trips[lang]
	if !ok {
		return nil, fmt.Errorf("unsupported language %q", lang)
	}
	return trip, nil
}

// Parse decodes trip content and normalizes it the same way sheet rows are:
// unknown types become default and the schedule is sorted by day and time.
func Parse(data []byte) (*Trip, error) {
	var trip Trip
	if err := yaml.Unmarshal(data, &trip); err != nil {
		return nil, err
	}

	for i := range trip.Schedule {
		item := &trip.Schedule[i]
		item.Type = models.ParseItemType(string(item.Type))
		if item.SpecialContent != models.SpecialContentHikingGuide {
			item.SpecialContent = models.SpecialContentNone
		}
	}
	ingest.SortSchedule(trip.Schedule)

	return &trip, nil
}

// Category returns the checklist category with the given ID.
func (t *Trip) Category(id string) (models.ChecklistCategory, bool) {
	for _, c := range t.Checklist {
		if c.ID == id {
			return c, true
		}
	}
	return models.ChecklistCategory{}, false
}
