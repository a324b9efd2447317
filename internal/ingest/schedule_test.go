package ingest

import (
	"reflect"
	"testing"

	"github.com/mmynk/tripboard/internal/models"
	"github.com/mmynk/tripboard/internal/sheetcsv"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"06:05", 365},
		{"6:5", 365},
		{"00:00", 0},
		{"23:59", 1439},
		{"", 0},
		{"abc", 0},
		{"xx:30", 30},
		{"9", 540},
		{"09:30:00", 570},
		{" 7 : 15 ", 435},
	}
	for _, tt := range tests {
		if got := TimeToMinutes(tt.in); got != tt.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 1},
		{" 2 ", 2},
		{"", 0},
		{"Day 1", 0},
		{"-1", 0},
		{"1.5", 0},
	}
	for _, tt := range tests {
		if got := ParseDay(tt.in); got != tt.want {
			t.Errorf("ParseDay(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHeaderResolutionIgnoresCaseAndSpace(t *testing.T) {
	for _, h := range []string{" Title ", "TITLE", "title"} {
		rows := [][]string{
			{"day", h},
			{"1", "Lunch"},
		}
		items := MapSchedule(rows)
		if len(items) != 1 || items[0].Title != "Lunch" {
			t.Errorf("header %q: got %+v", h, items)
		}
	}
}

func TestMapSchedule(t *testing.T) {
	text := "id,day,time,title,location,mapLink,type,special_content,icon,description," +
		"opt_a_title,opt_a_desc,opt_a_tags,opt_a_map," +
		"opt_b_title,opt_b_desc,opt_b_tags,opt_b_map," +
		"opt_c_title,opt_c_desc,opt_c_tags,opt_c_map\n" +
		"s1,1,09:30,Pickup,IWS,https://maps/1,transport,,Car,Get the car," +
		"Ramen,\"broth | noodles|\",hot|  |cheap,https://maps/a," +
		",,,," +
		"Curry,spicy,,https://maps/c\n" +
		"s2,2,06:30,Hike,Wufengqi,,activity,hiking_guide,Mountain,,,,,,,,,,,,,\n"

	items := MapSchedule(sheetcsv.Parse(text))
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	first := items[0]
	if first.ID != "s1" || first.Day != 1 || first.Time != "09:30" || first.Title != "Pickup" {
		t.Errorf("unexpected base fields: %+v", first)
	}
	if first.MapLink != "https://maps/1" {
		t.Errorf("mapLink: got %q", first.MapLink)
	}
	if first.Type != models.ItemTypeTransport {
		t.Errorf("type: got %q", first.Type)
	}
	if first.Icon != "Car" {
		t.Errorf("icon: got %q", first.Icon)
	}

	// Slot B is empty: exactly two options, labelled A and C.
	if len(first.Options) != 2 {
		t.Fatalf("expected 2 options, got %d: %+v", len(first.Options), first.Options)
	}
	if first.Options[0].ID != "A" || first.Options[1].ID != "C" {
		t.Errorf("option labels: got %q, %q", first.Options[0].ID, first.Options[1].ID)
	}
	if !reflect.DeepEqual(first.Options[0].Description, []string{"broth", "noodles"}) {
		t.Errorf("option A description: got %q", first.Options[0].Description)
	}
	if !reflect.DeepEqual(first.Options[0].Tags, []string{"hot", "cheap"}) {
		t.Errorf("option A tags: got %q", first.Options[0].Tags)
	}
	if first.Options[1].Tags != nil {
		t.Errorf("option C tags: expected none, got %q", first.Options[1].Tags)
	}

	second := items[1]
	if second.SpecialContent != models.SpecialContentHikingGuide {
		t.Errorf("specialContent: got %q", second.SpecialContent)
	}
	if second.Options != nil {
		t.Errorf("expected no options, got %+v", second.Options)
	}
}

func TestMapSchedule_DegradedInput(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want int
	}{
		{"nil", nil, 0},
		{"header only", [][]string{{"day", "time", "title"}}, 0},
		{"blank lines dropped", [][]string{{"day", "title"}, {""}, {"1", "A"}, {"x"}}, 1},
		{"short row tolerated", [][]string{{"day", "time", "title", "location"}, {"1", "10:00"}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := MapSchedule(tt.rows)
			if len(items) != tt.want {
				t.Errorf("got %d items, want %d", len(items), tt.want)
			}
		})
	}
}

func TestMapSchedule_MissingColumns(t *testing.T) {
	rows := [][]string{
		{"day", "title"},
		{"1", "Walk"},
	}
	items := MapSchedule(rows)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	it := items[0]
	if it.Time != "" || it.Location != "" || it.Description != "" {
		t.Errorf("absent columns should read as empty: %+v", it)
	}
	if it.Type != models.ItemTypeDefault {
		t.Errorf("type should default, got %q", it.Type)
	}
}

func TestMapSchedule_UnparsableDayIsOrphaned(t *testing.T) {
	rows := [][]string{
		{"day", "time", "title"},
		{"first", "10:00", "Orphan"},
		{"1", "09:00", "Kept"},
	}
	items := Schedule(rows)
	if items[0].Title != "Orphan" || items[0].Day != 0 {
		t.Errorf("orphan should sort first under day 0: %+v", items)
	}
	if got := ForDay(items, 1); len(got) != 1 || got[0].Title != "Kept" {
		t.Errorf("day 1 should hold only the parsable row: %+v", got)
	}
	if got := ForDay(items, 2); len(got) != 0 {
		t.Errorf("day 2 should be empty: %+v", got)
	}
}

func TestSortSchedule(t *testing.T) {
	items := []models.ScheduleItem{
		{Day: 2, Time: "08:00", Title: "d2 breakfast"},
		{Day: 1, Time: "12:00", Title: "d1 lunch first"},
		{Day: 1, Time: "9:30", Title: "d1 pickup"},
		{Day: 1, Time: "12:00", Title: "d1 lunch second"},
		{Day: 1, Time: "", Title: "d1 untimed"},
		{Day: 1, Time: "12:00", Title: "d1 lunch third"},
	}
	SortSchedule(items)

	want := []string{
		"d1 untimed",
		"d1 pickup",
		"d1 lunch first",
		"d1 lunch second",
		"d1 lunch third",
		"d2 breakfast",
	}
	for i, w := range want {
		if items[i].Title != w {
			t.Errorf("position %d: got %q, want %q", i, items[i].Title, w)
		}
	}
}

func TestSchemaPrefersExactHeader(t *testing.T) {
	// opt_a_title appears before title; title must still bind to its own column.
	rows := [][]string{
		{"day", "opt_a_title", "title"},
		{"1", "Option", "Main"},
	}
	items := MapSchedule(rows)
	if items[0].Title != "Main" {
		t.Errorf("title bound to wrong column: %q", items[0].Title)
	}
	if len(items[0].Options) != 1 || items[0].Options[0].Title != "Option" {
		t.Errorf("unexpected options: %+v", items[0].Options)
	}
}

func TestScheduleIgnoresPartialHeaders(t *testing.T) {
	rows := [][]string{
		{"day", "title", "title (zh)", "maplinks"},
		{"1", "Main", "主要", "https://maps/x"},
	}
	items := MapSchedule(rows)
	if items[0].Title != "Main" {
		t.Errorf("Title = %q, want Main", items[0].Title)
	}
	if items[0].MapLink != "" {
		t.Errorf("MapLink = %q, want empty for a non-exact header", items[0].MapLink)
	}
}

func TestIconFor(t *testing.T) {
	if got := IconFor("Car"); got != "Car" {
		t.Errorf("IconFor(Car) = %q", got)
	}
	if got := IconFor("Spaceship"); got != IconMapPin {
		t.Errorf("IconFor(unknown) = %q, want %q", got, IconMapPin)
	}
	if got := IconFor(""); got != IconMapPin {
		t.Errorf("IconFor(\"\") = %q, want %q", got, IconMapPin)
	}
}
