package ingest

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/tripboard/internal/models"
	"github.com/mmynk/tripboard/internal/sheetcsv"
)

func TestMapCandidates(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"chinese headers", "名稱(Name),類型(Type),簡介(Description),地圖連結(MapLink)"},
		{"english headers", "Name,Type,Description,Map Link"},
		{"reordered", "Map,Desc,Type,Name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := sheetcsv.Parse(tt.header)[0]
			idx := NewHeaderIndex(header)
			cells := make([]string, len(header))
			put := func(keyword, v string) {
				cells[idx.find(Field{Keywords: []string{keyword}})] = v
			}
			put("name", "Night market")
			put("type", "美食")
			put("desc", "Snacks")
			put("map", "https://maps/x")

			items := MapCandidates([][]string{header, cells})
			if len(items) != 1 {
				t.Fatalf("expected 1 candidate, got %d", len(items))
			}
			want := models.Candidate{Name: "Night market", Type: "美食", Description: "Snacks", MapLink: "https://maps/x"}
			if items[0] != want {
				t.Errorf("got %+v, want %+v", items[0], want)
			}
		})
	}
}

func TestMapCandidates_FirstMatchingHeaderWins(t *testing.T) {
	// Bilingual sheets carry both a 地圖連結 and a map column; the first one wins.
	rows := [][]string{
		{"名稱", "地圖連結", "map", "name"},
		{"Ramen", "https://maps/zh", "https://maps/en", "ラーメン"},
	}
	items := MapCandidates(rows)
	if len(items) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(items))
	}
	if items[0].MapLink != "https://maps/zh" {
		t.Errorf("MapLink = %q, want the first matching column", items[0].MapLink)
	}
	if items[0].Name != "Ramen" {
		t.Errorf("Name = %q, want the first matching column", items[0].Name)
	}
}

func TestFilterCandidates(t *testing.T) {
	items := []models.Candidate{
		{Name: "a", Type: "美食"},
		{Name: "b", Type: "景點"},
		{Name: "c", Type: "Food truck"},
		{Name: "d", Type: "Photo Spot"},
		{Name: "e", Type: "住宿"},
		{Name: "f", Type: ""},
	}

	tests := []struct {
		category Category
		want     []string
	}{
		{CategoryAll, []string{"a", "b", "c", "d", "e", "f"}},
		{CategoryFood, []string{"a", "c"}},
		{CategoryFun, []string{"b", "d"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			got := FilterCandidates(items, tt.category)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d items, want %d", len(got), len(tt.want))
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Errorf("position %d: got %q, want %q", i, got[i].Name, name)
				}
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	if ParseCategory(" FOOD ") != CategoryFood {
		t.Error("expected food")
	}
	if ParseCategory("fun") != CategoryFun {
		t.Error("expected fun")
	}
	if ParseCategory("whatever") != CategoryAll {
		t.Error("expected all")
	}
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"day", "time", "title"},
		{"2", "08:00", "Breakfast"},
		{"1", "09:30", "Pickup"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	matrix, err := ReadXLSX(bytes.NewReader(buf.Bytes()), "")
	if err != nil {
		t.Fatalf("ReadXLSX failed: %v", err)
	}
	items := Schedule(matrix)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Title != "Pickup" || items[1].Title != "Breakfast" {
		t.Errorf("unexpected order: %q, %q", items[0].Title, items[1].Title)
	}
}

func TestReadXLSX_NotAWorkbook(t *testing.T) {
	if _, err := ReadXLSX(bytes.NewReader([]byte("day,time\n")), ""); err == nil {
		t.Error("expected error for non-xlsx input")
	}
}
