package ingest

import (
	"strings"

	"github.com/mmynk/tripboard/internal/models"
)

// CandidateSchema is the header table for the candidates sheet.
// Headers may be Chinese or English: 名稱(Name), 類型(Type), 簡介(Description), 地圖連結(MapLink).
var CandidateSchema = Schema{
	{Name: "name", Keywords: []string{"名稱", "name"}},
	{Name: "type", Keywords: []string{"類型", "type"}},
	{Name: "description", Keywords: []string{"簡介", "desc"}},
	{Name: "map", Keywords: []string{"地圖", "map"}},
}

// MapCandidates maps candidate rows in sheet order.
func MapCandidates(rows [][]string) []models.Candidate {
	return MapRows(rows, CandidateSchema, func(r Resolved, row []string) models.Candidate {
		return models.Candidate{
			Name:        r.Get(row, "name"),
			Type:        r.Get(row, "type"),
			Description: r.Get(row, "description"),
			MapLink:     r.Get(row, "map"),
		}
	})
}

// Category is a candidates filter.
type Category string

const (
	CategoryAll  Category = "all"
	CategoryFood Category = "food"
	CategoryFun  Category = "fun"
)

var categoryKeywords = map[Category][]string{
	CategoryFood: {"食", "food", "餐廳", "吃"},
	CategoryFun:  {"景", "玩", "fun", "spot"},
}

// ParseCategory maps free text to a Category, defaulting to CategoryAll.
func ParseCategory(s string) Category {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryFood, CategoryFun:
		return c
	default:
		return CategoryAll
	}
}

// FilterCandidates keeps the candidates whose type mentions one of the
// category's keywords. CategoryAll keeps everything.
func FilterCandidates(items []models.Candidate, c Category) []models.Candidate {
	keywords, ok := categoryKeywords[c]
	if !ok {
		return items
	}
	var out []models.Candidate
	for _, it := range items {
		t := strings.ToLower(it.Type)
		for _, k := range keywords {
			if strings.Contains(t, k) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
