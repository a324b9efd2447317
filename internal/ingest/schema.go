// Package ingest turns a spreadsheet cell matrix into typed itinerary records.
//
// The first row is the header. Columns are found by keyword, so the sheet
// owner may reorder, rename within reason, or drop columns: a field whose
// column cannot be found reads as "" for every row.
package ingest

import "strings"

// Field is one logical field and the header fragments that identify it.
//
// An Exact field binds only to a header equal to one of its keywords.
// Otherwise the first header containing any keyword wins.
type Field struct {
	Name     string
	Keywords []string
	Exact    bool
}

// Schema is the ordered field table for one kind of sheet.
type Schema []Field

// normalizeHeader trims and lower-cases a header cell.
func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// HeaderIndex maps normalized header text to its zero-based column.
// When two columns normalize to the same text the first one wins.
type HeaderIndex struct {
	names []string
	pos   map[string]int
}

// NewHeaderIndex builds the index from a header row.
func NewHeaderIndex(header []string) HeaderIndex {
	idx := HeaderIndex{
		names: make([]string, len(header)),
		pos:   make(map[string]int, len(header)),
	}
	for i, h := range header {
		n := normalizeHeader(h)
		idx.names[i] = n
		if _, ok := idx.pos[n]; !ok {
			idx.pos[n] = i
		}
	}
	return idx
}

// Lookup returns the column of a header, matched case- and
// whitespace-insensitively.
func (h HeaderIndex) Lookup(name string) (int, bool) {
	i, ok := h.pos[normalizeHeader(name)]
	return i, ok
}

// find returns the column for f, or -1 when nothing matches.
func (h HeaderIndex) find(f Field) int {
	if f.Exact {
		for _, k := range f.Keywords {
			if i, ok := h.Lookup(k); ok {
				return i
			}
		}
		return -1
	}
	for i, name := range h.names {
		for _, k := range f.Keywords {
			if k != "" && strings.Contains(name, normalizeHeader(k)) {
				return i
			}
		}
	}
	return -1
}

// Resolved is a schema bound to the columns of one concrete header row.
type Resolved struct {
	cols map[string]int
}

// Resolve binds every schema field to a column once per ingestion.
func (s Schema) Resolve(header []string) Resolved {
	idx := NewHeaderIndex(header)
	r := Resolved{cols: make(map[string]int, len(s))}
	for _, f := range s {
		r.cols[f.Name] = idx.find(f)
	}
	return r
}

// Has reports whether field was found in the header.
func (r Resolved) Has(field string) bool {
	i, ok := r.cols[field]
	return ok && i >= 0
}

// Get returns the trimmed cell for field, or "" when the column is missing
// or the row is too short.
func (r Resolved) Get(row []string, field string) string {
	i, ok := r.cols[field]
	if !ok || i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// MapRows applies fn to every data row of a cell matrix.
//
// Fewer than two rows (header only, or nothing) yields an empty result.
// Data rows with fewer than two cells are stray blank lines and are dropped.
func MapRows[T any](rows [][]string, schema Schema, fn func(r Resolved, row []string) T) []T {
	if len(rows) < 2 {
		return nil
	}

	resolved := schema.Resolve(rows[0])
	out := make([]T, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 2 {
			continue
		}
		out = append(out, fn(resolved, row))
	}
	return out
}

// splitList splits a pipe-delimited cell into trimmed, non-empty parts.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, "|") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
