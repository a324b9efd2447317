// Package sheetcsv tokenizes the CSV that spreadsheet "publish to web" links
// return.
//
// It is deliberately smaller than RFC 4180: no field-count checks, no
// errors, bare CR accepted as a line end. Rows may have any number of cells.
package sheetcsv

import "strings"

const bom = "\ufeff"

// Parse splits text into rows of cells.
//
// A leading byte-order mark is dropped. Quoted fields may contain commas,
// line breaks and doubled quotes ("" → "). Outside quotes a CRLF, a bare LF
// or a bare CR ends the row. A trailing row without a line terminator is
// kept.
func Parse(text string) [][]string {
	text = strings.TrimPrefix(text, bom)

	var (
		rows    [][]string
		row     []string
		field   strings.Builder
		inQuote bool
	)

	endField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	endRow := func() {
		endField()
		rows = append(rows, row)
		row = nil
	}

	// All delimiters are ASCII, so scanning bytes never splits a multi-byte rune.
	for i := 0; i < len(text); i++ {
		c := text[i]

		if inQuote {
			switch {
			case c == '"' && i+1 < len(text) && text[i+1] == '"':
				field.WriteByte('"')
				i++
			case c == '"':
				inQuote = false
			default:
				field.WriteByte(c)
			}
			continue
		}

		switch c {
		case '"':
			inQuote = true
		case ',':
			endField()
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			endRow()
		case '\n':
			endRow()
		default:
			field.WriteByte(c)
		}
	}

	if field.Len() > 0 || len(row) > 0 {
		endRow()
	}

	return rows
}

// Quote returns field as a CSV cell, quoting it only when it contains a
// comma, a quote or a line break.
func Quote(field string) string {
	if !strings.ContainsAny(field, ",\"\r\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// Write renders rows as CSV text with LF line endings. Parse(Write(rows))
// returns rows unchanged as long as every row has at least one cell.
func Write(rows [][]string) string {
	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(Quote(cell))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
