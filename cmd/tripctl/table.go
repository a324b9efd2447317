package main

import (
	"io"
	"strings"
	"text/tabwriter"
)

func writeTable(w io.Writer, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			// Multi-line cells would break the columns.
			cells[i] = strings.ReplaceAll(c, "\n", " ")
		}
		if _, err := io.WriteString(tw, strings.Join(cells, "\t")+"\n"); err != nil {
			return err
		}
	}
	return tw.Flush()
}
