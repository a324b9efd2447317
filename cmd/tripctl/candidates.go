package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mmynk/tripboard/internal/ingest"
	"github.com/mmynk/tripboard/internal/remote"
	"github.com/mmynk/tripboard/internal/sheets"
)

func newCandidatesCmd(opts *options) *cobra.Command {
	var (
		url      string
		category string
	)

	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "Print the candidates sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := sheets.New(sheets.NewFetcher(opts.httpClient(), nil), "", url)
			items, err := sh.Candidates(cmd.Context())
			if err != nil && !errors.Is(err, remote.ErrEmptyResult) {
				return err
			}

			rows := [][]string{{"name", "type", "description", "map"}}
			for _, c := range ingest.FilterCandidates(items, ingest.ParseCategory(category)) {
				rows = append(rows, []string{c.Name, c.Type, c.Description, c.MapLink})
			}
			return opts.write(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().StringVar(&url, "url", envDefault("CANDIDATES_CSV_URL"), "Published candidates CSV URL")
	cmd.Flags().StringVar(&category, "category", "all", "Filter: all, food or fun")
	return cmd
}
