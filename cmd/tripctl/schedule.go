package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmynk/tripboard/internal/ingest"
	"github.com/mmynk/tripboard/internal/models"
	"github.com/mmynk/tripboard/internal/remote"
	"github.com/mmynk/tripboard/internal/sheets"
	"github.com/mmynk/tripboard/internal/tripdata"
)

func newScheduleCmd(opts *options) *cobra.Command {
	var (
		url  string
		day  int
		lang string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the itinerary from the schedule sheet or the built-in trip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if day < 0 {
				return errors.New("--day must not be negative")
			}

			sh := sheets.New(sheets.NewFetcher(opts.httpClient(), nil), url, "")
			items, err := sh.Schedule(cmd.Context(), tripdata.ParseLang(lang))
			if err != nil && !errors.Is(err, remote.ErrEmptyResult) {
				return err
			}
			if day != 0 {
				items = ingest.ForDay(items, day)
			}

			rows := [][]string{{"day", "time", "title", "location", "type", "options"}}
			for _, it := range items {
				rows = append(rows, []string{
					strconv.Itoa(it.Day),
					it.Time,
					it.Title,
					it.Location,
					string(it.Type),
					optionTitles(it.Options),
				})
			}
			return opts.write(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().StringVar(&url, "url", envDefault("SCHEDULE_CSV_URL"), "Published schedule CSV URL (default: built-in itinerary)")
	cmd.Flags().IntVar(&day, "day", 0, "Only print this trip day (0 = all)")
	cmd.Flags().StringVar(&lang, "lang", "zh", "Built-in itinerary language: zh or en")
	return cmd
}

func optionTitles(options []models.Option) string {
	parts := make([]string, len(options))
	for i, o := range options {
		parts[i] = o.ID + ": " + o.Title
	}
	return strings.Join(parts, " | ")
}
