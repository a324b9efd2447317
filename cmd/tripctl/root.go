package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/tripboard/internal/sheetcsv"
	"github.com/mmynk/tripboard/pkg/logging"
)

// Output formats.
const (
	formatTable = "table"
	formatCSV   = "csv"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	timeout time.Duration
	verbose bool
	format  string
}

func (o *options) httpClient() *http.Client {
	return &http.Client{Timeout: o.timeout}
}

// write renders rows as an aligned table or as CSV. The first row is the header.
func (o *options) write(w io.Writer, rows [][]string) error {
	switch o.format {
	case formatCSV:
		_, err := io.WriteString(w, sheetcsv.Write(rows))
		return err
	case formatTable:
		return writeTable(w, rows)
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", o.format, formatTable, formatCSV)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "tripctl",
		Short:         "Inspect trip itinerary sources and the shared ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(logging.NewHandler(cmd.ErrOrStderr(), level, logging.FormatText)))
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "HTTP timeout for remote sources")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVarP(&opts.format, "format", "o", formatTable, "Output format: table or csv")

	root.AddCommand(
		newScheduleCmd(opts),
		newCandidatesCmd(opts),
		newBalancesCmd(opts),
		newHashPasscodeCmd(),
	)
	return root
}

// envDefault returns the environment value for key, for use as a flag default.
func envDefault(key string) string {
	return os.Getenv(key)
}
