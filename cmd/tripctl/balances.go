package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmynk/tripboard/internal/calculator"
	"github.com/mmynk/tripboard/internal/ledger"
)

func newBalancesCmd(opts *options) *cobra.Command {
	var (
		url       string
		transfers bool
	)

	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Settle the shared ledger and print who pays and who receives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ledger.NewClient(url, opts.httpClient()).Load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := [][]string{{"name", "paid", "net", "direction"}}
			for _, b := range calculator.SortForDisplay(st.Balances()) {
				rows = append(rows, []string{
					b.Name,
					calculator.FormatAmount(b.Paid),
					calculator.FormatAmount(b.Net),
					string(calculator.DirectionOf(b.Net)),
				})
			}
			if err := opts.write(out, rows); err != nil {
				return err
			}

			if opts.format == formatTable {
				fmt.Fprintf(out, "\ntotal: %s\n", calculator.FormatAmount(calculator.Total(st.Expenses)))
			}
			if transfers {
				return printTransfers(out, opts, st)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "ledger-url", envDefault("LEDGER_URL"), "Ledger endpoint (spreadsheet script or a tripboard /ledger URL)")
	cmd.Flags().BoolVar(&transfers, "transfers", false, "Also print suggested transfers")
	return cmd
}

func printTransfers(w io.Writer, opts *options, st ledger.State) error {
	rows := [][]string{{"from", "to", "amount"}}
	for _, t := range calculator.SuggestTransfers(st.Balances()) {
		rows = append(rows, []string{t.From, t.To, calculator.FormatAmount(t.Amount)})
	}
	fmt.Fprintln(w)
	return opts.write(w, rows)
}
