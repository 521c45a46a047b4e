package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lifetrack/internal/window"
)

func (a *App) newSummaryCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income, expense, balance and the running balance series",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.requireAuth()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := window.Parse(filter)
			if err != nil {
				return a.errorHandler.Handle("summarize", err)
			}

			summary, err := a.api.LedgerSummary(w)
			if err != nil {
				return a.errorHandler.Handle("summarize", err)
			}

			points, err := a.api.RunningBalance(w)
			if err != nil {
				return a.errorHandler.Handle("summarize", err)
			}

			prefix := a.config.Display.CurrencyPrefix
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Pemasukan:   %s\n", formatAmount(prefix, summary.TotalIncome))
			fmt.Fprintf(out, "Pengeluaran: %s\n", formatAmount(prefix, summary.TotalExpense))
			fmt.Fprintf(out, "Saldo:       %s\n", formatAmount(prefix, summary.Balance))

			if len(points) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Running balance:")
				for _, p := range points {
					fmt.Fprintf(out, "  %3d  %s\n", p.Position, formatAmount(prefix, p.Balance))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "all", "Filter: all, today, week, month")
	return cmd
}
