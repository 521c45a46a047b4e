package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"lifetrack/internal/dates"
	"lifetrack/internal/domain"
	"lifetrack/internal/window"
)

func (a *App) newMoneyCommand() *cobra.Command {
	moneyCmd := &cobra.Command{
		Use:   "money",
		Short: "Manage money entries",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.requireAuth()
		},
	}

	moneyCmd.AddCommand(
		a.newMoneyAddCommand(),
		a.newMoneyListCommand(),
		a.newMoneyRemoveCommand(),
	)
	return moneyCmd
}

// parseEntryKind maps the CLI-facing kind names onto the stored type strings.
func parseEntryKind(kind string) (domain.EntryType, error) {
	switch kind {
	case "income", string(domain.EntryIncome):
		return domain.EntryIncome, nil
	case "expense", string(domain.EntryExpense):
		return domain.EntryExpense, nil
	default:
		return "", fmt.Errorf("unknown entry kind %q: use income or expense", kind)
	}
}

func (a *App) newMoneyAddCommand() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "add <income|expense> <amount> <description>",
		Short: "Record an income or expense entry",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseEntryKind(args[0])
			if err != nil {
				return err
			}

			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			occurredOn := dates.Today()
			if date != "" {
				parsed, err := dates.Parse(date)
				if err != nil {
					return fmt.Errorf("invalid --date %q: use YYYY-MM-DD", date)
				}
				occurredOn = parsed
			}

			tx, err := a.api.AddTransaction(kind, amount, args[2], occurredOn)
			if err != nil {
				return a.errorHandler.Handle("add entry", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s %s: %s (%s)\n",
				tx.Type, formatAmount(a.config.Display.CurrencyPrefix, tx.Amount), tx.Description, tx.OccurredOn)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Entry date (YYYY-MM-DD, default today)")
	return cmd
}

func (a *App) newMoneyListCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List money entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := window.Parse(filter)
			if err != nil {
				return a.errorHandler.Handle("list entries", err)
			}

			entries, err := a.api.ListTransactions(w)
			if err != nil {
				return a.errorHandler.Handle("list entries", err)
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries found.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDATE\tTYPE\tAMOUNT\tDESCRIPTION")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					e.ID, e.OccurredOn, e.Type, formatAmount(a.config.Display.CurrencyPrefix, e.Amount), e.Description)
			}
			tw.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "all", "Filter: all, today, week, month")
	return cmd
}

func (a *App) newMoneyRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a money entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.api.DeleteTransaction(args[0]); err != nil {
				return a.errorHandler.Handle("delete entry", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s.\n", args[0])
			return nil
		},
	}
}
