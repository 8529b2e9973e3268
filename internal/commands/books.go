package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finhub-dev/finhub/internal/api"
	"github.com/finhub-dev/finhub/internal/coa"
	"github.com/finhub-dev/finhub/internal/render"
	"github.com/finhub-dev/finhub/internal/report"
)

func newBooksCommand(configPath *string) *cobra.Command {
	booksCmd := &cobra.Command{
		Use:   "books",
		Short: "QuickBooks reports and ledgers",
	}
	booksCmd.AddCommand(newBooksStatusCommand(configPath))
	booksCmd.AddCommand(newBooksPnlCommand(configPath))
	booksCmd.AddCommand(newBooksBalanceSheetCommand(configPath))
	booksCmd.AddCommand(newBooksCashFlowCommand(configPath))
	booksCmd.AddCommand(newBooksTrialBalanceCommand(configPath))
	booksCmd.AddCommand(newBooksAccountsCommand(configPath))
	booksCmd.AddCommand(newBooksJournalCommand(configPath))
	booksCmd.AddCommand(newBooksLedgerCommand(configPath))
	return booksCmd
}

func newBooksStatusCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show QuickBooks connection status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			status, err := client.QuickBooksStatus(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching status: %w", err)
			}
			if !status.Connected {
				fmt.Fprintln(cmd.OutOrStdout(), "QuickBooks: not connected")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "QuickBooks: connected to %s (last sync %s)\n",
				status.CompanyName, status.LastSyncAt.Format("2006-01-02 15:04"))
			return nil
		},
	}
}

func newBooksPnlCommand(configPath *string) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "pnl",
		Short: "Show the profit and loss report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			rep, err := client.ProfitAndLoss(cmd.Context(), start, end)
			if err != nil {
				return fmt.Errorf("fetching profit and loss: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.ReportTable(report.Flatten(rep)))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD)")
	return cmd
}

func newBooksBalanceSheetCommand(configPath *string) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Show the balance sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			rep, err := client.BalanceSheet(cmd.Context(), asOf)
			if err != nil {
				return fmt.Errorf("fetching balance sheet: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.ReportTable(report.Flatten(rep)))
			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "report date (YYYY-MM-DD)")
	return cmd
}

func newBooksCashFlowCommand(configPath *string) *cobra.Command {
	var start, end string
	var summary bool

	cmd := &cobra.Command{
		Use:   "cash-flow",
		Short: "Show the cash flow report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			rep, err := client.CashFlow(cmd.Context(), start, end)
			if err != nil {
				return fmt.Errorf("fetching cash flow: %w", err)
			}
			if summary {
				fmt.Fprint(cmd.OutOrStdout(), render.CashflowSummary(report.CashflowSections(rep)))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), render.ReportTable(report.Flatten(rep)))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&summary, "summary", false, "show only the three section totals")
	return cmd
}

func newBooksTrialBalanceCommand(configPath *string) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Show the trial balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			rep, err := client.TrialBalance(cmd.Context(), asOf)
			if err != nil {
				return fmt.Errorf("fetching trial balance: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.ReportTable(report.Flatten(rep)))
			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "report date (YYYY-MM-DD)")
	return cmd
}

func newBooksAccountsCommand(configPath *string) *cobra.Command {
	var accountType string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			svc, err := coa.Load(cmd.Context(), client)
			if err != nil {
				return err
			}

			accounts := svc.All()
			if accountType != "" {
				accounts = svc.ByType(accountType)
			}
			for _, a := range accounts {
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-30s %-20s %12s\n", a.ID, a.Name, a.Type, a.Balance.StringFixed(2))
			}
			if accountType != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "total: %s\n", svc.TotalBalance(accountType).StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&accountType, "type", "", "filter by account type")
	return cmd
}

func newBooksJournalCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "journal",
		Short: "List recent journal entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			entries, err := client.JournalEntries(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching journal entries: %w", err)
			}
			printJournal(cmd, entries)
			return nil
		},
	}
}

func printJournal(cmd *cobra.Command, entries []api.JournalEntry) {
	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n", e.ID, e.Date, e.Memo)
		for _, line := range e.Lines {
			fmt.Fprintf(cmd.OutOrStdout(), "    %-30s %10s %10s\n",
				line.Account, line.Debit.StringFixed(2), line.Credit.StringFixed(2))
		}
	}
}

func newBooksLedgerCommand(configPath *string) *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Show general ledger lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			rows, err := client.GeneralLedger(cmd.Context(), account)
			if err != nil {
				return fmt.Errorf("fetching general ledger: %w", err)
			}
			for _, row := range rows {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-30s %-40s %12s %12s\n",
					row.Date, row.Account, row.Description, row.Amount.StringFixed(2), row.Balance.StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "filter to one account")
	return cmd
}
