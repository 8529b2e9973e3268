package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finhub-dev/finhub/internal/render"
)

func newInvoicesCommand(configPath *string) *cobra.Command {
	invoicesCmd := &cobra.Command{
		Use:   "invoices",
		Short: "Stripe invoices",
	}

	invoicesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List invoices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			invoices, err := client.Invoices(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching invoices: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.InvoiceTable(invoices))
			return nil
		},
	})

	invoicesCmd.AddCommand(&cobra.Command{
		Use:   "finalize <id>",
		Short: "Finalize a draft invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			invoice, err := client.FinalizeInvoice(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("finalizing invoice %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Invoice %s is now %s\n", invoice.Number, invoice.Status)
			return nil
		},
	})

	invoicesCmd.AddCommand(&cobra.Command{
		Use:   "send <id>",
		Short: "Email an invoice to the customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			invoice, err := client.SendInvoice(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("sending invoice %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Invoice %s sent to %s\n", invoice.Number, invoice.Customer)
			return nil
		},
	})

	invoicesCmd.AddCommand(&cobra.Command{
		Use:   "void <id>",
		Short: "Void an open invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			invoice, err := client.VoidInvoice(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("voiding invoice %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Invoice %s is now %s\n", invoice.Number, invoice.Status)
			return nil
		},
	})

	return invoicesCmd
}

func newQuotesCommand(configPath *string) *cobra.Command {
	quotesCmd := &cobra.Command{
		Use:   "quotes",
		Short: "Stripe quotes",
	}

	quotesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List quotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			quotes, err := client.Quotes(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching quotes: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.QuoteTable(quotes))
			return nil
		},
	})

	quotesCmd.AddCommand(&cobra.Command{
		Use:   "accept <id>",
		Short: "Mark a quote accepted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			quote, err := client.AcceptQuote(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("accepting quote %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Quote %s is now %s\n", quote.Number, quote.Status)
			return nil
		},
	})

	quotesCmd.AddCommand(&cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel an open quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			quote, err := client.CancelQuote(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("canceling quote %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Quote %s is now %s\n", quote.Number, quote.Status)
			return nil
		},
	})

	var out string
	pdfCmd := &cobra.Command{
		Use:   "pdf <id>",
		Short: "Download a quote PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			data, err := client.QuotePDF(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("downloading quote PDF: %w", err)
			}

			path := out
			if path == "" {
				path = "quote-" + args[0] + ".pdf"
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", path, len(data))
			return nil
		},
	}
	pdfCmd.Flags().StringVar(&out, "out", "", "output file (default quote-<id>.pdf)")
	quotesCmd.AddCommand(pdfCmd)

	return quotesCmd
}
