package commands

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/finhub-dev/finhub/internal/config"
	"github.com/finhub-dev/finhub/internal/importer"
	"github.com/finhub-dev/finhub/internal/notes"
	"github.com/finhub-dev/finhub/internal/render"
	"github.com/finhub-dev/finhub/internal/supabase"
)

func notesService(cfg *config.Config) (*notes.Service, error) {
	if cfg.Supabase.URL == "" {
		return nil, fmt.Errorf("supabase is not configured; set supabase.url in %s", config.DefaultFileName)
	}
	db, err := supabase.New(&http.Client{Timeout: 15 * time.Second}, cfg.Supabase.URL, cfg.Supabase.AnonKey)
	if err != nil {
		return nil, fmt.Errorf("configuring supabase client: %w", err)
	}
	return notes.NewService(db), nil
}

func notesServiceFor(configPath *string) (*notes.Service, error) {
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return nil, err
	}
	return notesService(cfg)
}

func newNotesCommand(configPath *string) *cobra.Command {
	notesCmd := &cobra.Command{
		Use:   "notes",
		Short: "Founder-hub notes",
	}

	notesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List notes, pinned first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := notesServiceFor(configPath)
			if err != nil {
				return err
			}
			list, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.NoteList(list))
			return nil
		},
	})

	var pinned bool
	var body string
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := notesServiceFor(configPath)
			if err != nil {
				return err
			}
			note, err := svc.Add(cmd.Context(), strings.Join(args, " "), body, pinned)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added note %s\n", note.ID)
			return nil
		},
	}
	addCmd.Flags().BoolVar(&pinned, "pin", false, "pin the note")
	addCmd.Flags().StringVar(&body, "body", "", "note body")
	notesCmd.AddCommand(addCmd)

	notesCmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := notesServiceFor(configPath)
			if err != nil {
				return err
			}
			if err := svc.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted note %s\n", args[0])
			return nil
		},
	})

	return notesCmd
}

func newReceiptsCommand(configPath *string) *cobra.Command {
	receiptsCmd := &cobra.Command{
		Use:   "receipts",
		Short: "Stored receipts",
	}

	receiptsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List receipts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := notesServiceFor(configPath)
			if err != nil {
				return err
			}
			receipts, err := svc.Receipts(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.ReceiptTable(receipts))
			return nil
		},
	})

	var format string
	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a receipts CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown import format %q", format)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			receipts, err := parser.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}
			if len(receipts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to import.")
				return nil
			}

			svc, err := notesServiceFor(configPath)
			if err != nil {
				return err
			}
			created, err := svc.AddReceipts(cmd.Context(), receipts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d receipts\n", len(created))
			return nil
		},
	}
	importCmd.Flags().StringVar(&format, "format", "generic", "export format")
	receiptsCmd.AddCommand(importCmd)

	return receiptsCmd
}
