package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finhub-dev/finhub/internal/model"
	"github.com/finhub-dev/finhub/internal/render"
	"github.com/finhub-dev/finhub/internal/saved"
)

func savedServiceFor(configPath *string) (*saved.Service, error) {
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return nil, err
	}
	return saved.NewService(cfg.Data.Dir), nil
}

func newSavedCommand(configPath *string) *cobra.Command {
	savedCmd := &cobra.Command{
		Use:   "saved",
		Short: "Locally saved items",
	}

	savedCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := savedServiceFor(configPath)
			if err != nil {
				return err
			}
			items, err := svc.List()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.SavedList(items))
			return nil
		},
	})

	var kind, ref, note string
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Save an item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := savedServiceFor(configPath)
			if err != nil {
				return err
			}
			item, err := svc.Add(model.SavedKind(kind), strings.Join(args, " "), ref, note)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s as %s\n", item.Title, item.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&kind, "kind", string(model.SavedLink), "item kind (report, invoice, quote, note, link)")
	addCmd.Flags().StringVar(&ref, "ref", "", "reference (URL, invoice ID, report name)")
	addCmd.Flags().StringVar(&note, "note", "", "free-form note")
	savedCmd.AddCommand(addCmd)

	savedCmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a saved item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := savedServiceFor(configPath)
			if err != nil {
				return err
			}
			if err := svc.Remove(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	})

	return savedCmd
}
