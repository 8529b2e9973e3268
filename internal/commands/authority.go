package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finhub-dev/finhub/internal/render"
)

func newAuthorityCommand(configPath *string) *cobra.Command {
	authorityCmd := &cobra.Command{
		Use:   "authority",
		Short: "Review agent actions awaiting sign-off",
	}

	authorityCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List pending items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			items, err := client.AuthorityQueue(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching authority queue: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.AuthorityTable(items))
			return nil
		},
	})

	authorityCmd.AddCommand(newAuthorityResolveCommand(configPath, "approve", "Approve a pending item", true))
	authorityCmd.AddCommand(newAuthorityResolveCommand(configPath, "reject", "Reject a pending item", false))

	return authorityCmd
}

func newAuthorityResolveCommand(configPath *string, verb, short string, approve bool) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   verb + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			item, err := client.ResolveAuthorityItem(cmd.Context(), args[0], approve, note)
			if err != nil {
				return fmt.Errorf("resolving item %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Item %s is now %s\n", item.ID, item.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "note attached to the decision")
	return cmd
}
