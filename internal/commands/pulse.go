package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finhub-dev/finhub/internal/render"
)

func newPulseCommand(configPath *string) *cobra.Command {
	pulseCmd := &cobra.Command{
		Use:   "pulse",
		Short: "Finance snapshot, timeline and lifecycle",
	}

	pulseCmd.AddCommand(&cobra.Command{
		Use:   "snapshot",
		Short: "Show the headline finance numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			snap, err := client.Snapshot(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching snapshot: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.SnapshotCard(snap))
			return nil
		},
	})

	pulseCmd.AddCommand(&cobra.Command{
		Use:   "timeline",
		Short: "Show the founder timeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			events, err := client.Timeline(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching timeline: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), render.TimelineList(events))
			return nil
		},
	})

	pulseCmd.AddCommand(&cobra.Command{
		Use:   "lifecycle",
		Short: "Show the business lifecycle stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := clientFor(configPath)
			if err != nil {
				return err
			}
			lc, err := client.LifecycleStage(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching lifecycle: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stage: %s\n%s\n", lc.Stage, lc.Description)
			for _, m := range lc.Milestones {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", m)
			}
			return nil
		},
	})

	return pulseCmd
}
