package commands

import (
	"github.com/spf13/cobra"

	"github.com/finhub-dev/finhub/internal/app"
)

func newDeskCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "desk",
		Short: "Open the interactive agent desk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return app.Run(cfg)
		},
	}
}
