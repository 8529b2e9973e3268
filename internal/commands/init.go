package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finhub-dev/finhub/internal/config"
)

func newInitCommand() *cobra.Command {
	var serverURL string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter finhub.yaml and data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, serverURL)
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "http://localhost:3001", "finance-hub backend URL")

	return cmd
}

func runInit(cmd *cobra.Command, dir, serverURL string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	configFile := filepath.Join(dir, config.DefaultFileName)
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("%s already exists", configFile)
	}

	cfg := config.Default(serverURL)
	if err := config.Save(configFile, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Local state lives under the data dir: saved items and the run log.
	dataDir := cfg.Data.Dir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(dir, dataDir)
	}
	for _, d := range []string{"saved", "logs"} {
		if err := os.MkdirAll(filepath.Join(dataDir, d), 0o755); err != nil {
			return fmt.Errorf("creating data directory %s: %w", d, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized finhub at %s\n", dir)
	return nil
}
