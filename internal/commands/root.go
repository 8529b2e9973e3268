// Package commands wires the finhub CLI: report and ledger views over the
// finance-hub backend, Stripe invoice/quote actions, founder-hub notes and
// receipts, the authority queue, locally saved items, and the interactive
// desk.
package commands

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/finhub-dev/finhub/internal/api"
	"github.com/finhub-dev/finhub/internal/buildinfo"
	"github.com/finhub-dev/finhub/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "finhub",
		Short:   "Founder finance hub in the terminal",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFileName, "path to finhub.yaml")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newBooksCommand(&configPath))
	rootCmd.AddCommand(newInvoicesCommand(&configPath))
	rootCmd.AddCommand(newQuotesCommand(&configPath))
	rootCmd.AddCommand(newPulseCommand(&configPath))
	rootCmd.AddCommand(newAuthorityCommand(&configPath))
	rootCmd.AddCommand(newNotesCommand(&configPath))
	rootCmd.AddCommand(newReceiptsCommand(&configPath))
	rootCmd.AddCommand(newSavedCommand(&configPath))
	rootCmd.AddCommand(newDeskCommand(&configPath))

	return rootCmd
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s (run `finhub init` first): %w", path, err)
	}
	return cfg, nil
}

func newClient(cfg *config.Config) (*api.Client, error) {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	client, err := api.New(httpClient, cfg.Server.BaseURL, cfg.Server.Token)
	if err != nil {
		return nil, fmt.Errorf("configuring backend client: %w", err)
	}
	return client, nil
}

// clientFor loads the config at *path and builds a backend client from it.
// Most subcommands start here.
func clientFor(path *string) (*api.Client, *config.Config, error) {
	cfg, err := loadConfig(*path)
	if err != nil {
		return nil, nil, err
	}
	client, err := newClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}
