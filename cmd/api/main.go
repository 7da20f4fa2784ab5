package main

import (
	"context"
	"fmt"
	"iposcreener/api"
	"iposcreener/cmd"
	"iposcreener/internal/domain"
	"iposcreener/internal/logger"
	"iposcreener/internal/util"
	"os"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var (
	apiHandler *api.ApiHandler
	secrets    *util.Secrets
)

var rootCmd = &cobra.Command{
	Use:   "iposcreener",
	Short: "IPO risk screening api and jobs",
	Long:  "Analyzes IPO filings and sentiment, flags offers that look worse than their sector, and serves the screening dashboard.",
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		handler, s, err := cmd.InitializeDependencies()
		if err != nil {
			return fmt.Errorf("failed to initialize dependencies: %w", err)
		}
		apiHandler = handler
		secrets = s
		return nil
	},
	PersistentPostRun: func(c *cobra.Command, args []string) {
		if apiHandler != nil {
			cmd.CloseDependencies(apiHandler)
		}
	},
}

// newJobContext carries the same logger and profile a request would
func newJobContext() context.Context {
	profile, _ := domain.NewProfile()
	ctx := logger.WithLogger(context.Background(), apiHandler.Logger)
	return domain.NewCtxWithProfile(ctx, profile)
}

func main() {
	rootCmd.AddCommand(serveCmd, reportCmd, alertCmd, recomputeBaselinesCmd, importBaselinesCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
