package cmd

import (
	"context"
	"fmt"

	"catalog-sync/core/config"
	"catalog-sync/core/logger"
	"catalog-sync/core/moysklad"
	"catalog-sync/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// stocksCmd runs one stock-only refresh and exits. It never creates or
// removes entities; on a fresh process the tracked set is empty, which makes
// this a connectivity check of the stock report endpoint.
var stocksCmd = &cobra.Command{
	Use:   "stocks",
	Short: "Run one stock-only refresh and exit",
	Long: `Authenticates against the MoySklad API, fetches the current stock report
and refreshes quantities on the tracked entity set. Entities are never created
or removed by this command.

Examples:
  # Refresh quantities and print the summary
  catalog-sync stocks`,
	RunE: runStocks,
}

func init() {
	RootCmd.AddCommand(stocksCmd)
}

func runStocks(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	client := moysklad.NewClient(cfg.MoySklad, l)
	if err := client.Authenticate(ctx); err != nil {
		return err
	}

	feature := catalog.NewFeature(true, client, l)
	summary, err := feature.Service().RefreshStocks(ctx)
	if err != nil {
		return err
	}

	l.Info("Stock refresh finished",
		zap.Int("refreshed", summary.Refreshed),
		zap.Int("unmatched", summary.Unmatched),
	)
	return nil
}
