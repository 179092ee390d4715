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

var listEntities bool

// syncCmd runs one full reconciliation pass against a fresh tracked set and
// exits. Useful as a connectivity check and for inspecting what the server
// would track.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one full catalog reconciliation and exit",
	Long: `Authenticates against the MoySklad API, fetches the product catalog and
stock report, reconciles them into a fresh tracked entity set and prints the
resulting summary.

Examples:
  # Summary only
  catalog-sync sync

  # Also list the tracked entities
  catalog-sync sync --entities`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&listEntities, "entities", false, "List the tracked entities after the pass")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
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
	summary, err := feature.Service().SyncAll(ctx)
	if err != nil {
		return err
	}

	l.Info("Reconciliation finished",
		zap.Int("fetched", summary.Fetched),
		zap.Int("created", summary.Created),
		zap.Int("unstocked", summary.Unstocked),
	)

	if listEntities {
		for _, e := range feature.Service().Entities() {
			quantity := "-"
			if e.Quantity != nil {
				quantity = fmt.Sprintf("%g", *e.Quantity)
			}
			fmt.Printf("%s\t%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Category, e.DisplayPrice, quantity)
		}
	}
	return nil
}
