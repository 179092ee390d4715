package catalog

import (
	"context"
	"sync"

	"catalog-sync/core/inventory"
	"catalog-sync/core/moysklad"
	"catalog-sync/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service orchestrates reconciliation passes: fetch, plan, apply.
//
// Two layers of protection guard the tracked state. The mutex serializes
// passes of any kind, so a full reconciliation never interleaves with a
// stock refresh; the singleflight group coalesces concurrent identical
// triggers so a second button press while a pass is in flight shares its
// result instead of queueing a duplicate pass behind it.
type Service struct {
	client   moysklad.Client
	store    *Store
	registry reconcile.Registry
	logger   *zap.Logger

	mu     sync.Mutex
	flight singleflight.Group
}

// NewService creates a catalog sync service.
func NewService(client moysklad.Client, store *Store, registry reconcile.Registry, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		store:    store,
		registry: registry,
		logger:   logger,
	}
}

// SyncAll runs one full reconciliation pass and returns its summary.
// Concurrent calls share a single pass.
//
// The pass runs on a context detached from the trigger's cancellation: the
// result may be shared by coalesced triggers, so the first caller hanging up
// must not abort the pass for everyone else.
func (s *Service) SyncAll(ctx context.Context) (reconcile.Summary, error) {
	passCtx := context.WithoutCancel(ctx)
	v, err, shared := s.flight.Do("full", func() (any, error) {
		return s.syncAll(passCtx)
	})
	if err != nil {
		return reconcile.Summary{}, err
	}
	if shared {
		s.logger.Debug("Full sync trigger coalesced with in-flight pass")
	}
	return v.(reconcile.Summary), nil
}

func (s *Service) syncAll(ctx context.Context) (reconcile.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The two fetches are independent; load them concurrently.
	var (
		products []inventory.Product
		stocks   []inventory.StockRecord
		perr     error
		serr     error
		wg       sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		products, perr = s.client.FetchProducts(ctx)
	}()
	go func() {
		defer wg.Done()
		stocks, serr = s.client.FetchStocks(ctx)
	}()
	wg.Wait()

	// A fetch failure aborts before any mutation; the store stays untouched.
	if perr != nil {
		return reconcile.Summary{}, perr
	}
	if serr != nil {
		return reconcile.Summary{}, serr
	}

	idx := inventory.BuildStockIndex(stocks)
	plan := reconcile.Reconcile(s.store.Snapshot(), products, idx)
	if err := reconcile.Apply(ctx, plan, s.registry, s.store); err != nil {
		return reconcile.Summary{}, err
	}

	s.logger.Info("Full reconciliation applied",
		zap.Int("fetched", plan.Summary.Fetched),
		zap.Int("created", plan.Summary.Created),
		zap.Int("updated", plan.Summary.Updated),
		zap.Int("removed", plan.Summary.Removed),
		zap.Int("unstocked", plan.Summary.Unstocked),
	)
	return plan.Summary, nil
}

// RefreshStocks runs one stock-only refresh and returns its summary. It never
// creates or removes entities. Concurrent calls share a single pass.
func (s *Service) RefreshStocks(ctx context.Context) (reconcile.StockSummary, error) {
	passCtx := context.WithoutCancel(ctx)
	v, err, shared := s.flight.Do("stocks", func() (any, error) {
		return s.refreshStocks(passCtx)
	})
	if err != nil {
		return reconcile.StockSummary{}, err
	}
	if shared {
		s.logger.Debug("Stock refresh trigger coalesced with in-flight pass")
	}
	return v.(reconcile.StockSummary), nil
}

func (s *Service) refreshStocks(ctx context.Context) (reconcile.StockSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stocks, err := s.client.FetchStocks(ctx)
	if err != nil {
		return reconcile.StockSummary{}, err
	}

	idx := inventory.BuildStockIndex(stocks)
	updates := reconcile.RefreshStock(s.store.Snapshot(), idx)
	applied := reconcile.ApplyStock(updates, s.store)

	summary := reconcile.StockSummary{
		Refreshed: applied,
		Unmatched: len(updates) - applied,
	}
	s.logger.Info("Stock refresh applied",
		zap.Int("refreshed", summary.Refreshed),
		zap.Int("unmatched", summary.Unmatched),
	)
	return summary, nil
}

// Entities returns the tracked entities, sorted by id.
func (s *Service) Entities() []inventory.LocalEntity {
	return s.store.GetAll()
}

// Entity returns one tracked entity by id.
func (s *Service) Entity(id string) (inventory.LocalEntity, bool) {
	return s.store.Get(id)
}
