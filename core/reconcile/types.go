package reconcile

import (
	"context"

	"catalog-sync/core/inventory"
)

// Update pairs an existing entity with its fresh snapshot and the quantity
// looked up from the stock index. Quantity is nil when no stock record
// matched the product.
type Update struct {
	Entity   *inventory.LocalEntity
	Product  inventory.Product
	Quantity *float64
}

// StockUpdate is one entry of a stock-only refresh. Quantity nil marks a
// no-op: the entity had no matching stock record and is left unchanged.
type StockUpdate struct {
	Entity   *inventory.LocalEntity
	Quantity *float64
}

// Plan is the fully computed outcome of one reconciliation pass. It is built
// before any mutation is applied, so a failure while planning never leaves
// the store half-updated.
type Plan struct {
	ToCreate []*inventory.LocalEntity
	ToUpdate []Update
	ToRemove []string
	Summary  Summary
}

// Summary carries the aggregate counts of a full reconciliation pass.
type Summary struct {
	// Fetched is the number of products in the fetched catalog.
	Fetched int `json:"fetched"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Removed int `json:"removed"`
	// Unstocked counts fetched products with no matching stock record.
	Unstocked int `json:"unstocked"`
}

// StockSummary carries the aggregate counts of a stock-only refresh.
type StockSummary struct {
	// Refreshed counts entities whose quantity was updated.
	Refreshed int `json:"refreshed"`
	// Unmatched counts entities with no stock record, left unchanged.
	Unmatched int `json:"unmatched"`
}

// Registry is the host-side collaborator that materializes category
// containers and entity records. Implementations must be idempotent with
// respect to ids: EnsureDevice and CreateEntity may be called again for
// existing records, and RemoveEntity must be safe on unknown ids.
type Registry interface {
	EnsureDevice(ctx context.Context, category string) error
	CreateEntity(ctx context.Context, e *inventory.LocalEntity) error
	RemoveEntity(ctx context.Context, id string) error
}

// Store is the mutation surface of the tracked entity set. Only the apply
// paths of this package write through it.
type Store interface {
	Put(e *inventory.LocalEntity)
	Delete(id string)
}
