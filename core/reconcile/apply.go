package reconcile

import (
	"context"
	"fmt"
	"sort"

	"catalog-sync/core/inventory"
)

// Apply executes a plan against the registry and the store. Creations are
// grouped by category and the category container is materialized before any
// member entity, matching how the host groups products under shared devices.
// Updates re-derive the display price from the new snapshot but never the
// category; removals are independent of each other.
func Apply(ctx context.Context, plan *Plan, reg Registry, store Store) error {
	byCategory := make(map[string][]*inventory.LocalEntity)
	categories := make([]string, 0)
	for _, e := range plan.ToCreate {
		if _, ok := byCategory[e.Category]; !ok {
			categories = append(categories, e.Category)
		}
		byCategory[e.Category] = append(byCategory[e.Category], e)
	}
	sort.Strings(categories)

	for _, category := range categories {
		if err := reg.EnsureDevice(ctx, category); err != nil {
			return fmt.Errorf("ensure device %q: %w", category, err)
		}
		for _, e := range byCategory[category] {
			if err := reg.CreateEntity(ctx, e); err != nil {
				return fmt.Errorf("create entity %s: %w", e.ID, err)
			}
			store.Put(e)
		}
	}

	for _, u := range plan.ToUpdate {
		u.Entity.UpdateItem(u.Product, u.Quantity)
		store.Put(u.Entity)
	}

	for _, id := range plan.ToRemove {
		if err := reg.RemoveEntity(ctx, id); err != nil {
			return fmt.Errorf("remove entity %s: %w", id, err)
		}
		store.Delete(id)
	}
	return nil
}

// ApplyStock writes the matched stock updates through the store and returns
// how many were applied. Entries with a nil quantity are skipped.
func ApplyStock(updates []StockUpdate, store Store) int {
	applied := 0
	for _, u := range updates {
		if u.Quantity == nil {
			continue
		}
		u.Entity.UpdateStock(*u.Quantity)
		store.Put(u.Entity)
		applied++
	}
	return applied
}
