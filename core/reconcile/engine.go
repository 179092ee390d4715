package reconcile

import (
	"sort"

	"catalog-sync/core/inventory"
)

// Reconcile computes the plan that brings the tracked entity set in line with
// the fetched catalog. It is pure: existing entities are not mutated and no
// collaborator is called.
//
// Every fetched product either updates the entity with the same id or creates
// a new one; entities whose id no longer appears in the catalog are scheduled
// for removal. An empty catalog therefore removes everything (see the package
// documentation).
func Reconcile(existing map[string]*inventory.LocalEntity, products []inventory.Product, idx inventory.StockIndex) *Plan {
	plan := &Plan{}
	seen := make(map[string]struct{}, len(products))
	unstocked := 0

	for _, p := range products {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}

		var quantity *float64
		if v, ok := idx.Lookup(p.ID); ok {
			q := v
			quantity = &q
		} else {
			unstocked++
		}

		if e, ok := existing[p.ID]; ok {
			plan.ToUpdate = append(plan.ToUpdate, Update{Entity: e, Product: p, Quantity: quantity})
			continue
		}
		plan.ToCreate = append(plan.ToCreate, inventory.NewLocalEntity(p, inventory.Classify(p), quantity))
	}

	for id := range existing {
		if _, ok := seen[id]; !ok {
			plan.ToRemove = append(plan.ToRemove, id)
		}
	}
	// Removal order carries no meaning; sorted for stable logs and tests.
	sort.Strings(plan.ToRemove)

	plan.Summary = Summary{
		Fetched:   len(seen),
		Created:   len(plan.ToCreate),
		Updated:   len(plan.ToUpdate),
		Removed:   len(plan.ToRemove),
		Unstocked: unstocked,
	}
	return plan
}

// RefreshStock computes the quantity-only updates for the existing entities.
// Entities without a matching stock record are included with a nil quantity
// so callers can observe the no-ops; they are never treated as errors.
func RefreshStock(existing map[string]*inventory.LocalEntity, idx inventory.StockIndex) []StockUpdate {
	ids := make([]string, 0, len(existing))
	for id := range existing {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	updates := make([]StockUpdate, 0, len(ids))
	for _, id := range ids {
		u := StockUpdate{Entity: existing[id]}
		if v, ok := idx.Lookup(id); ok {
			q := v
			u.Quantity = &q
		}
		updates = append(updates, u)
	}
	return updates
}
