// Package reconcile projects a freshly fetched product catalog onto the
// locally tracked entity set.
//
// The engine is split into a pure planning step and an explicit apply step:
//
//  1. Reconcile compares the existing entities with the fetched products and
//     the stock index, and produces a Plan (create / update / remove). No
//     state is touched while the plan is computed.
//  2. Apply executes the plan against the host registry and the tracked
//     entity store. Creations are grouped by category so the category
//     container exists before its member entities.
//
// RefreshStock is the quantity-only path: it never creates or removes
// entities, it only updates quantities on entities with a matching stock
// record.
//
// # Hazards
//
// An empty product collection is indistinguishable from "nothing left to
// track" and removes every tracked entity. The engine preserves that
// behavior; callers that want a different policy must check the collection
// size before reconciling.
package reconcile
