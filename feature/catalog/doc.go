// Package catalog is the catalog sync feature: it mirrors the remote MoySklad
// product catalog and stock report into a locally tracked entity set.
//
// The feature wires four collaborators together:
//
//   - the MoySklad client (core/moysklad) fetching products and stocks,
//   - the reconciliation engine (core/reconcile) computing and applying plans,
//   - the tracked entity Store owned by this feature,
//   - a host Registry materializing category containers and entity records.
//
// Reconciliation only runs when triggered: either through the HTTP endpoints
// registered by the Handler (POST /catalog/sync, POST /catalog/sync/stocks)
// or through the one-shot CLI commands. At most one pass runs at a time per
// Service; concurrent identical triggers share the in-flight pass instead of
// racing.
package catalog
