// Package inventory defines the data model shared by the MoySklad client and
// the reconciliation engine.
//
// It holds the immutable remote snapshots (Product, StockRecord), the locally
// tracked state (LocalEntity), and the pure helpers that derive local state
// from remote data:
//
//   - FormatPrice converts minor currency units into display strings.
//   - Classify derives the grouping category from a product's path name.
//   - BuildStockIndex joins a stock report onto product identities.
//
// All helpers are free of side effects so the reconciliation engine stays
// deterministic and testable without any host or network.
package inventory
