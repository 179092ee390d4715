// Package moysklad is the HTTP client for the MoySklad remap 1.2 API.
//
// It covers the three calls the sync engine needs: the token handshake, the
// assortment (product catalog) fetch and the current stock report. Responses
// are parsed with gjson so each catalog row can be carried opaquely alongside
// the typed fields the engine acts on.
//
// # Error taxonomy
//
//   - AuthError: the token request was rejected or the response lacked a
//     token. Fatal to startup; no retry or refresh is attempted.
//   - FetchError: a transport or timeout failure on any call. The current
//     reconciliation pass aborts and the tracked state is left untouched.
//   - A non-success catalog response is NOT an error: it degrades to an
//     empty collection, which downstream reconciliation treats the same as
//     an empty catalog. Callers needing a harder policy must check the
//     collection size themselves.
//
// The stock report endpoint returns either a bare JSON array or an object
// wrapping a "rows" array; both shapes normalize to the same record slice.
package moysklad
