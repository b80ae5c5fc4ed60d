// Package patrimoine tracks a portfolio's value over time through
// discrete, user-confirmed snapshots rather than a replayed transaction
// ledger.
//
// Each snapshot records the market value of assets per platform on one
// calendar date. Platforms absent from a snapshot are carried forward from
// their most recent recording, producing a composite view of the whole
// portfolio at every date. On top of the resolved views, the package
// computes cash-flow-adjusted performance metrics (growth rate, Modified
// Dietz return, chained time-weighted return, CAGR), category allocations
// and rebalancing suggestions.
//
// All computations are pure and operate on data materialized in memory by
// the caller; the JSONL record file in this package is the reference way
// to persist and reload that data.
package patrimoine
