/*
Package analytics turns payment and customer snapshots into dashboard view models.

Every function in this package is a pure transformation: it never performs I/O,
never mutates its inputs and always returns freshly allocated slices, so results
can be memoised or computed concurrently against independent snapshots.

Components:
  - Query: search, categorical filter and pagination for any record type
  - CalculateMetrics / Overview: revenue, success counts and conversion rate
  - StatusBreakdown: payment counts per status for breakdown charts
  - RevenueSeries / InWindow: dense per-day revenue over a 7, 30 or 90 day window
  - TopCustomers / RecentPayments: stable top-N rankings

Malformed data never produces an error. Missing customer snapshots and empty
fields never match a search, negative amounts count as zero and out of range
parameters fall back to documented defaults.

Calendar days are always computed in UTC.
*/
package analytics
