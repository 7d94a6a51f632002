// Package stats computes the four descriptive summaries of a trip table:
// popular travel times, popular stations, trip durations and rider
// demographics.
//
// Every "most frequent" value uses the same deterministic rule: the
// highest count wins, and among equal counts the value that appears first
// in table order wins. Distributions are ordered by count, descending,
// with ties in first-appearance order.
//
// An empty table is never summarised; every routine returns an
// *EmptyDatasetError for it.
//
// The routines only read the table, so they may be run concurrently on the
// same table.
package stats
