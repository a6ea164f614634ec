// Package resample rebuilds measurement streams onto uniform time grids and
// merges heterogeneous streams into one aligned dataset.
//
// What:
//
//   - IntervalFraction — per source interval, the fraction of its duration
//     falling inside a reference interval, in [0, 1]. The weighting kernel
//     for interval-indexed resampling.
//   - Resample — one stream onto a uniform grid at a chosen Frequency and
//     Aggregation. Instant records land in the half-open bucket
//     [g, g+f) containing their timestamp; interval records contribute
//     their value weighted by bucket overlap.
//   - Combine — many streams onto a single union-spanning grid, one column
//     per stream, outer-joined with no duplicate timestamps.
//
// Conventions (deliberate, documented choices):
//
//   - Buckets are half-open [g, g+f) in BOTH branches. Upstream sources mix
//     closed and open bounds between branches; one consistent convention
//     replaces that.
//   - Empty buckets yield 0, not a missing marker. This preserves
//     compatibility with existing pipelines but makes "no data"
//     indistinguishable from an observed zero — callers beware.
//   - Combine's column order is sorted by stream name for determinism.
//
// Errors:
//
//   - ErrZeroDurationInterval: a source interval with zero duration would
//     divide by zero in the fraction kernel; rejected as invalid input.
//   - ErrLengthMismatch: parallel start/end slices disagree in length.
//   - ErrUnknownColumn: the requested column is not the stream's quantity.
//   - ErrBadAggregation: aggregation outside {sum, mean, max, min}.
//   - ErrNoStreams: Combine over an empty input set.
//   - ErrNoDefaultAggregation: Combine met a stream name with no canonical
//     rule and no per-call override.
//
// All schema and parameter errors surface before any bucket is computed;
// there are no partial results.
//
// Complexity: Resample is O(n log n + b) for instant streams (sort + sweep)
// and O(n·b) worst case for interval streams (n records, b buckets).
package resample
