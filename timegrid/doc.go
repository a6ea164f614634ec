// Package timegrid builds the uniform time grids every resampling operation
// targets, and parses the magnitude+unit frequency strings that define them.
//
// What:
//
//   - Frequency is a positive duration written as magnitude+unit: "30s",
//     "10min", "1h", "2d". Days are exact 24-hour spans (no calendar math).
//   - Grid materializes the evenly spaced timestamps start, start+f, … and
//     is inclusive of both endpoints: the last point is the largest
//     start+k·f that does not exceed end.
//
// Why:
//
//   - Resampling and combining need one shared, strictly increasing,
//     constant-step timeline; deriving it in one place keeps the
//     inclusive-bounds convention from drifting between call sites.
//
// Errors:
//
//   - ErrBadFrequency: empty, unparseable, non-positive, or unknown unit.
//   - ErrGridBounds: grid end precedes its start.
//
// Complexity: Parse O(len), Grid O(points).
package timegrid
