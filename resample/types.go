// This file declares Aggregation rules, Resample options, the aligned
// Dataset product, and the package's sentinel errors.
package resample

import (
	"errors"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/luxrhythm/circadian/stream"
)

// Sentinel errors for resampling and combining.
var (
	// ErrZeroDurationInterval indicates a source interval whose duration is zero;
	// the fraction kernel would divide by zero.
	ErrZeroDurationInterval = errors.New("resample: zero-duration source interval")

	// ErrLengthMismatch indicates parallel start/end slices of different lengths.
	ErrLengthMismatch = errors.New("resample: start/end slices differ in length")

	// ErrUnknownColumn indicates the requested column is not the stream's quantity.
	ErrUnknownColumn = errors.New("resample: column not present in stream")

	// ErrBadAggregation indicates an aggregation outside {sum, mean, max, min}.
	ErrBadAggregation = errors.New("resample: aggregation must be one of sum, mean, max, min")

	// ErrNoStreams indicates Combine was called with no input streams.
	ErrNoStreams = errors.New("resample: no streams to combine")

	// ErrNoDefaultAggregation indicates a stream name with no canonical rule
	// and no per-call override.
	ErrNoDefaultAggregation = errors.New("resample: no aggregation rule for stream")
)

// Aggregation is the reduction applied to the values landing in one bucket.
type Aggregation int

const (
	// Sum totals the bucket; canonical for cumulative counts (steps).
	Sum Aggregation = iota + 1

	// Mean averages the bucket; canonical for continuous measures
	// (heartrate, light_estimate, activity).
	Mean

	// Max keeps the bucket maximum; canonical for binary state (wake).
	Max

	// Min keeps the bucket minimum.
	Min
)

// ParseAggregation maps the wire names sum/mean/max/min onto Aggregation.
func ParseAggregation(name string) (Aggregation, error) {
	switch name {
	case "sum":
		return Sum, nil
	case "mean":
		return Mean, nil
	case "max":
		return Max, nil
	case "min":
		return Min, nil
	default:
		return 0, ErrBadAggregation
	}
}

// String implements fmt.Stringer.
func (a Aggregation) String() string {
	switch a {
	case Sum:
		return "sum"
	case Mean:
		return "mean"
	case Max:
		return "max"
	case Min:
		return "min"
	default:
		return "invalid"
	}
}

// Validate reports ErrBadAggregation for values outside the enum.
func (a Aggregation) Validate() error {
	if a < Sum || a > Min {
		return ErrBadAggregation
	}

	return nil
}

// reduce collapses a non-empty bucket. Callers guarantee len(vals) > 0;
// empty buckets are zero-filled before reduce is ever consulted.
func (a Aggregation) reduce(vals []float64) float64 {
	switch a {
	case Mean:
		return stat.Mean(vals, nil)
	case Max:
		return floats.Max(vals)
	case Min:
		return floats.Min(vals)
	default:
		return floats.Sum(vals)
	}
}

// defaultAggregation is the canonical rule per wearable quantity
// (cumulative counts sum, binary state maxes, continuous measures average).
var defaultAggregation = map[string]Aggregation{
	stream.Steps:         Sum,
	stream.Wake:          Max,
	stream.Heartrate:     Mean,
	stream.LightEstimate: Mean,
	stream.Activity:      Mean,
}

// DefaultAggregation returns the canonical rule for a wearable quantity
// name, or ErrNoDefaultAggregation for names outside the canon.
func DefaultAggregation(name string) (Aggregation, error) {
	agg, ok := defaultAggregation[name]
	if !ok {
		return 0, ErrNoDefaultAggregation
	}

	return agg, nil
}

// Options bound the target grid. Zero times mean "derive from the data":
// min/max timestamp for instant streams, min start / max end for interval
// streams, inclusive of both endpoints.
type Options struct {
	// Start is the first grid point; zero derives it from the data.
	Start time.Time

	// End caps the grid; zero derives it from the data.
	End time.Time
}

// Dataset is the aligned product of Combine: one shared uniform grid and one
// value column per input stream. Missing coverage is zero-filled (see the
// package notes on the zero-fill footgun).
type Dataset struct {
	// Times is the shared uniform grid, strictly increasing, no duplicates.
	Times []time.Time

	// Names lists the columns in sorted order for deterministic iteration.
	Names []string

	// Columns maps stream name to its aligned values, parallel to Times.
	Columns map[string][]float64

	// Meta carries provenance for the combined product.
	Meta map[string]string
}

// Column returns the named column and whether it exists.
func (d *Dataset) Column(name string) ([]float64, bool) {
	vals, ok := d.Columns[name]

	return vals, ok
}

// Len returns the number of grid points.
func (d *Dataset) Len() int { return len(d.Times) }
