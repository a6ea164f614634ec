package resample

import (
	"sort"
	"time"

	"github.com/luxrhythm/circadian/stream"
	"github.com/luxrhythm/circadian/timegrid"
)

// Resample — rebuild one stream onto a uniform grid
//
// Description:
//
//	Constructs the uniform grid between the requested (or data-derived)
//	bounds at the given frequency, then fills one value per grid point g
//	from the records intersecting the half-open bucket [g, g+f):
//
//	  - Instant streams: records whose timestamp lies in [g, g+f) are
//	    reduced with agg.
//	  - Interval streams: records whose span intersects [g, g+f) contribute
//	    value·fraction, where fraction is IntervalFraction's overlap weight;
//	    the weighted values are reduced with agg.
//
//	Buckets with no contributing records are 0 — not a missing marker. A
//	genuine zero measurement and an empty bucket are indistinguishable in
//	the output; callers that care must track coverage separately.
//
// Inputs:
//   - s:      the source stream (never mutated).
//   - column: the quantity to resample; must equal s.Name.
//   - freq:   grid step (see timegrid.Parse).
//   - agg:    reduction rule for each bucket.
//   - opts:   optional explicit grid bounds; nil or zero fields derive the
//     bounds from the data (min/max timestamp, or min start / max end).
//
// Returns:
//   - a new instant-indexed Stream whose Times are exactly the grid and
//     whose Values hold one aggregate per grid point, no gaps.
//
// Errors (eager, before any bucket work):
//   - stream schema errors from s.Validate()
//   - ErrUnknownColumn, ErrBadAggregation, timegrid.ErrBadFrequency,
//     timegrid.ErrGridBounds.
//
// Complexity: O(n log n + b) instant, O(n·b) interval.
func Resample(s *stream.Stream, column string, freq timegrid.Frequency, agg Aggregation, opts *Options) (*stream.Stream, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if column != s.Name {
		return nil, ErrUnknownColumn
	}
	if err := agg.Validate(); err != nil {
		return nil, err
	}
	if err := freq.Validate(); err != nil {
		return nil, err
	}

	start, end := s.Bounds()
	if opts != nil {
		if !opts.Start.IsZero() {
			start = opts.Start
		}
		if !opts.End.IsZero() {
			end = opts.End
		}
	}
	grid, err := timegrid.Grid(start, end, freq)
	if err != nil {
		return nil, err
	}

	var values []float64
	if s.Shape() == stream.Instant {
		values = resampleInstant(s, grid, freq, agg)
	} else {
		values, err = resampleInterval(s, grid, freq, agg)
		if err != nil {
			return nil, err
		}
	}

	return &stream.Stream{Name: s.Name, Times: grid, Values: values}, nil
}

// resampleInstant sweeps time-sorted records across the bucket sequence.
// Buckets are half-open [g, g+f); records before the grid or at/after the
// final bucket's end simply never match.
func resampleInstant(s *stream.Stream, grid []time.Time, freq timegrid.Frequency, agg Aggregation) []float64 {
	n := s.Len()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return s.Times[order[a]].Before(s.Times[order[b]]) })

	sortedTimes := make([]time.Time, n)
	sortedVals := make([]float64, n)
	for i, idx := range order {
		sortedTimes[i] = s.Times[idx]
		sortedVals[i] = s.Values[idx]
	}

	values := make([]float64, len(grid))
	lo := 0
	for gi, g := range grid {
		bucketEnd := g.Add(freq.Duration())
		for lo < n && sortedTimes[lo].Before(g) {
			lo++
		}
		hi := lo
		for hi < n && sortedTimes[hi].Before(bucketEnd) {
			hi++
		}
		if hi > lo {
			values[gi] = agg.reduce(sortedVals[lo:hi])
		}
		lo = hi
	}

	return values
}

// resampleInterval weights each intersecting record by its bucket-overlap
// fraction, then reduces the weighted values.
func resampleInterval(s *stream.Stream, grid []time.Time, freq timegrid.Frequency, agg Aggregation) ([]float64, error) {
	values := make([]float64, len(grid))
	var starts, ends []time.Time
	var vals []float64
	for gi, g := range grid {
		bucketEnd := g.Add(freq.Duration())
		starts, ends, vals = starts[:0], ends[:0], vals[:0]
		for i := range s.Starts {
			// Relevant iff the record's span intersects [g, g+f).
			if s.Starts[i].Before(bucketEnd) && s.Ends[i].After(g) {
				starts = append(starts, s.Starts[i])
				ends = append(ends, s.Ends[i])
				vals = append(vals, s.Values[i])
			}
		}
		if len(vals) == 0 {
			continue
		}
		fractions, err := IntervalFraction(starts, ends, g, bucketEnd)
		if err != nil {
			return nil, err
		}
		for i := range vals {
			vals[i] *= fractions[i]
		}
		values[gi] = agg.reduce(vals)
	}

	return values, nil
}
