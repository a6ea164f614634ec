package resample

import "time"

// IntervalFraction — bucket-overlap weighting kernel
//
// Description:
//
//	For parallel source intervals [starts[i], ends[i]) and one reference
//	interval [refStart, refEnd), returns per source interval the fraction of
//	its duration lying inside the reference:
//
//	    f[i] = (min(ends[i], refEnd) − max(starts[i], refStart)) / (ends[i] − starts[i])
//
//	clamped to [0, 1], so disjoint intervals report 0 and fully contained
//	intervals report 1. Well-formed inputs (start < end) can never exceed 1.
//
// Errors:
//   - ErrLengthMismatch       — starts and ends differ in length.
//   - ErrZeroDurationInterval — a source interval with zero (or negative)
//     duration; the quotient is undefined and must not silently become ±Inf.
//
// Side-effect-free. Complexity: O(n) time, O(n) space.
func IntervalFraction(starts, ends []time.Time, refStart, refEnd time.Time) ([]float64, error) {
	if len(starts) != len(ends) {
		return nil, ErrLengthMismatch
	}
	for i := range starts {
		if !starts[i].Before(ends[i]) {
			return nil, ErrZeroDurationInterval
		}
	}

	fractions := make([]float64, len(starts))
	for i := range starts {
		lo := maxTime(starts[i], refStart)
		hi := minTime(ends[i], refEnd)
		f := hi.Sub(lo).Seconds() / ends[i].Sub(starts[i]).Seconds()
		if f < 0 {
			f = 0
		} else if f > 1 {
			f = 1
		}
		fractions[i] = f
	}

	return fractions, nil
}

// maxTime returns the later of a and b.
func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}

	return b
}

// minTime returns the earlier of a and b.
func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}

	return b
}
