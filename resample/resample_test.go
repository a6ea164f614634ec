package resample_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxrhythm/circadian/resample"
	"github.com/luxrhythm/circadian/stream"
	"github.com/luxrhythm/circadian/timegrid"
)

// instantStream builds an instant steps stream with one record per step of
// the given spacing, all carrying value v.
func instantStream(t *testing.T, n int, spacing time.Duration, v float64) *stream.Stream {
	t.Helper()
	times := make([]time.Time, n)
	values := make([]float64, n)
	for i := range times {
		times[i] = t0.Add(time.Duration(i) * spacing)
		values[i] = v
	}
	s, err := stream.NewInstant(stream.Steps, times, values)
	require.NoError(t, err)

	return s
}

// TestResample_IdempotentAtNativeResolution verifies resampling with sum at
// the native sampling step reproduces the original values exactly.
func TestResample_IdempotentAtNativeResolution(t *testing.T) {
	s := instantStream(t, 12, time.Hour, 0)
	for i := range s.Values {
		s.Values[i] = float64(i + 1)
	}

	rs, err := resample.Resample(s, stream.Steps, timegrid.MustParse("1h"), resample.Sum, nil)
	require.NoError(t, err)
	require.Equal(t, s.Len(), rs.Len())
	assert.Equal(t, s.Values, rs.Values)
	assert.Equal(t, s.Times, rs.Times)
}

// TestResample_Conservation verifies sum at k× the native step yields bucket
// sums equal to the k constituent native values, with nothing lost at edges.
func TestResample_Conservation(t *testing.T) {
	// 24 hourly records valued 1..24; resample to 4h buckets.
	s := instantStream(t, 24, time.Hour, 0)
	total := 0.0
	for i := range s.Values {
		s.Values[i] = float64(i + 1)
		total += s.Values[i]
	}

	rs, err := resample.Resample(s, stream.Steps, timegrid.MustParse("4h"), resample.Sum, nil)
	require.NoError(t, err)
	require.Equal(t, 6, rs.Len())
	// First bucket [0h,4h): 1+2+3+4.
	assert.InDelta(t, 10, rs.Values[0], 1e-9)
	sum := 0.0
	for _, v := range rs.Values {
		sum += v
	}
	assert.InDelta(t, total, sum, 1e-9)
}

// TestResample_OnePointPerDay is the concrete daily-sum scenario: a
// 24-point-per-day stream of ones, summed at one-day frequency, yields one
// output point per day each valued 24.
func TestResample_OnePointPerDay(t *testing.T) {
	const days = 3
	s := instantStream(t, days*24, time.Hour, 1)

	rs, err := resample.Resample(s, stream.Steps, timegrid.MustParse("1d"), resample.Sum, nil)
	require.NoError(t, err)
	require.Equal(t, days, rs.Len())
	for i, v := range rs.Values {
		assert.InDelta(t, 24, v, 1e-9, "day %d", i)
	}
}

// TestResample_IntervalWeightedSum is the concrete interval scenario:
// [0h,2h)=10 and [2h,4h)=20 summed into the 4-hour bucket [0h,4h) yields
// 10·(2/2) + 20·(2/2) = 30.
func TestResample_IntervalWeightedSum(t *testing.T) {
	s, err := stream.NewInterval(stream.Steps,
		[]time.Time{t0, t0.Add(2 * time.Hour)},
		[]time.Time{t0.Add(2 * time.Hour), t0.Add(4 * time.Hour)},
		[]float64{10, 20})
	require.NoError(t, err)

	rs, err := resample.Resample(s, stream.Steps, timegrid.MustParse("4h"), resample.Sum, nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, rs.Len(), 1)
	assert.InDelta(t, 30, rs.Values[0], 1e-9)
}

// TestResample_IntervalPartialOverlap verifies overlap weighting: an
// interval half inside a bucket contributes half its value.
func TestResample_IntervalPartialOverlap(t *testing.T) {
	// [1h,3h)=12 against 2h buckets: [0h,2h) sees half, [2h,4h) sees half.
	s, err := stream.NewInterval(stream.Steps,
		[]time.Time{t0.Add(time.Hour)},
		[]time.Time{t0.Add(3 * time.Hour)},
		[]float64{12})
	require.NoError(t, err)

	rs, err := resample.Resample(s, stream.Steps, timegrid.MustParse("2h"),
		resample.Sum, &resample.Options{Start: t0, End: t0.Add(4 * time.Hour)})
	require.NoError(t, err)
	require.Equal(t, 3, rs.Len())
	assert.InDelta(t, 6, rs.Values[0], 1e-9)
	assert.InDelta(t, 6, rs.Values[1], 1e-9)
	assert.InDelta(t, 0, rs.Values[2], 1e-9, "bucket past the interval is zero-filled")
}

// TestResample_EmptyBucketsZeroFilled verifies gaps in coverage produce 0,
// not a missing marker, per the documented compatibility behavior.
func TestResample_EmptyBucketsZeroFilled(t *testing.T) {
	times := []time.Time{t0, t0.Add(5 * time.Hour)}
	s, err := stream.NewInstant(stream.Heartrate, times, []float64{60, 80})
	require.NoError(t, err)

	rs, err := resample.Resample(s, stream.Heartrate, timegrid.MustParse("1h"), resample.Mean, nil)
	require.NoError(t, err)
	require.Equal(t, 6, rs.Len())
	assert.InDelta(t, 60, rs.Values[0], 1e-9)
	for i := 1; i < 5; i++ {
		assert.Zero(t, rs.Values[i], "uncovered bucket %d", i)
	}
	assert.InDelta(t, 80, rs.Values[5], 1e-9)
}

// TestResample_HalfOpenBuckets verifies a record exactly on a bucket
// boundary lands in the later bucket (half-open [g, g+f) convention).
func TestResample_HalfOpenBuckets(t *testing.T) {
	times := []time.Time{t0, t0.Add(time.Hour), t0.Add(2 * time.Hour)}
	s, err := stream.NewInstant(stream.Steps, times, []float64{1, 10, 100})
	require.NoError(t, err)

	rs, err := resample.Resample(s, stream.Steps, timegrid.MustParse("1h"), resample.Sum, nil)
	require.NoError(t, err)
	require.Equal(t, 3, rs.Len())
	assert.Equal(t, []float64{1, 10, 100}, rs.Values)
}

// TestResample_UnsortedInput verifies record order does not change the result.
func TestResample_UnsortedInput(t *testing.T) {
	times := []time.Time{t0.Add(2 * time.Hour), t0, t0.Add(time.Hour)}
	s, err := stream.NewInstant(stream.Steps, times, []float64{100, 1, 10})
	require.NoError(t, err)

	rs, err := resample.Resample(s, stream.Steps, timegrid.MustParse("1h"), resample.Sum, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 10, 100}, rs.Values)
}

// TestResample_Aggregations verifies each rule over one shared bucket.
func TestResample_Aggregations(t *testing.T) {
	s := instantStream(t, 4, time.Hour, 0)
	copy(s.Values, []float64{2, 8, 4, 6})

	cases := []struct {
		agg  resample.Aggregation
		want float64
	}{
		{resample.Sum, 20},
		{resample.Mean, 5},
		{resample.Max, 8},
		{resample.Min, 2},
	}
	for _, c := range cases {
		rs, err := resample.Resample(s, stream.Steps, timegrid.MustParse("4h"), c.agg, nil)
		require.NoError(t, err, c.agg)
		assert.InDelta(t, c.want, rs.Values[0], 1e-9, c.agg)
	}
}

// TestResample_ExplicitBounds verifies explicit grid bounds override the
// data-derived span.
func TestResample_ExplicitBounds(t *testing.T) {
	s := instantStream(t, 6, time.Hour, 1)

	opts := &resample.Options{Start: t0.Add(-2 * time.Hour), End: t0.Add(7 * time.Hour)}
	rs, err := resample.Resample(s, stream.Steps, timegrid.MustParse("1h"), resample.Sum, opts)
	require.NoError(t, err)
	require.Equal(t, 10, rs.Len())
	assert.Zero(t, rs.Values[0])
	assert.Zero(t, rs.Values[1])
	assert.InDelta(t, 1, rs.Values[2], 1e-9)
	assert.Zero(t, rs.Values[9])
}

// TestResample_EagerErrors verifies every invalid-input class fails before
// computation, with the right sentinel.
func TestResample_EagerErrors(t *testing.T) {
	s := instantStream(t, 3, time.Hour, 1)

	_, err := resample.Resample(s, "cadence", timegrid.MustParse("1h"), resample.Sum, nil)
	assert.ErrorIs(t, err, resample.ErrUnknownColumn)

	_, err = resample.Resample(s, stream.Steps, timegrid.MustParse("1h"), resample.Aggregation(42), nil)
	assert.ErrorIs(t, err, resample.ErrBadAggregation)

	_, err = resample.Resample(s, stream.Steps, timegrid.Frequency(0), resample.Sum, nil)
	assert.ErrorIs(t, err, timegrid.ErrBadFrequency)

	malformed := &stream.Stream{Name: stream.Steps, Values: []float64{1}}
	_, err = resample.Resample(malformed, stream.Steps, timegrid.MustParse("1h"), resample.Sum, nil)
	assert.ErrorIs(t, err, stream.ErrShapelessStream)
}

// TestParseAggregation verifies the wire names round-trip.
func TestParseAggregation(t *testing.T) {
	for _, name := range []string{"sum", "mean", "max", "min"} {
		agg, err := resample.ParseAggregation(name)
		require.NoError(t, err)
		assert.Equal(t, name, agg.String())
	}
	_, err := resample.ParseAggregation("median")
	assert.ErrorIs(t, err, resample.ErrBadAggregation)
}
