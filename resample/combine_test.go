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

// TestCombine_UnionSpanAndZeroFill verifies two partially overlapping
// streams align onto the union of their spans, zero-filled outside each
// stream's native coverage.
func TestCombine_UnionSpanAndZeroFill(t *testing.T) {
	// steps covers hours [0, 4); heartrate covers hours [2, 6).
	steps, err := stream.NewInstant(stream.Steps,
		[]time.Time{t0, t0.Add(time.Hour), t0.Add(2 * time.Hour), t0.Add(3 * time.Hour)},
		[]float64{100, 100, 100, 100})
	require.NoError(t, err)
	hr, err := stream.NewInstant(stream.Heartrate,
		[]time.Time{t0.Add(2 * time.Hour), t0.Add(3 * time.Hour), t0.Add(4 * time.Hour), t0.Add(5 * time.Hour)},
		[]float64{60, 62, 64, 66})
	require.NoError(t, err)

	ds, err := resample.Combine(map[string]*stream.Stream{
		stream.Steps:     steps,
		stream.Heartrate: hr,
	}, timegrid.MustParse("1h"))
	require.NoError(t, err)

	// Union span [0h, 5h] inclusive at 1h = 6 grid points, no duplicates.
	require.Equal(t, 6, ds.Len())
	assert.Equal(t, t0, ds.Times[0])
	assert.Equal(t, t0.Add(5*time.Hour), ds.Times[5])
	for i := 1; i < ds.Len(); i++ {
		assert.True(t, ds.Times[i-1].Before(ds.Times[i]), "timestamps ascending, unique")
	}

	stepsCol, ok := ds.Column(stream.Steps)
	require.True(t, ok)
	assert.Equal(t, []float64{100, 100, 100, 100, 0, 0}, stepsCol)

	hrCol, ok := ds.Column(stream.Heartrate)
	require.True(t, ok)
	assert.Equal(t, []float64{0, 0, 60, 62, 64, 66}, hrCol)
}

// TestCombine_MixedShapes verifies instant and interval streams share one
// grid, with interval bounds extending the union span.
func TestCombine_MixedShapes(t *testing.T) {
	wake, err := stream.NewInstant(stream.Wake,
		[]time.Time{t0.Add(time.Hour)}, []float64{1})
	require.NoError(t, err)
	steps, err := stream.NewInterval(stream.Steps,
		[]time.Time{t0},
		[]time.Time{t0.Add(4 * time.Hour)},
		[]float64{240})
	require.NoError(t, err)

	ds, err := resample.Combine(map[string]*stream.Stream{
		stream.Wake:  wake,
		stream.Steps: steps,
	}, timegrid.MustParse("2h"))
	require.NoError(t, err)

	// Union span [0h, 4h] at 2h = 3 points; both columns on the same grid.
	require.Equal(t, 3, ds.Len())
	stepsCol, _ := ds.Column(stream.Steps)
	wakeCol, _ := ds.Column(stream.Wake)
	require.Len(t, wakeCol, 3)
	// 240 steps over 4h → 120 per 2h bucket; the final single-point bucket
	// [4h,6h) has no interval coverage.
	assert.InDelta(t, 120, stepsCol[0], 1e-9)
	assert.InDelta(t, 120, stepsCol[1], 1e-9)
	assert.Zero(t, stepsCol[2])
	// The wake record at 1h lands in bucket [0h,2h).
	assert.Equal(t, []float64{1, 0, 0}, wakeCol)
}

// TestCombine_SortedNames verifies deterministic column order.
func TestCombine_SortedNames(t *testing.T) {
	mk := func(name string) *stream.Stream {
		s, err := stream.NewInstant(name, []time.Time{t0}, []float64{1})
		require.NoError(t, err)

		return s
	}
	ds, err := resample.Combine(map[string]*stream.Stream{
		stream.Wake:      mk(stream.Wake),
		stream.Activity:  mk(stream.Activity),
		stream.Heartrate: mk(stream.Heartrate),
	}, timegrid.MustParse("1h"))
	require.NoError(t, err)
	assert.Equal(t, []string{stream.Activity, stream.Heartrate, stream.Wake}, ds.Names)
}

// TestCombine_DefaultMetadata verifies the combined product is labeled when
// the caller supplies no provenance.
func TestCombine_DefaultMetadata(t *testing.T) {
	s, err := stream.NewInstant(stream.Steps, []time.Time{t0}, []float64{1})
	require.NoError(t, err)
	ds, err := resample.Combine(map[string]*stream.Stream{stream.Steps: s}, timegrid.MustParse("1h"))
	require.NoError(t, err)
	assert.Equal(t, "combined_dataframe", ds.Meta[stream.MetaDataID])
}

// TestCombine_MetadataOption verifies caller metadata is validated and kept.
func TestCombine_MetadataOption(t *testing.T) {
	s, err := stream.NewInstant(stream.Steps, []time.Time{t0}, []float64{1})
	require.NoError(t, err)
	streams := map[string]*stream.Stream{stream.Steps: s}

	ds, err := resample.Combine(streams, timegrid.MustParse("1h"),
		resample.WithMetadata(map[string]string{stream.MetaSubjectID: "s-9"}))
	require.NoError(t, err)
	assert.Equal(t, "s-9", ds.Meta[stream.MetaSubjectID])

	_, err = resample.Combine(streams, timegrid.MustParse("1h"),
		resample.WithMetadata(map[string]string{"device": "acme"}))
	assert.ErrorIs(t, err, stream.ErrBadMetadata)
}

// TestCombine_UnknownNameNeedsOverride verifies a non-canonical stream name
// errors without WithAggregation and succeeds with it.
func TestCombine_UnknownNameNeedsOverride(t *testing.T) {
	s, err := stream.NewInstant("skin_temp", []time.Time{t0, t0.Add(time.Hour)}, []float64{33, 35})
	require.NoError(t, err)
	streams := map[string]*stream.Stream{"skin_temp": s}

	_, err = resample.Combine(streams, timegrid.MustParse("1h"))
	assert.ErrorIs(t, err, resample.ErrNoDefaultAggregation)

	ds, err := resample.Combine(streams, timegrid.MustParse("1h"),
		resample.WithAggregation("skin_temp", resample.Mean))
	require.NoError(t, err)
	col, _ := ds.Column("skin_temp")
	assert.Equal(t, []float64{33, 35}, col)
}

// TestCombine_NoStreams verifies the empty input set is rejected eagerly.
func TestCombine_NoStreams(t *testing.T) {
	_, err := resample.Combine(nil, timegrid.MustParse("1h"))
	assert.ErrorIs(t, err, resample.ErrNoStreams)
}

// TestCombine_InvalidStreamAbortsWhole verifies one malformed stream aborts
// the whole combine with no partial dataset.
func TestCombine_InvalidStreamAbortsWhole(t *testing.T) {
	good, err := stream.NewInstant(stream.Steps, []time.Time{t0}, []float64{1})
	require.NoError(t, err)
	bad := &stream.Stream{Name: stream.Wake, Values: []float64{1}}

	ds, err := resample.Combine(map[string]*stream.Stream{
		stream.Steps: good,
		stream.Wake:  bad,
	}, timegrid.MustParse("1h"))
	assert.ErrorIs(t, err, stream.ErrShapelessStream)
	assert.Nil(t, ds)
}

// TestDefaultAggregation verifies the canonical per-quantity rules.
func TestDefaultAggregation(t *testing.T) {
	cases := map[string]resample.Aggregation{
		stream.Steps:         resample.Sum,
		stream.Wake:          resample.Max,
		stream.Heartrate:     resample.Mean,
		stream.LightEstimate: resample.Mean,
		stream.Activity:      resample.Mean,
	}
	for name, want := range cases {
		agg, err := resample.DefaultAggregation(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, agg, name)
	}
	_, err := resample.DefaultAggregation("skin_temp")
	assert.ErrorIs(t, err, resample.ErrNoDefaultAggregation)
}
