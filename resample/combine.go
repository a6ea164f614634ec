package resample

import (
	"sort"
	"time"

	"github.com/luxrhythm/circadian/stream"
	"github.com/luxrhythm/circadian/timegrid"
)

// defaultCombinedDataID labels a combined product with no caller metadata.
const defaultCombinedDataID = "combined_dataframe"

// CombineOption configures Combine.
type CombineOption func(*combineConfig)

type combineConfig struct {
	overrides map[string]Aggregation
	meta      map[string]string
}

// WithAggregation overrides (or supplies) the aggregation rule for one
// stream name, taking precedence over the canonical defaults.
func WithAggregation(name string, agg Aggregation) CombineOption {
	return func(c *combineConfig) {
		if c.overrides == nil {
			c.overrides = make(map[string]Aggregation)
		}
		c.overrides[name] = agg
	}
}

// WithMetadata attaches provenance to the combined dataset. It is validated
// with the same rules as stream metadata.
func WithMetadata(meta map[string]string) CombineOption {
	return func(c *combineConfig) { c.meta = meta }
}

// Combine — align many streams onto one shared uniform grid
//
// Description:
//
//	Computes the union-spanning bounds across all inputs (minimum of all
//	lower bounds, maximum of all upper bounds), resamples every stream to
//	that shared span and frequency with its canonical aggregation rule
//	(steps sum, wake maxes, continuous measures average — overridable per
//	call), and outer-joins the results. Because every stream is resampled to
//	the identical grid, the join is exact: each grid timestamp appears once,
//	every column is fully populated, and spans a stream never covered are
//	zero-filled by the resampler.
//
// Returns a Dataset sorted by timestamp ascending with columns in sorted
// name order (map iteration is unordered; sorted names keep output
// deterministic).
//
// Errors (eager, before any resampling):
//   - ErrNoStreams for an empty input set
//   - every stream's schema errors via Validate
//   - ErrNoDefaultAggregation for a name with no canonical rule or override
//   - stream.ErrBadMetadata for invalid WithMetadata input
//   - frequency errors via timegrid.
//
// Complexity: one Resample per stream over the union span.
func Combine(streams map[string]*stream.Stream, freq timegrid.Frequency, opts ...CombineOption) (*Dataset, error) {
	if len(streams) == 0 {
		return nil, ErrNoStreams
	}
	var cfg combineConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.meta != nil {
		if err := stream.ValidateMeta(cfg.meta); err != nil {
			return nil, err
		}
	}
	if err := freq.Validate(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(streams))
	for name := range streams {
		names = append(names, name)
	}
	sort.Strings(names)

	// Resolve every aggregation rule and validate every stream before any
	// resampling work: parameter and schema errors must not yield partials.
	rules := make(map[string]Aggregation, len(names))
	var lo, hi time.Time
	for i, name := range names {
		s := streams[name]
		if err := s.Validate(); err != nil {
			return nil, err
		}
		agg, ok := cfg.overrides[name]
		if !ok {
			var err error
			if agg, err = DefaultAggregation(name); err != nil {
				return nil, err
			}
		}
		if err := agg.Validate(); err != nil {
			return nil, err
		}
		rules[name] = agg

		sLo, sHi := s.Bounds()
		if i == 0 || sLo.Before(lo) {
			lo = sLo
		}
		if i == 0 || sHi.After(hi) {
			hi = sHi
		}
	}

	ds := &Dataset{
		Names:   names,
		Columns: make(map[string][]float64, len(names)),
		Meta:    cfg.meta,
	}
	if ds.Meta == nil {
		ds.Meta = map[string]string{stream.MetaDataID: defaultCombinedDataID}
	}
	span := &Options{Start: lo, End: hi}
	for _, name := range names {
		rs, err := Resample(streams[name], name, freq, rules[name], span)
		if err != nil {
			return nil, err
		}
		if ds.Times == nil {
			ds.Times = rs.Times
		}
		ds.Columns[name] = rs.Values
	}

	return ds, nil
}
