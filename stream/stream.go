package stream

import "time"

// NewInstant builds an instant-indexed Stream and validates it eagerly.
// The slices are retained, not copied: callers must not mutate them afterwards.
func NewInstant(name string, times []time.Time, values []float64) (*Stream, error) {
	s := &Stream{Name: name, Times: times, Values: values}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// NewInterval builds an interval-indexed Stream and validates it eagerly.
// The slices are retained, not copied: callers must not mutate them afterwards.
func NewInterval(name string, starts, ends []time.Time, values []float64) (*Stream, error) {
	s := &Stream{Name: name, Starts: starts, Ends: ends, Values: values}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Shape reports the record layout. A stream violating the one-shape invariant
// reports Unknown; Validate returns the precise schema error.
func (s *Stream) Shape() Shape {
	hasInstant := len(s.Times) > 0
	hasInterval := len(s.Starts) > 0 || len(s.Ends) > 0
	switch {
	case hasInstant && !hasInterval:
		return Instant
	case hasInterval && !hasInstant:
		return Interval
	default:
		return Unknown
	}
}

// Len returns the number of records.
func (s *Stream) Len() int { return len(s.Values) }

// Validate checks every schema invariant and returns the first violation.
// It never mutates the stream. All resampling entry points call this before
// touching data, so malformed streams fail with no partial results.
func (s *Stream) Validate() error {
	if s.Name == "" {
		return ErrEmptyName
	}
	hasInstant := len(s.Times) > 0
	hasInterval := len(s.Starts) > 0 || len(s.Ends) > 0
	if hasInstant && hasInterval {
		return ErrMixedShape
	}
	if !hasInstant && !hasInterval {
		if len(s.Values) == 0 {
			return ErrEmptyStream
		}

		return ErrShapelessStream
	}
	if hasInstant {
		if len(s.Times) != len(s.Values) {
			return ErrLengthMismatch
		}
	} else {
		if len(s.Starts) != len(s.Ends) || len(s.Starts) != len(s.Values) {
			return ErrLengthMismatch
		}
		for i := range s.Starts {
			if !s.Starts[i].Before(s.Ends[i]) {
				return ErrIntervalOrder
			}
		}
	}
	if s.Meta != nil {
		return ValidateMeta(s.Meta)
	}

	return nil
}

// Bounds returns the stream's time span: min/max timestamp for the Instant
// shape, min start / max end for the Interval shape. Records need not be
// sorted. Call Validate first; Bounds on an empty stream returns zero times.
func (s *Stream) Bounds() (lo, hi time.Time) {
	if s.Shape() == Instant {
		return spanOf(s.Times, s.Times)
	}

	return spanOf(s.Starts, s.Ends)
}

// spanOf returns the minimum of los and the maximum of his.
func spanOf(los, his []time.Time) (lo, hi time.Time) {
	if len(los) == 0 {
		return lo, hi
	}
	lo, hi = los[0], his[0]
	for i := 1; i < len(los); i++ {
		if los[i].Before(lo) {
			lo = los[i]
		}
		if his[i].After(hi) {
			hi = his[i]
		}
	}

	return lo, hi
}

// WithMeta returns a copy of the stream carrying the given provenance
// metadata. The original stream is untouched (streams are never mutated in
// place). Existing keys are preserved unless overridden.
func (s *Stream) WithMeta(meta map[string]string) (*Stream, error) {
	if err := ValidateMeta(meta); err != nil {
		return nil, err
	}
	out := *s
	out.Meta = make(map[string]string, len(s.Meta)+len(meta))
	for k, v := range s.Meta {
		out.Meta[k] = v
	}
	for k, v := range meta {
		out.Meta[k] = v
	}

	return &out, nil
}

// ValidateMeta checks provenance metadata: at least one identifying key
// (MetaDataID or MetaSubjectID) and no empty values.
func ValidateMeta(meta map[string]string) error {
	if meta == nil {
		return ErrBadMetadata
	}
	_, hasData := meta[MetaDataID]
	_, hasSubject := meta[MetaSubjectID]
	if !hasData && !hasSubject {
		return ErrBadMetadata
	}
	for _, v := range meta {
		if v == "" {
			return ErrBadMetadata
		}
	}

	return nil
}
