// This file declares Stream, Shape, sentinel errors, and the metadata keys
// recognized for provenance.
package stream

import (
	"errors"
	"time"
)

// Sentinel errors for stream schema validation.
var (
	// ErrEmptyStream indicates the stream carries no records at all.
	ErrEmptyStream = errors.New("stream: no records")

	// ErrEmptyName indicates the stream does not name its measured quantity.
	ErrEmptyName = errors.New("stream: empty quantity name")

	// ErrMixedShape indicates both instant and interval columns are populated.
	ErrMixedShape = errors.New("stream: mixed instant/interval shape")

	// ErrShapelessStream indicates neither instant nor interval columns are populated.
	ErrShapelessStream = errors.New("stream: neither instant nor interval shape")

	// ErrLengthMismatch indicates timestamp and value slices disagree in length.
	ErrLengthMismatch = errors.New("stream: timestamp/value length mismatch")

	// ErrIntervalOrder indicates an interval record with start ≥ end.
	ErrIntervalOrder = errors.New("stream: interval start must precede end")

	// ErrBadMetadata indicates metadata without an identifying key or with empty values.
	ErrBadMetadata = errors.New("stream: metadata must identify data_id or subject_id with non-empty values")
)

// Canonical quantity names produced by wearable ingestion.
const (
	Steps         = "steps"
	Heartrate     = "heartrate"
	Wake          = "wake"
	LightEstimate = "light_estimate"
	Activity      = "activity"
)

// Metadata keys recognized as identifying provenance.
const (
	MetaDataID    = "data_id"
	MetaSubjectID = "subject_id"
)

// Shape reports which of the two mutually exclusive record layouts a Stream uses.
type Shape int

const (
	// Unknown is the zero value; Validate rejects it.
	Unknown Shape = iota

	// Instant marks one timestamp per record.
	Instant

	// Interval marks a start/end span per record.
	Interval
)

// String implements fmt.Stringer for diagnostics.
func (s Shape) String() string {
	switch s {
	case Instant:
		return "instant"
	case Interval:
		return "interval"
	default:
		return "unknown"
	}
}

// Stream is one measured quantity over time, in exactly one Shape.
//
// Instant shape populates Times; Interval shape populates Starts and Ends.
// Values always runs parallel to the populated timestamp column(s).
// Meta is provenance only and is never consumed by computation.
type Stream struct {
	// Name identifies the measured quantity (e.g. stream.Steps).
	Name string

	// Times holds per-record timestamps in the Instant shape.
	Times []time.Time

	// Starts and Ends hold per-record spans in the Interval shape.
	Starts []time.Time
	Ends   []time.Time

	// Values holds the measurement per record.
	Values []float64

	// Meta holds provenance key-value pairs (see MetaDataID, MetaSubjectID).
	Meta map[string]string
}
