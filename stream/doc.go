// Package stream defines the canonical measurement-stream value type shared
// by every analytics operation in this module.
//
// What:
//
//   - Stream wraps one measured quantity (steps, heartrate, wake,
//     light_estimate, activity, …) as a timestamped series.
//   - Exactly one of two shapes: instant-indexed (one timestamp per record)
//     or interval-indexed (start/end span per record, value is a rate or
//     state over the span). Mixing shapes is a schema error.
//   - Optional string-keyed metadata carries provenance (data_id,
//     subject_id); computation never reads it.
//
// Why:
//
//   - Wearable exports disagree wildly on representation; downstream
//     resampling and regularity scoring need a single validated shape.
//   - Validation is eager: Validate surfaces every schema defect before any
//     computation touches the data (see the resample package).
//
// Invariants:
//
//   - Interval records satisfy start < end. Overlap between records is
//     allowed (devices double-report); ordering is not required.
//   - Streams are never mutated by this module: every operation returns a
//     new Stream or dataset.
//
// Errors:
//
//   - ErrEmptyStream: stream has no records.
//   - ErrEmptyName: stream does not name its quantity.
//   - ErrMixedShape: both instant and interval columns are populated.
//   - ErrShapelessStream: neither shape is populated.
//   - ErrLengthMismatch: timestamp and value slices disagree in length.
//   - ErrIntervalOrder: an interval has start ≥ end.
//   - ErrBadMetadata: metadata lacks an identifying key or has empty values.
package stream
