// Package esri computes the Entrainment Signal Regularity Index: a
// per-timepoint score of how strongly a light-exposure schedule would
// entrain an unentrained circadian oscillator over the following days.
//
// What:
//
//   - For every starting point t (spaced StepHours apart), the driver seeds
//     a low-amplitude oscillator with a time-of-day-dependent phase, feeds
//     it the actual light from [t, t+AnalysisDays·24h), and records the
//     final simulated amplitude as the regularity value at t.
//   - The oscillator runs with zero gain and zero damping, so amplitude
//     would stay constant absent light: whatever amplitude builds up is
//     attributable to the light schedule alone.
//   - Higher value ⇒ the schedule is more regular / more entraining. The
//     InitialAmplitude is the score of constant darkness, the baseline.
//
// Why:
//
//   - Follows Moreno et al. 2023, "Validation of the Entrainment Signal
//     Regularity Index and associations with children's changes in BMI".
//
// Numeric validity:
//
//   - A negative final amplitude is meaningless for this model and signals
//     a too-coarse simulation step. Such values are replaced with NaN and
//     counted in Series.Invalid; the batch never aborts for this. When
//     Invalid > 0, resample the light series onto a finer step and retry.
//
// Concurrency:
//
//   - Every starting point's simulation is independent; Compute fans out
//     across Workers goroutines, each writing its own output slot, and
//     merges by starting-point order. Results are bit-identical regardless
//     of worker count.
//
// Errors (all raised before any simulation starts):
//
//   - ErrLengthMismatch: time and light arrays differ in length.
//   - ErrNonUniformTime: the light series' time step is not constant.
//   - ErrBadAnalysisDays: AnalysisDays < 1.
//   - ErrBadStep: StepHours ≤ 0 or non-finite.
//   - ErrNegativeAmplitude: InitialAmplitude < 0 or non-finite.
//   - ErrWindowTooLong: the series is shorter than AnalysisDays, so no
//     starting point has a full window.
//
// Complexity: O(w·n/d) per starting point (w = window samples), starting
// points parallelized across Workers.
package esri
