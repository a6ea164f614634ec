// This file declares the driver's options (with documented defaults), the
// Oscillator contract, the Series product, and sentinel errors.
package esri

import (
	"errors"

	"github.com/luxrhythm/circadian/hannay"
)

// Sentinel errors, all surfaced before any simulation starts.
var (
	// ErrLengthMismatch indicates time and light arrays of different lengths.
	ErrLengthMismatch = errors.New("esri: time and light arrays must be the same length")

	// ErrNonUniformTime indicates a light series without a fixed time step.
	ErrNonUniformTime = errors.New("esri: time must have a fixed resolution")

	// ErrBadAnalysisDays indicates AnalysisDays < 1.
	ErrBadAnalysisDays = errors.New("esri: analysis days must be a positive integer")

	// ErrBadStep indicates a non-positive or non-finite StepHours.
	ErrBadStep = errors.New("esri: step must be a positive number of hours")

	// ErrNegativeAmplitude indicates a negative or non-finite initial amplitude.
	ErrNegativeAmplitude = errors.New("esri: initial amplitude must be non-negative")

	// ErrWindowTooLong indicates a light series shorter than the analysis
	// window, leaving no valid starting point.
	ErrWindowTooLong = errors.New("esri: light series shorter than the analysis window")
)

// Defaults — single source of truth for DefaultOptions.
const (
	// DefaultAnalysisDays is the entrainment window length in days.
	DefaultAnalysisDays = 4

	// DefaultStepHours is the spacing between sliding starting points,
	// independent of the light series' own sampling step.
	DefaultStepHours = 1.0

	// DefaultInitialAmplitude is the unentrained starting amplitude and the
	// index value of constant darkness (the reference baseline).
	DefaultInitialAmplitude = 0.1

	// DefaultPhaseAtMidnight is the oscillator phase at 00:00 under an
	// 8h-dark / 16h-light schedule with wake at 08:00.
	DefaultPhaseAtMidnight = 1.65238233

	// HoursPerDay converts AnalysisDays into the window length.
	HoursPerDay = 24.0
)

// Oscillator is the model contract the driver depends on: integrate from an
// initial state under a light trajectory and report the full path. Any
// substitute must treat the final state's R as the ending amplitude.
type Oscillator interface {
	Simulate(times []float64, initial hannay.State, light []float64) (hannay.Trajectory, error)
}

// Options configures Compute. Zero value is not useful; start from
// DefaultOptions.
type Options struct {
	// AnalysisDays is the length of each entrainment window in days (≥ 1).
	AnalysisDays int

	// StepHours spaces the sliding starting points (> 0).
	StepHours float64

	// InitialAmplitude seeds each window's oscillator (≥ 0).
	InitialAmplitude float64

	// PhaseAtMidnight anchors the time-of-day-dependent initial phase; the
	// default encodes a wake-at-08:00 schedule.
	PhaseAtMidnight float64

	// Workers caps the parallel fan-out; ≤ 0 means GOMAXPROCS.
	Workers int

	// Model overrides the oscillator; nil uses Hannay19 with zero
	// gain/coupling (K = 0, γ = 0), the configuration under which amplitude
	// is constant absent light.
	Model Oscillator
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		AnalysisDays:     DefaultAnalysisDays,
		StepHours:        DefaultStepHours,
		InitialAmplitude: DefaultInitialAmplitude,
		PhaseAtMidnight:  DefaultPhaseAtMidnight,
	}
}

// Series is the regularity index over time: Values[i] scores the window
// starting at Times[i] (hours). NaN marks a numerically invalid point.
type Series struct {
	// Times holds the starting points, in the light series' time base.
	Times []float64

	// Values holds the index per starting point: non-negative or NaN.
	Values []float64

	// Invalid counts NaN values. Non-zero means some windows produced a
	// negative (meaningless) amplitude: decrease the light series' time
	// step and recompute. Never fatal; valid points are untouched.
	Invalid int
}

// Len returns the number of starting points.
func (s Series) Len() int { return len(s.Times) }
