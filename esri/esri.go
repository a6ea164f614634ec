package esri

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/interp"

	"github.com/luxrhythm/circadian/hannay"
)

// timeTol absorbs accumulated float drift in grid arithmetic: it widens the
// closed upper bound of the starting-point enumeration and the uniform-step
// check without ever admitting a genuinely different step.
const timeTol = 1e-9

// Compute — Entrainment Signal Regularity Index over a light series
//
// Description:
//
//	times (hours, fixed step) and light (lux) describe the measured light
//	exposure. Starting points are enumerated as t = times[0] + k·StepHours
//	for k = 0, 1, … while t ≤ times[last] − AnalysisDays·24h: the upper
//	bound is closed (within a small absolute tolerance), so a series
//	spanning exactly AnalysisDays yields exactly one starting point. Per
//	starting point:
//
//	  1. initial phase = PhaseAtMidnight + (t mod 24h)·π/12
//	  2. initial state = (InitialAmplitude, initial phase, 0)
//	  3. light is linearly interpolated onto the simulation step (the light
//	     series' own step) over [t, t+AnalysisDays·24h)
//	  4. the oscillator runs forward; the final amplitude is the value at t.
//
//	Negative final amplitudes are numerically meaningless and become NaN;
//	Series.Invalid counts them so callers can warn and rerun on a finer
//	step. Valid points are returned regardless.
//
// Inputs are never mutated; the returned Series is freshly allocated.
//
// Errors: see the package doc — every failure condition is checked before
// the first simulation runs, and numeric invalidity is never an error.
func Compute(times, light []float64, opts *Options) (Series, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	if len(times) != len(light) {
		return Series{}, ErrLengthMismatch
	}
	if o.AnalysisDays < 1 {
		return Series{}, ErrBadAnalysisDays
	}
	if o.StepHours <= 0 || math.IsNaN(o.StepHours) || math.IsInf(o.StepHours, 0) {
		return Series{}, ErrBadStep
	}
	if o.InitialAmplitude < 0 || math.IsNaN(o.InitialAmplitude) || math.IsInf(o.InitialAmplitude, 0) {
		return Series{}, ErrNegativeAmplitude
	}
	horizon := float64(o.AnalysisDays) * HoursPerDay
	if len(times) < 2 || times[len(times)-1]-times[0] < horizon-timeTol {
		return Series{}, ErrWindowTooLong
	}
	simDT := times[1] - times[0]
	if simDT <= 0 {
		return Series{}, ErrNonUniformTime
	}
	for i := 2; i < len(times); i++ {
		if !scalar.EqualWithinAbs(times[i]-times[i-1], simDT, timeTol) {
			return Series{}, ErrNonUniformTime
		}
	}

	model := o.Model
	if model == nil {
		p := hannay.DefaultParams()
		p.K = 0
		p.Gamma = 0
		m, err := hannay.New(p)
		if err != nil {
			return Series{}, err
		}
		model = m
	}

	var lightAt interp.PiecewiseLinear
	if err := lightAt.Fit(times, light); err != nil {
		return Series{}, ErrNonUniformTime
	}

	// Closed upper bound: limit is the last t with a full window after it.
	limit := times[len(times)-1] - horizon
	count := int(math.Floor((limit-times[0])/o.StepHours+timeTol)) + 1
	starts := make([]float64, count)
	for k := range starts {
		starts[k] = times[0] + float64(k)*o.StepHours
	}

	nSim := int(math.Ceil(horizon/simDT - timeTol))
	if nSim < 2 {
		// The window holds fewer than two simulation samples; nothing to integrate.
		return Series{}, ErrWindowTooLong
	}
	values := make([]float64, count)

	workers := o.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > count {
		workers = count
	}

	// Fan out: starting points are fully independent, sharing only the
	// read-only model and interpolant; worker w owns slots w, w+W, w+2W, …
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			simTimes := make([]float64, nSim)
			simLight := make([]float64, nSim)
			for k := w; k < count; k += workers {
				t := starts[k]
				for j := 0; j < nSim; j++ {
					tj := t + float64(j)*simDT
					simTimes[j] = tj
					simLight[j] = lightAt.Predict(clamp(tj, times[0], times[len(times)-1]))
				}
				traj, err := model.Simulate(simTimes, hannay.State{
					R:   o.InitialAmplitude,
					Psi: o.PhaseAtMidnight + hourOfDay(t)*math.Pi/12,
				}, simLight)
				if err != nil {
					errs[w] = err

					return
				}
				values[k] = traj.Final().R
			}
		}(w)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return Series{}, err
		}
	}

	invalid := 0
	for i, v := range values {
		if v < 0 {
			values[i] = math.NaN()
		}
		if math.IsNaN(values[i]) {
			invalid++
		}
	}

	return Series{Times: starts, Values: values, Invalid: invalid}, nil
}

// hourOfDay maps t (hours) onto [0, 24).
func hourOfDay(t float64) float64 {
	h := math.Mod(t, HoursPerDay)
	if h < 0 {
		h += HoursPerDay
	}

	return h
}

// clamp restricts x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
