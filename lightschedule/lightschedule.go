package lightschedule

import (
	"errors"
	"math"
)

// ErrBadSchedule indicates out-of-range schedule parameters.
var ErrBadSchedule = errors.New("lightschedule: days and step must be positive, lux non-negative, wake in [0,24), photoperiod in (0,24]")

// Defaults for the zero-value Schedule: a typical indoor 16h-light /
// 8h-dark day with wake at 08:00 — the schedule the default ESRI
// phase-at-midnight constant encodes.
const (
	DefaultLux              = 500.0
	DefaultWakeHour         = 8.0
	DefaultPhotoperiodHours = 16.0
)

// Schedule shapes the repeating cycle for Regular. Zero fields take the
// package defaults, so Schedule{} is the canonical regular day.
type Schedule struct {
	// Lux is the light level during the photoperiod.
	Lux float64

	// WakeHour is the hour of day lights come on, in [0, 24).
	WakeHour float64

	// PhotoperiodHours is how long the lights stay on, in (0, 24].
	PhotoperiodHours float64
}

// withDefaults resolves zero fields against the package defaults.
func (s Schedule) withDefaults() Schedule {
	if s.Lux == 0 {
		s.Lux = DefaultLux
	}
	if s.WakeHour == 0 {
		s.WakeHour = DefaultWakeHour
	}
	if s.PhotoperiodHours == 0 {
		s.PhotoperiodHours = DefaultPhotoperiodHours
	}

	return s
}

// Regular generates days of a repeating light/dark cycle sampled every
// stepHours, starting at midnight of day zero. The final sample falls at
// days·24h inclusive, so the series spans exactly the requested number of
// days — the shape esri.Compute's window arithmetic expects.
func Regular(days int, stepHours float64, sched Schedule) (times, light []float64, err error) {
	sched = sched.withDefaults()
	if days < 1 || stepHours <= 0 || math.IsNaN(stepHours) ||
		sched.Lux < 0 || sched.WakeHour < 0 || sched.WakeHour >= 24 ||
		sched.PhotoperiodHours <= 0 || sched.PhotoperiodHours > 24 {
		return nil, nil, ErrBadSchedule
	}

	n := int(math.Floor(float64(days)*24/stepHours)) + 1
	times = make([]float64, n)
	light = make([]float64, n)
	for i := range times {
		t := float64(i) * stepHours
		times[i] = t
		if inPhotoperiod(math.Mod(t, 24), sched.WakeHour, sched.PhotoperiodHours) {
			light[i] = sched.Lux
		}
	}

	return times, light, nil
}

// Constant generates days of one fixed light level sampled every
// stepHours; lux 0 is the all-dark baseline.
func Constant(days int, stepHours, lux float64) (times, light []float64, err error) {
	if days < 1 || stepHours <= 0 || math.IsNaN(stepHours) || lux < 0 || math.IsNaN(lux) {
		return nil, nil, ErrBadSchedule
	}

	n := int(math.Floor(float64(days)*24/stepHours)) + 1
	times = make([]float64, n)
	light = make([]float64, n)
	for i := range times {
		times[i] = float64(i) * stepHours
		light[i] = lux
	}

	return times, light, nil
}

// inPhotoperiod reports whether hour h of the day falls inside the lit
// span [wake, wake+photoperiod), wrapping past midnight when needed.
func inPhotoperiod(h, wake, photoperiod float64) bool {
	end := wake + photoperiod
	if end <= 24 {
		return h >= wake && h < end
	}

	return h >= wake || h < end-24
}
