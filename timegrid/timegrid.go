package timegrid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors for frequency parsing and grid construction.
var (
	// ErrBadFrequency indicates an empty, unparseable, or non-positive frequency.
	ErrBadFrequency = errors.New("timegrid: frequency must be a positive magnitude plus unit (s, min, h, d)")

	// ErrGridBounds indicates a grid whose end precedes its start.
	ErrGridBounds = errors.New("timegrid: grid end precedes start")
)

// Frequency is a positive, fixed grid step. The zero value is invalid.
type Frequency time.Duration

// Units accepted by Parse, longest first so "min" wins over "m"-style typos.
var units = []struct {
	suffix string
	dur    time.Duration
}{
	{"min", time.Minute},
	{"s", time.Second},
	{"h", time.Hour},
	{"d", 24 * time.Hour},
}

// Parse converts a magnitude+unit string ("30s", "10min", "1h", "2d") into a
// Frequency. The magnitude must be a positive integer; days are exact
// 24-hour spans.
func Parse(text string) (Frequency, error) {
	raw := strings.TrimSpace(strings.ToLower(text))
	for _, u := range units {
		if !strings.HasSuffix(raw, u.suffix) {
			continue
		}
		mag, err := strconv.Atoi(strings.TrimSuffix(raw, u.suffix))
		if err != nil || mag <= 0 {
			return 0, fmt.Errorf("%w: %q", ErrBadFrequency, text)
		}

		return Frequency(time.Duration(mag) * u.dur), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadFrequency, text)
}

// MustParse is Parse for compile-time-known literals; it panics on error.
func MustParse(text string) Frequency {
	f, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return f
}

// Duration returns the step as a time.Duration.
func (f Frequency) Duration() time.Duration { return time.Duration(f) }

// Hours returns the step in fractional hours.
func (f Frequency) Hours() float64 { return time.Duration(f).Hours() }

// Validate reports ErrBadFrequency unless the step is strictly positive.
func (f Frequency) Validate() error {
	if f <= 0 {
		return ErrBadFrequency
	}

	return nil
}

// String renders the frequency in its most compact unit.
func (f Frequency) String() string {
	d := time.Duration(f)
	switch {
	case d > 0 && d%(24*time.Hour) == 0:
		return fmt.Sprintf("%dd", d/(24*time.Hour))
	case d > 0 && d%time.Hour == 0:
		return fmt.Sprintf("%dh", d/time.Hour)
	case d > 0 && d%time.Minute == 0:
		return fmt.Sprintf("%dmin", d/time.Minute)
	default:
		return d.String()
	}
}

// Grid materializes the uniform grid start, start+f, …, inclusive of both
// endpoints: the final point is the largest start+k·f with start+k·f ≤ end.
// start == end yields a single-point grid.
func Grid(start, end time.Time, f Frequency) ([]time.Time, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, ErrGridBounds
	}
	n := int(end.Sub(start)/f.Duration()) + 1
	points := make([]time.Time, 0, n)
	for t := start; !t.After(end); t = t.Add(f.Duration()) {
		points = append(points, t)
	}

	return points, nil
}
