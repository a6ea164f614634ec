// This file declares Params (with the published defaults), State,
// Trajectory, and the package's sentinel errors.
package hannay

import (
	"errors"
	"math"
)

// Sentinel errors for model construction and simulation.
var (
	// ErrBadParams indicates a NaN or infinite model parameter.
	ErrBadParams = errors.New("hannay: model parameters must be finite")

	// ErrBadSimInput indicates mismatched or too-short simulation arrays.
	ErrBadSimInput = errors.New("hannay: time and light arrays must be equal length, ≥ 2 samples, strictly increasing time")
)

// Params holds the named scalar parameters of the single-population model.
// Zero-value Params is valid but inert; start from DefaultParams.
type Params struct {
	// Tau is the intrinsic period in hours.
	Tau float64

	// K is the phase-coupling strength; Gamma the amplitude damping rate.
	// With both zero, amplitude is constant in the absence of light.
	K     float64
	Gamma float64

	// Beta1 shifts the coupling phase.
	Beta1 float64

	// A1, A2, BetaL1, BetaL2, Sigma shape the first- and second-harmonic
	// light response.
	A1     float64
	A2     float64
	BetaL1 float64
	BetaL2 float64
	Sigma  float64

	// G scales the photic drive; Alpha0, Delta, P, I0 parameterize the
	// photoreceptor activation process.
	G      float64
	Alpha0 float64
	Delta  float64
	P      float64
	I0     float64
}

// DefaultParams returns the published parameter set for the Hannay 2019
// single-population model.
func DefaultParams() Params {
	return Params{
		Tau:    23.84,
		K:      0.06358,
		Gamma:  0.024,
		Beta1:  -0.09318,
		A1:     0.3855,
		A2:     0.1977,
		BetaL1: -0.0026,
		BetaL2: -0.957756,
		Sigma:  0.0400692,
		G:      33.75,
		Alpha0: 0.05,
		Delta:  0.0075,
		P:      1.5,
		I0:     9325.0,
	}
}

// Validate reports ErrBadParams if any parameter is NaN or infinite.
func (p Params) Validate() error {
	for _, v := range []float64{
		p.Tau, p.K, p.Gamma, p.Beta1, p.A1, p.A2, p.BetaL1, p.BetaL2,
		p.Sigma, p.G, p.Alpha0, p.Delta, p.P, p.I0,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadParams
		}
	}

	return nil
}

// State is one point of the oscillator: amplitude R, phase Psi (radians),
// and photoreceptor activation N.
type State struct {
	R   float64
	Psi float64
	N   float64
}

// Trajectory is the ordered result of one simulation run: States[i] is the
// oscillator state at Times[i] (hours). Times aliases the caller's array.
type Trajectory struct {
	Times  []float64
	States []State
}

// Final returns the last state of the run; its R component is the quantity
// regularity scoring consumes.
func (t Trajectory) Final() State {
	return t.States[len(t.States)-1]
}
