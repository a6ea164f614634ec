package hannay

import "math"

// Model — Hannay 2019 single-population circadian oscillator
//
// Description:
//
//	The macroscopic state (R, ψ, n) evolves as
//
//	  α(I)  = α₀·I^p / (I^p + I₀)
//	  B̂     = G·(1−n)·α(I)
//	  dR/dt = −γR + (K/2)·cos(β₁)·R·(1−R⁴) + L_R(R, ψ, B̂)
//	  dψ/dt = 2π/τ + (K/2)·sin(β₁)·(1+R⁴) + L_ψ(R, ψ, B̂)
//	  dn/dt = 60·(α(I)·(1−n) − δ·n)
//
//	where L_R and L_ψ are the first/second-harmonic light terms weighted by
//	A1, A2, βL1, βL2, σ. Both vanish identically when B̂ = 0; the code takes
//	that branch explicitly because L_ψ contains a 1/R factor and 0·Inf must
//	not poison a darkness run started at R = 0.
//
// Integration: classical fixed-step RK4 on the caller's time array, with
// light[i] held constant over step i. Time is in hours, light in lux.
//
// Model is an immutable, goroutine-safe oscillator configuration.
type Model struct {
	p Params
}

// New validates the parameters and returns a Model.
func New(p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Model{p: p}, nil
}

// Params returns the model's configuration.
func (m *Model) Params() Params { return m.p }

// Simulate integrates the oscillator over times (hours, strictly
// increasing) from the initial state, driving it with light (lux, parallel
// to times). It returns the full trajectory; Trajectory.Final().R is the
// ending amplitude.
//
// The model is read-only during simulation, so one Model may serve many
// concurrent Simulate calls.
func (m *Model) Simulate(times []float64, initial State, light []float64) (Trajectory, error) {
	if len(times) != len(light) || len(times) < 2 {
		return Trajectory{}, ErrBadSimInput
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return Trajectory{}, ErrBadSimInput
		}
	}

	states := make([]State, len(times))
	states[0] = initial
	for i := 1; i < len(times); i++ {
		dt := times[i] - times[i-1]
		states[i] = m.rk4Step(states[i-1], light[i-1], dt)
	}

	return Trajectory{Times: times, States: states}, nil
}

// rk4Step advances one classical Runge-Kutta step of size dt under a
// constant light level.
func (m *Model) rk4Step(s State, light, dt float64) State {
	k1 := m.deriv(s, light)
	k2 := m.deriv(shift(s, k1, dt/2), light)
	k3 := m.deriv(shift(s, k2, dt/2), light)
	k4 := m.deriv(shift(s, k3, dt), light)

	return State{
		R:   s.R + dt/6*(k1.R+2*k2.R+2*k3.R+k4.R),
		Psi: s.Psi + dt/6*(k1.Psi+2*k2.Psi+2*k3.Psi+k4.Psi),
		N:   s.N + dt/6*(k1.N+2*k2.N+2*k3.N+k4.N),
	}
}

// shift offsets a state by h times a derivative.
func shift(s State, d State, h float64) State {
	return State{R: s.R + h*d.R, Psi: s.Psi + h*d.Psi, N: s.N + h*d.N}
}

// deriv evaluates the vector field at one state and light level.
func (m *Model) deriv(s State, light float64) State {
	p := m.p

	var alpha float64
	if light > 0 {
		lp := math.Pow(light, p.P)
		alpha = p.Alpha0 * lp / (lp + p.I0)
	}
	bhat := p.G * (1 - s.N) * alpha

	var lightAmp, lightPhase float64
	if bhat != 0 {
		r4 := math.Pow(s.R, 4)
		r8 := r4 * r4
		lightAmp = p.A1*0.5*bhat*(1-r4)*math.Cos(s.Psi+p.BetaL1) +
			p.A2*0.5*bhat*s.R*(1-r8)*math.Cos(2*s.Psi+p.BetaL2)
		lightPhase = p.Sigma*bhat -
			p.A1*bhat*0.5*(math.Pow(s.R, 3)+1/s.R)*math.Sin(s.Psi+p.BetaL1) -
			p.A2*bhat*0.5*(1+r8)*math.Sin(2*s.Psi+p.BetaL2)
	}

	r4 := math.Pow(s.R, 4)

	return State{
		R:   -p.Gamma*s.R + p.K*math.Cos(p.Beta1)/2*s.R*(1-r4) + lightAmp,
		Psi: 2*math.Pi/p.Tau + p.K/2*math.Sin(p.Beta1)*(1+r4) + lightPhase,
		N:   60 * (alpha*(1-s.N) - p.Delta*s.N),
	}
}
