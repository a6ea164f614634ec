// Package hannay implements the Hannay 2019 single-population macroscopic
// model of the human circadian pacemaker: amplitude R, phase ψ, and
// photoreceptor activation n driven by a light trajectory in lux.
//
// What:
//
//   - Model is a parameterized continuous-time dynamical system. Simulate
//     integrates it with classical RK4 over a caller-supplied time array
//     (hours), holding each step's light sample constant across the step.
//   - Trajectory records every intermediate State; regularity scoring only
//     consumes the final amplitude, but the full path supports inspection.
//
// Why:
//
//   - The Entrainment Signal Regularity Index (esri package) asks, per
//     sliding window, how much an unentrained oscillator entrains under the
//     actual light that follows; this model is the reference answer.
//   - With K = 0 and γ = 0 the amplitude has no intrinsic dynamics: absent
//     light it stays wherever it starts, isolating the light-driven
//     contribution. That configuration is the ESRI workhorse.
//
// Numerics:
//
//   - When the photic drive B̂ is zero (darkness, or fully adapted
//     photoreceptors), the light terms — which contain a 1/R factor — are
//     identically zero. They are computed as zero rather than 0·Inf, so
//     R = 0 in darkness is a true fixed point.
//   - A too-coarse integration step can push R negative; callers treat
//     negative amplitudes as numerically invalid (see esri).
//
// Errors:
//
//   - ErrBadParams: a non-finite model parameter.
//   - ErrBadSimInput: time/light arrays of unequal length, fewer than two
//     samples, or a non-increasing time array.
//
// Complexity: Simulate is O(len(times)) time and space.
package hannay
