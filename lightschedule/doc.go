// Package lightschedule generates synthetic light-exposure series for
// demos, baselines, and tests.
//
// What:
//
//   - Regular: a repeating light/dark cycle — Lux from WakeHour for
//     PhotoperiodHours each day, darkness otherwise. The default
//     (wake 08:00, 16 h photoperiod) matches the schedule the ESRI
//     phase-at-midnight constant assumes.
//   - Constant: one fixed light level throughout, including the all-dark
//     baseline at Lux = 0.
//
// Both return parallel (times, lux) arrays on a fixed step in hours,
// directly consumable by esri.Compute and hannay.Model.Simulate.
//
// Errors:
//
//   - ErrBadSchedule: non-positive days or step, negative lux, wake hour
//     outside [0, 24), or photoperiod outside (0, 24].
package lightschedule
