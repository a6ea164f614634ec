// Package circadian is an in-memory toolkit for aligning wearable
// time-series data and quantifying how regular a light-exposure schedule
// is — from stream resampling primitives to the Entrainment Signal
// Regularity Index (ESRI).
//
// 🚀 What is circadian?
//
//	A batch-oriented, deterministic analytics library that brings together:
//		• Stream primitives: instant- and interval-indexed measurement streams
//		• Uniform grids: magnitude+unit frequencies ("10min", "1h", "1d")
//		• Resampling: bucket aggregation with interval-overlap weighting
//		• Combining: multi-stream alignment onto one shared grid
//		• Oscillator: Hannay 2019 single-population circadian model (RK4)
//		• ESRI: sliding-window entrainment regularity scoring, parallel
//
// ✨ Why choose circadian?
//
//   - Eager validation – schema and parameter errors surface before any work
//   - Deterministic – pure functions over caller-owned slices, no global state
//   - Parallel where it counts – ESRI fans out across independent windows
//   - Small API – options structs with documented defaults, sentinel errors
//
// Under the hood, everything is organized as one package per concern:
//
//	stream/        — Stream value type, shape validation, metadata
//	timegrid/      — Frequency parsing & uniform grid construction
//	resample/      — interval fraction, resampler, combiner, aligned dataset
//	hannay/        — Hannay19 amplitude/phase oscillator model
//	esri/          — Entrainment Signal Regularity Index driver
//	lightschedule/ — synthetic light schedules for demos and tests
//	cmd/circadian  — terminal demo: schedule → ESRI → colored chart
//
// Data flows:
//
//	raw stream ──resample──▶ uniform stream ──combine──▶ aligned dataset
//	light series ──esri──▶ regularity series (one oscillator run per window)
//
// Dive into DESIGN.md for the decision log and each package's doc.go for
// contracts, complexity, and error taxonomies.
//
//	go get github.com/luxrhythm/circadian
package circadian
