package esri_test

import (
	"testing"

	"github.com/luxrhythm/circadian/esri"
	"github.com/luxrhythm/circadian/lightschedule"
)

// benchmarkCompute scores a regular schedule of the given length with the
// given worker count. It resets the timer after setup and fails on
// unexpected errors.
func benchmarkCompute(b *testing.B, days int, workers int) {
	times, light, err := lightschedule.Regular(days, 0.1, lightschedule.Schedule{})
	if err != nil {
		b.Fatalf("schedule: %v", err)
	}
	opts := esri.DefaultOptions()
	opts.Workers = workers

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := esri.Compute(times, light, &opts); err != nil {
			b.Fatalf("compute failed: %v", err)
		}
	}
}

// BenchmarkCompute_WeekSerial scores one week of light on a single worker.
func BenchmarkCompute_WeekSerial(b *testing.B) {
	benchmarkCompute(b, 7, 1)
}

// BenchmarkCompute_WeekParallel scores one week of light across GOMAXPROCS workers.
func BenchmarkCompute_WeekParallel(b *testing.B) {
	benchmarkCompute(b, 7, 0)
}

// BenchmarkCompute_MonthParallel scores one month of light across GOMAXPROCS workers.
func BenchmarkCompute_MonthParallel(b *testing.B) {
	benchmarkCompute(b, 30, 0)
}
