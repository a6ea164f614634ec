// Package main implements the circadian CLI: synthesize a light schedule,
// score it with the Entrainment Signal Regularity Index, and render the
// series as a colored terminal chart.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/luxrhythm/circadian/esri"
	"github.com/luxrhythm/circadian/lightschedule"
)

var (
	days         = flag.Int("days", 10, "length of the synthetic light schedule in days")
	stepHours    = flag.Float64("step", 0.1, "sampling step of the light series in hours")
	lux          = flag.Float64("lux", lightschedule.DefaultLux, "light level during the photoperiod")
	wakeHour     = flag.Float64("wake", lightschedule.DefaultWakeHour, "hour of day the lights come on")
	photoperiod  = flag.Float64("photoperiod", lightschedule.DefaultPhotoperiodHours, "hours of light per day")
	dark         = flag.Bool("dark", false, "score constant darkness instead of a regular schedule")
	analysisDays = flag.Int("analysis-days", esri.DefaultAnalysisDays, "entrainment window length in days")
	esriStep     = flag.Float64("esri-dt", esri.DefaultStepHours, "spacing between index starting points in hours")
	amplitude    = flag.Float64("amplitude", esri.DefaultInitialAmplitude, "initial oscillator amplitude (darkness baseline)")
	workers      = flag.Int("workers", 0, "parallel simulation workers (0 = GOMAXPROCS)")
	verbose      = flag.Bool("verbose", false, "enable verbose logging")
)

// barWidth is the maximum chart bar length in characters.
const barWidth = 40

func main() {
	flag.Parse()

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var (
		times, light []float64
		err          error
	)
	if *dark {
		times, light, err = lightschedule.Constant(*days, *stepHours, 0)
	} else {
		times, light, err = lightschedule.Regular(*days, *stepHours, lightschedule.Schedule{
			Lux:              *lux,
			WakeHour:         *wakeHour,
			PhotoperiodHours: *photoperiod,
		})
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "schedule: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("schedule built", "samples", len(times), "days", *days, "step_hours", *stepHours)

	opts := esri.DefaultOptions()
	opts.AnalysisDays = *analysisDays
	opts.StepHours = *esriStep
	opts.InitialAmplitude = *amplitude
	opts.Workers = *workers

	series, err := esri.Compute(times, light, &opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "esri: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("esri computed", "starts", series.Len(), "invalid", series.Invalid)

	fmt.Print(renderChart(series, *amplitude))

	if series.Invalid > 0 {
		warn := color.New(color.FgYellow)
		warn.Fprintf(os.Stderr,
			"⚠️  %d of %d starting points were numerically invalid; rerun with a smaller -step\n",
			series.Invalid, series.Len())
	}
}

// renderChart draws one line per starting point: timestamp, bar, value.
// Bars above the darkness baseline render green, at-or-below render grey,
// invalid points render a red marker.
func renderChart(s esri.Series, baseline float64) string {
	var out strings.Builder
	out.WriteString("📈 Entrainment Signal Regularity Index\n")
	out.WriteString(strings.Repeat("─", 60) + "\n")

	maxVal := baseline
	for _, v := range s.Values {
		if !math.IsNaN(v) && v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	green := color.New(color.FgGreen)
	grey := color.New(color.FgHiBlack)
	red := color.New(color.FgRed)
	for i, v := range s.Values {
		day := int(s.Times[i] / 24)
		hour := math.Mod(s.Times[i], 24)
		line := fmt.Sprintf("d%02d %05.2fh ", day, hour)

		if math.IsNaN(v) {
			line += red.Sprint("× invalid")
		} else {
			length := int(v / maxVal * barWidth)
			bar := strings.Repeat("█", length)
			if length == 0 {
				bar = "·"
			}
			if v > baseline {
				line += green.Sprint(bar)
			} else {
				line += grey.Sprint(bar)
			}
			line += fmt.Sprintf(" %.3f", v)
		}
		out.WriteString(line + "\n")
	}

	return out.String()
}
