package step

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	MinLEDIndex   = 0
	MaxLEDIndex   = 5
	MinBrightness = 0
	MaxBrightness = 1000

	// ResolutionUS is the controller timer resolution.
	ResolutionUS = 5

	usPerMS = 1_000
	usPerS  = 1_000_000
)

// Step is one row of a Chrolis program: a pulse train or, with brightness
// 0, a break. Durations are held in microseconds. The zero value is not a
// valid step; build one with New, Encode or ParseLine.
type Step struct {
	led          int
	pulseUS      int64
	gapUS        int64
	pulses       int64
	brightness   int
	pulsesForced bool
}

// New validates the tuple and returns the step. A break (brightness 0)
// always carries exactly one pulse; any other count is replaced with 1 and
// reported through a warning log and PulsesForced.
func New(led int, pulseUS, gapUS, pulses int64, brightness int) (Step, error) {
	if led < MinLEDIndex || led > MaxLEDIndex {
		return Step{}, invalidParameter(CodeLEDIndexRange,
			"LED index invalid: should be %d <= %d <= %d", MinLEDIndex, led, MaxLEDIndex)
	}
	if pulseUS < 0 || pulseUS%ResolutionUS != 0 {
		return Step{}, invalidParameter(CodePulseResolution,
			"Pulse duration invalid: %d us should be a non-negative multiple of %d us", pulseUS, ResolutionUS)
	}
	if gapUS < 0 || gapUS%ResolutionUS != 0 {
		return Step{}, invalidParameter(CodeGapResolution,
			"Time between pulses invalid: %d us should be a non-negative multiple of %d us", gapUS, ResolutionUS)
	}
	if brightness < MinBrightness || brightness > MaxBrightness {
		return Step{}, invalidParameter(CodeBrightnessRange,
			"Power invalid: should be %d <= %d <= %d", MinBrightness, brightness, MaxBrightness)
	}
	if pulseUS > math.MaxInt64-gapUS {
		return Step{}, invalidParameter(CodeValueRange,
			"Cycle duration invalid: %d us + %d us does not fit a 64-bit cycle", pulseUS, gapUS)
	}

	s := Step{led: led, pulseUS: pulseUS, gapUS: gapUS, pulses: pulses, brightness: brightness}
	if brightness == 0 {
		if pulses != 1 {
			log.Warn().
				Int("led", led).
				Int64("n_pulses", pulses).
				Msg("break step: number of pulses forced to 1")
			s.pulses = 1
			s.pulsesForced = true
		}
		return s, nil
	}
	if pulses <= 0 {
		return Step{}, invalidParameter(CodePulseCount,
			"Number of pulses invalid: should be 0 < %d", pulses)
	}
	cycle := pulseUS + gapUS
	if cycle == 0 {
		return Step{}, invalidParameter(CodeCycleZero,
			"Cycle duration invalid: pulse and time between pulses are both 0 us")
	}
	if pulses > math.MaxInt64/cycle {
		return Step{}, invalidParameter(CodePulseCount,
			"Number of pulses invalid: %d pulses of %d us overflow the total duration", pulses, cycle)
	}
	return s, nil
}

func (s Step) LED() int { return s.led }
func (s Step) PulseUS() int64 { return s.pulseUS }
func (s Step) GapUS() int64 { return s.gapUS }
func (s Step) Pulses() int64 { return s.pulses }
func (s Step) Brightness() int { return s.brightness }
func (s Step) IsBreak() bool { return s.brightness == 0 }
func (s Step) CycleUS() int64 { return s.pulseUS + s.gapUS }
func (s Step) TotalUS() int64 { return s.pulses * s.CycleUS() }
func (s Step) PulsesForced() bool { return s.pulsesForced }

// USMode reports whether the durations need microsecond units on the wire.
func (s Step) USMode() bool {
	return s.pulseUS%usPerMS != 0 || s.gapUS%usPerMS != 0
}

// CSVLine renders the six-field controller row.
func (s Step) CSVLine() string {
	pulse, gap, mode := s.pulseUS, s.gapUS, 1
	if !s.USMode() {
		pulse /= usPerMS
		gap /= usPerMS
		mode = 0
	}
	return fmt.Sprintf("%d,%d,%d,%d,%d,%d", s.led, pulse, gap, s.pulses, s.brightness, mode)
}

// String describes the step for a human reviewer.
func (s Step) String() string {
	if s.IsBreak() {
		return fmt.Sprintf("Break duration: %s s", formatSeconds(s.gapUS))
	}
	freq := usPerS / float64(s.CycleUS())
	total := float64(s.TotalUS()) / usPerS
	pulse := fmt.Sprintf("%d ms", s.pulseUS/usPerMS)
	if s.USMode() {
		pulse = fmt.Sprintf("%d us", s.pulseUS)
	}
	return fmt.Sprintf("LED %d, frequency: %.1f Hz, total duration: %.1f s, pulse duration: %s, power: %.1f %%",
		s.led+1, freq, total, pulse, float64(s.brightness)/10)
}

// formatSeconds prints microseconds as the shortest exact decimal seconds,
// keeping at least one fractional digit.
func formatSeconds(us int64) string {
	out := strconv.FormatFloat(float64(us)/usPerS, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
