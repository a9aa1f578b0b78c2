package step

import "math"

// Params are the normalized inputs of one encode call.
type Params struct {
	// LED is 1-based as entered by the user.
	LED int
	// FrequencyHz nil or zero means a single pulse (or a break).
	FrequencyHz *float64
	TotalUS     int64
	PulseUS     int64
	Brightness  int
}

func Frequency(hz float64) *float64 {
	return &hz
}

// Encode derives the controller tuple from p and validates it.
func Encode(p Params) (Step, error) {
	if p.LED < MinLEDIndex+1 || p.LED > MaxLEDIndex+1 {
		return Step{}, invalidParameter(CodeLEDIndexRange,
			"LED index invalid: should be %d <= %d <= %d", MinLEDIndex+1, p.LED, MaxLEDIndex+1)
	}
	led := p.LED - 1

	if p.Brightness == 0 {
		if p.TotalUS < 0 {
			return Step{}, invalidParameter(CodeNegativeBreak,
				"Break duration invalid: should be 0 <= %d us", p.TotalUS)
		}
		return New(led, 0, p.TotalUS, 1, 0)
	}

	if p.FrequencyHz == nil || *p.FrequencyHz == 0 {
		gap := p.TotalUS - p.PulseUS
		if gap < 0 {
			return Step{}, invalidParameter(CodeNegativeBreak,
				"Pulse duration invalid: %d us is longer than the total duration %d us", p.PulseUS, p.TotalUS)
		}
		return New(led, p.PulseUS, gap, 1, p.Brightness)
	}

	freq := *p.FrequencyHz
	cycleUS := usPerS / freq
	if !(freq > 0) || cycleUS >= math.MaxInt64 {
		return Step{}, invalidParameter(CodeFrequencyRange,
			"Frequency invalid: should be a positive number of Hz, got %g", freq)
	}
	cycle := int64(cycleUS)
	if cycle <= 0 {
		return Step{}, invalidParameter(CodeFrequencyRange,
			"Frequency invalid: %g Hz is faster than the 1 us cycle limit", freq)
	}
	if p.PulseUS <= 0 {
		return Step{}, invalidParameter(CodePulseZero,
			"Pulse duration invalid: should be 0 < %d <= %d us", p.PulseUS, cycle)
	}
	gap := cycle - p.PulseUS
	if gap < 0 {
		return Step{}, invalidParameter(CodePulseExceedsCycle,
			"Pulse duration invalid: should be 0 < %d <= %d us", p.PulseUS, cycle)
	}
	gap -= gap % ResolutionUS

	pulses := p.TotalUS / cycle
	if pulses <= 0 {
		return Step{}, invalidParameter(CodePulseCount,
			"Total duration invalid: %d us is shorter than one %d us cycle", p.TotalUS, cycle)
	}
	return New(led, p.PulseUS, gap, pulses, p.Brightness)
}

// EncodeLine is Encode followed by CSVLine.
func EncodeLine(p Params) (string, error) {
	s, err := Encode(p)
	if err != nil {
		return "", err
	}
	return s.CSVLine(), nil
}
