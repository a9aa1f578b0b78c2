package step

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/danmuck/chrolisctl/internal/units"
)

// Input is the raw text of the planner form, one string per field.
type Input struct {
	LED           string `json:"led"`
	Frequency     string `json:"frequency"`
	TotalDuration string `json:"total_duration"`
	PulseDuration string `json:"pulse_duration"`
	Power         string `json:"power"`
}

// FieldUnits selects how the form's numeric fields are interpreted.
type FieldUnits struct {
	Frequency     units.FrequencyUnit
	TotalDuration units.DurationUnit
	PulseDuration units.DurationUnit
}

func DefaultFieldUnits() FieldUnits {
	return FieldUnits{
		Frequency:     units.Hertz,
		TotalDuration: units.Second,
		PulseDuration: units.Millisecond,
	}
}

// ParseInput converts form text into encode parameters. Non-numeric text
// fails with ErrNumericParse; an unknown unit fails with units.ErrInvalidUnit.
func ParseInput(in Input, u FieldUnits) (Params, error) {
	led, err := parseInt("LED index", in.LED)
	if err != nil {
		return Params{}, err
	}
	power, err := parseInt("power", in.Power)
	if err != nil {
		return Params{}, err
	}

	p := Params{LED: led, Brightness: power}
	if raw := strings.TrimSpace(in.Frequency); raw != "" {
		f, err := parseFloat("frequency", raw)
		if err != nil {
			return Params{}, err
		}
		hz, err := units.ToHertz(f, u.Frequency)
		if err != nil {
			return Params{}, err
		}
		p.FrequencyHz = &hz
	}

	total, err := parseFloat("total duration", in.TotalDuration)
	if err != nil {
		return Params{}, err
	}
	if p.TotalUS, err = microseconds("total duration", total, u.TotalDuration); err != nil {
		return Params{}, err
	}

	// A break has no pulse; an empty pulse field is accepted there.
	if power == 0 && strings.TrimSpace(in.PulseDuration) == "" {
		return p, nil
	}
	pulse, err := parseFloat("pulse duration", in.PulseDuration)
	if err != nil {
		return Params{}, err
	}
	if p.PulseUS, err = microseconds("pulse duration", pulse, u.PulseDuration); err != nil {
		return Params{}, err
	}
	return p, nil
}

// EncodeInput is ParseInput followed by EncodeLine.
func EncodeInput(in Input, u FieldUnits) (string, error) {
	p, err := ParseInput(in, u)
	if err != nil {
		return "", err
	}
	return EncodeLine(p)
}

// microseconds reports out-of-range durations as invalid parameters; unit
// errors pass through untouched.
func microseconds(name string, v float64, u units.DurationUnit) (int64, error) {
	us, err := units.Microseconds(v, u)
	if errors.Is(err, units.ErrOutOfRange) {
		return 0, &Error{
			Kind: KindInvalidParameter,
			Code: CodeValueRange,
			Msg:  fmt.Sprintf("%s invalid: %g %s is out of range", name, v, string(u)),
			Err:  err,
		}
	}
	return us, err
}

func parseInt(name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, numericParse(CodeNotInteger, err, "%s: %q is not a valid integer", name, raw)
	}
	return v, nil
}

func parseFloat(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
		err = strconv.ErrRange
	}
	if err != nil {
		return 0, numericParse(CodeNotNumber, err, "%s: %q is not a valid number", name, raw)
	}
	return v, nil
}
