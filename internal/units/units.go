package units

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidUnit = errors.New("units: invalid unit")
	ErrOutOfRange  = errors.New("units: value out of range")
)

type DurationUnit string

const (
	Microsecond DurationUnit = "us"
	Millisecond DurationUnit = "ms"
	Second      DurationUnit = "s"
)

type FrequencyUnit string

const (
	MilliHertz FrequencyUnit = "mHz"
	Hertz      FrequencyUnit = "Hz"
)

// float64 products within this distance of an integer are treated as that
// integer before flooring, so 2.3 s is 2300000 us and not 2299999.
const floorTolerance = 1e-6

func (u DurationUnit) factor() (float64, error) {
	switch u {
	case Microsecond:
		return 1, nil
	case Millisecond:
		return 1_000, nil
	case Second:
		return 1_000_000, nil
	default:
		return 0, fmt.Errorf("%w: duration %q", ErrInvalidUnit, string(u))
	}
}

// Microseconds converts value expressed in u to whole microseconds,
// discarding any fractional microsecond.
func Microseconds(value float64, u DurationUnit) (int64, error) {
	f, err := u.factor()
	if err != nil {
		return 0, err
	}
	x := value * f
	if r := math.Round(x); math.Abs(x-r) < floorTolerance {
		x = r
	}
	if math.IsNaN(x) || x >= math.MaxInt64 || x < math.MinInt64 {
		return 0, fmt.Errorf("%w: %g %s is not representable in microseconds", ErrOutOfRange, value, string(u))
	}
	return int64(math.Floor(x)), nil
}

// ToHertz converts value expressed in u to hertz.
func ToHertz(value float64, u FrequencyUnit) (float64, error) {
	switch u {
	case MilliHertz:
		return value / 1_000, nil
	case Hertz:
		return value, nil
	default:
		return 0, fmt.Errorf("%w: frequency %q", ErrInvalidUnit, string(u))
	}
}

func ParseDurationUnit(raw string) (DurationUnit, error) {
	u := DurationUnit(strings.TrimSpace(raw))
	if _, err := u.factor(); err != nil {
		return "", err
	}
	return u, nil
}

// ParseFrequencyUnit is case sensitive: "mHz" and "MHz" differ by 10^9.
func ParseFrequencyUnit(raw string) (FrequencyUnit, error) {
	u := FrequencyUnit(strings.TrimSpace(raw))
	if _, err := ToHertz(0, u); err != nil {
		return "", err
	}
	return u, nil
}
