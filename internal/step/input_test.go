package step

import (
	"errors"
	"testing"

	"github.com/danmuck/chrolisctl/internal/units"
)

func TestEncodeInputDefaults(t *testing.T) {
	cases := []struct {
		in   Input
		want string
	}{
		{in: Input{LED: "1", Frequency: "10", TotalDuration: "2", PulseDuration: "50", Power: "500"}, want: "0,50,50,20,500,0"},
		{in: Input{LED: "1", Frequency: "", TotalDuration: "1.5", PulseDuration: "", Power: "0"}, want: "0,0,1500,1,0,0"},
		{in: Input{LED: " 6 ", Frequency: " ", TotalDuration: "0.2", PulseDuration: "50", Power: "300"}, want: "5,50,150,1,300,0"},
		{in: Input{LED: "2", Frequency: "40", TotalDuration: "2.3", PulseDuration: "5", Power: "1000"}, want: "1,5,20,92,1000,0"},
	}
	for _, tc := range cases {
		got, err := EncodeInput(tc.in, DefaultFieldUnits())
		if err != nil {
			t.Fatalf("%+v: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%+v: got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestEncodeInputCustomUnits(t *testing.T) {
	u := FieldUnits{
		Frequency:     units.MilliHertz,
		TotalDuration: units.Second,
		PulseDuration: units.Microsecond,
	}
	got, err := EncodeInput(Input{LED: "1", Frequency: "500", TotalDuration: "10", PulseDuration: "100000", Power: "500"}, u)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got != "0,100,1900,5,500,0" {
		t.Fatalf("unexpected line: %q", got)
	}
}

func TestParseInputNumericErrors(t *testing.T) {
	bad := []Input{
		{LED: "one", TotalDuration: "1", PulseDuration: "5", Power: "10"},
		{LED: "1", Frequency: "fast", TotalDuration: "1", PulseDuration: "5", Power: "10"},
		{LED: "1", TotalDuration: "", PulseDuration: "5", Power: "10"},
		{LED: "1", TotalDuration: "NaN", PulseDuration: "5", Power: "10"},
		{LED: "1", TotalDuration: "1", PulseDuration: "", Power: "10"},
		{LED: "1", TotalDuration: "1", PulseDuration: "5", Power: "50.5"},
	}
	for _, in := range bad {
		_, err := ParseInput(in, DefaultFieldUnits())
		if !errors.Is(err, ErrNumericParse) {
			t.Fatalf("%+v: expected ErrNumericParse, got %v", in, err)
		}
	}
}

func TestParseInputInvalidUnit(t *testing.T) {
	u := DefaultFieldUnits()
	u.TotalDuration = units.DurationUnit("min")
	_, err := ParseInput(Input{LED: "1", TotalDuration: "1", PulseDuration: "5", Power: "10"}, u)
	if !errors.Is(err, units.ErrInvalidUnit) {
		t.Fatalf("expected ErrInvalidUnit, got %v", err)
	}
}

func TestParseInputFrequencyAbsent(t *testing.T) {
	p, err := ParseInput(Input{LED: "3", TotalDuration: "1", PulseDuration: "5", Power: "10"}, DefaultFieldUnits())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.FrequencyHz != nil {
		t.Fatalf("expected no frequency, got %v", *p.FrequencyHz)
	}
	if p.LED != 3 || p.TotalUS != 1_000_000 || p.PulseUS != 5_000 || p.Brightness != 10 {
		t.Fatalf("unexpected params: %+v", p)
	}
}

func TestParseInputDurationOutOfRange(t *testing.T) {
	_, err := ParseInput(Input{LED: "1", TotalDuration: "1e16", PulseDuration: "5", Power: "10"}, DefaultFieldUnits())
	if !errors.Is(err, ErrInvalidParameter) || !errors.Is(err, units.ErrOutOfRange) {
		t.Fatalf("expected out of range invalid parameter, got %v", err)
	}
	var stepErr *Error
	if !errors.As(err, &stepErr) || stepErr.Code != CodeValueRange {
		t.Fatalf("expected code %q, got %v", CodeValueRange, err)
	}
}
