package step

import (
	"errors"
	"fmt"
)

var (
	ErrNumericParse     = errors.New("step: numeric parse failure")
	ErrInvalidParameter = errors.New("step: invalid parameter")
	ErrInvalidLine      = errors.New("step: invalid line")
)

type Kind int

const (
	KindNumericParse Kind = iota + 1
	KindInvalidParameter
	KindInvalidLine
)

func (k Kind) String() string {
	switch k {
	case KindNumericParse:
		return "numeric_parse"
	case KindInvalidParameter:
		return "invalid_parameter"
	case KindInvalidLine:
		return "invalid_line"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindNumericParse:
		return ErrNumericParse
	case KindInvalidParameter:
		return ErrInvalidParameter
	case KindInvalidLine:
		return ErrInvalidLine
	default:
		return nil
	}
}

// Code identifies which rule rejected the input.
type Code string

const (
	CodeNotInteger        Code = "not_integer"
	CodeNotNumber         Code = "not_number"
	CodeLEDIndexRange     Code = "led_index_range"
	CodePulseResolution   Code = "pulse_resolution"
	CodeGapResolution     Code = "gap_resolution"
	CodePulseExceedsCycle Code = "pulse_exceeds_cycle"
	CodePulseZero         Code = "pulse_zero"
	CodeNegativeBreak     Code = "negative_break"
	CodePulseCount        Code = "pulse_count"
	CodeBrightnessRange   Code = "brightness_range"
	CodeFrequencyRange    Code = "frequency_range"
	CodeUSModeFlag        Code = "us_mode_flag"
	CodeCycleZero         Code = "cycle_zero"
	CodeValueRange        Code = "value_range"
	CodeFieldCount        Code = "field_count"
)

// Error is returned by every validation and parse failure in this package.
// It matches ErrNumericParse, ErrInvalidParameter or ErrInvalidLine under
// errors.Is according to Kind.
type Error struct {
	Kind Kind
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func invalidParameter(code Code, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidParameter, Code: code, Msg: fmt.Sprintf(format, args...)}
}

func invalidLine(code Code, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidLine, Code: code, Msg: fmt.Sprintf(format, args...)}
}

func numericParse(code Code, err error, format string, args ...any) *Error {
	return &Error{Kind: KindNumericParse, Code: code, Msg: fmt.Sprintf(format, args...), Err: err}
}
