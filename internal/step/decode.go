package step

import (
	"bufio"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	legacyFieldCount  = 5
	currentFieldCount = 6
)

// ParseLine reads a five-field legacy row (milliseconds) or a six-field row
// whose last field selects microseconds (1) or milliseconds (0).
func ParseLine(line string) (Step, error) {
	raw := strings.TrimSpace(line)
	fields := strings.Split(raw, ",")
	if len(fields) != legacyFieldCount && len(fields) != currentFieldCount {
		return Step{}, invalidLine(CodeFieldCount,
			"The following line is invalid (%d columns, expected %d or %d): %s",
			len(fields), legacyFieldCount, currentFieldCount, raw)
	}

	values := make([]int64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return Step{}, numericParse(CodeNotInteger, err,
				"The following line is invalid (column %d is not an integer: %q): %s", i+1, field, raw)
		}
		values[i] = v
	}

	var usMode int64
	if len(values) == currentFieldCount {
		usMode = values[5]
	}
	pulse, gap := values[1], values[2]
	if pulse < 0 {
		return Step{}, invalidParameter(CodePulseResolution,
			"Pulse duration invalid: %d should be non-negative", pulse)
	}
	if gap < 0 {
		return Step{}, invalidParameter(CodeGapResolution,
			"Time between pulses invalid: %d should be non-negative", gap)
	}
	switch usMode {
	case 0:
		const limit = math.MaxInt64 / usPerMS
		if pulse > limit || gap > limit {
			return Step{}, invalidParameter(CodeValueRange,
				"The following line is invalid (duration too large): %s", raw)
		}
		pulse *= usPerMS
		gap *= usPerMS
	case 1:
	default:
		return Step{}, invalidParameter(CodeUSModeFlag,
			"us_mode invalid: should be 0 or 1, got %d", usMode)
	}

	led, brightness := values[0], values[4]
	if led < math.MinInt32 || led > math.MaxInt32 || brightness < math.MinInt32 || brightness > math.MaxInt32 {
		return Step{}, invalidParameter(CodeValueRange,
			"The following line is invalid (value out of range): %s", raw)
	}
	return New(int(led), pulse, gap, values[3], int(brightness))
}

// DecodeLine parses line and returns its description.
func DecodeLine(line string) (string, error) {
	s, err := ParseLine(line)
	if err != nil {
		return "", err
	}
	return s.String(), nil
}

// Entry is one decoded program row and its 1-based line number.
type Entry struct {
	Line int
	Step Step
}

// ParseProgram parses every non-blank line of text. The first bad line
// aborts parsing; its error carries the line number.
func ParseProgram(text string) ([]Entry, error) {
	out := make([]Entry, 0)
	scanner := bufio.NewScanner(strings.NewReader(text))
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		s, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", n, err)
		}
		out = append(out, Entry{Line: n, Step: s})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read program: %w", err)
	}
	return out, nil
}

// DecodeProgram describes every non-blank line of text as "Step n: ...",
// where n is the 1-based line number.
func DecodeProgram(text string) ([]string, error) {
	entries, err := ParseProgram(text)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, fmt.Sprintf("Step %d: %s", e.Line, e.Step))
	}
	return out, nil
}
