// Package session holds the ordered CSV lines accepted during one planning
// session. A Session is not safe for concurrent use.
package session

import (
	"io"
	"strings"

	"github.com/danmuck/chrolisctl/internal/step"
	"github.com/rs/zerolog/log"
)

type Session struct {
	lines []string
}

func New() *Session {
	return &Session{lines: make([]string, 0)}
}

// Add encodes p and appends the resulting line. On error the session is
// left unchanged.
func (s *Session) Add(p step.Params) (string, error) {
	line, err := step.EncodeLine(p)
	if err != nil {
		return "", err
	}
	s.lines = append(s.lines, line)
	log.Debug().Int("lines", len(s.lines)).Str("line", line).Msg("session: line added")
	return line, nil
}

// AddInput parses raw form text, encodes it and appends the line.
func (s *Session) AddInput(in step.Input, u step.FieldUnits) (string, error) {
	p, err := step.ParseInput(in, u)
	if err != nil {
		return "", err
	}
	return s.Add(p)
}

// AddLine validates an existing controller line and appends its canonical
// form.
func (s *Session) AddLine(line string) (string, error) {
	parsed, err := step.ParseLine(line)
	if err != nil {
		return "", err
	}
	out := parsed.CSVLine()
	s.lines = append(s.lines, out)
	return out, nil
}

// RemoveLast drops the newest line. ok is false when the session is empty.
func (s *Session) RemoveLast() (line string, ok bool) {
	if len(s.lines) == 0 {
		return "", false
	}
	last := len(s.lines) - 1
	line = s.lines[last]
	s.lines = s.lines[:last]
	log.Debug().Int("lines", len(s.lines)).Str("line", line).Msg("session: line removed")
	return line, true
}

func (s *Session) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Session) Len() int {
	return len(s.lines)
}

// String joins the lines with newlines and no trailing separator.
func (s *Session) String() string {
	return strings.Join(s.lines, "\n")
}

// WriteTo writes the program with one line per step and a trailing newline.
func (s *Session) WriteTo(w io.Writer) (int64, error) {
	if len(s.lines) == 0 {
		return 0, nil
	}
	n, err := io.WriteString(w, s.String()+"\n")
	return int64(n), err
}
