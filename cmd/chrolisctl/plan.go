package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/chrolisctl/internal/session"
	"github.com/danmuck/chrolisctl/internal/step"
	"github.com/danmuck/chrolisctl/internal/units"
)

type planFile struct {
	Units planUnits  `toml:"units"`
	Steps []planStep `toml:"steps"`
}

type planUnits struct {
	Frequency     string `toml:"frequency"`
	TotalDuration string `toml:"total_duration"`
	PulseDuration string `toml:"pulse_duration"`
}

// planStep is either a csv row or a parameter set. Frequency is a pointer
// so an omitted key means no repetition.
type planStep struct {
	CSV           string   `toml:"csv"`
	LED           int      `toml:"led"`
	Frequency     *float64 `toml:"frequency"`
	TotalDuration float64  `toml:"total_duration"`
	PulseDuration float64  `toml:"pulse_duration"`
	Power         int      `toml:"power"`
}

// loadPlan encodes every step of the plan at path into a new session.
// fu supplies the units a plan does not override.
func loadPlan(path string, fu step.FieldUnits) (*session.Session, error) {
	var raw planFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load plan: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("units", "frequency") {
		if fu.Frequency, err = units.ParseFrequencyUnit(raw.Units.Frequency); err != nil {
			return nil, fmt.Errorf("parse units.frequency: %w", err)
		}
	}
	if meta.IsDefined("units", "total_duration") {
		if fu.TotalDuration, err = units.ParseDurationUnit(raw.Units.TotalDuration); err != nil {
			return nil, fmt.Errorf("parse units.total_duration: %w", err)
		}
	}
	if meta.IsDefined("units", "pulse_duration") {
		if fu.PulseDuration, err = units.ParseDurationUnit(raw.Units.PulseDuration); err != nil {
			return nil, fmt.Errorf("parse units.pulse_duration: %w", err)
		}
	}

	s := session.New()
	for i, ps := range raw.Steps {
		if line := strings.TrimSpace(ps.CSV); line != "" {
			if _, err := s.AddLine(line); err != nil {
				return nil, fmt.Errorf("plan step %d: %w", i+1, err)
			}
			continue
		}
		p, err := ps.params(fu)
		if err != nil {
			return nil, fmt.Errorf("plan step %d: %w", i+1, err)
		}
		if _, err := s.Add(p); err != nil {
			return nil, fmt.Errorf("plan step %d: %w", i+1, err)
		}
	}
	return s, nil
}

func (ps planStep) params(fu step.FieldUnits) (step.Params, error) {
	p := step.Params{LED: ps.LED, Brightness: ps.Power}
	if ps.Frequency != nil {
		hz, err := units.ToHertz(*ps.Frequency, fu.Frequency)
		if err != nil {
			return step.Params{}, err
		}
		p.FrequencyHz = &hz
	}
	var err error
	if p.TotalUS, err = units.Microseconds(ps.TotalDuration, fu.TotalDuration); err != nil {
		return step.Params{}, err
	}
	if p.PulseUS, err = units.Microseconds(ps.PulseDuration, fu.PulseDuration); err != nil {
		return step.Params{}, err
	}
	return p, nil
}
