package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/danmuck/chrolisctl/internal/step"
	"github.com/danmuck/chrolisctl/internal/units"
	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultName       = "chrolis-planner"
	DefaultAddr       = ":9300"
	DefaultCorsOrigin = "http://localhost:3000"
)

type PlannerConfig struct {
	Name        string      `toml:"name"`
	Addr        string      `toml:"addr"`
	CorsOrigins []string    `toml:"cors_origins"`
	Units       UnitsConfig `toml:"units"`
}

// UnitsConfig holds the unit tags used to read form fields.
type UnitsConfig struct {
	Frequency     string `toml:"frequency"`
	TotalDuration string `toml:"total_duration"`
	PulseDuration string `toml:"pulse_duration"`
}

func Default() PlannerConfig {
	return PlannerConfig{
		Name:        DefaultName,
		Addr:        DefaultAddr,
		CorsOrigins: []string{DefaultCorsOrigin},
		Units: UnitsConfig{
			Frequency:     string(units.Hertz),
			TotalDuration: string(units.Second),
			PulseDuration: string(units.Millisecond),
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (PlannerConfig, error) {
	cfg := Default()
	if err := loadToml(path, &cfg); err != nil {
		return PlannerConfig{}, err
	}
	applyDefaults(&cfg)
	if err := Validate(cfg); err != nil {
		return PlannerConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func applyDefaults(cfg *PlannerConfig) {
	def := Default()
	if strings.TrimSpace(cfg.Name) == "" {
		cfg.Name = def.Name
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		cfg.Addr = def.Addr
	}
	if strings.TrimSpace(cfg.Units.Frequency) == "" {
		cfg.Units.Frequency = def.Units.Frequency
	}
	if strings.TrimSpace(cfg.Units.TotalDuration) == "" {
		cfg.Units.TotalDuration = def.Units.TotalDuration
	}
	if strings.TrimSpace(cfg.Units.PulseDuration) == "" {
		cfg.Units.PulseDuration = def.Units.PulseDuration
	}
}

func Validate(cfg PlannerConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("planner config missing name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("planner config missing addr")
	}
	for i, origin := range cfg.CorsOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("cors_origins[%d] is empty", i)
		}
	}
	if _, err := cfg.Units.FieldUnits(); err != nil {
		return err
	}
	return nil
}

// FieldUnits resolves the configured tags for the form parser.
func (u UnitsConfig) FieldUnits() (step.FieldUnits, error) {
	freq, err := units.ParseFrequencyUnit(u.Frequency)
	if err != nil {
		return step.FieldUnits{}, fmt.Errorf("units.frequency invalid: %w", err)
	}
	total, err := units.ParseDurationUnit(u.TotalDuration)
	if err != nil {
		return step.FieldUnits{}, fmt.Errorf("units.total_duration invalid: %w", err)
	}
	pulse, err := units.ParseDurationUnit(u.PulseDuration)
	if err != nil {
		return step.FieldUnits{}, fmt.Errorf("units.pulse_duration invalid: %w", err)
	}
	return step.FieldUnits{Frequency: freq, TotalDuration: total, PulseDuration: pulse}, nil
}
