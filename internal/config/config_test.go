package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/chrolisctl/internal/units"
)

func TestTemplateLoadsAsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.toml")
	if err := WriteTemplate(path, false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if err := WriteTemplate(path, false); err == nil {
		t.Fatalf("expected existing config to be kept")
	}
	if err := WriteTemplate(path, true); err != nil {
		t.Fatalf("overwrite template: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := Default()
	if cfg.Name != def.Name || cfg.Addr != def.Addr || cfg.Units != def.Units {
		t.Fatalf("template differs from defaults: %+v", cfg)
	}
	if len(cfg.CorsOrigins) != 1 || cfg.CorsOrigins[0] != DefaultCorsOrigin {
		t.Fatalf("unexpected cors origins: %+v", cfg.CorsOrigins)
	}
}

func TestLoadPartialOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.toml")
	content := `
addr = "127.0.0.1:9400"

[units]
pulse_duration = "us"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9400" {
		t.Fatalf("unexpected addr: %q", cfg.Addr)
	}
	if cfg.Name != DefaultName {
		t.Fatalf("unexpected name: %q", cfg.Name)
	}
	fu, err := cfg.Units.FieldUnits()
	if err != nil {
		t.Fatalf("field units: %v", err)
	}
	if fu.PulseDuration != units.Microsecond || fu.TotalDuration != units.Second || fu.Frequency != units.Hertz {
		t.Fatalf("unexpected field units: %+v", fu)
	}
}

func TestLoadRejectsUnknownUnit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.toml")
	content := `
[units]
frequency = "kHz"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, units.ErrInvalidUnit) {
		t.Fatalf("expected ErrInvalidUnit, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected load error")
	}
}

func TestValidateEmptyOrigin(t *testing.T) {
	cfg := Default()
	cfg.CorsOrigins = []string{""}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected validation error")
	}
}
