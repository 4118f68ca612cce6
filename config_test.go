package panzoom

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero wheel factor", func(c *Config) { c.WheelFactor = 0 }},
		{"wheel factor one", func(c *Config) { c.WheelFactor = 1 }},
		{"NaN wheel factor", func(c *Config) { c.WheelFactor = math.NaN() }},
		{"zero min scale", func(c *Config) { c.MinScale = 0 }},
		{"negative min scale", func(c *Config) { c.MinScale = -1 }},
		{"negative max scale", func(c *Config) { c.MaxScale = -2 }},
		{"max below min", func(c *Config) { c.MinScale = 1; c.MaxScale = 0.5 }},
		{"negative pinch distance", func(c *Config) { c.MinPinchDistance = -1 }},
		{"bad initial", func(c *Config) { c.Initial = Transform{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{WheelFactor: 5, MinScale: -1, MaxScale: -3, MinPinchDistance: math.NaN()}.withDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("withDefaults produced invalid config: %v", err)
	}
	if cfg.WheelFactor != DefaultWheelFactor || cfg.MinScale != DefaultMinScale || cfg.MaxScale != 0 {
		t.Errorf("withDefaults = %+v", cfg)
	}
}

func TestClampScale(t *testing.T) {
	cfg := Config{MinScale: 0.1, MaxScale: 10}
	tests := []struct {
		in, want float64
	}{
		{1, 1},
		{0.05, 0.1},
		{0, 0.1},
		{-3, 0.1},
		{math.NaN(), 0.1},
		{math.Inf(-1), 0.1},
		{50, 10},
		{math.Inf(1), 10},
	}
	for _, tt := range tests {
		if got := cfg.clampScale(tt.in); got != tt.want {
			t.Errorf("clampScale(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	unbounded := Config{MinScale: 0.1}
	if got := unbounded.clampScale(math.Inf(1)); got != math.MaxFloat64 {
		t.Errorf("clampScale(+Inf) without max = %v, want MaxFloat64", got)
	}
}

func TestDecodeConfig_YAML(t *testing.T) {
	data := []byte(`
wheel_factor: 0.25
max_scale: 8
initial:
  scale: 2
  offset: {x: 10, y: -5}
`)
	cfg, err := DecodeConfig(data, "yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WheelFactor != 0.25 || cfg.MaxScale != 8 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.MinScale != DefaultMinScale {
		t.Errorf("MinScale = %v, want default %v", cfg.MinScale, DefaultMinScale)
	}
	want := Transform{Scale: 2, Offset: Vec2{10, -5}}
	if cfg.Initial != want {
		t.Errorf("Initial = %+v, want %+v", cfg.Initial, want)
	}
}

func TestDecodeConfig_TOML(t *testing.T) {
	data := []byte(`
wheel_factor = 0.2
min_scale = 0.05
min_pinch_distance = 4.0

[initial]
scale = 1.5

[initial.offset]
x = 3.0
y = 4.0
`)
	cfg, err := DecodeConfig(data, "toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WheelFactor != 0.2 || cfg.MinScale != 0.05 || cfg.MinPinchDistance != 4 {
		t.Errorf("cfg = %+v", cfg)
	}
	want := Transform{Scale: 1.5, Offset: Vec2{3, 4}}
	if cfg.Initial != want {
		t.Errorf("Initial = %+v, want %+v", cfg.Initial, want)
	}
}

func TestDecodeConfig_Errors(t *testing.T) {
	if _, err := DecodeConfig([]byte(`{}`), "ini"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("unknown format: err = %v, want ErrUnknownFormat", err)
	}
	if _, err := DecodeConfig([]byte("wheel_factor: [oops"), "yaml"); err == nil {
		t.Error("expected error for malformed YAML")
	}
	if _, err := DecodeConfig([]byte("wheel_factor = "), "toml"); err == nil {
		t.Error("expected error for malformed TOML")
	}
	if _, err := DecodeConfig([]byte("wheel_factor: 2"), "yaml"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("out-of-range value: err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "view.yml")
	if err := os.WriteFile(yamlPath, []byte("wheel_factor: 0.3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(yamlPath)
	if err != nil {
		t.Fatalf("LoadConfig(yml): %v", err)
	}
	if cfg.WheelFactor != 0.3 {
		t.Errorf("WheelFactor = %v, want 0.3", cfg.WheelFactor)
	}

	tomlPath := filepath.Join(dir, "view.toml")
	if err := os.WriteFile(tomlPath, []byte("max_scale = 16.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfig(tomlPath)
	if err != nil {
		t.Fatalf("LoadConfig(toml): %v", err)
	}
	if cfg.MaxScale != 16 {
		t.Errorf("MaxScale = %v, want 16", cfg.MaxScale)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v, want os.ErrNotExist", err)
	}
}
