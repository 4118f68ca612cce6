package panzoom

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultWheelFactor is the fractional scale change per wheel event (10%).
	DefaultWheelFactor = 0.1
	// DefaultMinScale is the floor every emitted scale is clamped to.
	DefaultMinScale = 1e-4
	// DefaultMinPinchDistance is the finger distance in pixels below which a
	// pinch start is deferred.
	DefaultMinPinchDistance = 1.0
)

var (
	// ErrInvalidConfig is returned by Config.Validate and LoadConfig for
	// out-of-range settings.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrUnknownFormat is returned by LoadConfig and DecodeConfig for an
	// unsupported file format.
	ErrUnknownFormat = errors.New("unknown config format")
)

// Config tunes a Controller.
type Config struct {
	// WheelFactor is the multiplicative step per wheel event, in (0, 1).
	// A wheel-down event scales by 1-WheelFactor, wheel-up by 1+WheelFactor.
	WheelFactor float64 `yaml:"wheel_factor" toml:"wheel_factor"`
	// MinScale is the smallest scale a Controller will emit. Must be > 0.
	MinScale float64 `yaml:"min_scale" toml:"min_scale"`
	// MaxScale caps the scale when > 0. Zero means no upper limit.
	MaxScale float64 `yaml:"max_scale" toml:"max_scale"`
	// MinPinchDistance is the smallest finger distance that starts a pinch.
	// Closer contacts defer the start until they separate.
	MinPinchDistance float64 `yaml:"min_pinch_distance" toml:"min_pinch_distance"`
	// Initial is the transform Controller.Reset restores.
	Initial Transform `yaml:"initial" toml:"initial"`
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		WheelFactor:      DefaultWheelFactor,
		MinScale:         DefaultMinScale,
		MinPinchDistance: DefaultMinPinchDistance,
		Initial:          Identity(),
	}
}

// Validate reports the first out-of-range setting, wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !(c.WheelFactor > 0 && c.WheelFactor < 1):
		return fmt.Errorf("%w: wheel_factor %v outside (0, 1)", ErrInvalidConfig, c.WheelFactor)
	case !(c.MinScale > 0) || math.IsInf(c.MinScale, 0):
		return fmt.Errorf("%w: min_scale %v must be positive", ErrInvalidConfig, c.MinScale)
	case c.MaxScale < 0 || math.IsNaN(c.MaxScale):
		return fmt.Errorf("%w: max_scale %v must be zero or positive", ErrInvalidConfig, c.MaxScale)
	case c.MaxScale > 0 && c.MaxScale < c.MinScale:
		return fmt.Errorf("%w: max_scale %v below min_scale %v", ErrInvalidConfig, c.MaxScale, c.MinScale)
	case c.MinPinchDistance < 0 || math.IsNaN(c.MinPinchDistance):
		return fmt.Errorf("%w: min_pinch_distance %v must not be negative", ErrInvalidConfig, c.MinPinchDistance)
	case !c.Initial.Valid():
		return fmt.Errorf("%w: initial transform %+v", ErrInvalidConfig, c.Initial)
	}
	return nil
}

// withDefaults replaces zero or out-of-range fields with their defaults.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if !(c.WheelFactor > 0 && c.WheelFactor < 1) {
		c.WheelFactor = d.WheelFactor
	}
	if !(c.MinScale > 0) || math.IsInf(c.MinScale, 0) {
		c.MinScale = d.MinScale
	}
	if c.MaxScale < 0 || math.IsNaN(c.MaxScale) || (c.MaxScale > 0 && c.MaxScale < c.MinScale) {
		c.MaxScale = 0
	}
	if !(c.MinPinchDistance >= 0) {
		c.MinPinchDistance = d.MinPinchDistance
	}
	if !c.Initial.Valid() {
		c.Initial = d.Initial
	}
	return c
}

// clampScale keeps s within [MinScale, MaxScale]. NaN maps to MinScale and
// +Inf to MaxScale, or the largest float when there is no upper limit.
func (c Config) clampScale(s float64) float64 {
	if math.IsNaN(s) || s < c.MinScale {
		return c.MinScale
	}
	if c.MaxScale > 0 && s > c.MaxScale {
		return c.MaxScale
	}
	if math.IsInf(s, 1) {
		return math.MaxFloat64
	}
	return s
}

// LoadConfig reads a Config from a .yaml, .yml, or .toml file. Fields absent
// from the file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := DecodeConfig(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig parses data in the given format ("yaml", "yml", or "toml")
// over DefaultConfig and validates the result.
func DecodeConfig(data []byte, format string) (Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse yaml: %w", err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
