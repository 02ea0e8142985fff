package loupe

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultMinScale         = 0.5
	DefaultMaxScale         = 2.0
	DefaultScaleStep        = 0.1
	DefaultPinchSensitivity = 0.005
	DefaultZoomModifiers    = ModCtrl | ModMeta
	DefaultTransition       = 100 * time.Millisecond
)

// Config controls a Controller. A Config may be replaced between
// interactions with Controller.SetConfig; listeners always see the latest
// one. Zero numeric fields fall back to their defaults.
type Config struct {
	// MinScale and MaxScale bound the zoom level.
	MinScale float64 `yaml:"min_scale"`
	MaxScale float64 `yaml:"max_scale"`
	// ScaleStep is the zoom increment applied per wheel notch.
	ScaleStep float64 `yaml:"scale_step"`
	// DisableDrag turns off mouse and one-finger panning.
	DisableDrag bool `yaml:"disable_drag"`
	// PinchSensitivity converts finger-distance change in pixels to a scale
	// change.
	PinchSensitivity float64 `yaml:"pinch_sensitivity"`
	// ZoomModifiers lists the keys of which at least one must be held for
	// the wheel to zoom. Without one the wheel event is left alone.
	ZoomModifiers KeyModifiers `yaml:"zoom_modifiers"`
	// Transition is the settle duration used when not dragging. Negative
	// disables the transition.
	Transition time.Duration `yaml:"transition"`

	// OnUserZoom is called on a deferred tick after a user gesture changed
	// the scale, and after every double-activation reset.
	OnUserZoom func(scale float64) `yaml:"-"`
}

// DefaultConfig returns a Config with every field at its default.
func DefaultConfig() Config {
	return Config{
		MinScale:         DefaultMinScale,
		MaxScale:         DefaultMaxScale,
		ScaleStep:        DefaultScaleStep,
		PinchSensitivity: DefaultPinchSensitivity,
		ZoomModifiers:    DefaultZoomModifiers,
		Transition:       DefaultTransition,
	}
}

// DragEnabled reports whether panning is allowed.
func (c Config) DragEnabled() bool {
	return !c.DisableDrag
}

// withDefaults fills zero fields and orders the scale bounds.
func (c Config) withDefaults() Config {
	if c.MinScale <= 0 {
		c.MinScale = DefaultMinScale
	}
	if c.MaxScale <= 0 {
		c.MaxScale = DefaultMaxScale
	}
	if c.MaxScale < c.MinScale {
		c.MinScale, c.MaxScale = c.MaxScale, c.MinScale
	}
	if c.ScaleStep <= 0 {
		c.ScaleStep = DefaultScaleStep
	}
	if c.PinchSensitivity <= 0 {
		c.PinchSensitivity = DefaultPinchSensitivity
	}
	if c.ZoomModifiers == 0 {
		c.ZoomModifiers = DefaultZoomModifiers
	}
	if c.Transition == 0 {
		c.Transition = DefaultTransition
	}
	return c
}

// transitionSeconds returns the settle duration, or 0 when disabled.
func (c Config) transitionSeconds() float64 {
	if c.Transition <= 0 {
		return 0
	}
	return c.Transition.Seconds()
}

// ParseConfig decodes YAML into a Config. Keys that are absent keep their
// default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg.withDefaults(), nil
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
