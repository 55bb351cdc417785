// Package config loads the runtime and per-demo tuning from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no -config flag is given. It may be absent.
const DefaultPath = "tactile.yaml"

var (
	ErrInvalid     = errors.New("invalid config")
	ErrUnknownDemo = errors.New("unknown demo")
)

// FieldError names the offending key.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalid }

func invalid(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}

// Config is the whole file.
type Config struct {
	Runtime Runtime `yaml:"runtime"`
	Demos   Demos   `yaml:"demos"`
}

// Runtime configures the shared frame loop and input handling.
type Runtime struct {
	FrameInterval       time.Duration `yaml:"frame_interval"`
	FixedStep           time.Duration `yaml:"fixed_step"`
	MaxStepsPerFrame    int           `yaml:"max_steps_per_frame"`
	RestVelocityEpsilon float64       `yaml:"rest_velocity_epsilon"`
	RestPositionEpsilon float64       `yaml:"rest_position_epsilon"`
	VelocityWindow      time.Duration `yaml:"velocity_window"`
	TrackerCapacity     int           `yaml:"tracker_capacity"`
	CellWidthPx         float64       `yaml:"cell_width_px"`
	CellHeightPx        float64       `yaml:"cell_height_px"`
	ReducedMotion       bool          `yaml:"reduced_motion"`
}

// Tuning is the numeric surface every demo exposes.
type Tuning struct {
	Stiffness              float64 `yaml:"stiffness"`
	Damping                float64 `yaml:"damping"`
	FrictionPerFrame       float64 `yaml:"friction_per_frame"`
	RestVelocity           float64 `yaml:"rest_velocity"`
	FlingVelocityThreshold float64 `yaml:"fling_velocity_threshold"`
	RubberRange            float64 `yaml:"rubber_range"`
	RubberCoefficient      float64 `yaml:"rubber_coefficient"`
}

// Demos holds one Tuning per demo id.
type Demos struct {
	Spring     Tuning `yaml:"spring"`
	Momentum   Tuning `yaml:"momentum"`
	Overscroll Tuning `yaml:"overscroll"`
	Pull       Tuning `yaml:"pull"`
	Carousel   Tuning `yaml:"carousel"`
	Snap       Tuning `yaml:"snap"`
	Tap        Tuning `yaml:"tap"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Runtime: Runtime{
			FrameInterval:       time.Second / 60,
			FixedStep:           4 * time.Millisecond,
			MaxStepsPerFrame:    500,
			RestVelocityEpsilon: 0.01,
			RestPositionEpsilon: 0.01,
			VelocityWindow:      100 * time.Millisecond,
			TrackerCapacity:     20,
			CellWidthPx:         8,
			CellHeightPx:        16,
		},
		Demos: Demos{
			Spring:     Tuning{290, 24, 0.95, 1, 10, 120, 0.55},
			Momentum:   Tuning{290, 24, 0.95, 1, 10, 200, 0.55},
			Overscroll: Tuning{80, 18, 0.975, 1, 10, 200, 0.55},
			Pull:       Tuning{320, 28, 0.95, 1, 10, 160, 0.55},
			Carousel:   Tuning{300, 28, 0.95, 1, 300, 200, 0.55},
			Snap:       Tuning{200, 2 * math.Sqrt(200), 0.967, 1, 80, 120, 0.55},
			Tap:        Tuning{400, 20, 0.95, 1, 300, 120, 0.55},
		},
	}
}

// Load reads path over the defaults: keys present in the file win, absent
// keys keep their default. The result is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("config: loaded %s", path)
	return cfg, nil
}

// Resolve loads path when one is given. Without one it reads DefaultPath and
// falls back to the defaults when that file does not exist.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	cfg, err := Load(DefaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: %s not found, using defaults", DefaultPath)
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field; the first problem is returned.
func (c *Config) Validate() error {
	r := c.Runtime
	switch {
	case r.FrameInterval <= 0:
		return invalid("runtime.frame_interval", "must be > 0")
	case r.FixedStep <= 0:
		return invalid("runtime.fixed_step", "must be > 0")
	case r.MaxStepsPerFrame < 1:
		return invalid("runtime.max_steps_per_frame", "must be >= 1")
	case !(r.RestVelocityEpsilon > 0):
		return invalid("runtime.rest_velocity_epsilon", "must be > 0")
	case !(r.RestPositionEpsilon > 0):
		return invalid("runtime.rest_position_epsilon", "must be > 0")
	case r.VelocityWindow <= 0:
		return invalid("runtime.velocity_window", "must be > 0")
	case r.TrackerCapacity < 2:
		return invalid("runtime.tracker_capacity", "must be >= 2")
	case !(r.CellWidthPx > 0) || !(r.CellHeightPx > 0):
		return invalid("runtime.cell_width_px", "cell size must be > 0")
	}
	for _, id := range IDs() {
		if err := c.tuning(id).validate("demos." + id); err != nil {
			return err
		}
	}
	return nil
}

func (t Tuning) validate(prefix string) error {
	switch {
	case !(t.Stiffness > 0) || math.IsInf(t.Stiffness, 0):
		return invalid(prefix+".stiffness", "must be > 0")
	case !(t.Damping >= 0) || math.IsInf(t.Damping, 0):
		return invalid(prefix+".damping", "must be >= 0")
	case !(t.FrictionPerFrame > 0) || t.FrictionPerFrame > 1:
		return invalid(prefix+".friction_per_frame", "must be in (0, 1]")
	case !(t.RestVelocity > 0):
		return invalid(prefix+".rest_velocity", "must be > 0")
	case !(t.FlingVelocityThreshold >= 0):
		return invalid(prefix+".fling_velocity_threshold", "must be >= 0")
	case !(t.RubberRange > 0):
		return invalid(prefix+".rubber_range", "must be > 0")
	case !(t.RubberCoefficient > 0):
		return invalid(prefix+".rubber_coefficient", "must be > 0")
	}
	return nil
}

// IDs lists the demo ids in display order.
func IDs() []string {
	return []string{"spring", "momentum", "overscroll", "pull", "carousel", "snap", "tap"}
}

func (c *Config) tuning(id string) *Tuning {
	switch id {
	case "spring":
		return &c.Demos.Spring
	case "momentum":
		return &c.Demos.Momentum
	case "overscroll":
		return &c.Demos.Overscroll
	case "pull":
		return &c.Demos.Pull
	case "carousel":
		return &c.Demos.Carousel
	case "snap":
		return &c.Demos.Snap
	case "tap":
		return &c.Demos.Tap
	}
	return nil
}

// Tuning returns a copy of the tuning for demo id.
func (c *Config) Tuning(id string) (Tuning, error) {
	t := c.tuning(id)
	if t == nil {
		return Tuning{}, fmt.Errorf("%w: %q", ErrUnknownDemo, id)
	}
	return *t, nil
}
