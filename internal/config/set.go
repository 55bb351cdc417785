package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olivier-w/tactile/internal/physics"
)

// Params returns the spring constants of t.
func (t Tuning) Params() physics.Params {
	return physics.Params{Stiffness: t.Stiffness, Damping: t.Damping}
}

// Lambda returns the decay constant for t's friction.
func (t Tuning) Lambda() float64 {
	return physics.FrictionToLambda(t.FrictionPerFrame)
}

// Rubber returns t's rubber band.
func (t Tuning) Rubber() physics.RubberBand {
	return physics.RubberBand{Coefficient: t.RubberCoefficient, Range: t.RubberRange}
}

// Fields lists the keys accepted by Set. Short aliases k, b, friction,
// fling and range are also accepted.
func Fields() []string {
	return []string{
		"stiffness",
		"damping",
		"friction_per_frame",
		"rest_velocity",
		"fling_velocity_threshold",
		"rubber_range",
		"rubber_coefficient",
	}
}

// Assign applies a "name=value" override to demo id.
func (c *Config) Assign(id, assignment string) error {
	name, value, ok := strings.Cut(assignment, "=")
	if !ok {
		return fmt.Errorf("%w: expected name=value, got %q", ErrInvalid, assignment)
	}
	return c.Set(id, strings.TrimSpace(name), strings.TrimSpace(value))
}

// Set applies one textual override such as ("stiffness", "180") to demo id.
// The config is left unchanged when the result would not validate.
func (c *Config) Set(id, name, value string) error {
	t := c.tuning(id)
	if t == nil {
		return fmt.Errorf("%w: %q", ErrUnknownDemo, id)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return invalid("demos."+id+"."+name, "not a number")
	}

	next := *t
	switch name {
	case "stiffness", "k":
		next.Stiffness = v
	case "damping", "b":
		next.Damping = v
	case "friction_per_frame", "friction":
		next.FrictionPerFrame = v
	case "rest_velocity":
		next.RestVelocity = v
	case "fling_velocity_threshold", "fling":
		next.FlingVelocityThreshold = v
	case "rubber_range", "range":
		next.RubberRange = v
	case "rubber_coefficient":
		next.RubberCoefficient = v
	default:
		return invalid("demos."+id+"."+name, "unknown field")
	}
	if err := next.validate("demos." + id); err != nil {
		return err
	}
	*t = next
	return nil
}
