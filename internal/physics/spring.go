// Package physics holds the numeric core shared by every demo: a fixed-step
// damped spring, an analytical exponential decay and the rubber-band mapping.
package physics

import (
	"errors"
	"math"
)

var (
	ErrStiffness = errors.New("physics: stiffness must be > 0")
	ErrDamping   = errors.New("physics: damping must be >= 0")
	ErrNotFinite = errors.New("physics: value must be finite")
)

// Params are the two spring constants. Changing them on a live spring takes
// effect on the next step.
type Params struct {
	Stiffness float64
	Damping   float64
}

// Validate reports whether p describes a spring that converges.
func (p Params) Validate() error {
	if !finite(p.Stiffness) || !finite(p.Damping) {
		return ErrNotFinite
	}
	if p.Stiffness <= 0 {
		return ErrStiffness
	}
	if p.Damping < 0 {
		return ErrDamping
	}
	return nil
}

// DampingRatio returns ζ = b / 2√k. 1 is critical, below 1 bounces.
func (p Params) DampingRatio() float64 {
	if p.Stiffness <= 0 {
		return 0
	}
	return p.Damping / (2 * math.Sqrt(p.Stiffness))
}

// Critical returns critically damped params for stiffness k.
func Critical(k float64) Params {
	return Params{Stiffness: k, Damping: 2 * math.Sqrt(k)}
}

// Tolerance is the dual rest test: both velocity and distance to the
// destination must be under their limits.
type Tolerance struct {
	Velocity float64
	Position float64
}

// DefaultTolerance is tuned for pixel-scale values.
var DefaultTolerance = Tolerance{Velocity: 0.01, Position: 0.01}

// Spring drives one scalar channel toward Destination.
type Spring struct {
	Position    float64
	Destination float64
	Velocity    float64 // units per second
	Stiffness   float64
	Damping     float64
}

// NewSpring returns a spring resting at pos.
func NewSpring(pos float64, p Params) (*Spring, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !finite(pos) {
		return nil, ErrNotFinite
	}
	return &Spring{
		Position:    pos,
		Destination: pos,
		Stiffness:   p.Stiffness,
		Damping:     p.Damping,
	}, nil
}

// Params returns the spring constants.
func (s *Spring) Params() Params {
	return Params{Stiffness: s.Stiffness, Damping: s.Damping}
}

// SetParams swaps the constants without touching position or velocity.
func (s *Spring) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.Stiffness = p.Stiffness
	s.Damping = p.Damping
	return nil
}

// Step advances the spring by dt seconds with semi-implicit Euler:
// velocity is updated first and the new velocity moves the position.
func (s *Spring) Step(dt float64) {
	a := -s.Stiffness*(s.Position-s.Destination) - s.Damping*s.Velocity
	s.Velocity += a * dt
	s.Position += s.Velocity * dt
}

// Settle snaps to the destination and stops.
func (s *Spring) Settle() {
	s.Position = s.Destination
	s.Velocity = 0
}

// AtRest applies DefaultTolerance.
func (s *Spring) AtRest() bool {
	return s.Within(DefaultTolerance)
}

// Within reports whether the spring is slow enough and close enough.
func (s *Spring) Within(tol Tolerance) bool {
	return math.Abs(s.Velocity) < tol.Velocity && math.Abs(s.Destination-s.Position) < tol.Position
}

// Moving reports whether a settled spring would still change on the next step.
func (s *Spring) Moving() bool {
	return s.Velocity != 0 || s.Position != s.Destination
}

// Retarget sets a new destination, keeping position and velocity.
func (s *Spring) Retarget(dest float64) {
	s.Destination = dest
}

// Kick replaces the velocity, e.g. with the release speed of a drag.
func (s *Spring) Kick(v float64) {
	s.Velocity = v
}

// Jump places the spring at pos and makes it the destination. Used while a
// finger holds the value directly.
func (s *Spring) Jump(pos float64) {
	s.Position = pos
	s.Destination = pos
	s.Velocity = 0
}

// StepN runs n fixed steps.
func (s *Spring) StepN(n int, dt float64) {
	for range n {
		s.Step(dt)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
