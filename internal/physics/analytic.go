package physics

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Analytic follows the same damped oscillator as Spring but solves each step
// in closed form with harmonica. It has no integration error, which makes it
// a useful ghost next to the fixed-step integrator.
type Analytic struct {
	spring   harmonica.Spring
	Position float64
	Velocity float64
}

// NewAnalytic maps k and b onto harmonica's angular frequency and damping
// ratio (ω = √k, ζ = b / 2√k) for a fixed step of dt seconds.
func NewAnalytic(pos float64, p Params, dt float64) (Analytic, error) {
	if err := p.Validate(); err != nil {
		return Analytic{}, err
	}
	return Analytic{
		spring:   harmonica.NewSpring(dt, math.Sqrt(p.Stiffness), p.DampingRatio()),
		Position: pos,
	}, nil
}

// Step advances one fixed step toward dest.
func (a *Analytic) Step(dest float64) {
	a.Position, a.Velocity = a.spring.Update(a.Position, a.Velocity, dest)
}

// StepN runs n fixed steps toward dest.
func (a *Analytic) StepN(n int, dest float64) {
	for range n {
		a.Step(dest)
	}
}

// Sync copies position and velocity from s.
func (a *Analytic) Sync(s *Spring) {
	a.Position = s.Position
	a.Velocity = s.Velocity
}
