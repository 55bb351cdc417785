package frame

import (
	"time"

	"github.com/olivier-w/tactile/internal/physics"
)

// Animator advances a set of independent springs on a shared fixed-step clock.
type Animator struct {
	Clock Stepper
	Rest  physics.Tolerance

	// ReducedMotion jumps springs straight to their destinations.
	ReducedMotion bool

	steps int
}

// NewAnimator returns an animator with the default rest tolerance.
func NewAnimator(step time.Duration, maxSteps int) *Animator {
	return &Animator{
		Clock: NewStepper(step, maxSteps),
		Rest:  physics.DefaultTolerance,
	}
}

// Simulate steps every spring the same number of fixed steps up to now,
// settles the ones within tolerance and reports whether any still moves.
// When nothing moves the clock is stopped so the next motion reseeds it.
func (a *Animator) Simulate(now time.Duration, springs ...*physics.Spring) bool {
	if a.ReducedMotion {
		for _, s := range springs {
			s.Settle()
		}
		a.Clock.Stop()
		a.steps = 0
		return false
	}

	steps := a.Clock.Advance(now)
	a.steps = steps
	dt := a.Clock.DT()
	animating := false
	for _, s := range springs {
		s.StepN(steps, dt)
		if s.Within(a.Rest) {
			s.Settle()
		} else {
			animating = true
		}
	}
	if !animating {
		a.Clock.Stop()
	}
	return animating
}

// Steps is the number of fixed steps the last Simulate ran.
func (a *Animator) Steps() int { return a.steps }

// Reset stops the clock so the next Simulate starts from now. Call it when
// new motion begins after a pause.
func (a *Animator) Reset() {
	a.Clock.Stop()
}
