package frame

import (
	"log"
	"time"
)

const (
	DefaultStep     = 4 * time.Millisecond
	DefaultMaxSteps = 500
)

// Stepper is the animation clock: how far the fixed-step simulation has been
// advanced. It only ever moves by whole steps; the sub-step remainder stays
// behind for the next frame.
type Stepper struct {
	Step     time.Duration
	MaxSteps int

	until   time.Duration
	running bool
}

// NewStepper returns a clock with the given step and cap.
func NewStepper(step time.Duration, maxSteps int) Stepper {
	if step <= 0 {
		step = DefaultStep
	}
	return Stepper{Step: step, MaxSteps: maxSteps}
}

// Advance returns how many fixed steps to simulate to reach now. The first
// call after Stop seeds the clock at now and returns 0. Past MaxSteps the
// excess time is dropped instead of being caught up later.
func (s *Stepper) Advance(now time.Duration) int {
	if s.Step <= 0 {
		s.Step = DefaultStep
	}
	if !s.running {
		s.until = now
		s.running = true
		return 0
	}
	if now <= s.until {
		return 0
	}
	elapsed := now - s.until
	steps := int(elapsed / s.Step)
	if s.MaxSteps > 0 && steps > s.MaxSteps {
		log.Printf("frame: %v behind, capping %d steps at %d", elapsed, steps, s.MaxSteps)
		s.until = now - elapsed%s.Step
		return s.MaxSteps
	}
	s.until += time.Duration(steps) * s.Step
	return steps
}

// Stop unsets the clock; the next Advance reseeds it.
func (s *Stepper) Stop() {
	s.running = false
	s.until = 0
}

// Until reports how far the simulation has been advanced and whether the
// clock is set.
func (s *Stepper) Until() (time.Duration, bool) {
	return s.until, s.running
}

// DT is the step in seconds.
func (s *Stepper) DT() float64 {
	return s.Step.Seconds()
}
