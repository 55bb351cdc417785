package demo

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// springField eases a row of indicator levels with one shared harmonica
// spring, stepped on the demo's fixed-step clock.
type springField struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
}

func newSpringField(dt, frequency, damping float64) springField {
	return springField{spring: harmonica.NewSpring(dt, frequency, damping)}
}

func (s *springField) resize(n int) {
	if len(s.pos) == n {
		return
	}
	s.pos = make([]float64, n)
	s.vel = make([]float64, n)
}

// stepN advances every level n steps toward target(i) and reports whether
// any level is still visibly moving.
func (s *springField) stepN(n int, target func(i int) float64) bool {
	moving := false
	for i := range s.pos {
		goal := target(i)
		for range n {
			s.pos[i], s.vel[i] = s.spring.Update(s.pos[i], s.vel[i], goal)
		}
		if math.Abs(s.pos[i]-goal) > 0.01 || math.Abs(s.vel[i]) > 0.01 {
			moving = true
		} else {
			s.pos[i], s.vel[i] = goal, 0
		}
	}
	return moving
}

// set jumps every level to target(i).
func (s *springField) set(target func(i int) float64) {
	for i := range s.pos {
		s.pos[i], s.vel[i] = target(i), 0
	}
}
