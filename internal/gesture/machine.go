// Package gesture tracks the lifecycle every draggable demo shares:
// press, optional activation past the touch slop, release into a tap, a
// fling, or a spring settle, and back to idle.
package gesture

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Recognition thresholds in virtual pixels.
const (
	TouchSlop         = 10
	LongPress         = 400 * time.Millisecond
	TapMax            = 300 * time.Millisecond
	DoubleTap         = 300 * time.Millisecond
	DoubleTapDistance = 25
	VelocityWindow    = 100 * time.Millisecond
)

var ErrInvalidTransition = errors.New("gesture: invalid transition")

// Phase is the current gesture state.
type Phase uint8

const (
	Idle Phase = iota
	Engaged
	Active
	Resolved
	Decaying
	Bouncing
	Settling
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Engaged:
		return "engaged"
	case Active:
		return "active"
	case Resolved:
		return "resolved"
	case Decaying:
		return "decaying"
	case Bouncing:
		return "bouncing"
	case Settling:
		return "settling"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// Trigger is an event that may move the machine between phases.
type Trigger uint8

const (
	Press Trigger = iota
	SlopExceeded
	QuickRelease
	Release
	Fling
	Boundary
	Rest
	Cancel
)

func (t Trigger) String() string {
	return [...]string{"press", "slop-exceeded", "quick-release", "release", "fling", "boundary", "rest", "cancel"}[t]
}

// transitions is the full table; anything missing is rejected.
var transitions = map[Phase]map[Trigger]Phase{
	Idle: {
		Press: Engaged,
	},
	Engaged: {
		SlopExceeded: Active,
		QuickRelease: Resolved,
		Release:      Idle,
		Cancel:       Idle,
	},
	Active: {
		Fling:   Decaying,
		Release: Settling,
		Cancel:  Settling,
	},
	Resolved: {
		Rest:  Idle,
		Press: Engaged,
	},
	Decaying: {
		Boundary: Bouncing,
		Rest:     Idle,
		Press:    Engaged,
	},
	Bouncing: {
		Rest:  Idle,
		Press: Engaged,
	},
	Settling: {
		Rest:  Idle,
		Press: Engaged,
	},
}

// Axis is the direction a drag locked to when it left the slop.
type Axis uint8

const (
	AxisNone Axis = iota
	AxisX
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	}
	return "none"
}

// Config holds per-demo thresholds.
type Config struct {
	Slop           float64
	TapMax         time.Duration
	LongPress      time.Duration
	FlingThreshold float64 // units per second
}

// DefaultConfig uses the shared recognition constants.
func DefaultConfig(flingThreshold float64) Config {
	return Config{Slop: TouchSlop, TapMax: TapMax, LongPress: LongPress, FlingThreshold: flingThreshold}
}

// Machine is one demo's gesture state.
type Machine struct {
	cfg     Config
	phase   Phase
	originX float64
	originY float64
	downAt  time.Duration
	axis    Axis
}

// NewMachine returns an idle machine.
func NewMachine(cfg Config) *Machine {
	return &Machine{cfg: cfg}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Config returns the thresholds.
func (m *Machine) Config() Config { return m.cfg }

// Fire applies a trigger through the transition table.
func (m *Machine) Fire(t Trigger) (Phase, error) {
	next, ok := transitions[m.phase][t]
	if !ok {
		return m.phase, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, t, m.phase)
	}
	m.phase = next
	return next, nil
}

// Press starts a gesture at (x, y). A press interrupts any coast or settle.
func (m *Machine) Press(x, y float64, at time.Duration) {
	if _, err := m.Fire(Press); err != nil {
		// Press from Engaged/Active means a lost release; start over.
		m.phase = Engaged
	}
	m.originX, m.originY = x, y
	m.downAt = at
	m.axis = AxisNone
}

// Move reports true exactly once: when the pointer first leaves the slop.
// The dominant direction at that moment becomes the locked axis.
func (m *Machine) Move(x, y float64) bool {
	if m.phase != Engaged {
		return false
	}
	dx, dy := x-m.originX, y-m.originY
	if math.Hypot(dx, dy) <= m.cfg.Slop {
		return false
	}
	m.phase = Active
	if math.Abs(dx) > math.Abs(dy) {
		m.axis = AxisX
	} else {
		m.axis = AxisY
	}
	return true
}

// Axis is the locked drag direction, AxisNone until the slop is exceeded.
func (m *Machine) Axis() Axis { return m.axis }

// HeldFor is how long the current pointer has been down, 0 when none is.
func (m *Machine) HeldFor(now time.Duration) time.Duration {
	if !m.Held() || now < m.downAt {
		return 0
	}
	return now - m.downAt
}

// LongPressed reports whether the pointer has stayed inside the slop for
// the long-press delay.
func (m *Machine) LongPressed(now time.Duration) bool {
	return m.phase == Engaged && m.HeldFor(now) >= m.cfg.LongPress
}

// Release ends the pointer contact and resolves the next phase from the
// release time and speed.
func (m *Machine) Release(at time.Duration, speed float64) Phase {
	switch m.phase {
	case Engaged:
		if at-m.downAt <= m.cfg.TapMax {
			m.phase = Resolved
		} else {
			m.phase = Idle
		}
	case Active:
		if math.Abs(speed) > m.cfg.FlingThreshold {
			m.phase = Decaying
		} else {
			m.phase = Settling
		}
	}
	return m.phase
}

// Boundary moves a coast into a bounce. Outside Decaying the phase is left
// as is; use Fire to observe the rejection.
func (m *Machine) Boundary() Phase {
	_, _ = m.Fire(Boundary)
	return m.phase
}

// Rest ends any motion. It is a no-op while idle or held.
func (m *Machine) Rest() Phase {
	_, _ = m.Fire(Rest)
	return m.phase
}

// Cancel aborts an in-progress contact. It is a no-op unless held.
func (m *Machine) Cancel() Phase {
	_, _ = m.Fire(Cancel)
	return m.phase
}

// Animate enters a motion phase that no pointer started, such as a wheel
// fling or a keyboard jump. Only Decaying, Bouncing and Settling are
// accepted, and never while a pointer is held.
func (m *Machine) Animate(p Phase) error {
	switch {
	case m.Held():
		return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, p, m.phase)
	case p != Decaying && p != Bouncing && p != Settling:
		return fmt.Errorf("%w: cannot animate into %s", ErrInvalidTransition, p)
	}
	m.phase = p
	return nil
}

// Animating reports whether a motion phase is running.
func (m *Machine) Animating() bool {
	return m.phase == Decaying || m.phase == Bouncing || m.phase == Settling
}

// Held reports whether a pointer is down.
func (m *Machine) Held() bool {
	return m.phase == Engaged || m.phase == Active
}

// Origin returns where the current gesture started.
func (m *Machine) Origin() (float64, float64, time.Duration) {
	return m.originX, m.originY, m.downAt
}
