// Package frame turns bubbletea ticks into a deduplicated animation-frame loop
// and bridges variable frame cadence to fixed-step simulation.
package frame

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is one frame at 60 Hz.
const DefaultInterval = time.Second / 60

// Driver runs one input → simulate → render pass at now and reports whether
// another frame is needed.
type Driver func(now time.Duration) bool

// FrameMsg is delivered when a scheduled frame is due. ID routes it to the
// scheduler that requested it.
type FrameMsg struct {
	ID   uint64
	Time time.Time
}

var nextID atomic.Uint64

// Scheduler keeps at most one frame request in flight. It is mutated only
// from the bubbletea Update loop.
type Scheduler struct {
	id       uint64
	pending  bool
	interval time.Duration
	epoch    time.Time
	driver   Driver
	frames   uint64
}

// NewScheduler creates a scheduler whose clock starts now.
func NewScheduler(interval time.Duration, driver Driver) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		id:       nextID.Add(1),
		interval: interval,
		epoch:    time.Now(),
		driver:   driver,
	}
}

// ID identifies the scheduler's frame messages.
func (s *Scheduler) ID() uint64 { return s.id }

// Pending reports whether a frame request is in flight.
func (s *Scheduler) Pending() bool { return s.pending }

// Frames counts driver invocations.
func (s *Scheduler) Frames() uint64 { return s.frames }

// Now is the monotonic time since the scheduler was created.
func (s *Scheduler) Now() time.Duration { return time.Since(s.epoch) }

// Since converts a wall-clock instant to scheduler time.
func (s *Scheduler) Since(t time.Time) time.Duration { return t.Sub(s.epoch) }

// Schedule requests a frame. While one is already pending it returns nil, so
// any number of calls between two frames yields one frame.
func (s *Scheduler) Schedule() tea.Cmd {
	if s.pending {
		return nil
	}
	s.pending = true
	id := s.id
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}

// Handle runs the driver for a frame addressed to this scheduler. The pending
// flag is cleared before the driver runs; if the driver wants more frames the
// next one is requested.
func (s *Scheduler) Handle(msg FrameMsg) tea.Cmd {
	if msg.ID != s.id || !s.pending {
		return nil
	}
	s.pending = false
	s.frames++
	if s.driver(s.Since(msg.Time)) {
		return s.Schedule()
	}
	return nil
}
