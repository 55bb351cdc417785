// Package pointer records recent pointer samples and estimates release velocity.
package pointer

import "time"

const (
	DefaultCapacity = 20
	DefaultWindow   = 100 * time.Millisecond

	// minSpan guards the velocity estimate against dividing by a near-zero span.
	minSpan = time.Millisecond
)

// Sample is one pointer position. Time is monotonic since the host epoch.
type Sample struct {
	X, Y float64
	Time time.Duration
}

// Velocity is in units per second.
type Velocity struct {
	VX, VY float64
}

// Tracker is a fixed-size ring of the most recent samples, oldest first.
// It is owned by a single demo and is not safe for concurrent use.
type Tracker struct {
	buf  []Sample
	size int
	w    int // next write position
	len  int // current fill level
}

// NewTracker creates a tracker holding up to capacity samples. It starts
// in the reset state.
func NewTracker(capacity int) *Tracker {
	if capacity < 2 {
		capacity = DefaultCapacity
	}
	t := &Tracker{
		buf:  make([]Sample, capacity),
		size: capacity,
	}
	t.Reset()
	return t
}

// Push appends a sample, evicting the oldest when full. A sample older than
// the newest one is stamped with the newest time so times never go backwards.
func (t *Tracker) Push(x, y float64, at time.Duration) {
	if t.len > 0 {
		if last := t.Last(); at < last.Time {
			at = last.Time
		}
	}
	t.buf[t.w] = Sample{X: x, Y: y, Time: at}
	t.w = (t.w + 1) % t.size
	t.len++
	if t.len > t.size {
		t.len = t.size
	}
}

// Reset clears the history to a single zero sample.
func (t *Tracker) Reset() {
	t.w = 0
	t.len = 0
	t.Push(0, 0, 0)
}

// Restart clears the history to a single real sample, as on pointer-down.
func (t *Tracker) Restart(x, y float64, at time.Duration) {
	t.w = 0
	t.len = 0
	t.Push(x, y, at)
}

// Len returns the number of samples held.
func (t *Tracker) Len() int {
	return t.len
}

// At returns the i-th sample, oldest first.
func (t *Tracker) At(i int) Sample {
	start := (t.w - t.len + t.size) % t.size
	return t.buf[(start+i)%t.size]
}

// Last returns the newest sample, or the zero sample when empty.
func (t *Tracker) Last() Sample {
	if t.len == 0 {
		return Sample{}
	}
	return t.At(t.len - 1)
}

// Samples copies the history, oldest first.
func (t *Tracker) Samples() []Sample {
	out := make([]Sample, t.len)
	for i := range t.len {
		out[i] = t.At(i)
	}
	return out
}

// Velocity estimates speed over the trailing window. Samples stamped after
// now are ignored. Starting from the newest remaining sample it walks back
// while samples are still inside the window; the first sample at or past the
// window edge (or the oldest sample) is the other end of a two-point slope.
func (t *Tracker) Velocity(now, window time.Duration) Velocity {
	newest := t.len - 1
	for newest >= 0 && t.At(newest).Time > now {
		newest--
	}
	if newest < 1 {
		return Velocity{}
	}
	last := t.At(newest)
	i := newest
	for i > 0 && last.Time-t.At(i).Time < window {
		i--
	}
	oldest := t.At(i)
	span := last.Time - oldest.Time
	if span < minSpan {
		return Velocity{}
	}
	ms := float64(span) / float64(time.Millisecond)
	return Velocity{
		VX: (last.X - oldest.X) / ms * 1000,
		VY: (last.Y - oldest.Y) / ms * 1000,
	}
}
