package gesture

import (
	"math"
	"time"
)

// Recognition is a discrete gesture reported once it completes.
type Recognition uint8

const (
	RecognizedNone Recognition = iota
	RecognizedTap
	RecognizedDoubleTap
	RecognizedLongPress
)

func (r Recognition) String() string {
	switch r {
	case RecognizedTap:
		return "tap"
	case RecognizedDoubleTap:
		return "double tap"
	case RecognizedLongPress:
		return "long press"
	}
	return "none"
}

// Taps pairs resolved taps into double taps.
type Taps struct {
	x, y  float64
	at    time.Duration
	armed bool
}

// Add records a tap at (x, y). A tap within DoubleTap and DoubleTapDistance
// of the previous one completes a double tap and disarms, so a third tap
// starts a new pair.
func (t *Taps) Add(x, y float64, at time.Duration) Recognition {
	if t.armed && at-t.at <= DoubleTap && math.Hypot(x-t.x, y-t.y) <= DoubleTapDistance {
		t.armed = false
		return RecognizedDoubleTap
	}
	t.x, t.y, t.at, t.armed = x, y, at, true
	return RecognizedTap
}

// Reset forgets a pending first tap.
func (t *Taps) Reset() { t.armed = false }
