package demo

import (
	"fmt"
	"log"
	"time"

	"github.com/olivier-w/tactile/internal/config"
	"github.com/olivier-w/tactile/internal/gesture"
	"github.com/olivier-w/tactile/internal/physics"
	"github.com/olivier-w/tactile/internal/pointer"
	"github.com/olivier-w/tactile/internal/theme"
	"github.com/olivier-w/tactile/internal/util"
)

const (
	momentumItems = 60

	// wheelFlingScale turns one wheel delta into a fling velocity
	// (delta · 0.5 px/frame · 60 frames).
	wheelFlingScale = 30

	keyFling = 1500.0
)

// MomentumDemo is a long list that coasts after a fling with analytic
// exponential decay.
type MomentumDemo struct {
	base

	scroll   float64
	friction float64
	lambda   float64
	decay    physics.Decay
	speed    float64 // last observed scroll velocity
	stopIn   time.Duration

	startScroll float64
	startY      float64
}

// NewMomentum builds the momentum list.
func NewMomentum(cfg *config.Config, opts ...Option) (*MomentumDemo, error) {
	b, err := newBase("momentum", "Momentum", cfg, opts)
	if err != nil {
		return nil, err
	}
	d := &MomentumDemo{base: b}
	d.setFriction(b.tune.FrictionPerFrame)
	return d, nil
}

// Scroll is the current offset in virtual pixels.
func (d *MomentumDemo) Scroll() float64 { return d.scroll }

// Phase is the gesture phase.
func (d *MomentumDemo) Phase() gesture.Phase { return d.gesture.Phase() }

// Decay is the current or last coast.
func (d *MomentumDemo) Decay() physics.Decay { return d.decay }

func (d *MomentumDemo) maxScroll() float64 {
	return max(0, momentumItems*d.rt.CellHeightPx-d.height)
}

func (d *MomentumDemo) Resize(cols, rows int) {
	d.base.Resize(cols, rows)
	d.scroll = physics.Clamp(d.scroll, 0, d.maxScroll())
}

func (d *MomentumDemo) setFriction(f float64) {
	d.friction = physics.Clamp(f, 0.8, 0.999)
	d.lambda = physics.FrictionToLambda(d.friction)
}

func (d *MomentumDemo) Frame(now time.Duration) bool {
	for _, ev := range d.drain() {
		d.handle(ev)
	}

	if d.gesture.Phase() == gesture.Decaying {
		pos, vel, end := d.decay.Evaluate(now, 0, d.maxScroll(), d.tune.RestVelocity)
		d.scroll, d.speed = pos, vel
		switch end {
		case physics.HitLower, physics.HitUpper:
			d.speed = 0
			d.gesture.Boundary()
			d.gesture.Rest()
		case physics.Resting:
			d.gesture.Rest()
		}
	}
	return d.gesture.Phase() == gesture.Decaying
}

func (d *MomentumDemo) handle(ev pointer.Event) {
	switch ev.Kind {
	case pointer.Down:
		d.capture(ev.Time)
		d.press(ev)
		d.startScroll, d.startY = d.scroll, ev.Y
		d.speed = 0
	case pointer.Move:
		if !d.gesture.Held() {
			return
		}
		d.tracker.Push(ev.X, ev.Y, ev.Time)
		d.gesture.Move(ev.X, ev.Y)
		d.scroll = physics.Clamp(d.startScroll-(ev.Y-d.startY), 0, d.maxScroll())
		d.speed = -d.velocity(ev.Time).VY
	case pointer.Up:
		if !d.gesture.Held() {
			return
		}
		d.tracker.Push(ev.X, ev.Y, ev.Time)
		v := -d.velocity(ev.Time).VY
		switch d.gesture.Release(ev.Time, v) {
		case gesture.Decaying:
			d.fling(v, ev.Time)
		case gesture.Resolved, gesture.Settling:
			d.gesture.Rest()
		}
	case pointer.Cancel:
		if !d.gesture.Held() {
			return
		}
		// A cancelled drag stops where it is.
		if d.gesture.Cancel() == gesture.Settling {
			d.gesture.Rest()
		}
		d.speed = 0
	case pointer.Wheel:
		if d.gesture.Held() {
			return
		}
		d.capture(ev.Time)
		d.scroll = physics.Clamp(d.scroll+ev.Delta, 0, d.maxScroll())
		d.fling(ev.Delta*wheelFlingScale, ev.Time)
	case pointer.Key:
		d.key(ev)
	}
}

func (d *MomentumDemo) key(ev pointer.Event) {
	if d.gesture.Held() {
		return
	}
	row := d.rt.CellHeightPx
	switch ev.Key {
	case "up", "k":
		d.capture(ev.Time)
		d.halt()
		d.scroll = physics.Clamp(d.scroll-row, 0, d.maxScroll())
	case "down", "j":
		d.capture(ev.Time)
		d.halt()
		d.scroll = physics.Clamp(d.scroll+row, 0, d.maxScroll())
	case "pgup", "b":
		d.capture(ev.Time)
		d.fling(-keyFling, ev.Time)
	case "pgdown", " ", "f":
		d.capture(ev.Time)
		d.fling(keyFling, ev.Time)
	case "home", "g":
		d.halt()
		d.scroll = 0
	case "end", "G":
		d.halt()
		d.scroll = d.maxScroll()
	case "+", "=":
		d.setFriction(d.friction + 0.005)
	case "-", "_":
		d.setFriction(d.friction - 0.005)
	}
}

// capture freezes a running coast at its evaluated position.
func (d *MomentumDemo) capture(at time.Duration) {
	if d.gesture.Phase() == gesture.Decaying {
		d.scroll = physics.Clamp(d.decay.Position(at), 0, d.maxScroll())
	}
}

func (d *MomentumDemo) halt() {
	d.speed = 0
	if d.gesture.Animating() {
		d.gesture.Rest()
	}
}

func (d *MomentumDemo) fling(v float64, at time.Duration) {
	dec, ok := physics.StartDecay(d.scroll, v, d.lambda, at, d.tune.FlingVelocityThreshold)
	if !ok {
		d.halt()
		return
	}
	if d.rt.ReducedMotion {
		d.halt()
		d.scroll = physics.Clamp(dec.Target(), 0, d.maxScroll())
		return
	}
	if d.gesture.Phase() != gesture.Decaying {
		if err := d.gesture.Animate(gesture.Decaying); err != nil {
			log.Printf("momentum: %v", err)
			return
		}
	}
	d.decay = dec
	d.speed = v
	d.stopIn = dec.Duration(d.tune.RestVelocity)
	log.Printf("momentum: fling v0=%.0f target=%.0f duration=%v", v, dec.Target(), d.stopIn)
}

func (d *MomentumDemo) View() string {
	rows := d.listRows(momentumItems, d.scroll, func(i int) string {
		return fmt.Sprintf("Item %02d", i+1)
	})
	withScrollbar(rows, d.scroll, d.maxScroll())
	style := d.palette.Style(theme.Text)
	if d.gesture.Phase() == gesture.Decaying {
		style = d.palette.Style(theme.Blue)
	}
	return style.Render(joinStrips(rows))
}

func (d *MomentumDemo) Readout() string {
	return fmt.Sprintf("%s  v=%s  stop in %s  friction=%.3f λ=%.2f/s  offset=%s",
		d.gesture.Phase(), util.FormatVelocity(d.speed), util.FormatDuration(d.stopIn),
		d.friction, d.lambda, util.FormatPx(d.scroll))
}
