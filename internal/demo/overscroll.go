package demo

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/olivier-w/tactile/internal/config"
	"github.com/olivier-w/tactile/internal/gesture"
	"github.com/olivier-w/tactile/internal/physics"
	"github.com/olivier-w/tactile/internal/pointer"
	"github.com/olivier-w/tactile/internal/theme"
	"github.com/olivier-w/tactile/internal/util"
)

const (
	overscrollItems = 15

	// bounceVelocityScale is the share of momentum kept when a coast or a
	// release enters the bounce spring.
	bounceVelocityScale = 0.2
)

// Relaxed rest test for the soft bounce spring.
var bounceRest = physics.Tolerance{Velocity: 0.5, Position: 0.5}

// OverscrollDemo is a short list that rubber-bands past its edges and
// springs back.
type OverscrollDemo struct {
	base

	raw    float64 // unclamped scroll while dragging
	lastY  float64
	lambda float64
	decay  physics.Decay
	bounce *physics.Spring
	speed  float64
}

// NewOverscroll builds the rubber-band list.
func NewOverscroll(cfg *config.Config, opts ...Option) (*OverscrollDemo, error) {
	b, err := newBase("overscroll", "Rubber Band / Overscroll", cfg, opts)
	if err != nil {
		return nil, err
	}
	d := &OverscrollDemo{base: b, lambda: b.tune.Lambda()}
	if d.bounce, err = physics.NewSpring(0, b.tune.Params()); err != nil {
		return nil, err
	}
	d.anim.Rest = bounceRest
	return d, nil
}

// Phase is the gesture phase.
func (d *OverscrollDemo) Phase() gesture.Phase { return d.gesture.Phase() }

// Raw is the unclamped scroll offset.
func (d *OverscrollDemo) Raw() float64 { return d.raw }

// Bounce exposes the return spring.
func (d *OverscrollDemo) Bounce() *physics.Spring { return d.bounce }

func (d *OverscrollDemo) maxScroll() float64 {
	return max(0, overscrollItems*d.rt.CellHeightPx-d.height)
}

// Display is the offset drawn on screen: the spring position while
// bouncing, otherwise the rubber-banded raw offset.
func (d *OverscrollDemo) Display() float64 {
	if d.springing() {
		return d.bounce.Position
	}
	return d.tune.Rubber().Display(d.raw, 0, d.maxScroll())
}

func (d *OverscrollDemo) springing() bool {
	p := d.gesture.Phase()
	return p == gesture.Bouncing || p == gesture.Settling
}

func (d *OverscrollDemo) Frame(now time.Duration) bool {
	for _, ev := range d.drain() {
		d.handle(ev)
	}

	limit := d.maxScroll()
	switch d.gesture.Phase() {
	case gesture.Decaying:
		pos, vel, end := d.decay.Evaluate(now, 0, limit, d.tune.RestVelocity)
		d.raw, d.speed = pos, vel
		switch end {
		case physics.HitLower, physics.HitUpper:
			d.bounce.Jump(pos)
			d.bounce.Kick(vel * bounceVelocityScale)
			d.anim.Reset()
			d.gesture.Boundary()
			log.Printf("overscroll: %s at %.0f px/s", end, vel)
		case physics.Resting:
			d.gesture.Rest()
		}
	}

	if d.springing() {
		animating := d.anim.Simulate(now, d.bounce)
		d.raw, d.speed = d.bounce.Position, d.bounce.Velocity
		if !animating {
			d.gesture.Rest()
		}
	}
	return d.gesture.Animating()
}

func (d *OverscrollDemo) handle(ev pointer.Event) {
	switch ev.Kind {
	case pointer.Down:
		d.interrupt(ev.Time)
		d.press(ev)
		d.lastY = ev.Y
		d.speed = 0
	case pointer.Move:
		if !d.gesture.Held() {
			return
		}
		d.tracker.Push(ev.X, ev.Y, ev.Time)
		d.gesture.Move(ev.X, ev.Y)
		d.raw -= ev.Y - d.lastY
		d.lastY = ev.Y
		d.speed = -d.velocity(ev.Time).VY
	case pointer.Up, pointer.Cancel:
		if !d.gesture.Held() {
			return
		}
		v := 0.0
		if ev.Kind == pointer.Up {
			d.tracker.Push(ev.X, ev.Y, ev.Time)
			v = -d.velocity(ev.Time).VY
		}
		d.tracker.Reset()
		d.release(ev.Time, v)
	case pointer.Wheel:
		if d.gesture.Held() {
			return
		}
		d.interrupt(ev.Time)
		d.raw += ev.Delta
		if physics.Overshoot(d.raw, 0, d.maxScroll()) != 0 {
			d.springBack(0, gesture.Bouncing)
		} else {
			d.coast(ev.Delta*wheelFlingScale, ev.Time)
		}
	case pointer.Key:
		d.key(ev)
	}
}

func (d *OverscrollDemo) key(ev pointer.Event) {
	if d.gesture.Held() {
		return
	}
	switch ev.Key {
	case "up", "k":
		d.interrupt(ev.Time)
		d.coast(-keyFling, ev.Time)
	case "down", "j":
		d.interrupt(ev.Time)
		d.coast(keyFling, ev.Time)
	case "home", "g":
		d.interrupt(ev.Time)
		d.raw = -d.tune.RubberRange / 2
		d.springBack(0, gesture.Bouncing)
	case "end", "G":
		d.interrupt(ev.Time)
		d.raw = d.maxScroll() + d.tune.RubberRange/2
		d.springBack(0, gesture.Bouncing)
	}
}

// interrupt stops a coast or bounce where it currently is.
func (d *OverscrollDemo) interrupt(at time.Duration) {
	switch d.gesture.Phase() {
	case gesture.Decaying:
		d.raw = physics.Clamp(d.decay.Position(at), 0, d.maxScroll())
		d.gesture.Rest()
	case gesture.Bouncing, gesture.Settling:
		d.raw = d.bounce.Destination
		d.bounce.Settle()
		d.gesture.Rest()
	}
}

func (d *OverscrollDemo) release(at time.Duration, v float64) {
	phase := d.gesture.Release(at, v)
	if physics.Overshoot(d.raw, 0, d.maxScroll()) != 0 {
		// Past an edge every release springs back, including a pull that
		// never left the touch slop.
		next := gesture.Settling
		switch phase {
		case gesture.Decaying:
			next = d.gesture.Boundary()
		case gesture.Resolved:
			d.gesture.Rest()
		}
		d.springBack(v, next)
		return
	}
	if phase == gesture.Decaying {
		d.coast(v, at)
		return
	}
	d.gesture.Rest()
}

// springBack starts the return spring from the rubber-banded display
// position toward the nearest edge.
func (d *OverscrollDemo) springBack(v float64, phase gesture.Phase) {
	limit := d.maxScroll()
	edge := 0.0
	if d.raw > 0 {
		edge = limit
	}
	d.bounce.Position = d.tune.Rubber().Display(d.raw, 0, limit)
	d.bounce.Destination = edge
	d.bounce.Velocity = v * bounceVelocityScale
	d.anim.Reset()
	if d.gesture.Phase() != phase {
		if err := d.gesture.Animate(phase); err != nil {
			log.Printf("overscroll: %v", err)
		}
	}
}

func (d *OverscrollDemo) coast(v float64, at time.Duration) {
	dec, ok := physics.StartDecay(d.raw, v, d.lambda, at, d.tune.FlingVelocityThreshold)
	if !ok {
		if d.gesture.Animating() {
			d.gesture.Rest()
		}
		return
	}
	if d.rt.ReducedMotion {
		d.raw = physics.Clamp(dec.Target(), 0, d.maxScroll())
		if d.gesture.Animating() {
			d.gesture.Rest()
		}
		return
	}
	d.decay = dec
	if d.gesture.Phase() != gesture.Decaying {
		if err := d.gesture.Animate(gesture.Decaying); err != nil {
			log.Printf("overscroll: %v", err)
		}
	}
}

func (d *OverscrollDemo) View() string {
	display := d.Display()
	rows := d.listRows(overscrollItems, display, func(i int) string {
		return fmt.Sprintf("Row %02d", i+1)
	})
	withScrollbar(rows, physics.Clamp(display, 0, d.maxScroll()), d.maxScroll())

	over := math.Abs(physics.Overshoot(display, 0, d.maxScroll()))
	style := d.palette.Style(theme.Text)
	switch {
	case over > d.tune.RubberRange/4:
		style = d.palette.Style(theme.Red)
	case over > 0:
		style = d.palette.Style(theme.Orange)
	}
	return style.Render(joinStrips(rows))
}

func (d *OverscrollDemo) Readout() string {
	display := d.Display()
	return fmt.Sprintf("%s  raw=%s  display=%s  overscroll=%s  v=%s",
		d.gesture.Phase(), util.FormatPx(d.raw), util.FormatPx(display),
		util.FormatPx(physics.Overshoot(display, 0, d.maxScroll())), util.FormatVelocity(d.speed))
}
