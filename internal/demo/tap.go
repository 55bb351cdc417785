package demo

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/olivier-w/tactile/internal/config"
	"github.com/olivier-w/tactile/internal/gesture"
	"github.com/olivier-w/tactile/internal/physics"
	"github.com/olivier-w/tactile/internal/pointer"
	"github.com/olivier-w/tactile/internal/theme"
	"github.com/olivier-w/tactile/internal/util"
)

const (
	rippleDuration = 250 * time.Millisecond
	rippleRadius   = 48.0 // px
)

// TapDemo is a touch pad that recognizes taps, double taps and long presses,
// and locks a drag to the axis it started along.
type TapDemo struct {
	base

	taps     gesture.Taps
	last     gesture.Recognition
	counts   [4]int // by Recognition
	longDone bool

	pressX, pressY float64
	tapX, tapY     float64
	tapAt          time.Duration
	now            time.Duration

	puck *physics.Spring // offset along the locked axis
}

// NewTap builds the touch pad.
func NewTap(cfg *config.Config, opts ...Option) (*TapDemo, error) {
	b, err := newBase("tap", "Taps & Presses", cfg, opts)
	if err != nil {
		return nil, err
	}
	d := &TapDemo{base: b}
	if d.puck, err = physics.NewSpring(0, b.tune.Params()); err != nil {
		return nil, err
	}
	return d, nil
}

// Phase is the gesture phase.
func (d *TapDemo) Phase() gesture.Phase { return d.gesture.Phase() }

// Axis is the locked drag axis.
func (d *TapDemo) Axis() gesture.Axis { return d.gesture.Axis() }

// Last is the most recent recognition.
func (d *TapDemo) Last() gesture.Recognition { return d.last }

// Offset is how far the puck sits from the press point along the locked axis.
func (d *TapDemo) Offset() float64 { return d.puck.Position }

func (d *TapDemo) Taps() int        { return d.counts[gesture.RecognizedTap] }
func (d *TapDemo) DoubleTaps() int  { return d.counts[gesture.RecognizedDoubleTap] }
func (d *TapDemo) LongPresses() int { return d.counts[gesture.RecognizedLongPress] }

func (d *TapDemo) Frame(now time.Duration) bool {
	for _, ev := range d.drain() {
		d.handle(ev)
	}
	d.now = now

	switch d.gesture.Phase() {
	case gesture.Engaged:
		if !d.longDone && d.gesture.LongPressed(now) {
			d.longDone = true
			d.taps.Reset()
			d.recognize(gesture.RecognizedLongPress)
			log.Printf("tap: long press after %s", util.FormatDuration(d.gesture.HeldFor(now)))
		}
		// Keep ticking until the long-press delay has been checked.
		return !d.longDone
	case gesture.Resolved:
		if d.rt.ReducedMotion || now-d.tapAt >= rippleDuration {
			d.gesture.Rest()
			return false
		}
		return true
	case gesture.Decaying, gesture.Settling:
		if d.anim.Simulate(now, d.puck) {
			return true
		}
		d.gesture.Rest()
	}
	return false
}

func (d *TapDemo) handle(ev pointer.Event) {
	switch ev.Kind {
	case pointer.Down:
		d.press(ev)
		d.pressX, d.pressY = ev.X, ev.Y
		d.longDone = false
		d.puck.Jump(0)
	case pointer.Move:
		if !d.gesture.Held() {
			return
		}
		d.tracker.Push(ev.X, ev.Y, ev.Time)
		d.gesture.Move(ev.X, ev.Y)
		if d.gesture.Phase() == gesture.Active {
			d.puck.Jump(d.along(ev.X-d.pressX, ev.Y-d.pressY))
		}
	case pointer.Up:
		if !d.gesture.Held() {
			return
		}
		d.tracker.Push(ev.X, ev.Y, ev.Time)
		vel := d.velocity(ev.Time)
		v := d.along(vel.VX, vel.VY)
		switch d.gesture.Release(ev.Time, v) {
		case gesture.Resolved:
			d.tap(ev.X, ev.Y, ev.Time)
		case gesture.Decaying, gesture.Settling:
			d.home(v)
		}
	case pointer.Cancel:
		if d.gesture.Held() && d.gesture.Cancel() == gesture.Settling {
			d.home(0)
		}
	case pointer.Key:
		d.key(ev)
	}
}

func (d *TapDemo) key(ev pointer.Event) {
	if d.gesture.Held() {
		return
	}
	switch ev.Key {
	case " ", "enter":
		x, y := d.width/2, d.height/2
		d.puck.Jump(0)
		d.gesture.Press(x, y, ev.Time)
		d.gesture.Release(ev.Time, 0)
		d.pressX, d.pressY = x, y
		d.tap(x, y, ev.Time)
	case "r":
		d.counts = [4]int{}
		d.last = gesture.RecognizedNone
		d.taps.Reset()
	}
}

// along projects (dx, dy) onto the locked axis.
func (d *TapDemo) along(dx, dy float64) float64 {
	switch d.gesture.Axis() {
	case gesture.AxisX:
		return dx
	case gesture.AxisY:
		return dy
	}
	return 0
}

func (d *TapDemo) tap(x, y float64, at time.Duration) {
	d.tapX, d.tapY, d.tapAt = x, y, at
	d.recognize(d.taps.Add(x, y, at))
}

func (d *TapDemo) recognize(r gesture.Recognition) {
	d.last = r
	d.counts[r]++
}

// home springs the puck back to the press point.
func (d *TapDemo) home(v float64) {
	d.puck.Retarget(0)
	d.puck.Kick(v)
	d.anim.Reset()
}

func (d *TapDemo) View() string {
	cols, rows := d.cols, d.rows
	pad := make([]strip, rows)
	for r := range pad {
		pad[r] = newStrip(cols, ' ')
		if r%3 == 1 {
			for c := 0; c < cols; c += 6 {
				pad[r].set(c, '·')
			}
		}
	}

	if d.gesture.Phase() == gesture.Resolved && !d.rt.ReducedMotion {
		d.drawRipple(pad)
	}

	pc, pr := d.col(d.pressX), d.row(d.pressY)
	if d.gesture.Phase() == gesture.Active {
		switch d.gesture.Axis() {
		case gesture.AxisX:
			if pr >= 0 && pr < rows {
				pad[pr] = newStrip(cols, '─')
			}
		case gesture.AxisY:
			for r := range pad {
				pad[r].set(pc, '│')
			}
		}
	}
	if d.gesture.Held() || d.gesture.Animating() {
		pad[clampCol(pr, rows)].set(pc, '◎')
		x, y := d.pressX, d.pressY
		if d.gesture.Axis() == gesture.AxisX {
			x += d.puck.Position
		} else {
			y += d.puck.Position
		}
		pad[clampCol(d.row(y), rows)].set(clampCol(d.col(x), cols), '●')
	}

	footer := newStrip(cols, ' ')
	footer.center(d.label())

	var b strings.Builder
	b.WriteString(d.palette.Style(theme.Muted).Render(d.header()))
	b.WriteString("\n")
	if rows > 2 {
		b.WriteString(d.palette.Style(theme.Blue).Render(joinStrips(pad[1 : rows-1])))
		b.WriteString("\n")
	}
	b.WriteString(d.palette.Style(theme.Accent).Render(footer.String()))
	return padLines(b.String(), rows)
}

// drawRipple rings the tap point with a circle growing over rippleDuration.
func (d *TapDemo) drawRipple(pad []strip) {
	p := physics.Clamp(float64(d.now-d.tapAt)/float64(rippleDuration), 0, 1)
	radius := physics.Lerp(d.rt.CellHeightPx/2, rippleRadius, p)
	mark := '∘'
	if d.last == gesture.RecognizedDoubleTap {
		mark = '◦'
	}
	for r := range pad {
		cy := (float64(r) + 0.5) * d.rt.CellHeightPx
		for c := range pad[r] {
			cx := (float64(c) + 0.5) * d.rt.CellWidthPx
			if math.Abs(math.Hypot(cx-d.tapX, cy-d.tapY)-radius) < d.rt.CellWidthPx/2 {
				pad[r].set(c, mark)
			}
		}
	}
	pad[clampCol(d.row(d.tapY), len(pad))].set(d.col(d.tapX), '•')
}

func (d *TapDemo) header() string {
	if !d.gesture.Held() {
		return " ○ up"
	}
	if d.longDone || d.gesture.Phase() != gesture.Engaged {
		return " ● down"
	}
	const cells = 10
	filled := int(physics.Clamp(float64(d.gesture.HeldFor(d.now))/float64(gesture.LongPress), 0, 1) * cells)
	return " ● down  hold " + strings.Repeat("▰", filled) + strings.Repeat("▱", cells-filled)
}

func (d *TapDemo) label() string {
	if d.gesture.Phase() == gesture.Active {
		return fmt.Sprintf("drag · %s axis", d.gesture.Axis())
	}
	if d.last == gesture.RecognizedNone {
		return "tap, double tap, hold or drag"
	}
	return d.last.String()
}

func (d *TapDemo) Readout() string {
	return fmt.Sprintf("%s  taps=%d double=%d long=%d  axis=%s  offset=%s",
		d.gesture.Phase(), d.Taps(), d.DoubleTaps(), d.LongPresses(),
		d.gesture.Axis(), util.FormatPx(d.puck.Position))
}
