package demo

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/olivier-w/tactile/internal/config"
	"github.com/olivier-w/tactile/internal/physics"
	"github.com/olivier-w/tactile/internal/pointer"
	"github.com/olivier-w/tactile/internal/theme"
	"github.com/olivier-w/tactile/internal/util"
)

const (
	tickSpacing = 60.0
	maxFling    = 4000.0
)

// SnapDemo projects where a fling would naturally stop, snaps that point to
// the nearest tick and drives there with a spring.
type SnapDemo struct {
	base

	knob      *physics.Spring
	lambda    float64
	projected float64 // natural stop before snapping
	startX    float64
	startAt   float64
	releaseV  float64
	coast     physics.Decay // last fling, for the curve
	flung     bool
}

// NewSnap builds the snap track.
func NewSnap(cfg *config.Config, opts ...Option) (*SnapDemo, error) {
	b, err := newBase("snap", "Snap Points", cfg, opts)
	if err != nil {
		return nil, err
	}
	d := &SnapDemo{base: b, lambda: b.tune.Lambda()}
	if d.knob, err = physics.NewSpring(0, b.tune.Params()); err != nil {
		return nil, err
	}
	return d, nil
}

// Knob exposes the spring.
func (d *SnapDemo) Knob() *physics.Spring { return d.knob }

// Projected is the last predicted natural stop.
func (d *SnapDemo) Projected() float64 { return d.projected }

func (d *SnapDemo) lastTick() float64 {
	return math.Floor(d.width/tickSpacing) * tickSpacing
}

// Nearest returns the tick closest to x.
func (d *SnapDemo) Nearest(x float64) float64 {
	return physics.Clamp(math.Round(x/tickSpacing)*tickSpacing, 0, d.lastTick())
}

func (d *SnapDemo) Resize(cols, rows int) {
	d.base.Resize(cols, rows)
	if d.knob != nil {
		d.knob.Retarget(d.Nearest(d.knob.Destination))
	}
}

func (d *SnapDemo) Frame(now time.Duration) bool {
	for _, ev := range d.drain() {
		d.handle(ev)
	}
	if d.gesture.Held() {
		return false
	}
	return d.anim.Simulate(now, d.knob)
}

func (d *SnapDemo) handle(ev pointer.Event) {
	switch ev.Kind {
	case pointer.Down:
		d.press(ev)
		d.flung = false
		d.knob.Jump(d.knob.Position)
		d.startX, d.startAt = ev.X, d.knob.Position
	case pointer.Move:
		if !d.gesture.Held() {
			return
		}
		d.tracker.Push(ev.X, ev.Y, ev.Time)
		d.gesture.Move(ev.X, ev.Y)
		d.knob.Jump(physics.Clamp(d.startAt+ev.X-d.startX, 0, d.lastTick()))
		d.projected = d.knob.Position
	case pointer.Up, pointer.Cancel:
		if !d.gesture.Held() {
			return
		}
		v := 0.0
		if ev.Kind == pointer.Up {
			d.tracker.Push(ev.X, ev.Y, ev.Time)
			v = physics.Clamp(d.velocity(ev.Time).VX, -maxFling, maxFling)
		}
		d.gesture.Release(ev.Time, v)
		d.gesture.Rest()
		d.release(v, ev.Time)
	case pointer.Key:
		switch ev.Key {
		case "left", "h":
			d.settleAt(d.Nearest(d.knob.Destination - tickSpacing))
		case "right", "l":
			d.settleAt(d.Nearest(d.knob.Destination + tickSpacing))
		case "home", "g":
			d.settleAt(0)
		case "end", "G":
			d.settleAt(d.lastTick())
		}
	}
}

func (d *SnapDemo) release(v float64, at time.Duration) {
	d.releaseV = v
	d.anim.Reset()
	dec, ok := physics.StartDecay(d.knob.Position, v, d.lambda, at, d.tune.FlingVelocityThreshold)
	if !ok {
		d.settleAt(d.Nearest(d.knob.Position))
		return
	}
	d.coast, d.flung = dec, true
	d.projected = dec.Target()
	dest := d.Nearest(d.projected)
	d.knob.Retarget(dest)
	d.knob.Kick(v)
	log.Printf("snap: v0=%.0f projected=%.0f snapped=%.0f", v, d.projected, dest)
}

func (d *SnapDemo) settleAt(x float64) {
	d.projected = x
	d.knob.Retarget(x)
}

func (d *SnapDemo) View() string {
	cols := d.cols
	ghost := newStrip(cols, ' ')
	ghost.set(clampCol(d.col(d.projected), cols), '◇')

	track := newStrip(cols, '─')
	labels := newStrip(cols, ' ')
	for x, n := 0.0, 0; x <= d.lastTick(); x, n = x+tickSpacing, n+1 {
		c := d.col(x)
		track.set(c, '┼')
		if n%2 == 0 {
			labels.write(c, fmt.Sprintf("%d", int(x)))
		}
	}
	track.set(clampCol(d.col(d.knob.Position), cols), '●')

	var b strings.Builder
	b.WriteString(d.palette.Style(theme.Green).Render(ghost.String()))
	b.WriteString("\n")
	b.WriteString(d.palette.Style(theme.Accent).Render(track.String()))
	b.WriteString("\n")
	b.WriteString(d.palette.Style(theme.Faint).Render(labels.String()))
	if plot := d.coastCurve(d.rows - 5); plot != "" {
		b.WriteString("\n\n")
		b.WriteString(plot)
	}
	return padLines(b.String(), d.rows)
}

// coastCurve plots the share of the projected distance covered over the
// fling's coast time, with a caption line.
func (d *SnapDemo) coastCurve(rows int) string {
	if !d.flung || rows < 1 {
		return ""
	}
	total := d.coast.Duration(d.tune.RestVelocity)
	if total <= 0 || total == time.Duration(math.MaxInt64) {
		return ""
	}
	full := d.coast.Target() - d.coast.From
	levels := make([]float64, 2*d.cols)
	for i := range levels {
		t := time.Duration(float64(total) * float64(i+1) / float64(len(levels)))
		levels[i] = (d.coast.Position(d.coast.Start+t) - d.coast.From) / full
	}
	lines := brailleArea(levels, d.cols, rows)
	return d.palette.Style(theme.Blue).Render(strings.Join(lines, "\n")) + "\n" +
		d.palette.Style(theme.Faint).Render("coast "+util.FormatDuration(total)+" to "+util.FormatPx(d.projected))
}

func (d *SnapDemo) Readout() string {
	return fmt.Sprintf("v0=%s  projected=%s  snap=%s  x=%s",
		util.FormatVelocity(d.releaseV), util.FormatPx(d.projected),
		util.FormatPx(d.knob.Destination), util.FormatPx(d.knob.Position))
}
