package demo

import (
	"fmt"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/olivier-w/tactile/internal/config"
	"github.com/olivier-w/tactile/internal/physics"
	"github.com/olivier-w/tactile/internal/pointer"
	"github.com/olivier-w/tactile/internal/theme"
	"github.com/olivier-w/tactile/internal/util"
)

const historySize = 240

// SpringDemo springs a ball to wherever the pointer presses. A harmonica
// ghost follows the same oscillator analytically next to it.
type SpringDemo struct {
	base

	ball   *physics.Spring
	ghost  physics.Analytic
	preset int // index into physics.Presets, -1 for custom
	trail  *history
	thrown float64
}

// NewSpring builds the spring playground.
func NewSpring(cfg *config.Config, opts ...Option) (*SpringDemo, error) {
	b, err := newBase("spring", "Springs", cfg, opts)
	if err != nil {
		return nil, err
	}
	d := &SpringDemo{base: b, preset: -1, trail: newHistory(historySize)}
	start := d.width / 2
	if d.ball, err = physics.NewSpring(start, b.tune.Params()); err != nil {
		return nil, err
	}
	if d.ghost, err = physics.NewAnalytic(start, b.tune.Params(), d.anim.Clock.DT()); err != nil {
		return nil, err
	}
	d.matchPreset()
	d.teardown.Add(d.trail.clear)
	return d, nil
}

// Ball exposes the integrated spring.
func (d *SpringDemo) Ball() *physics.Spring { return d.ball }

// Thrown is the velocity the last drag released the ball with.
func (d *SpringDemo) Thrown() float64 { return d.thrown }

// Ghost is the analytic twin's position.
func (d *SpringDemo) Ghost() float64 { return d.ghost.Position }

func (d *SpringDemo) Resize(cols, rows int) {
	d.base.Resize(cols, rows)
	if d.ball != nil {
		d.ball.Retarget(physics.Clamp(d.ball.Destination, 0, d.width))
	}
}

func (d *SpringDemo) Frame(now time.Duration) bool {
	for _, ev := range d.drain() {
		d.handle(ev)
	}

	animating := d.anim.Simulate(now, d.ball)
	if animating {
		d.ghost.StepN(d.anim.Steps(), d.ball.Destination)
	} else {
		d.ghost.Sync(d.ball)
	}
	d.trail.push(d.ball.Position)
	return animating
}

func (d *SpringDemo) handle(ev pointer.Event) {
	switch ev.Kind {
	case pointer.Down:
		d.press(ev)
		d.thrown = 0
		d.aim(ev.X)
	case pointer.Move:
		if d.gesture.Held() {
			d.tracker.Push(ev.X, ev.Y, ev.Time)
			d.gesture.Move(ev.X, ev.Y)
			d.aim(ev.X)
		}
	case pointer.Up, pointer.Cancel:
		if !d.gesture.Held() {
			return
		}
		vx := 0.0
		if ev.Kind == pointer.Up {
			d.tracker.Push(ev.X, ev.Y, ev.Time)
			vx = d.velocity(ev.Time).VX
		}
		d.gesture.Release(ev.Time, vx)
		if d.gesture.Animating() && ev.Kind == pointer.Up {
			// A drag hands its speed to the ball.
			d.thrown = vx
			d.ball.Kick(vx)
			d.ghost.Sync(d.ball)
		}
		d.gesture.Rest()
	case pointer.Key:
		d.key(ev.Key)
	}
}

func (d *SpringDemo) aim(x float64) {
	d.ball.Retarget(physics.Clamp(x, 0, d.width))
}

func (d *SpringDemo) key(k string) {
	step := d.width / 10
	switch k {
	case "left", "h":
		d.aim(d.ball.Destination - step)
	case "right", "l":
		d.aim(d.ball.Destination + step)
	case " ":
		if d.ball.Destination < d.width/2 {
			d.aim(d.width * 3 / 4)
		} else {
			d.aim(d.width / 4)
		}
	case "p":
		presets := physics.Presets()
		d.preset = (d.preset + 1) % len(presets)
		d.setParams(presets[d.preset].Params)
		return
	case "+", "=":
		d.nudge(10, 0)
	case "-", "_":
		d.nudge(-10, 0)
	case "]":
		d.nudge(0, 1)
	case "[":
		d.nudge(0, -1)
	}
}

func (d *SpringDemo) nudge(dk, db float64) {
	p := d.ball.Params()
	p.Stiffness = max(10, p.Stiffness+dk)
	p.Damping = max(0, p.Damping+db)
	d.setParams(p)
	d.matchPreset()
}

func (d *SpringDemo) setParams(p physics.Params) {
	if err := d.ball.SetParams(p); err != nil {
		return
	}
	ghost, err := physics.NewAnalytic(d.ball.Position, p, d.anim.Clock.DT())
	if err != nil {
		return
	}
	ghost.Sync(d.ball)
	d.ghost = ghost
}

func (d *SpringDemo) matchPreset() {
	d.preset = -1
	for i, p := range physics.Presets() {
		if p.Params == d.ball.Params() {
			d.preset = i
		}
	}
}

func (d *SpringDemo) presetName() string {
	if d.preset < 0 {
		return "custom"
	}
	return physics.Presets()[d.preset].Name
}

func (d *SpringDemo) View() string {
	cols := d.cols
	target := newStrip(cols, ' ')
	target.set(clampCol(d.col(d.ball.Destination), cols), '▼')

	track := newStrip(cols, '─')
	track.set(clampCol(d.col(d.ghost.Position), cols), '○')
	track.set(clampCol(d.col(d.ball.Position), cols), '●')

	var b strings.Builder
	b.WriteString(d.palette.Style(theme.Faint).Render(target.String()))
	b.WriteString("\n")
	b.WriteString(d.palette.Style(theme.Accent).Render(track.String()))
	b.WriteString("\n\n")

	if plotRows := d.rows - 4; plotRows >= 2 && cols > 16 {
		data := d.trail.last(cols - 10)
		if len(data) >= 2 {
			plot := asciigraph.Plot(data,
				asciigraph.Height(plotRows-1),
				asciigraph.Width(cols-10),
				asciigraph.LowerBound(0),
				asciigraph.UpperBound(d.width),
				asciigraph.Precision(0),
				asciigraph.Caption("position (px)"),
			)
			b.WriteString(d.palette.Style(theme.Blue).Render(plot))
		}
	}
	return padLines(b.String(), d.rows)
}

func (d *SpringDemo) Readout() string {
	p := d.ball.Params()
	return fmt.Sprintf("%s  k=%.0f b=%.1f ζ=%.2f  x=%s  v=%s  ghost Δ=%.2f",
		d.presetName(), p.Stiffness, p.Damping, p.DampingRatio(),
		util.FormatPx(d.ball.Position), util.FormatVelocity(d.ball.Velocity),
		d.ghost.Position-d.ball.Position)
}
