package demo

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/olivier-w/tactile/internal/config"
	"github.com/olivier-w/tactile/internal/physics"
	"github.com/olivier-w/tactile/internal/pointer"
	"github.com/olivier-w/tactile/internal/theme"
	"github.com/olivier-w/tactile/internal/util"
)

const (
	pullThreshold   = 60.0 // px past which a release refreshes
	pullHold        = 50.0 // px the list rests at while refreshing
	pullKeyStep     = 14.0
	refreshDuration = time.Second
	pullItems       = 12
)

// PullState is what the pull-to-refresh list is doing.
type PullState uint8

const (
	PullIdle PullState = iota
	PullDragging
	PullRefreshing
	PullDone
	PullCancelled
)

func (s PullState) String() string {
	switch s {
	case PullDragging:
		return "pulling"
	case PullRefreshing:
		return "refreshing"
	case PullDone:
		return "done"
	case PullCancelled:
		return "cancelled"
	}
	return "idle"
}

// PullDemo is pull-to-refresh: the pull is rubber-banded, a release past
// the threshold holds the list open for a second, then it springs shut.
type PullDemo struct {
	base

	offset *physics.Spring
	state  PullState
	pulled float64 // raw pull distance before rubber banding
	startY float64

	refreshStart time.Duration
	now          time.Duration
	refreshes    int

	spin  spinner.Spinner
	meter progress.Model
}

// NewPull builds the pull-to-refresh list.
func NewPull(cfg *config.Config, opts ...Option) (*PullDemo, error) {
	b, err := newBase("pull", "Pull to Refresh", cfg, opts)
	if err != nil {
		return nil, err
	}
	d := &PullDemo{
		base: b,
		spin: spinner.Dot,
		meter: progress.New(
			progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
			progress.WithoutPercentage(),
		),
	}
	if d.offset, err = physics.NewSpring(0, b.tune.Params()); err != nil {
		return nil, err
	}
	d.meter.Width = min(40, max(10, d.cols-4))
	return d, nil
}

// State is the current pull state.
func (d *PullDemo) State() PullState { return d.state }

// Offset is the list's displayed pull in virtual pixels.
func (d *PullDemo) Offset() float64 { return d.offset.Position }

// Refreshes counts completed refreshes.
func (d *PullDemo) Refreshes() int { return d.refreshes }

func (d *PullDemo) Resize(cols, rows int) {
	d.base.Resize(cols, rows)
	d.meter.Width = min(40, max(10, cols-4))
}

func (d *PullDemo) Frame(now time.Duration) bool {
	d.now = now
	for _, ev := range d.drain() {
		d.handle(ev)
	}

	if d.state == PullRefreshing && now-d.refreshStart >= refreshDuration {
		d.state = PullDone
		d.refreshes++
		d.pulled = 0
		d.offset.Retarget(0)
		d.anim.Reset()
		log.Printf("pull: refresh %d done", d.refreshes)
	}

	animating := false
	if d.state != PullDragging {
		animating = d.anim.Simulate(now, d.offset)
	}
	return animating || d.state == PullRefreshing
}

func (d *PullDemo) handle(ev pointer.Event) {
	if d.state == PullRefreshing {
		return
	}
	switch ev.Kind {
	case pointer.Down:
		d.press(ev)
		d.state = PullDragging
		d.startY = ev.Y
		d.pulled = 0
		d.offset.Kick(0)
		d.anim.Reset()
	case pointer.Move:
		if d.state != PullDragging {
			return
		}
		d.tracker.Push(ev.X, ev.Y, ev.Time)
		d.gesture.Move(ev.X, ev.Y)
		if dy := ev.Y - d.startY; dy > 0 {
			d.pulled = dy
			d.offset.Jump(d.tune.Rubber().Map(dy))
		}
	case pointer.Up, pointer.Cancel:
		if d.state != PullDragging {
			return
		}
		d.gesture.Release(ev.Time, d.velocity(ev.Time).VY)
		d.gesture.Rest()
		d.anim.Reset()
		if ev.Kind == pointer.Up && d.offset.Position > pullThreshold {
			d.refresh(ev.Time)
		} else {
			d.cancel()
		}
	case pointer.Key:
		d.key(ev)
	}
}

func (d *PullDemo) key(ev pointer.Event) {
	switch ev.Key {
	case "down", "j":
		d.pulled = min(d.tune.RubberRange, d.pulled+pullKeyStep)
		d.offset.Jump(d.tune.Rubber().Map(d.pulled))
	case "up", "k":
		d.pulled = 0
		d.offset.Jump(0)
	case "enter", " ":
		if d.offset.Position <= pullThreshold {
			d.pulled = pullThreshold + 12
			d.offset.Jump(d.tune.Rubber().Map(d.pulled))
		}
		d.refresh(ev.Time)
	case "x", "esc":
		d.cancel()
	}
}

func (d *PullDemo) refresh(at time.Duration) {
	d.state = PullRefreshing
	d.refreshStart = at
	d.offset.Retarget(pullHold)
	d.anim.Reset()
	log.Printf("pull: refreshing")
}

func (d *PullDemo) cancel() {
	d.state = PullCancelled
	d.pulled = 0
	d.offset.Retarget(0)
	d.anim.Reset()
}

func (d *PullDemo) indicator() string {
	switch {
	case d.state == PullRefreshing:
		frames := d.spin.Frames
		i := int((d.now-d.refreshStart)/d.spin.FPS) % len(frames)
		return frames[i] + "Refreshing..."
	case d.offset.Position > pullThreshold:
		return "Release to refresh"
	}
	return "Pull to refresh"
}

func (d *PullDemo) View() string {
	var b strings.Builder
	gap := max(0, d.row(d.offset.Position))
	ind := d.palette.Style(theme.Muted)
	if d.state == PullRefreshing || d.offset.Position > pullThreshold {
		ind = d.palette.Style(theme.Accent)
	}
	if gap > 0 {
		b.WriteString("  " + ind.Render(d.indicator()) + "\n")
		for range gap - 1 {
			b.WriteString("\n")
		}
	}
	for i := range pullItems {
		b.WriteString(d.palette.Style(theme.Text).Render(fmt.Sprintf(" Message %02d", i+1+d.refreshes)))
		b.WriteString("\n")
	}
	return padLines(b.String(), d.rows)
}

func (d *PullDemo) Readout() string {
	ratio := physics.Clamp(d.offset.Position/pullThreshold, 0, 1)
	return fmt.Sprintf("%s  %s  pull=%s  offset=%s",
		d.state, d.meter.ViewAs(ratio), util.FormatPx(d.pulled), util.FormatPx(d.offset.Position))
}
