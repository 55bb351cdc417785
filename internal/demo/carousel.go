package demo

import (
	"fmt"
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
	carouselPages = 5

	// edgeResistance scales drag distance past the first or last page.
	edgeResistance = 0.3
)

// CarouselDemo is a paged strip: drag to move, flick to change page,
// otherwise it snaps to the nearest page.
type CarouselDemo struct {
	base

	strip   *physics.Spring // offset, 0 at page 0 and negative to the right
	page    int
	startX  float64
	startAt float64
	lastVX  float64
	dots    springField
}

// NewCarousel builds the carousel.
func NewCarousel(cfg *config.Config, opts ...Option) (*CarouselDemo, error) {
	b, err := newBase("carousel", "Carousel", cfg, opts)
	if err != nil {
		return nil, err
	}
	d := &CarouselDemo{base: b, dots: newSpringField(b.anim.Clock.DT(), 12, 0.6)}
	if d.strip, err = physics.NewSpring(0, b.tune.Params()); err != nil {
		return nil, err
	}
	d.dots.resize(carouselPages)
	d.dots.set(d.dotTarget)
	return d, nil
}

// Page is the current page index.
func (d *CarouselDemo) Page() int { return d.page }

// Offset is the strip offset in virtual pixels.
func (d *CarouselDemo) Offset() float64 { return d.strip.Position }

func (d *CarouselDemo) pageWidth() float64 { return d.width }

func (d *CarouselDemo) minOffset() float64 {
	return -float64(carouselPages-1) * d.pageWidth()
}

func (d *CarouselDemo) Resize(cols, rows int) {
	d.base.Resize(cols, rows)
	if d.strip != nil {
		d.strip.Jump(-float64(d.page) * d.pageWidth())
	}
}

func (d *CarouselDemo) dotTarget(i int) float64 {
	if i == d.page {
		return 1
	}
	return 0
}

func (d *CarouselDemo) Frame(now time.Duration) bool {
	for _, ev := range d.drain() {
		d.handle(ev)
	}
	if d.gesture.Held() {
		return false
	}
	animating := d.anim.Simulate(now, d.strip)
	moving := false
	if d.anim.ReducedMotion {
		d.dots.set(d.dotTarget)
	} else {
		moving = d.dots.stepN(d.anim.Steps(), d.dotTarget)
	}
	return animating || moving
}

func (d *CarouselDemo) handle(ev pointer.Event) {
	switch ev.Kind {
	case pointer.Down:
		d.press(ev)
		d.strip.Jump(d.strip.Position)
		d.startX, d.startAt = ev.X, d.strip.Position
	case pointer.Move:
		if !d.gesture.Held() {
			return
		}
		d.tracker.Push(ev.X, ev.Y, ev.Time)
		d.gesture.Move(ev.X, ev.Y)
		d.strip.Jump(d.resist(d.startAt + ev.X - d.startX))
	case pointer.Up, pointer.Cancel:
		if !d.gesture.Held() {
			return
		}
		vx := 0.0
		if ev.Kind == pointer.Up {
			d.tracker.Push(ev.X, ev.Y, ev.Time)
			vx = d.velocity(ev.Time).VX
		}
		d.lastVX = vx
		d.gesture.Release(ev.Time, vx)
		d.gesture.Rest()
		d.anim.Reset()
		if math.Abs(vx) > d.tune.FlingVelocityThreshold {
			// A rightward flick moves back a page.
			d.goTo(d.page - int(physics.Sign(vx)))
		} else {
			d.goTo(int(math.Round(-d.strip.Position / d.pageWidth())))
		}
	case pointer.Key:
		if d.gesture.Held() {
			return
		}
		switch ev.Key {
		case "left", "h":
			d.goTo(d.page - 1)
		case "right", "l":
			d.goTo(d.page + 1)
		case "home", "g":
			d.goTo(0)
		case "end", "G":
			d.goTo(carouselPages - 1)
		}
	}
}

// resist applies linear resistance past either end of the strip.
func (d *CarouselDemo) resist(pos float64) float64 {
	lo := d.minOffset()
	switch {
	case pos > 0:
		return physics.Lerp(0, pos, edgeResistance)
	case pos < lo:
		return physics.Lerp(lo, pos, edgeResistance)
	}
	return pos
}

func (d *CarouselDemo) goTo(page int) {
	d.page = min(max(page, 0), carouselPages-1)
	d.strip.Retarget(-float64(d.page) * d.pageWidth())
}

func (d *CarouselDemo) View() string {
	cols := d.cols
	body := max(1, d.rows-2)
	shift := int(math.Round(-d.strip.Position / d.rt.CellWidthPx))

	lines := make([]strip, body)
	for r := range lines {
		lines[r] = newStrip(cols, ' ')
	}
	for c := range cols {
		world := c + shift
		if world < 0 || world >= carouselPages*cols {
			continue
		}
		page, x := world/cols, world%cols
		for r := range lines {
			switch {
			case x == 0 || x == cols-1:
				lines[r].set(c, '│')
			case r == 0 || r == body-1:
				lines[r].set(c, '─')
			}
		}
		label := []rune(fmt.Sprintf("Page %d", page+1))
		start := (cols - len(label)) / 2
		if i := x - start; i >= 0 && i < len(label) {
			lines[body/2].set(c, label[i])
		}
	}

	var b strings.Builder
	b.WriteString(d.palette.Style(theme.Purple).Render(joinStrips(lines)))
	b.WriteString("\n\n")
	b.WriteString(d.dotsView())
	return padLines(b.String(), d.rows)
}

func (d *CarouselDemo) dotsView() string {
	var b strings.Builder
	for i, level := range d.dots.pos {
		if i > 0 {
			b.WriteString(" ")
		}
		switch {
		case level > 0.66:
			b.WriteString(d.palette.Style(theme.Accent).Render("●"))
		case level > 0.33:
			b.WriteString(d.palette.Style(theme.Muted).Render("◉"))
		default:
			b.WriteString(d.palette.Style(theme.Faint).Render("○"))
		}
	}
	line := newStrip(max(0, (d.cols-(2*carouselPages-1))/2), ' ')
	return line.String() + b.String()
}

func (d *CarouselDemo) Readout() string {
	return fmt.Sprintf("page %d/%d  offset=%s  release v=%s",
		d.page+1, carouselPages, util.FormatPx(d.strip.Position), util.FormatVelocity(d.lastVX))
}
