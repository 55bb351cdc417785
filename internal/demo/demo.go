// Package demo holds the interactive controllers. Each one owns its springs,
// decay session, pointer tracker and input mailboxes, and is driven by the
// host through Post and Frame.
package demo

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/olivier-w/tactile/internal/config"
	"github.com/olivier-w/tactile/internal/frame"
	"github.com/olivier-w/tactile/internal/gesture"
	"github.com/olivier-w/tactile/internal/pointer"
	"github.com/olivier-w/tactile/internal/theme"
)

var ErrUnknownDemo = errors.New("unknown demo")

// Demo is one interactive controller.
type Demo interface {
	ID() string
	Title() string

	// Post queues input for the next Frame. Only the latest event of each
	// pointer kind survives; keys are queued in order.
	Post(ev pointer.Event)

	// Resize sets the stage size in terminal cells.
	Resize(cols, rows int)

	// Frame drains input, advances the simulation to now and updates the
	// display state. It reports whether another frame is needed.
	Frame(now time.Duration) bool

	View() string
	Readout() string

	// Close runs the demo's teardown.
	Close()
}

// Option adjusts a demo at construction.
type Option func(*base)

// WithPalette renders with p instead of a dark default.
func WithPalette(p *theme.Palette) Option {
	return func(b *base) { b.palette = p }
}

// base carries what every controller shares.
type base struct {
	id    string
	title string

	rt      config.Runtime
	tune    config.Tuning
	palette *theme.Palette

	cols, rows    int
	width, height float64 // virtual pixels

	tracker *pointer.Tracker
	gesture *gesture.Machine
	anim    *frame.Animator

	down  frame.Mailbox[pointer.Event]
	move  frame.Mailbox[pointer.Event]
	up    frame.Mailbox[pointer.Event]
	wheel frame.Mailbox[pointer.Event]
	keys  []pointer.Event

	teardown frame.Teardown
}

func newBase(id, title string, cfg *config.Config, opts []Option) (base, error) {
	tune, err := cfg.Tuning(id)
	if err != nil {
		return base{}, err
	}
	rt := cfg.Runtime
	b := base{
		id:      id,
		title:   title,
		rt:      rt,
		tune:    tune,
		tracker: pointer.NewTracker(rt.TrackerCapacity),
		gesture: gesture.NewMachine(gesture.DefaultConfig(tune.FlingVelocityThreshold)),
		anim:    frame.NewAnimator(rt.FixedStep, rt.MaxStepsPerFrame),
	}
	b.anim.Rest.Velocity = rt.RestVelocityEpsilon
	b.anim.Rest.Position = rt.RestPositionEpsilon
	b.anim.ReducedMotion = rt.ReducedMotion
	for _, opt := range opts {
		opt(&b)
	}
	if b.palette == nil {
		b.palette = theme.New(true)
	}
	b.Resize(60, 12)
	b.teardown.Add(func() { log.Printf("demo %s: closed", id) })
	return b, nil
}

// discardInput drops input posted after the last frame.
func (b *base) discardInput() {
	for _, box := range b.mailboxes() {
		box.Clear()
	}
	b.keys = nil
}

func (b *base) mailboxes() []*frame.Mailbox[pointer.Event] {
	return []*frame.Mailbox[pointer.Event]{&b.down, &b.move, &b.up, &b.wheel}
}

func (b *base) ID() string    { return b.id }
func (b *base) Title() string { return b.title }

func (b *base) Post(ev pointer.Event) {
	switch ev.Kind {
	case pointer.Down:
		b.down.Put(ev)
	case pointer.Move:
		b.move.Put(ev)
	case pointer.Up, pointer.Cancel:
		b.up.Put(ev)
	case pointer.Wheel:
		if prev, ok := b.wheel.Take(); ok {
			ev.Delta += prev.Delta
		}
		b.wheel.Put(ev)
	case pointer.Key:
		b.keys = append(b.keys, ev)
	}
}

// drain empties every mailbox and returns the events in time order. Events
// with equal times keep down, move, up, wheel, key order.
func (b *base) drain() []pointer.Event {
	var evs []pointer.Event
	for _, box := range b.mailboxes() {
		if ev, ok := box.Take(); ok {
			evs = append(evs, ev)
		}
	}
	evs = append(evs, b.keys...)
	b.keys = b.keys[:0]
	sort.SliceStable(evs, func(i, j int) bool { return evs[i].Time < evs[j].Time })
	return evs
}

func (b *base) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	b.cols, b.rows = cols, rows
	b.width = float64(cols) * b.rt.CellWidthPx
	b.height = float64(rows) * b.rt.CellHeightPx
}

func (b *base) Close() {
	b.teardown.Run()
	b.discardInput()
}

// press restarts the tracker with a real sample so the first release
// velocity is not measured against the reset sentinel.
func (b *base) press(ev pointer.Event) {
	b.tracker.Restart(ev.X, ev.Y, ev.Time)
	b.gesture.Press(ev.X, ev.Y, ev.Time)
}

func (b *base) velocity(now time.Duration) pointer.Velocity {
	return b.tracker.Velocity(now, b.rt.VelocityWindow)
}

// col converts a horizontal virtual-pixel position to a cell column.
func (b *base) col(px float64) int {
	return int(px / b.rt.CellWidthPx)
}

// row converts a vertical virtual-pixel position to a cell row.
func (b *base) row(px float64) int {
	return int(px / b.rt.CellHeightPx)
}

// Factory builds a demo from the loaded configuration.
type Factory func(cfg *config.Config, opts ...Option) (Demo, error)

type entry struct {
	title string
	build Factory
}

// Registry maps demo ids to factories in display order.
type Registry struct {
	order   []string
	entries map[string]entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds or replaces a factory.
func (r *Registry) Register(id, title string, f Factory) {
	if _, ok := r.entries[id]; !ok {
		r.order = append(r.order, id)
	}
	r.entries[id] = entry{title: title, build: f}
}

// IDs lists registered ids in registration order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// Title returns the display title for id.
func (r *Registry) Title(id string) (string, bool) {
	e, ok := r.entries[id]
	return e.title, ok
}

// New builds demo id. Configuration errors are returned, never deferred to
// the first frame.
func (r *Registry) New(id string, cfg *config.Config, opts ...Option) (Demo, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDemo, id)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	d, err := e.build(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("demo %s: %w", id, err)
	}
	log.Printf("demo %s: opened", id)
	return d, nil
}

// factory adapts a constructor returning a concrete demo.
func factory[T Demo](build func(*config.Config, ...Option) (T, error)) Factory {
	return func(cfg *config.Config, opts ...Option) (Demo, error) {
		d, err := build(cfg, opts...)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

var registry = func() *Registry {
	r := NewRegistry()
	r.Register("spring", "Springs", factory(NewSpring))
	r.Register("momentum", "Momentum", factory(NewMomentum))
	r.Register("overscroll", "Rubber Band / Overscroll", factory(NewOverscroll))
	r.Register("pull", "Pull to Refresh", factory(NewPull))
	r.Register("carousel", "Carousel", factory(NewCarousel))
	r.Register("snap", "Snap Points", factory(NewSnap))
	r.Register("tap", "Taps & Presses", factory(NewTap))
	return r
}()

// Default is the registry of built-in demos.
func Default() *Registry { return registry }

// New builds a built-in demo.
func New(id string, cfg *config.Config, opts ...Option) (Demo, error) {
	return registry.New(id, cfg, opts...)
}
