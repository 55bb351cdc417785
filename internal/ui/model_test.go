package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/tactile/internal/config"
	"github.com/olivier-w/tactile/internal/demo"
	"github.com/olivier-w/tactile/internal/frame"
	"github.com/olivier-w/tactile/internal/physics"
	"github.com/olivier-w/tactile/internal/pointer"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, id string) Model {
	t.Helper()
	m, err := New(id, config.Default(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", next)
	}
	return model, cmd
}

func TestNewRejectsUnknownDemo(t *testing.T) {
	if _, err := New("pinch", config.Default(), nil); !errors.Is(err, demo.ErrUnknownDemo) {
		t.Fatalf("expected ErrUnknownDemo, got %v", err)
	}
}

func TestNewSurfacesConfigErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Demos.Spring.Damping = -1
	if _, err := New("spring", cfg, nil); !errors.Is(err, physics.ErrDamping) {
		t.Fatalf("expected ErrDamping, got %v", err)
	}
}

func TestStageMapsMouseToVirtualPixels(t *testing.T) {
	s := stage{cols: 60, rows: 12, cellW: 8, cellH: 16}

	ev, ok := s.toPointer(tea.MouseMsg{X: stageLeft + 2, Y: stageTop + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, false, time.Second)
	if !ok || ev.Kind != pointer.Down {
		t.Fatalf("expected a press, got %+v (%v)", ev, ok)
	}
	if ev.X != 20 || ev.Y != 24 || ev.Time != time.Second {
		t.Fatalf("expected (20, 24) at 1s, got (%v, %v) at %v", ev.X, ev.Y, ev.Time)
	}

	if _, ok := s.toPointer(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, false, 0); ok {
		t.Fatal("expected presses outside the stage to be dropped")
	}
	if _, ok := s.toPointer(tea.MouseMsg{X: stageLeft, Y: stageTop, Action: tea.MouseActionMotion}, false, 0); ok {
		t.Fatal("expected hover motion to be dropped")
	}

	ev, ok = s.toPointer(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease}, true, 0)
	if !ok || ev.Kind != pointer.Up {
		t.Fatalf("expected a release outside the stage while held, got %+v (%v)", ev, ok)
	}

	ev, ok = s.toPointer(tea.MouseMsg{X: stageLeft, Y: stageTop, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, false, 0)
	if !ok || ev.Kind != pointer.Wheel || ev.Delta != 16 {
		t.Fatalf("expected a 16px wheel event, got %+v (%v)", ev, ok)
	}
}

func TestMouseInputSchedulesOneFrame(t *testing.T) {
	m := newTestModel(t, "spring")
	press := tea.MouseMsg{X: stageLeft + 5, Y: stageTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	m, cmd := update(t, m, press)
	if cmd == nil {
		t.Fatal("expected a frame request")
	}
	if !m.held {
		t.Fatal("expected the pointer to be held")
	}

	drag := tea.MouseMsg{X: stageLeft + 9, Y: stageTop, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
	m, cmd = update(t, m, drag)
	if cmd != nil {
		t.Fatal("expected no second request while one is pending")
	}
	if !m.sched.Pending() {
		t.Fatal("expected a pending frame")
	}
}

func TestFrameMsgRunsDemo(t *testing.T) {
	m := newTestModel(t, "spring")
	m, _ = update(t, m, tea.MouseMsg{X: stageLeft, Y: stageTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	m, cmd := update(t, m, frame.FrameMsg{ID: m.sched.ID() + 1000, Time: time.Now()})
	if cmd != nil || m.sched.Frames() != 0 {
		t.Fatal("expected a foreign frame to be ignored")
	}

	m, cmd = update(t, m, frame.FrameMsg{ID: m.sched.ID(), Time: time.Now()})
	if m.sched.Frames() != 1 {
		t.Fatalf("expected 1 frame, got %d", m.sched.Frames())
	}
	if cmd == nil {
		t.Fatal("expected the spring to request another frame")
	}
	d := m.Demo().(*demo.SpringDemo)
	if d.Ball().Destination != 4 {
		t.Fatalf("expected destination 4, got %v", d.Ball().Destination)
	}
}

func TestThemeToggle(t *testing.T) {
	m := newTestModel(t, "momentum")
	m, _ = update(t, m, runes("t"))
	if m.palette.Dark() {
		t.Fatal("expected light palette after toggle")
	}
	if !strings.Contains(m.View(), "theme: light") {
		t.Fatal("expected theme status in view")
	}
}

func TestEditorAppliesOverride(t *testing.T) {
	m := newTestModel(t, "spring")
	m, _ = update(t, m, runes("e"))
	if !m.editing {
		t.Fatal("expected editor to open")
	}
	m.editor.SetValue("stiffness=180")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.editing || m.failed {
		t.Fatalf("expected editor to close without error, got %q", m.status)
	}
	if m.cfg.Demos.Spring.Stiffness != 180 {
		t.Fatalf("expected stiffness 180, got %v", m.cfg.Demos.Spring.Stiffness)
	}
	if got := m.Demo().(*demo.SpringDemo).Ball().Params().Stiffness; got != 180 {
		t.Fatalf("expected reopened demo with stiffness 180, got %v", got)
	}
}

func TestEditorShowsValidationErrors(t *testing.T) {
	m := newTestModel(t, "spring")
	m, _ = update(t, m, runes("e"))
	m.editor.SetValue("stiffness=0")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.failed || !strings.Contains(m.status, "demos.spring.stiffness") {
		t.Fatalf("expected a field error, got %q", m.status)
	}
	if m.cfg.Demos.Spring.Stiffness != config.Default().Demos.Spring.Stiffness {
		t.Fatalf("expected config unchanged, got %v", m.cfg.Demos.Spring.Stiffness)
	}
}

func TestKeysReachDemo(t *testing.T) {
	m := newTestModel(t, "carousel")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if cmd == nil {
		t.Fatal("expected a frame request")
	}
	m.Demo().Frame(m.sched.Now())
	if got := m.Demo().(*demo.CarouselDemo).Page(); got != 1 {
		t.Fatalf("expected page 1, got %d", got)
	}
}

func TestEscClosesDemo(t *testing.T) {
	m := newTestModel(t, "pull")
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected close command")
	}
	msg, ok := cmd().(DemoClosedMsg)
	if !ok {
		t.Fatalf("expected DemoClosedMsg, got %T", cmd())
	}
	if msg.Demo != "pull" {
		t.Fatalf("expected pull, got %q", msg.Demo)
	}
}

func TestViewFitsWindow(t *testing.T) {
	m := newTestModel(t, "momentum")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	if m.stage.cols != 74 || m.stage.rows != 20 {
		t.Fatalf("expected 74x20 stage, got %dx%d", m.stage.cols, m.stage.rows)
	}
	if got := strings.Count(m.View(), "\n"); got != 30 {
		t.Fatalf("expected 30 lines, got %d", got)
	}
}

func TestResizeCancelsHeldPointer(t *testing.T) {
	m := newTestModel(t, "carousel")
	m, _ = update(t, m, tea.MouseMsg{X: stageLeft + 30, Y: stageTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.held {
		t.Fatal("expected resize to cancel the held pointer")
	}
}
