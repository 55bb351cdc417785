package gesture

import (
	"errors"
	"testing"
	"time"
)

func TestQuickPressResolvesAsTap(t *testing.T) {
	m := NewMachine(DefaultConfig(10))
	m.Press(100, 100, 0)
	if m.Move(104, 103) {
		t.Fatal("expected movement inside slop not to activate")
	}
	if got := m.Release(120*time.Millisecond, 0); got != Resolved {
		t.Fatalf("expected resolved, got %v", got)
	}
	if got := m.Rest(); got != Idle {
		t.Fatalf("expected idle after resolving, got %v", got)
	}
}

func TestSlowPressWithoutDragReturnsIdle(t *testing.T) {
	m := NewMachine(DefaultConfig(10))
	m.Press(0, 0, 0)
	if got := m.Release(time.Second, 0); got != Idle {
		t.Fatalf("expected idle, got %v", got)
	}
}

func TestDragThenFling(t *testing.T) {
	m := NewMachine(DefaultConfig(10))
	m.Press(0, 0, 0)
	if !m.Move(0, 11) {
		t.Fatal("expected slop to be exceeded")
	}
	if m.Move(0, 40) {
		t.Fatal("expected activation to be reported once")
	}
	if !m.Held() {
		t.Fatal("expected pointer to be held")
	}
	if got := m.Release(50*time.Millisecond, -800); got != Decaying {
		t.Fatalf("expected decaying, got %v", got)
	}
	if got := m.Boundary(); got != Bouncing {
		t.Fatalf("expected bouncing, got %v", got)
	}
	if got := m.Rest(); got != Idle {
		t.Fatalf("expected idle, got %v", got)
	}
}

func TestDragThenSlowReleaseSettles(t *testing.T) {
	m := NewMachine(DefaultConfig(10))
	m.Press(0, 0, 0)
	m.Move(30, 0)
	if got := m.Release(time.Second, 5); got != Settling {
		t.Fatalf("expected settling, got %v", got)
	}
}

func TestPressInterruptsCoast(t *testing.T) {
	m := NewMachine(DefaultConfig(10))
	m.Press(0, 0, 0)
	m.Move(30, 0)
	m.Release(10*time.Millisecond, 1000)
	m.Press(5, 5, time.Second)
	if m.Phase() != Engaged {
		t.Fatalf("expected engaged, got %v", m.Phase())
	}
	x, y, at := m.Origin()
	if x != 5 || y != 5 || at != time.Second {
		t.Fatalf("expected new origin, got (%v, %v, %v)", x, y, at)
	}
}

func TestFireRejectsUndefinedTransition(t *testing.T) {
	m := NewMachine(DefaultConfig(10))
	if _, err := m.Fire(Boundary); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if m.Phase() != Idle {
		t.Fatalf("expected phase unchanged, got %v", m.Phase())
	}
}

func TestAnimateWithoutPointer(t *testing.T) {
	m := NewMachine(DefaultConfig(10))
	if err := m.Animate(Decaying); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.Animating() {
		t.Fatal("expected machine to be animating")
	}
	if err := m.Animate(Active); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	m.Press(0, 0, 0)
	if err := m.Animate(Settling); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected held pointer to block animation, got %v", err)
	}
}

func TestRestAndCancelLeaveIdleAndHeldPhases(t *testing.T) {
	m := NewMachine(DefaultConfig(10))
	if got := m.Rest(); got != Idle {
		t.Fatalf("expected rest on idle to stay idle, got %v", got)
	}
	if got := m.Cancel(); got != Idle {
		t.Fatalf("expected cancel on idle to stay idle, got %v", got)
	}

	m.Press(0, 0, 0)
	if got := m.Rest(); got != Engaged {
		t.Fatalf("expected rest to leave a held pointer engaged, got %v", got)
	}
	if got := m.Boundary(); got != Engaged {
		t.Fatalf("expected boundary to leave a held pointer engaged, got %v", got)
	}
	if got := m.Cancel(); got != Idle {
		t.Fatalf("expected cancel from engaged to reach idle, got %v", got)
	}

	m.Press(0, 0, 0)
	m.Move(0, 20)
	if got := m.Cancel(); got != Settling {
		t.Fatalf("expected cancel from active to settle, got %v", got)
	}
}

func TestMoveLocksDominantAxis(t *testing.T) {
	m := NewMachine(DefaultConfig(10))
	m.Press(100, 100, 0)
	if m.Axis() != AxisNone {
		t.Fatalf("expected no axis before slop, got %v", m.Axis())
	}
	m.Move(112, 104)
	if m.Axis() != AxisX {
		t.Fatalf("expected x axis, got %v", m.Axis())
	}
	m.Move(112, 160)
	if m.Axis() != AxisX {
		t.Fatalf("expected axis to stay locked, got %v", m.Axis())
	}

	m.Release(time.Second, 0)
	m.Press(0, 0, 2*time.Second)
	if m.Axis() != AxisNone {
		t.Fatalf("expected press to clear the axis, got %v", m.Axis())
	}
	m.Move(-3, -11)
	if m.Axis() != AxisY {
		t.Fatalf("expected y axis, got %v", m.Axis())
	}
}

func TestLongPressNeedsStillPointer(t *testing.T) {
	m := NewMachine(DefaultConfig(10))
	m.Press(0, 0, time.Second)
	if m.LongPressed(time.Second + LongPress - time.Millisecond) {
		t.Fatal("expected no long press before the delay")
	}
	if !m.LongPressed(time.Second + LongPress) {
		t.Fatal("expected long press at the delay")
	}
	if got := m.HeldFor(time.Second + LongPress); got != LongPress {
		t.Fatalf("expected held for %v, got %v", LongPress, got)
	}

	m.Move(20, 0)
	if m.LongPressed(3 * time.Second) {
		t.Fatal("expected a drag to rule out a long press")
	}
	m.Release(3*time.Second, 0)
	if got := m.HeldFor(4 * time.Second); got != 0 {
		t.Fatalf("expected 0 after release, got %v", got)
	}
}

func TestTapsPairIntoDoubleTap(t *testing.T) {
	var taps Taps
	if got := taps.Add(100, 100, 0); got != RecognizedTap {
		t.Fatalf("expected tap, got %v", got)
	}
	if got := taps.Add(110, 106, DoubleTap); got != RecognizedDoubleTap {
		t.Fatalf("expected double tap, got %v", got)
	}
	if got := taps.Add(110, 106, DoubleTap+50*time.Millisecond); got != RecognizedTap {
		t.Fatalf("expected a third tap to start over, got %v", got)
	}
	if got := taps.Add(110+DoubleTapDistance+1, 106, DoubleTap+100*time.Millisecond); got != RecognizedTap {
		t.Fatalf("expected a distant tap not to pair, got %v", got)
	}
	if got := taps.Add(136, 106, 2*time.Second); got != RecognizedTap {
		t.Fatalf("expected a late tap not to pair, got %v", got)
	}
	taps.Reset()
	if got := taps.Add(136, 106, 2*time.Second+time.Millisecond); got != RecognizedTap {
		t.Fatalf("expected reset to disarm, got %v", got)
	}
}
