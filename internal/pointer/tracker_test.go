package pointer

import (
	"math"
	"testing"
	"time"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestVelocityUsesTrailingWindow(t *testing.T) {
	tr := NewTracker(DefaultCapacity)
	tr.Restart(0, 0, 0)
	tr.Push(10, 0, ms(50))
	tr.Push(20, 0, ms(100))
	tr.Push(30, 0, ms(150))

	v := tr.Velocity(ms(150), DefaultWindow)
	if !near(v.VX, 200) {
		t.Fatalf("expected vx 200, got %v", v.VX)
	}
	if v.VY != 0 {
		t.Fatalf("expected vy 0, got %v", v.VY)
	}
}

func TestVelocityAfterResetSentinel(t *testing.T) {
	tr := NewTracker(DefaultCapacity)
	tr.Push(0, 0, 0)
	tr.Push(10, 5, ms(50))
	tr.Push(20, 10, ms(100))
	tr.Push(30, 15, ms(150))

	v := tr.Velocity(ms(150), DefaultWindow)
	if !near(v.VX, 200) || !near(v.VY, 100) {
		t.Fatalf("expected (200, 100), got %+v", v)
	}
}

func TestVelocityNeedsTwoSamples(t *testing.T) {
	tr := NewTracker(DefaultCapacity)
	if v := tr.Velocity(ms(1000), DefaultWindow); v != (Velocity{}) {
		t.Fatalf("expected zero velocity after reset, got %+v", v)
	}
	tr.Restart(100, 100, ms(500))
	if v := tr.Velocity(ms(1000), DefaultWindow); v != (Velocity{}) {
		t.Fatalf("expected zero velocity for a single sample, got %+v", v)
	}
}

func TestVelocityGuardsTinySpan(t *testing.T) {
	tr := NewTracker(DefaultCapacity)
	tr.Restart(0, 0, ms(10))
	tr.Push(50, 0, ms(10))
	if v := tr.Velocity(ms(10), DefaultWindow); v != (Velocity{}) {
		t.Fatalf("expected zero velocity for a zero span, got %+v", v)
	}
}

func TestVelocityIgnoresFutureSamples(t *testing.T) {
	tr := NewTracker(DefaultCapacity)
	tr.Restart(0, 0, 0)
	tr.Push(10, 0, ms(50))
	tr.Push(1000, 0, ms(60))

	v := tr.Velocity(ms(55), DefaultWindow)
	if !near(v.VX, 200) {
		t.Fatalf("expected vx 200 from samples up to now, got %v", v.VX)
	}
}

func TestTrackerEvictsOldest(t *testing.T) {
	tr := NewTracker(4)
	tr.Restart(0, 0, 0)
	for i := 1; i <= 6; i++ {
		tr.Push(float64(i), 0, ms(i*10))
	}
	if tr.Len() != 4 {
		t.Fatalf("expected 4 samples, got %d", tr.Len())
	}
	got := tr.Samples()
	for i, s := range got {
		if want := float64(i + 3); s.X != want {
			t.Fatalf("sample %d: expected x=%v, got %v", i, want, s.X)
		}
	}
	if tr.Last().X != 6 {
		t.Fatalf("expected newest x=6, got %v", tr.Last().X)
	}
}

func TestTrackerKeepsTimeMonotonic(t *testing.T) {
	tr := NewTracker(DefaultCapacity)
	tr.Restart(0, 0, ms(100))
	tr.Push(5, 0, ms(90))
	if got := tr.Last().Time; got != ms(100) {
		t.Fatalf("expected clamped time 100ms, got %v", got)
	}
}

func TestResetLeavesZeroSample(t *testing.T) {
	tr := NewTracker(DefaultCapacity)
	tr.Push(40, 40, ms(40))
	tr.Reset()
	if tr.Len() != 1 || tr.Last() != (Sample{}) {
		t.Fatalf("expected a single zero sample, got %+v", tr.Samples())
	}
}
