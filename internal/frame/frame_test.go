package frame

import (
	"testing"
	"time"

	"github.com/olivier-w/tactile/internal/physics"
)

func TestScheduleDeduplicates(t *testing.T) {
	calls := 0
	s := NewScheduler(time.Millisecond, func(time.Duration) bool {
		calls++
		return false
	})

	first := s.Schedule()
	if first == nil {
		t.Fatal("expected first schedule to request a frame")
	}
	for range 4 {
		if cmd := s.Schedule(); cmd != nil {
			t.Fatal("expected repeated schedule to be a no-op")
		}
	}

	msg, ok := first().(FrameMsg)
	if !ok {
		t.Fatalf("expected FrameMsg, got %T", msg)
	}
	if msg.ID != s.ID() {
		t.Fatalf("expected frame for scheduler %d, got %d", s.ID(), msg.ID)
	}
	if cmd := s.Handle(msg); cmd != nil {
		t.Fatal("expected no follow-up frame when the driver is done")
	}
	if cmd := s.Handle(msg); cmd != nil {
		t.Fatal("expected a duplicate frame to be ignored")
	}
	if calls != 1 {
		t.Fatalf("expected exactly one driver call, got %d", calls)
	}
	if s.Pending() {
		t.Fatal("expected nothing pending after the loop stopped")
	}
}

func TestHandleChainsWhileAnimating(t *testing.T) {
	remaining := 2
	s := NewScheduler(time.Millisecond, func(time.Duration) bool {
		remaining--
		return remaining > 0
	})
	s.Schedule()
	if cmd := s.Handle(FrameMsg{ID: s.ID(), Time: time.Now()}); cmd == nil {
		t.Fatal("expected another frame while animating")
	}
	if !s.Pending() {
		t.Fatal("expected chained frame to be pending")
	}
	if cmd := s.Handle(FrameMsg{ID: s.ID(), Time: time.Now()}); cmd != nil {
		t.Fatal("expected loop to stop")
	}
	if s.Frames() != 2 {
		t.Fatalf("expected 2 frames, got %d", s.Frames())
	}
}

func TestHandleIgnoresOtherSchedulers(t *testing.T) {
	called := false
	a := NewScheduler(time.Millisecond, func(time.Duration) bool { called = true; return false })
	b := NewScheduler(time.Millisecond, func(time.Duration) bool { return false })
	a.Schedule()
	b.Schedule()
	a.Handle(FrameMsg{ID: b.ID(), Time: time.Now()})
	if called {
		t.Fatal("expected foreign frame to be ignored")
	}
	if !a.Pending() {
		t.Fatal("expected a's request to stay pending")
	}
}

func TestStepperWholeSteps(t *testing.T) {
	s := NewStepper(4*time.Millisecond, 500)
	if n := s.Advance(100 * time.Millisecond); n != 0 {
		t.Fatalf("expected seeding advance to return 0, got %d", n)
	}
	if n := s.Advance(110 * time.Millisecond); n != 2 {
		t.Fatalf("expected 2 steps, got %d", n)
	}
	if until, _ := s.Until(); until != 108*time.Millisecond {
		t.Fatalf("expected clock at 108ms, got %v", until)
	}
	if n := s.Advance(113 * time.Millisecond); n != 1 {
		t.Fatalf("expected leftover to carry into 1 step, got %d", n)
	}
	if n := s.Advance(113 * time.Millisecond); n != 0 {
		t.Fatalf("expected no steps without elapsed time, got %d", n)
	}
}

func TestStepperChunkingIndependent(t *testing.T) {
	fine := NewStepper(DefaultStep, DefaultMaxSteps)
	coarse := NewStepper(DefaultStep, DefaultMaxSteps)
	fine.Advance(0)
	coarse.Advance(0)

	total := 0
	for _, now := range []int{3, 7, 16, 17, 33, 50, 51, 67, 99, 101} {
		total += fine.Advance(time.Duration(now) * time.Millisecond)
	}
	if got := coarse.Advance(101 * time.Millisecond); got != total {
		t.Fatalf("expected %d steps in one chunk, got %d", total, got)
	}
	fu, _ := fine.Until()
	cu, _ := coarse.Until()
	if fu != cu {
		t.Fatalf("expected clocks to agree, got %v and %v", fu, cu)
	}
}

func TestStepperCapDropsBacklog(t *testing.T) {
	s := NewStepper(4*time.Millisecond, 500)
	s.Advance(0)
	if n := s.Advance(10 * time.Second); n != 500 {
		t.Fatalf("expected capped 500 steps, got %d", n)
	}
	if n := s.Advance(10*time.Second + 4*time.Millisecond); n != 1 {
		t.Fatalf("expected backlog to be dropped, got %d steps", n)
	}
}

func TestAnimatorFrameRateIndependent(t *testing.T) {
	mk := func() *physics.Spring {
		s, _ := physics.NewSpring(0, physics.Default)
		s.Retarget(100)
		return s
	}
	a, b := NewAnimator(DefaultStep, DefaultMaxSteps), NewAnimator(DefaultStep, DefaultMaxSteps)
	sa, sb := mk(), mk()

	a.Simulate(0, sa)
	for now := 16 * time.Millisecond; now <= 400*time.Millisecond; now += 17 * time.Millisecond {
		a.Simulate(now, sa)
	}
	a.Simulate(400*time.Millisecond, sa)

	b.Simulate(0, sb)
	b.Simulate(400*time.Millisecond, sb)

	if sa.Position != sb.Position || sa.Velocity != sb.Velocity {
		t.Fatalf("expected identical state, got %+v and %+v", *sa, *sb)
	}
}

func TestAnimatorSettlesAndStops(t *testing.T) {
	a := NewAnimator(DefaultStep, DefaultMaxSteps)
	s, _ := physics.NewSpring(0, physics.Gentle)
	s.Retarget(1)

	if !a.Simulate(0, s) {
		t.Fatal("expected motion on first frame")
	}
	if a.Simulate(10*time.Second, s) {
		t.Fatal("expected spring to come to rest")
	}
	if s.Position != 1 || s.Velocity != 0 {
		t.Fatalf("expected settled spring, got %+v", *s)
	}
	if _, running := a.Clock.Until(); running {
		t.Fatal("expected clock to be stopped once idle")
	}
}

func TestAnimatorReducedMotion(t *testing.T) {
	a := NewAnimator(DefaultStep, DefaultMaxSteps)
	a.ReducedMotion = true
	s, _ := physics.NewSpring(0, physics.Wobbly)
	s.Retarget(50)
	if a.Simulate(time.Second, s) {
		t.Fatal("expected reduced motion to finish immediately")
	}
	if s.Position != 50 {
		t.Fatalf("expected jump to destination, got %v", s.Position)
	}
}

func TestMailboxLatestWins(t *testing.T) {
	var m Mailbox[int]
	if _, ok := m.Take(); ok {
		t.Fatal("expected empty mailbox")
	}
	m.Put(1)
	m.Put(2)
	v, ok := m.Take()
	if !ok || v != 2 {
		t.Fatalf("expected latest value 2, got %v ok=%v", v, ok)
	}
	if m.Full() {
		t.Fatal("expected take to drain the slot")
	}
}

func TestMailboxClear(t *testing.T) {
	var m Mailbox[string]
	m.Put("stale")
	m.Clear()
	if m.Full() {
		t.Fatal("expected clear to empty the slot")
	}
	if v, ok := m.Take(); ok {
		t.Fatalf("expected nothing after clear, got %q", v)
	}
}

func TestTeardownRunsOnceInReverse(t *testing.T) {
	var order []int
	var td Teardown
	td.Add(func() { order = append(order, 1) })
	td.Add(nil)
	td.Add(func() { order = append(order, 2) })
	td.Run()
	td.Run()
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Fatalf("expected [2 1], got %v", order)
	}
}
