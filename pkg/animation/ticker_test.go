package animation

import (
	"testing"
	"time"
)

func TestScheduler_StepsInStartOrder(t *testing.T) {
	clk := &stepClock{now: time.Unix(0, 0)}
	s := NewScheduler(clk)

	var order []string
	a := s.NewTicker(func(time.Duration) { order = append(order, "a") })
	b := s.NewTicker(func(time.Duration) { order = append(order, "b") })
	c := s.NewTicker(func(time.Duration) { order = append(order, "c") })
	b.Start()
	a.Start()
	c.Start()

	s.Step()
	want := []string{"b", "a", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("step order = %v, want %v", order, want)
		}
	}
}

func TestTicker_Elapsed(t *testing.T) {
	clk := &stepClock{now: time.Unix(0, 0)}
	s := NewScheduler(clk)

	var got time.Duration
	tk := s.NewTicker(func(d time.Duration) { got = d })
	if tk.Elapsed() != 0 {
		t.Error("inactive ticker should report zero elapsed")
	}
	tk.Start()
	clk.advance(40 * time.Millisecond)
	s.Step()
	if got != 40*time.Millisecond {
		t.Errorf("callback elapsed = %v, want 40ms", got)
	}
	if tk.Elapsed() != 40*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 40ms", tk.Elapsed())
	}
}

func TestTicker_StopRemovesFromScheduler(t *testing.T) {
	s := NewScheduler(&stepClock{})
	calls := 0
	tk := s.NewTicker(func(time.Duration) { calls++ })
	tk.Start()
	tk.Start()
	if !s.HasActiveTickers() {
		t.Fatal("expected active ticker")
	}
	tk.Stop()
	tk.Stop()
	s.Step()
	if calls != 0 || s.HasActiveTickers() || tk.IsActive() {
		t.Errorf("stopped ticker still active (calls=%d)", calls)
	}
}

func TestTicker_StopDuringStep(t *testing.T) {
	s := NewScheduler(&stepClock{})
	var second *Ticker
	secondCalls := 0
	first := s.NewTicker(func(time.Duration) { second.Stop() })
	second = s.NewTicker(func(time.Duration) { secondCalls++ })
	first.Start()
	second.Start()

	s.Step()
	if secondCalls != 0 {
		t.Errorf("ticker stopped mid-frame still ran %d times", secondCalls)
	}
}

func TestSetClock_RestoresRealClock(t *testing.T) {
	fixed := &stepClock{now: time.Unix(42, 0)}
	prev := SetClock(fixed)
	defer SetClock(prev)

	if !Now().Equal(fixed.now) {
		t.Errorf("Now() = %v, want %v", Now(), fixed.now)
	}
	if !DefaultScheduler().Now().Equal(fixed.now) {
		t.Error("default scheduler does not follow SetClock")
	}
}
