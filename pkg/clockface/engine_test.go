package clockface

import (
	"math"
	"testing"
	"time"

	clocktest "github.com/go-drift/clockface/pkg/testing"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func newTestEngine(t *testing.T) (*Engine, *clocktest.FrameTester) {
	t.Helper()
	tester := clocktest.NewFrameTesterWithT(t)
	e := NewEngine(EngineOptions{Scheduler: tester.Scheduler()})
	return e, tester
}

func settle(t *testing.T, tester *clocktest.FrameTester) {
	t.Helper()
	if err := tester.PumpAndSettle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
}

type endRecorder struct {
	hourEnds, minuteEnds       []bool
	hourUpdates, minuteUpdates int
}

func (r *endRecorder) OnMinuteAnimationUpdate()    { r.minuteUpdates++ }
func (r *endRecorder) OnMinuteAnimationEnd(i bool) { r.minuteEnds = append(r.minuteEnds, i) }
func (r *endRecorder) OnHourAnimationUpdate()      { r.hourUpdates++ }
func (r *endRecorder) OnHourAnimationEnd(i bool)   { r.hourEnds = append(r.hourEnds, i) }
func (r *endRecorder) lastEnds() (hour, minute bool) {
	return r.hourEnds[len(r.hourEnds)-1], r.minuteEnds[len(r.minuteEnds)-1]
}
func (r *endRecorder) endCounts() (hour, minute int)    { return len(r.hourEnds), len(r.minuteEnds) }
func (r *endRecorder) updateCounts() (hour, minute int) { return r.hourUpdates, r.minuteUpdates }

func TestRotationDelta_MinuteIsSixTimesHour(t *testing.T) {
	for _, minutes := range []int{1, 7, 60, 150, 280, 1439} {
		hour := HourHand.RotationDelta(minutes)
		minute := MinuteHand.RotationDelta(minutes)
		if !approx(minute/hour, 6) {
			t.Errorf("%d minutes: minute/hour = %v, want 6", minutes, minute/hour)
		}
	}
	if got := MinuteHand.RotationDelta(150); got != 900 {
		t.Errorf("minute delta for 150 minutes = %v, want 900", got)
	}
	if got := HourHand.RotationDelta(150); got != 75 {
		t.Errorf("hour delta for 150 minutes = %v, want 75", got)
	}
}

func TestEngine_AnimateToTimeCompletes(t *testing.T) {
	e, tester := newTestEngine(t)
	rec := &endRecorder{}
	e.SetListener(rec)

	e.AnimateToTime(ClockTime{Hours: 2, Minutes: 30})
	if !e.IsRunning() {
		t.Fatal("expected engine to be running")
	}
	settle(t, tester)

	for _, h := range Hands {
		hs := e.Hand(h)
		if hs.RemainingRotation != 0 {
			t.Errorf("%v: remaining = %v, want 0", h, hs.RemainingRotation)
		}
		if hs.CurrentRotation != hs.TargetRotation {
			t.Errorf("%v: current %v != target %v", h, hs.CurrentRotation, hs.TargetRotation)
		}
		if hs.Interrupted {
			t.Errorf("%v: unexpected interrupted flag", h)
		}
	}
	if e.MinuteRotation() != 900 || e.HourRotation() != 75 {
		t.Errorf("rotations = (%v, %v), want (75, 900)", e.HourRotation(), e.MinuteRotation())
	}
	if h, m := rec.endCounts(); h != 1 || m != 1 {
		t.Errorf("end counts = (%d, %d), want (1, 1)", h, m)
	}
	if h, m := rec.lastEnds(); h || m {
		t.Error("natural completion reported as interrupted")
	}
	if h, m := rec.updateCounts(); h == 0 || h != m {
		t.Errorf("update counts = (%d, %d), want equal and non-zero", h, m)
	}
}

func TestEngine_EndToEnd(t *testing.T) {
	e, tester := newTestEngine(t)

	e.AnimateToTime(ClockTime{Hours: 2, Minutes: 30})
	settle(t, tester)
	e.AnimateToTime(ClockTime{Hours: 7, Minutes: 10})
	if got := e.Hand(MinuteHand).TargetRotation; got != 900+1680 {
		t.Errorf("minute target = %v, want 2580", got)
	}
	if got := e.Hand(HourHand).TargetRotation; got != 75+140 {
		t.Errorf("hour target = %v, want 215", got)
	}
	settle(t, tester)

	if e.MinuteRotation() != 2580 || e.HourRotation() != 215 {
		t.Errorf("rotations = (%v, %v), want (215, 2580)", e.HourRotation(), e.MinuteRotation())
	}
	if e.Time() != (ClockTime{Hours: 7, Minutes: 10}) {
		t.Errorf("Time() = %v", e.Time())
	}
}

func TestEngine_InterruptionAccumulates(t *testing.T) {
	e, tester := newTestEngine(t)
	rec := &endRecorder{}
	e.SetListener(rec)

	e.AnimateToTime(ClockTime{Hours: 2, Minutes: 30})
	tester.PumpFor(200 * time.Millisecond)

	before := [handCount]HandState{e.Hand(HourHand), e.Hand(MinuteHand)}
	if before[MinuteHand].CurrentRotation <= 0 || before[MinuteHand].CurrentRotation >= 900 {
		t.Fatalf("expected partial progress, got %v", before[MinuteHand].CurrentRotation)
	}

	e.AnimateToTime(ClockTime{Hours: 7, Minutes: 10})

	if h, m := rec.endCounts(); h != 1 || m != 1 {
		t.Fatalf("expected one interrupted end per hand, got (%d, %d)", h, m)
	}
	if h, m := rec.lastEnds(); !h || !m {
		t.Error("cancelled run not reported as interrupted")
	}
	for _, h := range Hands {
		hs := e.Hand(h)
		wantTarget := before[h].TargetRotation + h.RotationDelta(280)
		if !approx(hs.TargetRotation, wantTarget) {
			t.Errorf("%v: target = %v, want %v", h, hs.TargetRotation, wantTarget)
		}
		if hs.CurrentRotation != before[h].CurrentRotation {
			t.Errorf("%v: current moved on interrupt: %v -> %v", h, before[h].CurrentRotation, hs.CurrentRotation)
		}
		if !approx(hs.CurrentRotation+hs.RemainingRotation, hs.TargetRotation) {
			t.Errorf("%v: current + remaining != target", h)
		}
	}

	settle(t, tester)
	if !approx(e.MinuteRotation(), 2580) || !approx(e.HourRotation(), 215) {
		t.Errorf("rotations = (%v, %v), want (215, 2580)", e.HourRotation(), e.MinuteRotation())
	}
	if e.Hand(MinuteHand).RemainingRotation != 0 {
		t.Error("remaining not cleared after natural completion")
	}
}

func TestEngine_StopPreservesRemaining(t *testing.T) {
	e, tester := newTestEngine(t)
	rec := &endRecorder{}
	e.SetListener(rec)

	e.AnimateToTime(ClockTime{Hours: 1, Minutes: 0})
	tester.PumpFor(100 * time.Millisecond)
	e.Stop()

	if e.IsRunning() {
		t.Fatal("expected IsRunning() == false immediately after Stop")
	}
	if h, m := rec.lastEnds(); !h || !m {
		t.Error("Stop did not report interrupted ends")
	}
	stopped := e.Hand(MinuteHand)
	if !stopped.Interrupted {
		t.Error("expected interrupted flag on minute hand")
	}
	if stopped.RemainingRotation <= 0 {
		t.Errorf("expected rotation still owed, got %v", stopped.RemainingRotation)
	}

	tester.PumpFor(time.Second)
	if e.MinuteRotation() != stopped.CurrentRotation {
		t.Error("hands moved after Stop")
	}

	e.Stop()
	if h, m := rec.endCounts(); h != 1 || m != 1 {
		t.Errorf("second Stop fired ends again: (%d, %d)", h, m)
	}

	e.Start()
	if e.Hand(MinuteHand).Interrupted {
		t.Error("Start did not clear the interrupted flag")
	}
	settle(t, tester)
	if !approx(e.MinuteRotation(), 360) || !approx(e.HourRotation(), 30) {
		t.Errorf("resumed rotations = (%v, %v), want (30, 360)", e.HourRotation(), e.MinuteRotation())
	}
}

func TestEngine_SetTimeJumps(t *testing.T) {
	e, tester := newTestEngine(t)
	redraws := 0
	e.SetInvalidator(func() { redraws++ })

	e.SetTime(ClockTime{Hours: 3, Minutes: 0})
	if redraws == 0 {
		t.Error("SetTime did not request a redraw")
	}
	if got := e.Hand(MinuteHand).TargetRotation; got != 1080 {
		t.Errorf("minute target = %v, want 1080", got)
	}

	rec := &endRecorder{}
	e.SetListener(rec)
	tester.Pump()
	if e.MinuteRotation() != 1080 || e.HourRotation() != 90 {
		t.Errorf("first frame rotations = (%v, %v), want (90, 1080)", e.HourRotation(), e.MinuteRotation())
	}
	if e.IsRunning() {
		t.Error("jump still running after one frame")
	}
	if e.Hand(MinuteHand).RemainingRotation != 0 || e.Hand(HourHand).RemainingRotation != 0 {
		t.Error("remaining not cleared after jump")
	}

	settle(t, tester)
	if h, m := rec.updateCounts(); h != 1 || m != 1 {
		t.Errorf("update counts = (%d, %d), want (1, 1)", h, m)
	}
	if h, m := rec.endCounts(); h != 1 || m != 1 {
		t.Errorf("end counts = (%d, %d), want (1, 1)", h, m)
	}
	if h, m := rec.lastEnds(); h || m {
		t.Error("jump ended as interrupted")
	}
}

func TestEngine_SetTimeComposesWithInFlightRun(t *testing.T) {
	e, tester := newTestEngine(t)

	e.AnimateToTime(ClockTime{Hours: 0, Minutes: 30})
	tester.PumpFor(100 * time.Millisecond)
	e.SetTime(ClockTime{Hours: 1, Minutes: 0})

	target := e.Hand(MinuteHand).TargetRotation
	if !approx(target, 360) {
		t.Errorf("minute target = %v, want 360", target)
	}

	var values []float64
	e.SetListener(ListenerFuncs{MinuteUpdate: func() { values = append(values, e.MinuteRotation()) }})
	settle(t, tester)
	if len(values) != 1 {
		t.Fatalf("jump emitted %d frames, want 1", len(values))
	}
	for _, v := range values {
		if v != target {
			t.Errorf("jump emitted %v outside the zero-span range", v)
		}
	}
}

func TestEngine_BackwardsTimeRotatesForward(t *testing.T) {
	e, tester := newTestEngine(t)
	e.SetTime(ClockTime{Hours: 10, Minutes: 0})
	settle(t, tester)

	prev := e.MinuteRotation()
	e.SetListener(ListenerFuncs{MinuteUpdate: func() {
		if e.MinuteRotation() < prev {
			t.Errorf("minute hand moved backwards: %v -> %v", prev, e.MinuteRotation())
		}
		prev = e.MinuteRotation()
	}})
	e.AnimateToTime(ClockTime{Hours: 9, Minutes: 0})
	settle(t, tester)
	if got := e.MinuteRotation(); got != 600*6+360 {
		t.Errorf("minute rotation = %v, want %v", got, 600*6+360)
	}
}

type minuteEndOnly struct{ ends []bool }

func (m *minuteEndOnly) OnMinuteAnimationEnd(interrupted bool) {
	m.ends = append(m.ends, interrupted)
}

func TestEngine_PartialListener(t *testing.T) {
	e, tester := newTestEngine(t)
	l := &minuteEndOnly{}
	e.SetListener(l)

	e.AnimateToTime(ClockTime{Hours: 0, Minutes: 5})
	settle(t, tester)
	if len(l.ends) != 1 || l.ends[0] {
		t.Errorf("minute ends = %v, want [false]", l.ends)
	}

	rec := &endRecorder{}
	e.SetListener(rec)
	e.AnimateToTime(ClockTime{Hours: 0, Minutes: 10})
	settle(t, tester)
	if len(l.ends) != 1 {
		t.Error("replaced listener still notified")
	}
	if h, m := rec.endCounts(); h != 1 || m != 1 {
		t.Errorf("new listener end counts = (%d, %d)", h, m)
	}

	e.SetListener(nil)
	e.AnimateToTime(ClockTime{Hours: 0, Minutes: 15})
	settle(t, tester)
}

func TestEngine_DefaultDuration(t *testing.T) {
	e := NewEngine(EngineOptions{})
	if e.Duration() != 500*time.Millisecond {
		t.Errorf("Duration() = %v, want 500ms", e.Duration())
	}
}
