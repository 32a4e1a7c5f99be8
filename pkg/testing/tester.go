package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/clockface/pkg/animation"
)

// FrameDuration is the clock advance applied per frame by PumpFor and
// PumpAndSettle.
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")

// FrameTester drives a private animation scheduler from a fake clock.
type FrameTester struct {
	clock     *FakeClock
	scheduler *animation.Scheduler
	frames    int
}

// NewFrameTester creates a tester with its own fake clock and scheduler.
func NewFrameTester() *FrameTester {
	clk := NewFakeClock()
	return &FrameTester{
		clock:     clk,
		scheduler: animation.NewScheduler(clk),
	}
}

// NewFrameTesterWithT creates a tester that logs through t when tickers are
// still active at the end of the test.
func NewFrameTesterWithT(t *testing.T) *FrameTester {
	tester := NewFrameTester()
	t.Cleanup(func() {
		if tester.scheduler.HasActiveTickers() {
			t.Logf("FrameTester: %d frames pumped, animations still active at cleanup", tester.frames)
		}
	})
	return tester
}

// Clock returns the fake clock for advancing time in tests.
func (t *FrameTester) Clock() *FakeClock {
	return t.clock
}

// Scheduler returns the scheduler to pass to engines under test.
func (t *FrameTester) Scheduler() *animation.Scheduler {
	return t.scheduler
}

// Frames returns the number of frames pumped so far.
func (t *FrameTester) Frames() int {
	return t.frames
}

// Pump runs a single frame at the current fake time.
func (t *FrameTester) Pump() {
	t.frames++
	t.scheduler.Step()
}

// PumpFrames advances the clock by FrameDuration and pumps, n times.
func (t *FrameTester) PumpFrames(n int) {
	for range n {
		t.clock.Advance(FrameDuration)
		t.Pump()
	}
}

// PumpFor pumps frames until at least d of fake time has passed.
func (t *FrameTester) PumpFor(d time.Duration) {
	var elapsed time.Duration
	for elapsed < d {
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
		t.Pump()
	}
}

// PumpAndSettle pumps frames until no ticker is active or the timeout is
// reached. The first frame runs at the current fake time.
// Returns ErrSettleTimeout if animations do not settle within timeout.
func (t *FrameTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed <= timeout {
		t.Pump()
		if !t.scheduler.HasActiveTickers() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}
