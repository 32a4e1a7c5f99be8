// Package animation provides the frame-driven animation primitives behind
// the clock face.
//
// # Core Components
//
//   - [Scheduler]: Owns the set of active tickers and advances them once per
//     frame. Hosts call [Scheduler.Step] from their render loop.
//
//   - [Ticker]: Low-level per-frame callback that reports the time elapsed
//     since it was started.
//
//   - [ValueAnimator]: Drives a single float64 from a start value to an end
//     value over a fixed duration through an easing curve, with explicit
//     Idle/Running/Completed/Interrupted states.
//
//   - Curves: [AccelerateDecelerate], the clock's slow-fast-slow easing,
//     and [LinearCurve].
//
//   - [Tween]: Interpolates between begin and end values of any type.
//
// # Basic Usage
//
//	scheduler := animation.NewScheduler(nil)
//	anim := animation.NewValueAnimator(scheduler, 500*time.Millisecond)
//	anim.AddUpdateListener(func(v float64) { angle = v })
//	anim.Configure(0, 90)
//	anim.Start()
//
//	// once per frame
//	scheduler.Step()
//
// Everything runs on the goroutine that calls Step. The scheduler locks
// only its registration set.
package animation

import (
	"slices"
	"sync"
	"time"
)

// Scheduler advances registered tickers on each frame.
type Scheduler struct {
	clock Clock

	mu     sync.Mutex
	active []*Ticker
}

// NewScheduler creates a scheduler that reads time from c. A nil clock
// falls back to the package-level clock (see [SetClock]).
func NewScheduler(c Clock) *Scheduler {
	return &Scheduler{clock: c}
}

var defaultScheduler = NewScheduler(nil)

// DefaultScheduler returns the process-wide scheduler used when callers
// do not supply one.
func DefaultScheduler() *Scheduler {
	return defaultScheduler
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	if s.clock != nil {
		return s.clock.Now()
	}
	return Now()
}

// NewTicker creates an inactive ticker bound to this scheduler.
func (s *Scheduler) NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{scheduler: s, callback: callback}
}

// Step advances all active tickers in the order they were started.
// This should be called once per frame.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if len(s.active) == 0 {
		s.mu.Unlock()
		return
	}
	// Copy so callbacks can start and stop tickers.
	tickers := slices.Clone(s.active)
	s.mu.Unlock()

	now := s.Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func (s *Scheduler) HasActiveTickers() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active) > 0
}

func (s *Scheduler) add(t *Ticker) {
	s.mu.Lock()
	s.active = append(s.active, t)
	s.mu.Unlock()
}

func (s *Scheduler) remove(t *Ticker) {
	s.mu.Lock()
	if i := slices.Index(s.active, t); i >= 0 {
		s.active = slices.Delete(s.active, i, i+1)
	}
	s.mu.Unlock()
}

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called.
// Most code should use [ValueAnimator] rather than Ticker directly.
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	isActive  bool
	start     time.Time
}

// Start activates the ticker. Starting an active ticker is a no-op.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.scheduler.Now()
	t.scheduler.add(t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.scheduler.remove(t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.scheduler.Now().Sub(t.start)
}
