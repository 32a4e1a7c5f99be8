package animation

import (
	"fmt"
	"slices"
	"time"
)

// AnimatorStatus represents the state of a [ValueAnimator] run.
//
// The status follows this state machine:
//
//	           Start()                  progress reaches 1
//	Idle ──────────────► Running ──────────────────────────► Completed
//	                      ▲   │                                  │
//	                      │   │ Cancel()                         │
//	                      │   ▼                                  │
//	                      │ Interrupted                          │
//	                      │   │                                  │
//	                      └───┴──────────── Start() ─────────────┘
//
// Completed and Interrupted are terminal for a run; Start begins a new one.
type AnimatorStatus int

const (
	// AnimatorIdle means the animator has never been started.
	AnimatorIdle AnimatorStatus = iota
	// AnimatorRunning means a run is in progress.
	AnimatorRunning
	// AnimatorCompleted means the last run reached its end value.
	AnimatorCompleted
	// AnimatorInterrupted means the last run was cancelled.
	AnimatorInterrupted
)

// String returns a human-readable representation of the animator status.
func (s AnimatorStatus) String() string {
	switch s {
	case AnimatorIdle:
		return "idle"
	case AnimatorRunning:
		return "running"
	case AnimatorCompleted:
		return "completed"
	case AnimatorInterrupted:
		return "interrupted"
	default:
		return fmt.Sprintf("AnimatorStatus(%d)", int(s))
	}
}

// DefaultDuration is the run length used when none is configured.
const DefaultDuration = 500 * time.Millisecond

// ValueAnimator drives a single float64 from a start value to an end value.
//
// Each run lasts Duration and shapes progress with Curve. Update listeners
// fire once per frame with the interpolated value; end listeners fire
// exactly once per run, with interrupted=true when the run was cancelled.
//
// Values within one run are bounded by the configured range and, for
// monotonic curves, monotonic.
type ValueAnimator struct {
	// Duration is the length of one run.
	Duration time.Duration

	// Curve transforms linear progress. Nil means linear.
	Curve func(float64) float64

	scheduler      *Scheduler
	ticker         *Ticker
	tween          *Tween[float64]
	value          float64
	status         AnimatorStatus
	listeners      []listenerEntry[float64]
	endListeners   []listenerEntry[bool]
	nextListenerID int
}

type listenerEntry[T any] struct {
	id int
	fn func(T)
}

// NewValueAnimator creates an animator on the given scheduler. A nil
// scheduler uses [DefaultScheduler]. The initial range is 0→0.
//
// A negative duration is a programming error and panics.
func NewValueAnimator(scheduler *Scheduler, duration time.Duration) *ValueAnimator {
	if duration < 0 {
		panic(fmt.Sprintf("animation: negative duration %v", duration))
	}
	if scheduler == nil {
		scheduler = DefaultScheduler()
	}
	a := &ValueAnimator{
		Duration:  duration,
		Curve:     AccelerateDecelerate,
		scheduler: scheduler,
		tween:     &Tween[float64]{Lerp: ClampedLerpFloat64},
		status:    AnimatorIdle,
	}
	a.ticker = scheduler.NewTicker(a.tick)
	return a
}

// Configure sets the start and end values used by the next Start.
// It does not affect a run already in progress.
func (a *ValueAnimator) Configure(from, to float64) {
	a.tween.Begin = from
	a.tween.End = to
}

// Range returns the configured start and end values.
func (a *ValueAnimator) Range() (from, to float64) {
	return a.tween.Begin, a.tween.End
}

// Start begins a run from progress 0. Starting a running animator is a
// no-op; call Cancel first to supersede the current run.
func (a *ValueAnimator) Start() {
	if a.status == AnimatorRunning {
		return
	}
	a.status = AnimatorRunning
	a.ticker.Start()
}

// Cancel halts the current run, marks it interrupted and synchronously
// notifies end listeners with interrupted=true. Cancelling an animator
// that is not running does nothing.
func (a *ValueAnimator) Cancel() {
	if a.status != AnimatorRunning {
		return
	}
	a.ticker.Stop()
	a.status = AnimatorInterrupted
	a.notifyEnd(true)
}

// IsRunning returns true while a run is in progress.
func (a *ValueAnimator) IsRunning() bool {
	return a.status == AnimatorRunning
}

// Status returns the current animator status.
func (a *ValueAnimator) Status() AnimatorStatus {
	return a.status
}

// Value returns the most recently emitted value.
func (a *ValueAnimator) Value() float64 {
	return a.value
}

// AddUpdateListener adds a callback that fires on every frame of a run
// with the current value. Returns an unsubscribe function.
func (a *ValueAnimator) AddUpdateListener(fn func(value float64)) func() {
	id := a.nextListenerID
	a.nextListenerID++
	a.listeners = append(a.listeners, listenerEntry[float64]{id: id, fn: fn})
	return func() {
		a.listeners = removeListener(a.listeners, id)
	}
}

// AddEndListener adds a callback that fires once when a run ends.
// Returns an unsubscribe function.
func (a *ValueAnimator) AddEndListener(fn func(interrupted bool)) func() {
	id := a.nextListenerID
	a.nextListenerID++
	a.endListeners = append(a.endListeners, listenerEntry[bool]{id: id, fn: fn})
	return func() {
		a.endListeners = removeListener(a.endListeners, id)
	}
}

func (a *ValueAnimator) tick(elapsed time.Duration) {
	// Empty spans finish on their first frame.
	progress := 1.0
	if a.Duration > 0 && a.tween.Begin != a.tween.End {
		progress = float64(elapsed) / float64(a.Duration)
		if progress > 1 {
			progress = 1
		}
	}

	eased := progress
	if a.Curve != nil {
		eased = a.Curve(progress)
	}
	a.value = a.tween.Evaluate(eased)
	a.notifyUpdate()

	// A listener may have cancelled this run.
	if progress >= 1 && a.status == AnimatorRunning {
		a.ticker.Stop()
		a.status = AnimatorCompleted
		a.notifyEnd(false)
	}
}

func (a *ValueAnimator) notifyUpdate() {
	for _, l := range slices.Clone(a.listeners) {
		l.fn(a.value)
	}
}

func (a *ValueAnimator) notifyEnd(interrupted bool) {
	for _, l := range slices.Clone(a.endListeners) {
		l.fn(interrupted)
	}
}

func removeListener[T any](list []listenerEntry[T], id int) []listenerEntry[T] {
	return slices.DeleteFunc(list, func(l listenerEntry[T]) bool { return l.id == id })
}

// Dispose cancels any run and drops all listeners.
func (a *ValueAnimator) Dispose() {
	a.Cancel()
	a.listeners = nil
	a.endListeners = nil
}
