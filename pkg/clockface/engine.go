package clockface

import (
	"log/slog"
	"time"

	"github.com/go-drift/clockface/pkg/animation"
)

// EngineOptions configures an [Engine]. The zero value is usable.
type EngineOptions struct {
	// Duration is the length of every hand animation. Zero means
	// animation.DefaultDuration; negative panics.
	Duration time.Duration

	// Curve shapes animation progress. Nil means animation.AccelerateDecelerate.
	Curve func(float64) float64

	// Scheduler supplies frames. Nil means animation.DefaultScheduler().
	Scheduler *animation.Scheduler

	// Invalidate is called whenever the rendered rotations change.
	Invalidate func()

	// Logger receives debug records for restarts and interruptions.
	// Nil discards them.
	Logger *slog.Logger
}

// Engine drives the hour and minute hands toward a target time.
//
// Engine is not safe for concurrent use. All methods and all animation
// callbacks run on the goroutine that steps the scheduler.
type Engine struct {
	hands      [handCount]HandState
	animators  [handCount]*animation.ValueAnimator
	previous   ClockTime
	duration   time.Duration
	listener   any
	invalidate func()
	logger     *slog.Logger
}

// NewEngine creates an engine at 00:00 with both hands at 0°.
func NewEngine(opts EngineOptions) *Engine {
	if opts.Duration == 0 {
		opts.Duration = animation.DefaultDuration
	}
	if opts.Curve == nil {
		opts.Curve = animation.AccelerateDecelerate
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	e := &Engine{
		duration:   opts.Duration,
		invalidate: opts.Invalidate,
		logger:     opts.Logger,
	}
	for _, h := range Hands {
		a := animation.NewValueAnimator(opts.Scheduler, opts.Duration)
		a.Curve = opts.Curve
		a.AddUpdateListener(func(value float64) { e.handleFrame(h, value) })
		a.AddEndListener(func(interrupted bool) { e.handleEnd(h, interrupted) })
		e.animators[h] = a
	}
	return e
}

// Duration returns the animation duration shared by both hands.
func (e *Engine) Duration() time.Duration {
	return e.duration
}

// SetListener registers l for animation events, replacing any previous
// listener. l may implement any subset of the listener capabilities;
// nil removes the listener.
func (e *Engine) SetListener(l any) {
	e.listener = l
}

// SetInvalidator replaces the redraw callback.
func (e *Engine) SetInvalidator(fn func()) {
	e.invalidate = fn
}

// SetTime jumps both hands to newTime.
//
// The rotation owed for the elapsed minutes is added to any rotation a
// cancelled or in-flight run still owes, and both hands are started on a
// zero-span run that lands on the new target at the next frame.
//
// newTime must be valid (see [NewClockTime]); the engine does not check it.
// [View.SetTime] validates before calling.
func (e *Engine) SetTime(newTime ClockTime) {
	diff := MinutesBetween(e.previous, newTime)
	e.accumulate(diff)
	if e.IsRunning() {
		e.Stop()
	}
	for _, h := range Hands {
		hs := &e.hands[h]
		hs.TargetRotation = hs.CurrentRotation + hs.RemainingRotation
		e.animators[h].Configure(hs.TargetRotation, hs.TargetRotation)
	}
	e.startHands()
	e.logger.Debug("clock time set",
		slog.String("from", e.previous.String()),
		slog.String("to", newTime.String()),
		slog.Int("minutes", diff))
	e.previous = newTime
	e.requestRedraw()
}

// AnimateToTime animates both hands forward to newTime.
//
// If a run is in flight, both hands are cancelled first; the angle they
// still owe carries over into the new run, so no rotation is lost.
//
// newTime must be valid (see [NewClockTime]); the engine does not check it.
// [View.AnimateToTime] validates before calling.
func (e *Engine) AnimateToTime(newTime ClockTime) {
	diff := MinutesBetween(e.previous, newTime)
	e.accumulate(diff)
	if e.IsRunning() {
		e.logger.Debug("interrupting clock animation",
			slog.Float64("hour_remaining", e.hands[HourHand].RemainingRotation),
			slog.Float64("minute_remaining", e.hands[MinuteHand].RemainingRotation))
		e.Stop()
	}
	for _, h := range Hands {
		hs := &e.hands[h]
		hs.TargetRotation = hs.CurrentRotation + hs.RemainingRotation
		e.animators[h].Configure(hs.CurrentRotation, hs.TargetRotation)
	}
	e.startHands()
	e.logger.Debug("clock animation started",
		slog.String("from", e.previous.String()),
		slog.String("to", newTime.String()),
		slog.Float64("hour_target", e.hands[HourHand].TargetRotation),
		slog.Float64("minute_target", e.hands[MinuteHand].TargetRotation))
	e.previous = newTime
}

func (e *Engine) accumulate(minutes int) {
	for _, h := range Hands {
		e.hands[h].RemainingRotation += h.RotationDelta(minutes)
	}
}

// Start resumes both hands toward their current rotation plus whatever
// rotation they still owe. It does nothing while a run is in flight.
func (e *Engine) Start() {
	if e.IsRunning() {
		return
	}
	for _, h := range Hands {
		hs := &e.hands[h]
		hs.TargetRotation = hs.CurrentRotation + hs.RemainingRotation
		e.animators[h].Configure(hs.CurrentRotation, hs.TargetRotation)
	}
	e.startHands()
}

func (e *Engine) startHands() {
	for _, h := range Hands {
		e.hands[h].Interrupted = false
	}
	for _, h := range Hands {
		e.animators[h].Start()
	}
}

// Stop cancels both hands. End events fire synchronously with
// interrupted=true for each hand that was running.
func (e *Engine) Stop() {
	for _, h := range Hands {
		e.hands[h].Interrupted = true
	}
	for _, h := range Hands {
		e.animators[h].Cancel()
	}
}

// IsRunning reports whether either hand is animating.
func (e *Engine) IsRunning() bool {
	return e.animators[HourHand].IsRunning() || e.animators[MinuteHand].IsRunning()
}

// Hand returns a snapshot of one hand's rotation state.
func (e *Engine) Hand(h Hand) HandState {
	return e.hands[h]
}

// HourRotation returns the rendered hour hand angle in degrees.
func (e *Engine) HourRotation() float64 {
	return e.hands[HourHand].CurrentRotation
}

// MinuteRotation returns the rendered minute hand angle in degrees.
func (e *Engine) MinuteRotation() float64 {
	return e.hands[MinuteHand].CurrentRotation
}

// Time returns the last time passed to SetTime or AnimateToTime.
func (e *Engine) Time() ClockTime {
	return e.previous
}

func (e *Engine) handleFrame(h Hand, value float64) {
	hs := &e.hands[h]
	hs.RemainingRotation = hs.TargetRotation - value
	hs.CurrentRotation = value
	notifyUpdate(e.listener, h)
	e.requestRedraw()
}

func (e *Engine) handleEnd(h Hand, interrupted bool) {
	hs := &e.hands[h]
	hs.Interrupted = interrupted
	if !interrupted {
		hs.RemainingRotation = 0
	}
	notifyEnd(e.listener, h, interrupted)
}

func (e *Engine) requestRedraw() {
	if e.invalidate != nil {
		e.invalidate()
	}
}
