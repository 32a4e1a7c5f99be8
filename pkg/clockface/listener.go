package clockface

// Listeners may implement any subset of the four capability interfaces
// below. The engine checks each capability separately, so a listener that
// only cares about the minute hand ending implements MinuteEndListener and
// nothing else.

// MinuteUpdateListener is notified on every frame of a minute hand run.
type MinuteUpdateListener interface {
	OnMinuteAnimationUpdate()
}

// MinuteEndListener is notified once when a minute hand run ends.
// interrupted is true when the run was cancelled.
type MinuteEndListener interface {
	OnMinuteAnimationEnd(interrupted bool)
}

// HourUpdateListener is notified on every frame of an hour hand run.
type HourUpdateListener interface {
	OnHourAnimationUpdate()
}

// HourEndListener is notified once when an hour hand run ends.
// interrupted is true when the run was cancelled.
type HourEndListener interface {
	OnHourAnimationEnd(interrupted bool)
}

// AnimationListener implements every capability.
type AnimationListener interface {
	MinuteUpdateListener
	MinuteEndListener
	HourUpdateListener
	HourEndListener
}

// ListenerFuncs adapts plain functions to all four capabilities.
// Nil fields are skipped.
type ListenerFuncs struct {
	MinuteUpdate func()
	MinuteEnd    func(interrupted bool)
	HourUpdate   func()
	HourEnd      func(interrupted bool)
}

var _ AnimationListener = ListenerFuncs{}

func (f ListenerFuncs) OnMinuteAnimationUpdate() {
	if f.MinuteUpdate != nil {
		f.MinuteUpdate()
	}
}

func (f ListenerFuncs) OnMinuteAnimationEnd(interrupted bool) {
	if f.MinuteEnd != nil {
		f.MinuteEnd(interrupted)
	}
}

func (f ListenerFuncs) OnHourAnimationUpdate() {
	if f.HourUpdate != nil {
		f.HourUpdate()
	}
}

func (f ListenerFuncs) OnHourAnimationEnd(interrupted bool) {
	if f.HourEnd != nil {
		f.HourEnd(interrupted)
	}
}

func notifyUpdate(listener any, h Hand) {
	switch h {
	case HourHand:
		if l, ok := listener.(HourUpdateListener); ok {
			l.OnHourAnimationUpdate()
		}
	case MinuteHand:
		if l, ok := listener.(MinuteUpdateListener); ok {
			l.OnMinuteAnimationUpdate()
		}
	}
}

func notifyEnd(listener any, h Hand, interrupted bool) {
	switch h {
	case HourHand:
		if l, ok := listener.(HourEndListener); ok {
			l.OnHourAnimationEnd(interrupted)
		}
	case MinuteHand:
		if l, ok := listener.(MinuteEndListener); ok {
			l.OnMinuteAnimationEnd(interrupted)
		}
	}
}
