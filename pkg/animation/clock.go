package animation

import "time"

// Clock provides time for animations. The default implementation uses
// system time. Tests inject a fake clock, either per [Scheduler] via
// [NewScheduler] or process-wide via [SetClock].
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock replaces the package-level clock used by schedulers created
// without an explicit clock. Returns the previous clock so callers can
// restore it during cleanup. Passing nil restores system time.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = realClock{}
	}
	clock = c
	return prev
}

// Now returns the current time from the package-level clock.
func Now() time.Time { return clock.Now() }
