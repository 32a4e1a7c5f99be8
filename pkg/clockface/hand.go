package clockface

import "fmt"

// Hand identifies one of the two clock hands.
type Hand int

const (
	// HourHand completes a revolution every 12 hours.
	HourHand Hand = iota
	// MinuteHand completes a revolution every hour.
	MinuteHand

	handCount = 2
)

// Hands lists both hands in the order the engine drives them.
var Hands = [handCount]Hand{HourHand, MinuteHand}

func (h Hand) String() string {
	switch h {
	case HourHand:
		return "hour"
	case MinuteHand:
		return "minute"
	default:
		return fmt.Sprintf("Hand(%d)", int(h))
	}
}

// minutesPerRevolution is how many elapsed minutes turn the hand 360°.
func (h Hand) minutesPerRevolution() float64 {
	if h == HourHand {
		return 12 * minutesPerHour
	}
	return minutesPerHour
}

// RotationDelta returns the degrees this hand sweeps over the given
// number of elapsed minutes.
func (h Hand) RotationDelta(minutes int) float64 {
	return float64(minutes) * 360 / h.minutesPerRevolution()
}

// HandState is the rotation bookkeeping for one hand, in degrees.
type HandState struct {
	// CurrentRotation is the angle currently rendered.
	CurrentRotation float64
	// TargetRotation is the angle the running animation drives toward.
	TargetRotation float64
	// RemainingRotation is the angle still owed to the hand if the running
	// animation stops early. It accumulates across interrupted runs.
	RemainingRotation float64
	// Interrupted is true iff the last run ended by cancellation.
	Interrupted bool
}
