package animation

import "math"

// Easing curves map linear progress t in [0, 1] to eased progress.

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// AccelerateDecelerate starts and ends slowly and is fastest at the
// midpoint. It is symmetric: f(t) + f(1-t) == 1.
func AccelerateDecelerate(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}
