package animation

import "math"

// Tween interpolates between Begin and End values based on animation progress.
//
// [ValueAnimator] uses a float64 tween to map eased progress onto its
// configured range. Custom types supply their own Lerp function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin value,
	// end value, and progress t in [0, 1]. Returns the interpolated value.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// ClampedLerpFloat64 interpolates like [LerpFloat64] but never leaves the
// closed range spanned by a and b, even for curves that overshoot.
func ClampedLerpFloat64(a, b float64, t float64) float64 {
	v := LerpFloat64(a, b, t)
	return math.Min(math.Max(v, math.Min(a, b)), math.Max(a, b))
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}
