package animation

import (
	"math"
	"testing"
)

func TestAccelerateDecelerate(t *testing.T) {
	tests := []struct {
		t, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := AccelerateDecelerate(tt.t); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("AccelerateDecelerate(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestAccelerateDecelerate_SymmetricAndMonotonic(t *testing.T) {
	prev := 0.0
	for i := 0; i <= 100; i++ {
		x := float64(i) / 100
		y := AccelerateDecelerate(x)
		if math.Abs(y+AccelerateDecelerate(1-x)-1) > 1e-12 {
			t.Errorf("f(%v) + f(1-%v) != 1", x, x)
		}
		if y < prev {
			t.Errorf("not monotonic at %v", x)
		}
		prev = y
	}
}

func TestLinearCurve(t *testing.T) {
	for _, x := range []float64{0, 0.25, 0.5, 1} {
		if got := LinearCurve(x); got != x {
			t.Errorf("LinearCurve(%v) = %v", x, got)
		}
	}
}

func TestClampedLerpFloat64(t *testing.T) {
	if got := ClampedLerpFloat64(10, 20, 1.5); got != 20 {
		t.Errorf("overshoot not clamped: %v", got)
	}
	if got := ClampedLerpFloat64(20, 10, 1.5); got != 10 {
		t.Errorf("reverse overshoot not clamped: %v", got)
	}
	if got := ClampedLerpFloat64(10, 20, 0.5); got != 15 {
		t.Errorf("midpoint = %v, want 15", got)
	}
}
