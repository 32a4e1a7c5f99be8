package rendering

import "math"

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// ShortestSide returns the smaller of width and height.
func (r Rect) ShortestSide() float64 {
	return math.Min(r.Width(), r.Height())
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// affine is a 2x3 transform matrix [a c e; b d f].
type affine struct {
	a, b, c, d, e, f float64
}

var identity = affine{a: 1, d: 1}

func (m affine) translate(dx, dy float64) affine {
	m.e += m.a*dx + m.c*dy
	m.f += m.b*dx + m.d*dy
	return m
}

func (m affine) rotate(radians float64) affine {
	sin, cos := math.Sincos(radians)
	return affine{
		a: m.a*cos + m.c*sin,
		b: m.b*cos + m.d*sin,
		c: -m.a*sin + m.c*cos,
		d: -m.b*sin + m.d*cos,
		e: m.e,
		f: m.f,
	}
}

func (m affine) apply(p Offset) Offset {
	return Offset{
		X: m.a*p.X + m.c*p.Y + m.e,
		Y: m.b*p.X + m.d*p.Y + m.f,
	}
}
