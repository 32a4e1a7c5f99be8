package clockface

import (
	"math"

	"github.com/go-drift/clockface/pkg/rendering"
)

// Paintable draws itself at its current state.
type Paintable interface {
	Paint(canvas rendering.Canvas)
}

// Animatable can be started, stopped and polled.
type Animatable interface {
	Start()
	Stop()
	IsRunning() bool
}

const (
	hourHandRatio   = 0.7
	minuteHandRatio = 0.9
)

// Drawable paints a clock face whose hands follow an [Engine].
type Drawable struct {
	engine    *Engine
	facePaint rendering.Paint
	rimPaint  rendering.Paint
	alpha     float64

	bounds           rendering.Rect
	rimRadius        float64
	faceRadius       float64
	hourHandLength   float64
	minuteHandLength float64
}

var (
	_ Paintable  = (*Drawable)(nil)
	_ Animatable = (*Drawable)(nil)
)

// NewDrawable creates a drawable with the given paints, driven by engine.
func NewDrawable(engine *Engine, facePaint, rimPaint rendering.Paint) *Drawable {
	return &Drawable{
		engine:    engine,
		facePaint: facePaint,
		rimPaint:  rimPaint,
		alpha:     -1,
	}
}

// Engine returns the engine driving the hands.
func (d *Drawable) Engine() *Engine {
	return d.engine
}

// Bounds returns the rectangle the clock is drawn into.
func (d *Drawable) Bounds() rendering.Rect {
	return d.bounds
}

// SetBounds lays the clock out inside bounds and requests a redraw.
func (d *Drawable) SetBounds(bounds rendering.Rect) {
	d.bounds = bounds
	d.layout()
	d.engine.requestRedraw()
}

func (d *Drawable) layout() {
	stroke := d.rimPaint.StrokeWidth
	d.rimRadius = math.Max(d.bounds.ShortestSide()/2-stroke, 0)
	d.faceRadius = math.Max(d.rimRadius-stroke, 0)
	d.hourHandLength = hourHandRatio * d.faceRadius
	d.minuteHandLength = minuteHandRatio * d.faceRadius
}

// Geometry returns the rim radius, face radius and the two hand lengths
// for the current bounds.
func (d *Drawable) Geometry() (rimRadius, faceRadius, hourHand, minuteHand float64) {
	return d.rimRadius, d.faceRadius, d.hourHandLength, d.minuteHandLength
}

// SetFacePaint replaces the face paint and requests a redraw. An opacity
// set with SetAlpha is kept.
func (d *Drawable) SetFacePaint(p rendering.Paint) {
	d.facePaint = d.withAlpha(p)
	d.engine.requestRedraw()
}

// SetRimPaint replaces the rim and hand paint, re-lays out for its
// stroke width, and requests a redraw. An opacity set with SetAlpha is
// kept.
func (d *Drawable) SetRimPaint(p rendering.Paint) {
	d.rimPaint = d.withAlpha(p)
	d.layout()
	d.engine.requestRedraw()
}

// SetAlpha sets the opacity (0-255) of both paints.
func (d *Drawable) SetAlpha(alpha uint8) {
	d.alpha = float64(alpha) / 255
	d.facePaint.Alpha = d.alpha
	d.rimPaint.Alpha = d.alpha
	d.engine.requestRedraw()
}

// withAlpha applies the SetAlpha opacity to p, if one was set.
func (d *Drawable) withAlpha(p rendering.Paint) rendering.Paint {
	if d.alpha >= 0 {
		p.Alpha = d.alpha
	}
	return p
}

// Paint draws the rim, the face, then the hour and minute hands rotated
// about the center.
func (d *Drawable) Paint(canvas rendering.Canvas) {
	if d.bounds.IsEmpty() {
		return
	}
	center := d.bounds.Center()

	canvas.DrawCircle(center, d.rimRadius, d.rimPaint)
	canvas.DrawCircle(center, d.faceRadius, d.facePaint)

	d.paintHand(canvas, center, d.engine.HourRotation(), d.hourHandLength)
	d.paintHand(canvas, center, d.engine.MinuteRotation(), d.minuteHandLength)
}

func (d *Drawable) paintHand(canvas rendering.Canvas, center rendering.Offset, degrees, length float64) {
	canvas.Save()
	canvas.Translate(center.X, center.Y)
	canvas.Rotate(degrees * math.Pi / 180)
	canvas.DrawLine(rendering.Offset{}, rendering.Offset{Y: -length}, d.rimPaint)
	canvas.Restore()
}

// Start starts both hands.
func (d *Drawable) Start() { d.engine.Start() }

// Stop cancels both hands.
func (d *Drawable) Stop() { d.engine.Stop() }

// IsRunning reports whether either hand is animating.
func (d *Drawable) IsRunning() bool { return d.engine.IsRunning() }
