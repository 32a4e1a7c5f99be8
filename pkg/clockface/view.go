package clockface

import (
	"github.com/go-drift/clockface/pkg/rendering"
)

// View is an animated analog clock as seen by a host: it validates
// times, applies style changes and paints the face.
type View struct {
	style    Style
	drawable *Drawable
}

var (
	_ Paintable  = (*View)(nil)
	_ Animatable = (*View)(nil)
)

// NewView creates a clock view showing 00:00. style.AnimationDuration
// overrides opts.Duration when set.
func NewView(style Style, opts EngineOptions) *View {
	if style.AnimationDuration != 0 {
		opts.Duration = style.AnimationDuration
	}
	engine := NewEngine(opts)
	style.AnimationDuration = engine.Duration()
	return &View{
		style:    style,
		drawable: NewDrawable(engine, style.FacePaint(), style.RimPaint()),
	}
}

// SetTime jumps the hands to hours:minutes.
// Invalid values return an errors.ErrInvalidArgument error and leave the
// view unchanged.
func (v *View) SetTime(hours, minutes int) error {
	if err := validate("clockface.View.SetTime", hours, minutes); err != nil {
		return err
	}
	v.drawable.engine.SetTime(ClockTime{Hours: hours, Minutes: minutes})
	return nil
}

// AnimateToTime animates the hands forward to hours:minutes.
// Invalid values return an errors.ErrInvalidArgument error and leave the
// view unchanged.
func (v *View) AnimateToTime(hours, minutes int) error {
	if err := validate("clockface.View.AnimateToTime", hours, minutes); err != nil {
		return err
	}
	v.drawable.engine.AnimateToTime(ClockTime{Hours: hours, Minutes: minutes})
	return nil
}

// SetClockAnimationListener registers l, replacing any previous listener.
// See [Engine.SetListener].
func (v *View) SetClockAnimationListener(l any) {
	v.drawable.engine.SetListener(l)
}

// SetFaceColor changes the face fill color.
func (v *View) SetFaceColor(c rendering.Color) {
	v.style.FaceColor = c
	v.drawable.SetFacePaint(v.style.FacePaint())
}

// SetRimColor changes the rim and hand color.
func (v *View) SetRimColor(c rendering.Color) {
	v.style.RimColor = c
	v.drawable.SetRimPaint(v.style.RimPaint())
}

// SetRimStrokeWidth changes the rim and hand width in pixels.
func (v *View) SetRimStrokeWidth(width float64) {
	v.style.RimStrokeWidth = width
	v.drawable.SetRimPaint(v.style.RimPaint())
}

// Style returns the current style.
func (v *View) Style() Style {
	return v.style
}

// SetBounds lays the clock out inside bounds.
func (v *View) SetBounds(bounds rendering.Rect) {
	v.drawable.SetBounds(bounds)
}

// Paint draws the clock onto canvas.
func (v *View) Paint(canvas rendering.Canvas) {
	v.drawable.Paint(canvas)
}

// Engine returns the underlying animation engine.
func (v *View) Engine() *Engine {
	return v.drawable.engine
}

// Drawable returns the underlying drawable.
func (v *View) Drawable() *Drawable {
	return v.drawable
}

// Start starts both hands.
func (v *View) Start() { v.drawable.Start() }

// Stop cancels both hands.
func (v *View) Stop() { v.drawable.Stop() }

// IsRunning reports whether either hand is animating.
func (v *View) IsRunning() bool { return v.drawable.IsRunning() }
