package clockface

import (
	"time"

	"github.com/go-drift/clockface/pkg/animation"
	"github.com/go-drift/clockface/pkg/rendering"
)

// DefaultRimStrokeWidthDp is the rim stroke width in density-independent units.
const DefaultRimStrokeWidthDp = 5

// Style holds the rendering and timing parameters of a clock face.
// The engine never changes it.
type Style struct {
	// FaceColor fills the face. Default white.
	FaceColor rendering.Color
	// RimColor strokes the rim and both hands. Default black.
	RimColor rendering.Color
	// RimStrokeWidth is the rim and hand width in pixels.
	RimStrokeWidth float64
	// AnimationDuration is the length of every hand animation. Default 500ms.
	AnimationDuration time.Duration
}

// DefaultStyle returns the default style for a display with the given
// density (pixels per density-independent unit).
func DefaultStyle(density float64) Style {
	return Style{
		FaceColor:         rendering.ColorWhite,
		RimColor:          rendering.ColorBlack,
		RimStrokeWidth:    DpToPx(DefaultRimStrokeWidthDp, density),
		AnimationDuration: animation.DefaultDuration,
	}
}

// DpToPx converts density-independent units to whole pixels, rounding
// half up.
func DpToPx(dp, density float64) float64 {
	return float64(int(dp*density + 0.5))
}

// FacePaint returns the anti-aliased fill paint for the face.
func (s Style) FacePaint() rendering.Paint {
	p := rendering.DefaultPaint()
	p.Color = s.FaceColor
	p.Style = rendering.PaintStyleFill
	return p
}

// RimPaint returns the anti-aliased round-capped stroke paint for the rim
// and hands.
func (s Style) RimPaint() rendering.Paint {
	p := rendering.DefaultPaint()
	p.Color = s.RimColor
	p.Style = rendering.PaintStyleStroke
	p.StrokeCap = rendering.CapRound
	p.StrokeWidth = s.RimStrokeWidth
	return p
}
