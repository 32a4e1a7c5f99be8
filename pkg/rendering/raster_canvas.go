package rendering

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// RasterCanvas rasterizes drawing commands into an RGBA image using
// anti-aliased vector coverage.
//
// Circles and stroke caps are flattened into polygons; the segment count
// grows with the radius so edges stay smooth at any size.
type RasterCanvas struct {
	img       *image.RGBA
	raster    *vector.Rasterizer
	transform affine
	stack     []affine
}

// NewRasterCanvas creates a transparent canvas of the given pixel size.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return &RasterCanvas{
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		raster:    vector.NewRasterizer(width, height),
		transform: identity,
	}
}

// Image returns the backing image. It is updated in place by later draws.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.transform)
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.transform = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.transform = c.transform.translate(dx, dy)
}

func (c *RasterCanvas) Rotate(radians float64) {
	c.transform = c.transform.rotate(radians)
}

func (c *RasterCanvas) Clear(col Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

func (c *RasterCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	if radius <= 0 {
		return
	}
	switch paint.Style {
	case PaintStyleStroke:
		half := paint.StrokeWidth / 2
		outer := circlePolygon(center, radius+half)
		inner := circlePolygon(center, math.Max(radius-half, 0))
		reverse(inner)
		c.fill(paint, outer, inner)
	default:
		c.fill(paint, circlePolygon(center, radius))
	}
}

func (c *RasterCanvas) DrawLine(start, end Offset, paint Paint) {
	half := math.Max(paint.StrokeWidth, 1) / 2
	dx, dy := end.X-start.X, end.Y-start.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		if paint.StrokeCap == CapRound {
			c.fill(paint, circlePolygon(start, half))
		}
		return
	}
	ux, uy := dx/length, dy/length
	if paint.StrokeCap == CapSquare {
		start = Offset{X: start.X - ux*half, Y: start.Y - uy*half}
		end = Offset{X: end.X + ux*half, Y: end.Y + uy*half}
	}
	nx, ny := -uy*half, ux*half
	body := []Offset{
		{X: start.X + nx, Y: start.Y + ny},
		{X: end.X + nx, Y: end.Y + ny},
		{X: end.X - nx, Y: end.Y - ny},
		{X: start.X - nx, Y: start.Y - ny},
	}
	polys := [][]Offset{body}
	if paint.StrokeCap == CapRound {
		polys = append(polys, circlePolygon(start, half), circlePolygon(end, half))
	}
	// Overlapping subpaths must share a winding or their coverage cancels.
	for _, p := range polys {
		if signedArea(p) < 0 {
			reverse(p)
		}
	}
	c.fill(paint, polys...)
}

func (c *RasterCanvas) Size() Size {
	b := c.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (c *RasterCanvas) fill(paint Paint, polygons ...[]Offset) {
	b := c.img.Bounds()
	c.raster.Reset(b.Dx(), b.Dy())
	c.raster.DrawOp = draw.Over
	for _, poly := range polygons {
		if len(poly) < 3 {
			continue
		}
		first := c.transform.apply(poly[0])
		c.raster.MoveTo(float32(first.X), float32(first.Y))
		for _, p := range poly[1:] {
			q := c.transform.apply(p)
			c.raster.LineTo(float32(q.X), float32(q.Y))
		}
		c.raster.ClosePath()
	}
	src := image.NewUniform(paint.EffectiveColor().NRGBA())
	c.raster.Draw(c.img, b, src, image.Point{})
}

func circlePolygon(center Offset, radius float64) []Offset {
	segments := max(32, int(radius))
	points := make([]Offset, segments)
	for i := range segments {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(segments))
		points[i] = Offset{X: center.X + radius*cos, Y: center.Y + radius*sin}
	}
	return points
}

func signedArea(poly []Offset) float64 {
	var sum float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func reverse(poly []Offset) {
	for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
		poly[i], poly[j] = poly[j], poly[i]
	}
}
