package terminal

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"

	"github.com/go-drift/clockface/pkg/clockface"
	"github.com/go-drift/clockface/pkg/rendering"
)

// supersample is the raster resolution multiplier applied before
// downscaling to terminal cells.
const supersample = 4

// alphaCutoff is the coverage below which a half-cell is left blank.
const alphaCutoff = 96

// renderer rasterizes a clock view into half-block terminal text. Each
// terminal cell holds two vertically stacked pixels.
type renderer struct {
	side   int
	canvas *rendering.RasterCanvas
	cells  *image.RGBA
}

func newRenderer(side int) *renderer {
	side = max(side, 1)
	return &renderer{
		side:   side,
		canvas: rendering.NewRasterCanvas(side*supersample, side*supersample),
		cells:  image.NewRGBA(image.Rect(0, 0, side, side)),
	}
}

// render paints view and returns side/2 lines of side cells each.
func (r *renderer) render(view *clockface.View) string {
	full := float64(r.side * supersample)
	r.canvas.Clear(rendering.ColorTransparent)
	view.SetBounds(rendering.RectFromLTWH(0, 0, full, full))
	view.Paint(r.canvas)

	src := r.canvas.Image()
	draw.BiLinear.Scale(r.cells, r.cells.Bounds(), src, src.Bounds(), draw.Src, nil)

	var sb strings.Builder
	for y := 0; y+1 < r.side; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < r.side; x++ {
			sb.WriteString(halfBlock(r.cells.RGBAAt(x, y), r.cells.RGBAAt(x, y+1)))
		}
	}
	return sb.String()
}

func halfBlock(top, bottom color.RGBA) string {
	topOn, bottomOn := top.A >= alphaCutoff, bottom.A >= alphaCutoff
	switch {
	case topOn && bottomOn:
		return lipgloss.NewStyle().
			Foreground(hexColor(top)).
			Background(hexColor(bottom)).
			Render("▀")
	case topOn:
		return lipgloss.NewStyle().Foreground(hexColor(top)).Render("▀")
	case bottomOn:
		return lipgloss.NewStyle().Foreground(hexColor(bottom)).Render("▄")
	default:
		return " "
	}
}

// hexColor converts a premultiplied pixel to an opaque lipgloss color.
func hexColor(c color.RGBA) lipgloss.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B))
}
