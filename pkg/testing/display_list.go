package testing

import (
	"math"

	"github.com/go-drift/clockface/pkg/rendering"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// Painter is anything that paints itself onto a canvas.
type Painter interface {
	Paint(canvas rendering.Canvas)
}

// serializingCanvas implements rendering.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size rendering.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: params("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) Rotate(radians float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "rotate",
		Params: params("degrees", round2(radians*180/math.Pi)),
	})
}

func (c *serializingCanvas) Clear(color rendering.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: params("color", color.String()),
	})
}

func (c *serializingCanvas) DrawCircle(center rendering.Offset, radius float64, paint rendering.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawCircle",
		Params: withPaint(params(
			"cx", round2(center.X),
			"cy", round2(center.Y),
			"radius", round2(radius),
		), paint),
	})
}

func (c *serializingCanvas) DrawLine(start, end rendering.Offset, paint rendering.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawLine",
		Params: withPaint(params(
			"x1", round2(start.X), "y1", round2(start.Y),
			"x2", round2(end.X), "y2", round2(end.Y),
		), paint),
	})
}

func (c *serializingCanvas) Size() rendering.Size {
	return c.size
}

// RecordOps paints p onto a serializing canvas of the given size and
// returns the recorded operations.
func RecordOps(p Painter, size rendering.Size) []DisplayOp {
	canvas := &serializingCanvas{size: size}
	p.Paint(canvas)
	return canvas.ops
}

// SerializeDisplayList replays a DisplayList through the serializing canvas.
func SerializeDisplayList(dl *rendering.DisplayList) []DisplayOp {
	return RecordOps(dl, dl.Size())
}

// FilterOps returns the ops named op, in order.
func FilterOps(ops []DisplayOp, op string) []DisplayOp {
	var out []DisplayOp
	for _, o := range ops {
		if o.Op == op {
			out = append(out, o)
		}
	}
	return out
}

func withPaint(m map[string]any, paint rendering.Paint) map[string]any {
	m["color"] = paint.EffectiveColor().String()
	m["style"] = paint.Style.String()
	if paint.Style == rendering.PaintStyleStroke {
		m["strokeWidth"] = round2(paint.StrokeWidth)
		m["cap"] = paint.StrokeCap.String()
	}
	return m
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// params creates a map from alternating key-value pairs.
func params(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
