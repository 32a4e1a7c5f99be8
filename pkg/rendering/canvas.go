// Package rendering provides the drawing surface consumed by the clock
// face: colors, paints, geometry, and the [Canvas] interface with two
// implementations, a [PictureRecorder] that records display lists and a
// [RasterCanvas] that rasterizes into an image.
package rendering

// Canvas records or renders drawing commands.
//
// Rotations are in radians and, with the y axis pointing down, positive
// angles turn clockwise on screen.
type Canvas interface {
	// Save pushes the current transform.
	Save()

	// Restore pops the most recent transform.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Rotate rotates the coordinate system by radians.
	Rotate(radians float64)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end Offset, paint Paint)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
