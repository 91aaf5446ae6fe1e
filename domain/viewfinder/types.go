package viewfinder

import (
	"image"
	"image/color"
)

// Point is a candidate feature location in preview (camera image) coordinates.
type Point struct {
	X, Y float64
}

// GeometryProvider supplies the framing rectangle for each render pass.
//
// FramingRect reports ok=false while the camera is not configured yet; the
// pass is skipped entirely in that case. Whenever FramingRect is present,
// FramingRectInPreview must return a rectangle with non-zero width and height.
type GeometryProvider interface {
	FramingRect() (image.Rectangle, bool)
	FramingRectInPreview() image.Rectangle
}

// Canvas is the drawing surface a render pass paints on.
// Rectangles are half-open (Min inclusive, Max exclusive) in view pixels.
type Canvas interface {
	Size() (width, height int)
	FillRect(r image.Rectangle, c color.NRGBA)
	FillCircle(cx, cy, radius float64, c color.NRGBA)
	DrawImage(img image.Image, dst image.Rectangle, opacity float64)
}

// Invalidator asks the host to run another render pass.
type Invalidator interface {
	Invalidate()
	InvalidateRect(region image.Rectangle)
}

// withAlpha returns c with its alpha channel replaced.
func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
