package viewfinder

import (
	"image"
	"image/color"
)

// ShadeRects returns the four canvas regions outside frame: above, left,
// right and below. frame.Max is the boundary row/column of the framing
// rectangle, hence the +1 on the side and bottom bands. Bands that fall off
// the canvas come back empty rather than canonicalized.
func ShadeRects(width, height int, frame image.Rectangle) [4]image.Rectangle {
	rect := func(x0, y0, x1, y1 int) image.Rectangle {
		return image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
	}
	return [4]image.Rectangle{
		rect(0, 0, width, frame.Min.Y),
		rect(0, frame.Min.Y, frame.Min.X, frame.Max.Y+1),
		rect(frame.Max.X+1, frame.Min.Y, width, frame.Max.Y+1),
		rect(0, frame.Max.Y+1, width, height),
	}
}

// PaintShade darkens everything outside frame with a single shade colour.
func PaintShade(c Canvas, frame image.Rectangle, shade color.NRGBA) {
	w, h := c.Size()
	for _, r := range ShadeRects(w, h, frame) {
		if r.Empty() {
			continue
		}
		c.FillRect(r, shade)
	}
}
