package viewfinder

import (
	"image"
	"math"
)

// MapPoint converts a preview-space point into view coordinates inside frame.
// preview must have non-zero width and height; the geometry provider owns
// that guarantee and it is not checked here.
func MapPoint(p Point, frame, preview image.Rectangle) image.Point {
	scaleX := float64(frame.Dx()) / float64(preview.Dx())
	scaleY := float64(frame.Dy()) / float64(preview.Dy())
	return image.Point{
		X: frame.Min.X + int(math.Floor(p.X*scaleX)),
		Y: frame.Min.Y + int(math.Floor(p.Y*scaleY)),
	}
}
