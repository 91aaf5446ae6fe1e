package images

import (
	"bytes"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// FitSize returns the largest size with the aspect ratio of src that fits
// within maxW x maxH. Sources that already fit keep their size.
func FitSize(src image.Point, maxW, maxH int) image.Point {
	if src.X <= 0 || src.Y <= 0 {
		return image.Point{}
	}
	if src.X <= maxW && src.Y <= maxH {
		return src
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	ratio := float64(maxW) / float64(src.X)
	if r := float64(maxH) / float64(src.Y); r < ratio {
		ratio = r
	}
	w := int(float64(src.X)*ratio + 0.5)
	h := int(float64(src.Y)*ratio + 0.5)
	return image.Pt(max(w, 1), max(h, 1))
}

// ScaleToFit resamples src so that it fits within maxW x maxH preserving
// aspect ratio. If the source already fits, the original is returned.
func ScaleToFit(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	size := FitSize(b.Size(), maxW, maxH)
	if size == b.Size() || size == (image.Point{}) {
		return src
	}
	dst := image.NewRGBA(image.Rectangle{Max: size})
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Stretch resamples src to exactly size, ignoring aspect ratio. It maps a
// camera frame onto the view surface the same way the preview does.
func Stretch(src image.Image, size image.Point) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: size})
	if src == nil || size.X <= 0 || size.Y <= 0 {
		return dst
	}
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
