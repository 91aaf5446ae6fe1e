package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestFitSize(t *testing.T) {
	cases := []struct {
		src        image.Point
		maxW, maxH int
		want       image.Point
	}{
		{image.Pt(100, 50), 400, 225, image.Pt(100, 50)},
		{image.Pt(1920, 1080), 400, 225, image.Pt(400, 225)},
		{image.Pt(1000, 2000), 400, 400, image.Pt(200, 400)},
		{image.Pt(0, 10), 10, 10, image.Point{}},
	}
	for _, tc := range cases {
		if got := FitSize(tc.src, tc.maxW, tc.maxH); got != tc.want {
			t.Fatalf("FitSize(%v,%d,%d)=%v want %v", tc.src, tc.maxW, tc.maxH, got, tc.want)
		}
	}
}

func TestScaleToFit_ReturnsOriginalWhenSmall(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if got := ScaleToFit(src, 20, 20); got != image.Image(src) {
		t.Fatalf("expected original image")
	}
	if got := ScaleToFit(src, 5, 5); got.Bounds().Size() != image.Pt(5, 5) {
		t.Fatalf("unexpected scaled size %v", got.Bounds())
	}
}

func TestStretch_FillsTarget(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	dst := Stretch(src, image.Pt(16, 8))
	if dst.Bounds().Size() != image.Pt(16, 8) {
		t.Fatalf("size %v", dst.Bounds())
	}
	if c := dst.RGBAAt(8, 4); c.R != 200 || c.A != 255 {
		t.Fatalf("unexpected pixel %v", c)
	}
}

func TestEncodePNG(t *testing.T) {
	if EncodePNG(nil) != nil {
		t.Fatalf("nil image should encode to nil")
	}
	data := EncodePNG(image.NewRGBA(image.Rect(0, 0, 3, 3)))
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil || img.Bounds().Dx() != 3 {
		t.Fatalf("round trip failed: %v", err)
	}
}
