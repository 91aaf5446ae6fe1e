package viewfinder

import (
	"image"
	"testing"
)

func TestMapPoint(t *testing.T) {
	cases := []struct {
		name    string
		p       Point
		frame   image.Rectangle
		preview image.Rectangle
		want    image.Point
	}{
		{"double scale", Point{25, 50}, image.Rect(0, 0, 100, 200), image.Rect(0, 0, 50, 100), image.Pt(50, 100)},
		{"offset frame", Point{10, 10}, image.Rect(40, 60, 240, 260), image.Rect(0, 0, 100, 100), image.Pt(60, 80)},
		{"floors fractions", Point{1, 1}, image.Rect(0, 0, 30, 30), image.Rect(0, 0, 20, 20), image.Pt(1, 1)},
		{"origin", Point{0, 0}, image.Rect(7, 9, 107, 209), image.Rect(0, 0, 640, 480), image.Pt(7, 9)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MapPoint(tc.p, tc.frame, tc.preview); got != tc.want {
				t.Fatalf("MapPoint(%v)=%v want %v", tc.p, got, tc.want)
			}
		})
	}
}
