package viewfinder

import (
	"image"
	"image/color"
	"testing"

	"github.com/soocke/viewfinder-go/ui/canvas"
)

func TestShadeRects_TileCanvas(t *testing.T) {
	const w, h = 300, 400
	frame := image.Rect(50, 50, 250, 350)
	rects := ShadeRects(w, h, frame)

	area := 0
	for _, r := range rects {
		area += r.Dx() * r.Dy()
	}
	// frame.Max is an inclusive boundary, so the framed block is one wider and taller.
	framed := (frame.Dx() + 1) * (frame.Dy() + 1)
	if area != w*h-framed {
		t.Fatalf("shade area %d, want %d", area, w*h-framed)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hits := 0
			for _, r := range rects {
				if image.Pt(x, y).In(r) {
					hits++
				}
			}
			inside := x >= frame.Min.X && x <= frame.Max.X && y >= frame.Min.Y && y <= frame.Max.Y
			if inside && hits != 0 {
				t.Fatalf("pixel (%d,%d) inside frame painted %d times", x, y, hits)
			}
			if !inside && hits != 1 {
				t.Fatalf("pixel (%d,%d) outside frame painted %d times", x, y, hits)
			}
		}
	}
}

func TestShadeRects_FrameTouchingEdges(t *testing.T) {
	rects := ShadeRects(100, 100, image.Rect(0, 0, 99, 99))
	for i, r := range rects {
		if !r.Empty() {
			t.Fatalf("band %d should be empty, got %v", i, r)
		}
	}
}

func TestPaintShade_SkipsEmptyBands(t *testing.T) {
	rec := canvas.NewRecorder(100, 50)
	shade := color.NRGBA{A: 0x60}
	PaintShade(rec, image.Rect(0, 10, 99, 40), shade)
	ops := rec.OpsOf(canvas.OpFillRect)
	if len(ops) != 2 {
		t.Fatalf("expected top and bottom bands only, got %d ops", len(ops))
	}
	for _, op := range ops {
		if op.Color != shade {
			t.Fatalf("unexpected colour %v", op.Color)
		}
	}
}
