package canvas_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/soocke/viewfinder-go/domain/viewfinder"
	"github.com/soocke/viewfinder-go/ui/canvas"
)

var (
	_ viewfinder.Canvas = (*canvas.Surface)(nil)
	_ viewfinder.Canvas = (*canvas.Recorder)(nil)
)

func TestSurface_FillRectPaintsPixels(t *testing.T) {
	s := canvas.NewSurface(40, 30, nil)
	defer s.Close()
	s.Begin()
	s.FillRect(image.Rect(10, 10, 30, 20), color.NRGBA{R: 0xff, A: 0xff})

	r, g, b, _ := s.Image().At(20, 15).RGBA()
	if r>>8 < 0xf0 || g>>8 > 0x10 || b>>8 > 0x10 {
		t.Fatalf("inside pixel = (%d,%d,%d), want red", r>>8, g>>8, b>>8)
	}
	r, _, _, _ = s.Image().At(2, 2).RGBA()
	if r>>8 > 0x10 {
		t.Fatalf("outside pixel red=%d, want black", r>>8)
	}
}

func TestSurface_EmptyOpsAreSkipped(t *testing.T) {
	s := canvas.NewSurface(8, 8, nil)
	defer s.Close()
	s.Begin()
	s.FillRect(image.Rect(4, 4, 4, 8), color.NRGBA{G: 0xff, A: 0xff})
	s.FillCircle(4, 4, 0, color.NRGBA{G: 0xff, A: 0xff})
	s.DrawImage(nil, image.Rect(0, 0, 8, 8), 1)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if _, g, _, _ := s.Image().At(x, y).RGBA(); g>>8 > 0x10 {
				t.Fatalf("pixel (%d,%d) painted by a no-op", x, y)
			}
		}
	}
}

func TestSurface_EncodePNGAndResize(t *testing.T) {
	s := canvas.NewSurface(16, 16, nil)
	defer s.Close()
	s.Begin()
	if err := s.Resize(32, 24); err != nil {
		t.Fatalf("resize: %v", err)
	}
	if w, h := s.Size(); w != 32 || h != 24 {
		t.Fatalf("size after resize = %dx%d", w, h)
	}
	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 24 {
		t.Fatalf("png size = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestRecorder_FiltersByKind(t *testing.T) {
	r := canvas.NewRecorder(10, 10)
	r.FillRect(image.Rect(0, 0, 1, 1), color.NRGBA{A: 1})
	r.FillCircle(1, 1, 2, color.NRGBA{A: 1})
	r.FillRect(image.Rect(1, 1, 2, 2), color.NRGBA{A: 1})
	if got := len(r.OpsOf(canvas.OpFillRect)); got != 2 {
		t.Fatalf("fill rect ops = %d", got)
	}
	if got := r.Ops()[1].Kind.String(); got != "fill-circle" {
		t.Fatalf("kind string = %q", got)
	}
	r.Reset()
	if len(r.Ops()) != 0 {
		t.Fatalf("reset left ops")
	}
}
