package app

import (
	"image"
	"image/color"
	"testing"

	"github.com/soocke/viewfinder-go/config"
	"github.com/soocke/viewfinder-go/domain/capture"
	"github.com/soocke/viewfinder-go/domain/viewfinder"
)

type stubPreview struct {
	capture.PreviewService
	frame *image.RGBA
}

func (s *stubPreview) LatestFrame() capture.FrameSnapshot {
	return capture.FrameSnapshot{Image: s.frame, Sequence: 1}
}

func TestOverlayOptions_FromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CursorSpeed = 7
	cfg.LaserColor = "#00ff00ff"
	cfg.UseCursorSprite = false
	opts := overlayOptions(cfg, nil)
	if opts.Sprite != nil || opts.FocusFrame != nil {
		t.Fatalf("sprite assets loaded with UseCursorSprite=false")
	}
	if opts.CursorSpeed != 7 || opts.Laser != (color.NRGBA{G: 0xff, A: 0xff}) {
		t.Fatalf("opts=%+v", opts)
	}
	if _, ok := viewfinder.NewScanIndicator(opts.Sprite, opts.Laser, opts.CursorSpeed).(*viewfinder.PulseLine); !ok {
		t.Fatalf("expected laser line indicator")
	}
}

func TestBuildContainer_UsesEmbeddedSprite(t *testing.T) {
	c := BuildContainer(config.DefaultConfig(), "", nil)
	defer c.Close()
	if _, ok := c.Viewfinder.Indicator().(*viewfinder.BounceSprite); !ok {
		t.Fatalf("indicator=%T, want sprite cursor", c.Viewfinder.Indicator())
	}
	if _, ok := c.Geometry.FramingRect(); !ok {
		t.Fatalf("geometry should be ready from configured sizes")
	}
	if w, h := c.Surface.Size(); w != 800 || h != 600 {
		t.Fatalf("surface %dx%d", w, h)
	}
	// SetGeometryProvider requests the first full repaint.
	if _, full, ok := c.Overlay.TakeDirty(); !ok || !full {
		t.Fatalf("expected initial full repaint request")
	}
}

func TestResultFromPreview_CropsFramingRect(t *testing.T) {
	c := BuildContainer(config.DefaultConfig(), "", nil)
	defer c.Close()
	frame := image.NewRGBA(image.Rect(0, 0, 640, 480))
	want := c.Geometry.FramingRectInPreview()
	frame.Set(want.Min.X, want.Min.Y, color.RGBA{R: 0xff, A: 0xff})
	c.Preview = &stubPreview{frame: frame}

	img := c.ResultFromPreview()
	if img == nil {
		t.Fatalf("expected crop")
	}
	if img.Bounds().Size() != want.Size() {
		t.Fatalf("crop size %v want %v", img.Bounds().Size(), want.Size())
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r>>8 != 0xff {
		t.Fatalf("crop origin not aligned with framing rect")
	}

	c.Preview = &stubPreview{}
	if c.ResultFromPreview() != nil {
		t.Fatalf("expected nil without a frame")
	}
}
