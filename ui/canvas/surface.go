package canvas

import (
	"image"
	"image/color"
	"io"
	"log/slog"

	"github.com/gogpu/gg"
)

// Surface paints overlay passes into an RGBA pixmap using gg's software
// rasterizer. The camera preview, when set, is blitted first on every Begin.
type Surface struct {
	dc         *gg.Context
	logger     *slog.Logger
	background image.Image
}

// NewSurface allocates a surface of the given size.
func NewSurface(width, height int, logger *slog.Logger) *Surface {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Surface{dc: gg.NewContext(width, height), logger: logger}
}

// SetBackground sets the image drawn under the overlay, scaled to the surface.
func (s *Surface) SetBackground(img image.Image) { s.background = img }

// Begin clears the surface and draws the background for a new pass.
func (s *Surface) Begin() {
	s.dc.ClearWithColor(gg.Black)
	if s.background == nil {
		return
	}
	w, h := s.Size()
	s.DrawImage(s.background, image.Rect(0, 0, w, h), 1)
}

func (s *Surface) Size() (int, int) { return s.dc.Width(), s.dc.Height() }

func (s *Surface) FillRect(r image.Rectangle, c color.NRGBA) {
	if r.Empty() {
		return
	}
	s.dc.SetColor(c)
	s.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	if err := s.dc.Fill(); err != nil {
		s.logger.Warn("fill rect", "rect", r, "error", err)
	}
}

func (s *Surface) FillCircle(cx, cy, radius float64, c color.NRGBA) {
	if radius <= 0 {
		return
	}
	s.dc.SetColor(c)
	s.dc.DrawCircle(cx, cy, radius)
	if err := s.dc.Fill(); err != nil {
		s.logger.Warn("fill circle", "x", cx, "y", cy, "error", err)
	}
}

func (s *Surface) DrawImage(img image.Image, dst image.Rectangle, opacity float64) {
	if img == nil || dst.Empty() || opacity <= 0 {
		return
	}
	s.dc.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:             float64(dst.Min.X),
		Y:             float64(dst.Min.Y),
		DstWidth:      float64(dst.Dx()),
		DstHeight:     float64(dst.Dy()),
		Interpolation: gg.InterpBilinear,
		Opacity:       opacity,
		BlendMode:     gg.BlendNormal,
	})
}

// Image returns the current pixels.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// EncodePNG writes the current pixels as PNG.
func (s *Surface) EncodePNG(w io.Writer) error { return s.dc.EncodePNG(w) }

// Resize reallocates the backing pixmap when the host window changes size.
func (s *Surface) Resize(width, height int) error {
	if width == s.dc.Width() && height == s.dc.Height() {
		return nil
	}
	return s.dc.Resize(width, height)
}

// Close releases the drawing context.
func (s *Surface) Close() error { return s.dc.Close() }
