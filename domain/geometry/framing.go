package geometry

import (
	"image"
	"sync"
)

// Framing rectangle bounds in screen pixels.
const (
	MinFrameWidth  = 240
	MinFrameHeight = 240
	MaxFrameWidth  = 1200
	MaxFrameHeight = 675
)

// FramingCalculator derives the framing rectangle from the screen and camera
// preview resolutions. It is absent until both sizes are known. Safe for
// concurrent use.
type FramingCalculator struct {
	mu      sync.RWMutex
	screen  image.Point
	preview image.Point
	manual  image.Point
}

// NewFramingCalculator returns a calculator for the given sizes. Zero sizes
// leave the calculator not ready.
func NewFramingCalculator(screen, preview image.Point) *FramingCalculator {
	return &FramingCalculator{screen: screen, preview: preview}
}

// SetScreenSize updates the view resolution.
func (f *FramingCalculator) SetScreenSize(size image.Point) {
	f.mu.Lock()
	f.screen = size
	f.mu.Unlock()
}

// SetPreviewSize updates the camera preview resolution.
func (f *FramingCalculator) SetPreviewSize(size image.Point) {
	f.mu.Lock()
	f.preview = size
	f.mu.Unlock()
}

// SetManualFramingRect fixes the framing size instead of deriving it from the
// screen. Values are capped to the screen; zero restores automatic sizing.
func (f *FramingCalculator) SetManualFramingRect(width, height int) {
	f.mu.Lock()
	f.manual = image.Pt(width, height)
	f.mu.Unlock()
}

// FramingRect returns the centred framing rectangle in screen coordinates.
func (f *FramingCalculator) FramingRect() (image.Rectangle, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.framingLocked()
}

// FramingRectInPreview returns the framing rectangle scaled to preview
// coordinates. It is empty while FramingRect is absent.
func (f *FramingCalculator) FramingRectInPreview() image.Rectangle {
	f.mu.RLock()
	defer f.mu.RUnlock()
	frame, ok := f.framingLocked()
	if !ok {
		return image.Rectangle{}
	}
	return image.Rect(
		frame.Min.X*f.preview.X/f.screen.X,
		frame.Min.Y*f.preview.Y/f.screen.Y,
		frame.Max.X*f.preview.X/f.screen.X,
		frame.Max.Y*f.preview.Y/f.screen.Y,
	)
}

func (f *FramingCalculator) framingLocked() (image.Rectangle, bool) {
	if f.screen.X <= 0 || f.screen.Y <= 0 || f.preview.X <= 0 || f.preview.Y <= 0 {
		return image.Rectangle{}, false
	}
	var w, h int
	if f.manual.X > 0 && f.manual.Y > 0 {
		w, h = min(f.manual.X, f.screen.X), min(f.manual.Y, f.screen.Y)
	} else {
		w = desiredDimension(f.screen.X, MinFrameWidth, MaxFrameWidth)
		h = desiredDimension(f.screen.Y, MinFrameHeight, MaxFrameHeight)
	}
	left := (f.screen.X - w) / 2
	top := (f.screen.Y - h) / 2
	return image.Rect(left, top, left+w, top+h), true
}

// desiredDimension takes 5/8 of the resolution, clamped to [lo, hi] and never
// beyond the resolution itself.
func desiredDimension(resolution, lo, hi int) int {
	dim := 5 * resolution / 8
	if dim < lo {
		if lo > resolution {
			return resolution
		}
		return lo
	}
	if dim > hi {
		return hi
	}
	return dim
}
