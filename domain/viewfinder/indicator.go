package viewfinder

import (
	"image"
	"image/color"

	"github.com/disintegration/gift"
)

// CursorSpeed is the bounce sprite displacement per pass, in view pixels.
const CursorSpeed = 20

var scannerAlpha = [8]uint8{0, 64, 128, 192, 255, 192, 128, 64}

// ScanIndicator is the animated cue drawn inside the framing rectangle.
// RenderAndAdvance is called once per pass, from the render goroutine only.
type ScanIndicator interface {
	RenderAndAdvance(c Canvas, frame image.Rectangle)
}

// NewScanIndicator picks the indicator variant once: a bouncing sprite when
// sprite is non-nil, otherwise a pulsing laser line. speed <= 0 uses
// CursorSpeed.
func NewScanIndicator(sprite image.Image, laser color.NRGBA, speed int) ScanIndicator {
	if sprite == nil || sprite.Bounds().Empty() {
		return &PulseLine{laser: laser}
	}
	if speed <= 0 {
		speed = CursorSpeed
	}
	return &BounceSprite{sprite: sprite, height: sprite.Bounds().Dy(), speed: speed}
}

// PulseLine draws a horizontal laser band across the middle of the frame
// whose opacity cycles through scannerAlpha.
type PulseLine struct {
	laser color.NRGBA
	index int
}

func (l *PulseLine) RenderAndAdvance(c Canvas, frame image.Rectangle) {
	l.index = (l.index + 1) % len(scannerAlpha)
	middle := frame.Dy()/2 + frame.Min.Y
	band := image.Rect(frame.Min.X+2, middle-1, frame.Max.X-1, middle+2)
	c.FillRect(band, withAlpha(l.laser, scannerAlpha[l.index]))
}

// Alpha returns the opacity used by the most recent pass.
func (l *PulseLine) Alpha() uint8 { return scannerAlpha[l.index] }

// BounceSprite moves a sprite up and down inside the frame. Edges are detected
// on the sprite's vertical midpoint, which may sit exactly on frame.Min.Y or
// frame.Max.Y after a clamp but never beyond them.
type BounceSprite struct {
	sprite     image.Image
	height     int
	speed      int
	cursor     image.Rectangle
	placed     bool
	descending bool

	scaled     image.Image
	scaledSize image.Point
}

func (b *BounceSprite) RenderAndAdvance(c Canvas, frame image.Rectangle) {
	if !b.placed {
		middle := frame.Dy()/2 + frame.Min.Y
		b.cursor = image.Rect(frame.Min.X, middle-b.height/2, frame.Max.X, middle+b.height/2)
		b.placed = true
	}
	b.cursor.Min.X, b.cursor.Max.X = frame.Min.X, frame.Max.X

	half := b.cursor.Dy() / 2
	middle := b.cursor.Min.Y + half
	c.DrawImage(b.spriteFor(b.cursor.Size()), b.cursor, 1)

	if b.descending {
		b.cursor = b.cursor.Add(image.Pt(0, b.speed))
		middle += b.speed
		if frame.Max.Y < middle {
			b.descending = false
			b.cursor.Min.Y, b.cursor.Max.Y = frame.Max.Y-half, frame.Max.Y+half
		}
		return
	}
	b.cursor = b.cursor.Sub(image.Pt(0, b.speed))
	middle -= b.speed
	if frame.Min.Y > middle {
		b.descending = true
		b.cursor.Min.Y, b.cursor.Max.Y = frame.Min.Y-half, frame.Min.Y+half
	}
}

// Cursor returns the rectangle the sprite will be drawn into on the next pass.
func (b *BounceSprite) Cursor() image.Rectangle { return b.cursor }

// Descending reports the current travel direction.
func (b *BounceSprite) Descending() bool { return b.descending }

// spriteFor returns the sprite resampled to size, reusing the last result
// while the cursor keeps its dimensions.
func (b *BounceSprite) spriteFor(size image.Point) image.Image {
	if size.X <= 0 || size.Y <= 0 {
		return b.sprite
	}
	if b.scaled != nil && b.scaledSize == size {
		return b.scaled
	}
	if b.sprite.Bounds().Size() == size {
		b.scaled, b.scaledSize = b.sprite, size
		return b.scaled
	}
	g := gift.New(gift.Resize(size.X, size.Y, gift.LinearResampling))
	dst := image.NewNRGBA(g.Bounds(b.sprite.Bounds()))
	g.Draw(dst, b.sprite)
	b.scaled, b.scaledSize = dst, size
	return dst
}
