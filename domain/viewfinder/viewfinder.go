package viewfinder

import (
	"image"
	"image/color"
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	// PointSize is the marker radius for points found since the last pass.
	PointSize = 6
	// currentPointOpacity applies to fresh markers and overlay images; stale
	// markers use half of it.
	currentPointOpacity = 0xA0
)

// Options holds the fixed drawing configuration of a Viewfinder.
type Options struct {
	Shade       color.NRGBA
	Laser       color.NRGBA
	ResultPoint color.NRGBA

	PointSize      float64
	MaxPoints      int
	CursorSpeed    int
	AnimationDelay time.Duration

	// Sprite selects the bouncing cursor when non-nil; otherwise the laser
	// line pulses.
	Sprite image.Image
	// FocusFrame, when set, is drawn over the framing rectangle every pass.
	FocusFrame image.Image
}

// DefaultOptions mirrors the stock overlay look.
func DefaultOptions() Options {
	return Options{
		Shade:          color.NRGBA{A: 0x60},
		Laser:          color.NRGBA{R: 0xcc, A: 0xff},
		ResultPoint:    color.NRGBA{R: 0xff, G: 0xbd, B: 0x21, A: 0xc0},
		PointSize:      PointSize,
		MaxPoints:      MaxPoints,
		CursorSpeed:    CursorSpeed,
		AnimationDelay: AnimationDelay,
	}
}

type providerRef struct{ p GeometryProvider }

type resultImage struct{ img image.Image }

// Viewfinder renders the scanning overlay: shade outside the framing
// rectangle, the scan indicator inside it and recent candidate points.
//
// Draw, and therefore all indicator state, belongs to the host's render
// goroutine. SubmitCandidatePoint, SetGeometryProvider, ShowResultImage and
// RequestRedraw may be called from any goroutine.
type Viewfinder struct {
	id          string
	logger      *slog.Logger
	opts        Options
	indicator   ScanIndicator
	points      *PointBuffer
	scheduler   *FrameScheduler
	invalidator Invalidator

	provider atomic.Pointer[providerRef]
	result   atomic.Pointer[resultImage]
	ready    bool
}

// New builds a viewfinder repainting through inv. The indicator variant is
// fixed here from opts.Sprite.
func New(logger *slog.Logger, inv Invalidator, opts Options) *Viewfinder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.PointSize <= 0 {
		opts.PointSize = PointSize
	}
	id := uuid.NewString()
	v := &Viewfinder{
		id:          id,
		logger:      logger.With("viewfinder", id),
		opts:        opts,
		indicator:   NewScanIndicator(opts.Sprite, opts.Laser, opts.CursorSpeed),
		points:      NewPointBuffer(opts.MaxPoints),
		scheduler:   NewFrameScheduler(inv, opts.AnimationDelay),
		invalidator: inv,
	}
	mode := "pulse"
	if _, ok := v.indicator.(*BounceSprite); ok {
		mode = "bounce"
	}
	v.logger.Debug("viewfinder created", "indicator", mode, "max_points", v.points.limit())
	return v
}

// ID identifies this instance in log output.
func (v *Viewfinder) ID() string { return v.id }

// Indicator exposes the scan indicator chosen at construction.
func (v *Viewfinder) Indicator() ScanIndicator { return v.indicator }

// Points exposes the candidate buffer.
func (v *Viewfinder) Points() *PointBuffer { return v.points }

// Scheduler exposes the animation scheduler.
func (v *Viewfinder) Scheduler() *FrameScheduler { return v.scheduler }

// SetGeometryProvider binds the source of framing rectangles.
func (v *Viewfinder) SetGeometryProvider(p GeometryProvider) {
	if v == nil {
		return
	}
	v.provider.Store(&providerRef{p: p})
	v.RequestRedraw()
}

// RequestRedraw asks the host for a full repaint outside the animation cadence.
func (v *Viewfinder) RequestRedraw() {
	if v == nil || v.invalidator == nil {
		return
	}
	v.invalidator.Invalidate()
}

// ShowResultImage draws img over the framing rectangle on the next pass in
// place of the scan indicator and candidate points.
func (v *Viewfinder) ShowResultImage(img image.Image) {
	if v == nil || img == nil {
		return
	}
	v.result.Store(&resultImage{img: img})
	v.RequestRedraw()
}

// SubmitCandidatePoint records a candidate feature in preview coordinates.
func (v *Viewfinder) SubmitCandidatePoint(p Point) {
	if v == nil {
		return
	}
	v.points.Append(p)
}

// Close stops the animation loop.
func (v *Viewfinder) Close() {
	if v == nil {
		return
	}
	v.scheduler.Stop()
}

// Draw runs one render pass on c. Nothing is drawn and nothing is scheduled
// until the geometry provider reports a framing rectangle. A panic inside the
// pass is logged and the next pass is still scheduled.
func (v *Viewfinder) Draw(c Canvas) {
	if v == nil || c == nil {
		return
	}
	var (
		frame image.Rectangle
		armed bool
	)
	defer func() {
		if r := recover(); r != nil {
			v.logger.Error("viewfinder pass", "error", r, "stack", string(debug.Stack()))
		}
		if armed {
			v.scheduler.Schedule(frame)
		}
	}()

	ref := v.provider.Load()
	if ref == nil || ref.p == nil {
		return
	}
	frame, ok := ref.p.FramingRect()
	if !ok {
		if v.ready {
			v.logger.Debug("framing rect not available")
			v.ready = false
		}
		return
	}
	if !v.ready {
		v.logger.Debug("framing rect available", "frame", frame)
		v.ready = true
	}
	armed = true
	v.render(c, ref.p, frame)
}

func (v *Viewfinder) render(c Canvas, p GeometryProvider, frame image.Rectangle) {
	PaintShade(c, frame, v.opts.Shade)
	if v.opts.FocusFrame != nil {
		c.DrawImage(v.opts.FocusFrame, frame, currentPointOpacity/255.0)
	}
	if res := v.result.Swap(nil); res != nil {
		c.DrawImage(res.img, frame, currentPointOpacity/255.0)
		return
	}
	v.indicator.RenderAndAdvance(c, frame)

	fresh, stale := v.points.Drain()
	if len(fresh) == 0 && len(stale) == 0 {
		return
	}
	preview := p.FramingRectInPreview()
	v.drawPoints(c, fresh, frame, preview, v.opts.PointSize, currentPointOpacity)
	v.drawPoints(c, stale, frame, preview, v.opts.PointSize/2, currentPointOpacity/2)
}

func (v *Viewfinder) drawPoints(c Canvas, pts []Point, frame, preview image.Rectangle, radius float64, alpha uint8) {
	col := withAlpha(v.opts.ResultPoint, alpha)
	for _, pt := range pts {
		at := MapPoint(pt, frame, preview)
		c.FillCircle(float64(at.X), float64(at.Y), radius, col)
	}
}
