package presenter

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/viewfinder-go/domain/capture"
	"github.com/soocke/viewfinder-go/domain/viewfinder"
	"github.com/soocke/viewfinder-go/ui/images"
)

// FrameSource supplies the most recent preview frame.
type FrameSource interface {
	Running() bool
	LatestFrame() capture.FrameSnapshot
}

// OverlayRenderer runs one overlay render pass onto a canvas.
type OverlayRenderer interface {
	Draw(c viewfinder.Canvas)
}

// OverlaySurface is the pixmap an overlay pass is composed on.
type OverlaySurface interface {
	viewfinder.Canvas
	SetBackground(img image.Image)
	Begin()
	Image() image.Image
}

// PreviewSizer receives the dimensions of incoming preview frames.
type PreviewSizer interface {
	SetPreviewSize(size image.Point)
}

// DirtyQueue hands out accumulated repaint requests.
type DirtyQueue interface {
	TakeDirty() (region image.Rectangle, full, ok bool)
}

// OverlayView shows composed overlay frames.
type OverlayView interface {
	UpdateOverlay(img image.Image)
}

// StatsView displays pass counters.
type StatsView interface {
	SetOverlayStats(passes uint64, last time.Duration)
}

// OverlayStats summarises render passes for diagnostics.
type OverlayStats struct {
	Passes       uint64
	FullPasses   uint64
	LastDuration time.Duration
	LastRegion   image.Rectangle
	LastSequence uint64
}

// OverlayPresenter composes the preview frame and the viewfinder overlay on
// the host thread whenever a repaint was requested.
//
// Passes only happen in response to repaint requests so the scan indicator
// advances at the scheduler's cadence, not at the preview frame rate.
type OverlayPresenter struct {
	Enabled  func() bool
	Source   FrameSource
	Renderer OverlayRenderer
	Surface  OverlaySurface
	Dirty    DirtyQueue
	Geometry PreviewSizer
	View     OverlayView
	Stats    StatsView
	logger   *slog.Logger

	lastSeq       uint64
	lastSize      image.Point
	stats         OverlayStats
	lastLogTime   time.Time
	lastStatsTime time.Time
}

// NewOverlayPresenter constructs an overlay presenter.
func NewOverlayPresenter(enabled func() bool, source FrameSource, renderer OverlayRenderer, surface OverlaySurface, dirty DirtyQueue, geometry PreviewSizer, view OverlayView, logger *slog.Logger) *OverlayPresenter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &OverlayPresenter{
		Enabled:  enabled,
		Source:   source,
		Renderer: renderer,
		Surface:  surface,
		Dirty:    dirty,
		Geometry: geometry,
		View:     view,
		logger:   logger,
	}
}

// Tick performs a render pass if one was requested since the previous tick.
func (p *OverlayPresenter) Tick(now time.Time) {
	if p == nil || p.Renderer == nil || p.Surface == nil || p.Dirty == nil {
		return
	}
	region, full, ok := p.Dirty.TakeDirty()
	if !ok {
		return
	}
	p.refreshBackground()

	start := time.Now()
	p.Surface.Begin()
	p.Renderer.Draw(p.Surface)
	p.stats.LastDuration = time.Since(start)
	p.stats.Passes++
	if full {
		p.stats.FullPasses++
	}
	p.stats.LastRegion = region

	if p.View != nil {
		p.View.UpdateOverlay(p.Surface.Image())
	}
	if p.Stats != nil && now.Sub(p.lastStatsTime) >= time.Second {
		p.lastStatsTime = now
		p.Stats.SetOverlayStats(p.stats.Passes, p.stats.LastDuration)
	}
	if now.Sub(p.lastLogTime) >= 5*time.Second {
		p.lastLogTime = now
		p.logger.Debug("overlay passes", "passes", p.stats.Passes, "full", p.stats.FullPasses, "last_ms", p.stats.LastDuration.Milliseconds(), "region", region)
	}
}

// refreshBackground installs the newest preview frame, stretched to the
// surface, under the overlay and reports its size to the geometry provider.
// Disabled capture clears it.
func (p *OverlayPresenter) refreshBackground() {
	if p.Enabled == nil || !p.Enabled() || p.Source == nil || !p.Source.Running() {
		if p.lastSeq != 0 {
			p.Surface.SetBackground(nil)
			p.lastSeq = 0
		}
		return
	}
	snapshot := p.Source.LatestFrame()
	if snapshot.Image == nil || snapshot.Sequence == 0 || snapshot.Sequence == p.lastSeq {
		return
	}
	p.lastSeq = snapshot.Sequence
	p.stats.LastSequence = snapshot.Sequence
	w, h := p.Surface.Size()
	p.Surface.SetBackground(images.Stretch(snapshot.Image, image.Pt(w, h)))

	size := snapshot.Image.Bounds().Size()
	if size != p.lastSize && p.Geometry != nil {
		p.lastSize = size
		p.Geometry.SetPreviewSize(size)
	}
}

// Snapshot returns pass counters.
func (p *OverlayPresenter) Snapshot() OverlayStats {
	if p == nil {
		return OverlayStats{}
	}
	return p.stats
}
