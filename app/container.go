package app

import (
	"image"
	"log/slog"

	"github.com/soocke/viewfinder-go/assets"
	"github.com/soocke/viewfinder-go/config"
	"github.com/soocke/viewfinder-go/domain/capture"
	"github.com/soocke/viewfinder-go/domain/geometry"
	"github.com/soocke/viewfinder-go/domain/viewfinder"
	"github.com/soocke/viewfinder-go/ui/canvas"
	"github.com/soocke/viewfinder-go/ui/model"
	"github.com/soocke/viewfinder-go/ui/presenter"
	"github.com/soocke/viewfinder-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger

	Overlay    *model.OverlayModel
	Geometry   *geometry.FramingCalculator
	Viewfinder *viewfinder.Viewfinder
	Surface    *canvas.Surface
	Preview    capture.PreviewService
	Feed       *capture.CandidateFeed
	Source     view.SourceSelector
	RootView   *view.RootView
	UI         view.UI

	// Presenters
	OverlayPresenter *presenter.OverlayPresenter
	CapturePresenter *presenter.CapturePresenter
	Loop             *presenter.Loop
}

// BuildContainer constructs all components. Side-effects limited to asset
// loading; no widgets are created until the root view is built.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) *AppContainer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger}
	c.Overlay = &model.OverlayModel{}
	c.Geometry = geometry.NewFramingCalculator(
		image.Pt(cfg.ScreenWidth, cfg.ScreenHeight),
		image.Pt(cfg.PreviewWidth, cfg.PreviewHeight),
	)

	c.Viewfinder = viewfinder.New(logger, c.Overlay, overlayOptions(cfg, logger))
	c.Viewfinder.SetGeometryProvider(c.Geometry)
	c.Surface = canvas.NewSurface(cfg.ScreenWidth, cfg.ScreenHeight, logger)

	c.Source = view.NewSourceSelector(cfg, cfgPath, logger, func(image.Rectangle) {
		c.Viewfinder.RequestRedraw()
	})
	c.Preview = capture.NewPreviewService(logger, nil, 0)
	c.Preview.SetRegionProvider(c.Source.ActiveRect)
	c.Feed = capture.NewCandidateFeed(c.Preview, c.framingInPreview, c.Viewfinder, capture.FeedOptions{}, logger)

	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView
	c.OverlayPresenter = presenter.NewOverlayPresenter(c.Overlay.Enabled, c.Preview, c.Viewfinder, c.Surface, c.Overlay, c.Geometry, c.UI, logger)
	c.OverlayPresenter.Stats = c.UI
	c.CapturePresenter = presenter.NewCapturePresenter(c.Overlay, c.Preview, c.Feed, c.UI)
	return c
}

// overlayOptions maps config onto viewfinder options. Without a usable
// cursor sprite the overlay falls back to the pulsing laser line.
func overlayOptions(cfg *config.Config, logger *slog.Logger) viewfinder.Options {
	opts := viewfinder.DefaultOptions()
	opts.Shade = cfg.Shade()
	opts.Laser = cfg.Laser()
	opts.ResultPoint = cfg.ResultPoint()
	opts.PointSize = cfg.PointSize
	opts.MaxPoints = cfg.MaxPoints
	opts.CursorSpeed = cfg.CursorSpeed
	opts.AnimationDelay = cfg.AnimationDelay()
	if !cfg.UseCursorSprite {
		return opts
	}
	if sprite, err := assets.LoadImage(cfg.CursorSprite, assets.CursorImage); err != nil {
		logger.Warn("cursor sprite unavailable, using laser line", "path", cfg.CursorSprite, "error", err)
	} else {
		opts.Sprite = sprite
	}
	if frame, err := assets.LoadImage(cfg.FocusFrame, assets.FocusFrameImage); err != nil {
		logger.Warn("focus frame unavailable", "path", cfg.FocusFrame, "error", err)
	} else {
		opts.FocusFrame = frame
	}
	return opts
}

// framingInPreview is the candidate feed region: the framing rectangle in
// preview coordinates, absent until the geometry is known.
func (c *AppContainer) framingInPreview() (image.Rectangle, bool) {
	if _, ok := c.Geometry.FramingRect(); !ok {
		return image.Rectangle{}, false
	}
	return c.Geometry.FramingRectInPreview(), true
}

// ResultFromPreview crops the latest preview frame to the framing rectangle.
// It returns nil when no frame has been captured yet.
func (c *AppContainer) ResultFromPreview() image.Image {
	frame := c.Preview.LatestFrame().Image
	if frame == nil {
		return nil
	}
	region, ok := c.framingInPreview()
	if !ok {
		return nil
	}
	region = region.Add(frame.Bounds().Min).Intersect(frame.Bounds())
	if region.Empty() {
		return nil
	}
	crop := image.NewRGBA(image.Rect(0, 0, region.Dx(), region.Dy()))
	for y := 0; y < region.Dy(); y++ {
		src := frame.PixOffset(region.Min.X, region.Min.Y+y)
		copy(crop.Pix[y*crop.Stride:y*crop.Stride+region.Dx()*4], frame.Pix[src:src+region.Dx()*4])
	}
	return crop
}

// Close stops background work and releases the surface.
func (c *AppContainer) Close() {
	if c == nil {
		return
	}
	c.CapturePresenter.Disable()
	c.Viewfinder.Close()
	if err := c.Surface.Close(); err != nil {
		c.Logger.Warn("surface close", "error", err)
	}
}
