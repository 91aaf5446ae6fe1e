package capture

import (
	"image"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vova616/screenshot"
)

const previewStatsLogInterval = 5 * time.Second

// PreviewService produces the live frames shown behind the overlay. The
// desktop stands in for a camera: each frame is a screenshot of the source
// region, or of the whole screen when no region is set.
type PreviewService interface {
	Start()
	Stop()
	LatestFrame() FrameSnapshot
	Running() bool
	SetRegionProvider(func() *image.Rectangle)
	Stats() CaptureStats
}

// GrabFunc captures one frame of region; an empty region means full screen.
type GrabFunc func(region image.Rectangle) (*image.RGBA, error)

// ScreenGrab captures from the primary display.
func ScreenGrab(region image.Rectangle) (*image.RGBA, error) {
	if region.Empty() {
		return screenshot.CaptureScreen()
	}
	return screenshot.CaptureRect(region)
}

type previewService struct {
	running      atomic.Bool
	latest       atomic.Pointer[FrameSnapshot]
	mu           sync.Mutex
	regionFn     func() *image.Rectangle
	grab         GrabFunc
	interval     time.Duration
	logger       *slog.Logger
	captures     atomic.Uint64
	skipped      atomic.Uint64
	captureNanos atomic.Uint64
	sequence     atomic.Uint64
}

// NewPreviewService constructs a preview service. grab nil uses ScreenGrab;
// interval <= 0 uses 33ms.
func NewPreviewService(logger *slog.Logger, grab GrabFunc, interval time.Duration) PreviewService {
	if grab == nil {
		grab = ScreenGrab
	}
	if interval <= 0 {
		interval = 33 * time.Millisecond
	}
	return &previewService{grab: grab, interval: interval, logger: logger}
}

func (s *previewService) SetRegionProvider(fn func() *image.Rectangle) {
	s.mu.Lock()
	s.regionFn = fn
	s.mu.Unlock()
}

func (s *previewService) region() image.Rectangle {
	s.mu.Lock()
	fn := s.regionFn
	s.mu.Unlock()
	if fn == nil {
		return image.Rectangle{}
	}
	if r := fn(); r != nil {
		return *r
	}
	return image.Rectangle{}
}

func (s *previewService) LatestFrame() FrameSnapshot {
	snap := s.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

func (s *previewService) Running() bool { return s.running.Load() }

func (s *previewService) Stats() CaptureStats {
	captures := s.captures.Load()
	skipped := s.skipped.Load()
	total := s.captureNanos.Load()
	var avg time.Duration
	avgMicros := 0.0
	if captures > 0 && total > 0 {
		avg = time.Duration(total / captures)
		avgMicros = float64(avg) / float64(time.Microsecond)
	}
	snapshot := s.LatestFrame()
	age := time.Duration(0)
	if !snapshot.CapturedAt.IsZero() {
		age = time.Since(snapshot.CapturedAt)
	}
	return CaptureStats{
		Captures:         captures,
		Skipped:          skipped,
		AvgCapture:       avg,
		AvgCaptureMicros: avgMicros,
		LastCapture:      snapshot.CapturedAt,
		LatestFrameAge:   age,
		Sequence:         snapshot.Sequence,
	}
}

func (s *previewService) Start() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	go s.loop()
}

func (s *previewService) Stop() { s.running.Store(false) }

func (s *previewService) loop() {
	logTicker := time.NewTicker(previewStatsLogInterval)
	defer logTicker.Stop()
	for s.running.Load() {
		start := time.Now()
		img, err := s.grab(s.region())
		if err != nil || img == nil {
			if err != nil && s.logger != nil {
				s.logger.Error("preview grab", "error", err)
			}
			s.skipped.Add(1)
			time.Sleep(s.interval)
			continue
		}

		elapsed := time.Since(start)
		s.captureNanos.Add(uint64(elapsed.Nanoseconds()))
		s.captures.Add(1)
		seq := s.sequence.Add(1)
		s.latest.Store(&FrameSnapshot{Image: img, CapturedAt: time.Now(), Sequence: seq})

		select {
		case <-logTicker.C:
			s.logStats()
		default:
		}

		time.Sleep(s.interval)
	}
}

func (s *previewService) logStats() {
	if s.logger == nil {
		return
	}
	stats := s.Stats()
	s.logger.Debug("preview.stats",
		"captures", stats.Captures,
		"skipped", stats.Skipped,
		"avg_capture", stats.AvgCapture,
		"age", stats.LatestFrameAge,
	)
}
