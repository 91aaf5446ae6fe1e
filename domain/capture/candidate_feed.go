package capture

import (
	"image"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"github.com/soocke/viewfinder-go/domain/viewfinder"
)

// PointSink receives candidate points in preview coordinates relative to the
// framing region. The viewfinder implements it.
type PointSink interface {
	SubmitCandidatePoint(p viewfinder.Point)
}

// RegionFunc returns the framing rectangle in preview coordinates; ok=false
// while geometry is not ready.
type RegionFunc func() (image.Rectangle, bool)

// FeedOptions tunes the candidate search.
type FeedOptions struct {
	Interval  time.Duration // polling period, default 50ms
	CellSize  int           // analysis cell edge in pixels, default 16
	MaxPerRun int           // candidates emitted per frame, default 4
	MinEnergy float64       // mean gradient per pixel a cell needs, default 24
}

func (o *FeedOptions) normalize() {
	if o.Interval <= 0 {
		o.Interval = 50 * time.Millisecond
	}
	if o.CellSize <= 1 {
		o.CellSize = 16
	}
	if o.MaxPerRun <= 0 {
		o.MaxPerRun = 4
	}
	if o.MinEnergy <= 0 {
		o.MinEnergy = 24
	}
}

// CandidateFeed watches preview frames on its own goroutine and reports the
// high-contrast cells inside the framing region as candidate points. It only
// approximates where barcode features could be; it does not decode anything.
type CandidateFeed struct {
	source  FrameSource
	region  RegionFunc
	sink    PointSink
	opts    FeedOptions
	logger  *slog.Logger
	running atomic.Bool
	done    chan struct{}
	lastSeq uint64
	emitted atomic.Uint64
}

// NewCandidateFeed wires a feed from source to sink.
func NewCandidateFeed(source FrameSource, region RegionFunc, sink PointSink, opts FeedOptions, logger *slog.Logger) *CandidateFeed {
	opts.normalize()
	return &CandidateFeed{source: source, region: region, sink: sink, opts: opts, logger: logger}
}

// Start launches the polling goroutine. Idempotent.
func (f *CandidateFeed) Start() {
	if f == nil || !f.running.CompareAndSwap(false, true) {
		return
	}
	f.done = make(chan struct{})
	go f.loop(f.done)
}

// Stop ends the polling goroutine. Idempotent.
func (f *CandidateFeed) Stop() {
	if f == nil || !f.running.CompareAndSwap(true, false) {
		return
	}
	close(f.done)
}

// Running reports whether the feed goroutine is active.
func (f *CandidateFeed) Running() bool { return f != nil && f.running.Load() }

// Emitted returns the number of points submitted so far.
func (f *CandidateFeed) Emitted() uint64 { return f.emitted.Load() }

func (f *CandidateFeed) loop(done <-chan struct{}) {
	ticker := time.NewTicker(f.opts.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			f.poll()
		case <-done:
			return
		}
	}
}

func (f *CandidateFeed) poll() {
	if f.source == nil || f.sink == nil || f.region == nil || !f.source.Running() {
		return
	}
	snap := f.source.LatestFrame()
	if snap.Image == nil || snap.Sequence == f.lastSeq {
		return
	}
	f.lastSeq = snap.Sequence
	region, ok := f.region()
	if !ok {
		return
	}
	pts := FindCandidates(snap.Image, region, f.opts)
	for _, p := range pts {
		f.sink.SubmitCandidatePoint(p)
	}
	f.emitted.Add(uint64(len(pts)))
	if len(pts) > 0 && f.logger != nil {
		f.logger.Debug("candidates", "count", len(pts), "sequence", snap.Sequence)
	}
}

type scoredCell struct {
	center viewfinder.Point
	energy float64
}

// FindCandidates scans region of frame in square cells and returns the
// centres of the strongest cells, relative to region.Min, strongest first.
// A cell qualifies when its mean horizontal luminance gradient reaches
// opts.MinEnergy, which is what the bars of a 1D barcode produce.
func FindCandidates(frame *image.RGBA, region image.Rectangle, opts FeedOptions) []viewfinder.Point {
	opts.normalize()
	if frame == nil {
		return nil
	}
	region = region.Intersect(frame.Bounds())
	if region.Dx() < 2 || region.Dy() < 1 {
		return nil
	}
	cell := opts.CellSize
	var cells []scoredCell
	for y0 := region.Min.Y; y0 < region.Max.Y; y0 += cell {
		for x0 := region.Min.X; x0 < region.Max.X; x0 += cell {
			r := image.Rect(x0, y0, x0+cell, y0+cell).Intersect(region)
			e := gradientEnergy(frame, r)
			if e < opts.MinEnergy {
				continue
			}
			cells = append(cells, scoredCell{
				center: viewfinder.Point{
					X: float64(r.Min.X-region.Min.X) + float64(r.Dx())/2,
					Y: float64(r.Min.Y-region.Min.Y) + float64(r.Dy())/2,
				},
				energy: e,
			})
		}
	}
	sort.SliceStable(cells, func(i, j int) bool { return cells[i].energy > cells[j].energy })
	if len(cells) > opts.MaxPerRun {
		cells = cells[:opts.MaxPerRun]
	}
	out := make([]viewfinder.Point, len(cells))
	for i, c := range cells {
		out[i] = c.center
	}
	return out
}

// gradientEnergy returns the mean absolute horizontal luma difference in r.
func gradientEnergy(img *image.RGBA, r image.Rectangle) float64 {
	if r.Dx() < 2 {
		return 0
	}
	var sum, n int
	for y := r.Min.Y; y < r.Max.Y; y++ {
		prev := luma(img, r.Min.X, y)
		for x := r.Min.X + 1; x < r.Max.X; x++ {
			cur := luma(img, x, y)
			d := cur - prev
			if d < 0 {
				d = -d
			}
			sum += d
			n++
			prev = cur
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func luma(img *image.RGBA, x, y int) int {
	i := img.PixOffset(x, y)
	p := img.Pix[i : i+3 : i+3]
	return (299*int(p[0]) + 587*int(p[1]) + 114*int(p[2])) / 1000
}
