package viewfinder

import "sync"

// MaxPoints caps the number of candidate points held between two passes.
const MaxPoints = 20

// PointBuffer holds candidate points pushed by the detection goroutine and
// consumed by the render pass. The zero value is usable.
//
// current receives appends; previous is the set drained on the last pass.
// All access goes through mu, so a trim is never observed half-done.
type PointBuffer struct {
	mu        sync.Mutex
	max       int
	current   []Point
	previous  []Point
	saturated bool // current overflowed since the last drain
}

// NewPointBuffer returns a buffer capped at max points. Values below 2 fall
// back to MaxPoints.
func NewPointBuffer(max int) *PointBuffer {
	if max < 2 {
		max = MaxPoints
	}
	return &PointBuffer{max: max}
}

func (b *PointBuffer) limit() int {
	if b.max < 2 {
		return MaxPoints
	}
	return b.max
}

// Append adds p to the current set. Safe for concurrent use with Drain.
//
// When the set grows past the cap the oldest entries are dropped so that only
// the newest half window is kept. Until the next drain the set then stays
// saturated and holds at most half the cap plus the latest point.
func (b *PointBuffer) Append(p Point) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = append(b.current, p)
	limit := b.limit()
	half := limit / 2
	n := len(b.current)
	switch {
	case n > limit:
		b.current = trimOldest(b.current, n-half)
		b.saturated = true
	case b.saturated && n > half+1:
		b.current = trimOldest(b.current, n-(half+1))
	}
}

// trimOldest drops the first k entries into a fresh backing array so the
// slice previously handed to the renderer is never written again.
func trimOldest(pts []Point, k int) []Point {
	kept := make([]Point, len(pts)-k, cap(pts))
	copy(kept, pts[k:])
	return kept
}

// Drain swaps the buffers for one render pass. stale is the set drained on
// the previous pass; fresh is the set collected since then (nil when nothing
// arrived). After Drain the current set is always empty.
func (b *PointBuffer) Drain() (fresh, stale []Point) {
	if b == nil {
		return nil, nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	stale = b.previous
	if len(b.current) == 0 {
		b.previous = nil
		return nil, stale
	}
	fresh = b.current
	b.previous = fresh
	b.current = nil
	b.saturated = false
	return fresh, stale
}

// Len reports the size of the current set.
func (b *PointBuffer) Len() int {
	if b == nil {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.current)
}

// Previous returns a copy of the set drained on the last pass.
func (b *PointBuffer) Previous() []Point {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Point(nil), b.previous...)
}
