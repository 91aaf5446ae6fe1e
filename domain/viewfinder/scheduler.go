package viewfinder

import (
	"image"
	"sync"
	"time"
)

// AnimationDelay is the pause between two animation passes.
const AnimationDelay = 80 * time.Millisecond

// afterFunc runs f once after d and returns a function cancelling it.
type afterFunc func(d time.Duration, f func()) (stop func() bool)

func timerAfter(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// FrameScheduler re-arms the animation: after each pass it asks the host to
// repaint only the frame region once the delay has elapsed. At most one
// request is pending; scheduling again replaces it. After Stop it is inert.
type FrameScheduler struct {
	delay  time.Duration
	target Invalidator
	after  afterFunc

	mu      sync.Mutex
	cancel  func() bool
	seq     uint64
	stopped bool
}

// NewFrameScheduler returns a scheduler posting to target. delay <= 0 uses
// AnimationDelay.
func NewFrameScheduler(target Invalidator, delay time.Duration) *FrameScheduler {
	if delay <= 0 {
		delay = AnimationDelay
	}
	return &FrameScheduler{delay: delay, target: target, after: timerAfter}
}

// Schedule requests a repaint of region after the animation delay.
func (s *FrameScheduler) Schedule(region image.Rectangle) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.target == nil {
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	seq := s.seq
	s.cancel = s.after(s.delay, func() { s.fire(seq, region) })
}

func (s *FrameScheduler) fire(seq uint64, region image.Rectangle) {
	s.mu.Lock()
	if s.stopped || seq != s.seq {
		s.mu.Unlock()
		return
	}
	s.cancel = nil
	target := s.target
	s.mu.Unlock()
	target.InvalidateRect(region)
}

// Pending reports whether a repaint request is waiting to fire.
func (s *FrameScheduler) Pending() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// Stop cancels any pending request. Further calls to Schedule are ignored.
func (s *FrameScheduler) Stop() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
