package viewfinder

import (
	"image"
	"sync"
	"testing"
	"time"
)

type recordingInvalidator struct {
	mu      sync.Mutex
	full    int
	regions []image.Rectangle
}

func (r *recordingInvalidator) Invalidate() {
	r.mu.Lock()
	r.full++
	r.mu.Unlock()
}

func (r *recordingInvalidator) InvalidateRect(region image.Rectangle) {
	r.mu.Lock()
	r.regions = append(r.regions, region)
	r.mu.Unlock()
}

func (r *recordingInvalidator) counts() (int, []image.Rectangle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.full, append([]image.Rectangle(nil), r.regions...)
}

// manualTimers replaces time.AfterFunc so tests decide when timers fire.
type manualTimers struct {
	mu      sync.Mutex
	delays  []time.Duration
	pending []*manualTimer
}

type manualTimer struct {
	f       func()
	stopped bool
}

func (m *manualTimers) after(d time.Duration, f func()) func() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{f: f}
	m.delays = append(m.delays, d)
	m.pending = append(m.pending, t)
	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		was := !t.stopped
		t.stopped = true
		return was
	}
}

// fireAll runs every timer that has not been stopped.
func (m *manualTimers) fireAll() {
	m.mu.Lock()
	timers := m.pending
	m.pending = nil
	m.mu.Unlock()
	for _, t := range timers {
		if !t.stopped {
			t.f()
		}
	}
}

func TestFrameScheduler_FiresRegionAfterDelay(t *testing.T) {
	inv := &recordingInvalidator{}
	timers := &manualTimers{}
	s := NewFrameScheduler(inv, 0)
	s.after = timers.after

	region := image.Rect(10, 20, 110, 220)
	s.Schedule(region)
	if !s.Pending() {
		t.Fatalf("expected pending request")
	}
	if timers.delays[0] != AnimationDelay {
		t.Fatalf("delay %v, want %v", timers.delays[0], AnimationDelay)
	}
	timers.fireAll()
	full, regions := inv.counts()
	if full != 0 || len(regions) != 1 || regions[0] != region {
		t.Fatalf("unexpected invalidations full=%d regions=%v", full, regions)
	}
	if s.Pending() {
		t.Fatalf("request should be consumed after firing")
	}
}

func TestFrameScheduler_ReplacesPendingRequest(t *testing.T) {
	inv := &recordingInvalidator{}
	timers := &manualTimers{}
	s := NewFrameScheduler(inv, 5*time.Millisecond)
	s.after = timers.after

	s.Schedule(image.Rect(0, 0, 1, 1))
	s.Schedule(image.Rect(0, 0, 2, 2))
	timers.fireAll()
	_, regions := inv.counts()
	if len(regions) != 1 || regions[0] != image.Rect(0, 0, 2, 2) {
		t.Fatalf("expected only the latest request, got %v", regions)
	}
}

func TestFrameScheduler_StopCancels(t *testing.T) {
	inv := &recordingInvalidator{}
	timers := &manualTimers{}
	s := NewFrameScheduler(inv, 0)
	s.after = timers.after

	s.Schedule(image.Rect(0, 0, 5, 5))
	s.Stop()
	s.Schedule(image.Rect(0, 0, 6, 6))
	timers.fireAll()
	if _, regions := inv.counts(); len(regions) != 0 {
		t.Fatalf("stopped scheduler still invalidated: %v", regions)
	}
	if s.Pending() {
		t.Fatalf("stopped scheduler reports pending work")
	}
}

func TestFrameScheduler_RealTimer(t *testing.T) {
	inv := &recordingInvalidator{}
	s := NewFrameScheduler(inv, 10*time.Millisecond)
	s.Schedule(image.Rect(0, 0, 3, 3))
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if _, regions := inv.counts(); len(regions) == 1 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timer never fired")
}
