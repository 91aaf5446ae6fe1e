package model

import (
	"image"
	"sync"
	"sync/atomic"
)

// OverlayModel tracks whether the preview feed is enabled and collects repaint
// requests until the UI tick consumes them. The zero value is usable.
//
// Repaint requests arrive from timer goroutines and producer callbacks while
// the UI thread drains them, so the dirty state is mutex guarded.
type OverlayModel struct {
	enabled atomic.Bool

	mu      sync.Mutex
	pending bool
	full    bool
	dirty   image.Rectangle
	total   uint64
}

// Enabled reports whether the preview feed is enabled.
func (m *OverlayModel) Enabled() bool {
	if m == nil {
		return false
	}
	return m.enabled.Load()
}

// SetEnabled stores the enabled flag.
func (m *OverlayModel) SetEnabled(b bool) {
	if m == nil {
		return
	}
	m.enabled.Store(b)
}

// Invalidate marks the whole surface dirty.
func (m *OverlayModel) Invalidate() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.pending, m.full = true, true
	m.total++
	m.mu.Unlock()
}

// InvalidateRect marks region dirty, merging with earlier requests.
func (m *OverlayModel) InvalidateRect(region image.Rectangle) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.pending = true
	m.dirty = m.dirty.Union(region)
	m.total++
	m.mu.Unlock()
}

// TakeDirty returns and clears the accumulated repaint request. ok is false
// when nothing asked for a repaint since the last call.
func (m *OverlayModel) TakeDirty() (region image.Rectangle, full, ok bool) {
	if m == nil {
		return image.Rectangle{}, false, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.pending {
		return image.Rectangle{}, false, false
	}
	region, full = m.dirty, m.full
	m.pending, m.full, m.dirty = false, false, image.Rectangle{}
	return region, full, true
}

// Requests returns how many repaint requests were received in total.
func (m *OverlayModel) Requests() uint64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total
}
