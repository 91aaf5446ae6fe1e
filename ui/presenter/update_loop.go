package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It ticks the overlay presenter and invokes a scheduler callback that
// re-arms the next tick on the host thread. The zero value is usable
// (methods are nil-safe).
type Loop struct {
	Overlay  *OverlayPresenter
	Schedule func()
}

func NewLoop(overlay *OverlayPresenter, schedule func()) *Loop {
	return &Loop{Overlay: overlay, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	if l.Overlay != nil {
		l.Overlay.Tick(time.Now())
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
