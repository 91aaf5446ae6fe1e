package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// OverlayStatsPanel shows render pass counters.
type OverlayStatsPanel interface {
	SetOverlayStats(passes uint64, last time.Duration)
}

type overlayStats struct {
	passesLbl *LabelWidget
	lastLbl   *LabelWidget
}

// NewOverlayStats creates the pass count and pass duration labels.
// The count label is placed at (row, startCol) and the duration at (row, startCol+1).
func NewOverlayStats(row, startCol int) OverlayStatsPanel {
	s := &overlayStats{passesLbl: Label(Width(16)), lastLbl: Label(Width(14))}
	Grid(s.passesLbl, Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
	Grid(s.lastLbl, Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	s.passesLbl.Configure(Txt("Passes: 0"))
	s.lastLbl.Configure(Txt("Pass: 0 ms"))
	return s
}

func (s *overlayStats) SetOverlayStats(passes uint64, last time.Duration) {
	if s == nil || s.passesLbl == nil {
		return
	}
	s.passesLbl.Configure(Txt(fmt.Sprintf("Passes: %d", passes)))
	s.lastLbl.Configure(Txt(fmt.Sprintf("Pass: %.1f ms", float64(last.Microseconds())/1000)))
}
