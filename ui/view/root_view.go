package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/viewfinder-go/config"
	"github.com/soocke/viewfinder-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Stats       OverlayStatsPanel
	ConfigPanel ConfigPanel
	Preview     OverlayPreview

	// Widgets
	StatusLabel *TLabelWidget
}

// Actions bundles the handlers bound to the root view buttons.
type Actions struct {
	ToggleCapture func()
	Redraw        func()
	ShowResult    func()
	SelectSource  func()
	ToggleTheme   func()
	Exit          func()
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	SetStatus(text string)
	SetConfigEditable(enabled bool)
	UpdateOverlay(img image.Image)
	PreviewReset()
	SetOverlayStats(passes uint64, last time.Duration)
}

var _ UI = (*RootView)(nil)

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. The preview is sized to the configured screen
// dimensions since the overlay surface is allocated at that size.
func (rv *RootView) Build(actions Actions) {
	if rv == nil {
		return
	}
	theme.InitStyles()

	// Row 0: stats, status label, buttons frame
	rv.Stats = NewOverlayStats(0, 0)
	rv.StatusLabel = TLabel(Txt("Status: idle"), Style(theme.StyleStatusLabel))
	Grid(rv.StatusLabel, Row(0), Column(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Rowspan(2), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	buttons := []struct {
		text   string
		style  string
		action func()
	}{
		{"Toggle Capture", theme.StylePrimaryButton, actions.ToggleCapture},
		{"Redraw", theme.StylePrimaryButton, actions.Redraw},
		{"Show Result", theme.StylePrimaryButton, actions.ShowResult},
		{"Preview Source", theme.StylePrimaryButton, actions.SelectSource},
		{"Dark Mode", theme.StylePrimaryButton, actions.ToggleTheme},
		{"Exit", theme.StyleDangerButton, actions.Exit},
	}
	row := 0
	for _, b := range buttons {
		if b.action == nil {
			continue
		}
		btn := TButton(Txt(b.text), Style(b.style), Command(b.action))
		Grid(btn, In(btnFrame), Row(row), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		row++
	}

	// Config panel rows
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger)
	endRow := rv.ConfigPanel.Build(1)

	w, h := 400, 300
	if rv.cfg != nil {
		w, h = rv.cfg.ScreenWidth, rv.cfg.ScreenHeight
	}
	rv.Preview = NewOverlayPreview(endRow, 5, w, h)
}

// SetStatus updates the status label text.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt("Status: " + text))
	}
}

// SetConfigEditable toggles config panel editability.
func (rv *RootView) SetConfigEditable(enabled bool) {
	if rv != nil && rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(enabled)
	}
}

// UpdateOverlay proxies to the overlay preview.
func (rv *RootView) UpdateOverlay(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdateOverlay(img)
	}
}

// PreviewReset clears the overlay preview.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
}

// SetOverlayStats updates the pass counters.
func (rv *RootView) SetOverlayStats(passes uint64, last time.Duration) {
	if rv != nil && rv.Stats != nil {
		rv.Stats.SetOverlayStats(passes, last)
	}
}
