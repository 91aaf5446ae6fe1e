package app

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/viewfinder-go/config"
	dbg "github.com/soocke/viewfinder-go/debug"
	"github.com/soocke/viewfinder-go/ui/presenter"
	"github.com/soocke/viewfinder-go/ui/theme"
	"github.com/soocke/viewfinder-go/ui/view"
)

// tick is the host loop period. Repaints still follow the viewfinder's
// animation delay; the loop only polls for pending requests.
const tick = 20 * time.Millisecond

type app struct {
	container *AppContainer
	logger    *slog.Logger
	afterID   string
	closed    bool
}

func NewApp(title string, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	a := &app{logger: logger}
	a.container = BuildContainer(cfg, cfgPath, logger)
	a.logger = a.container.Logger

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	w, h := a.container.Config.ScreenWidth, a.container.Config.ScreenHeight
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", w+220, h+280))
	return a
}

func (a *app) Start() {
	c := a.container
	c.RootView.Build(view.Actions{
		ToggleCapture: c.CapturePresenter.Toggle,
		Redraw:        c.Viewfinder.RequestRedraw,
		ShowResult:    a.showResult,
		SelectSource:  c.Source.OpenOrFocus,
		ToggleTheme:   func() { theme.ToggleDark() },
		Exit:          a.exitHandler,
	})
	c.Loop = presenter.NewLoop(c.OverlayPresenter, a.scheduleUpdate)

	if c.Config.Debug {
		dbg.StartGoroutineLogger(10*time.Second, a.logger)
		dbg.StartMemLogger(10*time.Second, a.logger)
	}
	a.logger.Info("viewfinder ready", "id", c.Viewfinder.ID(), "indicator", fmt.Sprintf("%T", c.Viewfinder.Indicator()))

	// Kick off the first pass; the viewfinder re-arms itself from then on.
	c.Viewfinder.RequestRedraw()
	a.scheduleUpdate()

	App.Wait()
}

func (a *app) update() {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("update loop panic", "panic", r, "stack", string(debug.Stack()))
			a.scheduleUpdate()
		}
	}()
	a.container.Loop.Tick()
}

func (a *app) scheduleUpdate() {
	if a.closed {
		return
	}
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.update() })
}

// showResult freezes the framed part of the current preview into the overlay
// until the next pass.
func (a *app) showResult() {
	img := a.container.ResultFromPreview()
	if img == nil {
		a.logger.Info("no preview frame to show")
		return
	}
	a.container.Viewfinder.ShowResultImage(img)
}

func (a *app) exitHandler() {
	if a.closed {
		return
	}
	a.closed = true
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	a.container.Close()
	Destroy(App)
}
