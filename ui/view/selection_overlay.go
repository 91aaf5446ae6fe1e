package view

import (
	"fmt"
	"image"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/soocke/viewfinder-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// SourceSelector manages the transparent window used to pick the desktop
// region that feeds the preview. ActiveRect is read from the capture goroutine.
type SourceSelector interface {
	OpenOrFocus()
	Clear()
	ActiveRect() *image.Rectangle
}

type sourceSelector struct {
	logger  *slog.Logger
	cfg     *config.Config
	cfgPath string
	region  atomic.Pointer[image.Rectangle]
	win     *ToplevelWidget
	onPick  func(image.Rectangle)
}

// NewSourceSelector restores the region persisted in cfg. onPick, if set, is
// called on the Tk thread after the region changes; a cleared region is
// reported as the empty rectangle.
func NewSourceSelector(cfg *config.Config, cfgPath string, logger *slog.Logger, onPick func(image.Rectangle)) SourceSelector {
	v := &sourceSelector{logger: logger, cfg: cfg, cfgPath: cfgPath, onPick: onPick}
	if cfg != nil {
		if r := cfg.SourceRegion(); r != nil {
			v.region.Store(r)
		}
	}
	return v
}

func (v *sourceSelector) OpenOrFocus() {
	if v.win != nil {
		WmGeometry(v.win.Window)
		return
	}
	win := App.Toplevel(Borderwidth(2), Background(selectorKeyColour))
	win.WmTitle("Preview Source")
	v.win = win
	WmGeometry(win.Window, initialGeometry(v.ActiveRect()))
	WmAttributes(win.Window, "-topmost", 1)
	WmAttributes(win.Window, "-toolwindow", true)
	WmAttributes(win.Window, "-transparentcolor", selectorKeyColour)
	GridRowConfigure(win.Window, 0, Weight(1))
	GridColumnConfigure(win.Window, 0, Weight(0))
	GridColumnConfigure(win.Window, 1, Weight(1))
	GridColumnConfigure(win.Window, 2, Weight(0))
	left := win.Frame(Width(4), Background("#FFFFFF"))
	Grid(left, Row(0), Column(0), Sticky("ns"))
	center := win.Frame(Background(selectorKeyColour))
	Grid(center, Row(0), Column(1), Sticky("nsew"))
	right := win.Frame(Width(4), Background("#FFFFFF"))
	Grid(right, Row(0), Column(2), Sticky("ns"))
	controls := win.Frame()
	Grid(controls, Row(1), Column(0), Columnspan(3), Sticky("we"))
	confirm := win.Button(Txt("Use Region [Enter]"), Command(v.confirm))
	Grid(confirm, In(controls), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	cancel := win.Button(Txt("Cancel [Esc]"), Command(v.destroy))
	Grid(cancel, In(controls), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	full := win.Button(Txt("Full Screen"), Command(func() { v.Clear(); v.destroy() }))
	Grid(full, In(controls), Row(0), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	Bind(win, "<Return>", Command(v.confirm))
	Bind(win, "<Escape>", Command(v.destroy))
}

const selectorKeyColour = "#008080"

// initialGeometry reopens on the active region, otherwise centres a window
// covering two thirds of a 1920x1080 desktop.
func initialGeometry(active *image.Rectangle) string {
	if active != nil {
		return fmt.Sprintf("%dx%d+%d+%d", active.Dx(), active.Dy(), active.Min.X, active.Min.Y)
	}
	const screenW, screenH = 1920, 1080
	w, h := screenW*2/3, screenH*5/9
	return fmt.Sprintf("%dx%d+%d+%d", w, h, (screenW-w)/2, (screenH-h)/2)
}

func (v *sourceSelector) Clear() {
	v.region.Store(nil)
	v.persist(image.Rectangle{})
}

func (v *sourceSelector) confirm() {
	if v.win == nil {
		return
	}
	if rect, ok := parseGeometry(WmGeometry(v.win.Window)); ok {
		v.region.Store(&rect)
		v.persist(rect)
	}
	v.destroy()
}

func (v *sourceSelector) persist(rect image.Rectangle) {
	if v.cfg != nil {
		v.cfg.SourceX, v.cfg.SourceY = rect.Min.X, rect.Min.Y
		v.cfg.SourceWidth, v.cfg.SourceHeight = rect.Dx(), rect.Dy()
		if err := v.cfg.Save(v.cfgPath); err != nil && v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	}
	if v.logger != nil {
		v.logger.Info("preview source changed", "region", rect)
	}
	if v.onPick != nil {
		v.onPick(rect)
	}
}

func (v *sourceSelector) destroy() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
	}
}

func (v *sourceSelector) ActiveRect() *image.Rectangle {
	r := v.region.Load()
	if r == nil {
		return nil
	}
	cp := *r
	return &cp
}

// geomRe matches window geometry strings in the format "WIDTHxHEIGHT+X+Y"
var geomRe = regexp.MustCompile(`^(\d+)x(\d+)\+(-?\d+)\+(-?\d+)$`)

// parseGeometry parses a Tk geometry string and returns the corresponding rectangle.
func parseGeometry(g string) (image.Rectangle, bool) {
	m := geomRe.FindStringSubmatch(strings.TrimSpace(g))
	if len(m) != 5 {
		return image.Rectangle{}, false
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, _ := strconv.Atoi(m[3])
	y, _ := strconv.Atoi(m[4])
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(x, y, x+w, y+h), true
}
