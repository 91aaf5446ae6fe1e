package theme

// Palette and ttk styles for the viewfinder preview window. The overlay
// itself is painted on the gg surface; these colours only affect the
// surrounding widgets.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	ColorBg      = "#f7f9fb"
	ColorDarkBg  = "#0f172a"
	ColorPrimary = "#2563eb"
	ColorDanger  = "#dc2626"
	ColorLaser   = "#cc0000" // matches the default laser colour
	ColorText    = "#1e293b"
)

// Style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleStatusLabel   = "status.TLabel"
)

var darkMode bool

// InitStyles applies styles for the current mode.
func InitStyles() { applyStyles(darkMode) }

// ToggleDark flips dark mode and reapplies styles. Returns the new mode.
func ToggleDark() bool {
	darkMode = !darkMode
	applyStyles(darkMode)
	return darkMode
}

// IsDark reports current mode.
func IsDark() bool { return darkMode }

func applyStyles(dark bool) {
	_ = ActivateTheme("azure light")
	bg := ColorBg
	if dark {
		bg = ColorDarkBg
	}
	App.Configure(Background(bg))

	StyleConfigure(StylePrimaryButton,
		Background(ColorPrimary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleDangerButton,
		Background(ColorDanger),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	status := ColorText
	if dark {
		status = "#f1f5f9"
	}
	StyleConfigure(StyleStatusLabel,
		Foreground(status),
		Background(ColorLaser),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
}
