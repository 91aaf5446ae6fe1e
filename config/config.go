package config

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/gogpu/gg"
)

// Config holds runtime configuration for the overlay and its demo host.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Animation
	AnimationDelayMs int     `json:"animation_delay_ms"`
	MaxPoints        int     `json:"max_points"`
	PointSize        float64 `json:"point_size"`
	CursorSpeed      int     `json:"cursor_speed"`

	// Colours as #RRGGBBAA
	ShadeColor       string `json:"shade_color"`
	LaserColor       string `json:"laser_color"`
	ResultPointColor string `json:"result_point_color"`

	// Assets. Empty paths use the embedded images; UseCursorSprite=false
	// forces the pulsing laser line.
	UseCursorSprite bool   `json:"use_cursor_sprite"`
	CursorSprite    string `json:"cursor_sprite"`
	FocusFrame      string `json:"focus_frame"`

	// Geometry
	ScreenWidth   int `json:"screen_width"`
	ScreenHeight  int `json:"screen_height"`
	PreviewWidth  int `json:"preview_width"`
	PreviewHeight int `json:"preview_height"`

	// Preview source region on the desktop. Zero width or height captures
	// the whole screen.
	SourceX      int `json:"source_x"`
	SourceY      int `json:"source_y"`
	SourceWidth  int `json:"source_width"`
	SourceHeight int `json:"source_height"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:            false,
		AnimationDelayMs: 80,
		MaxPoints:        20,
		PointSize:        6,
		CursorSpeed:      20,
		ShadeColor:       "#00000060",
		LaserColor:       "#cc0000ff",
		ResultPointColor: "#ffbd21c0",
		UseCursorSprite:  true,
		CursorSprite:     "",
		FocusFrame:       "",
		ScreenWidth:      800,
		ScreenHeight:     600,
		PreviewWidth:     640,
		PreviewHeight:    480,
	}
}

// Validate clamps/normalizes values to safe ranges. Malformed colours are
// reported and replaced by their defaults.
func (c *Config) Validate() error {
	def := DefaultConfig()
	if c.AnimationDelayMs <= 0 {
		c.AnimationDelayMs = def.AnimationDelayMs
	}
	if c.MaxPoints < 2 {
		c.MaxPoints = def.MaxPoints
	}
	if c.PointSize <= 0 {
		c.PointSize = def.PointSize
	}
	if c.CursorSpeed <= 0 {
		c.CursorSpeed = def.CursorSpeed
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		c.ScreenWidth, c.ScreenHeight = def.ScreenWidth, def.ScreenHeight
	}
	if c.PreviewWidth <= 0 || c.PreviewHeight <= 0 {
		c.PreviewWidth, c.PreviewHeight = def.PreviewWidth, def.PreviewHeight
	}
	if c.SourceWidth < 0 || c.SourceHeight < 0 {
		c.SourceWidth, c.SourceHeight = 0, 0
	}
	var bad []string
	for _, f := range []struct {
		name string
		val  *string
		def  string
	}{
		{"shade_color", &c.ShadeColor, def.ShadeColor},
		{"laser_color", &c.LaserColor, def.LaserColor},
		{"result_point_color", &c.ResultPointColor, def.ResultPointColor},
	} {
		if !validHex(*f.val) {
			bad = append(bad, f.name)
			*f.val = f.def
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("invalid colour in %s", strings.Join(bad, ", "))
	}
	return nil
}

// AnimationDelay returns the delay between animation passes.
func (c *Config) AnimationDelay() time.Duration {
	return time.Duration(c.AnimationDelayMs) * time.Millisecond
}

// SourceRegion returns the configured preview source rectangle, or nil when
// the whole screen is captured.
func (c *Config) SourceRegion() *image.Rectangle {
	if c.SourceWidth <= 0 || c.SourceHeight <= 0 {
		return nil
	}
	r := image.Rect(c.SourceX, c.SourceY, c.SourceX+c.SourceWidth, c.SourceY+c.SourceHeight)
	return &r
}

// Shade, Laser and ResultPoint return the parsed colours.
func (c *Config) Shade() color.NRGBA       { return parseColor(c.ShadeColor) }
func (c *Config) Laser() color.NRGBA       { return parseColor(c.LaserColor) }
func (c *Config) ResultPoint() color.NRGBA { return parseColor(c.ResultPointColor) }

func parseColor(s string) color.NRGBA {
	return color.NRGBAModel.Convert(gg.Hex(s).Color()).(color.NRGBA)
}

func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
