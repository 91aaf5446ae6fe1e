package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AnimationDelay() != 80*time.Millisecond || cfg.MaxPoints != 20 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestSaveLoad_RoundTripsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	cfg := DefaultConfig()
	cfg.CursorSpeed = 12
	cfg.LaserColor = "#00ff0080"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.CursorSpeed != 12 {
		t.Fatalf("cursor speed %d", got.CursorSpeed)
	}
	if want := (color.NRGBA{G: 0xff, A: 0x80}); got.Laser() != want {
		t.Fatalf("laser %v want %v", got.Laser(), want)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || cfg.MaxPoints != 20 {
		t.Fatalf("expected defaults alongside error, got %+v", cfg)
	}
}

func TestValidate_ClampsAndReportsColours(t *testing.T) {
	cfg := &Config{ShadeColor: "black", LaserColor: "#cc0000ff", ResultPointColor: "#ffbd21c0"}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected colour error")
	}
	if cfg.ShadeColor != DefaultConfig().ShadeColor {
		t.Fatalf("shade colour not reset: %q", cfg.ShadeColor)
	}
	if cfg.AnimationDelayMs != 80 || cfg.PointSize != 6 || cfg.CursorSpeed != 20 || cfg.PreviewWidth != 640 {
		t.Fatalf("numeric fields not clamped: %+v", cfg)
	}
}

func TestColours_DefaultsMatchStockOverlay(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Shade(); got != (color.NRGBA{A: 0x60}) {
		t.Fatalf("shade %v", got)
	}
	if got := cfg.ResultPoint(); got != (color.NRGBA{R: 0xff, G: 0xbd, B: 0x21, A: 0xc0}) {
		t.Fatalf("result point %v", got)
	}
}

func TestSourceRegion(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SourceRegion() != nil {
		t.Fatalf("default config should capture the full screen")
	}
	cfg.SourceX, cfg.SourceY, cfg.SourceWidth, cfg.SourceHeight = 10, 20, 300, 200
	r := cfg.SourceRegion()
	if r == nil || r.Min.X != 10 || r.Min.Y != 20 || r.Dx() != 300 || r.Dy() != 200 {
		t.Fatalf("source region = %v", r)
	}
	cfg.SourceWidth = -5
	_ = cfg.Validate()
	if cfg.SourceRegion() != nil {
		t.Fatalf("negative size should reset to full screen")
	}
}
