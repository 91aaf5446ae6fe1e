package main

import (
	"flag"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/soocke/viewfinder-go/app"
	"github.com/soocke/viewfinder-go/config"
)

func main() {
	cfgPath := flag.String("config", "viewfinder.json", "path to the JSON config file")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime loggers")
	flag.Parse()

	cfg, cfgErr := config.Load(*cfgPath)
	if *debugFlag {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	gg.SetLogger(logger)
	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", cfgErr)
	}

	application := app.NewApp("Viewfinder", cfg, *cfgPath, logger)
	application.Start()
}
