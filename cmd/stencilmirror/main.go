// Package main is the entry point for the stencil mirror demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/stencil-mirror/internal/config"
	"github.com/Faultbox/stencil-mirror/internal/demo"
	"github.com/Faultbox/stencil-mirror/internal/engine/input"
	"github.com/Faultbox/stencil-mirror/internal/engine/window"
	"github.com/Faultbox/stencil-mirror/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, configPath, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Stencil Mirror ===", zap.String("config", configPath))
	logger.Sugar.Debugf("Config: %+v", cfg)

	if frames := config.HeadlessFrames(); frames > 0 {
		keys, err := input.ParseKeys(config.HeldKeys())
		if err != nil {
			logger.Error("invalid -hold keys", zap.Error(err))
			os.Exit(1)
		}
		sum, err := demo.RunHeadless(cfg, frames, keys)
		if err != nil {
			logger.Error("headless run failed", zap.Error(err))
			os.Exit(1)
		}
		fmt.Printf("frames=%d draws=%d reflected=%d eye=%v teapot=%v\n",
			sum.Frames, sum.Draws, sum.Last.Drawn, sum.Eye, sum.Teapot)
		return
	}

	d, err := demo.New(cfg, configPath)
	if err != nil {
		logger.Error("failed to start demo", zap.Error(err))
		window.ShowError(demo.Title, err.Error())
		logger.Sync()
		os.Exit(1)
	}

	runErr := d.Run()
	d.Close()
	if runErr != nil {
		logger.Error("demo error", zap.Error(runErr))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("demo closed normally")
}
