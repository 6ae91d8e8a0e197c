//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"rayvga/app"
	"rayvga/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var appCfg app.Config
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run until Escape).")
	flag.StringVar(&cfg.Keys, "keys", "", "Scripted key presses for headless mode, one per frame (e.g. \"ww<left>3<esc>\").")
	flag.IntVar(&appCfg.Quality, "quality", 2, "Starting quality preset: 1 low, 2 medium, 3 high.")
	flag.BoolVar(&appCfg.HUD, "hud", false, "Show the status bar.")
	flag.BoolVar(&appCfg.Stats, "stats", true, "Log frame statistics every 60 frames.")
	flag.Parse()

	newApp := func(h hal.HAL) hal.App {
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
