//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"bitcube/app"
	"bitcube/hal"
	"bitcube/internal/buildinfo"

	"fortio.org/log"
)

func main() {
	var (
		headless hal.HeadlessConfig
		term     hal.TerminalConfig
		window   hal.WindowConfig
	)
	headlessMode := flag.Bool("headless", false, "Run without a window.")
	terminal := flag.Bool("terminal", false, "Render in the terminal instead of a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&headless.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run forever).")
	hold := flag.String("hold", "", "Buttons held for the whole headless run, e.g. up,l.")
	flag.Float64Var(&term.FPS, "fps", 30, "Frame rate in terminal mode.")
	flag.IntVar(&window.Scale, "scale", 3, "Window scale factor.")
	hud := flag.Bool("hud", false, "Show frame and rotation overlay.")
	level := flag.String("loglevel", "info", "Log level: debug, verbose, info, warning, error, critical.")
	flag.Parse()

	lvl, err := log.ValidateLevel(*level)
	if err != nil {
		log.Critf("invalid -loglevel: %v", err)
		os.Exit(2)
	}
	log.SetLogLevel(lvl)

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Critf("%v", err)
		os.Exit(2)
	}
	if *hud {
		cfg.HUD = true
	}
	if headless.Hold, err = hal.ParseButtons(*hold); err != nil {
		log.Critf("invalid -hold: %v", err)
		os.Exit(2)
	}

	log.Infof("%s", buildinfo.String())
	newApp := func(h hal.HAL) func() error { return app.NewWithConfig(h, cfg) }

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *headlessMode:
		err = hal.RunHeadless(ctx, newApp, headless)
	case *terminal:
		err = hal.RunTerminal(ctx, newApp, term)
	default:
		err = hal.RunWindow(newApp, window)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Errf("%v", err)
		stop()
		os.Exit(1)
	}
}
