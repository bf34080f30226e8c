//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"

	"kiosk/app"
	"kiosk/hal"
	"kiosk/internal/iconwatch"
)

func main() {
	var cfg hal.HeadlessConfig
	var win hal.WindowConfig
	var acfg app.Config
	var screen, snapshot, icons string
	var headless bool
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&screen, "screen", "inventory", "Start screen: inventory or sensors.")
	flag.IntVar(&acfg.Scale, "scale", 1, "Layout scale factor.")
	flag.DurationVar(&acfg.Period, "period", 0, "Simulated update period (default 500ms).")
	flag.IntVar(&acfg.SwitchEvery, "switch", 0, "Alternate screens every N updates (0 = never).")
	flag.BoolVar(&acfg.NoConsole, "no-console", false, "Hide the diagnostics strip.")
	flag.IntVar(&win.Zoom, "zoom", 2, "Window zoom factor.")
	flag.StringVar(&icons, "icons", "", "Directory of .bmp files overriding the built-in icons.")
	flag.StringVar(&snapshot, "snapshot", "", "Write the final headless frame to this PNG file.")
	flag.Parse()

	sc, err := app.ParseScreen(screen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	acfg.Screen = sc
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if icons != "" {
		cfg.Assets = os.DirFS(icons)
		w, err := iconwatch.New(icons, nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer w.Close()
		go func() { _ = w.Run(ctx) }()
		acfg.Reload = w.Reload()
	}
	if acfg.Scale < 1 {
		acfg.Scale = 1
	}
	cfg.Width, cfg.Height = hal.DefaultWidth*acfg.Scale, hal.DefaultHeight*acfg.Scale
	win.HostConfig = cfg.HostConfig

	var fb hal.Framebuffer
	newApp := func(h hal.HAL) (func() error, error) {
		fb = h.Display().Framebuffer()
		return app.New(h, acfg)
	}

	if headless {
		err := hal.RunHeadless(ctx, newApp, cfg)
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if snapshot != "" {
			if err := writeSnapshot(snapshot, fb); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
		return
	}

	if err := hal.RunWindow(newApp, win); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeSnapshot(path string, fb hal.Framebuffer) error {
	mem, ok := fb.(*hal.MemFramebuffer)
	if !ok {
		return fmt.Errorf("snapshot: framebuffer %T cannot be read back", fb)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, mem.Snapshot()); err != nil {
		_ = f.Close()
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return f.Close()
}
