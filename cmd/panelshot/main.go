//go:build !tinygo

// Command panelshot renders one kiosk screen headlessly and writes it as PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"

	"kiosk/app"
	"kiosk/hal"
)

const defaultOut = "panels.png"

type options struct {
	screen  string
	scale   int
	updates int
	console bool
	outPath string
}

func main() {
	var o options
	flag.StringVar(&o.screen, "screen", "inventory", "Screen to render: inventory or sensors.")
	flag.IntVar(&o.scale, "scale", 1, "Layout scale factor.")
	flag.IntVar(&o.updates, "updates", 0, "Simulated updates to apply before the shot.")
	flag.BoolVar(&o.console, "console", false, "Include the diagnostics strip.")
	flag.StringVar(&o.outPath, "out", defaultOut, "Output PNG path (- for stdout).")
	flag.Parse()

	if o.outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}

	var w io.Writer = os.Stdout
	var f *os.File
	if o.outPath != "-" {
		var err error
		f, err = os.Create(o.outPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		w = f
	}
	err := run(o, w)
	if f != nil {
		err = errors.Join(err, f.Close())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(o options, w io.Writer) error {
	sc, err := app.ParseScreen(o.screen)
	if err != nil {
		return err
	}
	if o.scale < 1 {
		return fmt.Errorf("scale %d: must be at least 1", o.scale)
	}
	if o.updates < 0 {
		return fmt.Errorf("updates %d: must not be negative", o.updates)
	}

	width, height := 320*o.scale, 240*o.scale
	if o.console {
		height = hal.DefaultHeight * o.scale
	}
	h := hal.NewSized(width, height)
	a, err := app.NewApp(h, app.Config{Screen: sc, Scale: o.scale, NoConsole: !o.console})
	if err != nil {
		return err
	}
	for i := 0; i < o.updates; i++ {
		a.Advance(1 << 20)
		if err := a.Step(); err != nil {
			return err
		}
	}

	fb, ok := h.Display().Framebuffer().(*hal.MemFramebuffer)
	if !ok {
		return fmt.Errorf("framebuffer cannot be read back")
	}
	if err := png.Encode(w, fb.Snapshot()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
