// Package app wires the HAL to the panel renderer and drives a simulated
// kiosk: a food inventory screen and a sensor screen whose values change
// over time.
package app

import (
	"errors"
	"fmt"
	"image"

	"kiosk/console"
	"kiosk/hal"
	"kiosk/icon"
	"kiosk/internal/buildinfo"
	"kiosk/layout"
	"kiosk/panel"
	"kiosk/surface"
)

var ErrNoDisplay = errors.New("app: no framebuffer")

// App owns the render state of one display.
type App struct {
	cfg   Config
	log   hal.Logger
	fb    hal.Framebuffer
	ticks <-chan uint64

	table    *layout.Table
	canvas   *surface.Canvas
	icons    *icon.Library
	renderer *panel.Renderer
	food     *panel.Set
	sensors  *panel.Set
	console  *console.Console
	sim      sim

	screen   Screen
	shown    []panel.Panel
	dirtyAll bool
	now      uint64
	next     uint64
	updates  uint64
}

// New builds the application and draws the first screen. The returned step
// function advances the simulation; the HAL runner calls it once per tick.
func New(h hal.HAL, cfg Config) (func() error, error) {
	a, err := NewApp(h, cfg)
	if err != nil {
		return nil, err
	}
	return guard(h, a.Step), nil
}

// NewApp is New without the panic guard.
func NewApp(h hal.HAL, cfg Config) (*App, error) {
	cfg = cfg.withDefaults()

	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil {
		return nil, ErrNoDisplay
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("app: pixel format %d: %w", fb.Format(), hal.ErrNotImplemented)
	}

	t := layout.Default().Scale(cfg.Scale)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if fb.Width() < t.Screen.X || fb.Height() < t.Screen.Y {
		return nil, fmt.Errorf("app: framebuffer %dx%d smaller than layout %dx%d",
			fb.Width(), fb.Height(), t.Screen.X, t.Screen.Y)
	}

	a := &App{
		cfg:    cfg,
		log:    h.Logger(),
		fb:     fb,
		table:  t,
		canvas: surface.NewCanvas(fb),
		sim:    sim{t: t},
		screen: cfg.Screen,
	}
	if ht := h.Time(); ht != nil {
		a.ticks = ht.Ticks()
	}

	fb.ClearRGB(0xFF, 0xFF, 0xFF)

	var diag panel.Diagnostics = panel.LogDiagnostics{L: a.log}
	strip := image.Rect(0, t.Screen.Y, fb.Width(), fb.Height())
	if !cfg.NoConsole && strip.Dy() >= console.LineHeight {
		a.console = console.New(fb, strip, a.log)
		a.console.Println(buildinfo.Banner())
		// The console mirrors to the logger itself.
		diag = a.console
	}

	icons := cfg.Icons
	if st, ok := h.(hal.Storage); ok && icons == nil {
		icons = st.Assets()
	}
	if icons != nil {
		a.logf("icons: using overrides")
	}
	lib := icon.NewLibraryOverlay(icons)
	if err := lib.Preload(); err != nil {
		a.logf("icons: %v", err)
	}

	a.icons = lib
	a.renderer = panel.NewRenderer(a.canvas, t, lib, diag)
	a.food = panel.NewSet(a.renderer, nil)
	a.sensors = panel.NewSet(a.renderer, &t.SensorChrome)

	a.show(a.screen)
	a.dirtyAll = false
	if err := fb.Present(); err != nil {
		return nil, fmt.Errorf("app: present: %w", err)
	}
	if a.console != nil {
		_ = a.console.Flush()
	}
	a.next = a.cfg.periodTicks()
	return a, nil
}

// Table returns the layout in use.
func (a *App) Table() *layout.Table { return a.table }

// Screen returns the screen currently shown.
func (a *App) Screen() Screen { return a.screen }

// Panels returns the panel states currently on screen.
func (a *App) Panels() []panel.Panel { return a.shown }

// Updates returns how many simulation updates have been drawn.
func (a *App) Updates() uint64 { return a.updates }

// Step drains pending ticks and, once per Period, moves the simulation on and
// redraws what changed. Render faults are reported, not returned; only a
// failed present is an error.
func (a *App) Step() error {
	a.drainTicks()
	if a.reloadRequested() {
		a.icons.Invalidate()
		a.show(a.screen)
		return a.flush()
	}
	if a.now < a.next {
		return nil
	}
	a.next = a.now + a.cfg.periodTicks()
	a.updates++

	if n := a.cfg.SwitchEvery; n > 0 && a.updates%uint64(n) == 0 {
		a.show(a.otherScreen())
	} else {
		next := a.sim.screen(a.screen, a.updates)
		_ = a.set(a.screen).RefreshAll(a.shown, next)
		a.shown = next
	}
	return a.flush()
}

// Advance feeds n ticks of simulated time without a HAL tick stream.
func (a *App) Advance(n uint64) { a.now += n }

func (a *App) drainTicks() {
	if a.ticks == nil {
		return
	}
	for {
		select {
		case seq, ok := <-a.ticks:
			if !ok {
				a.ticks = nil
				return
			}
			if seq > a.now {
				a.now = seq
			}
		default:
			return
		}
	}
}

func (a *App) reloadRequested() bool {
	if a.cfg.Reload == nil {
		return false
	}
	select {
	case <-a.cfg.Reload:
		return true
	default:
		return false
	}
}

func (a *App) otherScreen() Screen {
	if a.screen == ScreenSensors {
		return ScreenInventory
	}
	return ScreenSensors
}

func (a *App) set(s Screen) *panel.Set {
	if s == ScreenSensors {
		return a.sensors
	}
	return a.food
}

// show clears the panel area and builds every panel of s.
func (a *App) show(s Screen) {
	a.screen = s
	a.renderer.Reset()
	area := image.Rectangle{Max: a.table.Screen}
	bg := a.table.Palette.Background
	a.canvas.RoundRect(area, 0, surface.Style{Fill: bg})

	a.shown = a.sim.screen(s, a.updates)
	_ = a.set(s).RenderAll(a.shown)
	a.renderer.TakeDirty()
	a.dirtyAll = true
	if a.console != nil {
		a.console.Printf("screen %s", s)
	}
}

// flush presents what the renderer touched since the last flush.
func (a *App) flush() error {
	dirty := a.renderer.TakeDirty()
	if a.dirtyAll {
		a.dirtyAll = false
		dirty = []image.Rectangle{{Max: a.table.Screen}}
	}
	for _, r := range dirty {
		if err := a.fb.PresentRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy()); err != nil {
			return fmt.Errorf("app: present %v: %w", r, err)
		}
	}
	if a.console != nil {
		if err := a.console.Flush(); err != nil {
			return fmt.Errorf("app: present console: %w", err)
		}
	}
	return nil
}

func (a *App) logf(format string, args ...any) {
	if a.log != nil {
		a.log.WriteLineString(fmt.Sprintf(format, args...))
	}
}
