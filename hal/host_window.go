//go:build !tinygo && cgo

package hal

import (
	"image"

	"kiosk/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	HostConfig
	Zoom int
}

// RunWindow starts a desktop window that shows what the application has
// presented. Pixels drawn but never presented stay invisible, as they would
// on the panel. It blocks until the window closes.
func RunWindow(newApp func(HAL) (func() error, error), cfg WindowConfig) error {
	if cfg.Zoom <= 0 {
		cfg.Zoom = 2
	}
	h := newHost(cfg.HostConfig)
	g := &panelWindow{
		h:     h,
		shown: image.NewRGBA(image.Rect(0, 0, h.fb.width, h.fb.height)),
	}
	h.fb.OnPresent(g.present)

	step, err := newApp(h)
	if err != nil {
		return err
	}
	g.step = step

	ebiten.SetWindowTitle("Kiosk (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*cfg.Zoom, h.fb.height*cfg.Zoom)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

// panelWindow is the ebiten.Game that mirrors the simulated panel.
type panelWindow struct {
	h     *hostHAL
	step  func() error
	shown *image.RGBA
	img   *ebiten.Image
	stale bool
}

func (g *panelWindow) present(r image.Rectangle) error {
	g.h.fb.copyRect(g.shown, r)
	g.stale = true
	return nil
}

func (g *panelWindow) Update() error {
	g.h.t.step(1)
	if g.step == nil {
		return nil
	}
	return g.step()
}

func (g *panelWindow) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.shown.Rect.Dx(), g.shown.Rect.Dy())
		g.stale = true
	}
	if g.stale {
		g.img.WritePixels(g.shown.Pix)
		g.stale = false
	}
	screen.DrawImage(g.img, nil)
}

func (g *panelWindow) Layout(int, int) (int, int) {
	return g.shown.Rect.Dx(), g.shown.Rect.Dy()
}
