// Package console is a small text log drawn in a strip of the display.
//
// Render faults and status lines are printed here with tinyterm so they are
// visible on a device without a serial cable, and mirrored to the HAL logger.
package console

import (
	"fmt"
	"image"
	"image/color"

	"kiosk/hal"
	"kiosk/panel"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

const (
	fontHeight = 10
	fontOffset = 6
)

// LineHeight is the pixel height of one console row.
const LineHeight = fontHeight

// Console owns one rectangle of the framebuffer.
type Console struct {
	r   *region
	t   *tinyterm.Terminal
	log hal.Logger

	faults  int
	dirty   bool
	started bool
}

var _ panel.Diagnostics = (*Console)(nil)

// New clears rect and returns a console drawing into it. log may be nil.
func New(fb hal.Framebuffer, rect image.Rectangle, log hal.Logger) *Console {
	c := &Console{r: newRegion(fb, rect), log: log}
	c.Reset()
	return c
}

// Rect returns the framebuffer rectangle the console draws in.
func (c *Console) Rect() image.Rectangle { return c.r.rect }

// Rows returns how many text rows fit in the console.
func (c *Console) Rows() int { return c.r.rect.Dy() / fontHeight }

// Faults returns how many faults were reported since the last Reset.
func (c *Console) Faults() int { return c.faults }

var black = color.RGBA{A: 0xFF}

// Reset clears the console.
func (c *Console) Reset() {
	c.t = tinyterm.NewTerminal(c.r)
	c.t.Configure(&tinyterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: fontHeight,
		FontOffset: fontOffset,
	})
	w, h := c.r.Size()
	_ = c.r.FillRectangle(0, 0, w, h, black)
	c.faults = 0
	c.dirty = true
	c.started = false
}

// Println writes one line to the screen and the logger.
func (c *Console) Println(s string) {
	if c.log != nil {
		c.log.WriteLineString(s)
	}
	c.line(s)
}

// Printf formats one line.
func (c *Console) Printf(format string, args ...any) {
	c.Println(fmt.Sprintf(format, args...))
}

// Report prints a render fault, prefixed with "E ".
func (c *Console) Report(f *panel.Fault) {
	if f == nil {
		return
	}
	c.faults++
	if c.log != nil {
		c.log.WriteLineString(f.Error())
	}
	c.line("E " + f.Error())
}

// Write implements io.Writer.
func (c *Console) Write(b []byte) (int, error) {
	c.dirty = true
	return c.t.Write(b)
}

// Flush presents the console region if anything was written since the last
// flush.
func (c *Console) Flush() error {
	if !c.dirty {
		return nil
	}
	c.dirty = false
	return c.r.Display()
}

func (c *Console) line(s string) {
	// Each entry starts on a fresh row. The region ignores hardware scroll,
	// so once the strip is full the terminal wraps to the top row.
	if c.started {
		_, _ = c.t.Write([]byte{'\n'})
	}
	c.started = true
	_, _ = c.t.Write([]byte(s))
	c.dirty = true
}
