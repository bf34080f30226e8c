// Package surface defines the raster surface the panels are drawn on.
//
// A Surface is a passive sink for three primitives: filled (and optionally
// stroked) rounded rectangles, image blits and text runs. It is never read
// back by the renderer.
package surface

import (
	"image"
	"image/color"

	"tinygo.org/x/tinyfont"
)

// Color is a 16-bit RGB565 color (rrrrrggggggbbbbb).
type Color uint16

// RGB packs 8-bit channels into RGB565, dropping the low bits.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)&0x1F<<11 | uint16(g>>2)&0x3F<<5 | uint16(b>>3)&0x1F)
}

// ToRGBA expands c to 8-bit channels. RGB(c.ToRGBA()) == c for every c.
func (c Color) ToRGBA() color.RGBA {
	p := uint16(c)
	return color.RGBA{
		R: uint8(((p >> 11) & 0x1F) * 255 / 31),
		G: uint8(((p >> 5) & 0x3F) * 255 / 63),
		B: uint8((p & 0x1F) * 255 / 31),
		A: 0xFF,
	}
}

// Style describes a rounded rectangle. The stroke is drawn inside the
// rectangle; StrokeWidth 0 means fill only.
type Style struct {
	Fill        Color
	Stroke      Color
	StrokeWidth int
}

// TextStyle describes a text run. Text is positioned by its baseline.
type TextStyle struct {
	Font  tinyfont.Fonter
	Color Color
}

// Surface is the draw primitive contract consumed by the panel renderer.
type Surface interface {
	// Size returns the pixel dimensions of the surface.
	Size() (w, h int)
	RoundRect(r image.Rectangle, radius int, st Style)
	Image(img image.Image, at image.Point)
	Text(s string, at image.Point, ts TextStyle)
}

// TextWidth returns the advance width of s in pixels.
func TextWidth(f tinyfont.Fonter, s string) int {
	if f == nil || s == "" {
		return 0
	}
	_, outbox := tinyfont.LineWidth(f, s)
	return int(outbox)
}
