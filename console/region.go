package console

import (
	"image"
	"image/color"

	"kiosk/hal"
	"kiosk/surface"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyterm"
)

// region exposes a sub-rectangle of a framebuffer as a display of its own.
// Coordinates are relative to the region; nothing outside it is ever written.
type region struct {
	fb   hal.Framebuffer
	d    *surface.Display
	rect image.Rectangle
}

var _ tinyterm.Displayer = (*region)(nil)

func newRegion(fb hal.Framebuffer, rect image.Rectangle) *region {
	return &region{
		fb:   fb,
		d:    surface.NewDisplay(fb),
		rect: rect.Intersect(image.Rect(0, 0, fb.Width(), fb.Height())),
	}
}

func (r *region) Size() (x, y int16) {
	return int16(r.rect.Dx()), int16(r.rect.Dy())
}

func (r *region) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || int(x) >= r.rect.Dx() || int(y) >= r.rect.Dy() {
		return
	}
	r.d.SetPixel(int16(r.rect.Min.X)+x, int16(r.rect.Min.Y)+y, c)
}

// Display pushes just the region.
func (r *region) Display() error {
	return r.fb.PresentRect(r.rect.Min.X, r.rect.Min.Y, r.rect.Dx(), r.rect.Dy())
}

func (r *region) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	fill := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).
		Add(r.rect.Min).
		Intersect(r.rect)
	if fill.Empty() {
		return nil
	}
	return r.d.FillRectangle(int16(fill.Min.X), int16(fill.Min.Y), int16(fill.Dx()), int16(fill.Dy()), c)
}

// SetScroll is a no-op; the terminal wraps instead of scrolling.
func (r *region) SetScroll(line int16) {
	_ = line
}

func (r *region) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}
