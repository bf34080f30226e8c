package surface

import (
	"image"
	"image/color"

	"kiosk/hal"

	"tinygo.org/x/drivers"
)

// Display adapts a hal.Framebuffer to the TinyGo drivers.Displayer family of
// interfaces, so tinyfont, tinydraw and tinyterm can draw into it. All writes
// are clipped to the framebuffer.
type Display struct {
	fb hal.Framebuffer
}

func NewDisplay(fb hal.Framebuffer) *Display {
	return &Display{fb: fb}
}

var _ drivers.Displayer = (*Display)(nil)

func (d *Display) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	d.set(int(x), int(y), RGB(c.R, c.G, c.B))
}

func (d *Display) set(x, y int, c Color) {
	buf := d.buffer()
	if buf == nil {
		return
	}
	if x < 0 || x >= d.fb.Width() || y < 0 || y >= d.fb.Height() {
		return
	}
	off := y*d.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(c)
	buf[off+1] = byte(c >> 8)
}

func (d *Display) buffer() []byte {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	return d.fb.Buffer()
}

// Display presents the whole framebuffer.
func (d *Display) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	d.fill(image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)), RGB(c.R, c.G, c.B))
	return nil
}

func (d *Display) fill(r image.Rectangle, c Color) {
	buf := d.buffer()
	if buf == nil {
		return
	}
	r = r.Intersect(image.Rect(0, 0, d.fb.Width(), d.fb.Height()))
	if r.Empty() {
		return
	}

	lo := byte(c)
	hi := byte(c >> 8)
	stride := d.fb.StrideBytes()
	for py := r.Min.Y; py < r.Max.Y; py++ {
		row := py * stride
		for px := r.Min.X; px < r.Max.X; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

func (d *Display) SetScroll(line int16) {
	_ = line
}

func (d *Display) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}
