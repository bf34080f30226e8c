package surface

import (
	"image"
	"image/color"

	"kiosk/hal"

	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
)

// Canvas is a Surface backed by an RGB565 hal.Framebuffer.
//
// Rounded rectangles are composed from tinydraw rectangles and circles, text
// goes through tinyfont. Canvas only writes the buffer; presenting it is the
// caller's job.
type Canvas struct {
	d *Display
}

func NewCanvas(fb hal.Framebuffer) *Canvas {
	return &Canvas{d: NewDisplay(fb)}
}

var _ Surface = (*Canvas)(nil)

// Display returns the displayer the canvas draws through.
func (c *Canvas) Display() *Display { return c.d }

func (c *Canvas) Size() (w, h int) {
	x, y := c.d.Size()
	return int(x), int(y)
}

func (c *Canvas) RoundRect(r image.Rectangle, radius int, st Style) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	if st.StrokeWidth > 0 {
		c.fillRound(r, radius, st.Stroke.ToRGBA())
		r = r.Inset(st.StrokeWidth)
		radius -= st.StrokeWidth
		if r.Empty() {
			return
		}
	}
	c.fillRound(r, radius, st.Fill.ToRGBA())
}

// fillRound fills r with corners of the given radius. A circle of radius k
// covers 2k+1 pixels, so the radius is clamped to fit both dimensions.
func (c *Canvas) fillRound(r image.Rectangle, radius int, col color.RGBA) {
	w, h := r.Dx(), r.Dy()
	radius = clampInt(radius, 0, minInt((w-1)/2, (h-1)/2))
	x, y := int16(r.Min.X), int16(r.Min.Y)
	if radius == 0 {
		tinydraw.FilledRectangle(c.d, x, y, int16(w), int16(h), col)
		return
	}

	k := int16(radius)
	x1 := int16(r.Max.X - 1)
	y1 := int16(r.Max.Y - 1)
	tinydraw.FilledRectangle(c.d, x, y+k, int16(w), int16(h)-2*k, col)
	tinydraw.FilledRectangle(c.d, x+k, y, int16(w)-2*k, int16(h), col)
	tinydraw.FilledCircle(c.d, x+k, y+k, k, col)
	tinydraw.FilledCircle(c.d, x1-k, y+k, k, col)
	tinydraw.FilledCircle(c.d, x+k, y1-k, k, col)
	tinydraw.FilledCircle(c.d, x1-k, y1-k, k, col)
}

// Image blits img with its top-left corner at the given point. Fully
// transparent pixels are skipped.
func (c *Canvas) Image(img image.Image, at image.Point) {
	if img == nil {
		return
	}
	b := img.Bounds()
	switch src := img.(type) {
	case *image.RGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				i := src.PixOffset(x, y)
				if src.Pix[i+3] == 0 {
					continue
				}
				c.d.set(at.X+x-b.Min.X, at.Y+y-b.Min.Y, RGB(src.Pix[i+0], src.Pix[i+1], src.Pix[i+2]))
			}
		}
		return
	case *image.NRGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				i := src.PixOffset(x, y)
				if src.Pix[i+3] == 0 {
					continue
				}
				c.d.set(at.X+x-b.Min.X, at.Y+y-b.Min.Y, RGB(src.Pix[i+0], src.Pix[i+1], src.Pix[i+2]))
			}
		}
		return
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if px.A == 0 {
				continue
			}
			c.d.set(at.X+x-b.Min.X, at.Y+y-b.Min.Y, RGB(px.R, px.G, px.B))
		}
	}
}

func (c *Canvas) Text(s string, at image.Point, ts TextStyle) {
	if s == "" || ts.Font == nil {
		return
	}
	tinyfont.WriteLine(c.d, ts.Font, int16(at.X), int16(at.Y), s, ts.Color.ToRGBA())
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
