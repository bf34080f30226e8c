package hal

import (
	"image"
	"sync"
)

// MemFramebuffer is an RGB565 framebuffer held in RAM.
//
// It backs the host and TinyGo-on-host targets and is what tests render into.
// Present only records what was pushed; an optional hook forwards it.
type MemFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte

	presents    int
	lastPresent image.Rectangle
	onPresent   func(r image.Rectangle) error
}

// NewMemFramebuffer allocates a width x height RGB565 framebuffer.
func NewMemFramebuffer(width, height int) *MemFramebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := width * 2
	return &MemFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *MemFramebuffer) Width() int          { return f.width }
func (f *MemFramebuffer) Height() int         { return f.height }
func (f *MemFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *MemFramebuffer) StrideBytes() int    { return f.stride }
func (f *MemFramebuffer) Buffer() []byte      { return f.buf }

func (f *MemFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *MemFramebuffer) Present() error {
	return f.PresentRect(0, 0, f.width, f.height)
}

func (f *MemFramebuffer) PresentRect(x, y, w, h int) error {
	r := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, f.width, f.height))
	f.mu.Lock()
	f.presents++
	f.lastPresent = r
	hook := f.onPresent
	f.mu.Unlock()
	if hook == nil || r.Empty() {
		return nil
	}
	return hook(r)
}

// OnPresent installs a hook run after every Present/PresentRect.
func (f *MemFramebuffer) OnPresent(fn func(r image.Rectangle) error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onPresent = fn
}

// Presents reports how many times the buffer was presented and the last
// presented rectangle.
func (f *MemFramebuffer) Presents() (n int, last image.Rectangle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents, f.lastPresent
}

// Pixel returns the raw RGB565 value at (x, y), or 0 outside the buffer.
func (f *MemFramebuffer) Pixel(x, y int) uint16 {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0
	}
	off := y*f.stride + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

// Snapshot converts the buffer into an RGBA image.
func (f *MemFramebuffer) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	f.copyRect(img, img.Rect)
	return img
}

// copyRect converts the pixels of r into dst, which must cover r.
func (f *MemFramebuffer) copyRect(dst *image.RGBA, r image.Rectangle) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r = r.Intersect(image.Rect(0, 0, f.width, f.height)).Intersect(dst.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		src := f.buf[y*f.stride+r.Min.X*2:]
		out := dst.Pix[dst.PixOffset(r.Min.X, y):]
		for x := 0; x < r.Dx(); x++ {
			cr, cg, cb := rgb888From565(uint16(src[2*x]) | uint16(src[2*x+1])<<8)
			out[4*x+0] = cr
			out[4*x+1] = cg
			out[4*x+2] = cb
			out[4*x+3] = 0xFF
		}
	}
}

func rgb565(r, g, b uint8) uint16 {
	return uint16(r>>3)&0x1F<<11 | uint16(g>>2)&0x3F<<5 | uint16(b>>3)&0x1F
}

func rgb888From565(p uint16) (r, g, b uint8) {
	r = uint8(((p >> 11) & 0x1F) * 255 / 31)
	g = uint8(((p >> 5) & 0x3F) * 255 / 63)
	b = uint8((p & 0x1F) * 255 / 31)
	return r, g, b
}
