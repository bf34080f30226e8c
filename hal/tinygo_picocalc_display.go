//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"
)

// ILI9488 commands used by the panel driver.
const (
	cmdSleepOut   = 0x11
	cmdInvertOn   = 0x21
	cmdDisplayOn  = 0x29
	cmdColumnAddr = 0x2A
	cmdPageAddr   = 0x2B
	cmdMemWrite   = 0x2C
	cmdMemAccess  = 0x36
	cmdPixelFmt   = 0x3A
	cmdFrameRate  = 0xB1
	cmdDispFunc   = 0xB6
	cmdPower1     = 0xC0
	cmdPower2     = 0xC1
	cmdVCOM       = 0xC5
)

const (
	madctlMX  = 0x40
	madctlBGR = 0x08
	madctlMH  = 0x04
)

var (
	errNoSPI      = errors.New("hal: SPI1 unavailable")
	errBlitWindow = errors.New("hal: blit window outside buffer")
	errTxBuf      = errors.New("hal: blit row wider than tx buffer")
)

type initStep struct {
	cmd   byte
	data  []byte
	pause time.Duration
}

// panelInit brings the PicoCalc's ILI9488 up in 16bpp, mirrored for the
// carrier's wiring, with a BGR panel and inversion on.
var panelInit = []initStep{
	{cmd: cmdPower1, data: []byte{0x17, 0x15}},
	{cmd: cmdPower2, data: []byte{0x41}},
	{cmd: cmdVCOM, data: []byte{0x00, 0x12, 0x80, 0x40}},
	{cmd: cmdPixelFmt, data: []byte{0x55}},
	{cmd: cmdFrameRate, data: []byte{0xA0, 0x11}},
	{cmd: cmdDispFunc, data: []byte{0x02, 0x22, 0x27}},
	{cmd: cmdInvertOn},
	{cmd: cmdMemAccess, data: []byte{madctlMX | madctlMH | madctlBGR}},
	{cmd: cmdSleepOut, pause: 120 * time.Millisecond},
	{cmd: cmdDisplayOn},
}

type ili9488 struct {
	spi *machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	cmdBuf [1]byte
	win    [4]byte
	txBuf  []byte
}

// initILI9488 configures SPI1 (GP10 SCK, GP11 SDO, GP12 SDI at 40MHz) and
// the GP13 CS, GP14 DC and GP15 RST lines, then runs panelInit.
func initILI9488() (*ili9488, error) {
	if machine.SPI1 == nil {
		return nil, errNoSPI
	}
	err := machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})
	if err != nil {
		return nil, err
	}

	d := &ili9488{
		spi:   machine.SPI1,
		cs:    machine.GP13,
		dc:    machine.GP14,
		rst:   machine.GP15,
		txBuf: make([]byte, 4096),
	}
	for _, p := range []machine.Pin{d.cs, d.dc, d.rst} {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.High()
	}

	d.rst.Low()
	time.Sleep(64 * time.Millisecond)
	d.rst.High()
	time.Sleep(140 * time.Millisecond)

	for _, s := range panelInit {
		d.cmd(s.cmd, s.data)
		if s.pause > 0 {
			time.Sleep(s.pause)
		}
	}
	return d, nil
}

func (d *ili9488) cmd(c byte, data []byte) {
	d.cs.Low()
	d.dc.Low()
	d.cmdBuf[0] = c
	d.spi.Tx(d.cmdBuf[:], nil)
	d.dc.High()
	if len(data) > 0 {
		d.spi.Tx(data, nil)
	}
	d.cs.High()
}

// addr sends a column or page address range, inclusive at both ends.
func (d *ili9488) addr(c byte, lo, hi int) {
	d.win = [4]byte{byte(lo >> 8), byte(lo), byte(hi >> 8), byte(hi)}
	d.cmd(c, d.win[:])
}

// blitWindow streams [x0,x1) x [y0,y1) of a little-endian RGB565 buffer.
// The panel wants big-endian pixels, so rows are byte-swapped into txBuf,
// as many whole rows per transfer as fit.
func (d *ili9488) blitWindow(buf []byte, stride, x0, y0, x1, y1 int) error {
	row := (x1 - x0) * 2
	if row <= 0 || y1 <= y0 || (y1-1)*stride+x1*2 > len(buf) {
		return errBlitWindow
	}
	if row > len(d.txBuf) {
		return errTxBuf
	}

	d.addr(cmdColumnAddr, x0, x1-1)
	d.addr(cmdPageAddr, y0, y1-1)
	d.cmd(cmdMemWrite, nil)

	d.cs.Low()
	d.dc.High()
	defer d.cs.High()

	perTx := len(d.txBuf) / row
	for y := y0; y < y1; {
		n := 0
		for end := min(y+perTx, y1); y < end; y++ {
			src := buf[y*stride+x0*2 : y*stride+x1*2]
			dst := d.txBuf[n : n+row]
			for i := 0; i < row; i += 2 {
				dst[i], dst[i+1] = src[i+1], src[i]
			}
			n += row
		}
		if err := d.spi.Tx(d.txBuf[:n], nil); err != nil {
			return err
		}
	}
	return nil
}
