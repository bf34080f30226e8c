//go:build tinygo && baremetal && picocalc

package hal

import "image"

const picoCalcSide = 320

// New returns the PicoCalc HAL (Pico/Pico2 on the PicoCalc carrier).
//
// Display: ILI9488 on SPI1, 320x320 RGB565. Rendering goes to a RAM
// framebuffer; each present pushes the presented window over SPI.
// SD: SPI0, FAT; icon overrides are read from /kiosk/icons.
func New() HAL {
	logger := newUARTLogger()
	fb := NewMemFramebuffer(picoCalcSide, picoCalcSide)
	if lcd, err := initILI9488(); err != nil {
		// Keep rendering into RAM; faults still reach the UART.
		logger.WriteLineString("hal: display: " + err.Error())
	} else {
		fb.OnPresent(func(r image.Rectangle) error {
			return lcd.blitWindow(fb.buf, fb.stride, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
		})
	}
	return &deviceHAL{
		logger: logger,
		fb:     fb,
		t:      newTickSource(),
		assets: mountSD(logger),
	}
}
