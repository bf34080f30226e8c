//go:build tinygo && baremetal && !picocalc

package hal

// New returns a Pico 2 (RP2350) HAL without an attached panel.
//
// Rendering goes to a RAM framebuffer that is never pushed anywhere; render
// faults still reach the UART log.
func New() HAL {
	return &deviceHAL{
		logger: newUARTLogger(),
		fb:     NewMemFramebuffer(320, 320),
		t:      newTickSource(),
	}
}
