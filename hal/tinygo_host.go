//go:build tinygo && !baremetal

package hal

// New returns the HAL for `tinygo run` on a host OS (linux, wasm): a RAM
// framebuffer and println logging.
func New() HAL {
	return &deviceHAL{
		logger: printLogger{},
		fb:     NewMemFramebuffer(320, 320),
		t:      newTickSource(),
	}
}

type printLogger struct{}

func (printLogger) WriteLineString(s string) { println(s) }
func (printLogger) WriteLineBytes(b []byte)  { println(string(b)) }
