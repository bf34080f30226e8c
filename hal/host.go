//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
	"time"
)

// Default host framebuffer geometry (matches the PicoCalc panel).
const (
	DefaultWidth  = 320
	DefaultHeight = 320
)

// HostConfig describes the simulated device the host runners build.
type HostConfig struct {
	Width  int
	Height int

	// Assets, when set, is served as the device's icon storage.
	Assets fs.FS
}

type hostHAL struct {
	logger *hostLogger
	fb     *MemFramebuffer
	t      *hostTime
	assets fs.FS
}

// New returns a host HAL implementation with the default framebuffer size.
func New() HAL {
	return newHost(HostConfig{})
}

// NewSized returns a host HAL with a width x height framebuffer.
func NewSized(width, height int) HAL {
	return newHost(HostConfig{Width: width, Height: height})
}

func newHost(cfg HostConfig) *hostHAL {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	return &hostHAL{
		logger: newHostLogger(os.Stdout),
		fb:     NewMemFramebuffer(cfg.Width, cfg.Height),
		t:      newHostTime(),
		assets: cfg.Assets,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Time() Time       { return h.t }
func (h *hostHAL) Assets() fs.FS    { return h.assets }

type hostDisplay struct {
	fb *MemFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

// hostLogger stamps each line with the time since start, the way a serial
// console capture would read.
type hostLogger struct {
	mu    sync.Mutex
	w     io.Writer
	start time.Time
}

func newHostLogger(w io.Writer) *hostLogger {
	return &hostLogger{w: w, start: time.Now()}
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "[%9.3f] %s\n", time.Since(l.start).Seconds(), s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}
