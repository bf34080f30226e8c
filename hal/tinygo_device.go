//go:build tinygo

package hal

import (
	"io/fs"
	"time"
)

// deviceHAL is the HAL of every TinyGo target; the targets differ only in
// which logger, framebuffer and storage they plug in.
type deviceHAL struct {
	logger Logger
	fb     Framebuffer
	t      *tickSource
	assets fs.FS
}

func (h *deviceHAL) Logger() Logger   { return h.logger }
func (h *deviceHAL) Display() Display { return fbDisplay{fb: h.fb} }
func (h *deviceHAL) Time() Time       { return h.t }

// Assets returns the mounted icon directory, or nil.
func (h *deviceHAL) Assets() fs.FS { return h.assets }

type fbDisplay struct {
	fb Framebuffer
}

func (d fbDisplay) Framebuffer() Framebuffer { return d.fb }

// tickSource emits a 1ms sequence number from its own goroutine. A slow
// consumer sees gaps in the sequence rather than a backlog.
type tickSource struct {
	ch  chan uint64
	seq uint64
}

func newTickSource() *tickSource {
	t := &tickSource{ch: make(chan uint64, 16)}
	go t.run(time.Millisecond)
	return t
}

func (t *tickSource) run(d time.Duration) {
	ticker := time.NewTicker(d)
	defer ticker.Stop()
	for range ticker.C {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}

func (t *tickSource) Ticks() <-chan uint64 { return t.ch }
