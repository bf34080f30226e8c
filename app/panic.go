package app

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"kiosk/hal"
	"kiosk/surface"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var ErrPanic = errors.New("app: panic")

const (
	panicLineHeight = 10
	panicOffset     = 8
)

// guard wraps step so a panic is logged, painted on the display and turned
// into an error that stops the runner.
func guard(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			lines := panicLines(v, debug.Stack())
			if l := h.Logger(); l != nil {
				for _, line := range lines {
					l.WriteLineString(line)
				}
			}
			if d := h.Display(); d != nil {
				paintPanic(d.Framebuffer(), lines)
			}
			err = fmt.Errorf("%w: %v", ErrPanic, v)
		}()
		return step()
	}
}

func panicLines(v any, stack []byte) []string {
	lines := []string{"Kiosk panic:", fmt.Sprintf("panic: %v", v)}
	if len(stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// paintPanic draws lines black on white, wrapping long ones, until the
// screen is full.
func paintPanic(fb hal.Framebuffer, lines []string) {
	if fb == nil {
		return
	}
	fb.ClearRGB(0xFF, 0xFF, 0xFF)

	d := surface.NewDisplay(fb)
	font := &proggy.TinySZ8pt7b
	_, cw := tinyfont.LineWidth(font, "0")
	cols := 1
	if cw > 0 {
		cols = max(fb.Width()/int(cw), 1)
	}
	fg := surface.RGB(0, 0, 0).ToRGBA()

	y := 0
	for _, line := range lines {
		for line != "" {
			if y+panicLineHeight > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, int16(y+panicOffset), chunk, fg)
			y += panicLineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
