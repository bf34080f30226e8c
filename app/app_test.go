package app

import (
	"errors"
	"image"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"kiosk/hal"
	"kiosk/kind"
	"kiosk/panel"
)

type testHAL struct {
	log   lineLog
	fb    *hal.MemFramebuffer
	ticks chan uint64
}

type lineLog []string

func (l *lineLog) WriteLineString(s string) { *l = append(*l, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { *l = append(*l, string(b)) }

type testDisplay struct{ fb hal.Framebuffer }

func (d testDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type testTime struct{ ch chan uint64 }

func (t testTime) Ticks() <-chan uint64 { return t.ch }

func (h *testHAL) Logger() hal.Logger { return &h.log }
func (h *testHAL) Time() hal.Time     { return testTime{ch: h.ticks} }

func (h *testHAL) Display() hal.Display {
	if h.fb == nil {
		return testDisplay{}
	}
	return testDisplay{fb: h.fb}
}

func newTestHAL(w, hgt int) *testHAL {
	return &testHAL{fb: hal.NewMemFramebuffer(w, hgt), ticks: make(chan uint64, 64)}
}

func TestNewDrawsInventory(t *testing.T) {
	h := newTestHAL(320, 320)
	a, err := NewApp(h, Config{})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	if a.Screen() != ScreenInventory {
		t.Fatalf("Screen=%v", a.Screen())
	}
	if got := len(a.Panels()); got != 3 {
		t.Fatalf("%d panels on screen, want 3", got)
	}
	for i, p := range a.Panels() {
		if p.Kind != kind.Food[i] || p.Origin != a.Table().FoodSlots[i] {
			t.Fatalf("panel %d=%s", i, p)
		}
	}
	if n, _ := h.fb.Presents(); n == 0 {
		t.Fatalf("first screen never presented")
	}
	// Top-left of the first border is black.
	o := a.Table().FoodSlots[0]
	if px := h.fb.Pixel(o.X+150, o.Y+1); px != 0 {
		t.Fatalf("border pixel=%#04x want black", px)
	}
	if len(h.log) == 0 || !strings.HasPrefix(h.log[0], "kiosk ") {
		t.Fatalf("log=%q want banner first", h.log)
	}
}

func TestStepWaitsForPeriod(t *testing.T) {
	h := newTestHAL(320, 320)
	a, err := NewApp(h, Config{Period: 100 * time.Millisecond})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	h.ticks <- 50
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if a.Updates() != 0 {
		t.Fatalf("updated before the period elapsed")
	}
	h.ticks <- 99
	h.ticks <- 100
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if a.Updates() != 1 {
		t.Fatalf("Updates=%d want 1", a.Updates())
	}
}

func TestStepPresentsOnlyDirtyRegions(t *testing.T) {
	h := newTestHAL(320, 320)
	a, err := NewApp(h, Config{Screen: ScreenSensors, Period: time.Millisecond, NoConsole: true})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	var presented []image.Rectangle
	h.fb.OnPresent(func(r image.Rectangle) error {
		presented = append(presented, r)
		return nil
	})
	a.Advance(1)
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if len(presented) != len(a.Table().SensorSlots) {
		t.Fatalf("presented %v want one rect per sensor field", presented)
	}
	field := a.Table().Sensor.Fields[0].Box.Rect
	for i, r := range presented {
		if want := field.Add(a.Table().SensorSlots[i]); r != want {
			t.Fatalf("present %d=%v want %v", i, r, want)
		}
	}
}

func TestSwitchScreens(t *testing.T) {
	h := newTestHAL(320, 320)
	a, err := NewApp(h, Config{Period: time.Millisecond, SwitchEvery: 2})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	var presented []image.Rectangle
	h.fb.OnPresent(func(r image.Rectangle) error {
		presented = append(presented, r)
		return nil
	})
	for i := 0; i < 2; i++ {
		a.Advance(1)
		if err := a.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if a.Screen() != ScreenSensors {
		t.Fatalf("Screen=%v after 2 updates, want sensors", a.Screen())
	}
	for _, p := range a.Panels() {
		if p.Kind.Family() != kind.FamilySensor {
			t.Fatalf("panel %s on the sensor screen", p)
		}
	}
	full := image.Rectangle{Max: a.Table().Screen}
	found := false
	for _, r := range presented {
		found = found || r == full
	}
	if !found {
		t.Fatalf("switch presented %v, want the whole panel area", presented)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := NewApp(&testHAL{}, Config{}); !errors.Is(err, ErrNoDisplay) {
		t.Fatalf("NewApp without framebuffer err=%v", err)
	}
	if _, err := NewApp(newTestHAL(320, 200), Config{}); err == nil {
		t.Fatalf("NewApp on a short framebuffer succeeded")
	}
	if _, err := NewApp(newTestHAL(320, 320), Config{Scale: 2}); err == nil {
		t.Fatalf("NewApp with a layout larger than the framebuffer succeeded")
	}
	if _, err := NewApp(newTestHAL(640, 480), Config{Scale: 2, NoConsole: true}); err != nil {
		t.Fatalf("NewApp at scale 2: %v", err)
	}
}

func TestSimStaysDisplayable(t *testing.T) {
	h := newTestHAL(320, 320)
	a, err := NewApp(h, Config{Period: time.Millisecond})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	var faults []*panel.Fault
	r := panel.NewRenderer(a.canvas, a.table, nil, panel.DiagnosticsFunc(func(f *panel.Fault) {
		faults = append(faults, f)
	}))
	for n := uint64(0); n < 200; n++ {
		for _, sc := range []Screen{ScreenInventory, ScreenSensors} {
			for _, p := range a.sim.screen(sc, n) {
				_ = r.Build(p)
			}
		}
	}
	if len(faults) != 0 {
		t.Fatalf("simulated values faulted: %v", faults[0])
	}
}

func TestGuardRecovers(t *testing.T) {
	h := newTestHAL(320, 320)
	step := guard(h, func() error { panic("boom") })
	err := step()
	if !errors.Is(err, ErrPanic) || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err=%v want ErrPanic", err)
	}
	if len(h.log) < 2 || h.log[1] != "panic: boom" {
		t.Fatalf("log=%q", h.log)
	}
	if n, _ := h.fb.Presents(); n != 1 {
		t.Fatalf("panic screen not presented")
	}
}

func TestParseScreen(t *testing.T) {
	tests := []struct {
		in   string
		want Screen
		ok   bool
	}{
		{"inventory", ScreenInventory, true},
		{"Food", ScreenInventory, true},
		{"sensors", ScreenSensors, true},
		{"weather", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseScreen(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Fatalf("ParseScreen(%q)=(%v, %v)", tt.in, got, err)
		}
	}
}

type storageHAL struct {
	*testHAL
	assets fs.FS
}

func (h storageHAL) Assets() fs.FS { return h.assets }

func TestBrokenIconOverrideIsReported(t *testing.T) {
	h := newTestHAL(320, 320)
	sh := storageHAL{testHAL: h, assets: fstest.MapFS{
		"hotdog_highlighted.bmp": &fstest.MapFile{Data: []byte("not a bitmap")},
	}}
	a, err := NewApp(sh, Config{})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	var sawIcon, sawFault bool
	for _, line := range h.log {
		sawIcon = sawIcon || strings.Contains(line, "icon hotdog")
		sawFault = sawFault || strings.Contains(line, "panel hotdog@")
	}
	if !sawIcon || !sawFault {
		t.Fatalf("log=%q want the preload error and the render fault", h.log)
	}
	if a.console.Faults() != 1 {
		t.Fatalf("console Faults=%d want 1", a.console.Faults())
	}
	if got := len(a.Panels()); got != 3 {
		t.Fatalf("%d panels drawn, want all 3", got)
	}
}

func TestReloadRebuildsScreen(t *testing.T) {
	h := newTestHAL(320, 320)
	reload := make(chan struct{}, 1)
	a, err := NewApp(h, Config{Reload: reload, NoConsole: true})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	var presented []image.Rectangle
	h.fb.OnPresent(func(r image.Rectangle) error {
		presented = append(presented, r)
		return nil
	})

	reload <- struct{}{}
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if len(presented) != 1 || presented[0] != (image.Rectangle{Max: a.Table().Screen}) {
		t.Fatalf("presented %v want the whole panel area", presented)
	}
	if a.Updates() != 0 {
		t.Fatalf("reload advanced the simulation")
	}
}
