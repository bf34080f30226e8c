package app

import (
	"fmt"
	"io/fs"
	"strings"
	"time"
)

// Screen selects which panel set is shown.
type Screen uint8

const (
	ScreenInventory Screen = iota
	ScreenSensors
)

func (s Screen) String() string {
	switch s {
	case ScreenInventory:
		return "inventory"
	case ScreenSensors:
		return "sensors"
	}
	return "screen?"
}

// ParseScreen accepts "inventory" (or "food") and "sensors".
func ParseScreen(s string) (Screen, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inventory", "food", "":
		return ScreenInventory, nil
	case "sensors", "sensor":
		return ScreenSensors, nil
	}
	return 0, fmt.Errorf("app: unknown screen %q", s)
}

// Config is the application configuration.
type Config struct {
	// Screen is the panel set shown at start.
	Screen Screen
	// Scale multiplies the 320x240 layout.
	Scale int
	// Period is the simulated update interval.
	Period time.Duration
	// SwitchEvery alternates between the two screens after this many
	// updates; 0 keeps the start screen.
	SwitchEvery int
	// NoConsole disables the diagnostics strip below the panels.
	NoConsole bool
	// Icons overrides embedded icon files by name. When nil, the HAL's
	// removable storage is used if it has any.
	Icons fs.FS
	// Reload, when it fires, drops decoded icons and rebuilds the screen.
	Reload <-chan struct{}
}

const defaultPeriod = 500 * time.Millisecond

func (c Config) withDefaults() Config {
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Period <= 0 {
		c.Period = defaultPeriod
	}
	if c.SwitchEvery < 0 {
		c.SwitchEvery = 0
	}
	return c
}

// periodTicks converts Period to 1ms HAL ticks.
func (c Config) periodTicks() uint64 {
	n := uint64(c.Period / time.Millisecond)
	if n == 0 {
		n = 1
	}
	return n
}
