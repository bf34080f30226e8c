//go:build !tinygo && !cgo

package hal

import "errors"

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	HostConfig
	Zoom int
}

var errNoWindow = errors.New("hal: window mode requires cgo (CGO_ENABLED=1)")

func RunWindow(func(HAL) (func() error, error), WindowConfig) error {
	return errNoWindow
}
