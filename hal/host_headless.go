//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	HostConfig

	// Hz is how often the step function runs.
	Hz int
	// Ticks stops the runner after that many steps; 0 runs until ctx ends.
	Ticks uint64
}

// RunHeadless runs the application without opening a window.
//
// newApp builds the application against the HAL and returns its step
// function, which is called once per tick on the calling goroutine.
func RunHeadless(ctx context.Context, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("hal: headless hz %d out of range", cfg.Hz)
	}

	h := newHost(cfg.HostConfig)
	step, err := newApp(h)
	if err != nil {
		return err
	}
	if step == nil {
		return nil
	}

	t := time.NewTicker(d)
	defer t.Stop()
	for n := uint64(1); ; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
		h.t.step(1)
		if err := step(); err != nil {
			return err
		}
		if cfg.Ticks > 0 && n >= cfg.Ticks {
			return nil
		}
	}
}
