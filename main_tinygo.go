//go:build tinygo

package main

import (
	"kiosk/app"
	"kiosk/hal"
)

func main() {
	h := hal.New()
	step, err := app.New(h, app.Config{})
	if err != nil {
		h.Logger().WriteLineString("kiosk: " + err.Error())
		select {}
	}

	ticks := h.Time().Ticks()
	for range ticks {
		if err := step(); err != nil {
			h.Logger().WriteLineString("kiosk: " + err.Error())
			select {}
		}
	}
}
