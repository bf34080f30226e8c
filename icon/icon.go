// Package icon maps panel kinds to bitmap assets and decodes them.
package icon

import (
	"strings"

	"kiosk/kind"
)

// Asset identifies one bitmap. The zero value is None.
type Asset uint8

const (
	// None means "draw no icon". It is never an error.
	None Asset = iota
	Hotdog
	HotdogHighlighted
	Sandwich
	SandwichHighlighted
	EnergyDrink
	EnergyDrinkHighlighted
	Pizza
	PizzaHighlighted
	Temperature
	TemperatureHighlighted
	Pressure
	PressureHighlighted
	Humidity
	HumidityHighlighted
	assetCount
)

var normal = [...]Asset{
	kind.Hotdog:      Hotdog,
	kind.Sandwich:    Sandwich,
	kind.EnergyDrink: EnergyDrink,
	kind.Pizza:       Pizza,
	kind.Temperature: Temperature,
	kind.Pressure:    Pressure,
	kind.Humidity:    Humidity,
}

// Select returns the asset for k. Every kind has a normal and a highlighted
// variant; the highlighted one is always the next Asset value.
func Select(k kind.Kind, highlighted bool) Asset {
	if !k.Valid() || int(k) >= len(normal) {
		return None
	}
	a := normal[k]
	if a == None {
		return None
	}
	if highlighted {
		a++
	}
	return a
}

// Highlighted reports whether a is a highlighted variant.
func (a Asset) Highlighted() bool {
	return a != None && a < assetCount && a%2 == 0
}

var files = [...]string{
	Hotdog:                 "hotdog.bmp",
	HotdogHighlighted:      "hotdog_highlighted.bmp",
	Sandwich:               "sandwich.bmp",
	SandwichHighlighted:    "sandwich_highlighted.bmp",
	EnergyDrink:            "energy_drink.bmp",
	EnergyDrinkHighlighted: "energy_drink_highlighted.bmp",
	Pizza:                  "pizza.bmp",
	PizzaHighlighted:       "pizza_highlighted.bmp",
	Temperature:            "temperature.bmp",
	TemperatureHighlighted: "temperature_highlighted.bmp",
	Pressure:               "pressure.bmp",
	PressureHighlighted:    "pressure_highlighted.bmp",
	Humidity:               "humidity.bmp",
	HumidityHighlighted:    "humidity_highlighted.bmp",
}

// Name is the file name of the asset inside an asset FS, or "" for None.
func (a Asset) Name() string {
	if a >= assetCount {
		return ""
	}
	return files[a]
}

func (a Asset) String() string {
	if a == None {
		return "none"
	}
	if n := a.Name(); n != "" {
		return strings.TrimSuffix(n, ".bmp")
	}
	return "asset?"
}
