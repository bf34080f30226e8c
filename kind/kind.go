// Package kind enumerates the panel kinds the display knows how to render.
package kind

import "strings"

// Kind identifies a panel. The zero value is Unknown.
type Kind uint8

const (
	Unknown Kind = iota

	Hotdog
	Sandwich
	EnergyDrink
	Pizza

	Temperature
	Pressure
	Humidity

	count
)

// Family groups kinds that share one geometry.
type Family uint8

const (
	FamilyNone Family = iota
	FamilyFood
	FamilySensor
)

var names = [...]string{
	Unknown:     "unknown",
	Hotdog:      "hotdog",
	Sandwich:    "sandwich",
	EnergyDrink: "energy-drink",
	Pizza:       "pizza",
	Temperature: "temperature",
	Pressure:    "pressure",
	Humidity:    "humidity",
}

// Food lists the food kinds in slot order.
var Food = []Kind{Hotdog, Sandwich, EnergyDrink, Pizza}

// Sensors lists the sensor kinds in slot order.
var Sensors = []Kind{Temperature, Pressure, Humidity}

func (k Kind) String() string {
	if k >= count {
		return "unknown"
	}
	return names[k]
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k > Unknown && k < count }

func (k Kind) Family() Family {
	switch k {
	case Hotdog, Sandwich, EnergyDrink, Pizza:
		return FamilyFood
	case Temperature, Pressure, Humidity:
		return FamilySensor
	}
	return FamilyNone
}

func (f Family) String() string {
	switch f {
	case FamilyFood:
		return "food"
	case FamilySensor:
		return "sensor"
	}
	return "none"
}

// Parse maps a name such as "energy-drink" (or "Energy Drink") to a Kind.
func Parse(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	for k := Hotdog; k < count; k++ {
		if names[k] == s {
			return k, true
		}
	}
	return Unknown, false
}
