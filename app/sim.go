package app

import (
	"math"

	"kiosk/kind"
	"kiosk/layout"
	"kiosk/panel"
)

// sim produces the panel states for update number n. It is a pure function
// of n so a run can be replayed and tested.
type sim struct {
	t *layout.Table
}

var prices = map[kind.Kind]float64{
	kind.Hotdog:      3.25,
	kind.Sandwich:    4.50,
	kind.EnergyDrink: 2.99,
	kind.Pizza:       5.75,
}

// food returns one panel per food slot. Stock drains by one per purchase and
// is restocked when it runs out; the highlight walks over the slots and the
// highlighted item is bought every other update.
func (s sim) food(n uint64) []panel.Panel {
	slots := s.t.FoodSlots
	out := make([]panel.Panel, 0, len(slots))
	for i, o := range slots {
		k := kind.Food[i%len(kind.Food)]
		hl := len(slots) > 0 && int(n/4)%len(slots) == i
		stock := 12 - int((n+uint64(i)*5)/2%13)
		p := panel.Panel{
			Kind:        k,
			Origin:      o,
			Quantity:    stock,
			Price:       prices[k],
			Highlighted: hl,
			Purchased:   hl && n%2 == 1,
		}
		// Happy hour every 16 updates.
		if n%32 >= 16 {
			p.Price = math.Round(p.Price*80) / 100
		}
		out = append(out, p)
	}
	return out
}

// sensors returns one panel per sensor slot with slowly drifting readings.
func (s sim) sensors(n uint64) []panel.Panel {
	slots := s.t.SensorSlots
	out := make([]panel.Panel, 0, len(slots))
	x := float64(n) / 8
	for i, o := range slots {
		k := kind.Sensors[i%len(kind.Sensors)]
		var v float64
		switch k {
		case kind.Temperature:
			v = 4 + 12*math.Sin(x)
		case kind.Pressure:
			v = 1013 + 9*math.Sin(x/3)
		case kind.Humidity:
			v = 55 + 30*math.Cos(x/2)
		}
		out = append(out, panel.Panel{
			Kind:   k,
			Origin: o,
			Value:  math.Round(v*10) / 10,
		})
	}
	return out
}

func (s sim) screen(sc Screen, n uint64) []panel.Panel {
	if sc == ScreenSensors {
		return s.sensors(n)
	}
	return s.food(n)
}
