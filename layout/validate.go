package layout

import (
	"errors"
	"fmt"
	"image"

	"kiosk/kind"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

// Check verifies that no two parts of g overlap and that every part sits
// inside the border's inner area when there is a border.
func (g Geometry) Check() error {
	var errs []error
	regions := g.Regions(image.Point{})
	parts := regions
	if g.Border.Present() {
		parts = regions[1:]
		inner := g.Border.Inner()
		for _, p := range parts {
			if !p.Rect.In(inner) {
				errs = append(errs, fmt.Errorf("%s %v outside border interior %v", p.Name, p.Rect, inner))
			}
		}
	}
	for i := 0; i < len(parts); i++ {
		if parts[i].Rect.Empty() {
			errs = append(errs, fmt.Errorf("%s is empty", parts[i].Name))
			continue
		}
		for j := i + 1; j < len(parts); j++ {
			if parts[i].Rect.Overlaps(parts[j].Rect) {
				errs = append(errs, fmt.Errorf("%s %v overlaps %s %v", parts[i].Name, parts[i].Rect, parts[j].Name, parts[j].Rect))
			}
		}
	}
	for _, f := range g.Fields {
		if f.Baseline <= f.Box.Rect.Min.Y || f.Baseline > f.Box.Rect.Max.Y {
			errs = append(errs, fmt.Errorf("field %s baseline %d outside its box", f.ID, f.Baseline))
		}
	}
	return errors.Join(errs...)
}

// Validate checks every geometry, and that each panel set's slots stay on
// screen (inside the shared chrome for sensors) without overlapping.
// It is meant to run once at startup.
func (t *Table) Validate() error {
	var errs []error
	if t.Font == nil {
		errs = append(errs, errors.New("no font"))
	}
	screen := image.Rectangle{Max: t.Screen}

	for _, set := range []struct {
		name  string
		g     Geometry
		slots []image.Point
	}{
		{"food", t.Food, t.FoodSlots},
		{"sensor", t.Sensor, t.SensorSlots},
	} {
		if err := set.g.Check(); err != nil {
			errs = append(errs, fmt.Errorf("%s geometry: %w", set.name, err))
		}
		bounds := set.g.Bounds()
		for i, o := range set.slots {
			b := bounds.Add(o)
			if !b.In(screen) {
				errs = append(errs, fmt.Errorf("%s slot %d %v off screen %v", set.name, i, b, screen))
			}
			if set.g.Family == kind.FamilySensor && t.SensorChrome.Present() && !b.In(t.SensorChrome.Inner()) {
				errs = append(errs, fmt.Errorf("%s slot %d %v outside chrome %v", set.name, i, b, t.SensorChrome.Inner()))
			}
			for j := i + 1; j < len(set.slots); j++ {
				if b.Overlaps(bounds.Add(set.slots[j])) {
					errs = append(errs, fmt.Errorf("%s slots %d and %d overlap", set.name, i, j))
				}
			}
		}
	}
	if t.SensorChrome.Present() && !t.SensorChrome.Rect.In(screen) {
		errs = append(errs, fmt.Errorf("sensor chrome %v off screen", t.SensorChrome.Rect))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("layout: %w", errors.Join(errs...))
}

// Scale returns a copy of t with every offset and size multiplied by n, for
// panels with n times the resolution. The font is swapped for the closest
// larger FreeSans size.
func (t *Table) Scale(n int) *Table {
	if n < 1 {
		n = 1
	}
	out := *t
	out.Screen = t.Screen.Mul(n)
	out.Food = t.Food.scale(n)
	out.Sensor = t.Sensor.scale(n)
	out.FoodSlots = scalePoints(t.FoodSlots, n)
	out.SensorSlots = scalePoints(t.SensorSlots, n)
	out.SensorChrome = t.SensorChrome.scale(n)
	if n > 1 {
		out.Font = fontForScale(n)
	}
	return &out
}

func fontForScale(n int) tinyfont.Fonter {
	switch {
	case n >= 3:
		return &freesans.Bold24pt7b
	case n == 2:
		return &freesans.Bold18pt7b
	}
	return &freesans.Bold9pt7b
}

func (g Geometry) scale(n int) Geometry {
	out := g
	out.Border = g.Border.scale(n)
	out.Icon = scaleRect(g.Icon, n)
	out.Button = g.Button.scale(n)
	out.Fields = make([]Field, len(g.Fields))
	for i, f := range g.Fields {
		f.Box = f.Box.scale(n)
		f.Baseline *= n
		f.Label.At = f.Label.At.Mul(n)
		out.Fields[i] = f
	}
	out.ButtonLabels = make([]Label, len(g.ButtonLabels))
	for i, l := range g.ButtonLabels {
		l.At = l.At.Mul(n)
		out.ButtonLabels[i] = l
	}
	return out
}

func (b Box) scale(n int) Box {
	return Box{Rect: scaleRect(b.Rect, n), Radius: b.Radius * n, Stroke: b.Stroke * n}
}

func scaleRect(r image.Rectangle, n int) image.Rectangle {
	return image.Rectangle{Min: r.Min.Mul(n), Max: r.Max.Mul(n)}
}

func scalePoints(pts []image.Point, n int) []image.Point {
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Mul(n)
	}
	return out
}
