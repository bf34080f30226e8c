// Package panel draws food and sensor tiles onto a surface.
//
// A tile is built once (border, icon, labels, field boxes, button) and then
// only its fields are redrawn as values change. Field updates repaint the
// field box before the new text, so a shorter value never leaves glyphs of
// the longer one behind.
package panel

import (
	"fmt"
	"image"

	"kiosk/kind"
	"kiosk/layout"
	"kiosk/textfmt"
)

// Panel is a snapshot of one tile's state. The caller owns it; the renderer
// only reads it.
type Panel struct {
	Kind   kind.Kind
	Origin image.Point

	// Food.
	Quantity int
	Price    float64

	// Sensor.
	Value float64

	Highlighted bool
	Purchased   bool
}

// NeedsBuild reports whether going from prev to next changes anything outside
// the dynamic fields. Quantity, Price and Value live in fields; everything
// else selects chrome (geometry, icon, border colors, button fill).
func NeedsBuild(prev, next Panel) bool {
	return prev.Kind != next.Kind ||
		prev.Origin != next.Origin ||
		prev.Highlighted != next.Highlighted ||
		prev.Purchased != next.Purchased
}

func (p Panel) String() string {
	return fmt.Sprintf("%s@%d,%d", p.Kind, p.Origin.X, p.Origin.Y)
}

// fieldText formats the value shown in f.
func (p Panel) fieldText(f layout.Field) (textfmt.Text, error) {
	switch f.ID {
	case layout.FieldAmount:
		if f.Format == textfmt.Count {
			return textfmt.FormatCount(p.Quantity)
		}
		return textfmt.Format(float64(p.Quantity), f.Format)
	case layout.FieldPrice:
		return textfmt.Format(p.Price, f.Format)
	case layout.FieldValue:
		return textfmt.Format(p.Value, f.Format)
	}
	return textfmt.Text{}, fmt.Errorf("panel: no value for field %v", f.ID)
}
