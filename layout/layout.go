// Package layout is the geometry and style table for every panel kind.
//
// All offsets are relative to a panel's origin (its top-left slot anchor).
// A Table is a plain value handed to the renderer; nothing here is global, so
// a second display size is just a second Table (see Scale).
package layout

import (
	"image"

	"kiosk/kind"
	"kiosk/surface"
	"kiosk/textfmt"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

// Box is a rounded rectangle part of a panel.
type Box struct {
	Rect   image.Rectangle
	Radius int
	Stroke int
}

// Present reports whether the box is drawn at all.
func (b Box) Present() bool { return !b.Rect.Empty() }

// Inner returns the area left inside the stroke.
func (b Box) Inner() image.Rectangle { return b.Rect.Inset(b.Stroke) }

// Align positions a label horizontally.
type Align uint8

const (
	// AlignLeft treats At.X as the left edge of the text.
	AlignLeft Align = iota
	// AlignCenter treats At.X as the horizontal center of the text.
	AlignCenter
)

// Label is static text. At.Y is the baseline.
type Label struct {
	Text  string
	At    image.Point
	Align Align
}

// FieldID names a dynamic field.
type FieldID uint8

const (
	FieldAmount FieldID = iota + 1
	FieldPrice
	FieldValue
)

func (id FieldID) String() string {
	switch id {
	case FieldAmount:
		return "amount"
	case FieldPrice:
		return "price"
	case FieldValue:
		return "value"
	}
	return "field"
}

// Field is a box holding one formatted value, centered horizontally on the
// box and drawn on Baseline.
type Field struct {
	ID       FieldID
	Format   textfmt.Kind
	Box      Box
	Baseline int
	Label    Label
}

// Geometry is the layout of one panel family.
type Geometry struct {
	Family       kind.Family
	Border       Box
	Icon         image.Rectangle
	Fields       []Field
	Button       Box
	ButtonLabels []Label
}

// Region is a named rectangle in surface coordinates.
type Region struct {
	Name string
	Rect image.Rectangle
}

// Regions returns the panel's parts placed at origin: border (if any), icon,
// one entry per field, and button (if any).
func (g Geometry) Regions(origin image.Point) []Region {
	out := make([]Region, 0, 3+len(g.Fields))
	if g.Border.Present() {
		out = append(out, Region{Name: "border", Rect: g.Border.Rect.Add(origin)})
	}
	if !g.Icon.Empty() {
		out = append(out, Region{Name: "icon", Rect: g.Icon.Add(origin)})
	}
	for _, f := range g.Fields {
		out = append(out, Region{Name: "field:" + f.ID.String(), Rect: f.Box.Rect.Add(origin)})
	}
	if g.Button.Present() {
		out = append(out, Region{Name: "button", Rect: g.Button.Rect.Add(origin)})
	}
	return out
}

// Bounds returns the smallest rectangle covering every part, relative to the
// origin.
func (g Geometry) Bounds() image.Rectangle {
	var b image.Rectangle
	for _, r := range g.Regions(image.Point{}) {
		b = b.Union(r.Rect)
	}
	return b
}

// Field returns the field with the given id.
func (g Geometry) Field(id FieldID) (Field, bool) {
	for _, f := range g.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// Table holds the geometry, slot origins and palette of one display.
type Table struct {
	Screen image.Point

	Food   Geometry
	Sensor Geometry

	FoodSlots    []image.Point
	SensorSlots  []image.Point
	SensorChrome Box

	Palette Palette
	Font    tinyfont.Fonter
}

// Geometry returns the layout for k. Kinds without a family use the food
// layout, which matches how an unrecognized item name still got a tile
// (without an icon).
func (t *Table) Geometry(k kind.Kind) Geometry {
	if k.Family() == kind.FamilySensor {
		return t.Sensor
	}
	return t.Food
}

// Slots returns the panel origins of a family's panel set, in render order.
func (t *Table) Slots(f kind.Family) []image.Point {
	switch f {
	case kind.FamilyFood:
		return t.FoodSlots
	case kind.FamilySensor:
		return t.SensorSlots
	}
	return nil
}

// TextStyle returns the style for text of the given color.
func (t *Table) TextStyle(c surface.Color) surface.TextStyle {
	return surface.TextStyle{Font: t.Font, Color: c}
}

// Default returns the table for the 320x240 kiosk panel.
func Default() *Table {
	return &Table{
		Screen: image.Pt(320, 240),

		Food: Geometry{
			Family: kind.FamilyFood,
			Border: Box{Rect: image.Rect(0, 0, 300, 65), Radius: 10, Stroke: 5},
			Icon:   image.Rect(10, 10, 55, 55),
			Fields: []Field{
				{
					ID:       FieldAmount,
					Format:   textfmt.Count,
					Box:      Box{Rect: image.Rect(80, 25, 130, 55), Radius: 5, Stroke: 3},
					Baseline: 46,
					Label:    Label{Text: "Amount", At: image.Pt(105, 19), Align: AlignCenter},
				},
				{
					ID:       FieldPrice,
					Format:   textfmt.Currency,
					Box:      Box{Rect: image.Rect(140, 25, 210, 55), Radius: 5, Stroke: 3},
					Baseline: 46,
					Label:    Label{Text: "Price", At: image.Pt(175, 19), Align: AlignCenter},
				},
			},
			Button: Box{Rect: image.Rect(230, 10, 290, 55), Radius: 5, Stroke: 3},
			ButtonLabels: []Label{
				{Text: "BUY", At: image.Pt(260, 30), Align: AlignCenter},
				{Text: "1", At: image.Pt(260, 49), Align: AlignCenter},
			},
		},

		Sensor: Geometry{
			Family: kind.FamilySensor,
			Icon:   image.Rect(3, 0, 67, 64),
			Fields: []Field{
				{
					ID:       FieldValue,
					Format:   textfmt.Measurement,
					Box:      Box{Rect: image.Rect(0, 70, 70, 105), Radius: 10, Stroke: 5},
					Baseline: 93,
				},
			},
		},

		FoodSlots:    []image.Point{{10, 10}, {10, 85}, {10, 160}},
		SensorSlots:  []image.Point{{40, 70}, {125, 70}, {210, 70}},
		SensorChrome: Box{Rect: image.Rect(19, 20, 299, 220), Radius: 10, Stroke: 5},

		Palette: DefaultPalette(),
		Font:    &freesans.Bold9pt7b,
	}
}
