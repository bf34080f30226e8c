package layout

import "kiosk/surface"

// Named colors, in RGB565.
var (
	Black       = surface.RGB(0x00, 0x00, 0x00)
	White       = surface.RGB(0xFF, 0xFF, 0xFF)
	AliceBlue   = surface.RGB(0xF0, 0xF8, 0xFF)
	LightGreen  = surface.RGB(0x90, 0xEE, 0x90)
	Orange      = surface.RGB(0xFF, 0xA5, 0x00)
	LightYellow = surface.RGB(0xFF, 0xFF, 0xE0)
)

// Palette is the set of colors the style rules pick from.
type Palette struct {
	Stroke          surface.Color
	Background      surface.Color
	HighlightStroke surface.Color
	HighlightFill   surface.Color
	Field           surface.Color
	Button          surface.Color
	Purchased       surface.Color
	Text            surface.Color
}

func DefaultPalette() Palette {
	return Palette{
		Stroke:          Black,
		Background:      White,
		HighlightStroke: Orange,
		HighlightFill:   LightYellow,
		Field:           AliceBlue,
		Button:          AliceBlue,
		Purchased:       LightGreen,
		Text:            Black,
	}
}

// Style is the set of colors one panel is drawn with.
type Style struct {
	BorderStroke surface.Color
	BorderFill   surface.Color
	FieldStroke  surface.Color
	FieldFill    surface.Color
	ButtonStroke surface.Color
	ButtonFill   surface.Color
	Text         surface.Color
}

// Style derives a panel's colors from its state. It is recomputed on every
// render and holds no state of its own.
func (t *Table) Style(highlighted, purchased bool) Style {
	p := t.Palette
	st := Style{
		BorderStroke: p.Stroke,
		BorderFill:   p.Background,
		FieldStroke:  p.Stroke,
		FieldFill:    p.Field,
		ButtonStroke: p.Stroke,
		ButtonFill:   p.Button,
		Text:         p.Text,
	}
	if highlighted {
		st.BorderStroke = p.HighlightStroke
		st.BorderFill = p.HighlightFill
	}
	if purchased {
		st.ButtonFill = p.Purchased
	}
	return st
}

// ChromeStyle is the style of shared chrome such as the sensor frame.
func (t *Table) ChromeStyle() surface.Style {
	return surface.Style{
		Fill:        t.Palette.Background,
		Stroke:      t.Palette.Stroke,
		StrokeWidth: t.SensorChrome.Stroke,
	}
}
