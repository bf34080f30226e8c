package layout

import (
	"image"
	"strings"
	"testing"

	"kiosk/kind"
)

func TestDefaultTableValid(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		if err := Default().Scale(n).Validate(); err != nil {
			t.Fatalf("scale %d: %v", n, err)
		}
	}
}

func TestRegionsNeverOverlap(t *testing.T) {
	tbl := Default()
	all := append(append([]kind.Kind{kind.Unknown}, kind.Food...), kind.Sensors...)
	for _, k := range all {
		g := tbl.Geometry(k)
		regions := g.Regions(image.Pt(7, 11))
		var parts []Region
		for _, r := range regions {
			if r.Name == "border" {
				inner := g.Border.Inner().Add(image.Pt(7, 11))
				for _, p := range regions {
					if p.Name != "border" && !p.Rect.In(inner) {
						t.Fatalf("%s: %s %v not inside border interior %v", k, p.Name, p.Rect, inner)
					}
				}
				continue
			}
			parts = append(parts, r)
		}
		if len(parts) < 2 {
			t.Fatalf("%s: only %d parts", k, len(parts))
		}
		for i := range parts {
			for j := i + 1; j < len(parts); j++ {
				if parts[i].Rect.Overlaps(parts[j].Rect) {
					t.Fatalf("%s: %s %v overlaps %s %v", k, parts[i].Name, parts[i].Rect, parts[j].Name, parts[j].Rect)
				}
			}
		}
	}
}

func TestFoodRegionNames(t *testing.T) {
	var names []string
	for _, r := range Default().Geometry(kind.Sandwich).Regions(image.Point{}) {
		names = append(names, r.Name)
	}
	got := strings.Join(names, ",")
	if got != "border,icon,field:amount,field:price,button" {
		t.Fatalf("regions = %s", got)
	}
}

func TestCheckDetectsOverlap(t *testing.T) {
	tbl := Default()
	g := tbl.Food
	g.Fields = append([]Field(nil), g.Fields...)
	g.Fields[0].Box.Rect = image.Rect(40, 25, 90, 55) // runs into the icon
	err := g.Check()
	if err == nil || !strings.Contains(err.Error(), "icon") {
		t.Fatalf("Check = %v, want icon overlap", err)
	}

	g = tbl.Food
	g.Button.Rect = image.Rect(250, 10, 310, 55)
	if err := g.Check(); err == nil || !strings.Contains(err.Error(), "outside border") {
		t.Fatalf("Check = %v, want outside border", err)
	}

	if err := tbl.Food.Check(); err != nil {
		t.Fatalf("default food geometry mutated: %v", err)
	}
}

func TestValidateDetectsSlotProblems(t *testing.T) {
	tbl := Default()
	tbl.FoodSlots = []image.Point{{10, 10}, {10, 50}}
	err := tbl.Validate()
	if err == nil || !strings.Contains(err.Error(), "food slots 0 and 1 overlap") {
		t.Fatalf("Validate = %v", err)
	}

	tbl = Default()
	tbl.SensorSlots = []image.Point{{240, 70}}
	err = tbl.Validate()
	if err == nil || !strings.Contains(err.Error(), "outside chrome") {
		t.Fatalf("Validate = %v", err)
	}

	tbl = Default()
	tbl.Font = nil
	if err := tbl.Validate(); err == nil {
		t.Fatal("expected error without font")
	}
}

func TestStyleRules(t *testing.T) {
	tbl := Default()
	tests := []struct {
		highlighted, purchased bool
		want                   Style
	}{
		{false, false, Style{Black, White, Black, AliceBlue, Black, AliceBlue, Black}},
		{true, false, Style{Orange, LightYellow, Black, AliceBlue, Black, AliceBlue, Black}},
		{false, true, Style{Black, White, Black, AliceBlue, Black, LightGreen, Black}},
		{true, true, Style{Orange, LightYellow, Black, AliceBlue, Black, LightGreen, Black}},
	}
	for _, tt := range tests {
		if got := tbl.Style(tt.highlighted, tt.purchased); got != tt.want {
			t.Fatalf("Style(%v, %v) = %+v, want %+v", tt.highlighted, tt.purchased, got, tt.want)
		}
	}
}

func TestScale(t *testing.T) {
	tbl := Default()
	s := tbl.Scale(2)
	if s.Screen != image.Pt(640, 480) {
		t.Fatalf("screen = %v", s.Screen)
	}
	if s.Food.Fields[1].Box.Rect != image.Rect(280, 50, 420, 110) || s.Food.Fields[1].Box.Stroke != 6 {
		t.Fatalf("price box = %+v", s.Food.Fields[1].Box)
	}
	if s.FoodSlots[2] != image.Pt(20, 320) {
		t.Fatalf("slot = %v", s.FoodSlots[2])
	}
	if tbl.Food.Fields[1].Box.Rect != image.Rect(140, 25, 210, 55) {
		t.Fatal("Scale mutated the source table")
	}
	if s.Font == tbl.Font {
		t.Fatal("expected a larger font")
	}
}

func TestGeometryLookup(t *testing.T) {
	tbl := Default()
	if tbl.Geometry(kind.Humidity).Family != kind.FamilySensor {
		t.Fatal("humidity should use the sensor layout")
	}
	if tbl.Geometry(kind.Pizza).Family != kind.FamilyFood {
		t.Fatal("pizza should use the food layout")
	}
	if tbl.Geometry(kind.Kind(99)).Family != kind.FamilyFood {
		t.Fatal("unknown kinds fall back to the food layout")
	}
	if _, ok := tbl.Sensor.Field(FieldPrice); ok {
		t.Fatal("sensor has no price field")
	}
	if f, ok := tbl.Food.Field(FieldPrice); !ok || f.Label.Text != "Price" {
		t.Fatalf("price field = %+v", f)
	}
	if len(tbl.Slots(kind.FamilySensor)) != 3 || tbl.Slots(kind.FamilyNone) != nil {
		t.Fatal("unexpected slots")
	}
}
