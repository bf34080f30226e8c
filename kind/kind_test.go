package kind

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"hotdog", Hotdog, true},
		{"Sandwich", Sandwich, true},
		{"Energy Drink", EnergyDrink, true},
		{"energy_drink", EnergyDrink, true},
		{" humidity ", Humidity, true},
		{"unknown", Unknown, false},
		{"burger", Unknown, false},
		{"", Unknown, false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("Parse(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFamilies(t *testing.T) {
	for _, k := range Food {
		if k.Family() != FamilyFood {
			t.Fatalf("%s: family %s", k, k.Family())
		}
	}
	for _, k := range Sensors {
		if k.Family() != FamilySensor {
			t.Fatalf("%s: family %s", k, k.Family())
		}
	}
	if Unknown.Family() != FamilyNone || Kind(200).Family() != FamilyNone {
		t.Fatal("expected no family for invalid kinds")
	}
	if Kind(200).Valid() || Unknown.Valid() {
		t.Fatal("expected invalid")
	}
	if Kind(200).String() != "unknown" {
		t.Fatalf("String = %q", Kind(200).String())
	}
}
