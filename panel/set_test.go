package panel

import (
	"errors"
	"image"
	"math"
	"testing"

	"kiosk/hal"
	"kiosk/icon"
	"kiosk/kind"
	"kiosk/layout"
	"kiosk/surface"
)

func nan() float64 { return math.NaN() }

func foodPanels(t *layout.Table) []Panel {
	out := make([]Panel, 0, len(t.FoodSlots))
	for i, o := range t.FoodSlots {
		out = append(out, Panel{Kind: kind.Food[i], Origin: o, Quantity: i + 1, Price: 1.25})
	}
	return out
}

func TestRenderAllContinuesAfterFailure(t *testing.T) {
	r, _, faults := newRecording(brokenFor(kind.Sandwich))
	set := NewSet(r, nil)
	panels := foodPanels(r.Table())

	err := set.RenderAll(panels)
	if !errors.Is(err, errBroken) {
		t.Fatalf("RenderAll err=%v want icon failure", err)
	}
	if len(*faults) != 1 || (*faults)[0].Kind != kind.Sandwich {
		t.Fatalf("faults=%v want one sandwich fault", *faults)
	}
	for _, p := range panels {
		if r.State(p.Origin) != Built {
			t.Fatalf("%s not built", p)
		}
	}
}

func TestRenderAllDrawsChromeFirst(t *testing.T) {
	r, rec, _ := newRecording(nil)
	tbl := r.Table()
	set := NewSet(r, &tbl.SensorChrome)

	panels := make([]Panel, 0, len(kind.Sensors))
	for i, k := range kind.Sensors {
		panels = append(panels, Panel{Kind: k, Origin: tbl.SensorSlots[i], Value: float64(i) * 10.5})
	}
	if err := set.RenderAll(panels); err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	if op := rec.Ops[0]; op.Kind != surface.OpRoundRect || op.Rect != tbl.SensorChrome.Rect {
		t.Fatalf("first op=%+v want sensor chrome", op)
	}
	if got := rec.Texts(); len(got) != 3 || got[0] != "0.0" || got[1] != "10.5" || got[2] != "21.0" {
		t.Fatalf("texts=%q", got)
	}
}

func TestUpdateAll(t *testing.T) {
	r, rec, _ := newRecording(nil)
	set := NewSet(r, nil)
	panels := foodPanels(r.Table())

	if err := set.UpdateAll(panels); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("UpdateAll before RenderAll err=%v want ErrNotBuilt", err)
	}
	if err := set.RenderAll(panels); err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	r.TakeDirty()
	rec.Reset()

	for i := range panels {
		panels[i].Quantity += 10
	}
	if err := set.UpdateAll(panels); err != nil {
		t.Fatalf("UpdateAll: %v", err)
	}
	if got := rec.Texts(); len(got) != 6 || got[0] != "11" || got[2] != "12" || got[4] != "13" {
		t.Fatalf("texts=%q", got)
	}
	if dirty := r.TakeDirty(); len(dirty) != 6 {
		t.Fatalf("dirty=%v want 6 field boxes", dirty)
	}
}

func TestRefreshAll(t *testing.T) {
	r, _, _ := newRecording(nil)
	set := NewSet(r, nil)
	next := foodPanels(r.Table())

	if err := set.RefreshAll(nil, next); err != nil {
		t.Fatalf("RefreshAll: %v", err)
	}
	prev := append([]Panel(nil), next...)
	next[1].Price = 3
	next[2].Highlighted = true
	if err := set.RefreshAll(prev, next); err != nil {
		t.Fatalf("RefreshAll: %v", err)
	}
	want := []State{Updated, Updated, Built}
	for i, p := range next {
		if got := r.State(p.Origin); got != want[i] {
			t.Fatalf("panel %d state=%v want %v", i, got, want[i])
		}
	}
}

func TestLogDiagnostics(t *testing.T) {
	var lines []string
	l := logFunc(func(s string) { lines = append(lines, s) })
	d := Tee(LogDiagnostics{L: l}, nil)
	d.Report(&Fault{Kind: kind.Pizza, Origin: image.Pt(10, 85), Part: "icon", Err: errBroken})
	if len(lines) != 1 || lines[0] != "panel pizza@10,85 icon: broken asset" {
		t.Fatalf("lines=%q", lines)
	}
}

type logFunc func(s string)

func (fn logFunc) WriteLineString(s string) { fn(s) }
func (fn logFunc) WriteLineBytes(b []byte)  { fn(string(b)) }

var _ hal.Logger = logFunc(nil)
var _ icon.Source = iconFunc(nil)
