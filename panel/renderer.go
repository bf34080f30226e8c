package panel

import (
	"errors"
	"fmt"
	"image"

	"kiosk/icon"
	"kiosk/kind"
	"kiosk/layout"
	"kiosk/surface"
	"kiosk/textfmt"
)

// State is the lifecycle of one panel origin.
type State uint8

const (
	Unbuilt State = iota
	Built
	Updated
)

func (s State) String() string {
	switch s {
	case Unbuilt:
		return "unbuilt"
	case Built:
		return "built"
	case Updated:
		return "updated"
	}
	return "state?"
}

type slot struct {
	kind  kind.Kind
	state State
}

// Renderer draws panels onto a surface using one layout table.
//
// It remembers which origins have been built and which rectangles it has
// touched since the last TakeDirty, nothing else. Not safe for concurrent use.
type Renderer struct {
	s     surface.Surface
	t     *layout.Table
	icons icon.Source
	diag  Diagnostics

	slots map[image.Point]slot
	dirty []image.Rectangle
}

// NewRenderer returns a renderer. A nil icons source draws no icons; a nil
// diag discards faults (they are still returned).
func NewRenderer(s surface.Surface, t *layout.Table, icons icon.Source, diag Diagnostics) *Renderer {
	if diag == nil {
		diag = Discard
	}
	return &Renderer{
		s:     s,
		t:     t,
		icons: icons,
		diag:  diag,
		slots: make(map[image.Point]slot),
	}
}

// Table returns the layout table the renderer draws with.
func (r *Renderer) Table() *layout.Table { return r.t }

// Surface returns the surface the renderer draws on.
func (r *Renderer) Surface() surface.Surface { return r.s }

// State reports the lifecycle state of the panel at origin.
func (r *Renderer) State(origin image.Point) State {
	return r.slots[origin].state
}

// Forget marks origin as unbuilt, e.g. after the screen was cleared.
func (r *Renderer) Forget(origin image.Point) {
	delete(r.slots, origin)
}

// Reset forgets every origin and drops pending dirty rectangles.
func (r *Renderer) Reset() {
	clear(r.slots)
	r.dirty = r.dirty[:0]
}

// TakeDirty returns the surface rectangles drawn since the previous call.
func (r *Renderer) TakeDirty() []image.Rectangle {
	out := r.dirty
	r.dirty = nil
	return out
}

func (r *Renderer) markDirty(rect image.Rectangle) {
	if !rect.Empty() {
		r.dirty = append(r.dirty, rect)
	}
}

// Build draws the whole panel: border, icon, labels, field boxes and button,
// then the field values. Local failures (icon decode, value overflow) are
// reported to the diagnostics sink and returned joined; drawing always runs
// to the end.
func (r *Renderer) Build(p Panel) error {
	g := r.t.Geometry(p.Kind)
	st := r.t.Style(p.Highlighted, p.Purchased)
	o := p.Origin
	var errs []error

	if g.Border.Present() {
		r.box(g.Border, o, st.BorderFill, st.BorderStroke)
	}
	if err := r.icon(p, g); err != nil {
		errs = append(errs, err)
	}
	for _, f := range g.Fields {
		if f.Label.Text != "" {
			r.label(f.Label, o, st.Text)
		}
		r.box(f.Box, o, st.FieldFill, st.FieldStroke)
	}
	if g.Button.Present() {
		r.box(g.Button, o, st.ButtonFill, st.ButtonStroke)
		for _, l := range g.ButtonLabels {
			r.label(l, o, st.Text)
		}
	}

	for _, f := range g.Fields {
		if err := r.fieldText(p, f, st); err != nil {
			errs = append(errs, err)
		}
	}

	r.slots[o] = slot{kind: p.Kind, state: Built}
	r.markDirty(g.Bounds().Add(o))
	return errors.Join(errs...)
}

// UpdateFields redraws only the fields of an already built panel: each field
// box is repainted, then its new value drawn on top. Border, icon and button
// are left alone, so a change of Purchased or Highlighted needs Build.
func (r *Renderer) UpdateFields(p Panel) error {
	sl, ok := r.slots[p.Origin]
	if !ok || sl.state == Unbuilt {
		return fmt.Errorf("%w: %s", ErrNotBuilt, p)
	}
	if sl.kind != p.Kind {
		return fmt.Errorf("%w: %s (built as %s)", ErrNotBuilt, p, sl.kind)
	}

	g := r.t.Geometry(p.Kind)
	st := r.t.Style(p.Highlighted, p.Purchased)
	var errs []error
	for _, f := range g.Fields {
		r.box(f.Box, p.Origin, st.FieldFill, st.FieldStroke)
		if err := r.fieldText(p, f, st); err != nil {
			errs = append(errs, err)
		}
		r.markDirty(f.Box.Rect.Add(p.Origin))
	}
	r.slots[p.Origin] = slot{kind: p.Kind, state: Updated}
	return errors.Join(errs...)
}

// Refresh brings the panel from prev to next with the least drawing:
// UpdateFields when only values changed and the origin is built, Build
// otherwise.
func (r *Renderer) Refresh(prev, next Panel) error {
	if r.State(next.Origin) == Unbuilt || NeedsBuild(prev, next) {
		return r.Build(next)
	}
	return r.UpdateFields(next)
}

func (r *Renderer) box(b layout.Box, o image.Point, fill, stroke surface.Color) {
	r.s.RoundRect(b.Rect.Add(o), b.Radius, surface.Style{
		Fill:        fill,
		Stroke:      stroke,
		StrokeWidth: b.Stroke,
	})
}

func (r *Renderer) label(l layout.Label, o image.Point, c surface.Color) {
	at := l.At.Add(o)
	if l.Align == layout.AlignCenter {
		at.X -= surface.TextWidth(r.t.Font, l.Text) / 2
	}
	r.s.Text(l.Text, at, r.t.TextStyle(c))
}

func (r *Renderer) icon(p Panel, g layout.Geometry) error {
	a := icon.Select(p.Kind, p.Highlighted)
	if a == icon.None || r.icons == nil || g.Icon.Empty() {
		return nil
	}
	img, err := r.icons.Image(a)
	if err != nil {
		return r.fault(p, "icon", err)
	}
	if img == nil {
		return nil
	}
	// Center the bitmap in the icon box; a larger table keeps native size.
	rect := g.Icon.Add(p.Origin)
	sz := img.Bounds().Size()
	at := rect.Min
	if dx := rect.Dx() - sz.X; dx > 0 {
		at.X += dx / 2
	}
	if dy := rect.Dy() - sz.Y; dy > 0 {
		at.Y += dy / 2
	}
	r.s.Image(img, at)
	return nil
}

// fieldText draws the value of f centered in its box. A value that cannot be
// formatted or is wider than the box interior is shown as the overflow marker.
func (r *Renderer) fieldText(p Panel, f layout.Field, st layout.Style) error {
	part := "field:" + f.ID.String()
	inner := f.Box.Inner().Add(p.Origin)

	s := textfmt.OverflowMarker
	var ferr error
	txt, err := p.fieldText(f)
	switch {
	case err != nil:
		ferr = r.fault(p, part, err)
	case surface.TextWidth(r.t.Font, txt.String()) > inner.Dx():
		ferr = r.fault(p, part, fmt.Errorf("%w: %q wider than %dpx", textfmt.ErrOverflow, txt.String(), inner.Dx()))
	default:
		s = txt.String()
	}

	w := surface.TextWidth(r.t.Font, s)
	at := image.Pt(inner.Min.X+(inner.Dx()-w)/2, p.Origin.Y+f.Baseline)
	r.s.Text(s, at, r.t.TextStyle(st.Text))
	return ferr
}

func (r *Renderer) fault(p Panel, part string, err error) error {
	f := &Fault{Kind: p.Kind, Origin: p.Origin, Part: part, Err: err}
	r.diag.Report(f)
	return f
}
