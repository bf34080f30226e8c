package panel

import (
	"errors"

	"kiosk/layout"
)

// Set draws a group of panels that share a screen, optionally on top of a
// shared frame (the sensor overlay).
type Set struct {
	r      *Renderer
	chrome *layout.Box
}

// NewSet returns a set drawing with r. chrome may be nil.
func NewSet(r *Renderer, chrome *layout.Box) *Set {
	return &Set{r: r, chrome: chrome}
}

// Renderer returns the renderer the set draws with.
func (s *Set) Renderer() *Renderer { return s.r }

// RenderAll draws the shared chrome and then builds every panel in order.
// A failing panel does not stop the others; all faults are returned joined.
func (s *Set) RenderAll(panels []Panel) error {
	if s.chrome != nil && s.chrome.Present() {
		st := s.r.t.ChromeStyle()
		st.StrokeWidth = s.chrome.Stroke
		s.r.s.RoundRect(s.chrome.Rect, s.chrome.Radius, st)
		s.r.markDirty(s.chrome.Rect)
	}
	var errs []error
	for _, p := range panels {
		if err := s.r.Build(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// UpdateAll redraws the fields of every panel in order.
func (s *Set) UpdateAll(panels []Panel) error {
	var errs []error
	for _, p := range panels {
		if err := s.r.UpdateFields(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RefreshAll moves each panel from prev[i] to next[i], building the ones
// without a previous state.
func (s *Set) RefreshAll(prev, next []Panel) error {
	var errs []error
	for i, p := range next {
		var err error
		if i < len(prev) {
			err = s.r.Refresh(prev[i], p)
		} else {
			err = s.r.Build(p)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
