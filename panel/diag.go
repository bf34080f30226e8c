package panel

import (
	"errors"
	"fmt"
	"image"

	"kiosk/hal"
	"kiosk/kind"
)

var (
	// ErrNotBuilt is returned by UpdateFields for an origin whose chrome was
	// never drawn, or was drawn for another kind.
	ErrNotBuilt = errors.New("panel: not built")
)

// Fault is a local rendering failure. The pass that hit it carries on.
type Fault struct {
	Kind   kind.Kind
	Origin image.Point
	// Part is the region name, as in layout.Region ("icon", "field:price").
	Part string
	Err  error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("panel %s@%d,%d %s: %v", f.Kind, f.Origin.X, f.Origin.Y, f.Part, f.Err)
}

func (f *Fault) Unwrap() error { return f.Err }

// Diagnostics receives faults as they happen.
type Diagnostics interface {
	Report(f *Fault)
}

// DiagnosticsFunc adapts a function to Diagnostics.
type DiagnosticsFunc func(f *Fault)

func (fn DiagnosticsFunc) Report(f *Fault) { fn(f) }

// Discard drops every fault.
var Discard Diagnostics = DiagnosticsFunc(func(*Fault) {})

// LogDiagnostics writes one log line per fault.
type LogDiagnostics struct {
	L hal.Logger
}

func (d LogDiagnostics) Report(f *Fault) {
	if d.L == nil || f == nil {
		return
	}
	d.L.WriteLineString(f.Error())
}

// Tee reports every fault to each non-nil sink in order.
func Tee(sinks ...Diagnostics) Diagnostics {
	return DiagnosticsFunc(func(f *Fault) {
		for _, s := range sinks {
			if s != nil {
				s.Report(f)
			}
		}
	})
}
