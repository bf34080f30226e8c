// Package textfmt renders numeric panel values into fixed-capacity text.
//
// Values are appended into a stack scratch buffer and copied into a Text of
// at most Capacity bytes. Anything longer is rejected with ErrOverflow and the
// caller decides what to show instead (the panel renderer shows OverflowMarker).
package textfmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Capacity is the largest formatted value, in bytes.
const Capacity = 16

// OverflowMarker is shown in place of a value that cannot be displayed.
const OverflowMarker = "--"

var (
	ErrOverflow   = errors.New("value overflows text buffer")
	ErrNegative   = errors.New("negative value")
	ErrNotFinite  = errors.New("value is not finite")
	ErrNotInteger = errors.New("value is not an integer")
)

// Kind selects the output format.
type Kind uint8

const (
	// Count renders "{n}".
	Count Kind = iota
	// Currency renders "${n.nn}".
	Currency
	// Measurement renders "{n.n}".
	Measurement
)

func (k Kind) String() string {
	switch k {
	case Count:
		return "count"
	case Currency:
		return "currency"
	case Measurement:
		return "measurement"
	}
	return "unknown"
}

// Text is a bounded piece of formatted text.
type Text struct {
	buf [Capacity]byte
	n   uint8
}

func (t Text) String() string { return string(t.buf[:t.n]) }

// Len returns the number of bytes in t.
func (t Text) Len() int { return int(t.n) }

func makeText(b []byte) (Text, error) {
	var t Text
	if len(b) > Capacity {
		return t, fmt.Errorf("textfmt: %d bytes: %w", len(b), ErrOverflow)
	}
	t.n = uint8(copy(t.buf[:], b))
	return t, nil
}

// FormatCount renders a non-negative count as "{n}".
func FormatCount(n int) (Text, error) {
	return formatCount(int64(n))
}

func formatCount(n int64) (Text, error) {
	if n < 0 {
		return Text{}, fmt.Errorf("textfmt: count %d: %w", n, ErrNegative)
	}
	var scratch [32]byte
	return makeText(strconv.AppendInt(scratch[:0], n, 10))
}

// FormatCurrency renders a non-negative amount as "${n.nn}", always with two
// fractional digits and no grouping separators.
func FormatCurrency(v float64) (Text, error) {
	if err := checkFinite(v); err != nil {
		return Text{}, err
	}
	if v < 0 {
		return Text{}, fmt.Errorf("textfmt: price %g: %w", v, ErrNegative)
	}
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	// Values of this magnitude cannot fit; skip the long expansion.
	if v >= 1e15 {
		return Text{}, fmt.Errorf("textfmt: price %g: %w", v, ErrOverflow)
	}
	var scratch [32]byte
	b := append(scratch[:0], '$')
	b = strconv.AppendFloat(b, v, 'f', 2, 64)
	return makeText(b)
}

// FormatMeasurement renders a finite reading as "{n.n}". Negative readings
// are valid.
func FormatMeasurement(v float64) (Text, error) {
	if err := checkFinite(v); err != nil {
		return Text{}, err
	}
	if v == 0 {
		v = 0
	}
	if math.Abs(v) >= 1e15 {
		return Text{}, fmt.Errorf("textfmt: reading %g: %w", v, ErrOverflow)
	}
	var scratch [32]byte
	return makeText(strconv.AppendFloat(scratch[:0], v, 'f', 1, 64))
}

// Format renders v according to k.
func Format(v float64, k Kind) (Text, error) {
	switch k {
	case Count:
		if err := checkFinite(v); err != nil {
			return Text{}, err
		}
		if v != math.Trunc(v) {
			return Text{}, fmt.Errorf("textfmt: count %g: %w", v, ErrNotInteger)
		}
		if v >= math.MaxInt64 {
			return Text{}, fmt.Errorf("textfmt: count %g: %w", v, ErrOverflow)
		}
		if v < 0 {
			return Text{}, fmt.Errorf("textfmt: count %g: %w", v, ErrNegative)
		}
		return formatCount(int64(v))
	case Currency:
		return FormatCurrency(v)
	case Measurement:
		return FormatMeasurement(v)
	}
	return Text{}, fmt.Errorf("textfmt: unknown kind %d", k)
}

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("textfmt: %g: %w", v, ErrNotFinite)
	}
	return nil
}
