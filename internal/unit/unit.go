// Package unit provides millimeter/point conversion and the rectangle
// geometry shared by the layout calculator, the cut-mark renderer and the
// page compositor. Everything here is a pure function.
package unit

import "math"

// ptPerMm is the fixed conversion ratio between millimeters and the PDF's
// native point unit (1/72 inch).
const ptPerMm = 72.0 / 25.4

// MmToPt converts millimeters to points.
func MmToPt(mm float64) float64 {
	return mm * ptPerMm
}

// PtToMm converts points to millimeters.
func PtToMm(pt float64) float64 {
	return pt / ptPerMm
}

// Clamp maps negative and non-finite values to 0. Geometry never errors on
// bad input; it degrades instead.
func Clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Rect is an axis-aligned rectangle in PDF user space: points, origin at the
// lower-left corner of the page.
type Rect struct {
	X, Y, W, H float64
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the top edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Insets holds per-side distances. Used for paper margins, item gutters and
// bleed, in whatever unit the caller is working in.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Clamped returns the insets with every side clamped to a usable value.
func (in Insets) Clamped() Insets {
	return Insets{
		Top:    Clamp(in.Top),
		Right:  Clamp(in.Right),
		Bottom: Clamp(in.Bottom),
		Left:   Clamp(in.Left),
	}
}

// ToPt converts millimeter insets to points.
func (in Insets) ToPt() Insets {
	return Insets{
		Top:    MmToPt(in.Top),
		Right:  MmToPt(in.Right),
		Bottom: MmToPt(in.Bottom),
		Left:   MmToPt(in.Left),
	}
}

// Expand grows r outward by the given insets on each side. A trim rectangle
// expanded by its bleed yields the outer rectangle.
func (r Rect) Expand(in Insets) Rect {
	return Rect{
		X: r.X - in.Left,
		Y: r.Y - in.Bottom,
		W: r.W + in.Left + in.Right,
		H: r.H + in.Top + in.Bottom,
	}
}

// Inset shrinks r inward by the given insets on each side; the inverse of
// Expand.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Bottom,
		W: r.W - in.Left - in.Right,
		H: r.H - in.Top - in.Bottom,
	}
}
