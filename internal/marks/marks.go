// Package marks renders printer cut marks as raw PDF content-stream
// operators. The output is pure bytes: it carries no reference to any
// document, so the same trim rectangles always produce the same marks.
package marks

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/danh-tc/n-ups/internal/unit"
)

// Config controls how cut marks are stroked. All lengths are points; the
// caller resolves millimeter configuration before calling in.
type Config struct {
	// Length of one tick.
	Length float64
	// StrokeWidth of the tick lines.
	StrokeWidth float64
	// Offset is extra outward clearance beyond the bleed.
	Offset float64
	// CMYK strokes marks as 100% K instead of device-gray black.
	CMYK bool
}

// Boundaries returns the unique vertical (x) and horizontal (y) trim
// boundary coordinates of the given rectangles, sorted ascending. Cells that
// share an edge contribute that coordinate once: an RxC grid of touching
// uniform cells yields C+1 vertical and R+1 horizontal boundaries.
func Boundaries(trims []unit.Rect) (xs, ys []float64) {
	for _, r := range trims {
		xs = append(xs, r.X, r.MaxX())
		ys = append(ys, r.Y, r.MaxY())
	}
	return uniqueSorted(xs), uniqueSorted(ys)
}

// Ops returns the drawing operators for perimeter "I" cut marks: one tick
// pair per unique vertical boundary (above and below the grid) and per
// unique horizontal boundary (left and right of the grid), offset outward by
// the bleed plus the configured offset. The whole batch is wrapped in q/Q so
// cap, join, width and color never leak into other page content. Zero trim
// rectangles produce no output.
func Ops(trims []unit.Rect, bleed unit.Insets, cfg Config) []byte {
	if len(trims) == 0 || cfg.Length <= 0 {
		return nil
	}

	xs, ys := Boundaries(trims)

	minX, maxX := xs[0], xs[len(xs)-1]
	minY, maxY := ys[0], ys[len(ys)-1]

	b := bleed.Clamped()
	off := unit.Clamp(cfg.Offset)
	w := unit.Clamp(cfg.StrokeWidth)

	var buf bytes.Buffer
	buf.WriteString("q 0 J 0 j ")
	if cfg.CMYK {
		buf.WriteString("0 0 0 1 K ")
	} else {
		buf.WriteString("0 G ")
	}
	fmt.Fprintf(&buf, "%.4f w ", w)

	topY := maxY + b.Top + off
	botY := minY - b.Bottom - off
	for _, x := range xs {
		line(&buf, x, topY, x, topY+cfg.Length)
		line(&buf, x, botY, x, botY-cfg.Length)
	}

	leftX := minX - b.Left - off
	rightX := maxX + b.Right + off
	for _, y := range ys {
		line(&buf, leftX, y, leftX-cfg.Length, y)
		line(&buf, rightX, y, rightX+cfg.Length, y)
	}

	buf.WriteString("Q")
	return buf.Bytes()
}

func line(buf *bytes.Buffer, x1, y1, x2, y2 float64) {
	fmt.Fprintf(buf, "%.4f %.4f m %.4f %.4f l S ", x1, y1, x2, y2)
}

// uniqueSorted sorts the coordinates and collapses values that coincide
// within a hundredth of a point, so floating-point jitter between cells that
// share an edge never doubles a mark.
func uniqueSorted(vals []float64) []float64 {
	sort.Float64s(vals)
	out := vals[:0]
	var last float64
	for i, v := range vals {
		if i > 0 && math.Round(v*100) == math.Round(last*100) {
			continue
		}
		out = append(out, v)
		last = v
	}
	return out
}
