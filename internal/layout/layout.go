// Package layout computes how many copies of a fixed-size item fit on a
// sheet of paper and where each copy sits.
package layout

import (
	"math"

	"github.com/danh-tc/n-ups/internal/unit"
)

// Paper describes the sheet being printed on. All lengths are millimeters.
type Paper struct {
	Width, Height float64
	Margin        unit.Insets
	// GapX and GapY are inter-item gaps, contributed to the cell math but
	// typically zero.
	GapX, GapY float64
	// CutMark is the clearance band consumed inside the margin on every
	// edge so that cut marks never collide with placed content.
	CutMark float64
}

// Item describes one imposed piece: the trim size plus the gutter added
// around the trim to form the cell footprint. All lengths are millimeters.
type Item struct {
	Width, Height float64
	Gutter        unit.Insets
}

// Result is the derived grid. It is recomputed whenever paper or item
// configuration changes, never persisted.
type Result struct {
	Rows, Cols, Items  int
	TagW, TagH         float64 // footprint, mm
	PrintedW, PrintedH float64 // usable area after margins and clearance, mm
}

// Compute returns the grid of items that fit on paper. It never fails:
// negative and non-finite inputs are clamped to zero, so a bad configuration
// degrades to an empty grid instead of crashing the exporter.
func Compute(paper Paper, item Item) Result {
	pw := unit.Clamp(paper.Width)
	ph := unit.Clamp(paper.Height)
	m := paper.Margin.Clamped()
	cut := unit.Clamp(paper.CutMark)
	gapX := unit.Clamp(paper.GapX)
	gapY := unit.Clamp(paper.GapY)

	printedW := unit.Clamp(pw - m.Left - m.Right - 2*cut)
	printedH := unit.Clamp(ph - m.Top - m.Bottom - 2*cut)

	g := item.Gutter.Clamped()
	tagW := unit.Clamp(item.Width) + g.Left + g.Right
	tagH := unit.Clamp(item.Height) + g.Top + g.Bottom

	var rows, cols int
	if tagW > 0 {
		cols = int(math.Floor((printedW + gapX) / (tagW + gapX)))
	}
	if tagH > 0 {
		rows = int(math.Floor((printedH + gapY) / (tagH + gapY)))
	}
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}

	return Result{
		Rows:     rows,
		Cols:     cols,
		Items:    rows * cols,
		TagW:     tagW,
		TagH:     tagH,
		PrintedW: printedW,
		PrintedH: printedH,
	}
}

// Cell is one grid position with its trim rectangle and the bleed-inclusive
// outer rectangle, both in points.
type Cell struct {
	Row, Col    int
	Trim, Outer unit.Rect
}

// Grid places the computed grid on the page and returns its cells in
// row-major order with row 0 at the top of the sheet.
//
// The grid is horizontally centered within the printed area. Vertically it
// is anchored so its bottom edge sits at marginBottom + cutMark, the top of
// the bottom clearance band.
func Grid(paper Paper, item Item, res Result) []Cell {
	if res.Rows <= 0 || res.Cols <= 0 {
		return nil
	}

	m := paper.Margin.Clamped()
	cut := unit.Clamp(paper.CutMark)
	g := item.Gutter.Clamped().ToPt()

	footW := unit.MmToPt(res.TagW)
	footH := unit.MmToPt(res.TagH)
	gapX := unit.MmToPt(unit.Clamp(paper.GapX))
	gapY := unit.MmToPt(unit.Clamp(paper.GapY))

	originX := unit.MmToPt(m.Left + cut)
	baseline := unit.MmToPt(m.Bottom + cut)

	gridW := float64(res.Cols)*footW + float64(res.Cols-1)*gapX
	startX := originX + (unit.MmToPt(res.PrintedW)-gridW)/2

	cells := make([]Cell, 0, res.Rows*res.Cols)
	for r := 0; r < res.Rows; r++ {
		for c := 0; c < res.Cols; c++ {
			outer := unit.Rect{
				X: startX + float64(c)*(footW+gapX),
				Y: baseline + float64(res.Rows-1-r)*(footH+gapY),
				W: footW,
				H: footH,
			}
			cells = append(cells, Cell{
				Row:   r,
				Col:   c,
				Trim:  outer.Inset(g),
				Outer: outer,
			})
		}
	}
	return cells
}
