package api

import (
	"errors"
	"fmt"

	"github.com/danh-tc/n-ups/internal/layout"
	"github.com/danh-tc/n-ups/internal/unit"
)

// Defaults resolved in one place so call sites cannot diverge.
const (
	// DefaultCutMark is the cut-mark length and clearance in millimeters
	// when the paper does not specify one.
	DefaultCutMark = 3.0
	// DefaultStrokeWidth is the cut-mark stroke width in points.
	DefaultStrokeWidth = 0.5
)

// ErrSlotCount reports a plan whose slot array does not match its grid. This
// is the primary input-validation gate for an export.
var ErrSlotCount = errors.New("slot count does not match layout")

// PaperConfig describes the target sheet. All lengths are millimeters.
type PaperConfig struct {
	Width, Height float64

	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64

	// GapX and GapY are inter-item gaps, typically zero.
	GapX, GapY float64

	// Duplex marks the paper as printed on both sides.
	Duplex bool

	// CutMark is the cut-mark length and clearance; nil means
	// DefaultCutMark.
	CutMark *float64
}

func (p PaperConfig) cutMark() float64 {
	if p.CutMark != nil {
		return unit.Clamp(*p.CutMark)
	}
	return DefaultCutMark
}

func (p PaperConfig) layoutPaper() layout.Paper {
	return layout.Paper{
		Width:  p.Width,
		Height: p.Height,
		Margin: unit.Insets{
			Top:    p.MarginTop,
			Right:  p.MarginRight,
			Bottom: p.MarginBottom,
			Left:   p.MarginLeft,
		},
		GapX:    p.GapX,
		GapY:    p.GapY,
		CutMark: p.cutMark(),
	}
}

// ItemConfig describes one imposed piece: the trim size plus the gutter
// added around the trim to form the cell footprint. Millimeters.
type ItemConfig struct {
	Width, Height float64

	GutterTop    float64
	GutterRight  float64
	GutterBottom float64
	GutterLeft   float64

	// Rotation is the default rotation in degrees applied to every slot
	// that carries no override. Must be a multiple of 90.
	Rotation int
}

func (i ItemConfig) gutter() unit.Insets {
	return unit.Insets{
		Top:    i.GutterTop,
		Right:  i.GutterRight,
		Bottom: i.GutterBottom,
		Left:   i.GutterLeft,
	}
}

func (i ItemConfig) layoutItem() layout.Item {
	return layout.Item{
		Width:  i.Width,
		Height: i.Height,
		Gutter: i.gutter(),
	}
}

// MarkConfig controls the cut marks drawn against every trim boundary.
type MarkConfig struct {
	// Length in millimeters; nil means the paper's cut-mark length.
	Length *float64
	// StrokeWidth in points; zero means DefaultStrokeWidth.
	StrokeWidth float64
	// Offset is extra outward clearance beyond the bleed, millimeters.
	Offset float64
}

// ColorConfig controls color handling.
type ColorConfig struct {
	// PreserveCMYK strokes cut marks as 100% K. Placed page content keeps
	// its native color spaces either way, since sources are embedded, not
	// re-rendered.
	PreserveCMYK bool
}

// SlotSource references one page of a source PDF placed into a grid cell.
type SlotSource struct {
	PDF  []byte
	Page int // 0-based page index into PDF
	// Rotation overrides the slot-level default when non-nil. Degrees,
	// multiple of 90.
	Rotation *int
}

// Metadata is the optional annotation drawn near the printed-area origin.
type Metadata struct {
	Date        string
	Customer    string
	Description string
	// Display enables the annotation; it is drawn only when at least one
	// field is non-empty.
	Display bool
}

func (m Metadata) line() string {
	if !m.Display {
		return ""
	}
	var line string
	for _, part := range []string{m.Date, m.Customer, m.Description} {
		if part == "" {
			continue
		}
		if line != "" {
			line += "  "
		}
		line += part
	}
	return line
}

// NUpPlan is the full description of one exported sheet.
type NUpPlan struct {
	Paper PaperConfig
	Item  ItemConfig

	// Rows and Cols fix the grid; when either is zero the grid is
	// auto-computed from Paper and Item.
	Rows, Cols int

	Marks MarkConfig
	Color ColorConfig

	// Slots lists the per-cell sources in row-major order. Its length
	// must equal rows*cols; nil entries leave their cell empty.
	Slots []*SlotSource

	Meta Metadata
}

// Layout is the derived grid for a paper/item pairing.
type Layout struct {
	Rows, Cols, Items  int
	TagW, TagH         float64 // footprint, mm
	PrintedW, PrintedH float64 // usable area, mm
}

func fromResult(res layout.Result) Layout {
	return Layout{
		Rows:     res.Rows,
		Cols:     res.Cols,
		Items:    res.Items,
		TagW:     res.TagW,
		TagH:     res.TagH,
		PrintedW: res.PrintedW,
		PrintedH: res.PrintedH,
	}
}

// ComputeLayout returns how many items fit on the paper and where the usable
// area ends up. It never fails; degenerate configuration yields zero items.
func ComputeLayout(paper PaperConfig, item ItemConfig) Layout {
	return fromResult(layout.Compute(paper.layoutPaper(), item.layoutItem()))
}

// resolve validates the plan and returns the layout inputs an export works
// from. The slot-count gate lives here so it always runs before any drawing.
func (p *NUpPlan) resolve() (layout.Paper, layout.Item, layout.Result, error) {
	lp := p.Paper.layoutPaper()
	li := p.Item.layoutItem()

	res := layout.Compute(lp, li)
	if p.Rows > 0 && p.Cols > 0 {
		res.Rows = p.Rows
		res.Cols = p.Cols
		res.Items = p.Rows * p.Cols
	}

	if len(p.Slots) != res.Items {
		return lp, li, res, fmt.Errorf("%w: %d slots for a %dx%d grid (%d cells)",
			ErrSlotCount, len(p.Slots), res.Rows, res.Cols, res.Items)
	}
	return lp, li, res, nil
}

// markConfig resolves the mark defaults against the paper.
func (p *NUpPlan) markLength() float64 {
	if p.Marks.Length != nil {
		return unit.Clamp(*p.Marks.Length)
	}
	return p.Paper.cutMark()
}

func (p *NUpPlan) strokeWidth() float64 {
	if p.Marks.StrokeWidth > 0 {
		return p.Marks.StrokeWidth
	}
	return DefaultStrokeWidth
}

// rotationFor resolves the effective rotation for one slot: the cell-level
// override when present, else the slot-level default. Returns the rotation
// normalized into [0,360).
func (p *NUpPlan) rotationFor(src *SlotSource) (int, error) {
	deg := p.Item.Rotation
	if src != nil && src.Rotation != nil {
		deg = *src.Rotation
	}
	norm := ((deg % 360) + 360) % 360
	if norm%90 != 0 {
		return 0, fmt.Errorf("rotation must be a multiple of 90 degrees, got %d", deg)
	}
	return norm, nil
}

// SlotPosition maps a row-major slot index to its row and column.
func SlotPosition(idx, cols int) (row, col int) {
	if cols <= 0 {
		return 0, 0
	}
	return idx / cols, idx % cols
}

// ResizeSlots pads or truncates a slot array to n entries, preserving
// existing entries by index. Used whenever a layout change resizes the grid.
func ResizeSlots(slots []*SlotSource, n int) []*SlotSource {
	if n < 0 {
		n = 0
	}
	out := make([]*SlotSource, n)
	copy(out, slots)
	return out
}

// ApplySourceToAll replicates one chosen source page into every slot of a
// side, the "apply to front/back" action.
func ApplySourceToAll(slots []*SlotSource, src SlotSource) {
	for i := range slots {
		copied := src
		slots[i] = &copied
	}
}

// ClearSlots nils out every slot whose source matches the given predicate,
// e.g. after an uploaded source is removed from the store.
func ClearSlots(slots []*SlotSource, matches func(*SlotSource) bool) {
	for i, s := range slots {
		if s != nil && matches(s) {
			slots[i] = nil
		}
	}
}
