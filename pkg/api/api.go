package api

import (
	"fmt"

	"github.com/danh-tc/n-ups/internal/layout"
	"github.com/danh-tc/n-ups/internal/marks"
	"github.com/danh-tc/n-ups/internal/render/pdf"
	"github.com/danh-tc/n-ups/internal/unit"
)

// Exporter is the main API for turning n-up plans into finished PDF sheets
type Exporter struct {
	options Options
}

// New creates a new exporter with default options
func New() *Exporter {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a new exporter with the specified options
func NewWithOptions(options Options) *Exporter {
	return &Exporter{options: options}
}

// WithOption returns a new exporter with the specified option set
func (e *Exporter) WithOption(option Option) *Exporter {
	newOptions := e.options
	option(&newOptions)
	return NewWithOptions(newOptions)
}

// Result carries the exported sheet plus layout diagnostics.
type Result struct {
	PDF    []byte
	Layout Layout
	// Warning is set when the configuration degenerated to an empty grid.
	// That is not an error; the sheet is exported with zero placed items.
	Warning string
}

// ExportNUp builds one sheet from the plan and returns the PDF bytes.
func (e *Exporter) ExportNUp(plan NUpPlan) ([]byte, error) {
	res, err := e.Export(plan)
	if err != nil {
		return nil, err
	}
	return res.PDF, nil
}

// Export builds one sheet from the plan.
//
// Cells are processed strictly one at a time in row-major order; the sheet
// under construction is owned exclusively by this call and never shared.
func (e *Exporter) Export(plan NUpPlan) (*Result, error) {
	lp, li, res, err := plan.resolve()
	if err != nil {
		return nil, err
	}

	warning := ""
	if res.Items == 0 {
		warning = "printed area too small: no items fit"
	}

	sheetW := unit.MmToPt(unit.Clamp(plan.Paper.Width))
	sheetH := unit.MmToPt(unit.Clamp(plan.Paper.Height))

	meta := pdf.SheetMeta{
		Title:    plan.Meta.Customer,
		Creator:  e.options.Creator,
		Producer: e.options.Producer,
	}
	if line := plan.Meta.line(); line != "" {
		originX := unit.MmToPt(lp.Margin.Clamped().Left + unit.Clamp(lp.CutMark))
		originY := unit.MmToPt(lp.Margin.Clamped().Bottom)
		meta.Line = line
		meta.LineX = originX
		meta.LineY = originY / 2
	}

	sheet, err := pdf.NewSheet(sheetW, sheetH, meta)
	if err != nil {
		return nil, err
	}

	cells := layout.Grid(lp, li, res)
	for i, cell := range cells {
		src := plan.Slots[i]
		if src == nil || len(src.PDF) == 0 {
			continue
		}
		rotation, err := plan.rotationFor(src)
		if err != nil {
			return nil, fmt.Errorf("slot %d (row %d, col %d): %w", i, cell.Row, cell.Col, err)
		}
		sheet, err = pdf.PlacePage(sheet, src.PDF, src.Page, cell.Outer, rotation, sheetW, sheetH)
		if err != nil {
			return nil, fmt.Errorf("slot %d (row %d, col %d): %w", i, cell.Row, cell.Col, err)
		}
		if e.options.Debug {
			fmt.Printf("placed slot %d at row %d col %d (rot %d)\n", i, cell.Row, cell.Col, rotation)
		}
	}

	trims := make([]unit.Rect, len(cells))
	for i, cell := range cells {
		trims[i] = cell.Trim
	}
	ops := marks.Ops(trims, li.Gutter.Clamped().ToPt(), marks.Config{
		Length:      unit.MmToPt(plan.markLength()),
		StrokeWidth: plan.strokeWidth(),
		Offset:      unit.MmToPt(unit.Clamp(plan.Marks.Offset)),
		CMYK:        plan.Color.PreserveCMYK,
	})
	sheet, err = pdf.AppendOps(sheet, ops)
	if err != nil {
		return nil, err
	}

	if e.options.Debug {
		fmt.Printf("exported %dx%d sheet: %d cells, %d bytes\n", res.Rows, res.Cols, res.Items, len(sheet))
	}

	return &Result{PDF: sheet, Layout: fromResult(res), Warning: warning}, nil
}

// ExportJob pairs a front sheet with an optional back sheet for duplex work.
type ExportJob struct {
	Front NUpPlan
	Back  *NUpPlan
}

// ExportJobs exports every queued sheet independently and merges them into
// one document: each job's front page first, then its back page, jobs in
// order.
func (e *Exporter) ExportJobs(jobs []ExportJob) ([]byte, error) {
	var sheets [][]byte
	for i, job := range jobs {
		front, err := e.ExportNUp(job.Front)
		if err != nil {
			return nil, fmt.Errorf("job %d front: %w", i, err)
		}
		sheets = append(sheets, front)

		if job.Back != nil {
			back, err := e.ExportNUp(*job.Back)
			if err != nil {
				return nil, fmt.Errorf("job %d back: %w", i, err)
			}
			sheets = append(sheets, back)
		}
	}
	return pdf.Merge(sheets)
}
