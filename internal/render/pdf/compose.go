package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/danh-tc/n-ups/internal/unit"
)

// ErrPageOutOfRange reports a slot referencing a page its source PDF does
// not have.
var ErrPageOutOfRange = errors.New("page out of range")

func newConf() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.WriteObjectStream = true
	return conf
}

// PageCount returns the number of pages in src.
func PageCount(src []byte) (int, error) {
	n, err := pdfapi.PageCount(bytes.NewReader(src), newConf())
	if err != nil {
		return 0, fmt.Errorf("failed to read source PDF: %w", err)
	}
	return n, nil
}

// PlacePage stamps page pageIndex (0-based) of src onto the single-page
// sheet, centered in the outer rectangle and rotated about that center. The
// source page keeps its native size; nothing is ever scaled, so a source
// larger or smaller than the cell simply over- or undershoots it.
//
// The sheet's content stream is mutated: placing the same page twice draws
// it twice.
func PlacePage(sheet, src []byte, pageIndex int, outer unit.Rect, rotation int, sheetW, sheetH float64) ([]byte, error) {
	if len(src) == 0 {
		return nil, errors.New("empty source PDF")
	}
	n, err := PageCount(src)
	if err != nil {
		return nil, err
	}
	if pageIndex < 0 || pageIndex >= n {
		return nil, fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, pageIndex+1, n)
	}

	tmp, err := os.CreateTemp("", "nups-src-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary source file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(src); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write temporary source file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary source file: %w", err)
	}

	// Absolute scale 1 keeps the source page at native size; pos:c plus a
	// point offset anchors its center at the cell center, and rotation is
	// applied about that same point.
	desc := fmt.Sprintf("pos:c, off:%.4f %.4f, scalefactor:1 abs, rot:%d, op:1",
		outer.CenterX()-sheetW/2, outer.CenterY()-sheetH/2, rotation)

	wm, err := pdfapi.PDFWatermark(fmt.Sprintf("%s:%d", tmp.Name(), pageIndex+1), desc, true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare page stamp: %w", err)
	}

	var out bytes.Buffer
	if err := pdfapi.AddWatermarks(bytes.NewReader(sheet), &out, nil, wm, newConf()); err != nil {
		return nil, fmt.Errorf("failed to place source page: %w", err)
	}
	return out.Bytes(), nil
}

// AppendOps appends a content stream of raw drawing operators after page 1's
// existing content. The existing content is wrapped in q/Q so its graphics
// state cannot bleed into the appended operators.
func AppendOps(sheet, ops []byte) ([]byte, error) {
	if len(ops) == 0 {
		return Finalize(sheet)
	}

	ctx, err := pdfapi.ReadValidateAndOptimize(bytes.NewReader(sheet), newConf())
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, err
	}

	pageDict, _, _, err := ctx.PageDict(1, false)
	if err != nil {
		return nil, err
	}

	content, err := ctx.PageContent(pageDict, 1)
	if err != nil && !errors.Is(err, model.ErrNoContent) {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("q ")
	buf.Write(content)
	buf.WriteString(" Q ")
	buf.Write(ops)

	streamDict, err := ctx.NewStreamDictForBuf(buf.Bytes())
	if err != nil {
		return nil, err
	}
	if err := streamDict.Encode(); err != nil {
		return nil, err
	}
	indRef, err := ctx.IndRefForNewObject(*streamDict)
	if err != nil {
		return nil, err
	}
	pageDict["Contents"] = *indRef

	var out bytes.Buffer
	if err := pdfapi.WriteContext(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to write sheet: %w", err)
	}
	return out.Bytes(), nil
}

// Finalize re-serializes the sheet through pdfcpu so every export leaves in
// the same object-stream-compacted form regardless of which steps ran.
func Finalize(sheet []byte) ([]byte, error) {
	ctx, err := pdfapi.ReadValidateAndOptimize(bytes.NewReader(sheet), newConf())
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	var out bytes.Buffer
	if err := pdfapi.WriteContext(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to write sheet: %w", err)
	}
	return out.Bytes(), nil
}
