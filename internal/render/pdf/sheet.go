// Package pdf builds and mutates the destination PDF: the blank paper-sized
// sheet, unscaled placement of source pages into grid cells, cut-mark
// content streams and front/back merging.
package pdf

import (
	"bytes"
	"fmt"

	"codeberg.org/go-pdf/fpdf"
)

// SheetMeta carries document metadata and the optional annotation line drawn
// near the printed-area origin.
type SheetMeta struct {
	Title    string
	Creator  string
	Producer string
	// Line is drawn only when non-empty.
	Line string
	// LineX and LineY position the annotation baseline in points, PDF
	// coordinates (origin bottom-left).
	LineX, LineY float64
}

// NewSheet returns a document holding exactly one blank page of the given
// size in points. No implicit default page is ever added.
func NewSheet(widthPt, heightPt float64, meta SheetMeta) ([]byte, error) {
	if widthPt <= 0 || heightPt <= 0 {
		return nil, fmt.Errorf("sheet size must be positive, got %.2fx%.2f pt", widthPt, heightPt)
	}

	f := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: widthPt, Ht: heightPt},
	})
	f.SetAutoPageBreak(false, 0)
	f.SetMargins(0, 0, 0)
	f.SetTitle(meta.Title, true)
	f.SetCreator(meta.Creator, true)
	f.SetProducer(meta.Producer, true)
	f.AddPage()

	if meta.Line != "" {
		f.SetFont("Helvetica", "", 7)
		f.SetTextColor(0, 0, 0)
		// fpdf's y axis runs top-down.
		f.Text(meta.LineX, heightPt-meta.LineY, meta.Line)
	}

	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to build sheet: %w", err)
	}
	return buf.Bytes(), nil
}
