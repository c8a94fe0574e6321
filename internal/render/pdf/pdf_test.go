package pdf

import (
	"bytes"
	"errors"
	"testing"

	"codeberg.org/go-pdf/fpdf"

	"github.com/danh-tc/n-ups/internal/unit"
)

func sourcePDF(t *testing.T, wMm, hMm float64, pages int) []byte {
	t.Helper()
	f := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: wMm, Ht: hMm},
	})
	f.SetAutoPageBreak(false, 0)
	for i := 0; i < pages; i++ {
		f.AddPage()
		f.SetLineWidth(0.4)
		f.Rect(1, 1, wMm-2, hMm-2, "D")
	}
	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		t.Fatalf("build source: %v", err)
	}
	return buf.Bytes()
}

func a4Sheet(t *testing.T) []byte {
	t.Helper()
	sheet, err := NewSheet(unit.MmToPt(210), unit.MmToPt(297), SheetMeta{
		Title: "test", Creator: "n-ups", Producer: "n-ups",
	})
	if err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	return sheet
}

func TestNewSheetSinglePage(t *testing.T) {
	sheet := a4Sheet(t)
	n, err := PageCount(sheet)
	if err != nil {
		t.Fatalf("PageCount: %v", err)
	}
	if n != 1 {
		t.Errorf("page count = %d, want 1", n)
	}
}

func TestNewSheetRejectsZeroSize(t *testing.T) {
	if _, err := NewSheet(0, 100, SheetMeta{}); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewSheet(100, -5, SheetMeta{}); err == nil {
		t.Error("expected error for negative height")
	}
}

func TestNewSheetAnnotationLine(t *testing.T) {
	sheet, err := NewSheet(500, 700, SheetMeta{
		Creator: "n-ups", Producer: "n-ups",
		Line: "2026-08-26  Acme", LineX: 30, LineY: 10,
	})
	if err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	if n, err := PageCount(sheet); err != nil || n != 1 {
		t.Errorf("page count = %d (%v)", n, err)
	}
}

func TestPlacePage(t *testing.T) {
	sheet := a4Sheet(t)
	src := sourcePDF(t, 57, 92, 1)
	outer := unit.Rect{X: 100, Y: 100, W: unit.MmToPt(57), H: unit.MmToPt(92)}

	got, err := PlacePage(sheet, src, 0, outer, 0, unit.MmToPt(210), unit.MmToPt(297))
	if err != nil {
		t.Fatalf("PlacePage: %v", err)
	}
	if bytes.Equal(got, sheet) {
		t.Error("placement did not change the sheet")
	}
	if n, err := PageCount(got); err != nil || n != 1 {
		t.Errorf("page count = %d (%v), want 1", n, err)
	}
}

func TestPlacePageRotated(t *testing.T) {
	sheet := a4Sheet(t)
	src := sourcePDF(t, 57, 92, 1)
	outer := unit.Rect{X: 100, Y: 100, W: unit.MmToPt(57), H: unit.MmToPt(92)}

	for _, rot := range []int{90, 180, 270} {
		got, err := PlacePage(sheet, src, 0, outer, rot, unit.MmToPt(210), unit.MmToPt(297))
		if err != nil {
			t.Fatalf("PlacePage rot %d: %v", rot, err)
		}
		if n, err := PageCount(got); err != nil || n != 1 {
			t.Errorf("rot %d: page count = %d (%v)", rot, n, err)
		}
	}
}

func TestPlacePageOutOfRange(t *testing.T) {
	sheet := a4Sheet(t)
	src := sourcePDF(t, 57, 92, 2)
	outer := unit.Rect{X: 0, Y: 0, W: 100, H: 100}

	for _, page := range []int{-1, 2, 10} {
		_, err := PlacePage(sheet, src, page, outer, 0, 595, 842)
		if !errors.Is(err, ErrPageOutOfRange) {
			t.Errorf("page %d: err = %v, want ErrPageOutOfRange", page, err)
		}
	}
}

func TestPlacePageEmptySource(t *testing.T) {
	if _, err := PlacePage(a4Sheet(t), nil, 0, unit.Rect{W: 10, H: 10}, 0, 595, 842); err == nil {
		t.Error("expected error for empty source")
	}
}

func TestPlacePageNotIdempotent(t *testing.T) {
	sheet := a4Sheet(t)
	src := sourcePDF(t, 30, 30, 1)
	outer := unit.Rect{X: 50, Y: 50, W: unit.MmToPt(30), H: unit.MmToPt(30)}

	once, err := PlacePage(sheet, src, 0, outer, 0, 595, 842)
	if err != nil {
		t.Fatalf("first placement: %v", err)
	}
	twice, err := PlacePage(once, src, 0, outer, 0, 595, 842)
	if err != nil {
		t.Fatalf("second placement: %v", err)
	}
	if bytes.Equal(once, twice) {
		t.Error("second placement should mutate the content stream again")
	}
}

func TestAppendOps(t *testing.T) {
	sheet := a4Sheet(t)
	ops := []byte("q 0 G 0.5 w 10 10 m 10 30 l S Q")

	got, err := AppendOps(sheet, ops)
	if err != nil {
		t.Fatalf("AppendOps: %v", err)
	}
	if n, err := PageCount(got); err != nil || n != 1 {
		t.Errorf("page count = %d (%v), want 1", n, err)
	}
}

func TestAppendOpsEmptyFinalizes(t *testing.T) {
	got, err := AppendOps(a4Sheet(t), nil)
	if err != nil {
		t.Fatalf("AppendOps: %v", err)
	}
	if n, err := PageCount(got); err != nil || n != 1 {
		t.Errorf("page count = %d (%v), want 1", n, err)
	}
}

func TestMergeOrderAndCount(t *testing.T) {
	a := a4Sheet(t)
	b := a4Sheet(t)

	merged, err := Merge([][]byte{a, b})
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if n, err := PageCount(merged); err != nil || n != 2 {
		t.Errorf("page count = %d (%v), want 2", n, err)
	}
}

func TestMergeSingleSheetPassthrough(t *testing.T) {
	a := a4Sheet(t)
	merged, err := Merge([][]byte{a})
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if !bytes.Equal(merged, a) {
		t.Error("single-sheet merge should pass bytes through")
	}
}

func TestMergeEmpty(t *testing.T) {
	if _, err := Merge(nil); err == nil {
		t.Error("expected error for empty merge")
	}
}
