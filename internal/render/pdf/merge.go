package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
)

// Merge concatenates finished single-sheet documents into one document,
// preserving order.
func Merge(sheets [][]byte) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, errors.New("nothing to merge")
	}
	if len(sheets) == 1 {
		return sheets[0], nil
	}

	readers := make([]io.ReadSeeker, len(sheets))
	for i, b := range sheets {
		readers[i] = bytes.NewReader(b)
	}

	var out bytes.Buffer
	if err := pdfapi.MergeRaw(readers, &out, false, newConf()); err != nil {
		return nil, fmt.Errorf("failed to merge sheets: %w", err)
	}
	return out.Bytes(), nil
}
