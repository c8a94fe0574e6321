package api

import (
	"github.com/danh-tc/n-ups/internal/preview"
	"github.com/danh-tc/n-ups/internal/store"
)

// SourceStore keeps uploaded PDF blobs and their per-page previews, keyed by
// a content-derived id. It is the collaborator callers marshal slot sources
// from on each export; the exporter itself never reads it.
type SourceStore = store.Store

// Preview is one page's raster thumbnail: PNG bytes, pixel dimensions and
// the accumulated rotation.
type Preview = preview.Preview

// ErrSourceNotFound reports a lookup for a source id that is not stored.
var ErrSourceNotFound = store.ErrNotFound

// NewSourceStore returns an empty source store.
func NewSourceStore() *SourceStore {
	return store.New()
}

// RotatePreview returns the preview turned clockwise by the given degrees,
// which must be a multiple of 90.
func RotatePreview(p Preview, degrees int) (Preview, error) {
	return preview.Rotate(p, degrees)
}

// RotatePreviews rotates every preview of a sheet, one at a time in order.
func RotatePreviews(previews []Preview, degrees int) ([]Preview, error) {
	return preview.RotateAll(previews, degrees)
}
