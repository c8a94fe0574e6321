// Package preview rotates the PNG page thumbnails used by the selection UI.
// The PDF export path never consumes these; it re-extracts the original page
// bytes for full fidelity.
package preview

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Preview is one page's raster thumbnail.
type Preview struct {
	PNG           []byte
	Width, Height int
	// Rotation is the accumulated rotation in degrees, multiples of 90.
	Rotation int
}

// Rotate returns p turned clockwise by the given degrees, which must be a
// multiple of 90. The image is decoded, rotated and re-encoded; width and
// height swap for 90 and 270.
func Rotate(p Preview, degrees int) (Preview, error) {
	d := ((degrees % 360) + 360) % 360
	if d%90 != 0 {
		return Preview{}, fmt.Errorf("rotation must be a multiple of 90 degrees, got %d", degrees)
	}
	if d == 0 {
		return p, nil
	}

	img, err := imaging.Decode(bytes.NewReader(p.PNG))
	if err != nil {
		return Preview{}, fmt.Errorf("failed to decode preview: %w", err)
	}

	// imaging rotates counter-clockwise.
	var rotated image.Image
	switch d {
	case 90:
		rotated = imaging.Rotate270(img)
	case 180:
		rotated = imaging.Rotate180(img)
	case 270:
		rotated = imaging.Rotate90(img)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, rotated, imaging.PNG); err != nil {
		return Preview{}, fmt.Errorf("failed to encode preview: %w", err)
	}

	bounds := rotated.Bounds()
	return Preview{
		PNG:      buf.Bytes(),
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Rotation: (p.Rotation + d) % 360,
	}, nil
}

// RotateAll rotates every preview of a sheet, one at a time in order. The
// first failure aborts the whole rotation.
func RotateAll(previews []Preview, degrees int) ([]Preview, error) {
	out := make([]Preview, len(previews))
	for i, p := range previews {
		rotated, err := Rotate(p, degrees)
		if err != nil {
			return nil, fmt.Errorf("preview %d: %w", i, err)
		}
		out[i] = rotated
	}
	return out, nil
}
