// Package encoder writes resized images in the format implied by the
// output file name.
package encoder

import (
	"image"
	"io"
)

// Encoder encodes an image to a specific format.
type Encoder interface {
	// Format returns the format name (e.g. "jpeg", "webp", "avif", "png").
	Format() string

	// Extensions lists the lowercase file extensions, with dot, that
	// select this encoder.
	Extensions() []string

	// Encode writes img to w at the given quality (1-100). Lossless
	// encoders ignore quality.
	Encode(w io.Writer, img image.Image, quality int) error

	// Available returns true if the encoder is ready to use.
	// External encoders (cwebp, avifenc) may not be installed.
	Available() bool
}

// DefaultQuality is used when quality is outside 1-100.
const DefaultQuality = 85

func clampQuality(q int) int {
	if q <= 0 || q > 100 {
		return DefaultQuality
	}
	return q
}
