package encoder

import (
	"image"
	"image/jpeg"
	"io"
)

// JPEGEncoder encodes images to JPEG using Go's standard library.
type JPEGEncoder struct{}

func (e *JPEGEncoder) Format() string       { return "jpeg" }
func (e *JPEGEncoder) Extensions() []string { return []string{".jpg", ".jpeg"} }
func (e *JPEGEncoder) Available() bool      { return true }

func (e *JPEGEncoder) Encode(w io.Writer, img image.Image, quality int) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: clampQuality(quality)})
}
