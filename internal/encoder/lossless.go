package encoder

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// BMPEncoder writes uncompressed BMP.
type BMPEncoder struct{}

func (e *BMPEncoder) Format() string       { return "bmp" }
func (e *BMPEncoder) Extensions() []string { return []string{".bmp"} }
func (e *BMPEncoder) Available() bool      { return true }

func (e *BMPEncoder) Encode(w io.Writer, img image.Image, _ int) error {
	return bmp.Encode(w, img)
}

// TIFFEncoder writes deflate-compressed TIFF.
type TIFFEncoder struct{}

func (e *TIFFEncoder) Format() string       { return "tiff" }
func (e *TIFFEncoder) Extensions() []string { return []string{".tif", ".tiff"} }
func (e *TIFFEncoder) Available() bool      { return true }

func (e *TIFFEncoder) Encode(w io.Writer, img image.Image, _ int) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

// GIFEncoder writes a single-frame GIF with a 256 colour palette.
type GIFEncoder struct{}

func (e *GIFEncoder) Format() string       { return "gif" }
func (e *GIFEncoder) Extensions() []string { return []string{".gif"} }
func (e *GIFEncoder) Available() bool      { return true }

func (e *GIFEncoder) Encode(w io.Writer, img image.Image, _ int) error {
	return imaging.Encode(w, img, imaging.GIF, imaging.GIFNumColors(256))
}
