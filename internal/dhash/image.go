package dhash

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/AnyUserName/minicv-cli/internal/colorconv"
	"github.com/AnyUserName/minicv-cli/internal/raster"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// FromImage hashes a decoded image. RGBA and Gray pixels are read in
// place; other types are drawn onto a premultiplied RGBA canvas first.
func FromImage(img image.Image) (Hash, error) {
	if img == nil {
		return Hash{}, errors.New("nil image")
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return Hash{}, fmt.Errorf("%w: image size %dx%d", raster.ErrInvalidArgument, b.Dx(), b.Dy())
	}

	switch src := img.(type) {
	case *image.RGBA:
		return FromRaw(raster.FromRGBA(src), colorconv.RGBA2Gray)
	case *image.Gray:
		return FromRaw(raster.FromGray(src), colorconv.NoChange)
	default:
		rgba := image.NewRGBA(b)
		draw.Draw(rgba, b, img, b.Min, draw.Src)
		return FromRaw(raster.FromRGBA(rgba), colorconv.RGBA2Gray)
	}
}

// FromReader decodes r (jpeg, png, gif, bmp, tiff, webp) and hashes it.
// Pass imaging.AutoOrientation(true) to apply EXIF orientation first.
func FromReader(r io.Reader, opts ...imaging.DecodeOption) (Hash, error) {
	img, err := imaging.Decode(r, opts...)
	if err != nil {
		return Hash{}, fmt.Errorf("decode: %w", err)
	}
	return FromImage(img)
}

// FromBytes hashes encoded image data without touching disk.
func FromBytes(data []byte, opts ...imaging.DecodeOption) (Hash, error) {
	if len(data) == 0 {
		return Hash{}, errors.New("empty image data")
	}
	return FromReader(bytes.NewReader(data), opts...)
}

// FromFile opens, decodes and hashes the image at path.
func FromFile(path string, opts ...imaging.DecodeOption) (Hash, error) {
	img, err := imaging.Open(path, opts...)
	if err != nil {
		return Hash{}, err
	}
	return FromImage(img)
}
