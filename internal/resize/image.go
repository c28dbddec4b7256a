package resize

import (
	"fmt"
	"image"

	"github.com/AnyUserName/minicv-cli/internal/raster"
	"github.com/disintegration/imaging"
)

// Image resamples img to w×h with Area. Gray stays single channel, RGBA
// and NRGBA are resampled channel-wise in their own encoding, anything
// else is converted to NRGBA first.
func Image(img image.Image, w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: target %dx%d", raster.ErrInvalidArgument, w, h)
	}
	rect := image.Rect(0, 0, w, h)

	switch src := img.(type) {
	case *image.Gray:
		dst := image.NewGray(rect)
		if err := Area(raster.FromGray(dst), raster.FromGray(src)); err != nil {
			return nil, err
		}
		return dst, nil
	case *image.RGBA:
		dst := image.NewRGBA(rect)
		if err := Area(raster.FromRGBA(dst), raster.FromRGBA(src)); err != nil {
			return nil, err
		}
		return dst, nil
	case *image.NRGBA:
		dst := image.NewNRGBA(rect)
		if err := Area(raster.FromNRGBA(dst), raster.FromNRGBA(src)); err != nil {
			return nil, err
		}
		return dst, nil
	case nil:
		return nil, fmt.Errorf("%w: nil image", raster.ErrInvalidArgument)
	default:
		return Image(imaging.Clone(img), w, h)
	}
}
