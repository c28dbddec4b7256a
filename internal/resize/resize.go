// Package resize reproduces the area and linear resampling kernels of
// OpenCV (INTER_AREA, INTER_LINEAR) on 8-bit interleaved buffers.
//
// Which kernel runs depends only on the scale factors src/dst per axis:
//   - both >= 1 and both integral: box average (2×2 has its own loop)
//   - both >= 1 otherwise: separable fractional-area weights, float32
//   - any axis enlarged: 11-bit fixed-point bilinear
//
// Results match OpenCV within its own rounding: area output is
// rounded half to even, the box and bilinear paths are pure integer.
package resize

import (
	"fmt"
	"math"

	"github.com/AnyUserName/minicv-cli/internal/raster"
)

// Scales closer than this to a whole number take the box-average path.
const intScaleEps = 1e-6

// Area resamples src into dst. Both views keep their own stride; channel
// counts must match. dst and src must not overlap.
// On error dst content is undefined.
func Area(dst, src raster.View) error {
	if err := src.Check(); err != nil {
		return fmt.Errorf("src: %w", err)
	}
	if err := dst.Check(); err != nil {
		return fmt.Errorf("dst: %w", err)
	}
	if dst.Channels != src.Channels {
		return fmt.Errorf("%w: %d src channels, %d dst channels",
			raster.ErrInvalidArgument, src.Channels, dst.Channels)
	}

	scaleX := float64(src.Width) / float64(dst.Width)
	scaleY := float64(src.Height) / float64(dst.Height)
	if scaleX < 1 || scaleY < 1 {
		return linear(dst, src)
	}

	ix := int(math.Round(scaleX))
	iy := int(math.Round(scaleY))
	if math.Abs(scaleX-float64(ix)) < intScaleEps &&
		math.Abs(scaleY-float64(iy)) < intScaleEps &&
		ix*dst.Width <= src.Width && iy*dst.Height <= src.Height {
		areaFastInt(dst, src, ix, iy)
		return nil
	}
	return areaGeneral(dst, src, scaleX, scaleY)
}
