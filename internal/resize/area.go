package resize

import (
	"math"

	"github.com/AnyUserName/minicv-cli/internal/raster"
)

// ─── integer scale (box average) ─────────────────────────────

// areaFastInt averages ix×iy source blocks. The caller guarantees
// ix*dst.Width <= src.Width and iy*dst.Height <= src.Height.
func areaFastInt(dst, src raster.View, ix, iy int) {
	if ix == 2 && iy == 2 {
		area2x2(dst, src)
		return
	}

	cn := src.Channels
	area := ix * iy
	half := area / 2
	for dy := 0; dy < dst.Height; dy++ {
		sy0 := dy * iy
		drow := dst.Row(dy)
		for dx := 0; dx < dst.Width; dx++ {
			sx0 := dx * ix * cn
			for c := 0; c < cn; c++ {
				sum := 0
				for ky := 0; ky < iy; ky++ {
					sp := src.Row(sy0 + ky)[sx0+c:]
					for kx := 0; kx < ix; kx++ {
						sum += int(sp[kx*cn])
					}
				}
				drow[dx*cn+c] = uint8((sum + half) / area)
			}
		}
	}
}

// area2x2 is the half-size case.
func area2x2(dst, src raster.View) {
	cn := src.Channels
	for dy := 0; dy < dst.Height; dy++ {
		s0 := src.Row(dy * 2)
		s1 := src.Row(dy*2 + 1)
		drow := dst.Row(dy)
		for dx := 0; dx < dst.Width; dx++ {
			p0 := s0[dx*2*cn:]
			p1 := s1[dx*2*cn:]
			for c := 0; c < cn; c++ {
				sum := int(p0[c]) + int(p0[c+cn]) + int(p1[c]) + int(p1[c+cn])
				drow[dx*cn+c] = uint8((sum + 2) >> 2)
			}
		}
	}
}

// ─── fractional scale (separable area weights) ───────────────

// areaGeneral downsamples by non-integer factors, both >= 1.
func areaGeneral(dst, src raster.View, scaleX, scaleY float64) error {
	cn := src.Channels
	width := dst.Width * cn

	scratch, err := getRows(2 * width)
	if err != nil {
		return err
	}
	defer putRows(scratch)
	buf := (*scratch)[:width]
	sum := (*scratch)[width:]

	xtab := areaTable(src.Width, dst.Width, cn, scaleX)
	ytab := areaTable(src.Height, dst.Height, 1, scaleY)
	runs := rowRuns(ytab, dst.Height)

	for dy := 0; dy < dst.Height; dy++ {
		clear(sum)
		for k, ye := range ytab[runs[dy]:runs[dy+1]] {
			srow := src.Row(ye.si)
			clear(buf)
			for _, xe := range xtab {
				sp := srow[xe.si : xe.si+cn]
				bp := buf[xe.di : xe.di+cn]
				for c, s := range sp {
					// explicit conversion keeps the product from being fused
					bp[c] += float32(xe.alpha * float32(s))
				}
			}

			beta := ye.alpha
			if k == 0 {
				for i, b := range buf {
					sum[i] = b * beta
				}
			} else {
				for i, b := range buf {
					sum[i] += float32(b * beta)
				}
			}
		}

		drow := dst.Row(dy)
		for i, s := range sum {
			drow[i] = saturateFloat(s)
		}
	}
	return nil
}

// saturateFloat rounds half to even, like the SIMD conversion
// OpenCV relies on, then clamps to a byte.
func saturateFloat(v float32) uint8 {
	return saturate(int(math.RoundToEven(float64(v))))
}

func saturate(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
