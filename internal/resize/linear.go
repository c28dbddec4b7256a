package resize

import (
	"math"

	"github.com/AnyUserName/minicv-cli/internal/raster"
)

const (
	coefBits = 11
	coefOne  = 1 << coefBits
)

// linearTable holds, per destination index, the left/top source index and
// the fixed-point weight pair (w[2i], w[2i+1]) summing to coefOne.
type linearTable struct {
	ofs []int
	w   []int
}

func linearAxis(ssize, dsize int, scale float64) linearTable {
	t := linearTable{
		ofs: make([]int, dsize),
		w:   make([]int, 2*dsize),
	}
	inv := 1 / scale
	for d := 0; d < dsize; d++ {
		s := 0
		var f float32
		if ssize > 1 {
			s = int(math.Floor(float64(d) * scale))
			f = float32(float64(d+1) - float64(s+1)*inv)
			if f <= 0 {
				f = 0
			} else {
				f -= float32(math.Floor(float64(f)))
			}
			if s < 0 {
				s, f = 0, 0
			}
			if s >= ssize-1 {
				s, f = ssize-2, 1
			}
		}
		w1 := int(math.RoundToEven(float64(f * coefOne)))
		t.ofs[d] = s
		t.w[2*d] = coefOne - w1
		t.w[2*d+1] = w1
	}
	return t
}

// linear interpolates in fixed point. Used as soon as either axis grows.
func linear(dst, src raster.View) error {
	if err := checkScratch(3 * (dst.Width + dst.Height)); err != nil {
		return err
	}
	cn := src.Channels
	rowLen := src.RowLen()
	scaleX := float64(src.Width) / float64(dst.Width)
	scaleY := float64(src.Height) / float64(dst.Height)
	xt := linearAxis(src.Width, dst.Width, scaleX)
	yt := linearAxis(src.Height, dst.Height, scaleY)

	for dy := 0; dy < dst.Height; dy++ {
		r0 := src.Row(yt.ofs[dy])
		r1 := r0
		if src.Height > 1 {
			r1 = src.Row(yt.ofs[dy] + 1)
		}
		wy0, wy1 := yt.w[2*dy], yt.w[2*dy+1]
		drow := dst.Row(dy)

		for dx := 0; dx < dst.Width; dx++ {
			base := xt.ofs[dx] * cn
			wx0, wx1 := xt.w[2*dx], xt.w[2*dx+1]
			for c := 0; c < cn; c++ {
				x0 := base + c
				x1 := x0 + cn
				if x1 >= rowLen {
					x1 = x0
				}
				t0 := wx0*int(r0[x0]) + wx1*int(r0[x1])
				t1 := wx0*int(r1[x0]) + wx1*int(r1[x1])
				v0 := (wy0 * (t0 >> 4)) >> 16
				v1 := (wy1 * (t1 >> 4)) >> 16
				drow[dx*cn+c] = saturate((v0 + v1 + 2) >> 2)
			}
		}
	}
	return nil
}
