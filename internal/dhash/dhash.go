// Package dhash computes 64-bit difference hashes compatible with the
// ones produced by the OpenCV pipeline: convert to gray,
// area-resample to 9×8, compare each pixel with its right neighbour.
package dhash

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"math/bits"

	"github.com/AnyUserName/minicv-cli/internal/colorconv"
	"github.com/AnyUserName/minicv-cli/internal/raster"
	"github.com/AnyUserName/minicv-cli/internal/resize"
)

// Grid the source is resampled to before packing.
const (
	GridWidth  = 9
	GridHeight = 8
)

// maxGray bounds the gray scratch built for color input.
const maxGray = 1 << 32

// Hash is a difference hash. Bit i (MSB first within each byte) is set
// when pixel (i%8, i/8) is brighter than its right neighbour.
type Hash [8]byte

func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// Uint64 returns the hash as a big-endian integer.
func (h Hash) Uint64() uint64 { return binary.BigEndian.Uint64(h[:]) }

// Distance is the Hamming distance between two hashes.
func (h Hash) Distance(o Hash) int {
	return bits.OnesCount64(h.Uint64() ^ o.Uint64())
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	v, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// ParseHex parses the 16 hex digit form returned by String.
func ParseHex(s string) (Hash, error) {
	var h Hash
	if len(s) != 2*len(h) {
		return h, fmt.Errorf("dhash: want %d hex digits, got %d", 2*len(h), len(s))
	}
	if _, err := hex.Decode(h[:], []byte(s)); err != nil {
		return h, fmt.Errorf("dhash: %w", err)
	}
	return h, nil
}

// DistanceBytes compares raw hash bytes of any equal length.
func DistanceBytes(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("dhash length mismatch: %d vs %d", len(a), len(b))
	}
	dist := 0
	for i := range a {
		dist += bits.OnesCount8(a[i] ^ b[i])
	}
	return dist, nil
}

// Pack builds the hash from a GridHeight×GridWidth gray grid stored
// row-major without padding.
func Pack(grid []byte) Hash {
	var h Hash
	for y := 0; y < GridHeight; y++ {
		row := grid[y*GridWidth : (y+1)*GridWidth]
		for x := 0; x < GridWidth-1; x++ {
			if row[x] > row[x+1] {
				h[y] |= 0x80 >> x
			}
		}
	}
	return h
}

// FromRaw hashes a raw buffer. With colorconv.NoChange src must already be
// single-channel gray; any other code converts src to gray first.
func FromRaw(src raster.View, code colorconv.Code) (Hash, error) {
	var h Hash
	if src.Pix == nil || src.Width <= 0 || src.Height <= 0 || src.Stride <= 0 {
		return h, fmt.Errorf("%w: raw %dx%d stride %d", raster.ErrInvalidArgument,
			src.Width, src.Height, src.Stride)
	}
	if src.Width > math.MaxInt32/4 || src.Height > math.MaxInt32 {
		return h, fmt.Errorf("%w: raw %dx%d", raster.ErrDimensionOverflow, src.Width, src.Height)
	}
	if src.Stride < src.Width {
		return h, fmt.Errorf("%w: stride %d < width %d", raster.ErrInvalidStride, src.Stride, src.Width)
	}

	gray := src
	if code == colorconv.NoChange {
		if src.Channels != 1 {
			return h, fmt.Errorf("%w: %d channels without conversion", raster.ErrInvalidArgument, src.Channels)
		}
	} else {
		size := max(src.Width, src.Stride) * src.Height
		if size == 0 {
			return h, raster.ErrEmptyBuffer
		}
		if size > maxGray {
			return h, fmt.Errorf("%w: gray scratch of %d bytes", raster.ErrAllocation, size)
		}
		gray = raster.View{
			Pix:      make([]byte, size),
			Width:    src.Width,
			Height:   src.Height,
			Stride:   src.Stride,
			Channels: 1,
		}
		if err := colorconv.Convert(gray, src, code); err != nil {
			return h, err
		}
	}

	var grid [GridWidth * GridHeight]byte
	if err := resize.Area(raster.New(grid[:], GridWidth, GridHeight, 1), gray); err != nil {
		return h, err
	}
	return Pack(grid[:]), nil
}
