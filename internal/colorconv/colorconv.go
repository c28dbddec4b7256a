// Package colorconv converts between gray and 3/4-channel interleaved
// buffers using OpenCV's fixed-point luma weights.
package colorconv

import (
	"fmt"
	"strings"

	"github.com/AnyUserName/minicv-cli/internal/raster"
)

// Code selects a conversion.
type Code int

const (
	// NoChange marks input that is already single-channel gray. Convert
	// rejects it; dhash uses it to skip conversion.
	NoChange Code = iota
	BGR2Gray
	RGB2Gray
	RGBA2Gray
	Gray2BGR
	Gray2RGB
	BGR2RGB
	RGB2BGR
)

var codeNames = map[Code]string{
	NoChange:  "none",
	BGR2Gray:  "bgr2gray",
	RGB2Gray:  "rgb2gray",
	RGBA2Gray: "rgba2gray",
	Gray2BGR:  "gray2bgr",
	Gray2RGB:  "gray2rgb",
	BGR2RGB:   "bgr2rgb",
	RGB2BGR:   "rgb2bgr",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// ParseCode accepts the names printed by String, case-insensitively.
func ParseCode(s string) (Code, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range codeNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown color code %q", raster.ErrInvalidArgument, s)
}

// Luma weights in Q15: round(coef * 32768).
const (
	grayShift = 15
	ry15      = 9798  // 0.299
	gy15      = 19235 // 0.587
	by15      = 3735  // 0.114
)

// Convert writes src converted by code into dst. Both views must have the
// same size; channel counts must suit the code.
func Convert(dst, src raster.View, code Code) error {
	if err := src.Check(); err != nil {
		return fmt.Errorf("src: %w", err)
	}
	if err := dst.Check(); err != nil {
		return fmt.Errorf("dst: %w", err)
	}
	if dst.Width != src.Width || dst.Height != src.Height {
		return fmt.Errorf("%w: size %dx%d → %dx%d", raster.ErrInvalidArgument,
			src.Width, src.Height, dst.Width, dst.Height)
	}

	scn, dcn := src.Channels, dst.Channels
	switch code {
	case BGR2Gray, RGB2Gray, RGBA2Gray:
		minCn := 3
		if code == RGBA2Gray {
			minCn = 4
		}
		if scn < minCn || dcn != 1 {
			return channelError(code, scn, dcn)
		}
		blue := 0
		if code != BGR2Gray {
			blue = 2
		}
		toGray(dst, src, blue)
	case Gray2BGR, Gray2RGB:
		if scn != 1 || (dcn != 3 && dcn != 4) {
			return channelError(code, scn, dcn)
		}
		grayToColor(dst, src)
	case BGR2RGB, RGB2BGR:
		if scn < 3 || (dcn != 3 && dcn != 4) {
			return channelError(code, scn, dcn)
		}
		swapRB(dst, src)
	default:
		return fmt.Errorf("%w: unsupported color code %v", raster.ErrInvalidArgument, code)
	}
	return nil
}

func channelError(code Code, scn, dcn int) error {
	return fmt.Errorf("%w: %v with %d→%d channels", raster.ErrInvalidArgument, code, scn, dcn)
}

// toGray reads B at index blue and R at 2-blue of every pixel.
func toGray(dst, src raster.View, blue int) {
	scn := src.Channels
	red := 2 - blue
	for y := 0; y < src.Height; y++ {
		srow := src.Row(y)
		drow := dst.Row(y)
		for x := range drow {
			p := srow[x*scn : x*scn+3]
			v := (int(p[blue])*by15 + int(p[1])*gy15 + int(p[red])*ry15 + 1<<(grayShift-1)) >> grayShift
			if v > 255 {
				v = 255
			}
			drow[x] = uint8(v)
		}
	}
}

func grayToColor(dst, src raster.View) {
	dcn := dst.Channels
	for y := 0; y < src.Height; y++ {
		srow := src.Row(y)
		drow := dst.Row(y)
		for x, g := range srow {
			d := drow[x*dcn : x*dcn+dcn]
			d[0], d[1], d[2] = g, g, g
			if dcn == 4 {
				d[3] = 255
			}
		}
	}
}

// swapRB exchanges the first and third channel. Alpha is carried over
// from a 4-channel source and set opaque otherwise.
func swapRB(dst, src raster.View) {
	scn, dcn := src.Channels, dst.Channels
	for y := 0; y < src.Height; y++ {
		srow := src.Row(y)
		drow := dst.Row(y)
		for x := 0; x < src.Width; x++ {
			p := srow[x*scn : x*scn+scn]
			d := drow[x*dcn : x*dcn+dcn]
			d[0], d[1], d[2] = p[2], p[1], p[0]
			if dcn == 4 {
				if scn == 4 {
					d[3] = p[3]
				} else {
					d[3] = 255
				}
			}
		}
	}
}
