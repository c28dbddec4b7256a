// Package raster describes the 8-bit interleaved buffers the resampler and
// color converter operate on.
package raster

import (
	"errors"
	"fmt"
	"math"
)

// Error taxonomy shared by every engine package. Functions return these
// wrapped with context; test with errors.Is.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrDimensionOverflow = errors.New("dimension overflow")
	ErrInvalidStride     = errors.New("invalid stride")
	ErrEmptyBuffer       = errors.New("empty buffer")
	ErrAllocation        = errors.New("allocation failure")
)

// View is a borrowed window over a caller-owned byte buffer.
// Rows are top-to-bottom, channels interleaved, and Stride may exceed
// Width*Channels. Nothing in this module keeps a View past the call it
// was passed to.
type View struct {
	Pix      []byte
	Width    int
	Height   int
	Stride   int // bytes between row starts
	Channels int
}

// New wraps pix as a tightly packed view.
func New(pix []byte, width, height, channels int) View {
	return View{Pix: pix, Width: width, Height: height, Stride: width * channels, Channels: channels}
}

// Check validates the view. It never touches Pix contents.
func (v View) Check() error {
	if v.Pix == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidArgument)
	}
	if v.Width <= 0 || v.Height <= 0 || v.Channels <= 0 {
		return fmt.Errorf("%w: size %dx%d, %d channels", ErrInvalidArgument, v.Width, v.Height, v.Channels)
	}
	if v.Width > math.MaxInt/v.Channels {
		return fmt.Errorf("%w: width %d", ErrDimensionOverflow, v.Width)
	}
	rowLen := v.Width * v.Channels
	if v.Stride < rowLen {
		return fmt.Errorf("%w: stride %d < row %d", ErrInvalidStride, v.Stride, rowLen)
	}
	if v.Height-1 > (math.MaxInt-rowLen)/v.Stride {
		return fmt.Errorf("%w: height %d", ErrDimensionOverflow, v.Height)
	}
	if need := v.Size(); len(v.Pix) < need {
		return fmt.Errorf("%w: buffer %d bytes, need %d", ErrInvalidArgument, len(v.Pix), need)
	}
	return nil
}

// Size is the minimal buffer length the view addresses.
func (v View) Size() int {
	return (v.Height-1)*v.Stride + v.Width*v.Channels
}

// RowLen returns Width*Channels.
func (v View) RowLen() int {
	return v.Width * v.Channels
}

// Row returns the packed samples of row y.
func (v View) Row(y int) []byte {
	off := y * v.Stride
	return v.Pix[off : off+v.Width*v.Channels : off+v.Width*v.Channels]
}
