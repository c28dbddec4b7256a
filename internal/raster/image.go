package raster

import "image"

// FromGray views a Gray image as a single-channel buffer.
func FromGray(img *image.Gray) View {
	b := img.Bounds()
	return View{Pix: img.Pix, Width: b.Dx(), Height: b.Dy(), Stride: img.Stride, Channels: 1}
}

// FromRGBA views premultiplied RGBA pixels as a 4-channel buffer.
func FromRGBA(img *image.RGBA) View {
	b := img.Bounds()
	return View{Pix: img.Pix, Width: b.Dx(), Height: b.Dy(), Stride: img.Stride, Channels: 4}
}

// FromNRGBA views non-premultiplied RGBA pixels as a 4-channel buffer.
func FromNRGBA(img *image.NRGBA) View {
	b := img.Bounds()
	return View{Pix: img.Pix, Width: b.Dx(), Height: b.Dy(), Stride: img.Stride, Channels: 4}
}
