//go:build ignore

// gen_fixtures writes a small near-duplicate image set for smoke-testing
// `minicv scan`.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/AnyUserName/minicv-cli/internal/resize"
	"github.com/disintegration/imaging"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	if err := os.MkdirAll(filepath.Join(dir, "copies"), 0o755); err != nil {
		fail(err)
	}

	base := scene(480, 320)
	save(filepath.Join(dir, "scene.png"), base)
	save(filepath.Join(dir, "copies", "scene.png"), base) // byte-identical
	save(filepath.Join(dir, "scene-q60.jpg"), base, imaging.JPEGQuality(60))
	save(filepath.Join(dir, "scene-bright.png"), imaging.AdjustBrightness(base, 8))

	small, err := resize.Image(base, 160, 107)
	if err != nil {
		fail(err)
	}
	save(filepath.Join(dir, "scene-small.png"), small)

	save(filepath.Join(dir, "scene-flipped.png"), imaging.FlipH(base))
	save(filepath.Join(dir, "noise.png"), noise(200, 200))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 7 fixtures in %s\n", dir)
}

// scene draws a sky gradient over a ground band with a dark "sun" disc.
func scene(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	cx, cy, r := w*2/3, h/3, h/6
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: uint8(90 + y*100/h), G: uint8(140 + y*80/h), B: 230, A: 255}
			if y > h*2/3 {
				c = color.NRGBA{R: 60, G: uint8(120 + x*60/w), B: 40, A: 255}
			}
			if dx, dy := x-cx, y-cy; dx*dx+dy*dy < r*r {
				c = color.NRGBA{R: 40, G: 30, B: 20, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// noise is a deterministic xorshift pattern unrelated to scene.
func noise(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	s := uint32(2463534242)
	for i := range img.Pix {
		s ^= s << 13
		s ^= s >> 17
		s ^= s << 5
		img.Pix[i] = uint8(s)
	}
	return img
}

func save(path string, img image.Image, opts ...imaging.EncodeOption) {
	if err := imaging.Save(img, path, opts...); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "[gen_fixtures]", err)
	os.Exit(1)
}
