package encoder

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"
)

// tool is an external command-line encoder located on PATH once.
type tool struct {
	name string
	once sync.Once
	path string
}

func (t *tool) available() bool {
	t.once.Do(func() {
		if p, err := exec.LookPath(t.name); err == nil {
			t.path = p
		}
	})
	return t.path != ""
}

// run stages img as a temporary PNG, invokes the tool with args built
// from the source and destination paths, and copies the result to w.
func (t *tool) run(w io.Writer, img image.Image, ext string, args func(src, dst string) []string) error {
	if !t.available() {
		return fmt.Errorf("%s not found in PATH", t.name)
	}
	dir, err := os.MkdirTemp("", "minicv-"+t.name+"-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "src.png")
	dst := filepath.Join(dir, "dst"+ext)
	f, err := os.Create(src)
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode temp png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp png: %w", err)
	}

	if out, err := exec.Command(t.path, args(src, dst)...).CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", t.name, err, out)
	}

	out, err := os.Open(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(w, out)
	return err
}

// WebPEncoder encodes images to WebP by shelling out to cwebp.
// Install: brew install webp / apt install webp
type WebPEncoder struct {
	cwebp tool
}

func NewWebPEncoder() *WebPEncoder { return &WebPEncoder{cwebp: tool{name: "cwebp"}} }

func (e *WebPEncoder) Format() string       { return "webp" }
func (e *WebPEncoder) Extensions() []string { return []string{".webp"} }
func (e *WebPEncoder) Available() bool      { return e.cwebp.available() }

func (e *WebPEncoder) Encode(w io.Writer, img image.Image, quality int) error {
	q := strconv.Itoa(clampQuality(quality))
	return e.cwebp.run(w, img, ".webp", func(src, dst string) []string {
		return []string{"-q", q, "-m", "6", "-mt", "-quiet", src, "-o", dst}
	})
}

// AVIFEncoder encodes images to AVIF by shelling out to avifenc.
// Install: brew install libavif / apt install libavif-bin
type AVIFEncoder struct {
	avifenc tool
}

func NewAVIFEncoder() *AVIFEncoder { return &AVIFEncoder{avifenc: tool{name: "avifenc"}} }

func (e *AVIFEncoder) Format() string       { return "avif" }
func (e *AVIFEncoder) Extensions() []string { return []string{".avif"} }
func (e *AVIFEncoder) Available() bool      { return e.avifenc.available() }

func (e *AVIFEncoder) Encode(w io.Writer, img image.Image, quality int) error {
	// avifenc quantizers run 0 (best) to 63.
	q := strconv.Itoa(63 - clampQuality(quality)*63/100)
	return e.avifenc.run(w, img, ".avif", func(src, dst string) []string {
		return []string{"--min", q, "--max", q, "--speed", "6", "-j", "all", src, dst}
	})
}
