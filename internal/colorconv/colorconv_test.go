package colorconv

import (
	"bytes"
	"errors"
	"testing"

	"github.com/AnyUserName/minicv-cli/internal/raster"
)

func colorView(w, h, cn int) raster.View {
	v := raster.New(make([]byte, w*h*cn), w, h, cn)
	for i := range v.Pix {
		v.Pix[i] = uint8(i*53 + 7)
	}
	return v
}

func TestConvert_SwapRoundTrip(t *testing.T) {
	src := colorView(5, 4, 3)
	rgb := raster.New(make([]byte, len(src.Pix)), 5, 4, 3)
	back := raster.New(make([]byte, len(src.Pix)), 5, 4, 3)

	if err := Convert(rgb, src, BGR2RGB); err != nil {
		t.Fatal(err)
	}
	if err := Convert(back, rgb, RGB2BGR); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back.Pix, src.Pix) {
		t.Fatalf("BGR→RGB→BGR changed pixels")
	}
	if rgb.Pix[0] != src.Pix[2] || rgb.Pix[2] != src.Pix[0] || rgb.Pix[1] != src.Pix[1] {
		t.Errorf("first pixel not swapped: %v vs %v", rgb.Pix[:3], src.Pix[:3])
	}
}

func TestConvert_SwapAlpha(t *testing.T) {
	src := raster.New([]byte{1, 2, 3, 77}, 1, 1, 4)
	dst := raster.New(make([]byte, 4), 1, 1, 4)
	if err := Convert(dst, src, RGB2BGR); err != nil {
		t.Fatal(err)
	}
	if want := []byte{3, 2, 1, 77}; !bytes.Equal(dst.Pix, want) {
		t.Errorf("got %v, want %v", dst.Pix, want)
	}

	src = raster.New([]byte{1, 2, 3}, 1, 1, 3)
	if err := Convert(dst, src, BGR2RGB); err != nil {
		t.Fatal(err)
	}
	if want := []byte{3, 2, 1, 255}; !bytes.Equal(dst.Pix, want) {
		t.Errorf("got %v, want %v", dst.Pix, want)
	}
}

func TestConvert_ToGray(t *testing.T) {
	cases := []struct {
		name  string
		code  Code
		cn    int
		pixel []byte
		want  byte
	}{
		{"white", RGB2Gray, 3, []byte{255, 255, 255}, 255},
		{"black", BGR2Gray, 3, []byte{0, 0, 0}, 0},
		{"rgb red", RGB2Gray, 3, []byte{255, 0, 0}, 76},
		{"bgr blue", BGR2Gray, 3, []byte{255, 0, 0}, 29},
		{"green", RGB2Gray, 3, []byte{0, 255, 0}, 150},
		{"rgba red ignores alpha", RGBA2Gray, 4, []byte{255, 0, 0, 0}, 76},
		{"bgr from 4 channels", BGR2Gray, 4, []byte{0, 0, 255, 9}, 76},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			src := raster.New(c.pixel, 1, 1, c.cn)
			dst := raster.New(make([]byte, 1), 1, 1, 1)
			if err := Convert(dst, src, c.code); err != nil {
				t.Fatal(err)
			}
			if dst.Pix[0] != c.want {
				t.Errorf("got %d, want %d", dst.Pix[0], c.want)
			}
		})
	}
}

func TestConvert_GrayToColor(t *testing.T) {
	src := raster.View{Pix: []byte{10, 20, 0xFF, 30, 40, 0xFF}, Width: 2, Height: 2, Stride: 3, Channels: 1}
	dst := raster.New(make([]byte, 16), 2, 2, 4)
	if err := Convert(dst, src, Gray2BGR); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		10, 10, 10, 255, 20, 20, 20, 255,
		30, 30, 30, 255, 40, 40, 40, 255,
	}
	if !bytes.Equal(dst.Pix, want) {
		t.Errorf("got %v, want %v", dst.Pix, want)
	}
}

func TestConvert_ChannelPreconditions(t *testing.T) {
	gray := raster.New(make([]byte, 4), 2, 2, 1)
	rgb := raster.New(make([]byte, 12), 2, 2, 3)
	rgba := raster.New(make([]byte, 16), 2, 2, 4)
	two := raster.New(make([]byte, 8), 2, 2, 2)

	cases := []struct {
		name     string
		dst, src raster.View
		code     Code
	}{
		{"rgba2gray from 3", gray, rgb, RGBA2Gray},
		{"to gray into 3", rgb, rgba, RGB2Gray},
		{"gray source not 1", rgb, rgba, Gray2RGB},
		{"gray into 2", two, gray, Gray2BGR},
		{"swap from gray", rgb, gray, BGR2RGB},
		{"no change", gray, gray, NoChange},
		{"unknown", gray, rgb, Code(99)},
		{"size mismatch", raster.New(make([]byte, 3), 3, 1, 1), rgb, RGB2Gray},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := Convert(c.dst, c.src, c.code); !errors.Is(err, raster.ErrInvalidArgument) {
				t.Errorf("got %v, want invalid argument", err)
			}
		})
	}
}

func TestParseCode(t *testing.T) {
	for c := NoChange; c <= RGB2BGR; c++ {
		got, err := ParseCode(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCode(%q) = %v, %v", c.String(), got, err)
		}
	}
	if got, err := ParseCode(" RGBA2Gray "); err != nil || got != RGBA2Gray {
		t.Errorf("case-insensitive parse: %v, %v", got, err)
	}
	if _, err := ParseCode("hsv2gray"); !errors.Is(err, raster.ErrInvalidArgument) {
		t.Errorf("unknown name: got %v", err)
	}
	if s := Code(42).String(); s != "Code(42)" {
		t.Errorf("unknown String: %q", s)
	}
}
