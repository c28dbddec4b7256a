package resize

import (
	"testing"

	"github.com/AnyUserName/minicv-cli/internal/raster"
)

// goldenPattern fills a packed buffer with a deterministic, non-separable
// texture so that every weight of a table contributes to the result.
func goldenPattern(w, h, cn int) raster.View {
	v := raster.New(make([]byte, w*h*cn), w, h, cn)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for c := 0; c < cn; c++ {
				v.Pix[(y*w+x)*cn+c] = uint8(x*53 + y*97 + c*29 + (x*y)%7*11)
			}
		}
	}
	return v
}

// Outputs recorded from the OpenCV-compatible C resampler for
// goldenPattern inputs.
var goldenCases = []struct {
	name       string
	sw, sh, cn int
	dw, dh     int
	want       []byte
}{
	{
		name: "general gray", sw: 13, sh: 11, cn: 1, dw: 9, dh: 8,
		want: []byte{
			44, 117, 139, 111, 103, 135, 161, 75, 100,
			128, 123, 114, 170, 142, 104, 127, 90, 75,
			85, 159, 166, 88, 130, 170, 118, 102, 145,
			170, 190, 128, 150, 165, 161, 144, 151, 121,
			135, 173, 88, 99, 112, 128, 127, 110, 177,
			148, 109, 88, 125, 173, 76, 138, 178, 120,
			73, 164, 122, 74, 163, 145, 167, 131, 119,
			144, 123, 130, 189, 115, 110, 183, 180, 74,
		},
	},
	{
		name: "general rgb", sw: 13, sh: 11, cn: 3, dw: 9, dh: 8,
		want: []byte{
			44, 73, 102, 117, 146, 132, 139, 168, 148, 111, 140, 83, 103, 132, 102, 135, 164, 155, 161, 190, 90, 75, 104, 106, 100, 129, 136,
			128, 157, 186, 123, 152, 110, 114, 143, 163, 170, 123, 152, 142, 149, 80, 104, 133, 99, 127, 156, 89, 90, 119, 103, 75, 104, 97,
			85, 106, 135, 159, 165, 79, 166, 193, 79, 88, 92, 109, 130, 132, 157, 170, 100, 129, 118, 104, 99, 102, 131, 137, 145, 174, 196,
			170, 84, 113, 190, 56, 85, 128, 123, 152, 150, 136, 78, 165, 56, 60, 161, 102, 131, 144, 109, 125, 151, 180, 46, 121, 150, 129,
			135, 99, 128, 173, 102, 131, 88, 83, 112, 99, 85, 114, 112, 141, 170, 128, 157, 186, 127, 91, 120, 110, 139, 168, 177, 206, 122,
			148, 177, 149, 109, 124, 81, 88, 115, 112, 125, 154, 183, 173, 74, 103, 76, 105, 134, 138, 135, 164, 178, 135, 164, 120, 91, 104,
			73, 102, 131, 164, 121, 150, 122, 142, 74, 74, 103, 132, 163, 192, 123, 145, 174, 141, 167, 100, 129, 131, 160, 189, 119, 148, 177,
			144, 173, 73, 123, 109, 138, 130, 154, 140, 189, 218, 61, 115, 144, 85, 110, 139, 131, 183, 69, 98, 180, 94, 123, 74, 103, 132,
		},
	},
	{
		name: "general rgba", sw: 50, sh: 40, cn: 4, dw: 9, dh: 8,
		want: []byte{
			128, 134, 121, 141, 131, 129, 105, 134, 122, 133, 124, 119, 125, 143, 126, 116, 141, 119, 131, 123, 127, 127, 134, 133, 112, 141, 138, 115, 117, 137, 127, 124, 128, 120, 131, 136,
			122, 114, 124, 130, 133, 133, 144, 120, 138, 128, 132, 117, 116, 120, 128, 127, 132, 136, 130, 143, 113, 137, 109, 119, 121, 116, 128, 129, 131, 133, 133, 135, 141, 115, 125, 117,
			129, 131, 127, 132, 136, 119, 125, 132, 131, 126, 127, 138, 137, 124, 124, 132, 136, 116, 110, 123, 139, 127, 134, 124, 126, 138, 124, 111, 106, 134, 113, 122, 131, 123, 128, 130,
			133, 129, 131, 123, 116, 131, 132, 151, 139, 123, 134, 127, 107, 134, 126, 135, 126, 139, 126, 138, 143, 123, 139, 128, 134, 102, 122, 127, 139, 126, 138, 129, 142, 129, 111, 140,
			120, 135, 131, 137, 121, 145, 114, 129, 128, 112, 124, 141, 124, 123, 141, 117, 135, 120, 126, 127, 127, 125, 121, 138, 140, 135, 123, 128, 124, 136, 116, 118, 126, 135, 118, 129,
			135, 127, 119, 124, 135, 136, 136, 115, 142, 129, 134, 120, 129, 118, 125, 124, 127, 147, 134, 135, 117, 136, 121, 132, 123, 125, 139, 141, 128, 119, 148, 135, 126, 127, 138, 125,
			129, 131, 127, 123, 138, 130, 109, 123, 130, 126, 121, 142, 127, 135, 140, 112, 124, 134, 121, 125, 128, 139, 135, 127, 146, 130, 144, 128, 105, 124, 116, 122, 132, 133, 135, 140,
			121, 117, 128, 129, 114, 129, 130, 132, 133, 110, 130, 141, 126, 125, 115, 123, 131, 132, 122, 134, 134, 123, 127, 116, 138, 115, 120, 134, 126, 124, 138, 117, 140, 145, 114, 128,
		},
	},
	{
		name: "linear upscale", sw: 3, sh: 2, cn: 1, dw: 10, dh: 7,
		want: []byte{
			0, 0, 0, 35, 53, 53, 71, 106, 106, 106,
			0, 0, 0, 35, 53, 53, 71, 106, 106, 106,
			0, 0, 0, 35, 53, 53, 71, 106, 106, 106,
			49, 49, 49, 87, 107, 107, 126, 166, 166, 166,
			97, 97, 97, 140, 161, 161, 182, 225, 225, 225,
			97, 97, 97, 140, 161, 161, 182, 225, 225, 225,
			97, 97, 97, 140, 161, 161, 182, 225, 225, 225,
		},
	},
	{
		name: "linear mixed axes", sw: 20, sh: 3, cn: 1, dw: 9, dh: 8,
		want: []byte{
			29, 140, 60, 107, 218, 103, 214, 69, 181,
			29, 140, 60, 107, 218, 103, 214, 69, 181,
			63, 127, 88, 143, 172, 101, 167, 108, 142,
			132, 100, 145, 214, 81, 97, 75, 186, 65,
			132, 100, 145, 214, 81, 97, 75, 186, 65,
			107, 124, 193, 107, 160, 76, 137, 127, 112,
			94, 137, 217, 53, 199, 65, 169, 98, 135,
			94, 137, 217, 53, 199, 65, 169, 98, 135,
		},
	},
}

func TestArea_Golden(t *testing.T) {
	for _, c := range goldenCases {
		t.Run(c.name, func(t *testing.T) {
			dst := raster.New(make([]byte, c.dw*c.dh*c.cn), c.dw, c.dh, c.cn)
			if err := Area(dst, goldenPattern(c.sw, c.sh, c.cn)); err != nil {
				t.Fatalf("Area: %v", err)
			}
			for i, got := range dst.Pix {
				if got != c.want[i] {
					row := i / (c.dw * c.cn)
					t.Fatalf("first mismatch at row %d offset %d: got %d, want %d",
						row, i-row*c.dw*c.cn, got, c.want[i])
				}
			}
		})
	}
}
