package cmd

import (
	"bufio"
	"fmt"
	"image"
	"os"

	"github.com/AnyUserName/minicv-cli/internal/encoder"
	"github.com/AnyUserName/minicv-cli/internal/resize"
	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	resizeWidth   int
	resizeHeight  int
	resizeQuality int
	resizeProfile string
)

var resizeCmd = &cobra.Command{
	Use:   "resize <in> <out>",
	Short: "Resample an image with the area/linear engine",
	Long: `Resizes <in> to the requested size using the same resampler that feeds
dhash: box averaging when shrinking, bilinear when either axis grows.
A zero width or height keeps the aspect ratio. The output format follows
the extension of <out> (png, jpg, gif, bmp, tiff, webp, avif).`,
	Args: cobra.ExactArgs(2),
	RunE: runResize,
}

func init() {
	resizeCmd.Flags().IntVarP(&resizeWidth, "width", "W", 0, "target width")
	resizeCmd.Flags().IntVarP(&resizeHeight, "height", "H", 0, "target height")
	resizeCmd.Flags().IntVarP(&resizeQuality, "quality", "q", 0, "quality 1-100 (0 = profile default)")
	resizeCmd.Flags().StringVarP(&resizeProfile, "profile", "p", "", "profile supplying the default quality")
	rootCmd.AddCommand(resizeCmd)
}

// targetSize fills a missing dimension from the source aspect ratio.
func targetSize(srcW, srcH, w, h int) (int, int, error) {
	switch {
	case w < 0 || h < 0 || (w == 0 && h == 0):
		return 0, 0, fmt.Errorf("need a positive --width or --height, got %dx%d", w, h)
	case w == 0:
		w = max(1, (srcW*h+srcH/2)/srcH)
	case h == 0:
		h = max(1, (srcH*w+srcW/2)/srcW)
	}
	return w, h, nil
}

// saveEncoded writes img to path with enc. Any failure after the file is
// created removes it.
func saveEncoded(path string, enc encoder.Encoder, img image.Image, quality int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := enc.Encode(bw, img, quality); err != nil {
		return fmt.Errorf("encode %s: %w", enc.Format(), err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func runResize(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]
	prof := resolveProfile(cmd, resizeProfile)

	enc, err := encoder.NewRegistry().ForPath(out)
	if err != nil {
		return err
	}

	img, err := imaging.Open(in, imaging.AutoOrientation(prof.AutoOrient))
	if err != nil {
		return fmt.Errorf("open %s: %w", in, err)
	}
	b := img.Bounds()
	w, h, err := targetSize(b.Dx(), b.Dy(), resizeWidth, resizeHeight)
	if err != nil {
		return err
	}

	dst, err := resize.Image(img, w, h)
	if err != nil {
		return fmt.Errorf("resize: %w", err)
	}

	quality := prof.Quality
	if resizeQuality > 0 {
		quality = resizeQuality
	}

	if err := saveEncoded(out, enc, dst, quality); err != nil {
		return err
	}

	logger.Info("resized",
		zap.String("in", in),
		zap.String("out", out),
		zap.Int("src_w", b.Dx()),
		zap.Int("src_h", b.Dy()),
		zap.Int("dst_w", w),
		zap.Int("dst_h", h),
		zap.String("format", enc.Format()),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "%dx%d -> %dx%d  %s\n", b.Dx(), b.Dy(), w, h, out)
	return nil
}
