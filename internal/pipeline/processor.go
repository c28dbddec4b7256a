package pipeline

import (
	"bytes"
	"fmt"
	"os"

	"github.com/AnyUserName/minicv-cli/internal/dhash"
	"github.com/AnyUserName/minicv-cli/internal/hasher"
	"github.com/AnyUserName/minicv-cli/internal/manifest"
	"github.com/disintegration/imaging"
)

// processResult holds the result of hashing a single source image.
type processResult struct {
	key   string
	entry manifest.Entry
	err   error
}

// processImage reads one file once and derives both fingerprints from
// the same bytes: xxhash of the raw file and dhash of the decoded pixels.
func processImage(src Source, autoOrient bool) processResult {
	result := processResult{key: src.Key}

	data, err := os.ReadFile(src.AbsPath)
	if err != nil {
		result.err = fmt.Errorf("read %s: %w", src.RelPath, err)
		return result
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(autoOrient))
	if err != nil {
		result.err = fmt.Errorf("decode %s: %w", src.RelPath, err)
		return result
	}

	h, err := dhash.FromImage(img)
	if err != nil {
		result.err = fmt.Errorf("dhash %s: %w", src.RelPath, err)
		return result
	}

	b := img.Bounds()
	result.entry = manifest.Entry{
		Width:       b.Dx(),
		Height:      b.Dy(),
		Format:      src.Format,
		Size:        int64(len(data)),
		ContentHash: hasher.ContentHash(data),
		DHash:       h,
	}
	return result
}
