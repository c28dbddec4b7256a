package pipeline

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Source represents a discovered image file.
type Source struct {
	// AbsPath is the path used to open the file.
	AbsPath string
	// RelPath is the path relative to the input directory, slash-separated.
	RelPath string
	// Key identifies the image in the index. It equals RelPath so that
	// a.png and a.jpeg stay distinct.
	Key string
	// Format is the normalized format name (jpeg, png, gif, tiff, bmp, webp).
	Format string
	// Size is the file size in bytes.
	Size int64
}

// formatOf maps a file extension to a format name, or "" if the file is
// not a decodable image.
func formatOf(ext string) string {
	ext = strings.ToLower(ext)
	if ext == ".webp" {
		return "webp"
	}
	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return ""
	}
	return strings.ToLower(f.String())
}

// ScanImages walks the input directory in lexical order and returns all
// image sources. Hidden files and directories are skipped.
func ScanImages(inputDir string) ([]Source, error) {
	var sources []Source

	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		hidden := strings.HasPrefix(d.Name(), ".") && path != inputDir
		if d.IsDir() {
			if hidden {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		format := formatOf(filepath.Ext(path))
		if format == "" {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		sources = append(sources, Source{
			AbsPath: path,
			RelPath: relPath,
			Key:     relPath,
			Format:  format,
			Size:    info.Size(),
		})
		return nil
	})

	return sources, err
}
