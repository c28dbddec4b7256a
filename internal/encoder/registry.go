package encoder

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Registry maps output file extensions to encoders.
type Registry struct {
	all   []Encoder
	byExt map[string]Encoder
}

// NewRegistry creates a registry, probing all encoders for availability.
func NewRegistry() *Registry {
	r := &Registry{
		all: []Encoder{
			&PNGEncoder{},
			&JPEGEncoder{},
			NewWebPEncoder(),
			NewAVIFEncoder(),
			&GIFEncoder{},
			&BMPEncoder{},
			&TIFFEncoder{},
		},
		byExt: make(map[string]Encoder),
	}
	for _, enc := range r.all {
		if !enc.Available() {
			continue
		}
		for _, ext := range enc.Extensions() {
			r.byExt[ext] = enc
		}
	}
	return r
}

// ForPath returns the encoder selected by the extension of path.
func (r *Registry) ForPath(path string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if enc, ok := r.byExt[ext]; ok {
		return enc, nil
	}
	for _, enc := range r.all {
		for _, e := range enc.Extensions() {
			if e == ext {
				return nil, fmt.Errorf("%s encoder unavailable for %s", enc.Format(), path)
			}
		}
	}
	return nil, fmt.Errorf("no encoder for extension %q", ext)
}

// Available returns available format names in registration order.
func (r *Registry) Available() []string {
	var result []string
	for _, enc := range r.all {
		if enc.Available() {
			result = append(result, enc.Format())
		}
	}
	return result
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}
