package pipeline

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/AnyUserName/minicv-cli/internal/manifest"
	"github.com/AnyUserName/minicv-cli/internal/profile"
	"go.uber.org/zap"
)

// Config holds all parameters for a scan run.
type Config struct {
	InputDir   string
	Profile    profile.Profile
	Workers    int
	AutoOrient bool // apply EXIF orientation before hashing
	Logger     *zap.Logger
}

// Pipeline hashes every image under a directory.
type Pipeline struct {
	cfg Config
	log *zap.Logger
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{cfg: cfg, log: log}
}

// Run scans the input directory, hashes each image in a bounded worker
// pool and returns the manifest with similar groups filled in.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	sources, err := ScanImages(p.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", p.cfg.InputDir)
	}
	p.log.Info("scan started",
		zap.String("dir", p.cfg.InputDir),
		zap.Int("images", len(sources)),
		zap.Int("workers", p.cfg.Workers),
	)

	results := make([]processResult, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[idx] = processImage(s, p.cfg.AutoOrient)
			if r := results[idx]; r.err == nil {
				p.log.Debug("hashed",
					zap.String("key", s.Key),
					zap.Stringer("dhash", r.entry.DHash),
					zap.String("content", r.entry.ContentHash),
				)
			}
		}(i, src)
	}
	wg.Wait()

	m := manifest.New(p.cfg.Profile.Name, p.cfg.Profile.Threshold)
	if abs, err := filepath.Abs(p.cfg.InputDir); err == nil {
		m.BasePath = filepath.ToSlash(abs)
	}

	var failed int
	for _, r := range results {
		if r.err != nil {
			failed++
			p.log.Warn("skipping image", zap.String("key", r.key), zap.Error(r.err))
			continue
		}
		m.Entries[r.key] = r.entry
	}
	if failed == len(sources) {
		return nil, fmt.Errorf("all %d images failed to process", failed)
	}

	m.BuildInfo = &manifest.BuildInfo{
		Workers:    p.cfg.Workers,
		AutoOrient: p.cfg.AutoOrient,
	}
	m.Groups = m.Similar(p.cfg.Profile.Threshold)
	m.Stats.Failed = failed
	m.ComputeStats()

	p.log.Info("scan finished",
		zap.Int("hashed", len(m.Entries)),
		zap.Int("failed", failed),
		zap.Int("similar_groups", len(m.Groups)),
	)
	return m, nil
}
