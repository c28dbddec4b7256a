package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/AnyUserName/minicv-cli/internal/dhash"
)

// New creates an empty manifest with defaults.
func New(profileName string, threshold int) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Profile:     profileName,
		Threshold:   threshold,
		BasePath:    "./",
		Entries:     make(map[string]Entry),
	}
}

// Keys returns entry keys in sorted order.
func (m *Manifest) Keys() []string {
	keys := make([]string, 0, len(m.Entries))
	for k := range m.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Similar clusters entries whose dhash distance is within threshold.
// Each group lists keys in sorted order.
func (m *Manifest) Similar(threshold int) [][]string {
	keys := m.Keys()
	hashes := make([]dhash.Hash, len(keys))
	for i, k := range keys {
		hashes[i] = m.Entries[k].DHash
	}
	var groups [][]string
	for _, g := range dhash.Cluster(hashes, threshold) {
		names := make([]string, len(g))
		for i, idx := range g {
			names[i] = keys[idx]
		}
		groups = append(groups, names)
	}
	return groups
}

// Duplicates groups keys of byte-identical files by content hash.
// Only hashes shared by two or more entries are returned.
func (m *Manifest) Duplicates() map[string][]string {
	byHash := map[string][]string{}
	for _, k := range m.Keys() {
		h := m.Entries[k].ContentHash
		byHash[h] = append(byHash[h], k)
	}
	for h, keys := range byHash {
		if len(keys) < 2 {
			delete(byHash, h)
		}
	}
	return byHash
}

// ComputeStats recalculates aggregate statistics from entries.
// Failed is carried over since it cannot be derived from entries.
func (m *Manifest) ComputeStats() {
	s := Stats{Failed: m.Stats.Failed}
	s.TotalFiles = len(m.Entries)
	content := map[string]bool{}
	hashes := map[dhash.Hash]bool{}
	for _, e := range m.Entries {
		s.TotalBytes += e.Size
		content[e.ContentHash] = true
		hashes[e.DHash] = true
	}
	s.UniqueContent = len(content)
	s.DuplicateFiles = s.TotalFiles - s.UniqueContent
	s.UniqueDHash = len(hashes)
	s.SimilarGroups = len(m.Groups)
	m.Stats = s
}

// WriteJSON serializes the manifest to a JSON file with stable ordering.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON loads a manifest from path. A directory is resolved to the
// index file inside it.
func ReadJSON(path string) (*Manifest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, IndexFileName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
