package manifest

import "github.com/AnyUserName/minicv-cli/internal/dhash"

// IndexFileName is the file written by scan into its output directory.
const IndexFileName = "minicv.index.json"

// Manifest is the top-level output of a minicv scan: one entry per image
// plus the near-duplicate groups found at the profile threshold.
type Manifest struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Profile     string           `json:"profile"`
	Threshold   int              `json:"threshold"`
	BasePath    string           `json:"base_path"`
	BuildInfo   *BuildInfo       `json:"build_info,omitempty"`
	Entries     map[string]Entry `json:"entries"` // keyed by slash-separated path relative to base_path
	Groups      [][]string       `json:"similar_groups,omitempty"`
	Stats       Stats            `json:"stats"`
}

// BuildInfo captures scan-time parameters for diagnostics.
type BuildInfo struct {
	Workers    int  `json:"workers"`
	AutoOrient bool `json:"auto_orient"`
}

// Entry describes one scanned image.
type Entry struct {
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	Format      string     `json:"format"`
	Size        int64      `json:"size"`         // bytes on disk
	ContentHash string     `json:"content_hash"` // xxhash64 of the file, 16 hex chars
	DHash       dhash.Hash `json:"dhash"`
}

// Stats aggregates scan metrics.
type Stats struct {
	TotalFiles     int   `json:"total_files"`
	TotalBytes     int64 `json:"total_bytes"`
	UniqueContent  int   `json:"unique_content"`
	DuplicateFiles int   `json:"duplicate_files"` // byte-identical to an earlier file
	UniqueDHash    int   `json:"unique_dhash"`
	SimilarGroups  int   `json:"similar_groups"`
	Failed         int   `json:"failed,omitempty"` // files that could not be hashed
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
