package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/AnyUserName/minicv-cli/internal/dhash"
)

func sample() *Manifest {
	m := New("test-profile", 2)
	m.BuildInfo = &BuildInfo{Workers: 4, AutoOrient: true}
	m.Entries["a.png"] = Entry{Width: 800, Height: 600, Format: "png", Size: 1000, ContentHash: "1111111111111111", DHash: dhash.Hash{0x00}}
	m.Entries["b.jpeg"] = Entry{Width: 400, Height: 300, Format: "jpeg", Size: 500, ContentHash: "2222222222222222", DHash: dhash.Hash{0x03}}
	m.Entries["copy/a.png"] = Entry{Width: 800, Height: 600, Format: "png", Size: 1000, ContentHash: "1111111111111111", DHash: dhash.Hash{0x00}}
	m.Entries["other.gif"] = Entry{Width: 10, Height: 10, Format: "gif", Size: 77, ContentHash: "3333333333333333", DHash: dhash.Hash{0xFF, 0xFF, 0xFF}}
	return m
}

func TestManifestRoundtrip(t *testing.T) {
	m := sample()
	m.Groups = m.Similar(m.Threshold)
	m.Stats.Failed = 1

	path := filepath.Join(t.TempDir(), IndexFileName)
	if err := WriteJSON(m, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	m2, err := ReadJSON(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if m2.Version != SupportedManifestVersion {
		t.Errorf("version: got %d, want %d", m2.Version, SupportedManifestVersion)
	}
	if m2.Profile != "test-profile" || m2.Threshold != 2 {
		t.Errorf("profile: got %q/%d", m2.Profile, m2.Threshold)
	}
	if m2.BuildInfo == nil || m2.BuildInfo.Workers != 4 || !m2.BuildInfo.AutoOrient {
		t.Fatalf("build_info: got %+v", m2.BuildInfo)
	}
	e, ok := m2.Entries["b.jpeg"]
	if !ok {
		t.Fatal("entry b.jpeg missing")
	}
	if e.DHash != (dhash.Hash{0x03}) || e.ContentHash != "2222222222222222" {
		t.Errorf("entry: got %+v", e)
	}

	want := Stats{
		TotalFiles:     4,
		TotalBytes:     2577,
		UniqueContent:  3,
		DuplicateFiles: 1,
		UniqueDHash:    3,
		SimilarGroups:  1,
		Failed:         1,
	}
	if m2.Stats != want {
		t.Errorf("stats: got %+v, want %+v", m2.Stats, want)
	}
}

func TestManifestDHashIsHex(t *testing.T) {
	m := sample()
	data, err := json.Marshal(m.Entries["other.gif"])
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if raw["dhash"] != "ffffff0000000000" {
		t.Errorf("dhash encoded as %v", raw["dhash"])
	}
}

func TestSimilarAndDuplicates(t *testing.T) {
	m := sample()
	groups := m.Similar(2)
	if len(groups) != 1 || len(groups[0]) != 3 {
		t.Fatalf("groups: %v", groups)
	}
	for i, want := range []string{"a.png", "b.jpeg", "copy/a.png"} {
		if groups[0][i] != want {
			t.Errorf("group[%d] = %q, want %q", i, groups[0][i], want)
		}
	}
	if g := m.Similar(0); len(g) != 1 || len(g[0]) != 2 {
		t.Errorf("threshold 0: %v", g)
	}

	dups := m.Duplicates()
	if len(dups) != 1 || len(dups["1111111111111111"]) != 2 {
		t.Errorf("duplicates: %v", dups)
	}
}

func TestManifestVersion(t *testing.T) {
	m := New("v-test", 6)
	if m.Version != SupportedManifestVersion {
		t.Errorf("new manifest version: got %d, want %d", m.Version, SupportedManifestVersion)
	}
}

func TestManifestIgnoresUnknownFields(t *testing.T) {
	raw := `{
		"version": 1,
		"generated_at": "2025-01-01T00:00:00Z",
		"profile": "test",
		"threshold": 6,
		"base_path": "./",
		"future_field": "should be ignored",
		"build_info": { "workers": 8, "auto_orient": false, "new_flag": true },
		"entries": {},
		"stats": { "total_files": 0, "total_bytes": 0, "new_stat": 42 }
	}`

	path := filepath.Join(t.TempDir(), "index.json")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("unmarshal with unknown fields: %v", err)
	}
	if m.Version != 1 || m.Threshold != 6 {
		t.Errorf("got version %d threshold %d", m.Version, m.Threshold)
	}
	if m.BuildInfo == nil || m.BuildInfo.Workers != 8 {
		t.Error("build_info not parsed correctly")
	}
}

func TestReadJSON_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := ReadJSON(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file accepted")
	}
	if _, err := ReadJSON(dir); err == nil {
		t.Error("directory without index accepted")
	}
	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{not json"), 0o644)
	if _, err := ReadJSON(bad); err == nil {
		t.Error("malformed json accepted")
	}
}
