package hasher

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestContentHash_Known(t *testing.T) {
	// xxHash64 of the empty input with seed 0.
	if got := ContentHash(nil); got != "ef46db3751d8e999" {
		t.Errorf("empty: got %s", got)
	}
	a := ContentHash([]byte("minicv"))
	if len(a) != 16 {
		t.Fatalf("want 16 hex digits, got %q", a)
	}
	if a == ContentHash([]byte("minicw")) {
		t.Error("different inputs collided")
	}
}

func TestContentHashReader_MatchesBytes(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 4099)
	sum, n, err := ContentHashReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(len(data)) {
		t.Errorf("count: got %d, want %d", n, len(data))
	}
	if want := ContentHash(data); sum != want {
		t.Errorf("reader %s, bytes %s", sum, want)
	}
}

func TestContentHashFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.bin")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 1000)), 0o644); err != nil {
		t.Fatal(err)
	}
	sum, n, err := ContentHashFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1000 || sum != ContentHash([]byte(strings.Repeat("x", 1000))) {
		t.Errorf("got %s/%d", sum, n)
	}
	if _, _, err := ContentHashFile(filepath.Join(dir, "nope")); err == nil {
		t.Error("missing file accepted")
	}
}
