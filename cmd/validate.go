package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/minicv-cli/internal/hasher"
	"github.com/AnyUserName/minicv-cli/internal/manifest"
	"github.com/spf13/cobra"
)

var validateVerify bool

var validateCmd = &cobra.Command{
	Use:   "validate <index_path>",
	Short: "Validate a scan index and check referenced files",
	Long: `Checks the index schema and stats, confirms every entry's file still
exists with the recorded size, and with --verify re-hashes file content.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateVerify, "verify", false, "re-hash file content and compare")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	m, err := manifest.ReadJSON(args[0])
	if err != nil {
		return err
	}

	errs := validateManifest(m, validateVerify)
	out := cmd.OutOrStdout()
	if len(errs) == 0 {
		fmt.Fprintln(out, "  ✓ Index is valid")
		fmt.Fprintf(out, "  ✓ %d entries, all files present\n", len(m.Entries))
		return nil
	}

	fmt.Fprintf(out, "  ✗ Index has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Fprintf(out, "    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}

func validateManifest(m *manifest.Manifest, verify bool) []string {
	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported index version: %d", m.Version))
	}
	if m.Threshold < 0 || m.Threshold > 64 {
		errs = append(errs, fmt.Sprintf("threshold out of range: %d", m.Threshold))
	}

	for _, key := range m.Keys() {
		e := m.Entries[key]
		if e.Width <= 0 || e.Height <= 0 {
			errs = append(errs, fmt.Sprintf("entry %q: invalid dimensions %dx%d", key, e.Width, e.Height))
		}
		if e.Format == "" {
			errs = append(errs, fmt.Sprintf("entry %q: empty format", key))
		}
		if len(e.ContentHash) != 16 {
			errs = append(errs, fmt.Sprintf("entry %q: malformed content hash %q", key, e.ContentHash))
		}

		path := filepath.Join(filepath.FromSlash(m.BasePath), filepath.FromSlash(key))
		info, err := os.Stat(path)
		if err != nil {
			errs = append(errs, fmt.Sprintf("entry %q: file not found: %s", key, path))
			continue
		}
		if info.Size() != e.Size {
			errs = append(errs, fmt.Sprintf("entry %q: size mismatch: index=%d, disk=%d", key, e.Size, info.Size()))
		}
		if verify {
			sum, _, err := hasher.ContentHashFile(path)
			if err != nil {
				errs = append(errs, fmt.Sprintf("entry %q: %v", key, err))
			} else if sum != e.ContentHash {
				errs = append(errs, fmt.Sprintf("entry %q: content changed: index=%s, disk=%s", key, e.ContentHash, sum))
			}
		}
	}

	for i, g := range m.Groups {
		if len(g) < 2 {
			errs = append(errs, fmt.Sprintf("similar_groups[%d]: fewer than two members", i))
		}
		for _, k := range g {
			if _, ok := m.Entries[k]; !ok {
				errs = append(errs, fmt.Sprintf("similar_groups[%d]: unknown entry %q", i, k))
			}
		}
	}

	// Stats must agree with a fresh computation.
	want := *m
	want.ComputeStats()
	if m.Stats != want.Stats {
		errs = append(errs, fmt.Sprintf("stats mismatch: index=%+v, computed=%+v", m.Stats, want.Stats))
	}

	return errs
}
