package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/AnyUserName/minicv-cli/internal/manifest"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_index>",
	Short: "Display statistics for a scan index",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	m, err := manifest.ReadJSON(args[0])
	if err != nil {
		return err
	}
	printStats(cmd.OutOrStdout(), m)
	return nil
}

func printStats(w io.Writer, m *manifest.Manifest) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Index version:    %d\n", m.Version)
	fmt.Fprintf(w, "  Generated:        %s\n", m.GeneratedAt)
	fmt.Fprintf(w, "  Base path:        %s\n", m.BasePath)
	fmt.Fprintf(w, "  Profile:          %s (threshold %d)\n", m.Profile, m.Threshold)
	if m.BuildInfo != nil {
		fmt.Fprintf(w, "  Workers:          %d\n", m.BuildInfo.Workers)
		fmt.Fprintf(w, "  Auto-orient:      %v\n", m.BuildInfo.AutoOrient)
	}
	fmt.Fprintln(w)

	s := m.Stats
	fmt.Fprintf(w, "  Images:           %d\n", s.TotalFiles)
	fmt.Fprintf(w, "  Total size:       %s\n", formatBytes(s.TotalBytes))
	fmt.Fprintf(w, "  Unique content:   %d\n", s.UniqueContent)
	fmt.Fprintf(w, "  Exact copies:     %d\n", s.DuplicateFiles)
	fmt.Fprintf(w, "  Unique dhash:     %d\n", s.UniqueDHash)
	fmt.Fprintf(w, "  Similar groups:   %d\n", s.SimilarGroups)
	if s.Failed > 0 {
		fmt.Fprintf(w, "  Failed:           %d\n", s.Failed)
	}
	fmt.Fprintln(w)

	type formatStat struct {
		count int
		bytes int64
	}
	byFormat := map[string]formatStat{}
	for _, e := range m.Entries {
		fs := byFormat[e.Format]
		fs.count++
		fs.bytes += e.Size
		byFormat[e.Format] = fs
	}
	formats := make([]string, 0, len(byFormat))
	for f := range byFormat {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	fmt.Fprintln(w, "  Format breakdown:")
	for _, f := range formats {
		fs := byFormat[f]
		fmt.Fprintf(w, "    %-6s  %4d files  %s\n", f, fs.count, formatBytes(fs.bytes))
	}
	fmt.Fprintln(w)

	// Wasted bytes: every copy after the first of a byte-identical set.
	var wasted int64
	for _, keys := range m.Duplicates() {
		wasted += int64(len(keys)-1) * m.Entries[keys[0]].Size
	}
	if wasted > 0 {
		fmt.Fprintf(w, "  Reclaimable by removing exact copies: %s\n\n", formatBytes(wasted))
	}
}
