package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/AnyUserName/minicv-cli/internal/manifest"
	"github.com/AnyUserName/minicv-cli/internal/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	scanOutDir  string
	scanProfile string
	scanWorkers int
)

var scanCmd = &cobra.Command{
	Use:   "scan <input_dir>",
	Short: "Hash every image in a directory and report duplicates",
	Long: `Walks input_dir for images (png, jpg, jpeg, gif, bmp, tiff, webp),
computes an xxhash of each file and a dhash of its pixels, and writes
` + manifest.IndexFileName + ` to the output directory.

Byte-identical files share a content hash. Files whose dhash distance is
within the profile threshold are reported as similar groups.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanOutDir, "out", "o", ".", "output directory for the index")
	scanCmd.Flags().StringVarP(&scanProfile, "profile", "p", "", "similarity profile (marsbot, strict, loose)")
	scanCmd.Flags().IntVarP(&scanWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	start := time.Now()

	absInput, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput, err := filepath.Abs(scanOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	prof := resolveProfile(cmd, scanProfile)
	workers := cfg.WorkerCount()
	if cmd.Flags().Changed("workers") && scanWorkers > 0 {
		workers = scanWorkers
	}

	logger.Debug("scan config",
		zap.String("input", absInput),
		zap.String("output", absOutput),
		zap.String("profile", prof.Name),
		zap.Int("threshold", prof.Threshold),
	)

	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p := pipeline.New(pipeline.Config{
		InputDir:   absInput,
		Profile:    prof,
		Workers:    workers,
		AutoOrient: prof.AutoOrient,
		Logger:     logger,
	})
	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	indexPath := filepath.Join(absOutput, manifest.IndexFileName)
	if err := manifest.WriteJSON(m, indexPath); err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	printScanReport(cmd.OutOrStdout(), m, indexPath, time.Since(start))
	return nil
}

func printScanReport(w io.Writer, m *manifest.Manifest, indexPath string, elapsed time.Duration) {
	s := m.Stats
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Images:         %d (%s)\n", s.TotalFiles, formatBytes(s.TotalBytes))
	if s.Failed > 0 {
		fmt.Fprintf(w, "  Failed:         %d\n", s.Failed)
	}
	fmt.Fprintf(w, "  Exact copies:   %d\n", s.DuplicateFiles)
	fmt.Fprintf(w, "  Distinct dhash: %d\n", s.UniqueDHash)
	fmt.Fprintf(w, "  Similar groups: %d (threshold %d, profile %s)\n", s.SimilarGroups, m.Threshold, m.Profile)
	if m.BuildInfo != nil {
		fmt.Fprintf(w, "  Workers:        %d\n", m.BuildInfo.Workers)
	}
	fmt.Fprintf(w, "  Time:           %s\n", elapsed.Round(time.Millisecond))
	fmt.Fprintln(w)

	if dups := m.Duplicates(); len(dups) > 0 {
		hashes := make([]string, 0, len(dups))
		for h := range dups {
			hashes = append(hashes, h)
		}
		sort.Strings(hashes)
		fmt.Fprintln(w, "  Exact copies:")
		for _, h := range hashes {
			fmt.Fprintf(w, "    %s\n", h)
			for _, k := range dups[h] {
				fmt.Fprintf(w, "      %s\n", k)
			}
		}
		fmt.Fprintln(w)
	}

	printGroups(w, m, m.Groups)
	fmt.Fprintf(w, "  Index:          %s\n", indexPath)
	fmt.Fprintln(w)
}

// printGroups lists each group with the distance of every member to the
// group's first entry.
func printGroups(w io.Writer, m *manifest.Manifest, groups [][]string) {
	if len(groups) == 0 {
		return
	}
	fmt.Fprintln(w, "  Similar images:")
	for i, g := range groups {
		first := m.Entries[g[0]].DHash
		fmt.Fprintf(w, "    group %d\n", i+1)
		for _, k := range g {
			e := m.Entries[k]
			fmt.Fprintf(w, "      %s  d=%-2d  %dx%d  %s\n", e.DHash, first.Distance(e.DHash), e.Width, e.Height, k)
		}
	}
	fmt.Fprintln(w)
}
