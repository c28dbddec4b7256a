package cmd

import (
	"fmt"

	"github.com/AnyUserName/minicv-cli/internal/manifest"
	"github.com/spf13/cobra"
)

var similarThreshold int

var similarCmd = &cobra.Command{
	Use:   "similar <out_dir_or_index>",
	Short: "List near-duplicate groups from an index",
	Long: `Re-clusters the entries of an existing index. Without --threshold the
threshold recorded at scan time is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runSimilar,
}

func init() {
	similarCmd.Flags().IntVarP(&similarThreshold, "threshold", "t", 0, "max dhash distance (0-64)")
	rootCmd.AddCommand(similarCmd)
}

func runSimilar(cmd *cobra.Command, args []string) error {
	m, err := manifest.ReadJSON(args[0])
	if err != nil {
		return err
	}
	threshold := m.Threshold
	if cmd.Flags().Changed("threshold") {
		if similarThreshold < 0 || similarThreshold > 64 {
			return fmt.Errorf("threshold must be within 0-64, got %d", similarThreshold)
		}
		threshold = similarThreshold
	}

	groups := m.Similar(threshold)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %d group(s) at threshold %d across %d images\n\n", len(groups), threshold, len(m.Entries))
	printGroups(out, m, groups)
	return nil
}
