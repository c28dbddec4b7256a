package cmd

import (
	"fmt"
	"runtime"

	"github.com/AnyUserName/minicv-cli/internal/config"
	"github.com/AnyUserName/minicv-cli/internal/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "0.1.0"
	verbose bool

	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "minicv",
	Short: "Perceptual image hashing with OpenCV-compatible resampling",
	Long: `minicv computes 64-bit difference hashes (dHash) that match the ones
produced by OpenCV's cvtColor + INTER_AREA resize pipeline, without linking
OpenCV. Hashes from existing databases keep working.

Use it to hash single files, compare two images, or scan a directory for
byte-identical and visually similar images.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"minicv %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// setup loads the environment config and builds the shared logger.
func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	logger, err = cfg.Logger()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	return nil
}

// resolveProfile picks the profile from the flag when set, otherwise
// from MINICV_PROFILE.
func resolveProfile(cmd *cobra.Command, flagValue string) profile.Profile {
	name := cfg.Profile
	if f := cmd.Flags().Lookup("profile"); f != nil && f.Changed {
		name = flagValue
	}
	if name == "" {
		name = profile.DefaultName
	}
	p := profile.Get(name)
	if !profile.Known(name) {
		logger.Warn("unknown profile, using defaults", zap.String("profile", name))
	}
	if cfg.AutoOrient {
		p.AutoOrient = true
	}
	return p
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
