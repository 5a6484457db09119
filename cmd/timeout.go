package cmd

import (
	"context"
	"fmt"

	"github.com/a11ytools/a11y-cli/internal/output"
	"github.com/spf13/cobra"
)

// TimeoutResult is the output of recommended-timeout.
type TimeoutResult struct {
	OK            bool  `yaml:"ok"             json:"ok"`
	OriginalMs    int64 `yaml:"original_ms"    json:"original_ms"`
	RecommendedMs int64 `yaml:"recommended_ms" json:"recommended_ms"`
}

var timeoutCmd = &cobra.Command{
	Use:   "recommended-timeout",
	Short: "Ask the platform for its recommended minimum UI timeout",
	Long: `Query the platform-recommended minimum timeout for timed UI, given the
timeout the application would otherwise use.

Platforms without the capability return the original value unchanged.`,
	RunE: runTimeout,
}

func init() {
	rootCmd.AddCommand(timeoutCmd)
	timeoutCmd.Flags().Int64("ms", 0, "Original timeout in milliseconds")
}

func runTimeout(cmd *cobra.Command, args []string) error {
	ms, _ := cmd.Flags().GetInt64("ms")
	if ms <= 0 {
		return fmt.Errorf("--ms is required")
	}

	info, err := newInfo()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	recommended, err := info.GetRecommendedTimeoutMillis(ms).Await(ctx)
	if err != nil {
		return fmt.Errorf("timeout query did not settle: %w", err)
	}

	return output.Print(TimeoutResult{
		OK:            true,
		OriginalMs:    ms,
		RecommendedMs: recommended,
	})
}
