package cmd

import (
	"github.com/a11ytools/a11y-cli/internal/output"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current assistive-technology state",
	Long: `Query every accessibility setting and print a snapshot.

Settings the native bridge cannot answer are listed under "unknown" and
reported as false.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	info, err := newInfo()
	if err != nil {
		return err
	}
	return output.Print(collectStatus(info))
}
