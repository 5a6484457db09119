package cmd

import (
	"github.com/a11ytools/a11y-cli/internal/output"
	"github.com/spf13/cobra"
)

// AnnounceResult is the output of a successful announce.
type AnnounceResult struct {
	OK      bool   `yaml:"ok"      json:"ok"`
	Action  string `yaml:"action"  json:"action"`
	Message string `yaml:"message" json:"message"`
}

var announceCmd = &cobra.Command{
	Use:   "announce <message>",
	Short: "Ask the assistive technology to speak a message",
	Long: `Forward a message to the screen reader for immediate announcement.

Silently does nothing when no accessibility bridge is available.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnnounce,
}

func init() {
	rootCmd.AddCommand(announceCmd)
}

func runAnnounce(cmd *cobra.Command, args []string) error {
	info, err := newInfo()
	if err != nil {
		return err
	}

	info.AnnounceForAccessibility(args[0])

	return output.Print(AnnounceResult{
		OK:      true,
		Action:  "announce",
		Message: args[0],
	})
}
