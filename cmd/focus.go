package cmd

import (
	"fmt"

	"github.com/a11ytools/a11y-cli/internal/output"
	"github.com/spf13/cobra"
)

// FocusResult is the output of a successful focus.
type FocusResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	ID     int    `yaml:"id"     json:"id"`
}

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Move accessibility focus to a UI element",
	Long:  "Send a focus accessibility event to the element with the given ID through the legacy send path.",
	RunE:  runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	focusCmd.Flags().Int("id", 0, "Element ID to focus")
}

func runFocus(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt("id")
	if id <= 0 {
		return fmt.Errorf("--id is required")
	}

	info, err := newInfo()
	if err != nil {
		return err
	}

	info.SetAccessibilityFocus(id)

	return output.Print(FocusResult{
		OK:     true,
		Action: "focus",
		ID:     id,
	})
}
