package cmd

import (
	"fmt"

	"github.com/a11ytools/a11y-cli/internal/output"
	"github.com/a11ytools/a11y-cli/internal/platform"
	"github.com/spf13/cobra"
)

// SendEventResult is the output of a successful send-event.
type SendEventResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	ID     int    `yaml:"id"     json:"id"`
	Type   string `yaml:"type"   json:"type"`
}

var sendEventCmd = &cobra.Command{
	Use:   "send-event",
	Short: "Send an accessibility event to a UI element",
	Long: `Send an accessibility event through the renderer-aware path.

Supported types: focus, click. Click events are accepted but not delivered:
this platform's accessibility service has no click-announcement primitive.`,
	RunE: runSendEvent,
}

func init() {
	rootCmd.AddCommand(sendEventCmd)
	sendEventCmd.Flags().Int("id", 0, "Element ID to target")
	sendEventCmd.Flags().String("type", "focus", "Event type: focus, click")
}

func runSendEvent(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt("id")
	if id <= 0 {
		return fmt.Errorf("--id is required")
	}

	typeStr, _ := cmd.Flags().GetString("type")
	eventType, err := platform.ParseEventType(typeStr)
	if err != nil {
		return err
	}

	info, err := newInfo()
	if err != nil {
		return err
	}

	info.SendAccessibilityEventUnstable(platform.ElementHandle{ID: id}, eventType)

	return output.Print(SendEventResult{
		OK:     true,
		Action: "send-event",
		ID:     id,
		Type:   string(eventType),
	})
}
