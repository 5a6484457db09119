package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/a11ytools/a11y-cli/internal/a11yinfo"
	"github.com/a11ytools/a11y-cli/internal/model"
	"github.com/a11ytools/a11y-cli/internal/platform"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch for assistive-technology state changes and stream JSONL",
	Long: `Continuously watch the accessibility settings and emit changes as JSONL to stdout.

Each line is a JSON object representing one change event. No output is emitted
while the settings are stable.

By default the settings are polled at --interval. With --native, the OS
notification channels are subscribed instead and the command blocks on the
platform event loop until interrupted (--duration is ignored).

Output is always JSONL regardless of the --format flag.

Use Ctrl+C or --duration to stop watching.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Int("interval", 1000, "Polling interval in milliseconds")
	watchCmd.Flags().Int("duration", 0, "Max seconds to watch (0 = until Ctrl+C)")
	watchCmd.Flags().Bool("native", false, "Subscribe to native change notifications instead of polling")
}

func runWatch(cmd *cobra.Command, args []string) error {
	info, err := newInfo()
	if err != nil {
		return err
	}

	intervalMs, _ := cmd.Flags().GetInt("interval")
	durationSec, _ := cmd.Flags().GetInt("duration")
	native, _ := cmd.Flags().GetBool("native")

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)

	// Initial read to establish baseline
	prev := collectStatus(info)
	enc.Encode(map[string]interface{}{
		"type":   "snapshot",
		"ts":     time.Now().Unix(),
		"status": prev,
	})

	if native {
		return watchNative(info, enc, prev)
	}

	interval := time.Duration(intervalMs) * time.Millisecond
	var deadline time.Time
	if durationSec > 0 {
		deadline = time.Now().Add(time.Duration(durationSec) * time.Second)
	}
	start := time.Now()
	eventCount := 0

	// Poll loop
	for {
		if durationSec > 0 && time.Now().After(deadline) {
			break
		}

		time.Sleep(interval)

		curr := collectStatus(info)
		for _, change := range model.DiffStatus(prev, curr) {
			enc.Encode(change)
			eventCount++
		}
		prev = curr
	}

	// Emit done event
	elapsed := time.Since(start)
	enc.Encode(map[string]interface{}{
		"type":    "done",
		"ts":      time.Now().Unix(),
		"elapsed": fmt.Sprintf("%.1fs", elapsed.Seconds()),
		"events":  eventCount,
	})

	return nil
}

// watchNative subscribes to the OS notification channels and blocks pumping
// the platform event loop. Never returns except on unsupported platforms.
func watchNative(info *a11yinfo.Info, enc *json.Encoder, initial model.Status) error {
	if platform.RunEventLoopFunc == nil {
		return fmt.Errorf("native notifications not available on this platform")
	}

	var mu sync.Mutex
	reduceMotion := initial.ReduceMotion
	screenReader := initial.ScreenReader

	info.AddEventListener(a11yinfo.EventReduceMotionChanged, a11yinfo.ListenerFunc(func(enabled bool) {
		mu.Lock()
		defer mu.Unlock()
		enc.Encode(model.StateChange{
			Type:    model.ChangeChanged,
			TS:      time.Now().Unix(),
			Setting: model.SettingReduceMotion,
			From:    reduceMotion,
			To:      enabled,
		})
		reduceMotion = enabled
	}))
	info.AddEventListener(a11yinfo.EventScreenReaderChanged, a11yinfo.ListenerFunc(func(enabled bool) {
		mu.Lock()
		defer mu.Unlock()
		enc.Encode(model.StateChange{
			Type:    model.ChangeChanged,
			TS:      time.Now().Unix(),
			Setting: model.SettingScreenReader,
			From:    screenReader,
			To:      enabled,
		})
		screenReader = enabled
	}))

	platform.RunEventLoopFunc()
	return nil
}
