package cmd

import (
	"context"
	"time"

	"github.com/a11ytools/a11y-cli/internal/a11yinfo"
	"github.com/a11ytools/a11y-cli/internal/model"
	"github.com/a11ytools/a11y-cli/internal/platform"
)

// queryTimeout bounds each native state query. The native layer is not
// obligated to ever invoke its reply callback; commands fail soft (setting
// marked unknown) rather than hang.
const queryTimeout = 2 * time.Second

// newInfo builds the accessibility facade for the current platform.
func newInfo() (*a11yinfo.Info, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	return a11yinfo.New(provider), nil
}

// collectStatus runs every capability query and folds the answers into a
// Status snapshot. Rejected queries (bridge missing) are recorded in
// Unknown, not treated as errors.
func collectStatus(info *a11yinfo.Info) model.Status {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	st := model.Status{TS: time.Now().Unix()}

	queries := []struct {
		name    string
		pending *a11yinfo.Pending[bool]
		dest    *bool
	}{
		{model.SettingReduceMotion, info.IsReduceMotionEnabled(), &st.ReduceMotion},
		{model.SettingScreenReader, info.IsScreenReaderEnabled(), &st.ScreenReader},
		{model.SettingBoldText, info.IsBoldTextEnabled(), &st.BoldText},
		{model.SettingGrayscale, info.IsGrayscaleEnabled(), &st.Grayscale},
		{model.SettingInvertColors, info.IsInvertColorsEnabled(), &st.InvertColors},
		{model.SettingReduceTransparency, info.IsReduceTransparencyEnabled(), &st.ReduceTransparency},
	}
	for _, q := range queries {
		v, err := q.pending.Await(ctx)
		if err != nil {
			st.Unknown = append(st.Unknown, q.name)
			continue
		}
		*q.dest = v
	}
	return st
}
