// Package model holds the domain types shared by the CLI and MCP layers:
// accessibility status snapshots and the change events streamed by watch.
package model

// Status is a point-in-time snapshot of the queryable assistive-technology
// state. Settings the native bridge could not answer are listed in Unknown
// and left false.
type Status struct {
	TS                 int64    `yaml:"ts"                  json:"ts"`
	ReduceMotion       bool     `yaml:"reduce_motion"       json:"reduce_motion"`
	ScreenReader       bool     `yaml:"screen_reader"       json:"screen_reader"`
	BoldText           bool     `yaml:"bold_text"           json:"bold_text"`
	Grayscale          bool     `yaml:"grayscale"           json:"grayscale"`
	InvertColors       bool     `yaml:"invert_colors"       json:"invert_colors"`
	ReduceTransparency bool     `yaml:"reduce_transparency" json:"reduce_transparency"`
	Unknown            []string `yaml:"unknown,omitempty"   json:"unknown,omitempty"`
}

// Setting names used in Status.Unknown and StateChange.Setting.
const (
	SettingReduceMotion       = "reduce_motion"
	SettingScreenReader       = "screen_reader"
	SettingBoldText           = "bold_text"
	SettingGrayscale          = "grayscale"
	SettingInvertColors       = "invert_colors"
	SettingReduceTransparency = "reduce_transparency"
)
