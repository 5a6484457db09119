package model

import "time"

// ChangeType represents the kind of watch event emitted.
type ChangeType string

const (
	ChangeSnapshot ChangeType = "snapshot"
	ChangeChanged  ChangeType = "changed"
	ChangeError    ChangeType = "error"
	ChangeDone     ChangeType = "done"
)

// StateChange is a single JSONL event on the watch stream.
type StateChange struct {
	Type    ChangeType `json:"type"`
	TS      int64      `json:"ts"`
	Setting string     `json:"setting,omitempty"`
	From    bool       `json:"from,omitempty"`
	To      bool       `json:"to"`
}

// DiffStatus compares two snapshots and returns one change per flipped
// setting. Settings unknown in either snapshot are skipped: a setting
// becoming answerable (or not) is not a state change.
func DiffStatus(prev, curr Status) []StateChange {
	now := time.Now().Unix()

	prevUnknown := unknownSet(prev)
	currUnknown := unknownSet(curr)

	var changes []StateChange
	for _, s := range []struct {
		name       string
		prev, curr bool
	}{
		{SettingReduceMotion, prev.ReduceMotion, curr.ReduceMotion},
		{SettingScreenReader, prev.ScreenReader, curr.ScreenReader},
		{SettingBoldText, prev.BoldText, curr.BoldText},
		{SettingGrayscale, prev.Grayscale, curr.Grayscale},
		{SettingInvertColors, prev.InvertColors, curr.InvertColors},
		{SettingReduceTransparency, prev.ReduceTransparency, curr.ReduceTransparency},
	} {
		if prevUnknown[s.name] || currUnknown[s.name] {
			continue
		}
		if s.prev != s.curr {
			changes = append(changes, StateChange{
				Type:    ChangeChanged,
				TS:      now,
				Setting: s.name,
				From:    s.prev,
				To:      s.curr,
			})
		}
	}
	return changes
}

func unknownSet(s Status) map[string]bool {
	if len(s.Unknown) == 0 {
		return nil
	}
	m := make(map[string]bool, len(s.Unknown))
	for _, name := range s.Unknown {
		m[name] = true
	}
	return m
}
