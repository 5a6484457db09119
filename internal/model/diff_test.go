package model

import "testing"

func TestDiffStatus_NoChanges(t *testing.T) {
	s := Status{ReduceMotion: true, ScreenReader: false}
	if changes := DiffStatus(s, s); len(changes) != 0 {
		t.Errorf("identical snapshots produced %d changes", len(changes))
	}
}

func TestDiffStatus_SingleFlip(t *testing.T) {
	prev := Status{ReduceMotion: false}
	curr := Status{ReduceMotion: true}

	changes := DiffStatus(prev, curr)
	if len(changes) != 1 {
		t.Fatalf("got %d changes, want 1", len(changes))
	}
	c := changes[0]
	if c.Type != ChangeChanged || c.Setting != SettingReduceMotion || c.From != false || c.To != true {
		t.Errorf("got %+v, want reduce_motion false->true", c)
	}
}

func TestDiffStatus_MultipleFlips(t *testing.T) {
	prev := Status{ScreenReader: true, InvertColors: false}
	curr := Status{ScreenReader: false, InvertColors: true}

	changes := DiffStatus(prev, curr)
	if len(changes) != 2 {
		t.Fatalf("got %d changes, want 2", len(changes))
	}
	settings := map[string]bool{}
	for _, c := range changes {
		settings[c.Setting] = true
	}
	if !settings[SettingScreenReader] || !settings[SettingInvertColors] {
		t.Errorf("changed settings = %v", settings)
	}
}

func TestDiffStatus_SkipsUnknownSettings(t *testing.T) {
	prev := Status{Unknown: []string{SettingReduceMotion}}
	curr := Status{ReduceMotion: true}

	if changes := DiffStatus(prev, curr); len(changes) != 0 {
		t.Errorf("unknown->known transition produced %d changes, want 0", len(changes))
	}
}
