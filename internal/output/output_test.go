package output

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/a11ytools/a11y-cli/internal/model"
	"gopkg.in/yaml.v3"
)

func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintJSON_Compact(t *testing.T) {
	status := model.Status{TS: 1707500000, ReduceMotion: true}

	out := captureStdout(t, func() error { return PrintJSON(status, false) })

	// Compact output should be a single line (plus newline from Encode)
	if bytes.Count([]byte(out), []byte("\n")) > 1 {
		t.Errorf("compact output should be single line, got:\n%s", out)
	}

	var decoded model.Status
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !decoded.ReduceMotion {
		t.Error("reduce_motion should round-trip as true")
	}
}

func TestPrintJSON_Pretty(t *testing.T) {
	status := model.Status{TS: 123, ScreenReader: true}

	out := captureStdout(t, func() error { return PrintJSON(status, true) })

	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("pretty output should be multi-line, got:\n%s", out)
	}
}

func TestPrintYAML(t *testing.T) {
	status := model.Status{TS: 123, Unknown: []string{model.SettingReduceMotion}}

	out := captureStdout(t, func() error { return PrintYAML(status) })

	var decoded model.Status
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded.Unknown) != 1 || decoded.Unknown[0] != model.SettingReduceMotion {
		t.Errorf("unknown = %v, want [reduce_motion]", decoded.Unknown)
	}
}

func TestStatus_OmitEmptyUnknown(t *testing.T) {
	data, err := json.Marshal(model.Status{TS: 1})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["unknown"]; ok {
		t.Error("empty unknown should be omitted")
	}
	if _, ok := m["ts"]; !ok {
		t.Error("ts should always be present")
	}
}
