package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestTextFormatSortedKeys(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Out: &buf, App: "pawcare"})

	l.Info("hello", map[string]any{"b": 2, "a": 1})

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, "a=1 app=pawcare b=2") {
		t.Fatalf("expected sorted keys, got %q", line)
	}
	if !strings.Contains(line, "msg=hello") || !strings.Contains(line, "level=info") {
		t.Fatalf("missing standard fields: %q", line)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Out: &buf, Format: FormatJSON})

	l.Error("boom", map[string]any{"code": 500})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not json: %v (%q)", err, buf.String())
	}
	if entry["level"] != "error" || entry["msg"] != "boom" || entry["code"] != float64(500) {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Out: &buf, Level: Warn})

	l.Debug("nope", nil)
	l.Info("nope", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected filtered output, got %q", buf.String())
	}

	l.Warn("yes", nil)
	if !strings.Contains(buf.String(), "msg=yes") {
		t.Fatalf("warn must pass: %q", buf.String())
	}
}

func TestWithAddsBaseFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Out: &buf}).With(map[string]any{"component": "router"})

	l.Info("req", nil)
	if !strings.Contains(buf.String(), "component=router") {
		t.Fatalf("expected base field, got %q", buf.String())
	}
}
