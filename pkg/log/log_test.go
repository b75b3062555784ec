package log

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})

	Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered at default level, got %q", buf.String())
	}

	SetVerbose(true)
	Debug("shown", "k", "v")
	if !strings.Contains(buf.String(), "shown") || !strings.Contains(buf.String(), "k=v") {
		t.Errorf("expected debug line, got %q", buf.String())
	}

	buf.Reset()
	SetQuiet(true)
	Warn("nope")
	Error("boom")
	if strings.Contains(buf.String(), "nope") {
		t.Error("warn should be filtered in quiet mode")
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Error("error should pass in quiet mode")
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetJSON(true)
	t.Cleanup(func() {
		SetJSON(false)
		SetOutput(os.Stderr)
	})

	Warn("structured", "step", "contact")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "structured" || rec["step"] != "contact" || rec["app"] != "cvb" {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestWithCarriesAttrs(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	With("step", "education").Warn("edited")
	if !strings.Contains(buf.String(), "step=education") {
		t.Errorf("expected step attribute, got %q", buf.String())
	}
}

func TestLoadEnvFormat(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Setenv("CVB_LOG_FORMAT", "JSON")
	t.Cleanup(func() {
		SetJSON(false)
		SetOutput(os.Stderr)
	})

	LoadEnv()
	Warn("x")
	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}
