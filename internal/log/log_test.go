package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetOutputLevels(t *testing.T) {
	var buf bytes.Buffer

	SetOutput(&buf, false)
	Debug("hidden")
	Info("shown", "key", "value")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug message logged without verbose")
	}
	if !strings.Contains(buf.String(), "key=value") {
		t.Errorf("info message missing: %q", buf.String())
	}

	buf.Reset()
	SetOutput(&buf, true)
	Logger("focus").Debug("tick", "index", 2)
	if !strings.Contains(buf.String(), "component=focus") || !strings.Contains(buf.String(), "index=2") {
		t.Errorf("debug message missing: %q", buf.String())
	}
}

func TestInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "folio.log")

	closer, err := Init(path, false)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Warn("careful")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "careful") {
		t.Errorf("log file = %q", data)
	}
}

func TestInitEmptyPath(t *testing.T) {
	closer, err := Init("", false)
	if err != nil {
		t.Fatalf("Init(\"\") error = %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
