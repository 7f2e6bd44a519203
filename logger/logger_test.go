package logger

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestNew_TruncatesAndWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := os.WriteFile(path, []byte("stale content\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l, err := New(path)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	l.Debugf("hello")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if strings.Contains(content, "stale content") {
		t.Error("New() should truncate an existing log file")
	}
	if !strings.HasPrefix(content, "=== Power Manager Debug Log - ") {
		t.Errorf("missing header, got: %q", content)
	}
}

func TestLineFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	l, err := New(path)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	l.Debugf("plain %s", "message")
	l.Warnf("something odd")
	l.Errorf("something broke")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 lines, got %d: %q", len(lines), lines)
	}

	tests := []struct {
		line    string
		pattern string
	}{
		{lines[1], `^\[\d{2}:\d{2}:\d{2}\] plain message$`},
		{lines[2], `^\[\d{2}:\d{2}:\d{2}\] WARNING: something odd$`},
		{lines[3], `^\[\d{2}:\d{2}:\d{2}\] ERROR: something broke$`},
	}
	for _, tt := range tests {
		if !regexp.MustCompile(tt.pattern).MatchString(tt.line) {
			t.Errorf("line %q does not match %q", tt.line, tt.pattern)
		}
	}
}

func TestSetLevel_Filters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	l, err := New(path)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	l.SetLevel(WARN)

	l.Debugf("dropped")
	l.Warnf("kept")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "dropped") {
		t.Error("DEBUG line should be filtered at WARN level")
	}
	if !strings.Contains(string(data), "kept") {
		t.Error("WARN line should be written at WARN level")
	}
}

func TestDiscard_DoesNotPanic(t *testing.T) {
	l := Discard()
	l.Debugf("a %d", 1)
	l.Warnf("b")
	l.Errorf("c")
}
