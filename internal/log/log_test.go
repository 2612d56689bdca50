package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelWarn)
	logger.Debugf("debug %d", 1)
	logger.Infof("info %d", 2)
	logger.Warnf("warn %d", 3)
	logger.Errorf("error %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Errorf("messages below WARN were written: %q", out)
	}
	if !strings.Contains(out, "WARN: warn 3") {
		t.Errorf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "ERROR: error 4") {
		t.Errorf("missing error line: %q", out)
	}
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		In  string
		Out Level
	}{
		{In: "debug", Out: LevelDebug},
		{In: " INFO ", Out: LevelInfo},
		{In: "warning", Out: LevelWarn},
		{In: "Error", Out: LevelError},
		{In: "none", Out: LevelNone},
		{In: "bogus", Out: LevelInfo},
	}
	for _, test := range tests {
		if got := LevelFromString(test.In); got != test.Out {
			t.Errorf("LevelFromString(%q) = %v, expected %v", test.In, got, test.Out)
		}
	}
}

func TestNilLoggerIsSilent(t *testing.T) {
	var logger *Logger
	logger.Errorf("does not panic")
}
