// File: logger_test.go
// Title: Logger Tests
// Description: Tests for levels, formatters, context fields, error logging and timers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	etkerror "github.com/msto63/etkit/core/error"
)

func newTestLogger(format Format, level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: buf,
		Name:   "test",
	})
	return logger, buf
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(FormatText, LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown warn")
	logger.Error("shown error")
	logger.Audit("shown audit")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered entries:\n%s", out)
	}
	for _, want := range []string{"shown warn", "shown error", "shown audit"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARNING ", LevelWarn, false},
		{"err", LevelError, false},
		{"audit", LevelAudit, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{
		"json":    FormatJSON,
		"TEXT":    FormatText,
		"console": FormatConsole,
		"logfmt":  FormatLogfmt,
		"":        FormatAuto,
	} {
		got, err := ParseFormat(input)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", input, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestJSONFormatter(t *testing.T) {
	logger, buf := newTestLogger(FormatJSON, LevelInfo)
	logger = logger.WithCorrelationID("run-1").WithField("component", "slicex")

	logger.Info("sum computed", Int("matched", 2))

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}

	checks := map[string]interface{}{
		"level":          "info",
		"message":        "sum computed",
		"logger":         "test",
		"correlation_id": "run-1",
		"component":      "slicex",
		"matched":        float64(2),
	}
	for k, want := range checks {
		if decoded[k] != want {
			t.Errorf("%s = %v, want %v", k, decoded[k], want)
		}
	}
}

func TestTraceAndContextFields(t *testing.T) {
	logger, buf := newTestLogger(FormatJSON, LevelTrace)
	if !logger.IsLevelEnabled(LevelTrace) {
		t.Fatal("IsLevelEnabled(LevelTrace) = false at trace level")
	}

	scoped := logger.WithFields(Fields{"operation": "avg", "rule": "even"})
	scoped.Trace("input read", Int("tokens", 4), Bool("from_stdin", true))

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	checks := map[string]interface{}{
		"level":      "trace",
		"operation":  "avg",
		"rule":       "even",
		"tokens":     float64(4),
		"from_stdin": true,
	}
	for k, want := range checks {
		if decoded[k] != want {
			t.Errorf("%s = %v, want %v", k, decoded[k], want)
		}
	}

	quiet, quietBuf := newTestLogger(FormatJSON, LevelInfo)
	quiet.Trace("hidden")
	if quiet.IsLevelEnabled(LevelDebug) || quietBuf.Len() != 0 {
		t.Errorf("trace entry written at info level: %q", quietBuf.String())
	}
}

func TestLogfmtFormatterSortsFields(t *testing.T) {
	logger, buf := newTestLogger(FormatLogfmt, LevelInfo)

	logger.Info("copy", Fields{"b": 2, "a": "x"})

	out := buf.String()
	if !strings.Contains(out, `message="copy" logger=test a="x" b=2`) {
		t.Errorf("unexpected logfmt output: %s", out)
	}
}

func TestConsoleFormatterWithoutTerminal(t *testing.T) {
	logger, buf := newTestLogger(FormatConsole, LevelInfo)

	logger.Warn("careful")

	out := buf.String()
	if !strings.Contains(out, "WRN") || !strings.Contains(out, "careful") {
		t.Errorf("unexpected console output: %q", out)
	}
}

func TestAutoFormatFallsBackToLogfmt(t *testing.T) {
	logger, buf := newTestLogger(FormatAuto, LevelInfo)

	logger.Info("auto")

	if !strings.Contains(buf.String(), `message="auto"`) {
		t.Errorf("auto format on a buffer should be logfmt, got %q", buf.String())
	}
}

func TestWithMethodsDoNotMutateOriginal(t *testing.T) {
	logger, buf := newTestLogger(FormatLogfmt, LevelInfo)
	child := logger.WithField("child", true).WithLevel(LevelError)

	logger.Info("parent")
	child.Info("child filtered")

	out := buf.String()
	if strings.Contains(out, "child=true") {
		t.Error("parent logger picked up child field")
	}
	if strings.Contains(out, "child filtered") {
		t.Error("child logger ignored its own level")
	}
	if logger.GetLevel() != LevelInfo {
		t.Errorf("parent level changed to %v", logger.GetLevel())
	}
}

func TestLogError(t *testing.T) {
	t.Run("low severity logs at info", func(t *testing.T) {
		logger, buf := newTestLogger(FormatLogfmt, LevelInfo)
		err := etkerror.New("bad argument").
			WithCode(etkerror.CodeInvalidArgument).
			WithOperation("slicex.MatchUnique")

		logger.LogError(err)

		out := buf.String()
		for _, want := range []string{"level=info", "error_code=INVALID_ARGUMENT", `error_operation="slicex.MatchUnique"`} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q: %s", want, out)
			}
		}
	})

	t.Run("high severity logs at error", func(t *testing.T) {
		logger, buf := newTestLogger(FormatLogfmt, LevelInfo)
		logger.LogError(etkerror.New("full").WithCode(etkerror.CodeCapacityExceeded))

		if !strings.Contains(buf.String(), "level=error") {
			t.Errorf("unexpected output: %s", buf.String())
		}
	})

	t.Run("plain error", func(t *testing.T) {
		logger, buf := newTestLogger(FormatLogfmt, LevelInfo)
		logger.LogError(errors.New("plain"))

		if !strings.Contains(buf.String(), "level=error") {
			t.Errorf("unexpected output: %s", buf.String())
		}
	})

	t.Run("nil error", func(t *testing.T) {
		logger, buf := newTestLogger(FormatLogfmt, LevelTrace)
		logger.LogError(nil)

		if buf.Len() != 0 {
			t.Errorf("LogError(nil) wrote %q", buf.String())
		}
	})
}

func TestCaller(t *testing.T) {
	logger, buf := newTestLogger(FormatJSON, LevelInfo)
	logger.WithCaller().Info("where")

	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Errorf("caller missing: %s", buf.String())
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newTestLogger(FormatLogfmt, LevelDebug)

	timer := logger.StartTimer("sum").WithField("count", 5)
	if d := timer.Stop(); d < 0 {
		t.Errorf("Stop() = %v", d)
	}
	if d := timer.Stop(); d != 0 {
		t.Errorf("second Stop() = %v, want 0", d)
	}

	out := buf.String()
	if strings.Count(out, "sum completed") != 1 {
		t.Errorf("expected one completion entry: %s", out)
	}
	if !strings.Contains(out, "count=5") || !strings.Contains(out, `operation="sum"`) {
		t.Errorf("timer fields missing: %s", out)
	}

	buf.Reset()
	failing := logger.StartTimer("copy")
	failing.StopWithError(errors.New("full"))
	if !strings.Contains(buf.String(), "copy failed") || !strings.Contains(buf.String(), "success=false") {
		t.Errorf("unexpected failure entry: %s", buf.String())
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	logger, buf := newTestLogger(FormatLogfmt, LevelDebug)
	SetDefault(logger)
	SetDefault(nil)

	Debug("via default")
	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger not used: %q", buf.String())
	}
}
