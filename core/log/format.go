// File: format.go
// Title: Log Output Formatters
// Description: JSON, text, console and logfmt formatters. The console formatter styles
//              the level tag with lipgloss; FormatAuto picks the console formatter for
//              terminals and logfmt for everything else.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs structured JSON logs
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs
	FormatText

	// FormatConsole outputs styled logs for terminals
	FormatConsole

	// FormatLogfmt outputs key=value pairs
	FormatLogfmt

	// FormatAuto selects console for terminals and logfmt otherwise
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	case FormatLogfmt:
		return "logfmt"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	case "logfmt":
		return FormatLogfmt, nil
	case "auto", "":
		return FormatAuto, nil
	default:
		return FormatAuto, &ParseError{
			Input: format,
			Type:  "format",
		}
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format formats a log entry as one JSON line
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+6)

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.CorrelationID != "" {
		data["correlation_id"] = entry.CorrelationID
	}

	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		// etkit errors carry code, severity and details
		if marshaler, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := marshaler.MarshalJSON(); err == nil {
				data["error_details"] = json.RawMessage(raw)
			}
		}
	}

	if entry.Duration > 0 {
		data["duration_ms"] = float64(entry.Duration.Nanoseconds()) / 1e6
	}

	if entry.Caller != nil {
		data["caller"] = fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line)
	}

	line, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(line, '\n'), nil
}

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	return []byte(strings.Join(f.parts(entry, "["+entry.Level.ShortString()+"]"), " ") + "\n"), nil
}

func (f *TextFormatter) parts(entry *Entry, levelTag string) []string {
	var parts []string

	if !f.DisableTimestamp {
		parts = append(parts, entry.Timestamp.Format(f.TimestampFormat))
	}

	parts = append(parts, levelTag)

	if entry.Logger != "" {
		parts = append(parts, "{"+entry.Logger+"}")
	}

	parts = append(parts, entry.Message)

	if len(entry.Fields) > 0 {
		fieldParts := make([]string, 0, len(entry.Fields))
		for _, k := range entry.Fields.Keys() {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
		}
		parts = append(parts, "["+strings.Join(fieldParts, " ")+"]")
	}

	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}

	if entry.Duration > 0 {
		parts = append(parts, fmt.Sprintf("duration=%s", entry.Duration))
	}

	return parts
}

// ConsoleFormatter renders text entries with a styled level tag
type ConsoleFormatter struct {
	*TextFormatter
	styles map[Level]lipgloss.Style
}

// NewConsoleFormatter creates a console formatter whose color profile follows w
func NewConsoleFormatter(w io.Writer) *ConsoleFormatter {
	renderer := lipgloss.NewRenderer(w)
	base := renderer.NewStyle().Bold(true)

	return &ConsoleFormatter{
		TextFormatter: NewTextFormatter(),
		styles: map[Level]lipgloss.Style{
			LevelTrace: base.Foreground(lipgloss.Color("8")),
			LevelDebug: base.Foreground(lipgloss.Color("6")),
			LevelInfo:  base.Foreground(lipgloss.Color("2")),
			LevelWarn:  base.Foreground(lipgloss.Color("3")),
			LevelError: base.Foreground(lipgloss.Color("1")),
			LevelAudit: base.Foreground(lipgloss.Color("4")),
		},
	}
}

// Format formats a log entry for console output
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	tag := entry.Level.ShortString()
	if style, ok := f.styles[entry.Level]; ok {
		tag = style.Render(tag)
	}
	return []byte(strings.Join(f.parts(entry, tag), " ") + "\n"), nil
}

// LogfmtFormatter formats log entries in logfmt format
type LogfmtFormatter struct {
	TimestampFormat string
}

// NewLogfmtFormatter creates a new logfmt formatter
func NewLogfmtFormatter() *LogfmtFormatter {
	return &LogfmtFormatter{TimestampFormat: time.RFC3339}
}

// Format formats a log entry in logfmt format
func (f *LogfmtFormatter) Format(entry *Entry) ([]byte, error) {
	var parts []string

	parts = append(parts, "timestamp="+entry.Timestamp.Format(f.TimestampFormat))
	parts = append(parts, "level="+entry.Level.String())
	parts = append(parts, fmt.Sprintf("message=%q", entry.Message))

	if entry.Logger != "" {
		parts = append(parts, "logger="+entry.Logger)
	}
	if entry.CorrelationID != "" {
		parts = append(parts, "correlation_id="+entry.CorrelationID)
	}

	for _, k := range entry.Fields.Keys() {
		switch v := entry.Fields[k].(type) {
		case string:
			parts = append(parts, fmt.Sprintf("%s=%q", k, v))
		case error:
			parts = append(parts, fmt.Sprintf("%s=%q", k, v.Error()))
		default:
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
	}

	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}

	if entry.Duration > 0 {
		parts = append(parts, fmt.Sprintf("duration_ms=%.3f", float64(entry.Duration.Nanoseconds())/1e6))
	}

	return []byte(strings.Join(parts, " ") + "\n"), nil
}

// NewFormatter returns a formatter for the format writing to w
func NewFormatter(format Format, w io.Writer) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter(w)
	case FormatLogfmt:
		return NewLogfmtFormatter()
	case FormatAuto:
		if IsTerminal(w) {
			return NewConsoleFormatter(w)
		}
		return NewLogfmtFormatter()
	default:
		return NewJSONFormatter()
	}
}
