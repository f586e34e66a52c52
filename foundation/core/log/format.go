// File: format.go
// Title: Log Format Definitions
// Description: Defines the JSON, text and console output formats. All
//              formatters emit custom fields in sorted key order so log
//              lines are stable across runs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial formatters

package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs one JSON object per line
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs
	FormatText

	// FormatConsole outputs colored text for terminals
	FormatConsole
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
	default:
		return FormatJSON, &ParseError{Input: format, Type: "format"}
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for the given format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	default:
		return NewJSONFormatter()
	}
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+6)
	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.CorrelationID != "" {
		data["correlation_id"] = entry.CorrelationID
	}
	if entry.Error != nil {
		data["error"] = entry.Error.Error()
	}
	if entry.Duration > 0 {
		data["duration_ms"] = float64(entry.Duration.Nanoseconds()) / 1e6
	}
	if entry.Caller != nil {
		data["caller"] = fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line)
	}

	// encoding/json sorts map keys
	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
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
	var buf bytes.Buffer
	writeText(&buf, entry, f.TimestampFormat, f.DisableTimestamp, "", "")
	return buf.Bytes(), nil
}

// ConsoleFormatter formats log entries with ANSI colors
type ConsoleFormatter struct {
	TimestampFormat string
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TimestampFormat: "15:04:05.000"}
}

// Format formats a log entry for terminal output
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	var buf bytes.Buffer
	writeText(&buf, entry, f.TimestampFormat, false, entry.Level.Color(), "\033[0m")
	return buf.Bytes(), nil
}

func writeText(buf *bytes.Buffer, entry *Entry, tsFormat string, noTimestamp bool, color, reset string) {
	if !noTimestamp {
		buf.WriteString(entry.Timestamp.Format(tsFormat))
		buf.WriteByte(' ')
	}
	buf.WriteString(color)
	buf.WriteString("[" + entry.Level.ShortString() + "]")
	buf.WriteString(reset)

	if entry.Logger != "" {
		buf.WriteString(" {" + entry.Logger + "}")
	}
	if entry.CorrelationID != "" {
		buf.WriteString(" [corr=" + entry.CorrelationID + "]")
	}

	buf.WriteByte(' ')
	buf.WriteString(entry.Message)

	for _, k := range entry.Fields.Keys() {
		fmt.Fprintf(buf, " %s=%s", k, formatValue(entry.Fields[k]))
	}
	if entry.Duration > 0 {
		fmt.Fprintf(buf, " duration=%s", entry.Duration)
	}
	if entry.Error != nil {
		fmt.Fprintf(buf, " error=%s", formatValue(entry.Error.Error()))
	}
	if entry.Caller != nil {
		fmt.Fprintf(buf, " caller=%s:%d", entry.Caller.File, entry.Caller.Line)
	}
	buf.WriteByte('\n')
}

// formatValue quotes values containing spaces
func formatValue(v interface{}) string {
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case error:
		s = val.Error()
	case fmt.Stringer:
		s = val.String()
	default:
		s = fmt.Sprintf("%v", val)
	}
	if s == "" || strings.ContainsAny(s, " \t\"=") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
