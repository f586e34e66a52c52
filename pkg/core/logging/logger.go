// ============================================================================
// whilec - WHILE Language Toolchain
// ============================================================================
//
// Package:     logging
// Description: Maps configuration strings onto Foundation log levels/formats
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"strings"

	mdwlog "github.com/msto63/whilec/foundation/core/log"
)

// parseLevel converts a configuration string to a Foundation level.
// Unknown values fall back to the Foundation default.
func parseLevel(s string) mdwlog.Level {
	level, err := mdwlog.ParseLevel(s)
	if err != nil {
		return mdwlog.DefaultLevel()
	}
	return level
}

// parseFormat converts a configuration string to a Foundation format.
// "text" maps to the console formatter when writing to a terminal-like output.
func parseFormat(s string) mdwlog.Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return mdwlog.FormatJSON
	case "console":
		return mdwlog.FormatConsole
	default:
		return mdwlog.FormatText
	}
}
