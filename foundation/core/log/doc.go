// Package log provides structured logging for the WHILE toolchain.
//
// Package: log
// Title: Structured Logging
// Description: Structured logger with levels, persistent context fields,
//
//	correlation IDs, JSON/text/console output and timers. Parse
//	failures carrying foundation error codes are logged with their
//	code and severity.
//
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial logger for the WHILE toolchain
//
// Usage:
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatText).
//		WithField("component", "while-parser")
//
//	logger.Debug("Starting parse", mdwlog.Fields{"tokens": 12})
//
//	timer := logger.StartTimer("parse")
//	// ... parse
//	timer.Stop()
package log
