// ============================================================================
// whilec - WHILE Language Toolchain
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating Foundation loggers
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwlog "github.com/msto63/whilec/foundation/core/log"

	"github.com/msto63/whilec/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name (component)
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: "json", "text" or "console" (default: text)
	Format string

	// Output writer (default: stderr)
	Output io.Writer

	// Additional outputs written alongside Output
	AdditionalOutputs []io.Writer

	// Record caller information
	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "error",
		Format: "text",
	}
}

// NewLogger creates a new Foundation logger
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	// Add additional outputs if specified
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        parseLevel(cfg.Level),
		Format:       parseFormat(cfg.Format),
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	})
}

// FromConfig creates the application logger from the general section.
// Verbose forces debug level regardless of the configured level.
func FromConfig(cfg *config.Config, output io.Writer, verbose bool) *mdwlog.Logger {
	lc := DefaultLoggerConfig(cfg.General.Name)
	lc.Level = cfg.General.LogLevel
	lc.Format = cfg.General.LogFormat
	lc.Output = output
	if verbose {
		lc.Level = "debug"
		lc.EnableCaller = true
	}
	return NewLogger(lc)
}

// NewSimpleLogger creates a logger with default configuration
func NewSimpleLogger(name string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}
