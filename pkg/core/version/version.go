// ============================================================================
// whilec - WHILE Language Toolchain
// ============================================================================
//
// Package:     version
// Description: Central version management for the whilec toolchain
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Build information, set via -ldflags "-X github.com/msto63/whilec/pkg/core/version.Commit=..."
var (
	Version   = "0.1.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Component versions
const (
	// Grammar version of the accepted WHILE dialect
	Grammar = "1.0.0"

	// Store schema version of the verdict database
	StoreSchema = "1.0.0"
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	Grammar   string `json:"grammar" yaml:"grammar"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Info returns the build information of the running binary
func Info() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		Grammar:   Grammar,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line version summary
func (b BuildInfo) String() string {
	return fmt.Sprintf("whilec %s (commit %s, built %s, grammar %s, %s %s)",
		b.Version, b.Commit, b.BuildDate, b.Grammar, b.GoVersion, b.Platform)
}
