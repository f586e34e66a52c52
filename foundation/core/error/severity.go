// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to choose the log level of an
//              error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks rejected input, e.g. a syntax error in a program
	SeverityLow Severity = iota

	// SeverityMedium marks recoverable failures such as canceled requests
	SeverityMedium

	// SeverityHigh marks failures of the toolchain: storage, configuration
	SeverityHigh

	// SeverityCritical marks internal invariant violations
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal, CodeAmbiguous:
		return SeverityCritical
	case CodeStorageError, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeSyntax, CodeUnexpectedEOF, CodeLexical, CodeNestingTooDeep, CodeInvalidInput:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
