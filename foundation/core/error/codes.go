// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the
//              WHILE toolchain.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCanceled     Code = "CANCELED"

	// Parsing
	CodeSyntax         Code = "WHILE_SYNTAX"
	CodeAmbiguous      Code = "WHILE_AMBIGUOUS"
	CodeUnexpectedEOF  Code = "WHILE_UNEXPECTED_EOF"
	CodeLexical        Code = "WHILE_LEXICAL"
	CodeNestingTooDeep Code = "WHILE_NESTING"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Storage
	CodeStorageError Code = "STORAGE_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeCanceled,
		CodeSyntax, CodeAmbiguous, CodeUnexpectedEOF, CodeLexical, CodeNestingTooDeep,
		CodeConfigError, CodeInvalidConfig, CodeStorageError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntax, CodeAmbiguous, CodeUnexpectedEOF, CodeLexical, CodeNestingTooDeep:
		return "parse"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeStorageError:
		return "storage"
	default:
		return "generic"
	}
}

// IsParseFailure reports whether the code describes a rejected input rather
// than a failure of the toolchain itself
func (c Code) IsParseFailure() bool {
	return c == CodeInvalidInput || c.Category() == "parse"
}
