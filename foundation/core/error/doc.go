// Package error provides structured errors for the WHILE toolchain.
//
// Package: error
// Title: Structured Error Handling
// Description: Implements an error type carrying a code, a severity, an
//
//	operation name and free-form details, with wrapping that
//	preserves the code of the wrapped error. Parse failures are
//	classified with WHILE_* codes so callers can tell syntax
//	errors apart from configuration or storage failures.
//
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial error framework
//
// Usage:
//
//	err := mdwerror.Wrap(syntaxErr, "parse failed").
//		WithCode(mdwerror.CodeSyntax).
//		WithOperation("while.Parse").
//		WithDetail("line", 1)
//
//	if mdwerror.HasCode(err, mdwerror.CodeSyntax) {
//		// report to the user
//	}
package error
