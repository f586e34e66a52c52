// File: doc.go
// Title: WHILE Package Documentation
// Description: High-level API for scanning and parsing WHILE programs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

/*
Package while provides the high-level API for the WHILE language toolchain.

The Engine combines the lexer in package lexer with the parser in package
parser. Callers that already hold classified tokens can use the parser
directly with any token.Source.

Failures are returned as *mdwerror.Error values with one of the codes
WHILE_SYNTAX, WHILE_UNEXPECTED_EOF, WHILE_AMBIGUOUS, WHILE_LEXICAL,
WHILE_NESTING or INVALID_INPUT. The underlying parser error stays reachable
with errors.As.

Usage:

	engine := while.New(while.Options{Logger: logger})
	result, err := engine.Parse(ctx, "L = (L+n) ; skip")
	if mdwerror.HasCode(err, mdwerror.CodeSyntax) {
		// report the position from the error details
	}
*/
package while
