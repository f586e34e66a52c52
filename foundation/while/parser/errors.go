// File: errors.go
// Title: WHILE Parser Errors
// Description: Defines the failures reported by the parser. The first
//              failure aborts the parse; no recovery is attempted.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial error taxonomy

package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/msto63/whilec/foundation/while/ast"
	"github.com/msto63/whilec/foundation/while/token"
)

// ErrNestingTooDeep is matched by NestingError values
var ErrNestingTooDeep = errors.New("nesting too deep")

// Error is implemented by every failure the parser returns
type Error interface {
	error
	// At returns the token at which the parse failed
	At() token.Token
}

// SyntaxError reports a token outside the expected set
type SyntaxError struct {
	Rule     ast.Rule
	Expected token.KindSet
	Found    token.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s in %s: expected %s, found %s",
		e.Found.Position(), e.Rule, e.Expected, token.DisplayName(e.Found.Kind))
}

// At implements Error
func (e *SyntaxError) At() token.Token { return e.Found }

// AmbiguousGrammarError reports a lookahead token that predicts more than
// one alternative of a rule
type AmbiguousGrammarError struct {
	Rule  ast.Rule
	Kind  token.Kind
	Alts  []ast.Alt
	Token token.Token
}

func (e *AmbiguousGrammarError) Error() string {
	names := make([]string, len(e.Alts))
	for i, alt := range e.Alts {
		names[i] = alt.String()
	}
	return fmt.Sprintf("ambiguous grammar at %s in %s: %s predicts alternatives %s",
		e.Token.Position(), e.Rule, token.DisplayName(e.Kind), strings.Join(names, ", "))
}

// At implements Error
func (e *AmbiguousGrammarError) At() token.Token { return e.Token }

// UnexpectedEndOfInputError reports a token source that stopped before
// delivering an EOF token
type UnexpectedEndOfInputError struct {
	Rule     ast.Rule
	Expected token.KindSet
	Token    token.Token // placeholder positioned at the end of the last token
}

func (e *UnexpectedEndOfInputError) Error() string {
	return fmt.Sprintf("unexpected end of input at %s in %s: expected %s",
		e.Token.Position(), e.Rule, e.Expected)
}

// At implements Error
func (e *UnexpectedEndOfInputError) At() token.Token { return e.Token }

// NestingError reports rule nesting beyond Options.MaxDepth
type NestingError struct {
	Limit int
	Token token.Token
}

func (e *NestingError) Error() string {
	return fmt.Sprintf("nesting deeper than %d rules at %s", e.Limit, e.Token.Position())
}

// At implements Error
func (e *NestingError) At() token.Token { return e.Token }

// Unwrap makes errors.Is(err, ErrNestingTooDeep) hold
func (e *NestingError) Unwrap() error { return ErrNestingTooDeep }
