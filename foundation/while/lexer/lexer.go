// File: lexer.go
// Title: WHILE Lexical Analyzer
// Description: Converts WHILE source text into classified tokens. Every
//              token is one of the fixed vocabulary literals, matched
//              longest first; a single blank is the explicit SPACE token.
//              Any other character yields an Invalid token and a lexical
//              error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lexer implementation
// - 2026-10-19 v0.1.1: Match literals through the vocabulary lookup

package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/msto63/whilec/foundation/while/token"
)

// IllegalCharError reports a character outside the vocabulary
type IllegalCharError struct {
	Char   rune
	Offset int
	Line   int
	Column int
}

func (e *IllegalCharError) Error() string {
	return fmt.Sprintf("illegal character %q at line %d, column %d (offset %d)",
		e.Char, e.Line, e.Column, e.Offset)
}

// longestLiteral is the byte length of the longest vocabulary literal
var longestLiteral = func() int {
	n := 0
	for _, k := range token.Kinds() {
		n = max(n, len(k.Literal()))
	}
	return n
}()

// Lexer scans WHILE source text. It implements token.Source.
type Lexer struct {
	input  string
	offset int
	line   int
	column int
	index  int
	done   bool
	err    error
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

// Next implements token.Source. The last token delivered is EOF.
func (l *Lexer) Next() (token.Token, bool) {
	if l.done {
		return token.Token{}, false
	}
	tok := l.NextToken()
	if tok.Kind == token.EOF {
		l.done = true
	}
	return tok, true
}

// NextToken returns the next token. At the end of input it keeps
// returning EOF.
func (l *Lexer) NextToken() token.Token {
	if l.offset >= len(l.input) {
		return l.emit(token.EOF, "")
	}

	rest := l.input[l.offset:]
	for n := min(longestLiteral, len(rest)); n > 0; n-- {
		if k, ok := token.Lookup(rest[:n]); ok {
			return l.emit(k, rest[:n])
		}
	}

	r, size := utf8.DecodeRuneInString(rest)
	if l.err == nil {
		l.err = &IllegalCharError{Char: r, Offset: l.offset, Line: l.line, Column: l.column}
	}
	return l.emit(token.Invalid, rest[:size])
}

// Err returns the first lexical error encountered so far
func (l *Lexer) Err() error {
	return l.err
}

// Tokenize returns all tokens up to and including EOF. Scanning stops at
// the first illegal character.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.Invalid {
			return tokens, l.err
		}
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) emit(k token.Kind, text string) token.Token {
	tok := token.Token{
		Kind:   k,
		Text:   text,
		Index:  l.index,
		Offset: l.offset,
		Line:   l.line,
		Column: l.column,
	}
	l.index++
	l.offset += len(text)
	if text == "\n" {
		l.line++
		l.column = 1
	} else {
		l.column += utf8.RuneCountInString(text)
	}
	return tok
}

// Tokenize is a convenience function that scans input completely
func Tokenize(input string) ([]token.Token, error) {
	return New(input).Tokenize()
}
