// File: doc.go
// Title: WHILE Parser Package Documentation
// Description: Recursive descent parser for the WHILE language with a
//              precedence-climbing driver for the left-recursive stmt and
//              boolexpr rules and parse-time listener dispatch.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

/*
Package parser turns a stream of classified WHILE tokens into a parse tree.

The grammar has two left-recursive alternatives: statement sequencing
(stmt SPACE ';' SPACE stmt, precedence 3) and conjunction (boolexpr SPACE '&'
SPACE boolexpr, precedence 2). Both are recognized by a climbing loop that
takes a minimum precedence: after a primary alternative has been parsed the
loop keeps wrapping the current node into a new sequence or conjunction node
while the operator binds at least as tightly as the minimum. Right operands
are parsed at the operator's precedence plus one, which makes both
operators left-associative. Fixed positions recurse at fixed precedences:
the else branch of if at 4, the while body at 2 and the operand of ~ at 1.

Alternatives are predicted from one token of lookahead using tables built
once from each alternative's FIRST set. A token predicting more than one
alternative is reported as an AmbiguousGrammarError.

Listeners registered through Options.Listeners or AddListener are notified
during the parse. Events inside a climbing frame are held until the frame
can no longer be wrapped, so the delivered sequence equals an ast.Walk over
the finished tree. On failure the held events are dropped and
VisitErrorNode fires once with the offending token.

Usage:

	p := parser.New(parser.Options{Logger: logger})
	p.AddListener(myListener)
	tree, err := p.Parse(lexer.New(src))
*/
package parser
