// File: doc.go
// Title: WHILE Parse Tree Package Documentation
// Description: Documents the parse tree node variants, the listener
//              contract and the tree utilities of the WHILE parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

/*
Package ast defines the concrete parse tree produced by the WHILE parser.

Each grammar rule has its own node type (Start, Stmt, Boolexpr, Numexpr)
carrying an Alt tag from the rule's fixed set of alternatives and an ordered
list of children: sub-rule nodes and Terminal leaves in grammar order. The
tree is strictly single-owner; Validate checks the alternative tags and that
no node is shared.

Listeners observe rule entry and exit. Walk replays the notifications for a
finished tree; the parser delivers the same sequence while parsing.

	rec := ast.NewRecorder()
	ast.Walk(rec, tree)
	fmt.Println(strings.Join(rec.Events, "\n"))
*/
package ast
