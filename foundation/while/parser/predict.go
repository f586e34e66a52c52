// File: predict.go
// Title: WHILE Alternative Prediction
// Description: Builds the immutable one-token prediction tables used to
//              choose the primary alternative of a rule.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial prediction tables

package parser

import (
	"github.com/msto63/whilec/foundation/while/ast"
	"github.com/msto63/whilec/foundation/while/token"
)

// alternative pairs a non-left-recursive alternative with its FIRST set
type alternative struct {
	alt   ast.Alt
	first []token.Kind
}

// predictionTable maps a lookahead kind to the alternatives it starts
type predictionTable struct {
	rule     ast.Rule
	byKind   map[token.Kind][]ast.Alt
	expected token.KindSet
}

func newPredictionTable(rule ast.Rule, alts ...alternative) *predictionTable {
	t := &predictionTable{rule: rule, byKind: make(map[token.Kind][]ast.Alt)}
	var all []token.Kind
	for _, a := range alts {
		for _, k := range a.first {
			t.byKind[k] = append(t.byKind[k], a.alt)
			all = append(all, k)
		}
	}
	t.expected = token.NewKindSet(all...)
	return t
}

// conflicts returns the kinds predicting more than one alternative
func (t *predictionTable) conflicts() []token.Kind {
	var kinds []token.Kind
	for _, k := range t.expected {
		if len(t.byKind[k]) > 1 {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

var numexprFirst = []token.Kind{token.L, token.Num, token.LParen}

var (
	stmtTable = newPredictionTable(ast.RuleStmt,
		alternative{ast.AltAssign, []token.Kind{token.L}},
		alternative{ast.AltIf, []token.Kind{token.If}},
		alternative{ast.AltWhile, []token.Kind{token.While}},
		alternative{ast.AltSkip, []token.Kind{token.Skip}},
	)

	boolexprTable = newPredictionTable(ast.RuleBoolexpr,
		alternative{ast.AltTrue, []token.Kind{token.True}},
		alternative{ast.AltFalse, []token.Kind{token.False}},
		alternative{ast.AltEq, numexprFirst},
		alternative{ast.AltNot, []token.Kind{token.Not}},
	)

	numexprTable = newPredictionTable(ast.RuleNumexpr,
		alternative{ast.AltVar, []token.Kind{token.L}},
		alternative{ast.AltNum, []token.Kind{token.Num}},
		alternative{ast.AltSum, []token.Kind{token.LParen}},
	)
)

// continuation describes a left-recursive alternative: current node, then
// SPACE op SPACE, then a right operand parsed at prec+1
type continuation struct {
	alt  ast.Alt
	op   token.Kind
	prec int
}

var (
	seqContinuation = continuation{alt: ast.AltSeq, op: token.Semi, prec: 3}
	andContinuation = continuation{alt: ast.AltAnd, op: token.And, prec: 2}
)

// Fixed recursion precedences of non-left-recursive alternatives
const (
	elsePrec    = 4
	bodyPrec    = 2
	operandPrec = 1
)

// applies reports whether the continuation can extend a node parsed by a
// frame with the given minimum precedence. The stream is left where it was.
func (c continuation) applies(s *token.Stream, minPrec int) bool {
	if c.prec < minPrec || s.LA(1) != token.Space {
		return false
	}
	mark := s.Mark()
	defer s.Reset(mark)
	s.Consume()
	return s.LA(1) == c.op
}
