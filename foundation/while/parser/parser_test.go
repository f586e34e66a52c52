// File: parser_test.go
// Title: WHILE Parser Unit Tests
// Description: Tests tree construction, associativity and precedence of the
//              climbing driver, error reporting and prediction tables.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser test suite

package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwlog "github.com/msto63/whilec/foundation/core/log"
	"github.com/msto63/whilec/foundation/while/ast"
	"github.com/msto63/whilec/foundation/while/lexer"
	"github.com/msto63/whilec/foundation/while/token"
)

func newTestParser(listeners ...ast.Listener) *Parser {
	return New(Options{Logger: mdwlog.Discard(), Listeners: listeners})
}

func parse(t *testing.T, src string, listeners ...ast.Listener) (*ast.Start, error) {
	t.Helper()
	return newTestParser(listeners...).Parse(lexer.New(src))
}

func mustParse(t *testing.T, src string) *ast.Start {
	t.Helper()
	tree, err := parse(t, src)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return tree
}

// shape renders the tree with explicit grouping of the left-recursive
// alternatives, e.g. "((skip ; skip) ; skip)"
func shape(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Start:
		return shape(n.Stmt())
	case *ast.Stmt:
		switch n.Alt {
		case ast.AltSeq:
			return "(" + shape(n.Left()) + " ; " + shape(n.Right()) + ")"
		case ast.AltIf:
			return "if " + shape(n.Cond()) + " then " + shape(n.Then()) + " else " + shape(n.Else())
		case ast.AltWhile:
			return "while " + shape(n.Cond()) + " do " + shape(n.Body())
		}
	case *ast.Boolexpr:
		switch n.Alt {
		case ast.AltAnd:
			return "(" + shape(n.Left()) + " & " + shape(n.Right()) + ")"
		case ast.AltNot:
			return "~" + shape(n.Operand())
		}
	}
	return ast.Text(n)
}

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, tree *ast.Start)
	}{
		{
			name:  "skip",
			input: "skip",
			check: func(t *testing.T, tree *ast.Start) {
				s := tree.Stmt()
				if s.Alt != ast.AltSkip {
					t.Fatalf("Expected skip, got %s", s.Alt)
				}
				if len(s.Children) != 1 {
					t.Fatalf("Expected a single terminal child, got %d children", len(s.Children))
				}
				if leaf, ok := s.Children[0].(*ast.Terminal); !ok || leaf.Token.Kind != token.Skip {
					t.Errorf("Expected 'skip' terminal, got %v", s.Children[0])
				}
				if tree.EOF() == nil {
					t.Error("Expected EOF leaf")
				}
			},
		},
		{
			name:  "assignment with sum",
			input: "L = ((L+n)+L)",
			check: func(t *testing.T, tree *ast.Start) {
				s := tree.Stmt()
				if s.Alt != ast.AltAssign || s.Var() == nil {
					t.Fatalf("Expected assignment, got %s", s.Alt)
				}
				v := s.Value()
				if v.Alt != ast.AltSum || v.Lhs().Alt != ast.AltSum || v.Rhs().Alt != ast.AltVar {
					t.Errorf("Unexpected sum shape: %s", ast.Text(v))
				}
			},
		},
		{
			name:  "if with comparison",
			input: "if L == n then skip else L = n",
			check: func(t *testing.T, tree *ast.Start) {
				s := tree.Stmt()
				if s.Alt != ast.AltIf {
					t.Fatalf("Expected if, got %s", s.Alt)
				}
				if s.Cond().Alt != ast.AltEq || s.Then().Alt != ast.AltSkip || s.Else().Alt != ast.AltAssign {
					t.Errorf("Unexpected if parts: %s", shape(tree))
				}
			},
		},
		{
			name:  "while with negation",
			input: "while ~false do skip",
			check: func(t *testing.T, tree *ast.Start) {
				s := tree.Stmt()
				if s.Alt != ast.AltWhile || s.Cond().Alt != ast.AltNot || s.Cond().Operand().Alt != ast.AltFalse {
					t.Errorf("Unexpected while shape: %s", shape(tree))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := mustParse(t, tt.input)
			if err := ast.Validate(tree); err != nil {
				t.Fatalf("Invalid tree: %v", err)
			}
			tt.check(t, tree)
		})
	}
}

func TestParser_LeavesReproduceInput(t *testing.T) {
	inputs := []string{
		"skip",
		"L = n",
		"skip ; skip ; skip",
		"if true & ~false then L = (n+L) else skip ; while L == n do skip",
		"while (L+(n+n)) == L & true & false do if false then skip else skip",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tokens, err := lexer.Tokenize(input)
			if err != nil {
				t.Fatalf("Tokenize failed: %v", err)
			}
			p := newTestParser()
			tree, err := p.ParseTokens(tokens)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if diff := cmp.Diff(tokens, ast.Leaves(tree)); diff != "" {
				t.Errorf("Leaves differ from input tokens (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tokens, p.Consumed()); diff != "" {
				t.Errorf("Consumed tokens differ (-want +got):\n%s", diff)
			}
			if got := ast.Text(tree); got != input {
				t.Errorf("Expected text %q, got %q", input, got)
			}
		})
	}
}

func TestParser_Grouping(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// left associativity
		{"skip ; skip ; skip", "((skip ; skip) ; skip)"},
		{"if true & false & true then skip else skip", "if ((true & false) & true) then skip else skip"},

		// the else branch recurses at 4, tighter than ';' at 3
		{"if true then skip else skip ; skip", "(if true then skip else skip ; skip)"},
		// the then branch recurses at 0 and is closed by 'else'
		{"if true then skip ; skip else skip", "if true then (skip ; skip) else skip"},
		// the while body recurses at 2, looser than ';' at 3
		{"while true do skip ; skip", "while true do (skip ; skip)"},
		{"while true do skip ; skip ; skip", "while true do ((skip ; skip) ; skip)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tree := mustParse(t, tt.input)
			if got := shape(tree); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParser_BoolGrouping(t *testing.T) {
	tests := []struct {
		cond string
		want string
	}{
		{"true & true & false", "((true & true) & false)"},
		// negation recurses at 1, looser than '&' at 2
		{"~true & false", "~(true & false)"},
		{"~true & false & true", "~((true & false) & true)"},
		{"~~true", "~~true"},
	}

	for _, tt := range tests {
		t.Run(tt.cond, func(t *testing.T) {
			tree := mustParse(t, "while "+tt.cond+" do skip")
			if got := shape(tree.Stmt().Cond()); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		rule     ast.Rule
		expected token.KindSet
		found    token.Kind
		column   int
	}{
		{
			name:     "missing numexpr",
			input:    "L = ",
			rule:     ast.RuleNumexpr,
			expected: token.NewKindSet(token.L, token.Num, token.LParen),
			found:    token.EOF,
			column:   5,
		},
		{
			name:     "trailing tokens",
			input:    "skip skip",
			rule:     ast.RuleStart,
			expected: token.NewKindSet(token.EOF),
			found:    token.Space,
			column:   5,
		},
		{
			name:     "empty program",
			input:    "",
			rule:     ast.RuleStmt,
			expected: token.NewKindSet(token.L, token.If, token.While, token.Skip),
			found:    token.EOF,
			column:   1,
		},
		{
			name:     "missing space after semicolon",
			input:    "skip ;skip",
			rule:     ast.RuleStmt,
			expected: token.NewKindSet(token.Space),
			found:    token.Skip,
			column:   7,
		},
		{
			name:     "missing else",
			input:    "if true then skip",
			rule:     ast.RuleStmt,
			expected: token.NewKindSet(token.Space),
			found:    token.EOF,
			column:   18,
		},
		{
			name:     "bad boolexpr",
			input:    "while skip do skip",
			rule:     ast.RuleBoolexpr,
			expected: token.NewKindSet(token.L, token.True, token.False, token.Not, token.Num, token.LParen),
			found:    token.Skip,
			column:   7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := parse(t, tt.input)
			if tree != nil {
				t.Error("Expected no tree on failure")
			}

			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("Expected SyntaxError, got %T: %v", err, err)
			}
			if syntaxErr.Rule != tt.rule {
				t.Errorf("Expected rule %s, got %s", tt.rule, syntaxErr.Rule)
			}
			if diff := cmp.Diff(tt.expected, syntaxErr.Expected); diff != "" {
				t.Errorf("Unexpected expected set (-want +got):\n%s", diff)
			}
			if syntaxErr.Found.Kind != tt.found || syntaxErr.Found.Column != tt.column {
				t.Errorf("Expected %s at column %d, got %s at column %d",
					tt.found, tt.column, syntaxErr.Found.Kind, syntaxErr.Found.Column)
			}
		})
	}
}

func TestParser_SyntaxErrorMessage(t *testing.T) {
	_, err := parse(t, "L = ")
	want := "syntax error at 1:5 in numexpr: expected {'L', 'n', '('}, found EOF"
	if err == nil || err.Error() != want {
		t.Errorf("Expected %q, got %v", want, err)
	}
}

func TestParser_UnexpectedEndOfInput(t *testing.T) {
	// no EOF token: the source stops mid-rule
	tokens := []token.Token{
		token.New(token.L, 0, 0, 1, 1),
		token.New(token.Space, 1, 1, 1, 2),
	}

	_, err := newTestParser().ParseTokens(tokens)

	var eoi *UnexpectedEndOfInputError
	if !errors.As(err, &eoi) {
		t.Fatalf("Expected UnexpectedEndOfInputError, got %T: %v", err, err)
	}
	if !eoi.Expected.Contains(token.Assign) || eoi.Token.Offset != 2 {
		t.Errorf("Unexpected error details: %v (offset %d)", eoi, eoi.Token.Offset)
	}
}

func TestParser_MaxDepth(t *testing.T) {
	deep := "L = " + strings.Repeat("(", 50) + "n" + strings.Repeat("+n)", 50)

	if _, err := New(Options{Logger: mdwlog.Discard()}).Parse(lexer.New(deep)); err != nil {
		t.Fatalf("Default depth must accept 50 levels: %v", err)
	}

	_, err := New(Options{Logger: mdwlog.Discard(), MaxDepth: 20}).Parse(lexer.New(deep))
	if !errors.Is(err, ErrNestingTooDeep) {
		t.Fatalf("Expected ErrNestingTooDeep, got %v", err)
	}
	var nesting *NestingError
	if !errors.As(err, &nesting) || nesting.Limit != 20 {
		t.Errorf("Expected NestingError with limit 20, got %v", err)
	}
}

func TestParser_Reuse(t *testing.T) {
	p := newTestParser()
	if _, err := p.Parse(lexer.New("L = ")); err == nil {
		t.Fatal("Expected first parse to fail")
	}
	tree, err := p.Parse(lexer.New("skip ; skip"))
	if err != nil {
		t.Fatalf("Expected second parse to succeed: %v", err)
	}
	if tree.Stmt().Alt != ast.AltSeq {
		t.Errorf("Expected seq, got %s", tree.Stmt().Alt)
	}
}

func TestPredictionTables_Unambiguous(t *testing.T) {
	for _, table := range []*predictionTable{stmtTable, boolexprTable, numexprTable} {
		if conflicts := table.conflicts(); len(conflicts) > 0 {
			t.Errorf("Rule %s has conflicting kinds %v", table.rule, conflicts)
		}
	}
}

func TestPredict_Ambiguous(t *testing.T) {
	conflicting := newPredictionTable(ast.RuleStmt,
		alternative{ast.AltAssign, []token.Kind{token.L}},
		alternative{ast.AltSkip, []token.Kind{token.L, token.Skip}},
	)
	if diff := cmp.Diff([]token.Kind{token.L}, conflicting.conflicts()); diff != "" {
		t.Errorf("Unexpected conflicts (-want +got):\n%s", diff)
	}

	p := newTestParser()
	p.stream = token.NewStream(lexer.New("L = n"))

	_, err := p.predict(conflicting)
	var ambiguous *AmbiguousGrammarError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("Expected AmbiguousGrammarError, got %v", err)
	}
	if ambiguous.Kind != token.L || len(ambiguous.Alts) != 2 {
		t.Errorf("Unexpected error details: %v", ambiguous)
	}
	if !strings.Contains(err.Error(), "assign, skip") {
		t.Errorf("Expected alternatives in message, got %q", err.Error())
	}

	if alt, err := p.predict(stmtTable); err != nil || alt != ast.AltAssign {
		t.Errorf("Expected assign prediction, got %s (%v)", alt, err)
	}
}

func TestContinuation_LeavesStreamInPlace(t *testing.T) {
	tokens, err := lexer.Tokenize(" ; skip")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	s := token.NewStream(token.NewSliceSource(tokens))

	if !seqContinuation.applies(s, 0) {
		t.Error("Expected ' ;' to continue a sequence at precedence 0")
	}
	if seqContinuation.applies(s, elsePrec) {
		t.Error("Expected ' ;' not to continue an else branch")
	}
	if andContinuation.applies(s, 0) {
		t.Error("Expected ' ;' not to continue a conjunction")
	}
	if s.Index() != 0 || s.LA(1) != token.Space {
		t.Errorf("Expected stream at 0 on SPACE, got %d on %v", s.Index(), s.LA(1))
	}
	if got := len(s.Consumed()); got != 0 {
		t.Errorf("Expected no consumed tokens, got %d", got)
	}
}
