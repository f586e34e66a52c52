// File: nodes.go
// Title: WHILE Parse Tree Node Definitions
// Description: Defines the parse tree produced by the WHILE parser: one
//              tagged variant per grammar rule, terminal leaves and error
//              nodes, with typed accessors and structural validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parse tree definitions

package ast

import (
	"fmt"
	"strings"

	"github.com/msto63/whilec/foundation/while/token"
)

// Rule identifies a grammar rule
type Rule int

const (
	RuleStart Rule = iota
	RuleStmt
	RuleBoolexpr
	RuleNumexpr
)

// RuleNames lists the rule names indexed by Rule
var RuleNames = [...]string{
	RuleStart:    "start",
	RuleStmt:     "stmt",
	RuleBoolexpr: "boolexpr",
	RuleNumexpr:  "numexpr",
}

// String returns the grammar name of the rule
func (r Rule) String() string {
	if r < 0 || int(r) >= len(RuleNames) {
		return "unknown"
	}
	return RuleNames[r]
}

// Alt tags the alternative a rule node matched. The zero value is invalid.
type Alt int

const (
	AltInvalid Alt = iota

	// start
	AltProgram

	// stmt
	AltAssign
	AltIf
	AltWhile
	AltSkip
	AltSeq

	// boolexpr
	AltTrue
	AltFalse
	AltEq
	AltNot
	AltAnd

	// numexpr
	AltVar
	AltNum
	AltSum
)

var altNames = [...]string{
	AltInvalid: "invalid",
	AltProgram: "program",
	AltAssign:  "assign",
	AltIf:      "if",
	AltWhile:   "while",
	AltSkip:    "skip",
	AltSeq:     "seq",
	AltTrue:    "true",
	AltFalse:   "false",
	AltEq:      "eq",
	AltNot:     "not",
	AltAnd:     "and",
	AltVar:     "var",
	AltNum:     "num",
	AltSum:     "sum",
}

// String returns the alternative name
func (a Alt) String() string {
	if a < 0 || int(a) >= len(altNames) {
		return "invalid"
	}
	return altNames[a]
}

// Rule returns the rule the alternative belongs to
func (a Alt) Rule() (Rule, bool) {
	switch a {
	case AltProgram:
		return RuleStart, true
	case AltAssign, AltIf, AltWhile, AltSkip, AltSeq:
		return RuleStmt, true
	case AltTrue, AltFalse, AltEq, AltNot, AltAnd:
		return RuleBoolexpr, true
	case AltVar, AltNum, AltSum:
		return RuleNumexpr, true
	default:
		return 0, false
	}
}

// Element is a child of a rule node: either a rule Node or a *Terminal
type Element interface {
	element()
}

// Node is implemented by the four rule variants
type Node interface {
	Element
	Rule() Rule
	Alternative() Alt
	Elements() []Element
}

// Terminal is a leaf holding a directly matched token
type Terminal struct {
	Token token.Token
}

func (*Terminal) element() {}

// String returns the token text, or <EOF>
func (t *Terminal) String() string {
	if t.Token.Kind == token.EOF {
		return "<EOF>"
	}
	return t.Token.Text
}

// ErrorNode reports the token at which a parse failed. It is handed to
// listeners only and never appears in a completed tree.
type ErrorNode struct {
	Token token.Token
	Err   error
}

// Start is the root of a parse tree: stmt EOF
type Start struct {
	Alt      Alt
	Children []Element
}

// Stmt is a statement node
type Stmt struct {
	Alt      Alt
	Children []Element
}

// Boolexpr is a boolean expression node
type Boolexpr struct {
	Alt      Alt
	Children []Element
}

// Numexpr is a numeric expression node
type Numexpr struct {
	Alt      Alt
	Children []Element
}

func (*Start) element()    {}
func (*Stmt) element()     {}
func (*Boolexpr) element() {}
func (*Numexpr) element()  {}

func (*Start) Rule() Rule    { return RuleStart }
func (*Stmt) Rule() Rule     { return RuleStmt }
func (*Boolexpr) Rule() Rule { return RuleBoolexpr }
func (*Numexpr) Rule() Rule  { return RuleNumexpr }

func (n *Start) Alternative() Alt    { return n.Alt }
func (n *Stmt) Alternative() Alt     { return n.Alt }
func (n *Boolexpr) Alternative() Alt { return n.Alt }
func (n *Numexpr) Alternative() Alt  { return n.Alt }

func (n *Start) Elements() []Element    { return n.Children }
func (n *Stmt) Elements() []Element     { return n.Children }
func (n *Boolexpr) Elements() []Element { return n.Children }
func (n *Numexpr) Elements() []Element  { return n.Children }

// Start accessors

// Stmt returns the program statement
func (n *Start) Stmt() *Stmt {
	s, _ := nth[*Stmt](n.Children, 0)
	return s
}

// EOF returns the terminating EOF leaf
func (n *Start) EOF() *Terminal {
	return terminal(n.Children, token.EOF, 0)
}

// Stmt accessors

// Var returns the assigned variable of an assignment
func (n *Stmt) Var() *Terminal {
	if n.Alt != AltAssign {
		return nil
	}
	return terminal(n.Children, token.L, 0)
}

// Value returns the assigned expression of an assignment
func (n *Stmt) Value() *Numexpr {
	e, _ := nth[*Numexpr](n.Children, 0)
	return e
}

// Cond returns the condition of an if or while statement
func (n *Stmt) Cond() *Boolexpr {
	e, _ := nth[*Boolexpr](n.Children, 0)
	return e
}

// Then returns the then-branch of an if statement
func (n *Stmt) Then() *Stmt {
	if n.Alt != AltIf {
		return nil
	}
	s, _ := nth[*Stmt](n.Children, 0)
	return s
}

// Else returns the else-branch of an if statement
func (n *Stmt) Else() *Stmt {
	if n.Alt != AltIf {
		return nil
	}
	s, _ := nth[*Stmt](n.Children, 1)
	return s
}

// Body returns the body of a while statement
func (n *Stmt) Body() *Stmt {
	if n.Alt != AltWhile {
		return nil
	}
	s, _ := nth[*Stmt](n.Children, 0)
	return s
}

// Left returns the first statement of a sequence
func (n *Stmt) Left() *Stmt {
	if n.Alt != AltSeq {
		return nil
	}
	s, _ := nth[*Stmt](n.Children, 0)
	return s
}

// Right returns the second statement of a sequence
func (n *Stmt) Right() *Stmt {
	if n.Alt != AltSeq {
		return nil
	}
	s, _ := nth[*Stmt](n.Children, 1)
	return s
}

// Boolexpr accessors

// Operand returns the negated expression
func (n *Boolexpr) Operand() *Boolexpr {
	if n.Alt != AltNot {
		return nil
	}
	e, _ := nth[*Boolexpr](n.Children, 0)
	return e
}

// Left returns the left conjunct
func (n *Boolexpr) Left() *Boolexpr {
	if n.Alt != AltAnd {
		return nil
	}
	e, _ := nth[*Boolexpr](n.Children, 0)
	return e
}

// Right returns the right conjunct
func (n *Boolexpr) Right() *Boolexpr {
	if n.Alt != AltAnd {
		return nil
	}
	e, _ := nth[*Boolexpr](n.Children, 1)
	return e
}

// Lhs returns the left side of a comparison
func (n *Boolexpr) Lhs() *Numexpr {
	e, _ := nth[*Numexpr](n.Children, 0)
	return e
}

// Rhs returns the right side of a comparison
func (n *Boolexpr) Rhs() *Numexpr {
	e, _ := nth[*Numexpr](n.Children, 1)
	return e
}

// Numexpr accessors

// Lhs returns the first summand
func (n *Numexpr) Lhs() *Numexpr {
	e, _ := nth[*Numexpr](n.Children, 0)
	return e
}

// Rhs returns the second summand
func (n *Numexpr) Rhs() *Numexpr {
	e, _ := nth[*Numexpr](n.Children, 1)
	return e
}

// Leaf returns the single terminal of a var or num expression
func (n *Numexpr) Leaf() *Terminal {
	switch n.Alt {
	case AltVar:
		return terminal(n.Children, token.L, 0)
	case AltNum:
		return terminal(n.Children, token.Num, 0)
	default:
		return nil
	}
}

// nth returns the i-th child of type T
func nth[T Element](children []Element, i int) (T, bool) {
	var zero T
	for _, c := range children {
		if v, ok := c.(T); ok {
			if i == 0 {
				return v, true
			}
			i--
		}
	}
	return zero, false
}

// terminal returns the i-th terminal child of kind k
func terminal(children []Element, k token.Kind, i int) *Terminal {
	for _, c := range children {
		if t, ok := c.(*Terminal); ok && t.Token.Kind == k {
			if i == 0 {
				return t
			}
			i--
		}
	}
	return nil
}

// Leaves returns the tokens of all terminal leaves in left-to-right order
func Leaves(n Node) []token.Token {
	var out []token.Token
	collectLeaves(n, &out)
	return out
}

func collectLeaves(n Node, out *[]token.Token) {
	for _, c := range n.Elements() {
		switch c := c.(type) {
		case *Terminal:
			*out = append(*out, c.Token)
		case Node:
			collectLeaves(c, out)
		}
	}
}

// Text concatenates the leaf texts, reproducing the parsed source
func Text(n Node) string {
	var b strings.Builder
	for _, tok := range Leaves(n) {
		b.WriteString(tok.Text)
	}
	return b.String()
}

// Validate checks the structural invariants of a tree: every node carries
// an alternative of its own rule and no node appears twice.
func Validate(n Node) error {
	seen := make(map[Element]bool)
	return validate(n, seen)
}

func validate(n Node, seen map[Element]bool) error {
	if seen[n] {
		return fmt.Errorf("%s node shared between parents", n.Rule())
	}
	seen[n] = true

	rule, ok := n.Alternative().Rule()
	if !ok {
		return fmt.Errorf("%s node has invalid alternative", n.Rule())
	}
	if rule != n.Rule() {
		return fmt.Errorf("%s node tagged with %s alternative %q", n.Rule(), rule, n.Alternative())
	}

	for _, c := range n.Elements() {
		switch c := c.(type) {
		case *Terminal:
			if seen[c] {
				return fmt.Errorf("terminal %s shared between parents", c)
			}
			seen[c] = true
		case Node:
			if err := validate(c, seen); err != nil {
				return err
			}
		case nil:
			return fmt.Errorf("%s node has nil child", n.Rule())
		}
	}
	return nil
}
