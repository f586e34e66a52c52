// File: listener.go
// Title: WHILE Parse Tree Listener
// Description: Defines the listener interface notified on rule entry and
//              exit, the no-op BaseListener, closed-set event dispatch and
//              the post-hoc depth-first tree walker.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial listener and walker implementation

package ast

// Listener observes rule entry and exit. One Enter/Exit pair exists per rule;
// EnterEveryRule/ExitEveryRule fire adjacent to the rule-specific hooks.
type Listener interface {
	EnterStart(n *Start)
	ExitStart(n *Start)
	EnterStmt(n *Stmt)
	ExitStmt(n *Stmt)
	EnterBoolexpr(n *Boolexpr)
	ExitBoolexpr(n *Boolexpr)
	EnterNumexpr(n *Numexpr)
	ExitNumexpr(n *Numexpr)

	EnterEveryRule(n Node)
	ExitEveryRule(n Node)
	VisitTerminal(t *Terminal)
	VisitErrorNode(e *ErrorNode)
}

// BaseListener provides no-op implementations of all hooks.
// Embed it in concrete listeners to only override needed methods.
type BaseListener struct{}

func (BaseListener) EnterStart(*Start)         {}
func (BaseListener) ExitStart(*Start)          {}
func (BaseListener) EnterStmt(*Stmt)           {}
func (BaseListener) ExitStmt(*Stmt)            {}
func (BaseListener) EnterBoolexpr(*Boolexpr)   {}
func (BaseListener) ExitBoolexpr(*Boolexpr)    {}
func (BaseListener) EnterNumexpr(*Numexpr)     {}
func (BaseListener) ExitNumexpr(*Numexpr)      {}
func (BaseListener) EnterEveryRule(Node)       {}
func (BaseListener) ExitEveryRule(Node)        {}
func (BaseListener) VisitTerminal(*Terminal)   {}
func (BaseListener) VisitErrorNode(*ErrorNode) {}

// EnterRule fires EnterEveryRule followed by the rule-specific enter hook
func EnterRule(l Listener, n Node) {
	l.EnterEveryRule(n)
	switch n := n.(type) {
	case *Start:
		l.EnterStart(n)
	case *Stmt:
		l.EnterStmt(n)
	case *Boolexpr:
		l.EnterBoolexpr(n)
	case *Numexpr:
		l.EnterNumexpr(n)
	}
}

// ExitRule fires the rule-specific exit hook followed by ExitEveryRule
func ExitRule(l Listener, n Node) {
	switch n := n.(type) {
	case *Start:
		l.ExitStart(n)
	case *Stmt:
		l.ExitStmt(n)
	case *Boolexpr:
		l.ExitBoolexpr(n)
	case *Numexpr:
		l.ExitNumexpr(n)
	}
	l.ExitEveryRule(n)
}

// Walk performs a depth-first traversal of n, firing enter before and exit
// after each rule node's children and VisitTerminal for every leaf.
func Walk(l Listener, n Node) {
	EnterRule(l, n)
	for _, c := range n.Elements() {
		switch c := c.(type) {
		case *Terminal:
			l.VisitTerminal(c)
		case Node:
			Walk(l, c)
		}
	}
	ExitRule(l, n)
}
