// File: recorder.go
// Title: WHILE Event Recording Listener
// Description: Implements a listener that records every notification as a
//              compact event string, used for tracing and for comparing
//              parse-time dispatch with post-hoc walks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial event recorder

package ast

import (
	"fmt"

	"github.com/msto63/whilec/foundation/while/token"
)

// Recorder records listener events as strings such as "enter stmt:seq",
// "terminal ';'", "exit stmt:seq" and "error EOF".
// Generic every-rule hooks are recorded only when Generic is set.
type Recorder struct {
	Generic bool
	Events  []string
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Reset clears recorded events
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

func (r *Recorder) add(format string, args ...interface{}) {
	r.Events = append(r.Events, fmt.Sprintf(format, args...))
}

func (r *Recorder) EnterStart(n *Start)       { r.add("enter start:%s", n.Alt) }
func (r *Recorder) ExitStart(n *Start)        { r.add("exit start:%s", n.Alt) }
func (r *Recorder) EnterStmt(n *Stmt)         { r.add("enter stmt:%s", n.Alt) }
func (r *Recorder) ExitStmt(n *Stmt)          { r.add("exit stmt:%s", n.Alt) }
func (r *Recorder) EnterBoolexpr(n *Boolexpr) { r.add("enter boolexpr:%s", n.Alt) }
func (r *Recorder) ExitBoolexpr(n *Boolexpr)  { r.add("exit boolexpr:%s", n.Alt) }
func (r *Recorder) EnterNumexpr(n *Numexpr)   { r.add("enter numexpr:%s", n.Alt) }
func (r *Recorder) ExitNumexpr(n *Numexpr)    { r.add("exit numexpr:%s", n.Alt) }

func (r *Recorder) EnterEveryRule(n Node) {
	if r.Generic {
		r.add("enter-any %s", n.Rule())
	}
}

func (r *Recorder) ExitEveryRule(n Node) {
	if r.Generic {
		r.add("exit-any %s", n.Rule())
	}
}

func (r *Recorder) VisitTerminal(t *Terminal) {
	r.add("terminal %s", token.DisplayName(t.Token.Kind))
}

func (r *Recorder) VisitErrorNode(e *ErrorNode) {
	r.add("error %s", token.DisplayName(e.Token.Kind))
}
