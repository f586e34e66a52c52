// File: events.go
// Title: WHILE Parse-Time Listener Dispatch
// Description: Delivers rule and terminal events to registered listeners
//              while parsing. Events of undecided climbing frames are held
//              in order; wrapping a node into a sequence or conjunction
//              records the new node's enter event against the position of
//              its left operand's first event.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial dispatcher
// - 2026-10-19 v0.1.1: Wraps no longer shift the held queue

package parser

import (
	"github.com/msto63/whilec/foundation/while/ast"
)

type eventKind int

const (
	enterEvent eventKind = iota
	exitEvent
	terminalEvent
)

type event struct {
	kind eventKind
	node ast.Node
	term *ast.Terminal
}

// dispatcher fans events out to listeners in registration order
type dispatcher struct {
	listeners []ast.Listener
	queue     []event
	held      int // open climbing frames

	// wraps[i] lists enter events to deliver before queue[i], innermost
	// first
	wraps map[int][]ast.Node
}

func (d *dispatcher) active() bool {
	return len(d.listeners) > 0
}

// reset drops all state of a previous parse
func (d *dispatcher) reset() {
	d.queue = d.queue[:0]
	d.held = 0
	clear(d.wraps)
}

// hold opens a climbing frame and returns its mark, the queue position
// where the frame's first event will go
func (d *dispatcher) hold() int {
	d.held++
	return len(d.queue)
}

// release closes a climbing frame; the last one flushes the queue
func (d *dispatcher) release() {
	d.held--
	if d.held == 0 {
		d.flush()
	}
}

func (d *dispatcher) enter(n ast.Node) {
	d.emit(event{kind: enterEvent, node: n})
}

func (d *dispatcher) exit(n ast.Node) {
	d.emit(event{kind: exitEvent, node: n})
}

func (d *dispatcher) terminal(t *ast.Terminal) {
	d.emit(event{kind: terminalEvent, term: t})
}

// wrap schedules the enter event of n at mark, in front of the held
// events of the node n is about to adopt as its first child. A later wrap
// at the same mark encloses the earlier ones.
func (d *dispatcher) wrap(mark int, n ast.Node) {
	if !d.active() {
		return
	}
	if d.wraps == nil {
		d.wraps = make(map[int][]ast.Node)
	}
	d.wraps[mark] = append(d.wraps[mark], n)
}

// fail discards held events and reports the error node
func (d *dispatcher) fail(e *ast.ErrorNode) {
	d.reset()
	for _, l := range d.listeners {
		l.VisitErrorNode(e)
	}
}

func (d *dispatcher) emit(e event) {
	if !d.active() {
		return
	}
	if d.held > 0 {
		d.queue = append(d.queue, e)
		return
	}
	d.deliver(e)
}

func (d *dispatcher) flush() {
	for i, e := range d.queue {
		if ws := d.wraps[i]; len(ws) > 0 {
			for j := len(ws) - 1; j >= 0; j-- {
				d.deliver(event{kind: enterEvent, node: ws[j]})
			}
		}
		d.deliver(e)
	}
	d.queue = d.queue[:0]
	clear(d.wraps)
}

func (d *dispatcher) deliver(e event) {
	for _, l := range d.listeners {
		switch e.kind {
		case enterEvent:
			ast.EnterRule(l, e.node)
		case exitEvent:
			ast.ExitRule(l, e.node)
		case terminalEvent:
			l.VisitTerminal(e.term)
		}
	}
}
