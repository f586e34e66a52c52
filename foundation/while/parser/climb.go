// File: climb.go
// Title: WHILE Precedence-Climbing Driver
// Description: Recognizes the stmt and boolexpr rules. Each call parses a
//              primary alternative and then wraps the result into sequence
//              or conjunction nodes while the operator binds at least as
//              tightly as the caller's minimum precedence.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial climbing driver

package parser

import (
	"github.com/msto63/whilec/foundation/while/ast"
	"github.com/msto63/whilec/foundation/while/token"
)

// stmt parses a statement whose top-level sequence operators bind at
// minPrec or tighter
func (p *Parser) stmt(minPrec int) (*ast.Stmt, error) {
	if err := p.descend(); err != nil {
		return nil, err
	}
	defer p.ascend()

	mark := p.events.hold()

	node, err := p.primaryStmt()
	if err != nil {
		return nil, err
	}

	for seqContinuation.applies(p.stream, minPrec) {
		seq := &ast.Stmt{Alt: ast.AltSeq, Children: []ast.Element{node}}
		p.events.wrap(mark, seq)

		if err := p.operator(&seq.Children, ast.RuleStmt, seqContinuation); err != nil {
			return nil, err
		}
		right, err := p.stmt(seqContinuation.prec + 1)
		if err != nil {
			return nil, err
		}
		seq.Children = append(seq.Children, right)

		p.events.exit(seq)
		node = seq
	}

	p.events.release()
	return node, nil
}

func (p *Parser) primaryStmt() (*ast.Stmt, error) {
	alt, err := p.predict(stmtTable)
	if err != nil {
		return nil, err
	}

	node := &ast.Stmt{Alt: alt}
	p.events.enter(node)

	switch alt {
	case ast.AltAssign:
		err = p.assign(node)
	case ast.AltIf:
		err = p.ifStmt(node)
	case ast.AltWhile:
		err = p.whileStmt(node)
	case ast.AltSkip:
		err = p.expect(&node.Children, ast.RuleStmt, token.Skip)
	}
	if err != nil {
		return nil, err
	}

	p.events.exit(node)
	return node, nil
}

// assign parses 'L' SPACE '=' SPACE numexpr
func (p *Parser) assign(node *ast.Stmt) error {
	if err := p.expect(&node.Children, ast.RuleStmt, token.L, token.Space, token.Assign, token.Space); err != nil {
		return err
	}
	value, err := p.numexpr()
	if err != nil {
		return err
	}
	node.Children = append(node.Children, value)
	return nil
}

// ifStmt parses 'if' SPACE boolexpr SPACE 'then' SPACE stmt SPACE 'else' SPACE stmt
func (p *Parser) ifStmt(node *ast.Stmt) error {
	if err := p.expect(&node.Children, ast.RuleStmt, token.If, token.Space); err != nil {
		return err
	}
	cond, err := p.boolexpr(0)
	if err != nil {
		return err
	}
	node.Children = append(node.Children, cond)

	if err := p.expect(&node.Children, ast.RuleStmt, token.Space, token.Then, token.Space); err != nil {
		return err
	}
	then, err := p.stmt(0)
	if err != nil {
		return err
	}
	node.Children = append(node.Children, then)

	if err := p.expect(&node.Children, ast.RuleStmt, token.Space, token.Else, token.Space); err != nil {
		return err
	}
	els, err := p.stmt(elsePrec)
	if err != nil {
		return err
	}
	node.Children = append(node.Children, els)
	return nil
}

// whileStmt parses 'while' SPACE boolexpr SPACE 'do' SPACE stmt
func (p *Parser) whileStmt(node *ast.Stmt) error {
	if err := p.expect(&node.Children, ast.RuleStmt, token.While, token.Space); err != nil {
		return err
	}
	cond, err := p.boolexpr(0)
	if err != nil {
		return err
	}
	node.Children = append(node.Children, cond)

	if err := p.expect(&node.Children, ast.RuleStmt, token.Space, token.Do, token.Space); err != nil {
		return err
	}
	body, err := p.stmt(bodyPrec)
	if err != nil {
		return err
	}
	node.Children = append(node.Children, body)
	return nil
}

// boolexpr parses a boolean expression whose top-level conjunctions bind at
// minPrec or tighter
func (p *Parser) boolexpr(minPrec int) (*ast.Boolexpr, error) {
	if err := p.descend(); err != nil {
		return nil, err
	}
	defer p.ascend()

	mark := p.events.hold()

	node, err := p.primaryBoolexpr()
	if err != nil {
		return nil, err
	}

	for andContinuation.applies(p.stream, minPrec) {
		and := &ast.Boolexpr{Alt: ast.AltAnd, Children: []ast.Element{node}}
		p.events.wrap(mark, and)

		if err := p.operator(&and.Children, ast.RuleBoolexpr, andContinuation); err != nil {
			return nil, err
		}
		right, err := p.boolexpr(andContinuation.prec + 1)
		if err != nil {
			return nil, err
		}
		and.Children = append(and.Children, right)

		p.events.exit(and)
		node = and
	}

	p.events.release()
	return node, nil
}

func (p *Parser) primaryBoolexpr() (*ast.Boolexpr, error) {
	alt, err := p.predict(boolexprTable)
	if err != nil {
		return nil, err
	}

	node := &ast.Boolexpr{Alt: alt}
	p.events.enter(node)

	switch alt {
	case ast.AltTrue:
		err = p.expect(&node.Children, ast.RuleBoolexpr, token.True)
	case ast.AltFalse:
		err = p.expect(&node.Children, ast.RuleBoolexpr, token.False)
	case ast.AltEq:
		err = p.comparison(node)
	case ast.AltNot:
		err = p.negation(node)
	}
	if err != nil {
		return nil, err
	}

	p.events.exit(node)
	return node, nil
}

// comparison parses numexpr SPACE '==' SPACE numexpr
func (p *Parser) comparison(node *ast.Boolexpr) error {
	lhs, err := p.numexpr()
	if err != nil {
		return err
	}
	node.Children = append(node.Children, lhs)

	if err := p.expect(&node.Children, ast.RuleBoolexpr, token.Space, token.Eq, token.Space); err != nil {
		return err
	}
	rhs, err := p.numexpr()
	if err != nil {
		return err
	}
	node.Children = append(node.Children, rhs)
	return nil
}

// negation parses '~' boolexpr
func (p *Parser) negation(node *ast.Boolexpr) error {
	if err := p.expect(&node.Children, ast.RuleBoolexpr, token.Not); err != nil {
		return err
	}
	operand, err := p.boolexpr(operandPrec)
	if err != nil {
		return err
	}
	node.Children = append(node.Children, operand)
	return nil
}

// operator matches SPACE op SPACE of a continuation
func (p *Parser) operator(children *[]ast.Element, rule ast.Rule, c continuation) error {
	return p.expect(children, rule, token.Space, c.op, token.Space)
}
