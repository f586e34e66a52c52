// File: parser.go
// Title: WHILE Recursive Descent Parser
// Description: Implements the Parser type, the start and numexpr rule
//              recognizers and the token matching helpers shared by all
//              rules.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

package parser

import (
	"errors"

	mdwlog "github.com/msto63/whilec/foundation/core/log"
	"github.com/msto63/whilec/foundation/while/ast"
	"github.com/msto63/whilec/foundation/while/token"
)

// DefaultMaxDepth bounds rule nesting when Options.MaxDepth is zero
const DefaultMaxDepth = 10000

// Parser recognizes WHILE programs. A Parser may be reused for several
// parses but must not be used from multiple goroutines at once.
type Parser struct {
	stream  *token.Stream
	events  dispatcher
	logger  *mdwlog.Logger
	options Options
	depth   int
}

// Options configures parser behavior
type Options struct {
	Logger    *mdwlog.Logger
	MaxDepth  int
	Listeners []ast.Listener
}

// New creates a new WHILE parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	p := &Parser{
		logger:  opts.Logger.WithField("component", "while-parser"),
		options: opts,
	}
	for _, l := range opts.Listeners {
		p.AddListener(l)
	}
	return p
}

// AddListener registers a listener. Listeners are notified in
// registration order.
func (p *Parser) AddListener(l ast.Listener) {
	if l != nil {
		p.events.listeners = append(p.events.listeners, l)
	}
}

// Listeners returns the number of registered listeners
func (p *Parser) Listeners() int {
	return len(p.events.listeners)
}

// Parse parses a complete program from src: start := stmt EOF
func (p *Parser) Parse(src token.Source) (*ast.Start, error) {
	p.stream = token.NewStream(src)
	p.events.reset()
	p.depth = 0

	p.logger.Debug("Starting WHILE parsing", mdwlog.Fields{
		"listeners": len(p.events.listeners),
		"max_depth": p.options.MaxDepth,
	})

	tree, err := p.start()
	if err != nil {
		p.abort(err)
		p.logger.Debug("WHILE parsing failed", mdwlog.Fields{
			"consumed": p.stream.Index(),
			"error":    err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("WHILE parsing completed successfully", mdwlog.Fields{
		"tokens": p.stream.Index(),
		"alt":    tree.Stmt().Alt.String(),
	})
	return tree, nil
}

// ParseTokens parses an already materialized token sequence
func (p *Parser) ParseTokens(tokens []token.Token) (*ast.Start, error) {
	return p.Parse(token.NewSliceSource(tokens))
}

// Consumed returns the tokens consumed by the last Parse call
func (p *Parser) Consumed() []token.Token {
	if p.stream == nil {
		return nil
	}
	return p.stream.Consumed()
}

// abort hands the failure to listeners as an error node
func (p *Parser) abort(err error) {
	var perr Error
	tok := p.stream.LT(1)
	if errors.As(err, &perr) {
		tok = perr.At()
	}
	p.events.fail(&ast.ErrorNode{Token: tok, Err: err})
}

// start parses stmt EOF
func (p *Parser) start() (*ast.Start, error) {
	if err := p.descend(); err != nil {
		return nil, err
	}
	defer p.ascend()

	node := &ast.Start{Alt: ast.AltProgram}
	p.events.enter(node)

	body, err := p.stmt(0)
	if err != nil {
		return nil, err
	}
	node.Children = append(node.Children, body)

	if err := p.expect(&node.Children, ast.RuleStart, token.EOF); err != nil {
		return nil, err
	}

	p.events.exit(node)
	return node, nil
}

// numexpr parses 'L' | 'n' | '(' numexpr '+' numexpr ')'
func (p *Parser) numexpr() (*ast.Numexpr, error) {
	if err := p.descend(); err != nil {
		return nil, err
	}
	defer p.ascend()

	alt, err := p.predict(numexprTable)
	if err != nil {
		return nil, err
	}

	node := &ast.Numexpr{Alt: alt}
	p.events.enter(node)

	switch alt {
	case ast.AltVar:
		err = p.expect(&node.Children, ast.RuleNumexpr, token.L)
	case ast.AltNum:
		err = p.expect(&node.Children, ast.RuleNumexpr, token.Num)
	case ast.AltSum:
		err = p.sum(node)
	}
	if err != nil {
		return nil, err
	}

	p.events.exit(node)
	return node, nil
}

func (p *Parser) sum(node *ast.Numexpr) error {
	if err := p.expect(&node.Children, ast.RuleNumexpr, token.LParen); err != nil {
		return err
	}
	lhs, err := p.numexpr()
	if err != nil {
		return err
	}
	node.Children = append(node.Children, lhs)

	if err := p.expect(&node.Children, ast.RuleNumexpr, token.Plus); err != nil {
		return err
	}
	rhs, err := p.numexpr()
	if err != nil {
		return err
	}
	node.Children = append(node.Children, rhs)

	return p.expect(&node.Children, ast.RuleNumexpr, token.RParen)
}

// predict chooses the alternative started by the lookahead token
func (p *Parser) predict(table *predictionTable) (ast.Alt, error) {
	tok := p.stream.LT(1)
	alts := table.byKind[tok.Kind]
	switch len(alts) {
	case 0:
		return ast.AltInvalid, p.mismatch(table.rule, table.expected)
	case 1:
		return alts[0], nil
	default:
		return ast.AltInvalid, &AmbiguousGrammarError{
			Rule:  table.rule,
			Kind:  tok.Kind,
			Alts:  append([]ast.Alt(nil), alts...),
			Token: tok,
		}
	}
}

// expect matches kinds in order and appends a terminal leaf per token
func (p *Parser) expect(children *[]ast.Element, rule ast.Rule, kinds ...token.Kind) error {
	for _, k := range kinds {
		if p.stream.LA(1) != k {
			return p.mismatch(rule, token.NewKindSet(k))
		}
		leaf := &ast.Terminal{Token: p.stream.Consume()}
		*children = append(*children, leaf)
		p.events.terminal(leaf)
	}
	return nil
}

// mismatch builds the error for a lookahead token outside expected
func (p *Parser) mismatch(rule ast.Rule, expected token.KindSet) error {
	tok := p.stream.LT(1)
	if p.stream.Exhausted(1) {
		return &UnexpectedEndOfInputError{Rule: rule, Expected: expected, Token: tok}
	}
	return &SyntaxError{Rule: rule, Expected: expected, Found: tok}
}

func (p *Parser) descend() error {
	p.depth++
	if p.depth > p.options.MaxDepth {
		return &NestingError{Limit: p.options.MaxDepth, Token: p.stream.LT(1)}
	}
	return nil
}

func (p *Parser) ascend() {
	p.depth--
}
