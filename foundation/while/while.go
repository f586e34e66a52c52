// File: while.go
// Title: WHILE Engine
// Description: High-level entry point combining lexer and parser. Checks
//              input limits and cancellation, logs timings and classifies
//              failures as structured errors with WHILE_* codes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine implementation
// - 2026-10-19 v0.1.1: Expose effective limits

package while

import (
	"context"
	"errors"
	"time"

	mdwerror "github.com/msto63/whilec/foundation/core/error"
	mdwlog "github.com/msto63/whilec/foundation/core/log"
	"github.com/msto63/whilec/foundation/while/ast"
	"github.com/msto63/whilec/foundation/while/lexer"
	"github.com/msto63/whilec/foundation/while/parser"
	"github.com/msto63/whilec/foundation/while/token"
)

// DefaultMaxInputLength bounds the source size when Options.MaxInputLength
// is zero
const DefaultMaxInputLength = 64 * 1024

// Engine parses WHILE programs. It is safe for concurrent use; each call
// builds its own parser.
type Engine struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// MaxInputLength limits the source size in bytes (default: 64 KiB)
	MaxInputLength int

	// MaxDepth limits rule nesting (default: parser.DefaultMaxDepth)
	MaxDepth int
}

// Result is a successful parse
type Result struct {
	Tree          *ast.Start
	Tokens        []token.Token
	Duration      time.Duration
	CorrelationID string
}

// New creates a new engine with the given options
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = parser.DefaultMaxDepth
	}
	return &Engine{
		logger:  opts.Logger.WithField("component", "while-engine"),
		options: opts,
	}
}

// Parse scans and parses input. Listeners are notified during the parse.
// Failures are *mdwerror.Error values wrapping the lexer or parser error.
func (e *Engine) Parse(ctx context.Context, input string, listeners ...ast.Listener) (*Result, error) {
	corrID := CorrelationID(ctx)
	logger := e.logger
	if corrID != "" {
		logger = logger.WithCorrelationID(corrID)
	}

	if err := ctx.Err(); err != nil {
		return nil, mdwerror.Wrap(err, "parse canceled").
			WithCode(mdwerror.CodeCanceled).
			WithOperation("while.Parse")
	}
	if len(input) > e.options.MaxInputLength {
		return nil, mdwerror.Newf("input exceeds maximum length: %d > %d", len(input), e.options.MaxInputLength).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("while.Parse").
			WithDetail("length", len(input))
	}

	timer := logger.StartTimer("parse").WithField("length", len(input))

	lx := lexer.New(input)
	p := parser.New(parser.Options{
		Logger:    logger,
		MaxDepth:  e.options.MaxDepth,
		Listeners: listeners,
	})

	tree, err := p.Parse(lx)
	if err != nil {
		wrapped := classify(err, lx.Err())
		timer.StopWithError(wrapped)
		return nil, wrapped
	}

	return &Result{
		Tree:          tree,
		Tokens:        p.Consumed(),
		Duration:      timer.Stop(),
		CorrelationID: corrID,
	}, nil
}

// Limits returns the effective input length and nesting depth bounds
func (e *Engine) Limits() (maxInputLength, maxDepth int) {
	return e.options.MaxInputLength, e.options.MaxDepth
}

// Validate reports whether input is a WHILE program
func (e *Engine) Validate(ctx context.Context, input string) error {
	_, err := e.Parse(ctx, input)
	return err
}

// Tokenize scans input without parsing it
func (e *Engine) Tokenize(input string) ([]token.Token, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		var illegal *lexer.IllegalCharError
		wrapped := mdwerror.Wrap(err, "tokenize failed").
			WithCode(mdwerror.CodeLexical).
			WithOperation("while.Tokenize")
		if errors.As(err, &illegal) {
			wrapped.WithDetail("line", illegal.Line).WithDetail("column", illegal.Column)
		}
		return tokens, wrapped
	}
	return tokens, nil
}

// classify wraps a parse failure with its error code and position. A parse
// that stopped at an illegal character is reported as a lexical error.
func classify(err, lexErr error) *mdwerror.Error {
	var perr parser.Error
	if !errors.As(err, &perr) {
		return mdwerror.Wrap(err, "parse failed").
			WithCode(mdwerror.CodeInternal).
			WithOperation("while.Parse")
	}

	at := perr.At()
	code := mdwerror.CodeSyntax
	cause := err

	var (
		ambiguous *parser.AmbiguousGrammarError
		eoi       *parser.UnexpectedEndOfInputError
		syntax    *parser.SyntaxError
	)
	switch {
	case at.Kind == token.Invalid && lexErr != nil:
		code, cause = mdwerror.CodeLexical, lexErr
	case errors.Is(err, parser.ErrNestingTooDeep):
		code = mdwerror.CodeNestingTooDeep
	case errors.As(err, &ambiguous):
		code = mdwerror.CodeAmbiguous
	case errors.As(err, &eoi):
		code = mdwerror.CodeUnexpectedEOF
	}

	wrapped := mdwerror.Wrap(cause, "parse failed").
		WithCode(code).
		WithOperation("while.Parse").
		WithDetail("line", at.Line).
		WithDetail("column", at.Column).
		WithDetail("found", token.DisplayName(at.Kind))
	if errors.As(err, &syntax) {
		wrapped.WithDetail("expected", syntax.Expected.String()).
			WithDetail("rule", syntax.Rule.String())
	}
	return wrapped
}

type correlationKey struct{}

// WithCorrelationID returns a context carrying id for log correlation
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationID returns the correlation ID carried by ctx, if any
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}
