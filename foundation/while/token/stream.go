// File: stream.go
// Title: WHILE Token Source and Lookahead Stream
// Description: Defines the Source interface implemented by token producers
//              and a buffered Stream providing k-token lookahead plus
//              mark/reset over an ordered, finite token sequence.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial stream implementation
// - 2026-10-19 v0.1.1: Out-of-vocabulary kinds are read as Invalid

package token

// Source produces classified tokens strictly left to right. Next returns
// false once the source is exhausted; a well-formed source delivers an EOF
// token before that.
type Source interface {
	Next() (Token, bool)
}

// SliceSource serves tokens from a slice
type SliceSource struct {
	tokens []Token
	pos    int
}

// NewSliceSource creates a source over tokens. Token indices are
// renumbered to match their slice position.
func NewSliceSource(tokens []Token) *SliceSource {
	copied := make([]Token, len(tokens))
	for i, tok := range tokens {
		tok.Index = i
		copied[i] = tok
	}
	return &SliceSource{tokens: copied}
}

// Next implements Source
func (s *SliceSource) Next() (Token, bool) {
	if s.pos >= len(s.tokens) {
		return Token{}, false
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, true
}

// Stream buffers tokens from a Source and offers lookahead. Tokens are
// pulled lazily and never discarded, so Reset can move back to any mark.
type Stream struct {
	src       Source
	buf       []Token
	pos       int
	exhausted bool
	sawEOF    bool
}

// NewStream wraps src
func NewStream(src Source) *Stream {
	return &Stream{src: src}
}

// fill makes sure at least n tokens past pos are buffered if available
func (s *Stream) fill(n int) {
	for len(s.buf) < s.pos+n && !s.exhausted && !s.sawEOF {
		tok, ok := s.src.Next()
		if !ok {
			s.exhausted = true
			return
		}
		if !tok.Kind.Valid() {
			tok.Kind = Invalid
		}
		if tok.Kind == EOF {
			s.sawEOF = true
		}
		s.buf = append(s.buf, tok)
	}
}

// LT returns the i-th upcoming token (1-based). Past an EOF token the EOF
// token is repeated. Past an exhausted source an Invalid token positioned
// at the end of the last token is returned.
func (s *Stream) LT(i int) Token {
	if i < 1 {
		i = 1
	}
	s.fill(i)
	idx := s.pos + i - 1
	if idx < len(s.buf) {
		return s.buf[idx]
	}
	if s.sawEOF {
		return s.buf[len(s.buf)-1]
	}
	return s.endToken(idx)
}

// LA returns the kind of the i-th upcoming token
func (s *Stream) LA(i int) Kind {
	return s.LT(i).Kind
}

// Consume returns the current token and advances past it. After EOF has
// been consumed, further calls keep returning it.
func (s *Stream) Consume() Token {
	tok := s.LT(1)
	if s.pos < len(s.buf) {
		s.pos++
	}
	return tok
}

// Index returns the current position in the token sequence
func (s *Stream) Index() int {
	return s.pos
}

// Mark returns a position Reset can return to
func (s *Stream) Mark() int {
	return s.pos
}

// Reset moves back (or forward, within the buffer) to a marked position
func (s *Stream) Reset(mark int) {
	if mark < 0 {
		mark = 0
	}
	if mark > len(s.buf) {
		mark = len(s.buf)
	}
	s.pos = mark
}

// Exhausted reports whether the i-th upcoming token lies beyond the end of
// a source that stopped without an EOF token
func (s *Stream) Exhausted(i int) bool {
	s.fill(i)
	return s.pos+i-1 >= len(s.buf) && !s.sawEOF
}

// Consumed returns the tokens consumed so far
func (s *Stream) Consumed() []Token {
	out := make([]Token, s.pos)
	copy(out, s.buf[:s.pos])
	return out
}

// endToken builds the placeholder returned past an exhausted source
func (s *Stream) endToken(idx int) Token {
	end := Token{Kind: Invalid, Index: idx, Line: 1, Column: 1}
	if n := len(s.buf); n > 0 {
		last := s.buf[n-1]
		end.Offset = last.End()
		end.Line = last.Line
		end.Column = last.Column + len(last.Text)
	}
	return end
}
