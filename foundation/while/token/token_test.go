// File: token_test.go
// Title: WHILE Token Vocabulary and Stream Unit Tests
// Description: Tests vocabulary tables, kind sets and the lookahead stream
//              including mark/reset and exhausted sources.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial token test suite

package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKind_Vocabulary(t *testing.T) {
	if got := len(Kinds()); got != 19 {
		t.Fatalf("Expected 19 terminal kinds, got %d", got)
	}

	tests := []struct {
		kind    Kind
		literal string
		display string
	}{
		{L, "L", "'L'"},
		{Assign, "=", "'='"},
		{If, "if", "'if'"},
		{Semi, ";", "';'"},
		{Eq, "==", "'=='"},
		{Not, "~", "'~'"},
		{Num, "n", "'n'"},
		{RParen, ")", "')'"},
		{Space, " ", "SPACE"},
		{EOF, "", "EOF"},
		{Invalid, "", "<INVALID>"},
	}

	for _, tt := range tests {
		if got := tt.kind.Literal(); got != tt.literal {
			t.Errorf("Kind %d: expected literal %q, got %q", tt.kind, tt.literal, got)
		}
		if got := tt.kind.String(); got != tt.display {
			t.Errorf("Kind %d: expected display %q, got %q", tt.kind, tt.display, got)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := Lookup(k.Literal())
		if !ok || got != k {
			t.Errorf("Lookup(%q): expected %v, got %v (ok=%v)", k.Literal(), k, got, ok)
		}
	}
	if _, ok := Lookup("x"); ok {
		t.Error("Expected lookup of unknown text to fail")
	}
}

func TestKindSet(t *testing.T) {
	set := NewKindSet(LParen, Num, L, Num, EOF)

	if diff := cmp.Diff(KindSet{L, Num, LParen, EOF}, set); diff != "" {
		t.Errorf("Unexpected set order (-want +got):\n%s", diff)
	}
	if got := set.String(); got != "{'L', 'n', '(', EOF}" {
		t.Errorf("Unexpected set string: %s", got)
	}
	if !set.Contains(EOF) || set.Contains(Skip) {
		t.Error("Contains returned wrong membership")
	}
}

func tokensOf(kinds ...Kind) []Token {
	var toks []Token
	offset := 0
	for i, k := range kinds {
		tok := New(k, i, offset, 1, offset+1)
		toks = append(toks, tok)
		offset += len(tok.Text)
	}
	return toks
}

func TestStream_Lookahead(t *testing.T) {
	s := NewStream(NewSliceSource(tokensOf(Skip, Space, Semi, Space, Skip, EOF)))

	if s.LA(1) != Skip || s.LA(2) != Space || s.LA(3) != Semi {
		t.Fatalf("Unexpected lookahead: %v %v %v", s.LA(1), s.LA(2), s.LA(3))
	}
	if s.LA(10) != EOF {
		t.Errorf("Expected EOF past end, got %v", s.LA(10))
	}

	mark := s.Mark()
	s.Consume()
	s.Consume()
	if s.LA(1) != Semi {
		t.Errorf("Expected ';' after two consumes, got %v", s.LA(1))
	}
	s.Reset(mark)
	if s.LA(1) != Skip || s.Index() != 0 {
		t.Errorf("Expected reset to start, got %v at %d", s.LA(1), s.Index())
	}

	for i := 0; i < 8; i++ {
		s.Consume()
	}
	if s.LA(1) != EOF {
		t.Errorf("Expected EOF to repeat, got %v", s.LA(1))
	}
	if got := len(s.Consumed()); got != 6 {
		t.Errorf("Expected 6 consumed tokens, got %d", got)
	}
	if s.Exhausted(1) {
		t.Error("Stream ending in EOF must not report exhaustion")
	}
}

func TestStream_ExhaustedSource(t *testing.T) {
	s := NewStream(NewSliceSource(tokensOf(L, Space)))

	if s.Exhausted(2) {
		t.Error("Second token is available")
	}
	if !s.Exhausted(3) {
		t.Error("Expected third token to be exhausted")
	}

	end := s.LT(3)
	if end.Kind != Invalid {
		t.Errorf("Expected Invalid placeholder, got %v", end.Kind)
	}
	if end.Offset != 2 || end.Column != 3 {
		t.Errorf("Expected placeholder at offset 2 column 3, got %d column %d", end.Offset, end.Column)
	}
}

func TestNewSliceSource_RenumbersIndices(t *testing.T) {
	toks := []Token{New(Skip, 7, 0, 1, 1), New(EOF, 9, 4, 1, 5)}
	src := NewSliceSource(toks)

	for want := 0; ; want++ {
		tok, ok := src.Next()
		if !ok {
			break
		}
		if tok.Index != want {
			t.Errorf("Expected index %d, got %d", want, tok.Index)
		}
	}
	if toks[0].Index != 7 {
		t.Error("Source must not modify the caller's slice")
	}
}

func TestStream_OutOfVocabularyKind(t *testing.T) {
	toks := []Token{New(Kind(42), 0, 0, 1, 1), New(EOF, 1, 1, 1, 2)}
	s := NewStream(NewSliceSource(toks))

	if got := s.LA(1); got != Invalid {
		t.Errorf("Expected unknown kind to read as Invalid, got %v", got)
	}
	if got := s.LT(1).Column; got != 1 {
		t.Errorf("Expected position to be kept, got column %d", got)
	}
	s.Consume()
	if s.LA(1) != EOF {
		t.Errorf("Expected EOF, got %v", s.LA(1))
	}
}
