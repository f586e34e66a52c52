// File: token.go
// Title: WHILE Token Vocabulary
// Description: Defines the fixed terminal vocabulary of the WHILE language,
//              the immutable literal/symbolic name tables and the Token
//              value handed from a token source to the parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial vocabulary and token definitions

package token

import (
	"fmt"
	"sort"
	"strings"
)

// Kind classifies a token
type Kind int

const (
	// EOF marks the end of the token sequence
	EOF Kind = -1

	// Invalid is an illegal character or the absence of a token
	Invalid Kind = 0
)

// Terminal kinds, numbered 1..19 in vocabulary order
const (
	L      Kind = iota + 1 // 'L'
	Assign                 // '='
	If                     // 'if'
	Then                   // 'then'
	Else                   // 'else'
	Semi                   // ';'
	While                  // 'while'
	Do                     // 'do'
	Skip                   // 'skip'
	True                   // 'true'
	False                  // 'false'
	Eq                     // '=='
	And                    // '&'
	Not                    // '~'
	Num                    // 'n'
	LParen                 // '('
	Plus                   // '+'
	RParen                 // ')'
	Space                  // ' '
)

// MaxKind is the highest valid token kind
const MaxKind = Space

var literalNames = [...]string{
	Invalid: "",
	L:       "L",
	Assign:  "=",
	If:      "if",
	Then:    "then",
	Else:    "else",
	Semi:    ";",
	While:   "while",
	Do:      "do",
	Skip:    "skip",
	True:    "true",
	False:   "false",
	Eq:      "==",
	And:     "&",
	Not:     "~",
	Num:     "n",
	LParen:  "(",
	Plus:    "+",
	RParen:  ")",
	Space:   " ",
}

var symbolicNames = [...]string{
	Space: "SPACE",
}

// literalKinds maps literal text back to its kind. Built once, read-only.
var literalKinds = func() map[string]Kind {
	m := make(map[string]Kind, int(MaxKind))
	for k := L; k <= MaxKind; k++ {
		m[literalNames[k]] = k
	}
	return m
}()

// Valid reports whether k is one of the 19 terminal kinds or EOF
func (k Kind) Valid() bool {
	return k == EOF || (k >= L && k <= MaxKind)
}

// Literal returns the exact source text of the kind, or "" for EOF and Invalid
func (k Kind) Literal() string {
	if k < L || k > MaxKind {
		return ""
	}
	return literalNames[k]
}

// LiteralName returns the quoted literal name ('if', ';', ' ')
func LiteralName(k Kind) string {
	if k < L || k > MaxKind {
		return ""
	}
	return "'" + literalNames[k] + "'"
}

// SymbolicName returns the symbolic name (SPACE, EOF) or ""
func SymbolicName(k Kind) string {
	switch {
	case k == EOF:
		return "EOF"
	case k >= L && k <= MaxKind && int(k) < len(symbolicNames):
		return symbolicNames[k]
	default:
		return ""
	}
}

// DisplayName prefers the symbolic name and falls back to the literal name
func DisplayName(k Kind) string {
	if name := SymbolicName(k); name != "" {
		return name
	}
	if name := LiteralName(k); name != "" {
		return name
	}
	return "<INVALID>"
}

// String returns the display name of the kind
func (k Kind) String() string {
	return DisplayName(k)
}

// Lookup returns the kind whose literal text equals s
func Lookup(s string) (Kind, bool) {
	k, ok := literalKinds[s]
	return k, ok
}

// Kinds returns all 19 terminal kinds in vocabulary order
func Kinds() []Kind {
	kinds := make([]Kind, 0, int(MaxKind))
	for k := L; k <= MaxKind; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Token is an immutable classified unit of input
type Token struct {
	Kind   Kind   // Token kind
	Text   string // Token text (empty for EOF)
	Index  int    // Position in the token sequence (0-based)
	Offset int    // Byte offset in source (0-based)
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based)
}

// New creates a token of kind k carrying its literal text
func New(k Kind, index, offset, line, column int) Token {
	return Token{
		Kind:   k,
		Text:   k.Literal(),
		Index:  index,
		Offset: offset,
		Line:   line,
		Column: column,
	}
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return fmt.Sprintf("EOF@%d:%d", t.Line, t.Column)
	case Space:
		return fmt.Sprintf("SPACE@%d:%d", t.Line, t.Column)
	default:
		return fmt.Sprintf("%q@%d:%d", t.Text, t.Line, t.Column)
	}
}

// Position formats the token position as line:column
func (t Token) Position() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}

// End returns the byte offset just past the token
func (t Token) End() int {
	return t.Offset + len(t.Text)
}

// KindSet is a sorted, duplicate-free set of kinds used for expected-token
// reporting
type KindSet []Kind

// NewKindSet builds a normalized set from kinds
func NewKindSet(kinds ...Kind) KindSet {
	seen := make(map[Kind]bool, len(kinds))
	set := make(KindSet, 0, len(kinds))
	for _, k := range kinds {
		if !seen[k] {
			seen[k] = true
			set = append(set, k)
		}
	}
	sort.Slice(set, func(i, j int) bool {
		// EOF sorts last
		if set[i] == EOF || set[j] == EOF {
			return set[j] == EOF && set[i] != EOF
		}
		return set[i] < set[j]
	})
	return set
}

// Contains reports whether k is in the set
func (s KindSet) Contains(k Kind) bool {
	for _, member := range s {
		if member == k {
			return true
		}
	}
	return false
}

// String formats the set as {'L', 'n', '('}
func (s KindSet) String() string {
	names := make([]string, len(s))
	for i, k := range s {
		names[i] = DisplayName(k)
	}
	return "{" + strings.Join(names, ", ") + "}"
}
