// Package lexer scans WHILE source text into the classified tokens consumed
// by the parser.
//
// The language has no identifiers or numerals beyond the single letters L
// and n, so scanning is a longest-match over the vocabulary literals. Blanks
// are significant: the grammar requires exactly one SPACE token at fixed
// positions, and tabs or newlines are illegal characters.
package lexer
