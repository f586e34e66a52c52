// File: doc.go
// Title: WHILE Token Package Documentation
// Description: Documents the terminal vocabulary and token source contract
//              shared by the WHILE lexer and parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

/*
Package token defines the fixed terminal vocabulary of the WHILE language and
the token source contract consumed by the parser.

The vocabulary consists of 18 literal kinds and the explicit SPACE separator:

	L  =  if  then  else  ;  while  do  skip  true  false  ==  &  ~  n  (  +  )  SPACE

SPACE is never skipped implicitly; the grammar names it wherever a blank is
required. An ordered token sequence is terminated by an EOF token.

The vocabulary tables are package-level values initialised once and never
mutated, so they may be shared by any number of concurrent parses. A Stream,
in contrast, belongs to a single parse.
*/
package token
