// ============================================================================
// whilec - WHILE Language Toolchain
// ============================================================================
//
// Package:     render
// Description: Renders WHILE parse trees, token streams and verdicts
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/msto63/whilec/foundation/while/ast"
	"github.com/msto63/whilec/foundation/while/token"
)

// Format selects a tree output format
type Format string

const (
	FormatText Format = "text" // indented, styled tree
	FormatTree Format = "tree" // parenthesized tree string
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatTree, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, tree, json or yaml)", s)
	}
}

// Renderer writes styled output to a writer. Colors follow the writer's
// terminal capabilities unless disabled.
type Renderer struct {
	w      io.Writer
	styles Styles
}

// New creates a renderer for w
func New(w io.Writer, color bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if !color {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{w: w, styles: newStyles(lr)}
}

// Tree writes n in the given format
func (r *Renderer) Tree(n ast.Node, format Format) error {
	var out string
	switch format {
	case FormatText:
		out = r.TextTree(n)
	case FormatTree:
		out = TreeString(n)
	case FormatJSON:
		data, err := JSON(n)
		if err != nil {
			return err
		}
		out = string(data)
	case FormatYAML:
		data, err := YAML(n)
		if err != nil {
			return err
		}
		out = strings.TrimSuffix(string(data), "\n")
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	_, err := fmt.Fprintln(r.w, out)
	return err
}

// TextTree renders n as an indented tree with one line per node
func (r *Renderer) TextTree(n ast.Node) string {
	return r.textNode(n).
		EnumeratorStyle(r.styles.Branch).
		String()
}

func (r *Renderer) textNode(n ast.Node) *tree.Tree {
	label := r.styles.Rule.Render(n.Rule().String()) + ":" + r.styles.Alt.Render(n.Alternative().String())
	t := tree.Root(label)
	for _, c := range n.Elements() {
		switch c := c.(type) {
		case *ast.Terminal:
			t.Child(r.leafLabel(c.Token))
		case ast.Node:
			t.Child(r.textNode(c))
		}
	}
	return t
}

func (r *Renderer) leafLabel(tok token.Token) string {
	switch tok.Kind {
	case token.Space, token.EOF:
		return r.styles.Layout.Render(token.DisplayName(tok.Kind))
	default:
		return r.styles.Terminal.Render(token.DisplayName(tok.Kind))
	}
}

// Tokens writes the token stream as a table
func (r *Renderer) Tokens(toks []token.Token) error {
	rows := make([][]string, 0, len(toks))
	for _, tok := range toks {
		rows = append(rows, []string{
			fmt.Sprint(tok.Index),
			token.DisplayName(tok.Kind),
			fmt.Sprintf("%q", tok.Text),
			fmt.Sprintf("%d:%d", tok.Line, tok.Column),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.Guide).
		Headers("#", "KIND", "TEXT", "POS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.Header
			}
			return r.styles.Cell
		})

	_, err := fmt.Fprintln(r.w, t.Render())
	return err
}

// Events writes recorded listener events, one per line
func (r *Renderer) Events(events []string) error {
	for _, e := range events {
		if _, err := fmt.Fprintln(r.w, e); err != nil {
			return err
		}
	}
	return nil
}

// Verdict writes an accepted/rejected line with an optional reason
func (r *Renderer) Verdict(accepted bool, reason string) error {
	var line string
	if accepted {
		line = r.styles.Accepted.Render("accepted")
	} else {
		line = r.styles.Rejected.Render("rejected")
		if reason != "" {
			line += " " + r.styles.Detail.Render(reason)
		}
	}
	_, err := fmt.Fprintln(r.w, line)
	return err
}

// TreeString renders n in parenthesized form: rule nodes as
// "(rule child ...)", leaves by their text and EOF as <EOF>.
func TreeString(n ast.Node) string {
	var b strings.Builder
	writeTreeString(&b, n)
	return b.String()
}

func writeTreeString(b *strings.Builder, n ast.Node) {
	b.WriteString("(")
	b.WriteString(n.Rule().String())
	for _, c := range n.Elements() {
		b.WriteString(" ")
		switch c := c.(type) {
		case *ast.Terminal:
			b.WriteString(c.String())
		case ast.Node:
			writeTreeString(b, c)
		}
	}
	b.WriteString(")")
}

// Doc is the serializable form of a parse tree node
type Doc struct {
	Rule     string `json:"rule,omitempty" yaml:"rule,omitempty"`
	Alt      string `json:"alt,omitempty" yaml:"alt,omitempty"`
	Kind     string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Text     string `json:"text,omitempty" yaml:"text,omitempty"`
	Line     int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int    `json:"column,omitempty" yaml:"column,omitempty"`
	Children []*Doc `json:"children,omitempty" yaml:"children,omitempty"`
}

// ToDoc converts a tree into its serializable form
func ToDoc(n ast.Node) *Doc {
	d := &Doc{Rule: n.Rule().String(), Alt: n.Alternative().String()}
	for _, c := range n.Elements() {
		switch c := c.(type) {
		case *ast.Terminal:
			d.Children = append(d.Children, &Doc{
				Kind:   token.DisplayName(c.Token.Kind),
				Text:   c.Token.Text,
				Line:   c.Token.Line,
				Column: c.Token.Column,
			})
		case ast.Node:
			d.Children = append(d.Children, ToDoc(c))
		}
	}
	return d
}

// JSON encodes n as indented JSON
func JSON(n ast.Node) ([]byte, error) {
	return json.MarshalIndent(ToDoc(n), "", "  ")
}

// YAML encodes n as YAML
func YAML(n ast.Node) ([]byte, error) {
	return yaml.Marshal(ToDoc(n))
}
