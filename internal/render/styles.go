// ============================================================================
// whilec - WHILE Language Toolchain
// ============================================================================
//
// Package:     render
// Description: Styles for terminal tree and token output
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorRule    = lipgloss.Color("#8B5CF6") // Violet
	ColorAlt     = lipgloss.Color("#06B6D4") // Cyan
	ColorKeyword = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorTextDim = lipgloss.Color("#64748B") // Slate 500
)

// Styles bundles the styles bound to one renderer
type Styles struct {
	Rule     lipgloss.Style
	Alt      lipgloss.Style
	Terminal lipgloss.Style
	Layout   lipgloss.Style // SPACE and EOF leaves
	Guide    lipgloss.Style
	Branch   lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Accepted lipgloss.Style
	Rejected lipgloss.Style
	Detail   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Rule:     r.NewStyle().Foreground(ColorRule).Bold(true),
		Alt:      r.NewStyle().Foreground(ColorAlt),
		Terminal: r.NewStyle().Foreground(ColorKeyword),
		Layout:   r.NewStyle().Foreground(ColorMuted).Italic(true),
		Guide:    r.NewStyle().Foreground(ColorTextDim),
		Branch:   r.NewStyle().Foreground(ColorTextDim).PaddingRight(1),
		Header:   r.NewStyle().Bold(true).Padding(0, 1),
		Cell:     r.NewStyle().Padding(0, 1),
		Accepted: r.NewStyle().Foreground(ColorSuccess).Bold(true),
		Rejected: r.NewStyle().Foreground(ColorError).Bold(true),
		Detail:   r.NewStyle().Foreground(ColorMuted),
	}
}
