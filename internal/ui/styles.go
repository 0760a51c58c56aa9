// Package ui handles terminal output styling and rendering.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
// - Default (white/black): Primary text
// - Accent (soft teal, configurable): Highlights, entity names, columns
// - Muted (gray): Secondary info, counts
// - No colored success/error/warning - use unicode symbols only

const defaultAccent = "#2DD4BF"

var (
	accentColor = defaultAccent

	// Accent style for entity names, scope names, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info, hints, counts
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)

	codeTheme = ""
)

// ConfigureTheme overrides the accent color. Accepts ANSI color codes
// ("0" to "255") or hex colors ("#RRGGBB"); an empty value keeps the
// default.
func ConfigureTheme(accent string) {
	if accent == "" {
		return
	}
	accentColor = accent
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(accent))
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true)
}

// AccentColor returns the active accent color and whether one is set.
func AccentColor() (string, bool) {
	return accentColor, accentColor != ""
}

// ConfigureMarkdownCodeTheme sets the Chroma theme used for code blocks
// in rendered markdown.
func ConfigureMarkdownCodeTheme(theme string) {
	codeTheme = theme
}
