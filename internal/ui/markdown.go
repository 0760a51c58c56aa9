package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// MarkdownRenderMargin is the left margin used for terminal markdown rendering.
const MarkdownRenderMargin = 2

// RenderMarkdown renders markdown content for terminal display using the
// shared relq style configuration.
func RenderMarkdown(content string, width int) (string, error) {
	if width <= 0 {
		width = DefaultTermWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(relqMarkdownStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}

	// glamour adds trailing newlines; normalize to a single trailing newline.
	rendered = strings.TrimRight(rendered, "\n") + "\n"
	return rendered, nil
}

func relqMarkdownStyle() ansi.StyleConfig {
	style := styles.DarkStyleConfig

	style.Document.Margin = mdUintPtr(MarkdownRenderMargin)
	if color, ok := AccentColor(); ok {
		style.H1.Color = mdStringPtr(color)
		style.H2.Color = mdStringPtr(color)
		style.H3.Color = mdStringPtr(color)
		style.Link.Color = mdStringPtr(color)
	}
	if codeTheme != "" {
		style.CodeBlock.Theme = codeTheme
	}
	return style
}

func mdStringPtr(v string) *string { return &v }

func mdUintPtr(v uint) *uint { return &v }
