package ui

import (
	"strings"
	"testing"
)

func TestRenderMarkdownNormalizesTrailingNewline(t *testing.T) {
	t.Parallel()

	out, err := RenderMarkdown("# Heading", 80)
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("expected rendered markdown to end with newline, got %q", out)
	}
	if strings.HasSuffix(out, "\n\n") {
		t.Fatalf("expected single trailing newline, got %q", out)
	}
}

func TestRenderMarkdownDefaultsWidthWhenNonPositive(t *testing.T) {
	t.Parallel()

	out, err := RenderMarkdown("hello", 0)
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Fatalf("expected non-empty rendered output")
	}
}

func TestRelqMarkdownStyleUsesAccent(t *testing.T) {
	origAccent := Accent
	origColor := accentColor
	origTheme := codeTheme
	t.Cleanup(func() {
		Accent = origAccent
		accentColor = origColor
		codeTheme = origTheme
	})

	ConfigureTheme("#7aa2f7")
	ConfigureMarkdownCodeTheme("dracula")

	style := relqMarkdownStyle()
	if style.H1.Color == nil || *style.H1.Color != "#7aa2f7" {
		t.Fatalf("expected H1 to use the accent color")
	}
	if style.Link.Color == nil || *style.Link.Color != "#7aa2f7" {
		t.Fatalf("expected links to use the accent color")
	}
	if style.CodeBlock.Theme != "dracula" {
		t.Fatalf("expected code theme 'dracula', got %q", style.CodeBlock.Theme)
	}
}
