package ui

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTableAlignsColumns(t *testing.T) {
	tbl := NewTable(2)
	tbl.AddRow("id", "1")
	tbl.AddRow("status", "open")

	out := tbl.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "id      1" {
		t.Errorf("line = %q, want short cell padded to column width", lines[0])
	}
	if lines[1] != "status  open" {
		t.Errorf("line = %q", lines[1])
	}
}

func TestTableHeaderUnderline(t *testing.T) {
	tbl := NewTable(2)
	tbl.SetHeader("id", "status")
	tbl.AddRow("1", "open")

	out := tbl.String()
	if !strings.Contains(out, "─") {
		t.Error("expected a header underline")
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header, underline, and one row, got %d lines", len(lines))
	}
	// The underline is drawn with multi-byte box runes; each segment must
	// match its column width in runes, not bytes.
	segments := strings.Split(lines[1], "  ")
	if len(segments) != 2 {
		t.Fatalf("underline = %q, want two segments", lines[1])
	}
	if got := utf8.RuneCountInString(segments[0]); got != len("id") {
		t.Errorf("first underline segment is %d runes, want %d", got, len("id"))
	}
	if got := utf8.RuneCountInString(segments[1]); got != len("status") {
		t.Errorf("second underline segment is %d runes, want %d", got, len("status"))
	}
}

func TestTableMultiByteCellAlignment(t *testing.T) {
	tbl := NewTable(2)
	tbl.SetHeader("assignee", "status")
	tbl.AddRow("·", "open")
	tbl.AddRow("kim", "triaged")

	lines := strings.Split(strings.TrimRight(tbl.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	// The placeholder cell is one display column wide; the status column
	// must start at the same rune offset in every row.
	if lines[2] != "·         open" {
		t.Errorf("row = %q, want placeholder padded by rune width", lines[2])
	}
	if lines[3] != "kim       triaged" {
		t.Errorf("row = %q", lines[3])
	}
}

func TestTableEmpty(t *testing.T) {
	if out := NewTable(3).String(); out != "" {
		t.Errorf("empty table rendered %q", out)
	}
}

func TestTableExtraCellsDropped(t *testing.T) {
	tbl := NewTable(1)
	tbl.AddRow("only", "extra")
	if strings.Contains(tbl.String(), "extra") {
		t.Error("cells beyond the column count should be dropped")
	}
}

func TestFormatValue(t *testing.T) {
	if got := FormatValue(int64(7)); got != "7" {
		t.Errorf("FormatValue(7) = %q", got)
	}
	if got := FormatValue("open"); got != "open" {
		t.Errorf("FormatValue(open) = %q", got)
	}
	if got := FormatValue(nil); !strings.Contains(got, "·") {
		t.Errorf("FormatValue(nil) = %q, want muted placeholder", got)
	}
}
