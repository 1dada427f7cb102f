package preview

import (
	"strings"
	"testing"
)

func TestHighlightLinesGoSource(t *testing.T) {
	lines := []string{
		"package main\n",
		"\n",
		"func main() {}\n",
	}

	highlighted, err := HighlightLines("main.go", lines, ThemeByName("nord"))
	if err != nil {
		t.Fatalf("HighlightLines failed: %v", err)
	}
	if len(highlighted) != 3 {
		t.Fatalf("got %d lines, want 3", len(highlighted))
	}

	var first strings.Builder
	for _, frag := range highlighted[0] {
		first.WriteString(frag.Text)
	}
	if first.String() != "package main" {
		t.Errorf("first line text = %q, want %q", first.String(), "package main")
	}
	if len(highlighted[1]) != 0 {
		t.Errorf("blank line should have no fragments, got %d", len(highlighted[1]))
	}
}

func TestHighlightLinesSingleLine(t *testing.T) {
	highlighted, err := HighlightLines("note.txt", []string{"hello glim\n"}, ThemeByName("nord"))
	if err != nil {
		t.Fatalf("HighlightLines failed: %v", err)
	}
	if len(highlighted) != 1 {
		t.Errorf("got %d lines, want 1", len(highlighted))
	}
}

func TestHighlightLinesUnknownExtensionFallsBack(t *testing.T) {
	// no grammar claims this path; the plain text grammar takes over
	highlighted, err := HighlightLines("data.zzz", []string{"just some words\n"}, ThemeByName("nord"))
	if err != nil {
		t.Fatalf("HighlightLines should fall back, got error: %v", err)
	}
	if len(highlighted) != 1 {
		t.Errorf("got %d lines, want 1", len(highlighted))
	}
}

func TestHighlightLinesEmptyInput(t *testing.T) {
	highlighted, err := HighlightLines("empty.go", nil, ThemeByName("nord"))
	if err != nil {
		t.Fatalf("HighlightLines on empty input failed: %v", err)
	}
	if len(highlighted) != 0 {
		t.Errorf("got %d lines for empty input, want 0", len(highlighted))
	}
}

func TestHighlightLinesPreservesLineCount(t *testing.T) {
	var lines []string
	for range 50 {
		lines = append(lines, "x := 1\n")
	}
	highlighted, err := HighlightLines("count.go", lines, ThemeByName("monokai"))
	if err != nil {
		t.Fatalf("HighlightLines failed: %v", err)
	}
	if len(highlighted) != len(lines) {
		t.Errorf("got %d lines, want %d", len(highlighted), len(lines))
	}
}

func TestThemeByNameUnknownFallsBack(t *testing.T) {
	if ThemeByName("no-such-theme-anywhere") == nil {
		t.Error("ThemeByName must never return nil")
	}
}
