package preview

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// ThemeByName resolves a highlighting theme, falling back to the library
// default for unknown names.
func ThemeByName(name string) *chroma.Style {
	if s := styles.Get(name); s != nil {
		return s
	}
	return styles.Fallback
}

// HighlightLines tokenizes the given preprocessed lines with the grammar
// selected for path and maps every token through the theme into styled
// fragments, one slice per input line. Each input line must keep its
// trailing newline: the grammars are line-oriented and expect one.
//
// Grammar selection tries the path first, then content analysis, then the
// plain text grammar, so selection itself always succeeds; the error
// return covers tokenizer failures.
func HighlightLines(path string, lines []string, theme *chroma.Style) ([][]Fragment, error) {
	text := strings.Join(lines, "")

	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		lexer = lexers.Analyse(text)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return nil, fmt.Errorf("tokenizing %q: %w", path, err)
	}

	styleFor := fragmentStyler(theme)

	highlighted := make([][]Fragment, 0, len(lines))
	var current []Fragment
	for token := iterator(); token != chroma.EOF; token = iterator() {
		style := styleFor(token.Type)

		// a token may span several lines; split on newlines so each
		// output line stays self-contained
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if part != "" {
				current = append(current, Fragment{Text: part, Style: style})
			}
			if i < len(parts)-1 {
				highlighted = append(highlighted, current)
				current = nil
			}
		}
	}
	if len(current) > 0 {
		highlighted = append(highlighted, current)
	}

	return highlighted, nil
}

// fragmentStyler returns a memoizing token-type to lipgloss style mapping
// for the given theme.
func fragmentStyler(theme *chroma.Style) func(chroma.TokenType) lipgloss.Style {
	cache := make(map[chroma.TokenType]lipgloss.Style)
	return func(t chroma.TokenType) lipgloss.Style {
		if s, ok := cache[t]; ok {
			return s
		}
		entry := theme.Get(t)
		s := lipgloss.NewStyle()
		if entry.Colour.IsSet() {
			s = s.Foreground(lipgloss.Color(entry.Colour.String()))
		}
		if entry.Background.IsSet() {
			s = s.Background(lipgloss.Color(entry.Background.String()))
		}
		if entry.Bold == chroma.Yes {
			s = s.Bold(true)
		}
		if entry.Italic == chroma.Yes {
			s = s.Italic(true)
		}
		if entry.Underline == chroma.Yes {
			s = s.Underline(true)
		}
		cache[t] = s
		return s
	}
}
