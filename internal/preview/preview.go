// Package preview computes and caches previews for entries produced by the
// matching engine. The Previewer never blocks the caller: expensive
// read-and-highlight work runs in the background and publishes its result
// through the shared cache.
package preview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Kind tags the variant of a Preview.
type Kind int

const (
	// KindPlainText is an ordered sequence of sanitized display lines.
	KindPlainText Kind = iota
	// KindHighlightedText is a sequence of lines of styled fragments.
	KindHighlightedText
	// KindLoading marks an in-progress background computation. It is also
	// what deduplicates concurrent requests for the same identifier.
	KindLoading
	// KindNotSupported means no renderable preview exists for the entry.
	KindNotSupported
	// KindTooLarge means the source exceeds the size ceiling.
	KindTooLarge
)

func (k Kind) String() string {
	switch k {
	case KindPlainText:
		return "plain"
	case KindHighlightedText:
		return "highlighted"
	case KindLoading:
		return "loading"
	case KindNotSupported:
		return "not supported"
	case KindTooLarge:
		return "too large"
	default:
		return "unknown"
	}
}

// Fragment is a run of text sharing one style within a highlighted line.
type Fragment struct {
	Text  string
	Style lipgloss.Style
}

// Preview is the immutable, shareable result of preview computation for a
// single entry. Once constructed it is never mutated; updates replace the
// cache entry with a new value, so a renderer holding a *Preview never
// sees it change underneath it.
type Preview struct {
	Title string
	Kind  Kind

	// Lines holds display text for KindPlainText and the status message
	// for the meta kinds.
	Lines []string

	// Highlighted holds the styled lines for KindHighlightedText.
	Highlighted [][]Fragment
}

// NewPlainText returns a plain text preview from already sanitized lines.
func NewPlainText(title string, lines []string) *Preview {
	return &Preview{Title: title, Kind: KindPlainText, Lines: lines}
}

// NewHighlighted returns a highlighted preview from styled lines.
func NewHighlighted(title string, lines [][]Fragment) *Preview {
	return &Preview{Title: title, Kind: KindHighlightedText, Highlighted: lines}
}

// Loading returns the placeholder preview cached while a background
// computation is in flight.
func Loading(title string) *Preview {
	return &Preview{
		Title: title,
		Kind:  KindLoading,
		Lines: []string{"Loading..."},
	}
}

// NotSupported returns the terminal preview for entries that cannot be
// rendered (binary content, unknown types, read or highlight failures).
func NotSupported(title string) *Preview {
	return &Preview{
		Title: title,
		Kind:  KindNotSupported,
		Lines: []string{"Preview not supported"},
	}
}

// TooLarge returns the terminal preview for files over the size ceiling.
func TooLarge(title string, size int64) *Preview {
	return &Preview{
		Title: title,
		Kind:  KindTooLarge,
		Lines: []string{
			fmt.Sprintf("File too large (%s, limit %s)",
				humanize.IBytes(uint64(size)), humanize.IBytes(MaxFileSize)),
		},
	}
}
