// Package entry defines the value produced by the matching engine for each
// ranked result. Entries are read-only to every downstream consumer; the
// previewer only ever looks at the Name, which doubles as the cache key.
package entry

// MatchRange is a half-open byte range [Start, End) over a matched string.
// Offsets come from the matcher and may land inside multi-byte characters;
// consumers must slice boundary-safely.
type MatchRange struct {
	Start int
	End   int
}

// Entry is a single ranked item. Name is typically a filesystem path.
// Value carries an optional inline preview string (e.g. the matched line
// for a grep-style source). LineNumber is 1-based; zero means absent.
type Entry struct {
	Name             string
	Value            string
	LineNumber       int
	NameMatchRanges  []MatchRange
	ValueMatchRanges []MatchRange
}

// New returns an entry for the given identifier.
func New(name string) Entry {
	return Entry{Name: name}
}

// DisplayName returns the string shown in the result list.
func (e Entry) DisplayName() string {
	return e.Name
}
