package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"glimpse/internal/entry"
	"glimpse/internal/strutil"
	"glimpse/internal/tui/styles"
)

// maxValueDisplayLength bounds how many bytes of an entry's inline value
// are shown before middle-ellipsis shrinking.
const maxValueDisplayLength = 120

// segment is one styled run of a result line, kept unstyled here so the
// span-splitting logic stays testable without a terminal.
type segment struct {
	text    string
	matched bool
}

// splitByMatchRanges cuts s into segments along the given byte ranges,
// slicing at character boundaries so offsets landing inside a multi-byte
// character never corrupt the output. Ranges must be sorted and
// non-overlapping, which is what the matcher produces.
func splitByMatchRanges(s string, ranges []entry.MatchRange) []segment {
	if len(ranges) == 0 {
		return []segment{{text: s}}
	}

	var segments []segment
	lastEnd := 0
	for _, r := range ranges {
		if before := strutil.SliceAtCharBoundaries(s, lastEnd, r.Start); before != "" {
			segments = append(segments, segment{text: before})
		}
		if matched := strutil.SliceAtCharBoundaries(s, r.Start, r.End); matched != "" {
			segments = append(segments, segment{text: matched, matched: true})
		}
		lastEnd = r.End
	}
	if tail := s[strutil.NextCharBoundary(s, lastEnd):]; tail != "" {
		segments = append(segments, segment{text: tail})
	}
	return segments
}

// BuildResultLine renders one entry for the result list, styling matched
// ranges, the optional line number, and the optional inline value, then
// truncating to width.
func BuildResultLine(e entry.Entry, selected bool, width int) string {
	var b strings.Builder

	for _, seg := range splitByMatchRanges(e.DisplayName(), e.NameMatchRanges) {
		b.WriteString(styleSegment(seg, styles.ResultNameStyle))
	}

	if e.LineNumber > 0 {
		b.WriteString(styles.ResultLineNumberStyle.Render(fmt.Sprintf(":%d", e.LineNumber)))
	}

	if e.Value != "" {
		b.WriteString(styles.ResultValueStyle.Render(": "))
		value := strutil.ShrinkWithEllipsis(e.Value, maxValueDisplayLength)
		ranges := e.ValueMatchRanges
		if len(value) != len(e.Value) {
			// shrinking invalidates the byte offsets
			ranges = nil
		}
		for _, seg := range splitByMatchRanges(value, ranges) {
			b.WriteString(styleSegment(seg, styles.ResultValueStyle))
		}
	}

	line := b.String()
	if width > 0 {
		line = truncate.StringWithTail(line, uint(width), "…")
	}
	if selected {
		line = styles.ResultSelectedStyle.Render("> ") + line
	} else {
		line = "  " + line
	}
	return line
}

func styleSegment(seg segment, base lipgloss.Style) string {
	if seg.matched {
		return styles.ResultMatchStyle.Render(seg.text)
	}
	return base.Render(seg.text)
}
