package tui

import (
	"strings"
	"testing"

	"glimpse/internal/entry"
)

func TestSplitByMatchRanges(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		ranges   []entry.MatchRange
		expected []segment
	}{
		{
			"no ranges", "main.go", nil,
			[]segment{{text: "main.go"}},
		},
		{
			"single range", "main.go", []entry.MatchRange{{Start: 0, End: 4}},
			[]segment{{text: "main", matched: true}, {text: ".go"}},
		},
		{
			"middle range", "cmd/main.go", []entry.MatchRange{{Start: 4, End: 8}},
			[]segment{{text: "cmd/"}, {text: "main", matched: true}, {text: ".go"}},
		},
		{
			"two ranges", "abcdef", []entry.MatchRange{{Start: 0, End: 1}, {Start: 3, End: 4}},
			[]segment{
				{text: "a", matched: true},
				{text: "bc"},
				{text: "d", matched: true},
				{text: "ef"},
			},
		},
		{
			"range to end", "abc", []entry.MatchRange{{Start: 1, End: 3}},
			[]segment{{text: "a"}, {text: "bc", matched: true}},
		},
		{
			// an offset landing inside é widens to the character's bounds
			"offsets inside multibyte char", "aé b", []entry.MatchRange{{Start: 2, End: 2}},
			[]segment{{text: "aé"}, {text: "é", matched: true}, {text: " b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitByMatchRanges(tt.input, tt.ranges)
			if len(got) != len(tt.expected) {
				t.Fatalf("splitByMatchRanges = %+v, want %+v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("segment %d = %+v, want %+v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestSplitByMatchRangesReassembles(t *testing.T) {
	inputs := []struct {
		s      string
		ranges []entry.MatchRange
	}{
		{"cmd/main.go", []entry.MatchRange{{Start: 0, End: 3}, {Start: 4, End: 8}}},
		{"héllo wörld", []entry.MatchRange{{Start: 1, End: 4}}},
		{"abc", []entry.MatchRange{{Start: 0, End: 3}}},
	}

	for _, in := range inputs {
		var b strings.Builder
		for _, seg := range splitByMatchRanges(in.s, in.ranges) {
			b.WriteString(seg.text)
		}
		if got := b.String(); got != in.s {
			t.Errorf("segments of %q reassemble to %q", in.s, got)
		}
	}
}

func TestBuildResultLineContainsParts(t *testing.T) {
	e := entry.Entry{
		Name:       "internal/server.go",
		LineNumber: 42,
		Value:      "func ListenAndServe() error {",
	}
	line := BuildResultLine(e, false, 0)

	if !strings.Contains(line, "internal/server.go") {
		t.Errorf("line should contain the entry name: %q", line)
	}
	if !strings.Contains(line, ":42") {
		t.Errorf("line should contain the line number: %q", line)
	}
	if !strings.Contains(line, "ListenAndServe") {
		t.Errorf("line should contain the value: %q", line)
	}
}

func TestBuildResultLineShrinksLongValue(t *testing.T) {
	e := entry.Entry{
		Name:  "log.txt",
		Value: strings.Repeat("v", 400),
	}
	line := BuildResultLine(e, false, 0)

	if !strings.Contains(line, "…") {
		t.Errorf("long value should be shrunk with an ellipsis: %q", line)
	}
	if strings.Contains(line, strings.Repeat("v", maxValueDisplayLength+1)) {
		t.Errorf("value should not exceed the display cap")
	}
}

func TestBuildResultLineSelectionMarker(t *testing.T) {
	e := entry.New("a.go")

	selected := BuildResultLine(e, true, 0)
	unselected := BuildResultLine(e, false, 0)

	if !strings.Contains(selected, ">") {
		t.Errorf("selected line should carry the cursor marker: %q", selected)
	}
	if strings.Contains(unselected, ">") {
		t.Errorf("unselected line should not carry the cursor marker: %q", unselected)
	}
}
