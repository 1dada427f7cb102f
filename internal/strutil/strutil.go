// Package strutil provides terminal-safe text handling primitives for
// preview and result rendering: UTF-8 boundary-safe slicing, best-effort
// sanitization of arbitrary byte content, and display-oriented truncation.
//
// Everything in this package is pure and performs no I/O, so it can be
// called freely from both the render loop and background workers.
package strutil

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// TabWidth is the number of spaces a tab character expands to.
	TabWidth = 4

	// MaxLineLength is the maximum number of bytes of a line kept for
	// display before sanitization.
	MaxLineLength = 300

	// PrintableASCIIThreshold is the minimum proportion of printable ASCII
	// bytes for a buffer to be considered text.
	PrintableASCIIThreshold = 0.7
)

// nonPrintableSymbol replaces characters that cannot be rendered in a
// fixed-width terminal cell (U+2400, SYMBOL FOR NULL).
const nonPrintableSymbol = '␀'

// NextCharBoundary returns the byte index of the nearest UTF-8 character
// boundary at or after i. Indices past the end of the string clamp to
// len(s).
func NextCharBoundary(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	if i < 0 {
		return 0
	}
	for i < len(s) && !isCharBoundary(s, i) {
		i++
	}
	return i
}

// PrevCharBoundary returns the byte index of the nearest UTF-8 character
// boundary at or before i. Negative indices clamp to 0.
func PrevCharBoundary(s string, i int) int {
	if i <= 0 {
		return 0
	}
	if i >= len(s) {
		return len(s)
	}
	for i > 0 && !isCharBoundary(s, i) {
		i--
	}
	return i
}

// isCharBoundary reports whether i is the start of a UTF-8 sequence or one
// past the end of the string. Continuation bytes are 0b10xxxxxx.
func isCharBoundary(s string, i int) bool {
	if i == 0 || i == len(s) {
		return true
	}
	return s[i]&0xC0 != 0x80
}

// SliceAtCharBoundaries returns the substring of s between the boundary
// at or before start and the boundary at or after end. It returns "" when
// start > end or either index is out of range, and never produces invalid
// UTF-8 from valid input.
func SliceAtCharBoundaries(s string, start, end int) string {
	if start > end || start > len(s) || end > len(s) {
		return ""
	}
	return s[PrevCharBoundary(s, start):NextCharBoundary(s, end)]
}

// SliceUpToCharBoundary returns the prefix of s ending at the character
// boundary at or after i.
func SliceUpToCharBoundary(s string, i int) string {
	return s[:NextCharBoundary(s, i)]
}

// tryParseUTF8Char attempts to decode a single character from the start of
// input, trying 1- through 4-byte candidate sequences in order. It returns
// the character and the number of bytes consumed, or ok=false when no
// valid sequence starts at the current position.
func tryParseUTF8Char(input []byte) (r rune, size int, ok bool) {
	for n := 1; n <= 4 && n <= len(input); n++ {
		if utf8.Valid(input[:n]) {
			r, _ := utf8.DecodeRune(input[:n])
			return r, n, true
		}
	}
	return 0, 0, false
}

// ReplaceNonPrintable decodes input as UTF-8 on a best-effort basis and
// rewrites it for safe fixed-width terminal display:
//
//   - tabs expand to tabWidth spaces
//   - line feeds and byte-order marks are dropped
//   - ASCII control characters (0x00-0x1F, 0x7F-0x9F) and any code point
//     above U+0700 become the replacement symbol
//   - bytes that do not start any valid UTF-8 sequence are emitted as a
//     \xHH escape and the cursor advances one byte
func ReplaceNonPrintable(input []byte, tabWidth int) string {
	var out strings.Builder
	out.Grow(len(input))

	idx := 0
	for idx < len(input) {
		r, size, ok := tryParseUTF8Char(input[idx:])
		if !ok {
			fmt.Fprintf(&out, "\\x%02X", input[idx])
			idx++
			continue
		}
		idx += size

		switch {
		case r == ' ':
			out.WriteByte(' ')
		case r == '\t':
			for range tabWidth {
				out.WriteByte(' ')
			}
		case r == '\n':
			// dropped
		case r == '\uFEFF':
			// don't print BOMs
		case r <= 0x1F || (r >= 0x7F && r <= 0x9F):
			out.WriteRune(nonPrintableSymbol)
		case r > 0x0700:
			// code points above U+0700 render unpredictably across terminals
			out.WriteRune(nonPrintableSymbol)
		default:
			out.WriteRune(r)
		}
	}

	return out.String()
}

// ProportionOfPrintableASCII returns the fraction of bytes in buffer that
// fall in the printable ASCII range [0x20, 0x7F). An empty buffer yields 0.
func ProportionOfPrintableASCII(buffer []byte) float64 {
	if len(buffer) == 0 {
		return 0
	}
	printable := 0
	for _, b := range buffer {
		if b >= 32 && b < 127 {
			printable++
		}
	}
	return float64(printable) / float64(len(buffer))
}

// PreprocessLine prepares a raw line for display: it truncates to
// MaxLineLength bytes at a character boundary, strips trailing CR, LF and
// NUL bytes, and sanitizes the rest with ReplaceNonPrintable.
func PreprocessLine(line string) string {
	if len(line) > MaxLineLength {
		line = SliceUpToCharBoundary(line, MaxLineLength)
	}
	line = strings.TrimRight(line, "\r\n\x00")
	return ReplaceNonPrintable([]byte(line), TabWidth)
}

// ShrinkWithEllipsis shortens s to roughly maxLength bytes by keeping a
// boundary-safe prefix and suffix joined with a single ellipsis, so both
// ends of a long string remain visible. Strings that already fit are
// returned unchanged.
func ShrinkWithEllipsis(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}

	half := maxLength/2 - 2
	if half < 0 {
		half = 0
	}
	first := SliceUpToCharBoundary(s, half)
	second := SliceAtCharBoundaries(s, len(s)-half, len(s))
	return first + "…" + second
}
