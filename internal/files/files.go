// Package files decides how a path's contents should be treated before any
// expensive preview work is attempted.
package files

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"glimpse/internal/strutil"
)

// FileType is the broad category a path resolves to. Only Text files are
// rendered with content; everything else degrades to an unsupported
// preview.
type FileType int

const (
	Unknown FileType = iota
	Text
	Image
	Other
)

func (t FileType) String() string {
	switch t {
	case Text:
		return "text"
	case Image:
		return "image"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// sniffSampleSize is how many leading bytes feed the printable-ratio
// fallback when magic-byte sniffing and the extension table are both
// inconclusive.
const sniffSampleSize = 256

// knownTextExtensions maps extensions (without the dot) that are treated
// as text without content inspection.
var knownTextExtensions = map[string]struct{}{
	"ada": {}, "asm": {}, "awk": {}, "bash": {}, "bat": {}, "c": {}, "cc": {},
	"cfg": {}, "clj": {}, "cmake": {}, "cmd": {}, "conf": {}, "cpp": {},
	"cs": {}, "css": {}, "csv": {}, "cxx": {}, "dart": {}, "diff": {},
	"dockerfile": {}, "el": {}, "elm": {}, "env": {}, "erl": {}, "ex": {},
	"exs": {}, "fish": {}, "fs": {}, "go": {}, "gradle": {}, "groovy": {},
	"h": {}, "hh": {}, "hpp": {}, "hs": {}, "html": {}, "htm": {}, "ini": {},
	"java": {}, "jl": {}, "js": {}, "json": {}, "jsx": {}, "kt": {},
	"kts": {}, "less": {}, "lisp": {}, "lock": {}, "log": {}, "lua": {},
	"m": {}, "makefile": {}, "md": {}, "markdown": {}, "ml": {}, "mli": {},
	"nim": {}, "nix": {}, "org": {}, "patch": {}, "php": {}, "pl": {},
	"pm": {}, "proto": {}, "ps1": {}, "py": {}, "r": {}, "rb": {}, "rs": {},
	"rst": {}, "sass": {}, "scala": {}, "scm": {}, "scss": {}, "sh": {},
	"sql": {}, "svelte": {}, "svg": {}, "swift": {}, "tcl": {}, "tex": {},
	"toml": {}, "ts": {}, "tsx": {}, "txt": {}, "vb": {}, "vim": {},
	"vue": {}, "xml": {}, "yaml": {}, "yml": {}, "zig": {}, "zsh": {},
}

// IsKnownTextExtension reports whether the path's extension is in the
// known-text table. Extension-less files named like "Makefile" or
// "Dockerfile" match on their lowercased base name.
func IsKnownTextExtension(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		ext = strings.ToLower(filepath.Base(path))
	}
	_, ok := knownTextExtensions[ext]
	return ok
}

// FileSize returns the size in bytes of the file at path.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// FileTypeOf classifies the file at path.
//
// Magic-byte sniffing runs first: a detected mime type containing "image"
// or "text" decides immediately, any other concrete type is Other. The
// sniffer's catch-all (application/octet-stream) counts as no
// determination, as does a sniffing error. Undetermined paths fall back to
// the known-extension table, then to a printable-ASCII ratio check over
// the first 256 bytes.
func FileTypeOf(path string) FileType {
	fileType := sniffFileType(path)

	if fileType == Unknown {
		if IsKnownTextExtension(path) {
			fileType = Text
		} else if looksLikeText(path) {
			fileType = Text
		}
	}

	return fileType
}

func sniffFileType(path string) FileType {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return Unknown
	}
	mime := mtype.String()
	switch {
	case strings.Contains(mime, "image"):
		return Image
	case strings.Contains(mime, "text"):
		return Text
	case strings.HasPrefix(mime, "application/octet-stream"):
		// the detector's root type, i.e. nothing matched
		return Unknown
	default:
		return Other
	}
}

func looksLikeText(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buffer := make([]byte, sniffSampleSize)
	n, err := f.Read(buffer)
	if n == 0 || (err != nil && err != io.EOF) {
		return false
	}
	return strutil.ProportionOfPrintableASCII(buffer[:n]) > strutil.PrintableASCIIThreshold
}
