package files

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// writeTempFile creates a file with the given name and content under a
// test-scoped temp dir and returns its path.
func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write temp file %s: %v", name, err)
	}
	return path
}

func TestIsKnownTextExtension(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"main.go", true},
		{"src/lib.rs", true},
		{"README.md", true},
		{"config.YAML", true},
		{"Makefile", true},
		{"notes.txt", true},
		{"photo.png", false},
		{"archive.tar.gz", false},
		{"binary", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsKnownTextExtension(tt.path); got != tt.expected {
				t.Errorf("IsKnownTextExtension(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestFileSize(t *testing.T) {
	path := writeTempFile(t, "ten.txt", []byte("0123456789"))
	size, err := FileSize(path)
	if err != nil {
		t.Fatalf("FileSize failed: %v", err)
	}
	if size != 10 {
		t.Errorf("FileSize = %d, want 10", size)
	}

	if _, err := FileSize(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("FileSize on missing file should return an error")
	}
}

func TestFileTypeOfText(t *testing.T) {
	path := writeTempFile(t, "hello.go", []byte("package main\n\nfunc main() {}\n"))
	if got := FileTypeOf(path); got != Text {
		t.Errorf("FileTypeOf(go source) = %v, want %v", got, Text)
	}
}

func TestFileTypeOfImage(t *testing.T) {
	// Minimal PNG header magic.
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	path := writeTempFile(t, "pic.png", png)
	if got := FileTypeOf(path); got != Image {
		t.Errorf("FileTypeOf(png) = %v, want %v", got, Image)
	}
}

func TestFileTypeOfBinaryUnknown(t *testing.T) {
	// Mostly control bytes, no known extension, no recognizable magic:
	// printable ratio well below the threshold.
	content := bytes.Repeat([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 'a'}, 30)
	path := writeTempFile(t, "mystery", content)
	if got := FileTypeOf(path); got != Unknown {
		t.Errorf("FileTypeOf(binary blob) = %v, want %v", got, Unknown)
	}
}

func TestFileTypeOfExtensionFallback(t *testing.T) {
	// Too little printable content for the sniffing heuristics alone, but
	// the extension is in the known-text table.
	path := writeTempFile(t, "empty.rs", nil)
	if got := FileTypeOf(path); got != Text {
		t.Errorf("FileTypeOf(empty .rs) = %v, want %v", got, Text)
	}
}

func TestFileTypeOfPrintableRatioFallback(t *testing.T) {
	// No extension, no magic, but clearly printable ASCII content.
	path := writeTempFile(t, "LICENSE-ish", []byte("permission is hereby granted, free of charge"))
	if got := FileTypeOf(path); got != Text {
		t.Errorf("FileTypeOf(printable no-ext file) = %v, want %v", got, Text)
	}
}

func TestFileTypeOfMissingFile(t *testing.T) {
	if got := FileTypeOf(filepath.Join(t.TempDir(), "nope")); got != Unknown {
		t.Errorf("FileTypeOf(missing) = %v, want %v", got, Unknown)
	}
}
