// ABOUTME: Tests for shared CLI utility functions
// ABOUTME: Covers file reading, extraction errors, and display helpers

package commands

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harper/docagent-standalone/internal/extract"
)

// findSubstring reports whether s contains substr
func findSubstring(s, substr string) bool {
	return strings.Contains(s, substr)
}

func TestReadDocumentFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lease.txt")
	if err := os.WriteFile(path, []byte("Payment due: $500.\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	name, text, err := readDocumentFile(path)
	if err != nil {
		t.Fatalf("readDocumentFile() error = %v", err)
	}
	if name != "lease.txt" {
		t.Errorf("name = %q, want lease.txt", name)
	}
	if text != "Payment due: $500." {
		t.Errorf("text = %q", text)
	}
}

func TestReadDocumentFile_Missing(t *testing.T) {
	if _, _, err := readDocumentFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadDocumentFile_UnsupportedType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contract.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, _, err := readDocumentFile(path)
	if !errors.Is(err, extract.ErrUnsupportedType) {
		t.Errorf("error = %v, want ErrUnsupportedType", err)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string unchanged", "hello", 10, "hello"},
		{"exact length unchanged", "hello", 5, "hello"},
		{"truncated with ellipsis", "hello world", 8, "hello..."},
		{"tiny max", "hello", 2, "he"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}
