// ABOUTME: Plain-text extraction with a typed error taxonomy
// ABOUTME: Handles text formats locally; binary formats belong to an external extractor
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	// ErrUnsupportedType indicates the file format has no local extractor
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrCorruptInput indicates the file content could not be decoded as text
	ErrCorruptInput = errors.New("corrupt input")
	// ErrMissingFile indicates no content was supplied at all
	ErrMissingFile = errors.New("missing file")
)

// textExtensions are the formats handled locally. PDF and DOCX extraction is
// delegated to an external collaborator before text reaches this package.
var textExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".text": true,
}

// ExtractText returns the document text for a supported file. Errors wrap one
// of the package sentinels so callers can render a specific remediation hint.
func ExtractText(filename string, data []byte) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", fmt.Errorf("%w: no filename provided", ErrMissingFile)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %s is empty", ErrMissingFile, filename)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !textExtensions[ext] {
		if ext == "" {
			return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedType, filename)
		}
		return "", fmt.Errorf("%w: %s files are handled by the external extractor", ErrUnsupportedType, ext)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrCorruptInput, filename)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("%w: %s contains only whitespace", ErrCorruptInput, filename)
	}

	return text, nil
}

// Supported reports whether a filename's extension has a local extractor.
func Supported(filename string) bool {
	return textExtensions[strings.ToLower(filepath.Ext(filename))]
}
