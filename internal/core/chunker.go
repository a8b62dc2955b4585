// ABOUTME: Chunker splits extracted document text into overlapping, boundary-aware segments
// ABOUTME: Prefers section > paragraph > sentence breaks, degrading to a fixed stride
package core

import (
	"strings"
	"unicode/utf8"

	"github.com/harper/docagent-standalone/internal/models"
)

const (
	// DefaultChunkSize is the window size in characters
	DefaultChunkSize = 4000
	// DefaultChunkOverlap is the carry-over between consecutive chunks
	DefaultChunkOverlap = 800
)

// Break-point thresholds as a fraction of the window. A break only counts
// if it lands late enough in the window to keep chunks reasonably full.
const (
	sectionBreakThreshold   = 0.6
	paragraphBreakThreshold = 0.7
	sentenceBreakThreshold  = 0.8
)

// Chunker performs windowed, boundary-aware text chunking
type Chunker struct {
	Size    int
	Overlap int
}

// NewChunker creates a Chunker with the given window size and overlap.
// Non-positive values fall back to the defaults.
func NewChunker(size, overlap int) *Chunker {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = DefaultChunkOverlap
		if overlap >= size {
			overlap = size / 5
		}
	}
	return &Chunker{Size: size, Overlap: overlap}
}

// Chunk splits text into ordered chunk texts. Chunks whose trimmed length is
// at or below models.MinChunkLength characters are dropped, including the
// tail fragment. Windows are measured in runes, not bytes, so multi-byte
// characters never get split across a boundary. The window start strictly
// increases every iteration, so this terminates for any input.
func (c *Chunker) Chunk(text string) []string {
	norm := []rune(normalizeWhitespace(text))
	if len(norm) == 0 {
		return nil
	}

	var chunks []string
	emit := func(rs []rune) {
		trimmed := strings.TrimSpace(string(rs))
		if utf8.RuneCountInString(trimmed) > models.MinChunkLength {
			chunks = append(chunks, trimmed)
		}
	}

	start := 0
	for start < len(norm) {
		end := start + c.Size
		if end >= len(norm) {
			// Final window: everything that remains
			emit(norm[start:])
			break
		}

		window := norm[start:end]
		cut := findBreak(window)
		if cut <= 0 {
			// No natural break late enough: fixed-stride fallback
			emit(window)
			step := c.Size - c.Overlap
			if step < 1 {
				step = 1
			}
			start += step
			continue
		}

		emit(window[:cut])
		next := start + cut - c.Overlap
		if next <= start {
			next = start + 1
		}
		start = next
	}

	return chunks
}

// findBreak searches backward from the window's end for a natural break
// point, in priority order: section break, paragraph break, sentence
// terminal. Returns the cut position just past the break, or -1.
func findBreak(window []rune) int {
	n := len(window)

	if i := lastNewlineRun(window, 3); i != -1 && float64(i) > sectionBreakThreshold*float64(n) {
		return i + 3
	}
	if i := lastNewlineRun(window, 2); i != -1 && float64(i) > paragraphBreakThreshold*float64(n) {
		return i + 2
	}
	for i := n - 1; i >= 0; i-- {
		switch window[i] {
		case '.', '!', '?', '\n':
			if float64(i) > sentenceBreakThreshold*float64(n) {
				return i + 1
			}
			return -1
		}
	}

	return -1
}

// lastNewlineRun returns the largest index where count consecutive newlines
// begin, or -1.
func lastNewlineRun(window []rune, count int) int {
	for i := len(window) - count; i >= 0; i-- {
		run := true
		for j := 0; j < count; j++ {
			if window[i+j] != '\n' {
				run = false
				break
			}
		}
		if run {
			return i
		}
	}
	return -1
}

// normalizeWhitespace collapses runs of spaces and tabs within each line and
// trims the edges. Newlines are preserved so paragraph and section breaks
// survive for the break-point search.
func normalizeWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
