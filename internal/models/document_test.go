// ABOUTME: Tests for Document creation and chunk ownership
// ABOUTME: Verifies ID generation, validation, and chunk ordering

package models

import (
	"strings"
	"testing"
)

func TestNewDocument(t *testing.T) {
	chunks := []string{"first chunk of contract text", "second chunk of contract text"}

	doc, err := NewDocument("contract.txt", chunks)
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}

	if !strings.HasPrefix(doc.DocumentID, "doc_") {
		t.Errorf("DocumentID = %q, want doc_ prefix", doc.DocumentID)
	}
	if doc.Name != "contract.txt" {
		t.Errorf("Name = %q, want %q", doc.Name, "contract.txt")
	}
	if doc.Indexed {
		t.Error("new document should not be marked indexed")
	}
	if doc.IngestedAt.IsZero() {
		t.Error("IngestedAt should be set")
	}

	if len(doc.Chunks) != 2 {
		t.Fatalf("len(Chunks) = %d, want 2", len(doc.Chunks))
	}
	for i, c := range doc.Chunks {
		if c.DocumentID != doc.DocumentID {
			t.Errorf("chunk %d DocumentID = %q, want %q", i, c.DocumentID, doc.DocumentID)
		}
		if c.Index != i {
			t.Errorf("chunk %d Index = %d, want %d", i, c.Index, i)
		}
		if c.Corpus != CorpusContract {
			t.Errorf("chunk %d Corpus = %q, want %q", i, c.Corpus, CorpusContract)
		}
	}
}

func TestNewDocument_Validation(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		chunks []string
	}{
		{"empty name", "", []string{"some chunk"}},
		{"whitespace name", "   ", []string{"some chunk"}},
		{"no chunks", "contract.txt", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewDocument(tt.doc, tt.chunks); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNewDocument_UniqueIDs(t *testing.T) {
	a, err := NewDocument("a.txt", []string{"chunk"})
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}
	b, err := NewDocument("b.txt", []string{"chunk"})
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}
	if a.DocumentID == b.DocumentID {
		t.Errorf("documents share ID %q", a.DocumentID)
	}
}

func TestDocument_ChunkTexts(t *testing.T) {
	texts := []string{"alpha", "beta", "gamma"}
	doc, err := NewDocument("doc.txt", texts)
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}

	got := doc.ChunkTexts()
	if len(got) != len(texts) {
		t.Fatalf("len = %d, want %d", len(got), len(texts))
	}
	for i := range texts {
		if got[i] != texts[i] {
			t.Errorf("ChunkTexts()[%d] = %q, want %q", i, got[i], texts[i])
		}
	}
}
