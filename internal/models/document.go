// ABOUTME: Document represents the single active uploaded document and its chunks
// ABOUTME: Core data structure for the document agent's retrieval pipeline
package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CorpusTag identifies which retrieval corpus a chunk belongs to
type CorpusTag string

const (
	CorpusContract CorpusTag = "contract"
	CorpusPolicy   CorpusTag = "policy"
)

// Document is an ingested document: metadata plus its ordered chunks.
// The agent holds at most one active Document at a time; a new upload
// replaces the previous one wholesale.
type Document struct {
	DocumentID string    `json:"document_id"`
	Name       string    `json:"name"`
	Chunks     []Chunk   `json:"chunks"`
	IngestedAt time.Time `json:"ingested_at"`
	Indexed    bool      `json:"indexed"` // true if semantic indexing succeeded
}

// NewDocument creates a Document with a generated ID from chunk texts
func NewDocument(name string, chunkTexts []string) (*Document, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("document name cannot be empty")
	}
	if len(chunkTexts) == 0 {
		return nil, errors.New("document must have at least one chunk")
	}

	docID := generateDocumentID()
	chunks := make([]Chunk, len(chunkTexts))
	for i, text := range chunkTexts {
		chunks[i] = Chunk{
			DocumentID: docID,
			Index:      i,
			Text:       text,
			Corpus:     CorpusContract,
		}
	}

	return &Document{
		DocumentID: docID,
		Name:       name,
		Chunks:     chunks,
		IngestedAt: time.Now().UTC(),
	}, nil
}

// ChunkTexts returns the chunk texts in document order
func (d *Document) ChunkTexts() []string {
	texts := make([]string, len(d.Chunks))
	for i, c := range d.Chunks {
		texts[i] = c.Text
	}
	return texts
}

// generateDocumentID generates a unique document identifier
func generateDocumentID() string {
	return "doc_" + uuid.New().String()
}
