// ABOUTME: DocumentStore holds the single active document behind a swap, not mutation
// ABOUTME: A new upload replaces the slot wholesale; no mixed old/new state is observable
package storage

import (
	"sync"

	"github.com/harper/docagent-standalone/internal/models"
)

// DocumentStore owns the active-document slot. Documents are immutable once
// stored; replacement swaps the whole pointer so an in-flight reader keeps a
// consistent view of whichever document it started with.
type DocumentStore struct {
	mu     sync.RWMutex
	active *models.Document
}

// NewDocumentStore creates an empty store
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Replace installs doc as the active document and returns the one it
// displaced, if any.
func (s *DocumentStore) Replace(doc *models.Document) *models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.active
	s.active = doc
	return old
}

// Active returns the current active document, or nil
func (s *DocumentStore) Active() *models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Get returns the active document if its ID matches, or nil. Former document
// IDs resolve to nothing once replaced.
func (s *DocumentStore) Get(documentID string) *models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.active != nil && s.active.DocumentID == documentID {
		return s.active
	}
	return nil
}

// Delete removes the active document if its ID matches. Returns the removed
// document, or nil if nothing matched.
func (s *DocumentStore) Delete(documentID string) *models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil || s.active.DocumentID != documentID {
		return nil
	}
	removed := s.active
	s.active = nil
	return removed
}

// AllChunkTexts returns the chunk texts of every currently-active document,
// in document order. Used by the lexical fallback tier.
func (s *DocumentStore) AllChunkTexts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.active == nil {
		return nil
	}
	return s.active.ChunkTexts()
}
