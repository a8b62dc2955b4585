// ABOUTME: ConversationStore keeps the append-only exchange log per document
// ABOUTME: Reads never see partial exchanges; appends happen after generation completes
package storage

import (
	"sync"

	"github.com/harper/docagent-standalone/internal/models"
)

// DefaultHistoryWindow is how many recent exchanges feed the prompt
const DefaultHistoryWindow = 5

// ConversationStore is the per-document exchange log. Appends are serialized;
// an exchange becomes visible atomically or not at all.
type ConversationStore struct {
	mu        sync.RWMutex
	exchanges map[string][]models.Exchange
}

// NewConversationStore creates an empty store
func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		exchanges: make(map[string][]models.Exchange),
	}
}

// Append records a completed exchange for a document
func (s *ConversationStore) Append(documentID, userMessage, answer string) (*models.Exchange, error) {
	exchange, err := models.NewExchange(documentID, userMessage, answer)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.exchanges[documentID] = append(s.exchanges[documentID], *exchange)
	return exchange, nil
}

// RecentWindow returns up to maxExchanges of the most recent exchanges for a
// document, oldest first (most-recent-last). The returned slice is a copy.
func (s *ConversationStore) RecentWindow(documentID string, maxExchanges int) []models.Exchange {
	if maxExchanges <= 0 {
		maxExchanges = DefaultHistoryWindow
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.exchanges[documentID]
	if len(all) == 0 {
		return nil
	}

	start := len(all) - maxExchanges
	if start < 0 {
		start = 0
	}

	window := make([]models.Exchange, len(all)-start)
	copy(window, all[start:])
	return window
}

// Count returns how many exchanges a document has accumulated
func (s *ConversationStore) Count(documentID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.exchanges[documentID])
}

// Clear drops a document's entire conversation. Part of the document
// replacement invariant: no history survives the document it belongs to.
func (s *ConversationStore) Clear(documentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.exchanges, documentID)
}
