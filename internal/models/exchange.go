// ABOUTME: Exchange represents a single question/answer pair for a document
// ABOUTME: Exchanges are append-only per document and feed the prompt history window
package models

import (
	"errors"
	"strings"
	"time"
)

// Exchange is one completed user question and generated answer.
type Exchange struct {
	DocumentID  string    `json:"document_id"`
	UserMessage string    `json:"user_message"`
	Answer      string    `json:"answer"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewExchange creates an Exchange with validation
func NewExchange(documentID, userMessage, answer string) (*Exchange, error) {
	if documentID == "" {
		return nil, errors.New("document ID cannot be empty")
	}
	if strings.TrimSpace(userMessage) == "" {
		return nil, errors.New("user message cannot be empty")
	}
	return &Exchange{
		DocumentID:  documentID,
		UserMessage: userMessage,
		Answer:      answer,
		Timestamp:   time.Now().UTC(),
	}, nil
}
