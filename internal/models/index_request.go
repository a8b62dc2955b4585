// ABOUTME: IndexRequest is the payload for adding chunks to the vector index
// ABOUTME: Mirrors the vector service's add_document_chunks contract
package models

// IndexRequest carries one document's chunks to the vector index service.
type IndexRequest struct {
	DocumentID   string    `json:"document_id"`
	DocumentName string    `json:"document_name"`
	Chunks       []string  `json:"chunks"`
	DocumentType CorpusTag `json:"document_type"`

	// Policy-corpus metadata, ignored for contract documents
	ClauseType string `json:"clause_type,omitempty"`
	RiskLevel  string `json:"risk_level,omitempty"`
	PolicyID   string `json:"policy_id,omitempty"`
}
