// ABOUTME: Chunk represents a bounded slice of a document's extracted text
// ABOUTME: The unit of retrieval; immutable once created, owned by its Document
package models

// MinChunkLength is the floor for emitted chunk text (trimmed). Fragments at
// or below this length carry too little context to be worth retrieving.
const MinChunkLength = 50

// Chunk is one contiguous text span of a document.
type Chunk struct {
	DocumentID string    `json:"document_id"`
	Index      int       `json:"index"`
	Text       string    `json:"text"`
	Corpus     CorpusTag `json:"corpus,omitempty"`

	// Policy-mode metadata, empty for contract chunks
	ClauseType string `json:"clause_type,omitempty"`
	RiskLevel  string `json:"risk_level,omitempty"`
	PolicyID   string `json:"policy_id,omitempty"`
}
