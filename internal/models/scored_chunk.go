// ABOUTME: ScoredChunk is a chunk record returned by vector index search
// ABOUTME: Carries similarity score and the metadata stored alongside the embedding
package models

// ChunkMetadata is the metadata object the vector service stores alongside
// each embedding and returns nested inside every search hit.
type ChunkMetadata struct {
	DocumentID   string `json:"document_id,omitempty"`
	DocumentName string `json:"document_name,omitempty"`
	DocumentType string `json:"document_type,omitempty"`
	ChunkIndex   int    `json:"chunk_index,omitempty"`
	SectionLabel string `json:"section_label,omitempty"`

	// Policy-corpus metadata
	ClauseType string `json:"clause_type,omitempty"`
	RiskLevel  string `json:"risk_level,omitempty"`
	PolicyID   string `json:"policy_id,omitempty"`
}

// ScoredChunk is one semantic search hit from the vector index service.
type ScoredChunk struct {
	ChunkID         string        `json:"chunk_id"`
	Text            string        `json:"text"`
	SimilarityScore float64       `json:"similarity_score"`
	Metadata        ChunkMetadata `json:"metadata"`
}
