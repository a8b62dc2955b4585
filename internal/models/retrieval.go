// ABOUTME: RetrievalResult carries ranked chunk texts plus the strategy that produced them
// ABOUTME: Dual-corpus mode pairs a contract result with a policy result
package models

// Strategy identifies which retrieval tier produced a result
type Strategy string

const (
	StrategySemantic      Strategy = "semantic"
	StrategyLexical       Strategy = "lexical"
	StrategyTermExpansion Strategy = "term-expansion"
	StrategyNone          Strategy = "none"
)

// RetrievalResult is an ordered set of chunk texts, most relevant first.
// An empty result is a valid outcome, not an error.
type RetrievalResult struct {
	Chunks   []string `json:"chunks"`
	Strategy Strategy `json:"strategy"`
}

// Empty reports whether the result carries no chunks
func (r RetrievalResult) Empty() bool {
	return len(r.Chunks) == 0
}

// PolicyChunk is a policy-corpus chunk with its compliance metadata,
// used by the dual-corpus prompt.
type PolicyChunk struct {
	Text       string `json:"text"`
	ClauseType string `json:"clause_type,omitempty"`
	RiskLevel  string `json:"risk_level,omitempty"`
	PolicyID   string `json:"policy_id,omitempty"`
}

// PolicyRetrieval holds both halves of a dual-corpus retrieval.
// The policy side may be empty; the comparison still stands on the
// contract half alone.
type PolicyRetrieval struct {
	Contract RetrievalResult `json:"contract"`
	Policy   []PolicyChunk   `json:"policy"`
}
