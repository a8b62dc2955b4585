// ABOUTME: Retriever runs the tiered retrieval chain: semantic, lexical, term-expansion
// ABOUTME: Dual-corpus mode searches contract and policy pools for compliance answers
package core

import (
	"context"
	"log"
	"strings"

	"github.com/harper/docagent-standalone/internal/models"
	"github.com/harper/docagent-standalone/internal/storage"
)

const (
	// ContractTopK is how many contract chunks semantic search returns
	ContractTopK = 5
	// PolicyTopK is how many policy chunks dual-corpus search returns
	PolicyTopK = 8
)

// SearchIndex is the slice of the vector index service the retriever uses.
// A search that cannot be served (service down, timeout) returns an error;
// the retriever treats any error as "tier unavailable" and falls through.
type SearchIndex interface {
	SearchChunks(ctx context.Context, query, documentID string, topK int) ([]models.ScoredChunk, error)
	SearchPolicyAware(ctx context.Context, query, documentID string, contractTopK, policyTopK int) (contract, policy []models.ScoredChunk, err error)
}

// termExpansions maps an intent keyword found in the query to broader
// substitute terms, tried one at a time through the lexical matcher.
// Deliberately a finite ordered table, not a classifier.
var termExpansions = []struct {
	intent string
	terms  []string
}{
	{"termination", []string{"termination", "terminate", "breach", "notice", "cancellation", "penalty"}},
	{"payment", []string{"payment", "fee", "amount due", "invoice", "late charge"}},
	{"liability", []string{"liability", "indemnification", "damages", "limitation"}},
	{"confidential", []string{"confidential", "confidentiality", "non-disclosure", "proprietary"}},
}

// complianceKeywords trigger the broad-recall query rewrite in dual-corpus
// mode. Cross-cutting compliance questions need recall over precision.
var complianceKeywords = []string{"compliance", "compliant", "violate", "violation", "policy", "legal", "risk"}

// complianceBroadQuery is the fixed term set substituted for compliance
// questions before hitting the vector index.
const complianceBroadQuery = "termination notice period payment terms liability cap " +
	"confidentiality obligations intellectual property ownership indemnification"

// Retriever orchestrates the retrieval tiers over the active document
type Retriever struct {
	index   SearchIndex
	docs    *storage.DocumentStore
	matcher *LexicalMatcher
}

// NewRetriever creates a Retriever. index may be nil, in which case the
// semantic tier is skipped entirely.
func NewRetriever(index SearchIndex, docs *storage.DocumentStore) *Retriever {
	return &Retriever{
		index:   index,
		docs:    docs,
		matcher: NewLexicalMatcher(),
	}
}

// Retrieve runs the single-corpus chain and stops at the first tier that
// yields chunks. An exhausted chain returns an empty result, never an error:
// empty context is still an answerable prompt.
func (r *Retriever) Retrieve(ctx context.Context, query, documentID string) models.RetrievalResult {
	if chunks := r.semantic(ctx, query, documentID, ContractTopK); len(chunks) > 0 {
		return models.RetrievalResult{Chunks: chunks, Strategy: models.StrategySemantic}
	}

	allChunks := r.docs.AllChunkTexts()
	if ranked := r.matcher.Rank(query, allChunks); len(ranked) > 0 {
		return models.RetrievalResult{Chunks: ranked, Strategy: models.StrategyLexical}
	}

	if ranked := r.expandTerms(query, allChunks); len(ranked) > 0 {
		return models.RetrievalResult{Chunks: ranked, Strategy: models.StrategyTermExpansion}
	}

	return models.RetrievalResult{Strategy: models.StrategyNone}
}

// RetrievePolicyAware searches both corpora. The contract side falls back to
// the single-corpus chain when the combined search fails or comes back empty;
// an empty policy side is tolerated as-is.
func (r *Retriever) RetrievePolicyAware(ctx context.Context, query, documentID string) models.PolicyRetrieval {
	searchQuery := rewriteComplianceQuery(query)

	var contractRecs, policyRecs []models.ScoredChunk
	if r.index != nil {
		var err error
		contractRecs, policyRecs, err = r.index.SearchPolicyAware(ctx, searchQuery, documentID, ContractTopK, PolicyTopK)
		if err != nil {
			log.Printf("Policy-aware search unavailable, degrading: %v", err)
			contractRecs, policyRecs = nil, nil
		}
	}

	var contract models.RetrievalResult
	if len(contractRecs) > 0 {
		contract = models.RetrievalResult{Chunks: chunkTexts(contractRecs), Strategy: models.StrategySemantic}
	} else {
		contract = r.Retrieve(ctx, query, documentID)
	}

	policy := make([]models.PolicyChunk, len(policyRecs))
	for i, rec := range policyRecs {
		policy[i] = models.PolicyChunk{
			Text:       rec.Text,
			ClauseType: rec.Metadata.ClauseType,
			RiskLevel:  rec.Metadata.RiskLevel,
			PolicyID:   rec.Metadata.PolicyID,
		}
	}

	return models.PolicyRetrieval{Contract: contract, Policy: policy}
}

// semantic queries the vector index, treating every failure as an empty tier.
// The search call itself carries the unavailable signal; there is no separate
// health probe to race against.
func (r *Retriever) semantic(ctx context.Context, query, documentID string, topK int) []string {
	if r.index == nil {
		return nil
	}

	recs, err := r.index.SearchChunks(ctx, query, documentID, topK)
	if err != nil {
		log.Printf("Semantic search unavailable, falling back to lexical: %v", err)
		return nil
	}
	return chunkTexts(recs)
}

// expandTerms substitutes broader vocabulary for recognized intents, trying
// each term until one yields results. Bounded by the table, short-circuits
// on first success.
func (r *Retriever) expandTerms(query string, chunks []string) []string {
	queryLower := strings.ToLower(query)

	for _, exp := range termExpansions {
		if !strings.Contains(queryLower, exp.intent) {
			continue
		}
		for _, term := range exp.terms {
			if ranked := r.matcher.Rank(term, chunks); len(ranked) > 0 {
				return ranked
			}
		}
	}
	return nil
}

// rewriteComplianceQuery swaps compliance-intent questions for the fixed
// broad term set before they reach the vector index.
func rewriteComplianceQuery(query string) string {
	queryLower := strings.ToLower(query)
	for _, kw := range complianceKeywords {
		if strings.Contains(queryLower, kw) {
			return complianceBroadQuery
		}
	}
	return query
}

func chunkTexts(recs []models.ScoredChunk) []string {
	texts := make([]string, len(recs))
	for i, rec := range recs {
		texts[i] = rec.Text
	}
	return texts
}
