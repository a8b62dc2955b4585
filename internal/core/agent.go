// ABOUTME: Agent is the top-level query service: ingest, query, policy-aware query, delete
// ABOUTME: Owns the repositories and drives retrieval, prompting, generation, and recording
package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/harper/docagent-standalone/internal/models"
	"github.com/harper/docagent-standalone/internal/storage"
)

var (
	// ErrNoActiveDocument is returned when a query arrives before any upload,
	// or names a document that has been replaced or deleted.
	ErrNoActiveDocument = errors.New("no active document")
	// ErrEmptyQuery is returned for blank questions, before any retrieval.
	ErrEmptyQuery = errors.New("query cannot be empty")
	// ErrNoUsableChunks is returned when chunking an upload yields nothing.
	ErrNoUsableChunks = errors.New("document produced no usable chunks")
	// ErrIndexRequired is returned for operations that only make sense with
	// a vector index, such as policy-corpus ingestion.
	ErrIndexRequired = errors.New("vector index service is required")
)

// Generator produces text from a prompt. A failure here is fatal to the
// request: one attempt, no retries, surfaced to the caller.
type Generator interface {
	Generate(ctx context.Context, prompt, modelID string) (string, error)
}

// ChunkIndex is the full vector index surface the agent consumes.
type ChunkIndex interface {
	SearchIndex
	AddDocumentChunks(ctx context.Context, req models.IndexRequest) (int, error)
	DeleteDocument(ctx context.Context, documentID string) error
}

// QueryResult is a completed single-corpus query.
type QueryResult struct {
	Answer  string                 `json:"answer"`
	Context models.RetrievalResult `json:"retrieved_context"`
}

// PolicyQueryResult is a completed dual-corpus query.
type PolicyQueryResult struct {
	Answer          string                 `json:"answer"`
	ContractContext models.RetrievalResult `json:"contract_context"`
	PolicyContext   []models.PolicyChunk   `json:"policy_context"`
}

// Agent wires the chunker, repositories, retriever, prompt builder, and
// collaborators into the document question-answering service.
type Agent struct {
	docs         *storage.DocumentStore
	convo        *storage.ConversationStore
	chunker      *Chunker
	retriever    *Retriever
	prompts      *PromptBuilder
	index        ChunkIndex // nil disables semantic indexing and search
	generator    Generator
	DefaultModel string
}

// NewAgent creates an Agent. index may be nil; generator must not be.
func NewAgent(index ChunkIndex, generator Generator, chunker *Chunker) *Agent {
	docs := storage.NewDocumentStore()

	return &Agent{
		docs:      docs,
		convo:     storage.NewConversationStore(),
		chunker:   chunker,
		retriever: NewRetriever(index, docs),
		prompts:   NewPromptBuilder(),
		index:     index,
		generator: generator,
	}
}

// Active returns the current active document, or nil
func (a *Agent) Active() *models.Document {
	return a.docs.Active()
}

// ConversationCount returns how many exchanges the given document has
func (a *Agent) ConversationCount(documentID string) int {
	return a.convo.Count(documentID)
}

// Ingest chunks raw extracted text, indexes it, and installs it as the
// active document. The previous document, its conversation, and its index
// entries are invalidated; an in-flight query may still finish against the
// old chunks, but nothing started after this returns will see them.
func (a *Agent) Ingest(ctx context.Context, name, text string) (*models.Document, error) {
	chunks := a.chunker.Chunk(text)
	if len(chunks) == 0 {
		return nil, ErrNoUsableChunks
	}

	doc, err := models.NewDocument(name, chunks)
	if err != nil {
		return nil, err
	}

	if a.index != nil {
		count, err := a.index.AddDocumentChunks(ctx, models.IndexRequest{
			DocumentID:   doc.DocumentID,
			DocumentName: doc.Name,
			Chunks:       chunks,
			DocumentType: models.CorpusContract,
		})
		if err != nil {
			log.Printf("Semantic indexing failed for %s, lexical fallback only: %v", doc.Name, err)
		} else {
			doc.Indexed = true
			log.Printf("Indexed %d chunks for %s", count, doc.Name)
		}
	}

	old := a.docs.Replace(doc)
	if old != nil {
		a.convo.Clear(old.DocumentID)
		if a.index != nil {
			if err := a.index.DeleteDocument(ctx, old.DocumentID); err != nil {
				log.Printf("Failed to remove replaced document %s from index: %v", old.DocumentID, err)
			}
		}
	}

	return doc, nil
}

// IngestPolicy chunks and indexes a policy document into the policy corpus.
// Policy chunks live only in the vector index; they are not subject to the
// single-active-document slot.
func (a *Agent) IngestPolicy(ctx context.Context, name, text, clauseType, riskLevel, policyID string) (int, error) {
	if a.index == nil {
		return 0, ErrIndexRequired
	}

	chunks := a.chunker.Chunk(text)
	if len(chunks) == 0 {
		return 0, ErrNoUsableChunks
	}

	doc, err := models.NewDocument(name, chunks)
	if err != nil {
		return 0, err
	}
	if policyID == "" {
		policyID = doc.DocumentID
	}

	return a.index.AddDocumentChunks(ctx, models.IndexRequest{
		DocumentID:   doc.DocumentID,
		DocumentName: name,
		Chunks:       chunks,
		DocumentType: models.CorpusPolicy,
		ClauseType:   clauseType,
		RiskLevel:    riskLevel,
		PolicyID:     policyID,
	})
}

// Query answers a question against the active document. Retrieval degrades
// silently to an empty context; only generation failures are fatal. The
// exchange is recorded exactly once, after generation returns.
func (a *Agent) Query(ctx context.Context, documentID, message, modelID string) (*QueryResult, error) {
	doc, err := a.resolveDocument(documentID, message)
	if err != nil {
		return nil, err
	}

	result := a.retriever.Retrieve(ctx, message, doc.DocumentID)
	history := a.convo.RecentWindow(doc.DocumentID, storage.DefaultHistoryWindow)
	prompt := a.prompts.Build(result.Chunks, history, message)

	answer, err := a.generate(ctx, prompt, modelID)
	if err != nil {
		return nil, err
	}

	if _, err := a.convo.Append(doc.DocumentID, message, answer); err != nil {
		log.Printf("Failed to record exchange for %s: %v", doc.DocumentID, err)
	}

	return &QueryResult{Answer: answer, Context: result}, nil
}

// QueryPolicyAware answers a comparison question using both the contract and
// policy corpora.
func (a *Agent) QueryPolicyAware(ctx context.Context, documentID, message, modelID string) (*PolicyQueryResult, error) {
	doc, err := a.resolveDocument(documentID, message)
	if err != nil {
		return nil, err
	}

	retrieval := a.retriever.RetrievePolicyAware(ctx, message, doc.DocumentID)
	history := a.convo.RecentWindow(doc.DocumentID, storage.DefaultHistoryWindow)
	prompt := a.prompts.BuildPolicyAware(retrieval.Contract.Chunks, retrieval.Policy, history, message)

	answer, err := a.generate(ctx, prompt, modelID)
	if err != nil {
		return nil, err
	}

	if _, err := a.convo.Append(doc.DocumentID, message, answer); err != nil {
		log.Printf("Failed to record exchange for %s: %v", doc.DocumentID, err)
	}

	return &PolicyQueryResult{
		Answer:          answer,
		ContractContext: retrieval.Contract,
		PolicyContext:   retrieval.Policy,
	}, nil
}

// DeleteDocument removes the active document, its conversation, and its
// index entries.
func (a *Agent) DeleteDocument(ctx context.Context, documentID string) error {
	removed := a.docs.Delete(documentID)
	if removed == nil {
		return ErrNoActiveDocument
	}

	a.convo.Clear(removed.DocumentID)
	if a.index != nil {
		if err := a.index.DeleteDocument(ctx, removed.DocumentID); err != nil {
			log.Printf("Failed to remove document %s from index: %v", removed.DocumentID, err)
		}
	}
	return nil
}

// resolveDocument validates the question and finds the target document.
// An empty documentID means "the active document".
func (a *Agent) resolveDocument(documentID, message string) (*models.Document, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyQuery
	}

	var doc *models.Document
	if documentID == "" {
		doc = a.docs.Active()
	} else {
		doc = a.docs.Get(documentID)
	}
	if doc == nil {
		return nil, ErrNoActiveDocument
	}
	return doc, nil
}

// generate runs the single generation attempt, wrapping failures with the
// failing model's identifier.
func (a *Agent) generate(ctx context.Context, prompt, modelID string) (string, error) {
	if modelID == "" {
		modelID = a.DefaultModel
	}

	answer, err := a.generator.Generate(ctx, prompt, modelID)
	if err != nil {
		return "", fmt.Errorf("generation failed for model %q: %w", modelID, err)
	}
	return answer, nil
}
