// ABOUTME: HTTP client for the vector index sidecar service
// ABOUTME: Covers indexing, semantic search, dual-corpus search, and document lifecycle
package vector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/harper/docagent-standalone/internal/models"
	"github.com/harper/docagent-standalone/internal/util"
)

// DefaultBaseURL is the default address of the vector index service
const DefaultBaseURL = "http://localhost:8001"

// ErrUnavailable indicates the vector service could not be reached or was unhealthy
var ErrUnavailable = errors.New("vector service unavailable")

// ClientConfig holds configuration for the vector index client
type ClientConfig struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig() *ClientConfig {
	baseURL := os.Getenv("DOCAGENT_VECTOR_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &ClientConfig{
		BaseURL:    baseURL,
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		RetryDelay: time.Second,
	}
}

// Client talks to the vector index service over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
}

// NewClient creates a vector index client using default configuration
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a vector index client with custom configuration
func NewClientWithConfig(config *ClientConfig) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    config.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
	}
}

type healthResponse struct {
	Status           string `json:"status"`
	VectorStoreReady bool   `json:"vector_store_ready"`
}

// Health reports whether the vector service is reachable and ready.
func (c *Client) Health(ctx context.Context) error {
	var resp healthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return err
	}
	if resp.Status != "healthy" || !resp.VectorStoreReady {
		return fmt.Errorf("%w: status=%q ready=%v", ErrUnavailable, resp.Status, resp.VectorStoreReady)
	}
	return nil
}

type addChunksResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ChunkCount int    `json:"chunk_count"`
}

// AddDocumentChunks indexes one document's chunks, retrying transient failures
// with exponential backoff. Returns the service's chunk count for the document.
func (c *Client) AddDocumentChunks(ctx context.Context, req models.IndexRequest) (int, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(util.CalculateBackoff(c.retryDelay, attempt)):
			}
		}

		var resp addChunksResponse
		if err := c.doJSON(ctx, http.MethodPost, "/add_document_chunks", req, &resp); err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}
		if !resp.Success {
			lastErr = fmt.Errorf("attempt %d: indexing rejected: %s", attempt+1, resp.Message)
			continue
		}

		return resp.ChunkCount, nil
	}

	return 0, fmt.Errorf("failed to index %s after %d attempts: %w", req.DocumentID, c.maxRetries+1, lastErr)
}

type searchRequest struct {
	Query      string `json:"query"`
	DocumentID string `json:"document_id,omitempty"`
	TopK       int    `json:"top_k"`
}

type searchResponse struct {
	Chunks     []models.ScoredChunk `json:"chunks"`
	TotalFound int                  `json:"total_found"`
	Query      string               `json:"query"`
}

// SearchChunks runs a semantic similarity search over the contract corpus.
func (c *Client) SearchChunks(ctx context.Context, query, documentID string, topK int) ([]models.ScoredChunk, error) {
	req := searchRequest{Query: query, DocumentID: documentID, TopK: topK}

	var resp searchResponse
	if err := c.doJSON(ctx, http.MethodPost, "/search_chunks", req, &resp); err != nil {
		return nil, err
	}

	return resp.Chunks, nil
}

type policySearchRequest struct {
	Query        string `json:"query"`
	DocumentID   string `json:"document_id,omitempty"`
	ContractTopK int    `json:"contract_top_k"`
	PolicyTopK   int    `json:"policy_top_k"`
}

type policySearchResponse struct {
	ContractChunks []models.ScoredChunk `json:"contract_chunks"`
	PolicyChunks   []models.ScoredChunk `json:"policy_chunks"`
	Query          string               `json:"query"`
}

// SearchPolicyAware searches the contract and policy corpora in one call.
func (c *Client) SearchPolicyAware(ctx context.Context, query, documentID string, contractTopK, policyTopK int) (contract, policy []models.ScoredChunk, err error) {
	req := policySearchRequest{
		Query:        query,
		DocumentID:   documentID,
		ContractTopK: contractTopK,
		PolicyTopK:   policyTopK,
	}

	var resp policySearchResponse
	if err := c.doJSON(ctx, http.MethodPost, "/search_policy_aware", req, &resp); err != nil {
		return nil, nil, err
	}

	return resp.ContractChunks, resp.PolicyChunks, nil
}

// DocumentInfo describes one indexed document as the service sees it.
type DocumentInfo struct {
	DocumentID   string `json:"document_id"`
	DocumentName string `json:"document_name"`
	ChunkCount   int    `json:"chunk_count"`
	DocumentType string `json:"document_type,omitempty"`
}

// GetDocumentInfo returns the index's view of a document.
func (c *Client) GetDocumentInfo(ctx context.Context, documentID string) (*DocumentInfo, error) {
	var info DocumentInfo
	if err := c.doJSON(ctx, http.MethodGet, "/document_info/"+documentID, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

type listDocumentsResponse struct {
	Documents []DocumentInfo `json:"documents"`
}

// ListDocuments returns all documents known to the index.
func (c *Client) ListDocuments(ctx context.Context) ([]DocumentInfo, error) {
	var resp listDocumentsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/list_documents", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Documents, nil
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeleteDocument removes all of a document's chunks from the index.
func (c *Client) DeleteDocument(ctx context.Context, documentID string) error {
	var resp statusResponse
	if err := c.doJSON(ctx, http.MethodDelete, "/delete_document/"+documentID, nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("delete rejected for %s: %s", documentID, resp.Message)
	}
	return nil
}

// ClearAll wipes every collection in the index.
func (c *Client) ClearAll(ctx context.Context) error {
	var resp statusResponse
	if err := c.doJSON(ctx, http.MethodDelete, "/clear_all", nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("clear rejected: %s", resp.Message)
	}
	return nil
}

// doJSON performs one JSON round trip. Transport failures map to ErrUnavailable
// so callers can distinguish an unreachable service from a bad request.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %s returned %d", ErrUnavailable, path, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
