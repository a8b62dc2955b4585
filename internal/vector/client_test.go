// ABOUTME: Tests for the vector index HTTP client against an httptest server
// ABOUTME: Covers payload shapes, retry on transient failure, and ErrUnavailable mapping
package vector

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/harper/docagent-standalone/internal/models"
)

func testClient(serverURL string) *Client {
	return NewClientWithConfig(&ClientConfig{
		BaseURL:    serverURL,
		Timeout:    5 * time.Second,
		MaxRetries: 2,
		RetryDelay: time.Millisecond,
	})
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path = %s, want /health", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "healthy", "service": "vector-store", "vector_store_ready": true,
		})
	}))
	defer server.Close()

	if err := testClient(server.URL).Health(context.Background()); err != nil {
		t.Errorf("Health() error = %v", err)
	}
}

func TestHealth_NotReady(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "healthy", "vector_store_ready": false,
		})
	}))
	defer server.Close()

	if err := testClient(server.URL).Health(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestAddDocumentChunks(t *testing.T) {
	var got models.IndexRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/add_document_chunks" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true, "message": "ok", "chunk_count": len(got.Chunks),
		})
	}))
	defer server.Close()

	count, err := testClient(server.URL).AddDocumentChunks(context.Background(), models.IndexRequest{
		DocumentID:   "doc_123",
		DocumentName: "lease.txt",
		Chunks:       []string{"chunk one", "chunk two"},
		DocumentType: models.CorpusPolicy,
		ClauseType:   "termination",
		RiskLevel:    "high",
		PolicyID:     "pol_9",
	})
	if err != nil {
		t.Fatalf("AddDocumentChunks() error = %v", err)
	}

	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if got.DocumentType != models.CorpusPolicy || got.ClauseType != "termination" {
		t.Errorf("payload = %+v, policy metadata not carried", got)
	}
}

func TestAddDocumentChunks_RetriesTransientFailure(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "chunk_count": 1})
	}))
	defer server.Close()

	count, err := testClient(server.URL).AddDocumentChunks(context.Background(), models.IndexRequest{
		DocumentID: "doc_x", DocumentName: "x", Chunks: []string{"text"},
	})
	if err != nil {
		t.Fatalf("AddDocumentChunks() error = %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestAddDocumentChunks_ExhaustsRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := testClient(server.URL).AddDocumentChunks(context.Background(), models.IndexRequest{
		DocumentID: "doc_x", DocumentName: "x", Chunks: []string{"text"},
	})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want wrapped ErrUnavailable", err)
	}
}

func TestSearchChunks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		json.NewDecoder(r.Body).Decode(&req)
		if req["query"] != "late fee" || req["top_k"] != float64(5) {
			t.Errorf("request = %v", req)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"chunks": []map[string]interface{}{
				{
					"chunk_id":         "doc_1_chunk_0",
					"text":             "late fee is $25",
					"similarity_score": 0.91,
					"distance":         0.09,
					"collection_type":  "contract",
					"metadata": map[string]interface{}{
						"document_id":   "doc_1",
						"document_name": "lease.txt",
						"document_type": "contract",
						"chunk_index":   0,
						"section_label": "chunk_1",
					},
				},
			},
			"total_found": 1,
			"query":       "late fee",
		})
	}))
	defer server.Close()

	chunks, err := testClient(server.URL).SearchChunks(context.Background(), "late fee", "doc_1", 5)
	if err != nil {
		t.Fatalf("SearchChunks() error = %v", err)
	}
	if len(chunks) != 1 || chunks[0].SimilarityScore != 0.91 {
		t.Errorf("chunks = %v", chunks)
	}
	if chunks[0].Metadata.DocumentID != "doc_1" || chunks[0].Metadata.SectionLabel != "chunk_1" {
		t.Errorf("metadata = %+v", chunks[0].Metadata)
	}
}

func TestSearchChunks_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := testClient(server.URL).SearchChunks(context.Background(), "query", "", 5)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestSearchPolicyAware(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		json.NewDecoder(r.Body).Decode(&req)
		if req["contract_top_k"] != float64(5) || req["policy_top_k"] != float64(8) {
			t.Errorf("request = %v", req)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"contract_chunks": []map[string]interface{}{{"text": "contract clause"}},
			"policy_chunks": []map[string]interface{}{
				{
					"chunk_id":         "pol_doc_chunk_0",
					"text":             "policy rule",
					"similarity_score": 0.77,
					"collection_type":  "policy",
					"metadata": map[string]interface{}{
						"document_id":   "pol_doc",
						"document_type": "policy",
						"clause_type":   "payment",
						"risk_level":    "high",
						"policy_id":     "pol_1",
					},
				},
			},
			"query": "payment terms",
		})
	}))
	defer server.Close()

	contract, policy, err := testClient(server.URL).SearchPolicyAware(context.Background(), "payment terms", "", 5, 8)
	if err != nil {
		t.Fatalf("SearchPolicyAware() error = %v", err)
	}
	if len(contract) != 1 || len(policy) != 1 {
		t.Fatalf("contract = %v, policy = %v", contract, policy)
	}
	if policy[0].Metadata.ClauseType != "payment" || policy[0].Metadata.RiskLevel != "high" || policy[0].Metadata.PolicyID != "pol_1" {
		t.Errorf("policy metadata = %+v", policy[0].Metadata)
	}
}

func TestDeleteDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/delete_document/doc_42" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}))
	defer server.Close()

	if err := testClient(server.URL).DeleteDocument(context.Background(), "doc_42"); err != nil {
		t.Errorf("DeleteDocument() error = %v", err)
	}
}

func TestGetDocumentInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/document_info/doc_7" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(DocumentInfo{
			DocumentID: "doc_7", DocumentName: "nda.txt", ChunkCount: 4,
		})
	}))
	defer server.Close()

	info, err := testClient(server.URL).GetDocumentInfo(context.Background(), "doc_7")
	if err != nil {
		t.Fatalf("GetDocumentInfo() error = %v", err)
	}
	if info.ChunkCount != 4 || info.DocumentName != "nda.txt" {
		t.Errorf("info = %+v", info)
	}
}

func TestClearAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/clear_all" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}))
	defer server.Close()

	if err := testClient(server.URL).ClearAll(context.Background()); err != nil {
		t.Errorf("ClearAll() error = %v", err)
	}
}
