// ABOUTME: MCP tool handler implementations for the document agent server
// ABOUTME: Maps agent errors to actionable tool results with remediation hints
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/harper/docagent-standalone/internal/core"
	"github.com/harper/docagent-standalone/internal/extract"
	"github.com/harper/docagent-standalone/internal/vector"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	agent *core.Agent
	index *vector.Client // For index-side document info; may be nil
}

// UploadDocument handles the upload_document tool
func (h *Handlers) UploadDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, err := request.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError("filename argument is required and must be a string"), nil
	}
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("content argument is required and must be a string"), nil
	}

	text, err := extract.ExtractText(filename, []byte(content))
	if err != nil {
		return mcp.NewToolResultError(extractionHint(err)), nil
	}

	doc, err := h.agent.Ingest(ctx, filename, text)
	if err != nil {
		if errors.Is(err, core.ErrNoUsableChunks) {
			return mcp.NewToolResultError("document is too short to index; provide more than a sentence of text"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("upload failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"document_id": doc.DocumentID,
		"name":        doc.Name,
		"chunk_count": len(doc.Chunks),
		"indexed":     doc.Indexed,
	}
	if !doc.Indexed {
		response["warning"] = "semantic index unavailable; questions will use lexical retrieval only"
	}

	return jsonResult(response)
}

// UploadPolicy handles the upload_policy tool
func (h *Handlers) UploadPolicy(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, err := request.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError("filename argument is required and must be a string"), nil
	}
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("content argument is required and must be a string"), nil
	}

	text, err := extract.ExtractText(filename, []byte(content))
	if err != nil {
		return mcp.NewToolResultError(extractionHint(err)), nil
	}

	count, err := h.agent.IngestPolicy(ctx,
		filename,
		text,
		request.GetString("clause_type", ""),
		request.GetString("risk_level", ""),
		request.GetString("policy_id", ""),
	)
	if err != nil {
		if errors.Is(err, core.ErrIndexRequired) {
			return mcp.NewToolResultError("policy upload requires the vector index service; start it and retry"), nil
		}
		if errors.Is(err, core.ErrNoUsableChunks) {
			return mcp.NewToolResultError("policy is too short to index; provide more than a sentence of text"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("policy upload failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"success":     true,
		"name":        filename,
		"chunk_count": count,
	})
}

// AskQuestion handles the ask_question tool
func (h *Handlers) AskQuestion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	result, err := h.agent.Query(ctx,
		request.GetString("document_id", ""),
		question,
		request.GetString("model", ""),
	)
	if err != nil {
		return mcp.NewToolResultError(queryHint(err)), nil
	}

	return jsonResult(map[string]interface{}{
		"answer":        result.Answer,
		"strategy":      string(result.Context.Strategy),
		"passages_used": len(result.Context.Chunks),
	})
}

// CheckCompliance handles the check_compliance tool
func (h *Handlers) CheckCompliance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	result, err := h.agent.QueryPolicyAware(ctx,
		request.GetString("document_id", ""),
		question,
		request.GetString("model", ""),
	)
	if err != nil {
		return mcp.NewToolResultError(queryHint(err)), nil
	}

	return jsonResult(map[string]interface{}{
		"answer":           result.Answer,
		"contract_clauses": len(result.ContractContext.Chunks),
		"policy_clauses":   len(result.PolicyContext),
	})
}

// DocumentInfo handles the document_info tool
func (h *Handlers) DocumentInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc := h.agent.Active()
	if doc == nil {
		return mcp.NewToolResultError("no active document; upload one with upload_document"), nil
	}

	response := map[string]interface{}{
		"document_id": doc.DocumentID,
		"name":        doc.Name,
		"chunk_count": len(doc.Chunks),
		"indexed":     doc.Indexed,
		"ingested_at": doc.IngestedAt,
		"exchanges":   h.agent.ConversationCount(doc.DocumentID),
	}

	if h.index != nil && doc.Indexed {
		if info, err := h.index.GetDocumentInfo(ctx, doc.DocumentID); err == nil {
			response["indexed_chunk_count"] = info.ChunkCount
		} else {
			log.Printf("Index-side document info unavailable: %v", err)
		}
	}

	return jsonResult(response)
}

// DeleteDocument handles the delete_document tool
func (h *Handlers) DeleteDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID := request.GetString("document_id", "")
	if documentID == "" {
		active := h.agent.Active()
		if active == nil {
			return mcp.NewToolResultError("no matching document to delete"), nil
		}
		documentID = active.DocumentID
	}

	if err := h.agent.DeleteDocument(ctx, documentID); err != nil {
		if errors.Is(err, core.ErrNoActiveDocument) {
			return mcp.NewToolResultError("no matching document to delete"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("delete failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{"success": true})
}

// queryHint maps query errors to messages a tool caller can act on
func queryHint(err error) string {
	switch {
	case errors.Is(err, core.ErrNoActiveDocument):
		return "no active document; upload one with upload_document first"
	case errors.Is(err, core.ErrEmptyQuery):
		return "question must not be empty"
	default:
		return fmt.Sprintf("question failed: %v", err)
	}
}

// extractionHint maps extraction errors to messages a tool caller can act on
func extractionHint(err error) string {
	switch {
	case errors.Is(err, extract.ErrUnsupportedType):
		return fmt.Sprintf("unsupported file type (%v); upload .txt, .md, or .text, or extract the text before uploading", err)
	case errors.Is(err, extract.ErrCorruptInput):
		return fmt.Sprintf("file content could not be read as text: %v", err)
	case errors.Is(err, extract.ErrMissingFile):
		return fmt.Sprintf("no file content provided: %v", err)
	default:
		return fmt.Sprintf("extraction failed: %v", err)
	}
}

func jsonResult(response map[string]interface{}) (*mcp.CallToolResult, error) {
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
