// ABOUTME: MCP tool definitions and registration for the document agent server
// ABOUTME: Defines JSON schemas for the upload, question, and lifecycle tools
package mcp

import (
	"github.com/harper/docagent-standalone/internal/core"
	"github.com/harper/docagent-standalone/internal/vector"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, agent *core.Agent, index *vector.Client) *Handlers {
	// Initialize handlers
	handlers := &Handlers{
		agent: agent,
		index: index,
	}

	// 1. upload_document - Upload a contract document and make it the active document
	server.AddTool(mcp.Tool{
		Name:        "upload_document",
		Description: "Upload a document and make it the active document for questions. Replaces any previously active document and clears its conversation history.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"filename": map[string]interface{}{
					"type":        "string",
					"description": "Name of the file including extension (.txt, .md, .text)",
				},
				"content": map[string]interface{}{
					"type":        "string",
					"description": "Raw file content",
				},
			},
			Required: []string{"filename", "content"},
		},
	}, handlers.UploadDocument)

	// 2. upload_policy - Add a policy document to the policy corpus
	server.AddTool(mcp.Tool{
		Name:        "upload_policy",
		Description: "Add a company policy document to the policy corpus used by check_compliance. Policy documents do not replace the active document.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"filename": map[string]interface{}{
					"type":        "string",
					"description": "Name of the policy file including extension",
				},
				"content": map[string]interface{}{
					"type":        "string",
					"description": "Raw policy file content",
				},
				"clause_type": map[string]interface{}{
					"type":        "string",
					"description": "Clause category the policy governs (e.g., termination, payment)",
				},
				"risk_level": map[string]interface{}{
					"type":        "string",
					"description": "Risk level tag (low, medium, high)",
				},
				"policy_id": map[string]interface{}{
					"type":        "string",
					"description": "Stable policy identifier; generated when omitted",
				},
			},
			Required: []string{"filename", "content"},
		},
	}, handlers.UploadPolicy)

	// 3. ask_question - Ask a question about the active document
	server.AddTool(mcp.Tool{
		Name:        "ask_question",
		Description: "Ask a natural-language question about the active document. Answers are grounded in retrieved passages and recent conversation.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Question to answer",
				},
				"document_id": map[string]interface{}{
					"type":        "string",
					"description": "Document to ask about; defaults to the active document",
				},
				"model": map[string]interface{}{
					"type":        "string",
					"description": "Model identifier override for this question",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.AskQuestion)

	// 4. check_compliance - Compare the active document against company policies
	server.AddTool(mcp.Tool{
		Name:        "check_compliance",
		Description: "Check the active document against the policy corpus. Returns a clause-by-clause comparison with compliance verdicts.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Compliance question or area of concern",
				},
				"document_id": map[string]interface{}{
					"type":        "string",
					"description": "Document to check; defaults to the active document",
				},
				"model": map[string]interface{}{
					"type":        "string",
					"description": "Model identifier override for this check",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.CheckCompliance)

	// 5. document_info - Describe the active document
	server.AddTool(mcp.Tool{
		Name:        "document_info",
		Description: "Get information about the active document: id, name, chunk count, and whether it is semantically indexed.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.DocumentInfo)

	// 6. delete_document - Remove the active document
	server.AddTool(mcp.Tool{
		Name:        "delete_document",
		Description: "Delete the active document, its conversation history, and its index entries.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document_id": map[string]interface{}{
					"type":        "string",
					"description": "Document to delete; defaults to the active document",
				},
			},
		},
	}, handlers.DeleteDocument)

	return handlers
}
