// ABOUTME: PromptBuilder assembles generation prompts from context, history, and the question
// ABOUTME: Pure function of its inputs plus the current date; no hidden state
package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/harper/docagent-standalone/internal/models"
)

const singleCorpusPreamble = `You are a document analysis assistant. Answer the user's question using ONLY the document context below. If the context does not contain the answer, say so plainly instead of guessing. Quote exact figures, dates, and clause language where relevant.`

const policyAwarePreamble = `You are a contract compliance analyst. Compare each relevant contract clause below against the company policies provided. Respond with a markdown table with one row per policy point: | Policy | Contract Position | Verdict | Notes |. The Verdict column must be one of COMPLIANT, NON-COMPLIANT, or NOT ADDRESSED. After the table, summarize the highest-risk findings.`

// PromptBuilder deterministically concatenates prompt sections. The only
// call-time input beyond the arguments is the current date, computed fresh
// on every build.
type PromptBuilder struct{}

// NewPromptBuilder creates a PromptBuilder
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Build assembles a single-corpus prompt: preamble, date facts, retrieved
// context, conversation history (omitted entirely when empty), and the
// current question, in that fixed order.
func (pb *PromptBuilder) Build(chunks []string, history []models.Exchange, userMessage string) string {
	var sections []string

	sections = append(sections, singleCorpusPreamble)
	sections = append(sections, dateFacts())

	if len(chunks) > 0 {
		sections = append(sections, "DOCUMENT CONTEXT:\n"+strings.Join(chunks, "\n\n"))
	} else {
		sections = append(sections, "DOCUMENT CONTEXT:\n(no relevant passages were retrieved)")
	}

	if historySection := formatHistory(history); historySection != "" {
		sections = append(sections, historySection)
	}

	sections = append(sections, "CURRENT QUESTION:\n"+userMessage)

	return strings.Join(sections, "\n\n")
}

// BuildPolicyAware assembles the dual-corpus comparison prompt with labeled
// contract and policy blocks.
func (pb *PromptBuilder) BuildPolicyAware(contractChunks []string, policyChunks []models.PolicyChunk, history []models.Exchange, userMessage string) string {
	var sections []string

	sections = append(sections, policyAwarePreamble)
	sections = append(sections, dateFacts())

	var contract strings.Builder
	contract.WriteString("CONTRACT CLAUSES:")
	if len(contractChunks) == 0 {
		contract.WriteString("\n(no relevant contract passages were retrieved)")
	}
	for i, chunk := range contractChunks {
		fmt.Fprintf(&contract, "\n\nContract Clause %d:\n%s", i+1, chunk)
	}
	sections = append(sections, contract.String())

	var policy strings.Builder
	policy.WriteString("COMPANY POLICIES:")
	if len(policyChunks) == 0 {
		policy.WriteString("\n(no policy passages were retrieved; assess the contract clauses on their own)")
	}
	for i, pc := range policyChunks {
		label := fmt.Sprintf("Company Policy %d", i+1)
		var tags []string
		if pc.ClauseType != "" {
			tags = append(tags, "clause: "+pc.ClauseType)
		}
		if pc.RiskLevel != "" {
			tags = append(tags, "risk: "+pc.RiskLevel)
		}
		if len(tags) > 0 {
			label += " (" + strings.Join(tags, ", ") + ")"
		}
		fmt.Fprintf(&policy, "\n\n%s:\n%s", label, pc.Text)
	}
	sections = append(sections, policy.String())

	if historySection := formatHistory(history); historySection != "" {
		sections = append(sections, historySection)
	}

	sections = append(sections, "CURRENT QUESTION:\n"+userMessage)

	return strings.Join(sections, "\n\n")
}

// dateFacts renders the current date, computed at call time so long-running
// servers never serve a stale "today".
func dateFacts() string {
	now := time.Now()
	return fmt.Sprintf("Today's date is %s.", now.Format("Monday, January 2, 2006"))
}

// formatHistory renders the conversation window as alternating User/Assistant
// lines. Returns "" when there is no history so the section disappears rather
// than appearing empty.
func formatHistory(history []models.Exchange) string {
	if len(history) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("CONVERSATION SO FAR:")
	for _, ex := range history {
		fmt.Fprintf(&sb, "\nUser: %s", ex.UserMessage)
		fmt.Fprintf(&sb, "\nAssistant: %s", ex.Answer)
	}
	return sb.String()
}
