// ABOUTME: CLI command to upload a document or policy into the agent's corpora
// ABOUTME: Contract uploads become the active document; policy uploads feed compliance checks
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	uploadPolicy     bool
	uploadClauseType string
	uploadRiskLevel  string
	uploadPolicyID   string
)

// NewUploadCmd creates the upload command
func NewUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a document into the vector index",
		Long: `Upload a document and index it for semantic search.

By default the file is indexed as a contract document. With --policy it
joins the policy corpus used by the compliance command instead.

Examples:
  docagent upload lease.txt
  docagent upload payment-policy.md --policy --clause-type payment --risk-level high
  docagent upload nda.txt --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runUpload,
	}

	cmd.Flags().BoolVar(&uploadPolicy, "policy", false, "Index into the policy corpus")
	cmd.Flags().StringVar(&uploadClauseType, "clause-type", "", "Clause category the policy governs (with --policy)")
	cmd.Flags().StringVar(&uploadRiskLevel, "risk-level", "", "Risk level tag: low, medium, high (with --policy)")
	cmd.Flags().StringVar(&uploadPolicyID, "policy-id", "", "Stable policy identifier (with --policy)")

	return cmd
}

func runUpload(cmd *cobra.Command, args []string) error {
	name, text, err := readDocumentFile(args[0])
	if err != nil {
		return err
	}

	agent, _, err := buildAgent()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	if uploadPolicy {
		count, err := agent.IngestPolicy(ctx, name, text, uploadClauseType, uploadRiskLevel, uploadPolicyID)
		if err != nil {
			return fmt.Errorf("uploading policy: %w", err)
		}

		if outputFormat == "json" {
			return printJSON(cmd, map[string]interface{}{
				"name":        name,
				"chunk_count": count,
				"corpus":      "policy",
			})
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Indexed policy %s (%d chunks)\n", name, count)
		}
		return nil
	}

	doc, err := agent.Ingest(ctx, name, text)
	if err != nil {
		return fmt.Errorf("uploading document: %w", err)
	}

	if outputFormat == "json" {
		return printJSON(cmd, map[string]interface{}{
			"document_id": doc.DocumentID,
			"name":        doc.Name,
			"chunk_count": len(doc.Chunks),
			"indexed":     doc.Indexed,
		})
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Uploaded %s as %s (%d chunks)\n", doc.Name, doc.DocumentID, len(doc.Chunks))
	}
	if !doc.Indexed {
		fmt.Fprintln(os.Stderr, "Warning: vector index unavailable; only lexical retrieval will work for this upload")
	}
	return nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
	return nil
}
