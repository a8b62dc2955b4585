// ABOUTME: CLI command to check a contract against the policy corpus
// ABOUTME: Produces a clause-by-clause comparison with compliance verdicts
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	complianceFile     string
	compliancePolicies []string
	complianceModel    string
)

// NewComplianceCmd creates the compliance command
func NewComplianceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compliance <question>",
		Short: "Check a contract against company policies",
		Long: `Check a contract against the policy corpus.

Retrieves matching clauses from both the contract and the policy corpus
and asks the model for a clause-by-clause comparison with COMPLIANT /
NON-COMPLIANT / NOT ADDRESSED verdicts.

Policies already uploaded with 'docagent upload --policy' are used; the
--with-policy flag adds more for this session.

Examples:
  docagent compliance "Are the payment terms compliant?" --file contract.txt
  docagent compliance "Check termination clauses" --file contract.txt --with-policy hr-policy.md`,
		Args: cobra.ExactArgs(1),
		RunE: runCompliance,
	}

	cmd.Flags().StringVar(&complianceFile, "file", "", "Contract document to check (required)")
	cmd.Flags().StringSliceVar(&compliancePolicies, "with-policy", []string{}, "Additional policy files to index first")
	cmd.Flags().StringVar(&complianceModel, "model", "", "Model identifier override")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runCompliance(cmd *cobra.Command, args []string) error {
	agent, _, err := buildAgent()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	for _, path := range compliancePolicies {
		name, text, err := readDocumentFile(path)
		if err != nil {
			return fmt.Errorf("policy %s: %w", path, err)
		}
		count, err := agent.IngestPolicy(ctx, name, text, "", "", "")
		if err != nil {
			return fmt.Errorf("indexing policy %s: %w", path, err)
		}
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "Indexed policy %s (%d chunks)\n", name, count)
		}
	}

	name, text, err := readDocumentFile(complianceFile)
	if err != nil {
		return err
	}

	doc, err := agent.Ingest(ctx, name, text)
	if err != nil {
		return fmt.Errorf("uploading contract: %w", err)
	}

	result, err := agent.QueryPolicyAware(ctx, doc.DocumentID, args[0], complianceModel)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		return printJSON(cmd, map[string]interface{}{
			"question":         args[0],
			"answer":           result.Answer,
			"contract_clauses": len(result.ContractContext.Chunks),
			"policy_clauses":   len(result.PolicyContext),
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Answer)
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "\n[%d contract clauses, %d policy clauses compared]\n",
			len(result.ContractContext.Chunks), len(result.PolicyContext))
	}
	if len(result.PolicyContext) == 0 && !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "Note: no policies matched; upload some with 'docagent upload --policy'")
	}
	return nil
}
