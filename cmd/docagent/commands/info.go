// ABOUTME: CLI command to inspect documents held by the vector index
// ABOUTME: Lists all indexed documents or shows one document's details
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info command
func NewInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [document-id]",
		Short: "Show indexed documents",
		Long: `Show documents held by the vector index.

Without arguments, lists every indexed document (contracts and
policies). With a document id, shows that document's details.

Examples:
  docagent info
  docagent info doc_5f3a1c2e
  docagent info --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInfo,
	}

	return cmd
}

func runInfo(cmd *cobra.Command, args []string) error {
	index := buildIndexClient()
	ctx := cmd.Context()

	if len(args) == 1 {
		info, err := index.GetDocumentInfo(ctx, args[0])
		if err != nil {
			return fmt.Errorf("getting document info: %w", err)
		}

		if outputFormat == "json" {
			return printJSON(cmd, info)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Document: %s\n", info.DocumentID)
		fmt.Fprintf(cmd.OutOrStdout(), "Name:     %s\n", info.DocumentName)
		fmt.Fprintf(cmd.OutOrStdout(), "Chunks:   %d\n", info.ChunkCount)
		if info.DocumentType != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Corpus:   %s\n", info.DocumentType)
		}
		return nil
	}

	docs, err := index.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}

	if len(docs) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No documents indexed")
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	// Table format
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "NAME\tCORPUS\tCHUNKS\tDOCUMENT ID\n")
	fmt.Fprintf(w, "----\t------\t------\t-----------\n")
	for _, doc := range docs {
		corpus := doc.DocumentType
		if corpus == "" {
			corpus = "contract"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			truncate(doc.DocumentName, 30),
			corpus,
			doc.ChunkCount,
			truncate(doc.DocumentID, 25))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d document(s)\n", len(docs))
	}
	return nil
}
