// ABOUTME: CLI command to remove documents from the vector index
// ABOUTME: Deletes one document's chunks or clears every collection
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteAll bool

// NewDeleteCmd creates the delete command
func NewDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [document-id]",
		Short: "Delete an indexed document",
		Long: `Delete a document's chunks from the vector index.

With --all, clears the entire index including the policy corpus.

Examples:
  docagent delete doc_5f3a1c2e
  docagent delete --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().BoolVar(&deleteAll, "all", false, "Clear the entire index")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	index := buildIndexClient()
	ctx := cmd.Context()

	if deleteAll {
		if len(args) > 0 {
			return fmt.Errorf("--all does not take a document id")
		}
		if err := index.ClearAll(ctx); err != nil {
			return fmt.Errorf("clearing index: %w", err)
		}
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Cleared vector index")
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("provide a document id or use --all")
	}

	if err := index.DeleteDocument(ctx, args[0]); err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted %s\n", args[0])
	}
	return nil
}
