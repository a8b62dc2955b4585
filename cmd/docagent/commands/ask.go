// ABOUTME: CLI command to ask questions about a document
// ABOUTME: Supports one-shot questions and an interactive session with history
package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	askFile        string
	askModel       string
	askInteractive bool
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a question about a document",
		Long: `Ask a natural-language question about a document.

The document is uploaded for this session and the answer is grounded in
retrieved passages. Interactive mode keeps the conversation going, so
follow-up questions see earlier exchanges.

Examples:
  docagent ask "What is the late fee?" --file lease.txt
  docagent ask --file lease.txt --interactive
  docagent ask "Summarize payment terms" --file lease.txt --model llama3.2`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().StringVar(&askFile, "file", "", "Document to ask about (required)")
	cmd.Flags().StringVar(&askModel, "model", "", "Model identifier override")
	cmd.Flags().BoolVarP(&askInteractive, "interactive", "i", false, "Interactive question session")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	if !askInteractive && len(args) == 0 {
		return fmt.Errorf("provide a question or use --interactive")
	}

	name, text, err := readDocumentFile(askFile)
	if err != nil {
		return err
	}

	agent, _, err := buildAgent()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	doc, err := agent.Ingest(ctx, name, text)
	if err != nil {
		return fmt.Errorf("uploading document: %w", err)
	}
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s as %s (%d chunks, indexed=%v)\n",
			doc.Name, doc.DocumentID, len(doc.Chunks), doc.Indexed)
	}

	ask := func(question string) error {
		result, err := agent.Query(ctx, doc.DocumentID, question, askModel)
		if err != nil {
			return err
		}

		if outputFormat == "json" {
			return printJSON(cmd, map[string]interface{}{
				"question":      question,
				"answer":        result.Answer,
				"strategy":      string(result.Context.Strategy),
				"passages_used": len(result.Context.Chunks),
			})
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Answer)
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "\n[retrieval: %s, %d passages]\n",
				result.Context.Strategy, len(result.Context.Chunks))
		}
		return nil
	}

	if !askInteractive {
		return ask(args[0])
	}

	// Interactive loop; empty line or EOF ends the session
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Asking about %s. Empty line to exit.\n", doc.Name)
	}
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(cmd.OutOrStdout(), "> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			break
		}
		if err := ask(question); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return scanner.Err()
}
