// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Defines verbose/quiet/format flags shared by all subcommands
package commands

import (
	"github.com/spf13/cobra"
)

// Global flags shared by all commands
var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
██████╗  ██████╗  ██████╗ █████╗  ██████╗ ███████╗███╗   ██╗████████╗
██╔══██╗██╔═══██╗██╔════╝██╔══██╗██╔════╝ ██╔════╝████╗  ██║╚══██╔══╝
██║  ██║██║   ██║██║     ███████║██║  ███╗█████╗  ██╔██╗ ██║   ██║
██║  ██║██║   ██║██║     ██╔══██║██║   ██║██╔══╝  ██║╚██╗██║   ██║
██████╔╝╚██████╔╝╚██████╗██║  ██║╚██████╔╝███████╗██║ ╚████║   ██║
╚═════╝  ╚═════╝  ╚═════╝╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚═╝  ╚═══╝   ╚═╝
`

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docagent",
		Short: "Ask questions about your documents using a local language model",
		Long: banner + `
Document agent: upload a contract or other document, then ask
natural-language questions answered from retrieved passages. Supports a
policy corpus for clause-by-clause compliance checks against company
policies.

Requires the vector index sidecar for semantic search (falls back to
lexical retrieval without it) and an OpenAI-compatible generation
endpoint (OPENAI_API_KEY, or DOCAGENT_LLM_BASE_URL for a local model).`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format (auto, json, table)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewUploadCmd())
	cmd.AddCommand(NewAskCmd())
	cmd.AddCommand(NewComplianceCmd())
	cmd.AddCommand(NewInfoCmd())
	cmd.AddCommand(NewDeleteCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
