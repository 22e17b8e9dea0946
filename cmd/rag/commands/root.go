// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Defines the rag command tree: ingest, ask, chat, corpora, version
package commands

import (
	"github.com/spf13/cobra"
)

var (
	outputFormat string
	quiet        bool
)

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rag",
		Short: "Retrieval-augmented question answering over document corpora",
		Long: `rag grounds language-model answers in retrieved passages from a
document corpus.

Ingest a transcript CSV once to build a persistent semantic corpus, then
ask questions against it. PDFs are answered directly with a lexical
retrieval window and need no ingestion.

Examples:
  rag ingest --csv TNG.csv --corpus tng
  rag ask --corpus tng "What did Picard say about the Borg?"
  rag ask --pdf manual.pdf "How do I reset the device?"
  rag chat --corpus tng`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "Output format (text or json)")
	cmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress non-essential output")

	cmd.AddCommand(NewIngestCmd())
	cmd.AddCommand(NewAskCmd())
	cmd.AddCommand(NewChatCmd())
	cmd.AddCommand(NewCorporaCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
