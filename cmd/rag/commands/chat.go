// ABOUTME: CLI command for an interactive chat session over a corpus
// ABOUTME: One session per invocation; transcript is discarded on exit
package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nlp26/RAG/internal/config"
	"github.com/nlp26/RAG/internal/pipeline"
	"github.com/nlp26/RAG/internal/retriever"
	"github.com/nlp26/RAG/internal/session"
)

var chatCorpus string

// NewChatCmd creates the chat command
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive chat session over a corpus",
		Long: `Start an interactive chat session grounded in a corpus.

Every question retrieves fresh context; prior turns are sent to the
model so follow-up questions work. The transcript lives only for the
session and is discarded on exit.

Examples:
  rag chat --corpus tng`,
		RunE: runChat,
	}

	cmd.Flags().StringVar(&chatCorpus, "corpus", "", "Corpus name to chat against (required)")
	_ = cmd.MarkFlagRequired("corpus")

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	services, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = services.Close() }()

	info, err := services.Store.GetCorpus(chatCorpus)
	if err != nil {
		return fmt.Errorf("looking up corpus: %w", err)
	}
	if info == nil {
		return fmt.Errorf("corpus %q does not exist; run rag ingest first", chatCorpus)
	}

	r := retriever.NewSemantic(services.Store, services.Embedder, chatCorpus, services.TopK)
	sess := session.New(r, services.Client, true)

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Chatting with corpus %q (%d chunks). Empty line to exit.\n",
			info.Name, info.ChunkCount)
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(cmd.OutOrStdout(), "> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			break
		}

		result, err := sess.Ask(cmd.Context(), question)
		if err != nil {
			// Query failures are recoverable; the error turn is already
			// recorded and the session continues
			fmt.Fprintf(cmd.OutOrStdout(), "error: %v\n", err)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Answer)
	}

	return scanner.Err()
}
