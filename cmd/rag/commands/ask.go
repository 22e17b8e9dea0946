// ABOUTME: CLI command to answer a single question against a corpus or PDF
// ABOUTME: Semantic retrieval for corpora, lexical window for PDFs
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nlp26/RAG/internal/chunker"
	"github.com/nlp26/RAG/internal/config"
	"github.com/nlp26/RAG/internal/pipeline"
	"github.com/nlp26/RAG/internal/retriever"
	"github.com/nlp26/RAG/internal/session"
)

var (
	askCorpus string
	askPDF    string
	askTopK   int
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer one question grounded in a corpus or a PDF",
		Long: `Answer a single question grounded in retrieved context.

With --corpus, the question is answered via semantic top-k retrieval
against a previously ingested corpus. With --pdf, the document text is
extracted on the fly and a lexical window around the question's first
term is used as context; no ingestion is needed. The two retrieval
paths are selected explicitly and never substituted for each other.

Examples:
  rag ask --corpus tng "What did Picard say about the Borg?"
  rag ask --pdf manual.pdf "warranty duration"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().StringVar(&askCorpus, "corpus", "", "Corpus name to retrieve from")
	cmd.Flags().StringVar(&askPDF, "pdf", "", "PDF file to answer against with lexical retrieval")
	cmd.Flags().IntVar(&askTopK, "top-k", 0, "Maximum chunks to retrieve (default from config)")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	if (askCorpus == "") == (askPDF == "") {
		return fmt.Errorf("exactly one of --corpus or --pdf is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	services, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = services.Close() }()

	var r retriever.Retriever
	if askPDF != "" {
		text, err := chunker.ExtractPDF(askPDF)
		if err != nil {
			return fmt.Errorf("ingestion failed: %w", err)
		}
		r = retriever.NewLexical(text, cfg.LexicalWindow)
	} else {
		topK := askTopK
		if topK <= 0 {
			topK = services.TopK
		}
		r = retriever.NewSemantic(services.Store, services.Embedder, askCorpus, topK)
	}

	sess := session.New(r, services.Client, false)
	result, err := sess.Ask(cmd.Context(), args[0])
	if err != nil {
		if outputFormat == "json" {
			jsonData, encErr := json.MarshalIndent(map[string]string{"error": err.Error()}, "", "  ")
			if encErr == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
			}
		}
		return err
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Answer)
	if !quiet && result.ContextPreview != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "\n(Context used: %q)\n", result.ContextPreview)
	}
	return nil
}
