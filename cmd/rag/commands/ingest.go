// ABOUTME: CLI command to ingest a transcript CSV into a persistent corpus
// ABOUTME: Chunks records, embeds them, and commits atomically under a corpus name
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nlp26/RAG/internal/chunker"
	"github.com/nlp26/RAG/internal/config"
	"github.com/nlp26/RAG/internal/models"
	"github.com/nlp26/RAG/internal/pipeline"
)

var (
	ingestCSVPath string
	ingestPDFPath string
	ingestCorpus  string
)

// NewIngestCmd creates the ingest command
func NewIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingest a transcript CSV or a PDF into a named corpus",
		Long: `Ingest a document into a persistent semantic corpus.

With --csv, each transcript row becomes one retrievable chunk. With
--pdf, each page with extractable text becomes one chunk. Chunks are
embedded and stored under the corpus name; re-ingesting an existing
corpus name replaces it.

Examples:
  rag ingest --csv TNG.csv --corpus tng
  rag ingest --pdf manual.pdf --corpus manual`,
		RunE: runIngest,
	}

	cmd.Flags().StringVar(&ingestCSVPath, "csv", "", "Path to a transcript CSV")
	cmd.Flags().StringVar(&ingestPDFPath, "pdf", "", "Path to a PDF document")
	cmd.Flags().StringVar(&ingestCorpus, "corpus", "", "Corpus name to store chunks under (required)")
	_ = cmd.MarkFlagRequired("corpus")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	if (ingestCSVPath == "") == (ingestPDFPath == "") {
		return fmt.Errorf("exactly one of --csv or --pdf is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var chunks []models.Chunk
	if ingestCSVPath != "" {
		records, err := chunker.ReadTranscriptFile(ingestCSVPath)
		if err != nil {
			return fmt.Errorf("reading transcript: %w", err)
		}
		chunks, err = chunker.ChunkRecords(records)
		if err != nil {
			return fmt.Errorf("ingestion failed: %w", err)
		}
	} else {
		pages, err := chunker.ExtractPDFPages(ingestPDFPath)
		if err != nil {
			return fmt.Errorf("reading PDF: %w", err)
		}
		chunks, err = chunker.ChunkPages(pages)
		if err != nil {
			return fmt.Errorf("ingestion failed: %w", err)
		}
	}

	services, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = services.Close() }()

	info, err := services.Store.IngestChunks(cmd.Context(), ingestCorpus, chunks, services.Embedder)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Ingested corpus %q: %d chunks, dimension %d\n",
			info.Name, info.ChunkCount, info.Dimension)
	}
	return nil
}
