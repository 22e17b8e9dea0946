// ABOUTME: CLI command to list persisted corpora
// ABOUTME: Shows name, chunk count, dimension, and creation time
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nlp26/RAG/internal/config"
	"github.com/nlp26/RAG/internal/storage"
)

// NewCorporaCmd creates the corpora command
func NewCorporaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpora",
		Short: "List persisted corpora",
		Long: `List every persisted corpus with its chunk count and embedding
dimension.

Examples:
  rag corpora
  rag corpora --format json`,
		RunE: runCorpora,
	}

	return cmd
}

func runCorpora(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening corpus store: %w", err)
	}
	defer func() { _ = store.Close() }()

	corpora, err := store.ListCorpora()
	if err != nil {
		return fmt.Errorf("listing corpora: %w", err)
	}

	if len(corpora) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No corpora ingested yet.")
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(corpora, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCHUNKS\tDIMENSION\tCREATED")
	for _, info := range corpora {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
			info.Name, info.ChunkCount, info.Dimension, info.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
