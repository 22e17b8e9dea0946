// ABOUTME: Retrieval strategies: semantic top-k and lexical window
// ABOUTME: Both variants implement one Retriever interface selected by corpus type
package retriever

import (
	"context"
	"fmt"
	"strings"

	"github.com/nlp26/RAG/internal/llm"
	"github.com/nlp26/RAG/internal/models"
	"github.com/nlp26/RAG/internal/storage"
)

// Defaults for the two strategies
const (
	DefaultTopK   = 5
	DefaultWindow = 700
)

// Retriever returns the most relevant chunks for a query, most relevant
// first. An empty corpus yields an empty result, not an error.
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]models.Chunk, error)
}

// Semantic retrieves by embedding similarity against a persisted corpus.
// The query is embedded with the same embedder the corpus was ingested
// with; dimensions must match.
type Semantic struct {
	store    *storage.Store
	embedder llm.Embedder
	corpus   string
	topK     int
}

// NewSemantic creates a semantic retriever. topK <= 0 uses DefaultTopK.
func NewSemantic(store *storage.Store, embedder llm.Embedder, corpus string, topK int) *Semantic {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Semantic{store: store, embedder: embedder, corpus: corpus, topK: topK}
}

// Retrieve embeds the query and returns up to topK chunks by descending
// cosine similarity. Fewer chunks than topK returns all of them.
func (r *Semantic) Retrieve(ctx context.Context, query string) ([]models.Chunk, error) {
	queryVector, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	results, err := r.store.SearchSimilar(r.corpus, queryVector, r.topK)
	if err != nil {
		return nil, err
	}

	chunks := make([]models.Chunk, len(results))
	for i, res := range results {
		chunks[i] = res.Chunk
	}
	return chunks, nil
}

// Lexical retrieves a character window around the first occurrence of the
// query's first token. No ingestion or embedding is required.
type Lexical struct {
	text   string
	window int
}

// NewLexical creates a lexical retriever over flat document text.
// window <= 0 uses DefaultWindow.
func NewLexical(text string, window int) *Lexical {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Lexical{text: text, window: window}
}

// Window returns the [start, end) bounds of the retrieval window for a
// query. An anchor that never occurs falls back to the document start.
func (r *Lexical) Window(query string) (start, end int) {
	pos := 0
	if tokens := strings.Fields(strings.ToLower(query)); len(tokens) > 0 {
		if found := strings.Index(strings.ToLower(r.text), tokens[0]); found >= 0 {
			pos = found
		}
	}

	start = pos - r.window/2
	if start < 0 {
		start = 0
	}
	end = pos + r.window/2
	if end > len(r.text) {
		end = len(r.text)
	}
	return start, end
}

// Retrieve returns the window as a single chunk. An empty document
// yields an empty result.
func (r *Lexical) Retrieve(_ context.Context, query string) ([]models.Chunk, error) {
	if r.text == "" {
		return nil, nil
	}
	start, end := r.Window(query)
	return []models.Chunk{{ID: 0, Text: r.text[start:end]}}, nil
}
