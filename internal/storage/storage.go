// ABOUTME: Corpus store orchestration over the SQLite persistence layer
// ABOUTME: Embeds chunks at ingestion and commits a corpus atomically
package storage

import (
	"context"
	"fmt"

	"github.com/nlp26/RAG/internal/llm"
	"github.com/nlp26/RAG/internal/models"
	"github.com/nlp26/RAG/internal/storage/sqlite"
)

// Store manages persistent corpora. It is read-only after ingestion
// completes; queries never write, so concurrent reads need no locking.
type Store struct {
	db      *sqlite.DB
	corpora *sqlite.CorpusStore
}

// Open opens the corpus database at path, or the default XDG location
// when path is empty.
func Open(path string) (*Store, error) {
	if path == "" {
		path = sqlite.DefaultDBPath()
	}
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, corpora: sqlite.NewCorpusStore(db)}, nil
}

// OpenInMemory creates an in-memory store (for testing)
func OpenInMemory() (*Store, error) {
	db, err := sqlite.OpenInMemory()
	if err != nil {
		return nil, err
	}
	return &Store{db: db, corpora: sqlite.NewCorpusStore(db)}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// IngestChunks embeds every chunk and commits the corpus atomically.
// Nothing is persisted when any embedding fails, so a corpus either
// exists completely or not at all.
func (s *Store) IngestChunks(ctx context.Context, name string, chunks []models.Chunk, embedder llm.Embedder) (*models.CorpusInfo, error) {
	if len(chunks) == 0 {
		return nil, fmt.Errorf("ingestion produced no chunks for corpus %q", name)
	}

	vectors := make([][]float64, len(chunks))
	for i, chunk := range chunks {
		vector, err := embedder.Embed(ctx, chunk.Text)
		if err != nil {
			return nil, fmt.Errorf("failed to embed chunk %d: %w", chunk.ID, err)
		}
		vectors[i] = vector
	}

	if err := s.corpora.SaveCorpus(name, embedder.Dimension(), chunks, vectors); err != nil {
		return nil, err
	}

	return s.corpora.GetCorpus(name)
}

// SearchSimilar runs cosine similarity search over a persisted corpus
func (s *Store) SearchSimilar(name string, queryVector []float64, maxResults int) ([]models.VectorSearchResult, error) {
	return s.corpora.SearchSimilar(name, queryVector, maxResults)
}

// GetCorpus returns corpus info, or nil when the corpus does not exist
func (s *Store) GetCorpus(name string) (*models.CorpusInfo, error) {
	return s.corpora.GetCorpus(name)
}

// ListCorpora returns info for every persisted corpus
func (s *Store) ListCorpora() ([]models.CorpusInfo, error) {
	return s.corpora.ListCorpora()
}

// LoadChunks returns all chunks of a corpus in ordinal order
func (s *Store) LoadChunks(name string) ([]models.Chunk, error) {
	return s.corpora.LoadChunks(name)
}

// DeleteCorpus removes a corpus and everything stored under it
func (s *Store) DeleteCorpus(name string) error {
	return s.corpora.DeleteCorpus(name)
}
