// ABOUTME: Corpus persistence operations for SQLite
// ABOUTME: Transactional corpus replace, chunk reload, and cosine similarity search
package sqlite

import (
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/nlp26/RAG/internal/models"
)

// CorpusStore handles corpus, chunk, and embedding persistence
type CorpusStore struct {
	db *DB
}

// NewCorpusStore creates a new CorpusStore
func NewCorpusStore(db *DB) *CorpusStore {
	return &CorpusStore{db: db}
}

// SaveCorpus persists a corpus atomically. Chunks and vectors must be
// parallel slices; every vector must match dimension. Re-ingesting an
// existing corpus name replaces it, so chunk ordinals always restart at
// zero and ingestion is deterministic.
func (s *CorpusStore) SaveCorpus(name string, dimension int, chunks []models.Chunk, vectors [][]float64) error {
	if name == "" {
		return fmt.Errorf("corpus name is required")
	}
	if len(chunks) == 0 {
		return fmt.Errorf("refusing to commit empty corpus %q", name)
	}
	if len(vectors) != len(chunks) {
		return fmt.Errorf("chunk/vector count mismatch: %d chunks, %d vectors", len(chunks), len(vectors))
	}
	for i, v := range vectors {
		if len(v) != dimension {
			return fmt.Errorf("chunk %d: invalid embedding dimension: expected %d, got %d", i, dimension, len(v))
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Replace semantics: drop any prior corpus of the same name
	if _, err := tx.Exec(`DELETE FROM corpora WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to clear existing corpus: %w", err)
	}

	createdAt := time.Now().UTC()
	if _, err := tx.Exec(`INSERT INTO corpora (name, dimension, created_at) VALUES (?, ?, ?)`,
		name, dimension, createdAt); err != nil {
		return fmt.Errorf("failed to insert corpus: %w", err)
	}

	for i, chunk := range chunks {
		metadata, err := json.Marshal(chunk.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode chunk metadata: %w", err)
		}
		if _, err := tx.Exec(`INSERT INTO chunks (corpus, id, text, metadata) VALUES (?, ?, ?, ?)`,
			name, chunk.ID, chunk.Text, string(metadata)); err != nil {
			return fmt.Errorf("failed to insert chunk %d: %w", chunk.ID, err)
		}
		if _, err := tx.Exec(`INSERT INTO embeddings (corpus, chunk_id, vector, created_at) VALUES (?, ?, ?, ?)`,
			name, chunk.ID, vectorToBlob(vectors[i]), createdAt); err != nil {
			return fmt.Errorf("failed to insert embedding %d: %w", chunk.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit corpus: %w", err)
	}
	return nil
}

// GetCorpus returns corpus info, or nil if the corpus does not exist
func (s *CorpusStore) GetCorpus(name string) (*models.CorpusInfo, error) {
	var info models.CorpusInfo
	err := s.db.QueryRow(`
		SELECT c.name, c.dimension, c.created_at,
		       (SELECT COUNT(*) FROM chunks WHERE corpus = c.name)
		FROM corpora c WHERE c.name = ?
	`, name).Scan(&info.Name, &info.Dimension, &info.CreatedAt, &info.ChunkCount)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// ListCorpora returns info for every persisted corpus
func (s *CorpusStore) ListCorpora() ([]models.CorpusInfo, error) {
	rows, err := s.db.Query(`
		SELECT c.name, c.dimension, c.created_at,
		       (SELECT COUNT(*) FROM chunks WHERE corpus = c.name)
		FROM corpora c ORDER BY c.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var corpora []models.CorpusInfo
	for rows.Next() {
		var info models.CorpusInfo
		if err := rows.Scan(&info.Name, &info.Dimension, &info.CreatedAt, &info.ChunkCount); err != nil {
			return nil, err
		}
		corpora = append(corpora, info)
	}
	return corpora, rows.Err()
}

// LoadChunks returns all chunks of a corpus in ordinal order
func (s *CorpusStore) LoadChunks(name string) ([]models.Chunk, error) {
	rows, err := s.db.Query(`SELECT id, text, metadata FROM chunks WHERE corpus = ? ORDER BY id`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []models.Chunk
	for rows.Next() {
		var (
			chunk    models.Chunk
			metadata sql.NullString
		)
		if err := rows.Scan(&chunk.ID, &chunk.Text, &metadata); err != nil {
			return nil, err
		}
		if metadata.Valid && metadata.String != "" && metadata.String != "null" {
			if err := json.Unmarshal([]byte(metadata.String), &chunk.Metadata); err != nil {
				return nil, fmt.Errorf("failed to decode chunk %d metadata: %w", chunk.ID, err)
			}
		}
		chunks = append(chunks, chunk)
	}
	return chunks, rows.Err()
}

// SearchSimilar performs cosine similarity search over a corpus and
// returns up to maxResults chunks, most similar first. An empty or
// missing corpus yields an empty result, not an error.
func (s *CorpusStore) SearchSimilar(name string, queryVector []float64, maxResults int) ([]models.VectorSearchResult, error) {
	info, err := s.GetCorpus(name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up corpus: %w", err)
	}
	if info == nil {
		return nil, nil
	}
	if len(queryVector) != info.Dimension {
		return nil, fmt.Errorf("query embedding dimension mismatch: corpus %q built with %d, got %d",
			name, info.Dimension, len(queryVector))
	}

	rows, err := s.db.Query(`
		SELECT c.id, c.text, c.metadata, e.vector
		FROM chunks c JOIN embeddings e ON e.corpus = c.corpus AND e.chunk_id = c.id
		WHERE c.corpus = ?
	`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.VectorSearchResult
	for rows.Next() {
		var (
			chunk    models.Chunk
			metadata sql.NullString
			blob     []byte
		)
		if err := rows.Scan(&chunk.ID, &chunk.Text, &metadata, &blob); err != nil {
			return nil, err
		}
		if metadata.Valid && metadata.String != "" && metadata.String != "null" {
			_ = json.Unmarshal([]byte(metadata.String), &chunk.Metadata)
		}
		results = append(results, models.VectorSearchResult{
			Chunk:           chunk,
			SimilarityScore: CosineSimilarity(queryVector, blobToVector(blob)),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Sort by similarity score (descending)
	sort.Slice(results, func(i, j int) bool {
		return results[i].SimilarityScore > results[j].SimilarityScore
	})

	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// DeleteCorpus removes a corpus and its chunks and embeddings
func (s *CorpusStore) DeleteCorpus(name string) error {
	_, err := s.db.Exec(`DELETE FROM corpora WHERE name = ?`, name)
	return err
}

// vectorToBlob converts a float64 slice to a binary blob
func vectorToBlob(vector []float64) []byte {
	blob := make([]byte, len(vector)*8)
	for i, v := range vector {
		binary.LittleEndian.PutUint64(blob[i*8:], math.Float64bits(v))
	}
	return blob
}

// blobToVector converts a binary blob to float64 slice
func blobToVector(blob []byte) []float64 {
	count := len(blob) / 8
	vector := make([]float64, count)
	for i := 0; i < count; i++ {
		bits := binary.LittleEndian.Uint64(blob[i*8:])
		vector[i] = math.Float64frombits(bits)
	}
	return vector
}

// CosineSimilarity calculates cosine similarity between two vectors
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
