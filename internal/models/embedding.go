// ABOUTME: Embedding models for vector storage and semantic search
// ABOUTME: Defines Embedding and VectorSearchResult structures
package models

import "time"

// Embedding represents a stored embedding vector for a corpus chunk
type Embedding struct {
	Corpus    string    `json:"corpus"`
	ChunkID   int       `json:"chunk_id"`
	Vector    []float64 `json:"vector"`
	CreatedAt time.Time `json:"created_at"`
}

// VectorSearchResult represents a search result with similarity score
type VectorSearchResult struct {
	Chunk           Chunk   `json:"chunk"`
	SimilarityScore float64 `json:"similarity_score"`
}

// CorpusInfo summarizes one persisted corpus
type CorpusInfo struct {
	Name       string    `json:"name"`
	Dimension  int       `json:"dimension"`
	ChunkCount int       `json:"chunk_count"`
	CreatedAt  time.Time `json:"created_at"`
}
