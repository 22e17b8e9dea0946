// ABOUTME: Tests for store-level ingestion orchestration
// ABOUTME: Uses a deterministic fake embedder, no network access
package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/nlp26/RAG/internal/models"
)

// fakeEmbedder produces deterministic 3D vectors from text length
type fakeEmbedder struct {
	failOn string
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	if f.failOn != "" && text == f.failOn {
		return nil, errors.New("embedder unavailable")
	}
	n := float64(len(text))
	return []float64{n, n / 2, 1}, nil
}

func (f *fakeEmbedder) Dimension() int { return 3 }

func testChunks() []models.Chunk {
	return []models.Chunk{
		{ID: 0, Text: "Picard: Make it so. [Episode: 1, Scene: 3]"},
		{ID: 1, Text: "Data: Intriguing. [Episode: 1, Scene: 4]"},
	}
}

func TestIngestChunks(t *testing.T) {
	store, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = store.Close() }()

	info, err := store.IngestChunks(context.Background(), "tng", testChunks(), &fakeEmbedder{})
	if err != nil {
		t.Fatalf("IngestChunks() error = %v", err)
	}
	if info.ChunkCount != 2 {
		t.Errorf("ChunkCount = %d, want 2", info.ChunkCount)
	}
	if info.Dimension != 3 {
		t.Errorf("Dimension = %d, want 3", info.Dimension)
	}
}

func TestIngestChunksEmptyFails(t *testing.T) {
	store, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = store.Close() }()

	if _, err := store.IngestChunks(context.Background(), "tng", nil, &fakeEmbedder{}); err == nil {
		t.Error("IngestChunks() with no chunks = nil error, want error")
	}
}

func TestIngestChunksEmbedFailureCommitsNothing(t *testing.T) {
	store, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = store.Close() }()

	chunks := testChunks()
	embedder := &fakeEmbedder{failOn: chunks[1].Text}

	if _, err := store.IngestChunks(context.Background(), "tng", chunks, embedder); err == nil {
		t.Fatal("IngestChunks() = nil error, want embed failure")
	}

	info, err := store.GetCorpus("tng")
	if err != nil {
		t.Fatalf("GetCorpus() error = %v", err)
	}
	if info != nil {
		t.Errorf("corpus committed despite failure: %+v", info)
	}
}

func TestLoadChunksOrder(t *testing.T) {
	store, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = store.Close() }()

	if _, err := store.IngestChunks(context.Background(), "tng", testChunks(), &fakeEmbedder{}); err != nil {
		t.Fatalf("IngestChunks() error = %v", err)
	}

	loaded, err := store.LoadChunks("tng")
	if err != nil {
		t.Fatalf("LoadChunks() error = %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded length = %d, want 2", len(loaded))
	}
	for i, chunk := range loaded {
		if chunk.ID != i {
			t.Errorf("chunk %d ID = %d, want %d", i, chunk.ID, i)
		}
	}
}
