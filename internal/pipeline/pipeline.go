// ABOUTME: Wires the configured backend, embedder, and store into services
// ABOUTME: Shared by the CLI and the MCP server entrypoints
package pipeline

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nlp26/RAG/internal/config"
	"github.com/nlp26/RAG/internal/llm"
	"github.com/nlp26/RAG/internal/storage"
)

// Services holds the wired pipeline collaborators for one process
type Services struct {
	Store    *storage.Store
	Embedder llm.Embedder
	Client   *llm.Client
	TopK     int
}

// New wires services from configuration. The embedder prefers the
// OpenAI-compatible client when an API key is configured, since the
// default Ollama install serves no embedding model.
func New(cfg *config.Config) (*Services, error) {
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus store: %w", err)
	}

	var embedder llm.Embedder
	var backend llm.Backend

	ollama := llm.NewOllamaClient(llm.OllamaConfig{
		BaseURL:        cfg.OllamaBaseURL,
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
		EmbeddingModel: cfg.EmbeddingModel,
		Dimension:      cfg.VectorDimension,
	})

	if cfg.OpenAIKey != "" {
		oa, err := llm.NewOpenAIClient(llm.OpenAIConfig{
			APIKey:         cfg.OpenAIKey,
			BaseURL:        cfg.OpenAIBaseURL,
			EmbeddingModel: openai.EmbeddingModel(cfg.EmbeddingModel),
			Dimension:      cfg.VectorDimension,
			MaxRetries:     cfg.MaxRetries,
			RetryDelay:     cfg.RetryDelay,
		})
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		embedder = oa
		if cfg.Backend == config.BackendOpenAI {
			backend = oa
		}
	} else {
		embedder = ollama
	}

	if backend == nil {
		backend = ollama
	}

	return &Services{
		Store:    store,
		Embedder: embedder,
		Client:   llm.NewClient(backend, cfg.ChatModel),
		TopK:     cfg.TopK,
	}, nil
}

// Close releases held resources
func (s *Services) Close() error {
	return s.Store.Close()
}
