// ABOUTME: OpenAI-compatible backend for chat completions and embeddings
// ABOUTME: Works against api.openai.com or Ollama's OpenAI-compatible endpoint
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/nlp26/RAG/internal/util"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultEmbeddingModel is the default model for embeddings
	DefaultEmbeddingModel = openai.SmallEmbedding3
	// DefaultEmbeddingDimension matches text-embedding-3-small
	DefaultEmbeddingDimension = 1536
)

// OpenAIConfig holds configuration for the OpenAI-compatible client
type OpenAIConfig struct {
	APIKey         string
	BaseURL        string
	EmbeddingModel openai.EmbeddingModel
	Dimension      int
	MaxRetries     int
	RetryDelay     time.Duration
}

// OpenAIClient wraps the OpenAI API client with retry logic
type OpenAIClient struct {
	client         *openai.Client
	embeddingModel openai.EmbeddingModel
	dimension      int
	maxRetries     int
	retryDelay     time.Duration
}

// NewOpenAIClient creates a new OpenAI-compatible client
func NewOpenAIClient(cfg OpenAIConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	embeddingModel := cfg.EmbeddingModel
	if embeddingModel == "" {
		embeddingModel = DefaultEmbeddingModel
	}
	dimension := cfg.Dimension
	if dimension == 0 {
		dimension = DefaultEmbeddingDimension
	}
	retryDelay := cfg.RetryDelay
	if retryDelay == 0 {
		retryDelay = 2 * time.Second
	}

	return &OpenAIClient{
		client:         openai.NewClientWithConfig(clientCfg),
		embeddingModel: embeddingModel,
		dimension:      dimension,
		maxRetries:     cfg.MaxRetries,
		retryDelay:     retryDelay,
	}, nil
}

// Complete satisfies Backend by sending the prompt as a single user
// message to the chat completions endpoint.
func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	return c.Chat(ctx, ChatRequest{
		Model:    req.Model,
		Messages: []ChatMessage{{Role: RoleUser, Content: req.Prompt}},
	})
}

// Chat sends a conversational request and returns the first choice content
func (c *OpenAIClient) Chat(ctx context.Context, req ChatRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(util.CalculateBackoff(c.retryDelay, attempt)):
			}
		}

		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    req.Model,
			Messages: messages,
		})
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("attempt %d: no completion choices returned", attempt+1)
			continue
		}

		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("chat completion failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

// Embed generates an embedding vector and validates its dimensionality
func (c *OpenAIClient) Embed(ctx context.Context, text string) ([]float64, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(util.CalculateBackoff(c.retryDelay, attempt)):
			}
		}

		resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
			Input: []string{text},
			Model: c.embeddingModel,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}
		if len(resp.Data) == 0 {
			lastErr = fmt.Errorf("attempt %d: no embeddings returned", attempt+1)
			continue
		}

		// Convert []float32 to []float64
		embedding32 := resp.Data[0].Embedding
		embedding64 := make([]float64, len(embedding32))
		for i, v := range embedding32 {
			embedding64[i] = float64(v)
		}

		if len(embedding64) != c.dimension {
			return nil, &DimensionError{Want: c.dimension, Got: len(embedding64)}
		}

		return embedding64, nil
	}

	return nil, fmt.Errorf("failed to generate embedding after %d attempts: %w", c.maxRetries+1, lastErr)
}

// Dimension returns the configured embedding dimensionality
func (c *OpenAIClient) Dimension() int {
	return c.dimension
}
