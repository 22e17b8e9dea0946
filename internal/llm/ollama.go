// ABOUTME: Native Ollama HTTP backend for completions, chat, and embeddings
// ABOUTME: Sends {model, prompt, stream:false} payloads and surfaces raw error bodies
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nlp26/RAG/internal/util"
)

// DefaultOllamaBaseURL is the standard local Ollama endpoint
const DefaultOllamaBaseURL = "http://localhost:11434"

// OllamaClient talks to an Ollama server. A non-2xx response is returned
// as *BackendError carrying the raw body; transport failures are retried
// with exponential backoff.
type OllamaClient struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
	dimension  int
	embedModel string
}

// OllamaConfig holds configuration for the Ollama client
type OllamaConfig struct {
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
	EmbeddingModel string
	Dimension      int
}

// NewOllamaClient creates an Ollama client from config, applying defaults
// for unset fields.
func NewOllamaClient(cfg OllamaConfig) *OllamaClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultOllamaBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	retryDelay := cfg.RetryDelay
	if retryDelay == 0 {
		retryDelay = 2 * time.Second
	}
	return &OllamaClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: cfg.MaxRetries,
		retryDelay: retryDelay,
		dimension:  cfg.Dimension,
		embedModel: cfg.EmbeddingModel,
	}
}

// Complete sends a single-shot completion request to /v1/completions and
// extracts the completion text. If the expected field is absent the raw
// response body is returned verbatim so the caller always gets something
// displayable.
func (c *OllamaClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	req.Stream = false
	body, err := c.post(ctx, "/v1/completions", req)
	if err != nil {
		return "", err
	}

	var parsed struct {
		Completion string `json:"completion"`
		Choices    []struct {
			Text string `json:"text"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Completion != "" {
			return parsed.Completion, nil
		}
		if len(parsed.Choices) > 0 && parsed.Choices[0].Text != "" {
			return parsed.Choices[0].Text, nil
		}
	}

	return string(body), nil
}

// Chat sends a conversational request to /api/chat and extracts the
// assistant message content, falling back to the raw body when absent.
func (c *OllamaClient) Chat(ctx context.Context, req ChatRequest) (string, error) {
	req.Stream = false
	body, err := c.post(ctx, "/api/chat", req)
	if err != nil {
		return "", err
	}

	var parsed struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message.Content != "" {
		return parsed.Message.Content, nil
	}

	return string(body), nil
}

// Embed generates an embedding vector via /api/embeddings and validates
// its dimensionality.
func (c *OllamaClient) Embed(ctx context.Context, text string) ([]float64, error) {
	payload := struct {
		Model  string `json:"model"`
		Prompt string `json:"prompt"`
	}{Model: c.embedModel, Prompt: text}

	body, err := c.post(ctx, "/api/embeddings", payload)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Embedding []float64 `json:"embedding"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse embedding response: %w", err)
	}
	if len(parsed.Embedding) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}
	if c.dimension > 0 && len(parsed.Embedding) != c.dimension {
		return nil, &DimensionError{Want: c.dimension, Got: len(parsed.Embedding)}
	}

	return parsed.Embedding, nil
}

// Dimension returns the configured embedding dimensionality
func (c *OllamaClient) Dimension() int {
	return c.dimension
}

// post sends a JSON payload and returns the response body. Non-2xx
// statuses return *BackendError immediately (the body is the error the
// caller must see); transport errors are retried.
func (c *OllamaClient) post(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(util.CalculateBackoff(c.retryDelay, attempt)):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &BackendError{Status: resp.StatusCode, Body: string(body)}
		}

		return body, nil
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", c.maxRetries+1, lastErr)
}
