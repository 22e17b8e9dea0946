// ABOUTME: Capability interfaces for completion backends and embedders
// ABOUTME: Defines the wire request/response types and structured errors
package llm

import (
	"context"
	"fmt"
)

// CompletionRequest is the single-shot completion payload. Stream is
// always false; streaming responses are not supported.
type CompletionRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// ChatMessage is one message in a conversational request
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the conversational completion payload
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

// Backend is the completion capability the pipeline depends on. Concrete
// backends (Ollama, OpenAI-compatible) and test fakes implement it.
type Backend interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Chat(ctx context.Context, req ChatRequest) (string, error)
}

// Embedder maps text to a fixed-dimension vector. The same embedder must
// be used at ingestion and query time.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	Dimension() int
}

// BackendError reports a non-success transport response from a backend.
// Error() returns the raw response body so callers can surface it
// verbatim and distinguish "got an answer" from "backend error".
type BackendError struct {
	Status int
	Body   string
}

func (e *BackendError) Error() string {
	return e.Body
}

// DimensionError reports an embedding whose dimensionality disagrees with
// what the corpus was built with. This is a configuration error; vectors
// are never truncated or padded.
type DimensionError struct {
	Want int
	Got  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("embedding dimension mismatch: expected %d, got %d", e.Want, e.Got)
}
