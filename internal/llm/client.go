// ABOUTME: Client binds a backend and model into the ask(question, context) contract
// ABOUTME: Single-shot document prompts and conversational persona mode
package llm

import "context"

// Client answers questions against assembled context using a backend
type Client struct {
	backend Backend
	model   string
}

// NewClient creates a client for the given backend and model
func NewClient(backend Backend, model string) *Client {
	return &Client{backend: backend, model: model}
}

// Ask sends the single-shot document prompt and returns the answer text
func (c *Client) Ask(ctx context.Context, question, contextText string) (string, error) {
	return c.backend.Complete(ctx, CompletionRequest{
		Model:  c.model,
		Prompt: BuildPrompt(contextText, question),
	})
}

// AskConversational sends the persona system message, prior history, and
// the current context+question pair, and returns the answer text.
func (c *Client) AskConversational(ctx context.Context, question, contextText string, history []ChatMessage) (string, error) {
	return c.backend.Chat(ctx, ChatRequest{
		Model:    c.model,
		Messages: BuildChatMessages(contextText, question, history),
	})
}
