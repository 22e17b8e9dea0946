// ABOUTME: Prompt templates binding retrieved context to the question
// ABOUTME: Single-shot document prompt and conversational persona messages
package llm

import "fmt"

// SystemPersona is the fixed system instruction for conversational mode.
const SystemPersona = "You are a Star Trek TNG computer. Respond as a Federation AI. Reference episodes and scenes as possible."

// Chat roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// BuildPrompt embeds context and question into the single-shot template.
func BuildPrompt(contextText, question string) string {
	return fmt.Sprintf("Document:\n%s\n\nQuestion: %s\n\nAnswer:", contextText, question)
}

// BuildChatMessages builds the conversational message list: the persona
// system message, prior history, then the current context+question pair.
func BuildChatMessages(contextText, question string, history []ChatMessage) []ChatMessage {
	messages := make([]ChatMessage, 0, len(history)+2)
	messages = append(messages, ChatMessage{Role: RoleSystem, Content: SystemPersona})
	messages = append(messages, history...)
	messages = append(messages, ChatMessage{
		Role:    RoleUser,
		Content: fmt.Sprintf("Episode context:\n%s\n\nQuestion: %s\nAnswer as TNG Computer:", contextText, question),
	})
	return messages
}
