// ABOUTME: Turn represents a single message in a chat session transcript
// ABOUTME: Conversation is the append-only ordered history of one session
package models

// Role identifies the author of a conversation turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a session transcript. Error answers are recorded
// as assistant turns like any other, so the transcript stays complete.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Conversation holds the ordered turn history of one session. It is owned
// by exactly one session and is append-only: past turns are never mutated
// or removed.
type Conversation struct {
	turns []Turn
}

// NewConversation creates an empty conversation
func NewConversation() *Conversation {
	return &Conversation{}
}

// Append adds a turn to the end of the history
func (c *Conversation) Append(turn Turn) {
	c.turns = append(c.turns, turn)
}

// History returns the turns in order. The returned slice is a copy so
// callers cannot rewrite recorded history.
func (c *Conversation) History() []Turn {
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Len returns the number of recorded turns
func (c *Conversation) Len() int {
	return len(c.turns)
}
