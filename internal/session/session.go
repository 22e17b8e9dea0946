// ABOUTME: Session owns the retriever, LLM client, and conversation state
// ABOUTME: One query = retrieve, assemble, complete, append exactly two turns
package session

import (
	"context"

	"github.com/google/uuid"
	"github.com/nlp26/RAG/internal/llm"
	"github.com/nlp26/RAG/internal/models"
	"github.com/nlp26/RAG/internal/retriever"
)

// NoContextAnswer is returned when retrieval finds nothing to ground the
// answer in. The query is not an error; the caller decides presentation.
const NoContextAnswer = "No relevant context was found in the corpus for this question."

// Result is the outcome of one successful query
type Result struct {
	Answer         string `json:"answer"`
	ContextPreview string `json:"context_preview"`
}

// Session runs queries against one corpus and records the transcript.
// It owns its Conversation exclusively; nothing is shared across sessions.
type Session struct {
	id           string
	retriever    retriever.Retriever
	client       *llm.Client
	conversation *models.Conversation
	chatMode     bool
}

// New creates a session. chatMode selects the conversational persona
// path (prior turns are sent with each request) over single-shot prompts.
func New(r retriever.Retriever, client *llm.Client, chatMode bool) *Session {
	return &Session{
		id:           uuid.New().String(),
		retriever:    r,
		client:       client,
		conversation: models.NewConversation(),
		chatMode:     chatMode,
	}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// History returns the recorded transcript in order
func (s *Session) History() []models.Turn {
	return s.conversation.History()
}

// Ask runs one query end to end. Exactly two turns are appended for
// every completed query: the question, then the answer — where the
// answer turn carries the error text when the backend failed, so the
// transcript stays complete. A query canceled before any turn is
// recorded appends nothing.
func (s *Session) Ask(ctx context.Context, question string) (*Result, error) {
	chunks, err := s.retriever.Retrieve(ctx, question)
	if err != nil {
		s.record(question, err.Error())
		return nil, err
	}

	if len(chunks) == 0 {
		s.record(question, NoContextAnswer)
		return &Result{Answer: NoContextAnswer}, nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}
	contextText := retriever.Assemble(texts)
	preview := retriever.Preview(contextText)

	var answer string
	if s.chatMode {
		answer, err = s.client.AskConversational(ctx, question, contextText, s.historyMessages())
	} else {
		answer, err = s.client.Ask(ctx, question, contextText)
	}
	if err != nil {
		s.record(question, err.Error())
		return nil, err
	}

	s.record(question, answer)
	return &Result{Answer: answer, ContextPreview: preview}, nil
}

// record appends the (question, answer) pair as one unit
func (s *Session) record(question, answer string) {
	s.conversation.Append(models.Turn{Role: models.RoleUser, Text: question})
	s.conversation.Append(models.Turn{Role: models.RoleAssistant, Text: answer})
}

// historyMessages converts recorded turns to backend chat messages
func (s *Session) historyMessages() []llm.ChatMessage {
	turns := s.conversation.History()
	messages := make([]llm.ChatMessage, len(turns))
	for i, turn := range turns {
		role := llm.RoleUser
		if turn.Role == models.RoleAssistant {
			role = llm.RoleAssistant
		}
		messages[i] = llm.ChatMessage{Role: role, Content: turn.Text}
	}
	return messages
}
