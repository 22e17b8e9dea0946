// ABOUTME: Tests for session query orchestration and transcript discipline
// ABOUTME: Uses fake retrievers and backends, no network access
package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nlp26/RAG/internal/llm"
	"github.com/nlp26/RAG/internal/models"
)

// fakeRetriever returns canned chunks or a canned error
type fakeRetriever struct {
	chunks []models.Chunk
	err    error
}

func (f *fakeRetriever) Retrieve(_ context.Context, _ string) ([]models.Chunk, error) {
	return f.chunks, f.err
}

// fakeBackend records requests and returns a canned answer or error
type fakeBackend struct {
	answer      string
	err         error
	lastPrompt  string
	lastChatReq llm.ChatRequest
}

func (f *fakeBackend) Complete(_ context.Context, req llm.CompletionRequest) (string, error) {
	f.lastPrompt = req.Prompt
	return f.answer, f.err
}

func (f *fakeBackend) Chat(_ context.Context, req llm.ChatRequest) (string, error) {
	f.lastChatReq = req
	return f.answer, f.err
}

func picardChunks() []models.Chunk {
	return []models.Chunk{
		{ID: 0, Text: "Picard: Make it so. [Episode: 1, Scene: 3]"},
		{ID: 1, Text: "Riker: Aye sir. [Episode: 1, Scene: 3]"},
	}
}

func TestAskRecordsTwoTurns(t *testing.T) {
	backend := &fakeBackend{answer: "Captain Picard said it."}
	s := New(&fakeRetriever{chunks: picardChunks()}, llm.NewClient(backend, "llama3.2:1b"), false)

	before := len(s.History())
	result, err := s.Ask(context.Background(), "Who said make it so?")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}

	if result.Answer != "Captain Picard said it." {
		t.Errorf("Answer = %q", result.Answer)
	}
	history := s.History()
	if len(history) != before+2 {
		t.Fatalf("history length = %d, want %d", len(history), before+2)
	}
	if history[0].Role != models.RoleUser || history[0].Text != "Who said make it so?" {
		t.Errorf("first turn = %+v", history[0])
	}
	if history[1].Role != models.RoleAssistant || history[1].Text != "Captain Picard said it." {
		t.Errorf("second turn = %+v", history[1])
	}
}

func TestAskBuildsDocumentPrompt(t *testing.T) {
	backend := &fakeBackend{answer: "ok"}
	s := New(&fakeRetriever{chunks: picardChunks()}, llm.NewClient(backend, "m"), false)

	if _, err := s.Ask(context.Background(), "Who said make it so?"); err != nil {
		t.Fatalf("Ask() error = %v", err)
	}

	if !strings.HasPrefix(backend.lastPrompt, "Document:\n") {
		t.Errorf("prompt = %q, want Document: prefix", backend.lastPrompt)
	}
	if !strings.Contains(backend.lastPrompt, "Picard: Make it so.") {
		t.Error("prompt missing retrieved context")
	}
	if !strings.Contains(backend.lastPrompt, "Riker: Aye sir.") {
		t.Error("prompt missing second chunk")
	}
}

func TestAskBackendErrorRecordsErrorTurn(t *testing.T) {
	backendErr := &llm.BackendError{Status: 500, Body: "internal error"}
	backend := &fakeBackend{err: backendErr}
	s := New(&fakeRetriever{chunks: picardChunks()}, llm.NewClient(backend, "m"), false)

	_, err := s.Ask(context.Background(), "question")
	if err == nil {
		t.Fatal("Ask() = nil error, want backend error")
	}
	if err.Error() != "internal error" {
		t.Errorf("error text = %q, want %q", err.Error(), "internal error")
	}

	history := s.History()
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2 (error still recorded)", len(history))
	}
	if history[1].Role != models.RoleAssistant || history[1].Text != "internal error" {
		t.Errorf("assistant turn = %+v, want error text", history[1])
	}
}

func TestAskEmptyCorpus(t *testing.T) {
	backend := &fakeBackend{answer: "should not be called"}
	s := New(&fakeRetriever{}, llm.NewClient(backend, "m"), false)

	result, err := s.Ask(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if result.Answer != NoContextAnswer {
		t.Errorf("Answer = %q, want no-context answer", result.Answer)
	}
	if backend.lastPrompt != "" {
		t.Error("backend called despite empty retrieval")
	}
	if len(s.History()) != 2 {
		t.Errorf("history length = %d, want 2", len(s.History()))
	}
}

func TestAskRetrieverErrorRecordsTurns(t *testing.T) {
	s := New(&fakeRetriever{err: errors.New("index unavailable")},
		llm.NewClient(&fakeBackend{}, "m"), false)

	_, err := s.Ask(context.Background(), "question")
	if err == nil {
		t.Fatal("Ask() = nil error, want retriever error")
	}
	if len(s.History()) != 2 {
		t.Errorf("history length = %d, want 2", len(s.History()))
	}
}

func TestAskChatModeSendsHistory(t *testing.T) {
	backend := &fakeBackend{answer: "Acknowledged."}
	s := New(&fakeRetriever{chunks: picardChunks()}, llm.NewClient(backend, "m"), true)

	if _, err := s.Ask(context.Background(), "first question"); err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if _, err := s.Ask(context.Background(), "second question"); err != nil {
		t.Fatalf("Ask() error = %v", err)
	}

	messages := backend.lastChatReq.Messages
	// system + 2 prior turns + current user message
	if len(messages) != 4 {
		t.Fatalf("messages length = %d, want 4", len(messages))
	}
	if messages[0].Role != llm.RoleSystem {
		t.Errorf("first message role = %q, want system", messages[0].Role)
	}
	if messages[1].Content != "first question" {
		t.Errorf("history message = %q, want first question", messages[1].Content)
	}
}

func TestHistoryGrowsByTwoPerQuery(t *testing.T) {
	backend := &fakeBackend{answer: "fine"}
	s := New(&fakeRetriever{chunks: picardChunks()}, llm.NewClient(backend, "m"), false)

	for i := 0; i < 3; i++ {
		before := len(s.History())
		if _, err := s.Ask(context.Background(), "q"); err != nil {
			t.Fatalf("Ask() error = %v", err)
		}
		if got := len(s.History()); got != before+2 {
			t.Fatalf("history length = %d, want %d", got, before+2)
		}
	}

	// Error outcome also grows by exactly two
	backend.err = &llm.BackendError{Status: 502, Body: "bad gateway"}
	before := len(s.History())
	if _, err := s.Ask(context.Background(), "q"); err == nil {
		t.Fatal("Ask() = nil error, want backend error")
	}
	if got := len(s.History()); got != before+2 {
		t.Errorf("history length after error = %d, want %d", got, before+2)
	}
}

func TestSessionIDsUnique(t *testing.T) {
	client := llm.NewClient(&fakeBackend{}, "m")
	a := New(&fakeRetriever{}, client, false)
	b := New(&fakeRetriever{}, client, false)
	if a.ID() == b.ID() {
		t.Error("two sessions share an ID")
	}
}
