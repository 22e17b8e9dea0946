// ABOUTME: MCP tool definitions and registration for the RAG server
// ABOUTME: Exposes ingest_corpus, ask_corpus, and list_corpora over stdio
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/nlp26/RAG/internal/llm"
	"github.com/nlp26/RAG/internal/storage"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, store *storage.Store, embedder llm.Embedder, client *llm.Client, topK int) *Handlers {
	handlers := &Handlers{
		store:    store,
		embedder: embedder,
		client:   client,
		topK:     topK,
	}

	// 1. ingest_corpus - Ingest a transcript CSV into a named corpus
	server.AddTool(mcp.Tool{
		Name:        "ingest_corpus",
		Description: "Ingest a transcript CSV file into a named corpus: chunk, embed, and persist for semantic retrieval. Re-ingesting a corpus name replaces it.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"corpus": map[string]interface{}{
					"type":        "string",
					"description": "Corpus name to store the chunks under",
				},
				"csv_path": map[string]interface{}{
					"type":        "string",
					"description": "Path to the transcript CSV (columns: who, text, Episode, scenenumber)",
				},
			},
			Required: []string{"corpus", "csv_path"},
		},
	}, handlers.IngestCorpus)

	// 2. ask_corpus - Answer a question grounded in a persisted corpus
	server.AddTool(mcp.Tool{
		Name:        "ask_corpus",
		Description: "Answer a question grounded in a persisted corpus via semantic retrieval. Returns the answer and a context preview, or an error field on backend failure.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Natural-language question to answer",
				},
				"corpus": map[string]interface{}{
					"type":        "string",
					"description": "Name of the corpus to retrieve from",
				},
				"top_k": map[string]interface{}{
					"type":        "number",
					"description": "Maximum chunks to retrieve (default: 5)",
					"default":     5,
				},
			},
			Required: []string{"question", "corpus"},
		},
	}, handlers.AskCorpus)

	// 3. list_corpora - List persisted corpora
	server.AddTool(mcp.Tool{
		Name:        "list_corpora",
		Description: "List all persisted corpora with their chunk counts and embedding dimensions.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListCorpora)

	return handlers
}
