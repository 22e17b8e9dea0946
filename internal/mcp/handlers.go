// ABOUTME: MCP tool handler implementations for the RAG server
// ABOUTME: One session per ask_corpus call; errors returned as structured results
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nlp26/RAG/internal/chunker"
	"github.com/nlp26/RAG/internal/llm"
	"github.com/nlp26/RAG/internal/retriever"
	"github.com/nlp26/RAG/internal/session"
	"github.com/nlp26/RAG/internal/storage"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	store    *storage.Store
	embedder llm.Embedder
	client   *llm.Client
	topK     int
}

// IngestCorpus handles the ingest_corpus tool
func (h *Handlers) IngestCorpus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	corpus, err := request.RequireString("corpus")
	if err != nil {
		return mcp.NewToolResultError("corpus argument is required and must be a string"), nil
	}
	csvPath, err := request.RequireString("csv_path")
	if err != nil {
		return mcp.NewToolResultError("csv_path argument is required and must be a string"), nil
	}

	records, err := chunker.ReadTranscriptFile(csvPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read transcript: %v", err)), nil
	}
	chunks, err := chunker.ChunkRecords(records)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ingestion failed: %v", err)), nil
	}

	info, err := h.store.IngestChunks(ctx, corpus, chunks, h.embedder)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ingestion failed: %v", err)), nil
	}

	responseJSON, err := json.Marshal(info)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// AskCorpus handles the ask_corpus tool
func (h *Handlers) AskCorpus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}
	corpus, err := request.RequireString("corpus")
	if err != nil {
		return mcp.NewToolResultError("corpus argument is required and must be a string"), nil
	}
	topK := request.GetInt("top_k", h.topK)

	sem := retriever.NewSemantic(h.store, h.embedder, corpus, topK)
	sess := session.New(sem, h.client, false)

	result, err := sess.Ask(ctx, question)
	if err != nil {
		// Backend failures are structured results so the caller can
		// distinguish "got an answer" from "backend error"
		responseJSON, encErr := json.Marshal(map[string]string{"error": err.Error()})
		if encErr != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(responseJSON)), nil
	}

	responseJSON, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ListCorpora handles the list_corpora tool
func (h *Handlers) ListCorpora(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	corpora, err := h.store.ListCorpora()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list corpora: %v", err)), nil
	}

	responseJSON, err := json.Marshal(corpora)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
