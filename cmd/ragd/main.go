// ABOUTME: Main entry point for the RAG MCP server with stdio transport
// ABOUTME: Initializes config, store, backends, and registers all tools
package main

import (
	"log"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/nlp26/RAG/internal/config"
	"github.com/nlp26/RAG/internal/mcp"
	"github.com/nlp26/RAG/internal/pipeline"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	services, err := pipeline.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize pipeline: %v", err)
	}
	defer func() { _ = services.Close() }()

	server := mcpserver.NewMCPServer(
		"RAG Corpus Server",
		"0.1.0",
	)

	mcp.RegisterTools(server, services.Store, services.Embedder, services.Client, services.TopK)

	log.Println("RAG MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
