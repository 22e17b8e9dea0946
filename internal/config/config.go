// ABOUTME: Centralized configuration for the RAG pipeline
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Backend selector values
const (
	BackendOllama = "ollama"
	BackendOpenAI = "openai"
)

// Config holds all configuration for the RAG pipeline
type Config struct {
	// Which completion backend answers questions
	Backend string

	// Ollama settings
	OllamaBaseURL string
	ChatModel     string

	// OpenAI-compatible settings (embeddings and optional chat backend)
	OpenAIKey      string
	OpenAIBaseURL  string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Retrieval settings
	TopK            int
	LexicalWindow   int
	VectorDimension int

	// Storage settings
	DBPath string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		Backend:         getEnv("RAG_BACKEND", BackendOllama),
		OllamaBaseURL:   getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		ChatModel:       getEnv("RAG_CHAT_MODEL", "llama3.2:1b"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		EmbeddingModel:  getEnv("RAG_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:         getEnvDuration("RAG_BACKEND_TIMEOUT", 30*time.Second),
		MaxRetries:      getEnvInt("RAG_MAX_RETRIES", 3),
		RetryDelay:      getEnvDuration("RAG_RETRY_DELAY", 2*time.Second),
		TopK:            getEnvInt("RAG_TOP_K", 5),
		LexicalWindow:   getEnvInt("RAG_LEXICAL_WINDOW", 700),
		VectorDimension: getEnvInt("RAG_VECTOR_DIMENSION", 1536),
		DBPath:          os.Getenv("RAG_DB_PATH"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Backend != BackendOllama && c.Backend != BackendOpenAI {
		return fmt.Errorf("RAG_BACKEND must be %q or %q, got %q", BackendOllama, BackendOpenAI, c.Backend)
	}
	if c.Backend == BackendOpenAI && c.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required when RAG_BACKEND=%s", BackendOpenAI)
	}
	if c.TopK < 1 {
		return fmt.Errorf("RAG_TOP_K must be >= 1, got %d", c.TopK)
	}
	if c.LexicalWindow < 1 {
		return fmt.Errorf("RAG_LEXICAL_WINDOW must be >= 1, got %d", c.LexicalWindow)
	}
	if c.VectorDimension < 1 {
		return fmt.Errorf("RAG_VECTOR_DIMENSION must be >= 1, got %d", c.VectorDimension)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("RAG_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
