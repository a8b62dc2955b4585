// ABOUTME: Centralized configuration for the document agent
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the document agent
type Config struct {
	// Vector index service settings
	VectorURL        string
	VectorTimeout    time.Duration
	VectorMaxRetries int
	VectorRetryDelay time.Duration

	// Generation settings
	OpenAIKey  string
	LLMBaseURL string
	ChatModel  string

	// Chunking settings
	ChunkSize    int
	ChunkOverlap int

	// Conversation settings
	HistoryWindow int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		VectorURL:        getEnv("DOCAGENT_VECTOR_URL", "http://localhost:8001"),
		VectorTimeout:    getEnvDuration("DOCAGENT_VECTOR_TIMEOUT", 30*time.Second),
		VectorMaxRetries: getEnvInt("DOCAGENT_VECTOR_MAX_RETRIES", 3),
		VectorRetryDelay: getEnvDuration("DOCAGENT_VECTOR_RETRY_DELAY", time.Second),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		LLMBaseURL:       os.Getenv("DOCAGENT_LLM_BASE_URL"),
		ChatModel:        getEnv("DOCAGENT_CHAT_MODEL", "gpt-4o-mini"),
		ChunkSize:        getEnvInt("DOCAGENT_CHUNK_SIZE", 4000),
		ChunkOverlap:     getEnvInt("DOCAGENT_CHUNK_OVERLAP", 800),
		HistoryWindow:    getEnvInt("DOCAGENT_HISTORY_WINDOW", 5),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("DOCAGENT_CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("DOCAGENT_CHUNK_OVERLAP must be 0 to chunk size-1, got %d", c.ChunkOverlap)
	}
	if c.VectorMaxRetries < 0 || c.VectorMaxRetries > 10 {
		return fmt.Errorf("DOCAGENT_VECTOR_MAX_RETRIES must be 0-10, got %d", c.VectorMaxRetries)
	}
	if c.HistoryWindow <= 0 {
		return fmt.Errorf("DOCAGENT_HISTORY_WINDOW must be positive, got %d", c.HistoryWindow)
	}
	if c.OpenAIKey == "" && c.LLMBaseURL == "" {
		return fmt.Errorf("OPENAI_API_KEY or DOCAGENT_LLM_BASE_URL is required")
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
