package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lpernett/godotenv"
)

// Config holds all runtime configuration, loaded from the environment.
type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	// LLMBaseURL is the OpenAI-compatible chat completion endpoint
	// (LM Studio by default) used for both reply generation and the
	// fallback intent classifier.
	LLMBaseURL string
	ModelName  string

	// EmbedModel is the Ollama embedding model backing the intent
	// matcher. The Ollama server address comes from OLLAMA_HOST.
	EmbedModel     string
	EmbedDimension int

	// RedisURL addresses the exemplar-embedding cache.
	RedisURL string

	// DeepgramAPIKey enables speech synthesis when set.
	DeepgramAPIKey string
	TTSModel       string
	AudioDir       string

	SystemPrompt string
}

const defaultSystemPrompt = "You are Snow, a gentle young girl in the countryside. " +
	"You are picking wildflowers in a sunny meadow, wearing a white dress. " +
	"You are kind, soft-spoken, sometimes shy, but warm-hearted. " +
	"Always reply as Snow, briefly and naturally.\n" +
	"Never include code blocks, JSON, or technical details. Speak like a person.\n"

func Load() (*Config, error) {
	// Optional .env for local development; real environment wins.
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LLMBaseURL:     getEnv("LLM_BASE_URL", "http://127.0.0.1:1234"),
		ModelName:      getEnv("MODEL_NAME", "Llama-3.2-3B-Instruct-GGUF"),
		EmbedModel:     getEnv("EMBED_MODEL", "all-minilm:l6-v2"),
		EmbedDimension: getEnvInt("EMBED_DIMENSION", 384),
		RedisURL:       getEnv("REDIS_URL", "localhost:6379"),
		DeepgramAPIKey: os.Getenv("DEEPGRAM_API_KEY"),
		TTSModel:       getEnv("TTS_MODEL", "aura-asteria-en"),
		AudioDir:       getEnv("AUDIO_DIR", "tmp"),
		SystemPrompt:   getEnv("SYSTEM_PROMPT", defaultSystemPrompt),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
