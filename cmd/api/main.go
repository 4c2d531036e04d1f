package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwebster45206/npc-dialogue/internal/config"
	"github.com/jwebster45206/npc-dialogue/internal/dialogue"
	"github.com/jwebster45206/npc-dialogue/internal/handlers"
	"github.com/jwebster45206/npc-dialogue/internal/logger"
	"github.com/jwebster45206/npc-dialogue/internal/middleware"
	"github.com/jwebster45206/npc-dialogue/internal/services"
	"github.com/jwebster45206/npc-dialogue/internal/session"
	"github.com/jwebster45206/npc-dialogue/pkg/intent"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting NPC Dialogue API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"model_name", cfg.ModelName,
		"embed_model", cfg.EmbedModel)

	// Redis caches exemplar embeddings across restarts. A missing Redis
	// only costs a re-embed on boot, so failure is not fatal.
	cache := services.NewRedisService(cfg.RedisURL, log)
	cacheCtx, cacheCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := cache.Ping(cacheCtx); err != nil {
		log.Warn("Cache unavailable, exemplar embeddings will not be cached", "error", err)
	}
	cacheCancel()

	ollama, err := services.NewOllamaEmbedder(cfg.EmbedModel, cfg.EmbedDimension)
	if err != nil {
		log.Error("Failed to create embedder", "error", err)
		os.Exit(1)
	}
	embedder := services.NewCachedEmbedder(ollama, cache, log)

	// Without exemplar embeddings the matcher cannot score anything,
	// so the service refuses to start.
	matcherCtx, matcherCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	matcher, err := intent.NewMatcher(matcherCtx, embedder, intent.Exemplars)
	matcherCancel()
	if err != nil {
		log.Error("Failed to embed exemplar corpus", "error", err, "model", cfg.EmbedModel)
		os.Exit(1)
	}
	log.Info("Exemplar corpus embedded", "model", cfg.EmbedModel)

	llmService := services.NewLMStudioService(cfg.LLMBaseURL, cfg.ModelName, log)
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := llmService.Ping(pingCtx); err != nil {
		log.Warn("LLM backend unreachable at startup", "error", err, "base_url", cfg.LLMBaseURL)
	}
	pingCancel()

	resolver := intent.NewResolver(matcher, llmService, log)

	// Speech synthesis is optional. Without an API key the service
	// runs text-only.
	var tts services.Synthesizer
	if cfg.DeepgramAPIKey != "" {
		tts, err = services.NewDeepgramTTS(cfg.DeepgramAPIKey, cfg.TTSModel, cfg.AudioDir, log)
		if err != nil {
			log.Error("Failed to initialize speech synthesis", "error", err)
			os.Exit(1)
		}
		log.Info("Speech synthesis enabled", "model", cfg.TTSModel)
	} else {
		log.Info("DEEPGRAM_API_KEY not set, speech synthesis disabled")
	}

	sessions := session.NewStore()
	engine := dialogue.NewEngine(resolver, sessions, llmService, tts, cfg.SystemPrompt, log)

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(cache, llmService, log)
	mux.Handle("/health", healthHandler)

	chatHandler := handlers.NewChatHandler(engine, log)
	mux.Handle("/chat", chatHandler)

	resetHandler := handlers.NewResetHandler(sessions, log)
	mux.Handle("/reset", resetHandler)

	audioHandler := handlers.NewAudioHandler(cfg.AudioDir, log)
	mux.Handle("/audio/", audioHandler)

	handler := middleware.Logger(log, mux)
	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := cache.Close(); err != nil {
		log.Error("Error closing cache connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
