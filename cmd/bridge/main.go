package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cryptopulse/telegram-sentiment-bridge/internal/api"
	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz"
	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/domain"
	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/usecase"
	"github.com/cryptopulse/telegram-sentiment-bridge/internal/conf"
	"github.com/cryptopulse/telegram-sentiment-bridge/internal/data"
	"github.com/cryptopulse/telegram-sentiment-bridge/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := conf.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// The two category queues are the only shared mutable state between the
	// ingestion path and the request-serving path.
	pndQueue := domain.NewMessageQueue(cfg.Queue.Capacity)
	newsQueue := domain.NewMessageQueue(cfg.Queue.Capacity)
	registry := domain.NewChannelRegistry()

	// Initialize repository layer
	repos, err := data.NewRepositories(cfg.Mistral.APIKey, cfg.Mistral.Model, cfg.ClassifierTimeout(), cfg.Session.DBPath)
	if err != nil {
		log.Fatalf("Failed to create repositories: %v", err)
	}

	fmt.Printf("[Bridge] Session DB: %s\n", cfg.Session.DBPath)

	// Initialize usecase layer
	usecases := &biz.Usecases{
		Ingest:   usecase.NewIngestUsecase(registry, pndQueue, newsQueue),
		Analysis: usecase.NewAnalysisUsecase(repos.Classifier, cfg.ToPromptConfig(), pndQueue, newsQueue),
	}

	// Initialize HTTP API server
	apiServer := api.NewServer(usecases.Analysis, registry, cfg.API.Host, cfg.API.Port)
	go func() {
		if err := apiServer.Start(); err != nil {
			fmt.Printf("[Bridge] API server error: %v\n", err)
		}
	}()
	fmt.Printf("[Bridge] HTTP API server started on port %d\n", cfg.API.Port)

	// Initialize Telegram monitor
	srv, err := server.NewTelegramServer(cfg.Telegram.BotToken, cfg.Channels, usecases.Ingest, repos.Session)
	if err != nil {
		log.Fatalf("Failed to create Telegram monitor: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nShutting down...")
		cancel()
		apiServer.Stop()
		repos.Session.Close()
		os.Exit(0)
	}()

	fmt.Println("Starting Telegram Sentiment Bridge...")
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("Monitor error: %v", err)
	}
}
