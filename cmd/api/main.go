package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ai-todo-backend/config"
	_ "ai-todo-backend/docs" // Swagger docs
	chatHTTP "ai-todo-backend/internal/chat/delivery/http"
	"ai-todo-backend/internal/chat/gateway"
	"ai-todo-backend/internal/chat/intent"
	chatUC "ai-todo-backend/internal/chat/usecase"
	"ai-todo-backend/internal/httpserver"
	taskHTTP "ai-todo-backend/internal/task/delivery/http"
	"ai-todo-backend/internal/task/repository/memory"
	taskUC "ai-todo-backend/internal/task/usecase"
	"ai-todo-backend/pkg/llmprovider"
	"ai-todo-backend/pkg/log"
	"ai-todo-backend/pkg/metrics"
)

// @title       AI Todo API
// @description To-do backend with task CRUD and an LLM-backed chat assistant.
// @version     1.0
// @host        localhost:8000
// @schemes     http
func main() {
	// 0. .env is optional; real environment variables win.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Starting %s %s...", cfg.App.Name, cfg.App.Version)
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	m := metrics.New()

	// 3. LLM providers. Missing credentials are not fatal: /chat still answers.
	providers, warnings, err := llmprovider.InitializeProviders(&cfg.LLM)
	for _, w := range warnings {
		logger.Warnf(ctx, "LLM: %s", w)
	}
	if err != nil {
		logger.Warnf(ctx, "No LLM provider available, chat replies will apologize: %v", err)
	} else {
		for _, p := range providers {
			logger.Infof(ctx, "✅ LLM provider ready: %s (%s)", p.Name(), p.Model())
		}
	}
	llmManager := llmprovider.NewManager(providers, llmprovider.NewManagerConfig(cfg.LLM), logger)

	// 4. Task domain
	taskRepo := memory.New(logger)
	taskUseCase := taskUC.New(taskRepo, logger, m)
	taskHandler := taskHTTP.New(logger, taskUseCase)

	// 5. Chat domain
	gw := gateway.New(logger, llmManager, gateway.Config{
		Temperature:     cfg.Chat.Temperature,
		MaxTokens:       cfg.Chat.MaxTokens,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
	}, m)
	chatUseCase := chatUC.New(logger, intent.New(logger), gw, chatUC.Config{
		ExposeUpstreamErrors: cfg.Chat.ExposeUpstreamErrors,
	}, m)
	chatHandler := chatHTTP.New(logger, chatUseCase)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AppName:        cfg.App.Name,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Metrics:        m,
		TaskHandler:    taskHandler,
		ChatHandler:    chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
