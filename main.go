package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "hypotrophy-backend/cmd/api"
	"hypotrophy-backend/internal/app"
	"hypotrophy-backend/internal/goal/scheduler"
	"hypotrophy-backend/pkg/ai"
	"hypotrophy-backend/pkg/config"
	"hypotrophy-backend/pkg/insightclient"
)

const insightRequestTimeout = 20 * time.Second

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize repositories, in memory when the database is unavailable
	repos := app.OpenRepositories(cfg)

	// Runtime-editable Ollama settings, read by the AI provider on every call
	settings := api.NewRuntimeSettings(cfg.OllamaBaseURL, cfg.OllamaModel)

	generator, closeGenerator, err := ai.NewGenerator(context.Background(), ai.Config{
		Provider:         ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:     cfg.GeminiApiKey,
		GeminiModel:      cfg.GeminiModel,
		GetOllamaBaseURL: settings.BaseURL,
		GetOllamaModel:   settings.Model,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize AI service: %v", err)
	} else {
		log.Printf("AI service initialized with provider: %s", cfg.AIProvider)
	}
	defer closeGenerator()

	// Insights go through the AI proxy over HTTP and fall back locally
	client := insightclient.NewClient(cfg.InsightsAPIURL, &http.Client{Timeout: insightRequestTimeout})

	services := app.NewServices(repos, client, cfg.InsightWorkers)
	services.Worker.Start()
	defer services.Worker.Stop()
	log.Println("Task insight worker started")

	deadlines := scheduler.NewDeadlineScheduler(repos.Goals, services.Insights, cfg.GoalCheckInterval, cfg.GoalWarningWindow)
	deadlines.Start()
	defer deadlines.Stop()

	handler := api.NewHandler(api.Dependencies{
		Tasks:     services.Tasks,
		Goals:     services.Goals,
		Insights:  services.Insights,
		Backup:    services.Backup,
		Generator: generator,
		Settings:  settings,
	}, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
