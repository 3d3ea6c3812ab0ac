package main

import (
	"log"

	"uxlens/config"
	"uxlens/internal/container"
	"uxlens/internal/domain/port"
	"uxlens/internal/infrastructure/llm"
	"uxlens/internal/infrastructure/render"
	"uxlens/internal/infrastructure/storage"
	"uxlens/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Создаём хранилище сессий
	sessionRepo := storage.NewMemorySessionRepository()

	// Внешний анализатор опционален: без ключа работаем на синтетике
	var analyzer port.ScreenshotAnalyzer
	if cfg.AnalyzerAPIKey != "" {
		analyzer = llm.NewOpenAIAnalyzer(cfg.AnalyzerAPIKey, cfg.AnalyzerBaseURL, cfg.AnalyzerModel)
	} else {
		log.Println("ANALYZER_API_KEY is not set, falling back to synthetic analysis")
	}

	// Собираем сервисы приложения
	appContainer := container.New(sessionRepo, analyzer, render.NewBoxHighlighter())

	srv := web.NewServer(appContainer, cfg.ListenAddr)

	log.Printf("uxlens is running on %s...", cfg.ListenAddr)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
