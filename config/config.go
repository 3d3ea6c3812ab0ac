package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr      string
	AnalyzerAPIKey  string
	AnalyzerBaseURL string
	AnalyzerModel   string
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:      os.Getenv("LISTEN_ADDR"),
		AnalyzerAPIKey:  os.Getenv("ANALYZER_API_KEY"),
		AnalyzerBaseURL: os.Getenv("ANALYZER_BASE_URL"),
		AnalyzerModel:   os.Getenv("ANALYZER_MODEL"),
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	return cfg, nil
}
