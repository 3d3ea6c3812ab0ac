package port

import (
	"context"

	"uxlens/internal/domain/entity"
)

// ScreenshotAnalyzer интерфейс внешнего анализатора скриншотов
type ScreenshotAnalyzer interface {
	// Analyze отправляет скриншот внешней модели и возвращает сырой,
	// ещё не нормализованный результат
	Analyze(ctx context.Context, imageData []byte, width, height int) (*entity.RawAnalysis, error)
}
