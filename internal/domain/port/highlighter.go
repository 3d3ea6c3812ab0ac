package port

import (
	"uxlens/internal/domain/entity"
)

// Highlighter интерфейс отрисовщика замечаний
type Highlighter interface {
	// Highlight создаёт изображение с подсветкой областей замечаний
	Highlight(imageData []byte, result *entity.AnalysisResult) ([]byte, error)
}
