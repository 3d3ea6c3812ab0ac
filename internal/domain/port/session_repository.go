package port

import (
	"context"

	"uxlens/internal/domain/entity"
)

// SessionRepository интерфейс хранилища сессий
type SessionRepository interface {
	// Get возвращает сессию по ID, создаёт новую если не найдена
	Get(ctx context.Context, id string) (*entity.Session, error)

	// Save сохраняет состояние сессии
	Save(ctx context.Context, session *entity.Session) error

	// UpdateState обновляет состояние сессии
	UpdateState(ctx context.Context, id string, state entity.SessionState) error
}
