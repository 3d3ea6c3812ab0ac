package storage

import (
	"context"
	"sync"

	"uxlens/internal/domain/entity"
	"uxlens/internal/domain/port"
)

// MemorySessionRepository in-memory хранилище сессий
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
}

// NewMemorySessionRepository создаёт новое in-memory хранилище
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]*entity.Session),
	}
}

// Get возвращает сессию по ID, создаёт новую если не найдена
func (r *MemorySessionRepository) Get(ctx context.Context, id string) (*entity.Session, error) {
	r.mu.RLock()
	session, exists := r.sessions[id]
	r.mu.RUnlock()

	if exists {
		return session, nil
	}

	// Создаём новую сессию
	newSession := entity.NewSession(id)

	r.mu.Lock()
	r.sessions[id] = newSession
	r.mu.Unlock()

	return newSession, nil
}

// Save сохраняет состояние сессии
func (r *MemorySessionRepository) Save(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()

	return nil
}

// UpdateState обновляет состояние сессии
func (r *MemorySessionRepository) UpdateState(ctx context.Context, id string, state entity.SessionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, exists := r.sessions[id]; exists {
		session.SetState(state)
	}

	return nil
}

// Проверка реализации интерфейса
var _ port.SessionRepository = (*MemorySessionRepository)(nil)
