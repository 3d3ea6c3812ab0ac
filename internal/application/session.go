package app

import (
	"context"

	"uxlens/internal/domain/entity"
	"uxlens/internal/domain/port"
)

type SessionService struct {
	repo port.SessionRepository
}

func NewSessionService(repo port.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

func (s *SessionService) Get(ctx context.Context, id string) (*entity.Session, error) {
	return s.repo.Get(ctx, id)
}

func (s *SessionService) SetState(ctx context.Context, id string, state entity.SessionState) (*entity.Session, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	session.SetState(state)
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *SessionService) StartAnalysis(ctx context.Context, id string) (*entity.Session, error) {
	return s.SetState(ctx, id, entity.StateAnalyzing)
}

func (s *SessionService) FinishAnalysis(ctx context.Context, id string) (*entity.Session, error) {
	return s.SetState(ctx, id, entity.StateResults)
}

func (s *SessionService) Reset(ctx context.Context, id string) (*entity.Session, error) {
	return s.SetState(ctx, id, entity.StateUpload)
}
