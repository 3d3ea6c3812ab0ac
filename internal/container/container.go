package container

import (
	app "uxlens/internal/application"
	"uxlens/internal/domain/port"
)

type Container struct {
	SessionService  *app.SessionService
	AnalysisService *app.AnalysisService
}

func New(sessionRepo port.SessionRepository, analyzer port.ScreenshotAnalyzer, highlighter port.Highlighter) *Container {
	sessionService := app.NewSessionService(sessionRepo)
	analysisService := app.NewAnalysisService(sessionService, analyzer, highlighter)

	return &Container{
		SessionService:  sessionService,
		AnalysisService: analysisService,
	}
}
