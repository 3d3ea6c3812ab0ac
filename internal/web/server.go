package web

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	app "uxlens/internal/application"
	"uxlens/internal/container"
)

const maxUploadBytes = 32 << 20 // 32 МБ на один скриншот

// Server — HTTP API сервиса
type Server struct {
	addr     string
	router   *chi.Mux
	sessions *app.SessionService
	analysis *app.AnalysisService
}

// NewServer создаёт HTTP-сервер поверх сервисов приложения
func NewServer(c *container.Container, addr string) *Server {
	s := &Server{
		addr:     addr,
		sessions: c.SessionService,
		analysis: c.AnalysisService,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Get("/{id}", s.handleGetSession)
		r.Post("/{id}/analyze", s.handleAnalyze)
		r.Get("/{id}/result", s.handleResult)
		r.Get("/{id}/highlight", s.handleHighlight)
	})

	s.router = r
	return s
}

// Run запускает основной цикл обработки запросов
func (s *Server) Run() error {
	return http.ListenAndServe(s.addr, s.router)
}

// Handler отдаёт корневой обработчик, удобно для тестов
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCreateSession открывает новую сессию анализа
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(r.Context(), uuid.NewString())
	if err != nil {
		log.Printf("Error creating session: %v", err)
		writeError(w, http.StatusInternalServerError, "cannot create session")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":    session.ID,
		"state": session.State,
	})
}

// handleGetSession отдаёт текущее состояние сессии
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Printf("Error getting session: %v", err)
		writeError(w, http.StatusInternalServerError, "cannot get session")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":        session.ID,
		"state":     session.State,
		"file_name": session.FileName,
		"platform":  session.Platform,
	})
}

// handleAnalyze принимает скриншот и запускает анализ
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "expected multipart form with file")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Error reading upload: %v", err)
		writeError(w, http.StatusBadRequest, "cannot read file")
		return
	}

	out, err := s.analysis.ProcessScreenshot(r.Context(), chi.URLParam(r, "id"), app.Screenshot{
		Data:     data,
		FileName: header.Filename,
		Platform: r.FormValue("platform"),
	})
	if err != nil {
		log.Printf("Error processing screenshot: %v", err)
		writeError(w, http.StatusUnprocessableEntity, "cannot process screenshot")
		return
	}

	writeJSON(w, http.StatusOK, out.Result)
}

// handleResult отдаёт последний результат анализа сессии
func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	result, ok := s.analysis.Result(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "result is not ready")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleHighlight отдаёт PNG с подсветкой замечаний
func (s *Server) handleHighlight(w http.ResponseWriter, r *http.Request) {
	data, ok := s.analysis.Highlighted(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "highlight is not available")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing highlight: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
