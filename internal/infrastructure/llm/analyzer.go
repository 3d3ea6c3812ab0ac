package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"uxlens/internal/domain/entity"
	"uxlens/internal/domain/port"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"

	systemPrompt = `Ты — UX-аудитор. Тебе присылают скриншот интерфейса.
Найди на нём проблемы юзабилити и верни строго JSON без пояснений:
{"issues":[{"id":"iss_1","bbox":{"x":0,"y":0,"w":0,"h":0},"severity":"high|medium|low","category":"contrast|hierarchy|spacing|touch-target|consistency|feedback|clarity|accessibility","title":"...","rationale":"...","recommendation":"..."}]}
Координаты bbox — в пикселях исходного изображения. Тексты — на русском.`
)

// OpenAIAnalyzer отправляет скриншот в OpenAI-совместимый vision-эндпоинт.
// Его ответ считается недоверенным и возвращается сырым: нормализацией
// занимается слой приложения.
type OpenAIAnalyzer struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewOpenAIAnalyzer создаёт клиент внешнего анализатора.
func NewOpenAIAnalyzer(apiKey, baseURL, model string) *OpenAIAnalyzer {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}

	return &OpenAIAnalyzer{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Analyze отправляет скриншот модели и разбирает её ответ.
// Любой сбой транспорта или формата — одна ошибка наружу: для вызывающего
// это просто «внешний анализ недоступен».
func (a *OpenAIAnalyzer) Analyze(ctx context.Context, imageData []byte, width, height int) (*entity.RawAnalysis, error) {
	mime := http.DetectContentType(imageData)
	dataURL := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(imageData)

	reqBody := chatRequest{
		Model: a.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: fmt.Sprintf("Скриншот интерфейса размером %dx%d px. Найди UX-проблемы.", width, height)},
				{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
			}},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call analyzer: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analyzer returned status %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("analyzer returned no choices")
	}

	var raw entity.RawAnalysis
	if err := json.Unmarshal([]byte(stripFences(chat.Choices[0].Message.Content)), &raw); err != nil {
		return nil, fmt.Errorf("parse analyzer payload: %w", err)
	}

	return &raw, nil
}

// stripFences срезает обрамление ```json, которое модели любят добавлять.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}

// Проверка реализации интерфейса
var _ port.ScreenshotAnalyzer = (*OpenAIAnalyzer)(nil)
