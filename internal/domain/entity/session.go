package entity

// SessionState — экран, на котором находится сессия анализа
type SessionState string

const (
	StateUpload    SessionState = "upload"    // Ожидание загрузки скриншота
	StateAnalyzing SessionState = "analyzing" // Идёт анализ изображения
	StateResults   SessionState = "results"   // Показ результатов
)

// Session представляет одну пользовательскую сессию анализа
type Session struct {
	ID       string       // Идентификатор сессии
	State    SessionState // Текущий экран сессии
	FileName string       // Имя последнего загруженного файла
	Platform string       // Платформа интерфейса (web, ios, android)
}

// NewSession создаёт новую сессию с начальным состоянием
func NewSession(id string) *Session {
	return &Session{
		ID:    id,
		State: StateUpload,
	}
}

// SetState обновляет состояние сессии
func (s *Session) SetState(state SessionState) {
	s.State = state
}
