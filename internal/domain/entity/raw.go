package entity

// RawBBox — геометрия из внешнего ответа. Указатели позволяют отличить
// отсутствующее поле от нулевого значения.
type RawBBox struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
	W *float64 `json:"w"`
	H *float64 `json:"h"`
}

// RawIssue — замечание из внешнего ответа до нормализации.
type RawIssue struct {
	ID             string   `json:"id"`
	BBox           *RawBBox `json:"bbox"`
	Severity       Severity `json:"severity"`
	Category       Category `json:"category"`
	Title          string   `json:"title"`
	Rationale      string   `json:"rationale"`
	Recommendation string   `json:"recommendation"`
}

// RawMeta — метаданные из внешнего ответа.
type RawMeta struct {
	ProcessingMS *int `json:"processing_ms"`
}

// RawAnalysis — недоверенный результат внешнего анализатора.
// Перед отдачей наружу обязан пройти нормализацию.
type RawAnalysis struct {
	Issues []RawIssue `json:"issues"`
	Meta   *RawMeta   `json:"meta"`
}
