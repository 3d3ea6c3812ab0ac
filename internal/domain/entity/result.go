package entity

// ImageSize — заявленные размеры исходного скриншота.
type ImageSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Meta — служебные данные анализа.
type Meta struct {
	LowQualityWarning bool `json:"low_quality_warning"`
	ProcessingMS      int  `json:"processing_ms,omitempty"`
}

// AnalysisResult хранит итог анализа скриншота.
// После создания результат не изменяется.
type AnalysisResult struct {
	Image  ImageSize `json:"image"`
	Issues []Issue   `json:"issues"`
	Meta   Meta      `json:"meta"`
}

// HasIssues сообщает о наличии замечаний.
func (r *AnalysisResult) HasIssues() bool {
	return len(r.Issues) > 0
}
