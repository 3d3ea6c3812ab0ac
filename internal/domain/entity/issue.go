package entity

// Severity — серьёзность UX-замечания.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Category — категория замечания из фиксированного набора.
type Category string

const (
	CategoryContrast      Category = "contrast"
	CategoryHierarchy     Category = "hierarchy"
	CategorySpacing       Category = "spacing"
	CategoryTouchTarget   Category = "touch-target"
	CategoryConsistency   Category = "consistency"
	CategoryFeedback      Category = "feedback"
	CategoryClarity       Category = "clarity"
	CategoryAccessibility Category = "accessibility"
)

// BBox представляет область замечания в пикселях исходного скриншота
type BBox struct {
	X int `json:"x"` // координата X левого верхнего угла
	Y int `json:"y"` // координата Y левого верхнего угла
	W int `json:"w"` // ширина области в пикселях
	H int `json:"h"` // высота области в пикселях
}

// Center возвращает координаты центра области
func (b BBox) Center() (x, y int) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Issue — одно UX-замечание, привязанное к области скриншота.
type Issue struct {
	ID             string   `json:"id"`
	BBox           BBox     `json:"bbox"`
	Severity       Severity `json:"severity"`
	Category       Category `json:"category"`
	Title          string   `json:"title"`
	Rationale      string   `json:"rationale"`
	Recommendation string   `json:"recommendation"`
}
