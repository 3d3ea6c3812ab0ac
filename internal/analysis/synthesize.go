package analysis

import (
	"fmt"

	"uxlens/internal/domain/entity"
)

// Параметры политики синтеза. Влияют на правдоподобие картины,
// но не на контракт детерминизма.
const (
	issueBranchChance = 0.85 // остальное — редкая ветка без замечаний
	minIssues         = 2
	maxIssues         = 4
	maxWidthFraction  = 0.25 // доля ширины изображения на одну область
	maxHeightFraction = 0.20 // доля высоты изображения на одну область
	minBoxSide        = 24   // минимальная сторона области, px
	placeMargin       = 8    // отступ от краёв при размещении, px

	lowQualityWidth  = 640
	lowQualityHeight = 400

	processingBaseMS = 900  // нижняя граница псевдодлительности
	processingSpanMS = 1600 // ширина диапазона псевдодлительности
)

var severities = []entity.Severity{
	entity.SeverityHigh,
	entity.SeverityMedium,
	entity.SeverityLow,
}

// Synthesize детерминированно строит правдоподобный результат анализа
// по размерам изображения и зерну. Одни и те же аргументы всегда дают
// побитово одинаковый результат, в том же порядке.
func Synthesize(width, height int, seed uint32) *entity.AnalysisResult {
	rnd := newRand(seed)

	count := 0
	if rnd.Float() <= issueBranchChance {
		count = minIssues + int(rnd.Float()*float64(maxIssues-minIssues+1))
		if count > maxIssues {
			count = maxIssues
		}
	}

	issues := make([]entity.Issue, 0, count)
	for i := 0; i < count; i++ {
		tpl := templates[pick(rnd, len(templates))]

		w := int(rnd.Float() * maxWidthFraction * float64(width))
		if w < minBoxSide {
			w = minBoxSide
		}
		if w > width {
			w = width
		}
		h := int(rnd.Float() * maxHeightFraction * float64(height))
		if h < minBoxSide {
			h = minBoxSide
		}
		if h > height {
			h = height
		}

		// Область размещается внутри изображения с отступом от краёв;
		// на маленьких картинках отступ схлопывается до нуля.
		maxX := width - w - placeMargin
		if maxX < 0 {
			maxX = 0
		}
		maxY := height - h - placeMargin
		if maxY < 0 {
			maxY = 0
		}

		x := pick(rnd, maxX+1)
		y := pick(rnd, maxY+1)

		issues = append(issues, entity.Issue{
			ID:             fmt.Sprintf("iss_%d", i+1),
			BBox:           entity.BBox{X: x, Y: y, W: w, H: h},
			Severity:       severities[pick(rnd, len(severities))],
			Category:       tpl.Category,
			Title:          tpl.Title,
			Rationale:      tpl.Rationale,
			Recommendation: tpl.Recommendation,
		})
	}

	return &entity.AnalysisResult{
		Image:  entity.ImageSize{Width: width, Height: height},
		Issues: issues,
		Meta: entity.Meta{
			LowQualityWarning: LowQuality(width, height),
			ProcessingMS:      processingBaseMS + int(rnd.Float()*processingSpanMS),
		},
	}
}

// pick возвращает индекс в [0, n) следующим числом потока.
func pick(rnd *randStream, n int) int {
	i := int(rnd.Float() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// LowQuality сообщает, что разрешения скриншота маловато для анализа.
func LowQuality(width, height int) bool {
	return width < lowQualityWidth || height < lowQualityHeight
}
