package analysis

import (
	"fmt"
	"math"
	"strings"

	"uxlens/internal/domain/entity"
)

const (
	defaultBoxSize = 40 // размер области, если внешний ответ её не указал
	minNormBoxSide = 10 // минимальная сторона области после нормализации
)

// Normalize приводит недоверенный внешний результат к безопасной для
// отрисовки форме. Замечания не отбрасываются: количество и порядок
// сохраняются, а геометрия загоняется в границы изображения. Размеры
// изображения всегда берутся у вызывающего, не из внешнего ответа.
// Текстовые поля и категории проходят без изменений.
func Normalize(raw *entity.RawAnalysis, width, height int) *entity.AnalysisResult {
	res := &entity.AnalysisResult{
		Image:  entity.ImageSize{Width: width, Height: height},
		Issues: []entity.Issue{},
		Meta:   entity.Meta{LowQualityWarning: LowQuality(width, height)},
	}
	if raw == nil {
		return res
	}

	if raw.Meta != nil && raw.Meta.ProcessingMS != nil && *raw.Meta.ProcessingMS > 0 {
		res.Meta.ProcessingMS = *raw.Meta.ProcessingMS
	}

	for i, ri := range raw.Issues {
		id := strings.TrimSpace(ri.ID)
		if id == "" {
			id = fmt.Sprintf("iss_%d", i+1)
		}

		bb := ri.BBox
		if bb == nil {
			bb = &entity.RawBBox{}
		}

		x := clampInt(fieldValue(bb.X, 0, 0), 0, width-1)
		y := clampInt(fieldValue(bb.Y, 0, 0), 0, height-1)
		// Вписывание в границы важнее минимального размера: если места
		// меньше 10 px, область ужимается до остатка.
		w := clampInt(fieldValue(bb.W, defaultBoxSize, minNormBoxSide), minNormBoxSide, width-x)
		h := clampInt(fieldValue(bb.H, defaultBoxSize, minNormBoxSide), minNormBoxSide, height-y)

		res.Issues = append(res.Issues, entity.Issue{
			ID:             id,
			BBox:           entity.BBox{X: x, Y: y, W: w, H: h},
			Severity:       ri.Severity,
			Category:       ri.Category,
			Title:          ri.Title,
			Rationale:      ri.Rationale,
			Recommendation: ri.Recommendation,
		})
	}

	return res
}

// fieldValue разворачивает число из внешнего ответа: отсутствующее поле
// получает значение по умолчанию, не-конечное — минимум своего диапазона.
func fieldValue(p *float64, missing, min float64) int {
	if p == nil {
		return int(missing)
	}
	v := *p
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return int(min)
	}
	return int(math.Floor(v))
}

// clampInt загоняет значение в [lo, hi]; при hi < lo побеждает hi.
func clampInt(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
