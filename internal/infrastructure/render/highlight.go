package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"uxlens/internal/analysis"
	"uxlens/internal/domain/entity"
	"uxlens/internal/domain/port"
)

// BoxHighlighter рисует рамки замечаний поверх скриншота.
type BoxHighlighter struct {
	MaxDisplayWidth int // ширина, до которой ужимается широкий скриншот
	StrokeWidth     int // толщина рамки в пикселях
}

// NewBoxHighlighter создаёт отрисовщик с настройками по умолчанию.
func NewBoxHighlighter() *BoxHighlighter {
	return &BoxHighlighter{
		MaxDisplayWidth: 1280,
		StrokeWidth:     3,
	}
}

// Highlight возвращает PNG со скриншотом и рамками вокруг областей замечаний.
// Рамки проецируются из заявленных в результате размеров в фактические
// экранные размеры картинки, поэтому расхождение размеров не ломает разметку.
func (h *BoxHighlighter) Highlight(imageData []byte, result *entity.AnalysisResult) ([]byte, error) {
	src, err := imaging.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}

	canvas := imaging.Clone(src)
	if h.MaxDisplayWidth > 0 && canvas.Bounds().Dx() > h.MaxDisplayWidth {
		canvas = imaging.Resize(canvas, h.MaxDisplayWidth, 0, imaging.Lanczos)
	}

	display := analysis.DisplayRect{
		Width:  float64(canvas.Bounds().Dx()),
		Height: float64(canvas.Bounds().Dy()),
	}
	for _, issue := range result.Issues {
		h.strokeRect(canvas, analysis.Project(issue.BBox, display, result.Image), severityColor(issue.Severity))
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode highlight: %w", err)
	}

	return buf.Bytes(), nil
}

// strokeRect обводит прямоугольник рамкой заданного цвета.
func (h *BoxHighlighter) strokeRect(img *image.NRGBA, r analysis.Rect, c color.NRGBA) {
	x0, y0 := int(r.Left), int(r.Top)
	x1, y1 := int(r.Left+r.Width), int(r.Top+r.Height)

	for t := 0; t < h.StrokeWidth; t++ {
		drawHLine(img, x0, x1, y0+t, c)
		drawHLine(img, x0, x1, y1-1-t, c)
		drawVLine(img, x0+t, y0, y1, c)
		drawVLine(img, x1-1-t, y0, y1, c)
	}
}

func drawHLine(img *image.NRGBA, x0, x1, y int, c color.NRGBA) {
	b := img.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	for x := x0; x < x1; x++ {
		if x >= b.Min.X && x < b.Max.X {
			img.SetNRGBA(x, y, c)
		}
	}
}

func drawVLine(img *image.NRGBA, x, y0, y1 int, c color.NRGBA) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X {
		return
	}
	for y := y0; y < y1; y++ {
		if y >= b.Min.Y && y < b.Max.Y {
			img.SetNRGBA(x, y, c)
		}
	}
}

// severityColor подбирает цвет рамки под серьёзность замечания.
func severityColor(s entity.Severity) color.NRGBA {
	switch s {
	case entity.SeverityHigh:
		return color.NRGBA{R: 220, G: 53, B: 69, A: 255}
	case entity.SeverityMedium:
		return color.NRGBA{R: 255, G: 153, B: 0, A: 255}
	case entity.SeverityLow:
		return color.NRGBA{R: 255, G: 205, B: 0, A: 255}
	default:
		return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	}
}

// Проверка реализации интерфейса
var _ port.Highlighter = (*BoxHighlighter)(nil)
