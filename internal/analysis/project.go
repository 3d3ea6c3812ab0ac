package analysis

import "uxlens/internal/domain/entity"

// DisplayRect — размеры элемента, в котором отрисован скриншот.
type DisplayRect struct {
	Width  float64
	Height float64
}

// Rect — прямоугольник в экранных координатах.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Project переводит область замечания из пикселей исходного изображения
// в экранные координаты с независимым масштабом по осям. Опорные размеры
// берутся из заявленного в результате image.{width,height}: фактические
// пиксели отрисованного файла могут с ними расходиться. Пока рисовать
// некуда, возвращается пустой прямоугольник.
func Project(b entity.BBox, display DisplayRect, ref entity.ImageSize) Rect {
	if display.Width <= 0 || display.Height <= 0 || ref.Width <= 0 || ref.Height <= 0 {
		return Rect{}
	}

	sx := display.Width / float64(ref.Width)
	sy := display.Height / float64(ref.Height)

	return Rect{
		Left:   float64(b.X) * sx,
		Top:    float64(b.Y) * sy,
		Width:  float64(b.W) * sx,
		Height: float64(b.H) * sy,
	}
}
