package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"uxlens/internal/domain/entity"
)

func fptr(v float64) *float64 { return &v }

func TestNormalize_Totality(t *testing.T) {
	// nil и пустой ответ — валидный вход, а не ошибка.
	res := Normalize(nil, 800, 600)
	require.Equal(t, entity.ImageSize{Width: 800, Height: 600}, res.Image)
	require.Empty(t, res.Issues)

	res = Normalize(&entity.RawAnalysis{}, 800, 600)
	require.Empty(t, res.Issues)
	require.False(t, res.Meta.LowQualityWarning)

	// Замечание вообще без полей получает id и область по умолчанию.
	res = Normalize(&entity.RawAnalysis{Issues: []entity.RawIssue{{}}}, 800, 600)
	require.Len(t, res.Issues, 1)
	require.Equal(t, "iss_1", res.Issues[0].ID)
	require.Equal(t, entity.BBox{X: 0, Y: 0, W: 40, H: 40}, res.Issues[0].BBox)
}

func TestNormalize_ClampScenario(t *testing.T) {
	raw := &entity.RawAnalysis{Issues: []entity.RawIssue{{
		BBox: &entity.RawBBox{X: fptr(-5), Y: fptr(-5), W: fptr(999999), H: fptr(999999)},
	}}}

	res := Normalize(raw, 800, 600)
	require.Len(t, res.Issues, 1)
	require.Equal(t, entity.BBox{X: 0, Y: 0, W: 800, H: 600}, res.Issues[0].BBox)
}

func TestNormalize_EmptyIssues(t *testing.T) {
	res := Normalize(&entity.RawAnalysis{Issues: []entity.RawIssue{}}, 800, 600)
	require.Equal(t, entity.ImageSize{Width: 800, Height: 600}, res.Image)
	require.NotNil(t, res.Issues)
	require.Empty(t, res.Issues)
	require.False(t, res.Meta.LowQualityWarning)
}

func TestNormalize_OrderAndLengthPreserved(t *testing.T) {
	raw := &entity.RawAnalysis{Issues: []entity.RawIssue{
		{ID: "b"},
		{ID: ""},
		{ID: "a"},
	}}

	res := Normalize(raw, 800, 600)
	require.Len(t, res.Issues, 3)
	require.Equal(t, "b", res.Issues[0].ID)
	require.Equal(t, "iss_2", res.Issues[1].ID)
	require.Equal(t, "a", res.Issues[2].ID)
}

func TestNormalize_NonFiniteNumbers(t *testing.T) {
	raw := &entity.RawAnalysis{Issues: []entity.RawIssue{{
		BBox: &entity.RawBBox{
			X: fptr(math.NaN()),
			Y: fptr(math.Inf(1)),
			W: fptr(math.Inf(-1)),
			H: fptr(math.NaN()),
		},
	}}}

	// Не-конечные значения сводятся к минимуму своего диапазона.
	res := Normalize(raw, 800, 600)
	require.Equal(t, entity.BBox{X: 0, Y: 0, W: 10, H: 10}, res.Issues[0].BBox)
}

func TestNormalize_ContentPassThrough(t *testing.T) {
	ms := 1234
	raw := &entity.RawAnalysis{
		Issues: []entity.RawIssue{{
			ID:             "ext_7",
			BBox:           &entity.RawBBox{X: fptr(10), Y: fptr(20), W: fptr(30), H: fptr(40)},
			Severity:       "urgent",
			Category:       "странная категория",
			Title:          "Заголовок",
			Rationale:      "Обоснование",
			Recommendation: "Рекомендация",
		}},
		Meta: &entity.RawMeta{ProcessingMS: &ms},
	}

	res := Normalize(raw, 500, 600)
	require.Equal(t, "ext_7", res.Issues[0].ID)
	require.Equal(t, entity.BBox{X: 10, Y: 20, W: 30, H: 40}, res.Issues[0].BBox)
	// Контент нормализатор не трогает, даже сомнительный.
	require.Equal(t, entity.Severity("urgent"), res.Issues[0].Severity)
	require.Equal(t, entity.Category("странная категория"), res.Issues[0].Category)
	require.Equal(t, "Заголовок", res.Issues[0].Title)
	require.Equal(t, 1234, res.Meta.ProcessingMS)
	// Флаг качества пересчитывается по размерам вызывающего.
	require.True(t, res.Meta.LowQualityWarning)
}

func TestNormalize_ContainmentBeatsMinimumSize(t *testing.T) {
	raw := &entity.RawAnalysis{Issues: []entity.RawIssue{{
		BBox: &entity.RawBBox{X: fptr(795), Y: fptr(597)},
	}}}

	res := Normalize(raw, 800, 600)
	bb := res.Issues[0].BBox
	require.Equal(t, 795, bb.X)
	require.Equal(t, 597, bb.Y)
	require.Equal(t, 5, bb.W)
	require.Equal(t, 3, bb.H)
	require.LessOrEqual(t, bb.X+bb.W, 800)
	require.LessOrEqual(t, bb.Y+bb.H, 600)
}

func TestNormalize_FractionalCoordinatesFloored(t *testing.T) {
	raw := &entity.RawAnalysis{Issues: []entity.RawIssue{{
		BBox: &entity.RawBBox{X: fptr(10.9), Y: fptr(20.2), W: fptr(30.7), H: fptr(40.5)},
	}}}

	res := Normalize(raw, 800, 600)
	require.Equal(t, entity.BBox{X: 10, Y: 20, W: 30, H: 40}, res.Issues[0].BBox)
}
