package app

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"uxlens/internal/domain/entity"
	"uxlens/internal/infrastructure/render"
	"uxlens/internal/infrastructure/storage"
)

type fakeAnalyzer struct {
	raw   *entity.RawAnalysis
	err   error
	calls int
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, imageData []byte, width, height int) (*entity.RawAnalysis, error) {
	f.calls++
	return f.raw, f.err
}

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 240, G: 240, B: 240, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newAnalysisService(analyzer *fakeAnalyzer) *AnalysisService {
	sessions := NewSessionService(storage.NewMemorySessionRepository())
	if analyzer == nil {
		return NewAnalysisService(sessions, nil, render.NewBoxHighlighter())
	}
	return NewAnalysisService(sessions, analyzer, render.NewBoxHighlighter())
}

func TestAnalysisService_SyntheticFallbackIsDeterministic(t *testing.T) {
	ctx := context.Background()
	shot := Screenshot{Data: testPNG(t, 800, 600), FileName: "shot.png", Platform: "web"}

	out1, err := newAnalysisService(nil).ProcessScreenshot(ctx, "s1", shot)
	require.NoError(t, err)
	out2, err := newAnalysisService(nil).ProcessScreenshot(ctx, "s1", shot)
	require.NoError(t, err)

	require.Equal(t, out1.Result, out2.Result)
	require.Equal(t, entity.ImageSize{Width: 800, Height: 600}, out1.Result.Image)
}

func TestAnalysisService_ExternalResultIsNormalized(t *testing.T) {
	x, y, w, h := -5.0, -5.0, 999999.0, 999999.0
	analyzer := &fakeAnalyzer{raw: &entity.RawAnalysis{Issues: []entity.RawIssue{{
		BBox:     &entity.RawBBox{X: &x, Y: &y, W: &w, H: &h},
		Severity: entity.SeverityHigh,
		Title:    "Внешнее замечание",
	}}}}

	svc := newAnalysisService(analyzer)
	out, err := svc.ProcessScreenshot(context.Background(), "s1", Screenshot{Data: testPNG(t, 800, 600), FileName: "shot.png"})
	require.NoError(t, err)
	require.Equal(t, 1, analyzer.calls)

	require.Len(t, out.Result.Issues, 1)
	require.Equal(t, "iss_1", out.Result.Issues[0].ID)
	require.Equal(t, entity.BBox{X: 0, Y: 0, W: 800, H: 600}, out.Result.Issues[0].BBox)
	require.Equal(t, "Внешнее замечание", out.Result.Issues[0].Title)

	// Есть замечания — есть и подсветка.
	require.NotEmpty(t, out.Highlighted)
}

func TestAnalysisService_AnalyzerFailureFallsBack(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("timeout")}

	svc := newAnalysisService(analyzer)
	out, err := svc.ProcessScreenshot(context.Background(), "s1", Screenshot{Data: testPNG(t, 800, 600), FileName: "shot.png", Platform: "web"})
	require.NoError(t, err)
	require.Equal(t, 1, analyzer.calls)

	// Отказ внешнего анализатора не доходит до пользователя:
	// результат синтезируется локально.
	require.NotNil(t, out.Result)
	require.Equal(t, entity.ImageSize{Width: 800, Height: 600}, out.Result.Image)
}

func TestAnalysisService_SessionMovesToResults(t *testing.T) {
	sessions := NewSessionService(storage.NewMemorySessionRepository())
	svc := NewAnalysisService(sessions, nil, nil)

	_, err := svc.ProcessScreenshot(context.Background(), "s1", Screenshot{Data: testPNG(t, 800, 600), FileName: "shot.png"})
	require.NoError(t, err)

	session, err := sessions.Get(context.Background(), "s1")
	require.NoError(t, err)
	require.Equal(t, entity.StateResults, session.State)
	require.Equal(t, "shot.png", session.FileName)

	result, ok := svc.Result("s1")
	require.True(t, ok)
	require.Equal(t, entity.ImageSize{Width: 800, Height: 600}, result.Image)
}

func TestAnalysisService_RejectsBadInput(t *testing.T) {
	svc := newAnalysisService(nil)
	ctx := context.Background()

	_, err := svc.ProcessScreenshot(ctx, "s1", Screenshot{})
	require.Error(t, err)

	_, err = svc.ProcessScreenshot(ctx, "s1", Screenshot{Data: []byte("не картинка"), FileName: "x.png"})
	require.Error(t, err)

	_, ok := svc.Result("s1")
	require.False(t, ok)
}
