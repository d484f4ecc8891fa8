package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/scoring"
)

const sampleResume = `Jane Doe
email: jane@example.com
Summary
Backend engineer.
Skills: Python, React, SQL
Experience
Developed and implemented services, managed a team of 5 people, optimized queries by 40%.
Education
B.S. Computer Science`

type fakeExtractor struct {
	text  string
	err   error
	panic any
}

func (f *fakeExtractor) ExtractText(models.Document) (string, error) {
	if f.panic != nil {
		panic(f.panic)
	}
	return f.text, f.err
}

type fakeAnnotator struct {
	available bool
	err       error
	calls     int
}

func (f *fakeAnnotator) Available() bool { return f.available }

func (f *fakeAnnotator) Annotate(context.Context, string) (*Annotations, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &Annotations{Skills: []string{"Python"}}, nil
}

func newTestAnalyzer(t *testing.T, extractor TextExtractor, annotator Annotator) AnalyzerService {
	t.Helper()
	repo, err := repositories.NewKeywordRepository(repositories.DefaultRole, repositories.DefaultKeywords)
	require.NoError(t, err)
	return NewAnalyzerService(extractor, repo, annotator, zap.NewNop())
}

func TestAnalyzerService_Analyze(t *testing.T) {
	analyzer := newTestAnalyzer(t, &fakeExtractor{text: sampleResume}, nil)

	got := analyzer.Analyze(context.Background(), models.NewDocument("cv.pdf"), "")

	developer := models.KeywordSet{Role: "developer", Keywords: repositories.DefaultKeywords["developer"]}
	want := scoring.Score(sampleResume, developer).Result()
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"Flask", "TypeScript", "Git"}, got.KeywordSuggestions)
}

func TestAnalyzerService_Analyze_Deterministic(t *testing.T) {
	analyzer := newTestAnalyzer(t, &fakeExtractor{text: sampleResume}, nil)
	doc := models.NewDocument("cv.docx")

	first := analyzer.Analyze(context.Background(), doc, "developer")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, analyzer.Analyze(context.Background(), doc, "developer"))
	}
}

func TestAnalyzerService_Analyze_Roles(t *testing.T) {
	analyzer := newTestAnalyzer(t, &fakeExtractor{err: models.ErrExtractionFailed}, nil)
	doc := models.NewDocument("cv.pdf")

	got := analyzer.Analyze(context.Background(), doc, "data_science")
	assert.Equal(t, repositories.DefaultKeywords["data_science"], got.KeywordSuggestions)

	got = analyzer.Analyze(context.Background(), doc, "DATA_SCIENCE")
	assert.Equal(t, repositories.DefaultKeywords["data_science"], got.KeywordSuggestions)

	// Unknown roles fall back to the default table.
	got = analyzer.Analyze(context.Background(), doc, "astronaut")
	assert.Equal(t, repositories.DefaultKeywords["developer"], got.KeywordSuggestions)
}

func TestAnalyzerService_Analyze_ExtractionFailure(t *testing.T) {
	for _, err := range []error{
		fmt.Errorf("%w: corrupt", models.ErrExtractionFailed),
		fmt.Errorf("%w: resume.txt", models.ErrUnsupportedFormat),
	} {
		analyzer := newTestAnalyzer(t, &fakeExtractor{err: err}, nil)

		got := analyzer.Analyze(context.Background(), models.NewDocument("cv.pdf"), "")

		assert.Equal(t, 0, got.Score)
		assert.Equal(t, repositories.DefaultKeywords["developer"], got.KeywordSuggestions)
		assert.Equal(t, []string{TipExtractionFailed}, got.FormattingTips)
	}
}

func TestAnalyzerService_Analyze_RealEmptyFile(t *testing.T) {
	dir := t.TempDir()
	analyzer := newTestAnalyzer(t, NewTextExtractor(NewPDFParserService(), NewDOCXParserService()), nil)

	got := analyzer.Analyze(context.Background(), models.NewDocument(writeFile(t, dir, "empty.pdf", nil)), "")

	assert.Equal(t, 0, got.Score)
	assert.Equal(t, repositories.DefaultKeywords["developer"], got.KeywordSuggestions)
	assert.Equal(t, []string{TipExtractionFailed}, got.FormattingTips)
}

func TestAnalyzerService_Analyze_RealDocx(t *testing.T) {
	dir := t.TempDir()
	analyzer := newTestAnalyzer(t, NewTextExtractor(NewPDFParserService(), NewDOCXParserService()), nil)

	var body strings.Builder
	for _, line := range strings.Split(sampleResume, "\n") {
		body.WriteString(paragraph(line))
	}
	path := writeDocx(t, dir, "cv.docx", documentXML(body.String()))

	got := analyzer.Analyze(context.Background(), models.NewDocument(path), "")

	developer := models.KeywordSet{Role: "developer", Keywords: repositories.DefaultKeywords["developer"]}
	assert.Equal(t, scoring.Score(sampleResume, developer).Result(), got)
}

func TestAnalyzerService_Analyze_Panic(t *testing.T) {
	analyzer := newTestAnalyzer(t, &fakeExtractor{panic: "boom"}, nil)

	var got models.AnalysisResult
	require.NotPanics(t, func() {
		got = analyzer.Analyze(context.Background(), models.NewDocument("cv.pdf"), "")
	})

	assert.Equal(t, 0, got.Score)
	assert.Equal(t, repositories.DefaultKeywords["developer"], got.KeywordSuggestions)
	assert.Equal(t, []string{"An error occurred during analysis: boom"}, got.FormattingTips)
}

func TestAnalyzerService_Annotator(t *testing.T) {
	t.Run("failures do not change the result", func(t *testing.T) {
		annotator := &fakeAnnotator{available: true, err: errors.New("quota exceeded")}
		withAnnotator := newTestAnalyzer(t, &fakeExtractor{text: sampleResume}, annotator)
		without := newTestAnalyzer(t, &fakeExtractor{text: sampleResume}, nil)

		doc := models.NewDocument("cv.pdf")
		assert.Equal(t,
			without.Analyze(context.Background(), doc, ""),
			withAnnotator.Analyze(context.Background(), doc, ""),
		)
		assert.Equal(t, 1, annotator.calls)
	})

	t.Run("unavailable annotator is not called", func(t *testing.T) {
		annotator := &fakeAnnotator{}
		analyzer := newTestAnalyzer(t, &fakeExtractor{text: sampleResume}, annotator)

		analyzer.Analyze(context.Background(), models.NewDocument("cv.pdf"), "")
		assert.Zero(t, annotator.calls)
	})

	t.Run("extraction failure skips annotation", func(t *testing.T) {
		annotator := &fakeAnnotator{available: true}
		analyzer := newTestAnalyzer(t, &fakeExtractor{err: models.ErrExtractionFailed}, annotator)

		analyzer.Analyze(context.Background(), models.NewDocument("cv.pdf"), "")
		assert.Zero(t, annotator.calls)
	})
}

func TestAnalyzerService_AnalyzeText(t *testing.T) {
	analyzer := newTestAnalyzer(t, &fakeExtractor{}, nil)

	t.Run("scores text directly", func(t *testing.T) {
		got := analyzer.AnalyzeText(context.Background(), sampleResume, "")
		developer := models.KeywordSet{Role: "developer", Keywords: repositories.DefaultKeywords["developer"]}
		assert.Equal(t, scoring.Score(sampleResume, developer).Result(), got)
	})

	t.Run("blank text", func(t *testing.T) {
		got := analyzer.AnalyzeText(context.Background(), " \n\t ", "data_science")

		assert.Equal(t, 0, got.Score)
		assert.Equal(t, repositories.DefaultKeywords["data_science"], got.KeywordSuggestions)
		assert.Equal(t, []string{TipUnreadableText}, got.FormattingTips)
	})
}
