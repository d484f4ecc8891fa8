package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/logger"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/observability"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/scoring"
)

const (
	TipExtractionFailed = "Failed to extract text from the file. Please ensure the file is not corrupted and is a valid PDF or DOCX format."
	TipUnreadableText   = "Could not read file text. Please ensure the file is not corrupted and is a valid PDF or DOCX format."
	tipAnalysisError    = "An error occurred during analysis: %v"
)

type analysisStage string

const (
	stageExtracting analysisStage = "extracting"
	stageScoring    analysisStage = "scoring"
	stageDone       analysisStage = "done"
)

// AnalyzerService is the entry point of the engine. Both methods always return a
// well-formed result and never panic.
type AnalyzerService interface {
	Analyze(ctx context.Context, doc models.Document, role string) models.AnalysisResult
	AnalyzeText(ctx context.Context, text string, role string) models.AnalysisResult
}

type analyzerService struct {
	extractor TextExtractor
	keywords  repositories.KeywordRepository
	annotator Annotator
	logger    *zap.Logger
}

func NewAnalyzerService(
	extractor TextExtractor,
	keywords repositories.KeywordRepository,
	annotator Annotator,
	logger *zap.Logger,
) AnalyzerService {
	if annotator == nil {
		annotator = NewNoopAnnotator()
	}
	return &analyzerService{
		extractor: extractor,
		keywords:  keywords,
		annotator: annotator,
		logger:    logger,
	}
}

// Analyze implements AnalyzerService.
func (a *analyzerService) Analyze(ctx context.Context, doc models.Document, role string) (result models.AnalysisResult) {
	start := time.Now()
	keywords := a.keywordSet(role)
	log := a.logger.With(zap.String("file", doc.Path), zap.String("role", keywords.Role))
	stage := stageExtracting

	defer func() {
		if r := recover(); r != nil {
			log.Error("❌ Analysis fault", zap.String("stage", string(stage)), zap.Any("panic", r))
			observability.AnalysesTotal.WithLabelValues(observability.OutcomeScoringFault).Inc()
			result = failureResult(keywords, fmt.Sprintf(tipAnalysisError, r))
		}
		result.Normalize()
		observability.AnalysisDuration.Observe(time.Since(start).Seconds())
	}()

	log.Debug("📄 Extracting text", zap.String("format", string(doc.Format)))
	text, err := a.extractor.ExtractText(doc)
	if err != nil {
		log.Warn("⚠️  Text extraction failed", zap.Error(err))
		observability.ExtractionFailuresTotal.WithLabelValues(formatLabel(doc.Format)).Inc()
		observability.AnalysesTotal.WithLabelValues(observability.OutcomeExtractionFailed).Inc()
		stage = stageDone
		return failureResult(keywords, TipExtractionFailed)
	}
	log.Debug("✅ Text extracted",
		zap.Int("characters", len(text)),
		zap.String("preview", logger.Preview(text, 80)),
	)

	stage = stageScoring
	result = a.score(ctx, log, text, keywords)
	stage = stageDone
	return result
}

// AnalyzeText implements AnalyzerService.
func (a *analyzerService) AnalyzeText(ctx context.Context, text string, role string) (result models.AnalysisResult) {
	keywords := a.keywordSet(role)
	log := a.logger.With(zap.String("role", keywords.Role))

	defer func() {
		if r := recover(); r != nil {
			log.Error("❌ Analysis fault", zap.Any("panic", r))
			observability.AnalysesTotal.WithLabelValues(observability.OutcomeScoringFault).Inc()
			result = failureResult(keywords, fmt.Sprintf(tipAnalysisError, r))
		}
		result.Normalize()
	}()

	if strings.TrimSpace(text) == "" {
		return failureResult(keywords, TipUnreadableText)
	}

	return a.score(ctx, log, text, keywords)
}

func (a *analyzerService) score(ctx context.Context, log *zap.Logger, text string, keywords models.KeywordSet) models.AnalysisResult {
	a.annotate(ctx, log, text)

	result, err := scoring.Safe(text, keywords)
	if err != nil {
		log.Error("❌ Scoring failed", zap.Error(err))
		observability.AnalysesTotal.WithLabelValues(observability.OutcomeScoringFault).Inc()
		return failureResult(keywords, fmt.Sprintf(tipAnalysisError, err))
	}

	observability.AnalysesTotal.WithLabelValues(observability.OutcomeScored).Inc()
	observability.ATSScoreHistogram.Observe(float64(result.Score))
	log.Info("✅ Analysis complete",
		zap.Int("atsScore", result.Score),
		zap.Int("keywordSuggestions", len(result.KeywordSuggestions)),
		zap.Int("formattingTips", len(result.FormattingTips)),
	)

	return result
}

// annotate runs the optional NLP collaborator. Its output is only logged.
func (a *analyzerService) annotate(ctx context.Context, log *zap.Logger, text string) {
	if !a.annotator.Available() {
		return
	}

	annotations, err := a.annotator.Annotate(ctx, text)
	if err != nil {
		log.Warn("⚠️  NLP annotation skipped", zap.Error(err))
		return
	}

	log.Debug("🔍 NLP annotations",
		zap.Int("entities", annotations.Count()),
		zap.Strings("skills", annotations.Skills),
	)
}

// keywordSet resolves the role, falling back to the default role when it is unknown.
func (a *analyzerService) keywordSet(role string) models.KeywordSet {
	if role == "" {
		return a.keywords.Default()
	}

	set, err := a.keywords.FindByRole(role)
	if err != nil {
		a.logger.Warn("⚠️  Unknown role, using default", zap.String("role", role), zap.String("default", a.keywords.DefaultRole()))
		return a.keywords.Default()
	}
	return set
}

func failureResult(keywords models.KeywordSet, tip string) models.AnalysisResult {
	return models.AnalysisResult{
		Score:              0,
		KeywordSuggestions: keywords.Clone().Keywords,
		FormattingTips:     []string{tip},
	}
}

func formatLabel(f models.DocumentFormat) string {
	if f == "" {
		return "unknown"
	}
	return string(f)
}
