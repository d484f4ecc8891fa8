package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	AnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_analyses_total",
			Help: "Total number of resume analyses by outcome",
		},
		[]string{"outcome"},
	)
	AnalysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resume_analysis_duration_seconds",
			Help:    "Resume analysis duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
	)
	ATSScoreHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resume_ats_score",
			Help:    "Distribution of ATS scores",
			Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)
	ExtractionFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_extraction_failures_total",
			Help: "Total number of text extraction failures by document format",
		},
		[]string{"format"},
	)
	UploadsRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_uploads_rejected_total",
			Help: "Total number of rejected uploads by reason",
		},
		[]string{"reason"},
	)
)

const (
	OutcomeScored           = "scored"
	OutcomeExtractionFailed = "extraction_failed"
	OutcomeScoringFault     = "scoring_fault"
)

var initOnce sync.Once

// InitMetrics registers the collectors with the default registry. Safe to call more than once.
func InitMetrics() {
	initOnce.Do(func() {
		prometheus.MustRegister(AnalysesTotal)
		prometheus.MustRegister(AnalysisDuration)
		prometheus.MustRegister(ATSScoreHistogram)
		prometheus.MustRegister(ExtractionFailuresTotal)
		prometheus.MustRegister(UploadsRejectedTotal)
	})
}
