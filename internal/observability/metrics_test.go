package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetrics(t *testing.T) {
	assert.NotPanics(t, func() {
		InitMetrics()
		InitMetrics()
	})

	AnalysesTotal.WithLabelValues(OutcomeScored).Inc()
	ExtractionFailuresTotal.WithLabelValues("pdf").Inc()
	UploadsRejectedTotal.WithLabelValues("too_large").Inc()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, mf := range families {
		names[mf.GetName()] = true
	}

	for _, name := range []string{
		"resume_analyses_total",
		"resume_extraction_failures_total",
		"resume_uploads_rejected_total",
		"resume_analysis_duration_seconds",
		"resume_ats_score",
	} {
		assert.True(t, names[name], name)
	}
}
