package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const strongLines = "developed created implemented designed managed grew revenue 50%"

func TestScoreContent_LengthBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		words      int
		wantPoints int
		wantTips   []string
	}{
		{name: "199 words is short", words: 199, wantPoints: 15, wantTips: []string{
			"Your resume is quite short (199 words). Add more detail about your experience, projects, and achievements.",
		}},
		{name: "200 words is ideal", words: 200, wantPoints: 20, wantTips: []string{}},
		{name: "800 words is ideal", words: 800, wantPoints: 20, wantTips: []string{}},
		{name: "801 words is lengthy", words: 801, wantPoints: 15, wantTips: []string{
			"Your resume is lengthy (801 words). Consider condensing to 1-2 pages for better readability.",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreContent(padTo(strongLines, tt.words))
			assert.Equal(t, tt.wantPoints, got.Points)
			assert.Equal(t, ContentMaxPoints, got.Max)
			assert.Equal(t, tt.wantTips, got.Tips)
		})
	}
}

func TestScoreContent_ActionVerbs(t *testing.T) {
	tests := []struct {
		name       string
		verbs      string
		wantPoints int
		wantTip    string
	}{
		{name: "five verbs", verbs: "developed created implemented designed managed", wantPoints: 20},
		{name: "three verbs", verbs: "Developed Created Implemented", wantPoints: 18,
			wantTip: "Use more action verbs (e.g., 'developed', 'created', 'implemented') to make your achievements stand out."},
		{name: "no verbs", verbs: "worked on things", wantPoints: 15,
			wantTip: "Include more action verbs to describe your accomplishments and responsibilities."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreContent(padTo(tt.verbs+" served 3 years", 300))
			assert.Equal(t, tt.wantPoints, got.Points)
			if tt.wantTip == "" {
				assert.Empty(t, got.Tips)
			} else {
				assert.Equal(t, []string{tt.wantTip}, got.Tips)
			}
		})
	}
}

func TestScoreContent_Metrics(t *testing.T) {
	metricTip := "Add quantifiable metrics (percentages, numbers, timeframes) to demonstrate your impact."
	verbs := "developed created implemented designed managed "

	tests := []struct {
		name      string
		text      string
		hasMetric bool
	}{
		{name: "percentage", text: "cut latency 40%", hasMetric: true},
		{name: "plus", text: "10+ services", hasMetric: true},
		{name: "dollars", text: "saved $2000", hasMetric: true},
		{name: "years", text: "5 years of go", hasMetric: true},
		{name: "single month", text: "1 month sprint", hasMetric: true},
		{name: "users", text: "served 3000 users", hasMetric: true},
		{name: "customers", text: "12 customers onboarded", hasMetric: true},
		{name: "bare number", text: "room 42", hasMetric: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreContent(padTo(verbs+tt.text, 300))
			if tt.hasMetric {
				assert.Equal(t, 20, got.Points)
				assert.Empty(t, got.Tips)
			} else {
				assert.Equal(t, 15, got.Points)
				assert.Equal(t, []string{metricTip}, got.Tips)
			}
		})
	}
}

func TestCountActionVerbs(t *testing.T) {
	assert.Equal(t, 0, CountActionVerbs(""))
	assert.Equal(t, 1, CountActionVerbs("developed developed developed"))
	// "led" is found inside "called".
	assert.Equal(t, 1, CountActionVerbs("called"))
	assert.Equal(t, 14, CountActionVerbs("developed created implemented designed managed led improved achieved optimized built delivered executed launched established"))
}
