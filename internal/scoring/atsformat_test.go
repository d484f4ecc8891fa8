package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreATSFormat(t *testing.T) {
	imageTip := "Avoid embedding images in your resume. ATS systems cannot read text from images."
	headerTip := "Use clear, standard section headers (e.g., 'Experience', 'Education', 'Skills') for better ATS parsing."

	tests := []struct {
		name     string
		text     string
		wantTips []string
	}{
		{name: "clean", text: "Summary\nSkills\nExperience", wantTips: []string{}},
		{name: "image reference", text: "Summary Skills Experience headshot.JPG", wantTips: []string{imageTip}},
		{name: "too few headers", text: "Skills and Projects", wantTips: []string{headerTip}},
		{name: "both", text: "logo.png", wantTips: []string{imageTip, headerTip}},
		{name: "headers must be whole words", text: "summaryskills experiences educational", wantTips: []string{headerTip}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreATSFormat(tt.text)
			assert.Equal(t, ATSFormatMaxPoints, got.Points, "format category never deducts")
			assert.Equal(t, tt.wantTips, got.Tips)
		})
	}
}
