package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hirely/resume-matcher/internal/models"
)

func sampleAnalysis() *models.Analysis {
	return &models.Analysis{
		CandidateName: "John Doe",
		AverageScore:  86,
		Scores: []models.BackendScore{
			{Backend: "Google Gemini", Score: 72, Available: true},
			{Backend: "Groq LLaMA3", Score: 0, Available: false},
		},
		Summary:       "Strong candidate • cloud native",
		MissingSkills: "- Kubernetes",
		Suggestions:   "- Add metrics — quantify impact",
		KeywordBreakdown: &models.KeywordBreakdown{
			Skills: models.KeywordCategory{
				Matched: []string{"Python"},
				Missing: []string{"Kubernetes"},
			},
		},
	}
}

func TestBuildReportSections(t *testing.T) {
	report := NewReportService(false).Build(sampleAnalysis())

	assert.Contains(t, report, "Candidate: John Doe")
	assert.Contains(t, report, "Average Score: 86.00%")
	assert.Contains(t, report, "Google Gemini: 72%")
	// Failed backends render as unavailable, not 0%.
	assert.Contains(t, report, "Groq LLaMA3: unavailable")
	assert.Contains(t, report, "Strong candidate")
	assert.Contains(t, report, "Kubernetes")
	assert.Contains(t, report, "Skills matched: Python")
	assert.Contains(t, report, "Skills missing: Kubernetes")
	assert.Contains(t, report, "Experience matched: none")
}

func TestBuildReportUnicodeByDefault(t *testing.T) {
	report := NewReportService(false).Build(sampleAnalysis())

	assert.Contains(t, report, "•")
	assert.Contains(t, report, "—")
}

func TestBuildReportASCIITransliteration(t *testing.T) {
	report := NewReportService(true).Build(sampleAnalysis())

	assert.NotContains(t, report, "•")
	assert.NotContains(t, report, "—")
	assert.Contains(t, report, "Strong candidate - cloud native")
	assert.Contains(t, report, "Add metrics - quantify impact")
}

func TestBuildReportOmitsEmptySections(t *testing.T) {
	analysis := &models.Analysis{
		CandidateName: "Unknown",
		Scores: []models.BackendScore{
			{Backend: "Google Gemini", Score: 0, Available: false},
		},
	}

	report := NewReportService(false).Build(analysis)

	assert.NotContains(t, report, "Summary\n")
	assert.NotContains(t, report, "Keyword Breakdown")
	assert.Contains(t, report, "Candidate: Unknown")
}
