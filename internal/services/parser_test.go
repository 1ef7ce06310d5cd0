package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatchScore(t *testing.T) {
	parser := NewResponseParser()

	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{"plain integer", "72", 72},
		{"integer with prose", "The match is 85%.", 85},
		{"clamped above 100", "The match is 123%", 100},
		{"no digits", "no numbers here", 0},
		{"empty response", "", 0},
		{"zero", "0", 0},
		{"exactly 100", "100", 100},
		{"digits concatenate across text", "I'd say 9 out of 10", 100},
		{"newlines around number", "\n\n64\n", 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parser.ParseMatchScore(tt.raw))
		})
	}
}

func TestParseKeywordBreakdownWellFormed(t *testing.T) {
	parser := NewResponseParser()

	raw := `### Skills
Matched: Python, AWS, Docker
Missing: Kubernetes

### Experience
Matched: 5 years backend development
Missing: team leadership

### Tools
Matched: Git
Missing: Terraform, Helm

### Education
Matched: BSc Computer Science
Missing: none`

	breakdown := parser.ParseKeywordBreakdown(raw)

	assert.Contains(t, breakdown.Skills.Matched, "Python")
	assert.Contains(t, breakdown.Skills.Matched, "AWS")
	assert.Contains(t, breakdown.Skills.Missing, "Kubernetes")
	assert.Equal(t, []string{"5 years backend development"}, breakdown.Experience.Matched)
	assert.Equal(t, []string{"Terraform", "Helm"}, breakdown.Tools.Missing)
	assert.Contains(t, breakdown.Education.Matched, "BSc Computer Science")
	// "none" is not a term
	assert.Empty(t, breakdown.Education.Missing)
}

func TestParseKeywordBreakdownBulletLists(t *testing.T) {
	parser := NewResponseParser()

	raw := `### Skills
Matched:
- Python
- Docker
Missing:
* Kubernetes
• Terraform`

	breakdown := parser.ParseKeywordBreakdown(raw)

	assert.Equal(t, []string{"Python", "Docker"}, breakdown.Skills.Matched)
	assert.Equal(t, []string{"Kubernetes", "Terraform"}, breakdown.Skills.Missing)
}

func TestParseKeywordBreakdownMissingCategory(t *testing.T) {
	parser := NewResponseParser()

	raw := `### Skills
Matched: Go
Missing: Rust`

	breakdown := parser.ParseKeywordBreakdown(raw)

	// Absent categories yield empty lists, not an error.
	assert.Empty(t, breakdown.Experience.Matched)
	assert.Empty(t, breakdown.Experience.Missing)
	assert.Empty(t, breakdown.Tools.Matched)
	assert.Empty(t, breakdown.Education.Matched)
	assert.Equal(t, []string{"Go"}, breakdown.Skills.Matched)
}

func TestParseKeywordBreakdownGarbage(t *testing.T) {
	parser := NewResponseParser()

	breakdown := parser.ParseKeywordBreakdown("I cannot help with that request.")

	assert.Empty(t, breakdown.Skills.Matched)
	assert.Empty(t, breakdown.Skills.Missing)
	assert.Empty(t, breakdown.Education.Missing)
}

func TestParseScoreBreakdown(t *testing.T) {
	parser := NewResponseParser()

	breakdown := parser.ParseScoreBreakdown(`{"skills": 80, "experience": 70, "tools": 60, "education": 90}`)
	require.NotNil(t, breakdown)
	assert.Equal(t, 80.0, breakdown.Skills)
	assert.Equal(t, 90.0, breakdown.Education)
}

func TestParseScoreBreakdownMarkdownFences(t *testing.T) {
	parser := NewResponseParser()

	raw := "```json\n{\"skills\": 55, \"experience\": 45, \"tools\": 35, \"education\": 25}\n```"
	breakdown := parser.ParseScoreBreakdown(raw)
	require.NotNil(t, breakdown)
	assert.Equal(t, 55.0, breakdown.Skills)
}

func TestParseScoreBreakdownMalformed(t *testing.T) {
	parser := NewResponseParser()

	// A defined absent value, never a raised error.
	assert.Nil(t, parser.ParseScoreBreakdown("sorry, I can't produce JSON today"))
	assert.Nil(t, parser.ParseScoreBreakdown(""))
	assert.Nil(t, parser.ParseScoreBreakdown("{broken"))
}

func TestParseNarrative(t *testing.T) {
	parser := NewResponseParser()

	raw := `SUMMARY:
Strong backend candidate with cloud experience.

MISSING SKILLS:
- Kubernetes
- GraphQL

SUGGESTIONS:
- Add quantified achievements.`

	narrative := parser.ParseNarrative(raw)

	assert.Equal(t, "Strong backend candidate with cloud experience.", narrative.Summary)
	assert.Contains(t, narrative.MissingSkills, "Kubernetes")
	assert.Contains(t, narrative.Suggestions, "quantified achievements")
}

func TestParseNarrativeMissingSections(t *testing.T) {
	parser := NewResponseParser()

	narrative := parser.ParseNarrative("just some text without any markers")

	assert.Empty(t, narrative.MissingSkills)
	assert.Empty(t, narrative.Suggestions)
}
