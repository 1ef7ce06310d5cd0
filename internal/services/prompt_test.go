package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMatchPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildMatchPrompt("resume body", "jd body")

	assert.Contains(t, prompt, "resume body")
	assert.Contains(t, prompt, "jd body")
	assert.Contains(t, prompt, "match percentage between 0 and 100")
	assert.Contains(t, prompt, "only the match percentage as an integer")
}

func TestBuildCandidateNamePrompt(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildCandidateNamePrompt("resume body")

	assert.Contains(t, prompt, "resume body")
	assert.Contains(t, prompt, "only the candidate's full name")
}

func TestBuildKeywordBreakdownPromptNamesAllCategories(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildKeywordBreakdownPrompt("r", "j")

	for _, category := range []string{"### Skills", "### Experience", "### Tools", "### Education"} {
		assert.Contains(t, prompt, category)
	}
	assert.Contains(t, prompt, "Matched:")
	assert.Contains(t, prompt, "Missing:")
}

func TestBuildScoreBreakdownPromptAsksForJSON(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildScoreBreakdownPrompt("r", "j")

	assert.Contains(t, prompt, `{"skills": 0, "experience": 0, "tools": 0, "education": 0}`)
}

func TestBuildChatPromptEmbedsQuestion(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildChatPrompt("resume body", "jd body", "Is this candidate a fit?")

	assert.Contains(t, prompt, "resume body")
	assert.Contains(t, prompt, "jd body")
	assert.Contains(t, prompt, "Is this candidate a fit?")
}

func TestPromptsPassTextThroughUnmodified(t *testing.T) {
	pb := NewPromptBuilder()

	// No truncation: arbitrarily large inputs are embedded as-is.
	big := make([]byte, 50000)
	for i := range big {
		big[i] = 'x'
	}

	prompt := pb.BuildMatchPrompt(string(big), "jd")
	assert.Contains(t, prompt, string(big))
}
