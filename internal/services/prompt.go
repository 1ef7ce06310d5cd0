package services

import (
	"fmt"
	"strings"
)

// PromptBuilder renders the fixed natural-language templates sent to the
// backends. Pure templating: inputs are embedded as-is, with no length
// validation or truncation.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildMatchPrompt asks a backend for a bare integer match percentage.
func (pb *PromptBuilder) BuildMatchPrompt(resumeText, jdText string) string {
	return strings.TrimSpace(fmt.Sprintf(`You are an AI assistant specialized in resume analysis and recruitment.
Analyze the given resume and compare it with the job description.

Provide a match percentage between 0 and 100.

Resume:
%s

Job Description:
%s

Respond with only the match percentage as an integer.`, resumeText, jdText))
}

// BuildCandidateNamePrompt asks for the candidate's full name and nothing else.
func (pb *PromptBuilder) BuildCandidateNamePrompt(resumeText string) string {
	return strings.TrimSpace(fmt.Sprintf(`You are an AI assistant specialized in resume analysis.

Your task is to get full name of the candidate from the resume.

Resume:
%s

Respond with only the candidate's full name.`, resumeText))
}

// BuildNarrativePrompt asks for the qualitative feedback sections.
func (pb *PromptBuilder) BuildNarrativePrompt(resumeText, jdText string) string {
	return strings.TrimSpace(fmt.Sprintf(`You are an AI assistant specialized in resume analysis and recruitment.
Analyze the given resume against the job description.

Resume:
%s

Job Description:
%s

Respond with exactly these three sections:

SUMMARY:
A short summary of how well the candidate fits the role.

MISSING SKILLS:
A bullet list of skills the job requires that the resume does not show.

SUGGESTIONS:
A bullet list of concrete improvements the candidate could make to the resume.`, resumeText, jdText))
}

// BuildKeywordBreakdownPrompt asks for matched/missing terms per category.
// The section markers here are what the response parser splits on.
func (pb *PromptBuilder) BuildKeywordBreakdownPrompt(resumeText, jdText string) string {
	return strings.TrimSpace(fmt.Sprintf(`You are an AI assistant specialized in resume analysis and recruitment.
Compare the resume against the job description keyword by keyword.

Resume:
%s

Job Description:
%s

For each of the categories Skills, Experience, Tools, Education, list the
keywords from the job description that the resume matches and the ones it is
missing. Respond in exactly this format:

### Skills
Matched: keyword1, keyword2
Missing: keyword3

### Experience
Matched: ...
Missing: ...

### Tools
Matched: ...
Missing: ...

### Education
Matched: ...
Missing: ...`, resumeText, jdText))
}

// BuildScoreBreakdownPrompt asks for a JSON object with four numeric keys.
func (pb *PromptBuilder) BuildScoreBreakdownPrompt(resumeText, jdText string) string {
	return strings.TrimSpace(fmt.Sprintf(`You are an AI assistant specialized in resume analysis and recruitment.
Score the resume against the job description per category, 0 to 100 each.

Resume:
%s

Job Description:
%s

Respond with only a JSON object in exactly this shape, no markdown, no extra text:
{"skills": 0, "experience": 0, "tools": 0, "education": 0}`, resumeText, jdText))
}

// BuildChatPrompt embeds both documents plus the user's question.
func (pb *PromptBuilder) BuildChatPrompt(resumeText, jdText, question string) string {
	return strings.TrimSpace(fmt.Sprintf(`You are an AI career assistant. You are given a candidate's resume and a
job description. Answer the user's question using only this material.

Resume:
%s

Job Description:
%s

Question:
%s`, resumeText, jdText, question))
}
