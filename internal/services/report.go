package services

import (
	"fmt"
	"strings"

	"hirely/resume-matcher/internal/models"
)

// ReportService renders one analysis as a plain-text report for download.
// Output is full Unicode by default; the ASCII mode transliterates bullets
// and dashes for renderers with limited character sets.
type ReportService interface {
	Build(analysis *models.Analysis) string
}

type reportService struct {
	asciiOnly bool
}

func NewReportService(asciiOnly bool) ReportService {
	return &reportService{asciiOnly: asciiOnly}
}

var asciiReplacer = strings.NewReplacer(
	"•", "-",
	"–", "-",
	"—", "-",
)

// Build implements ReportService.
func (r *reportService) Build(analysis *models.Analysis) string {
	var b strings.Builder

	b.WriteString("RESUME MATCH REPORT\n")
	b.WriteString("===================\n\n")

	fmt.Fprintf(&b, "Candidate: %s\n", analysis.CandidateName)
	fmt.Fprintf(&b, "Average Score: %.2f%%\n\n", analysis.AverageScore)

	b.WriteString("Backend Scores\n")
	b.WriteString("--------------\n")
	for _, score := range analysis.Scores {
		if score.Available {
			fmt.Fprintf(&b, "%s: %d%%\n", score.Backend, score.Score)
		} else {
			fmt.Fprintf(&b, "%s: unavailable\n", score.Backend)
		}
	}
	b.WriteString("\n")

	writeSection(&b, "Summary", analysis.Summary)
	writeSection(&b, "Missing Skills", analysis.MissingSkills)
	writeSection(&b, "Suggestions", analysis.Suggestions)

	if analysis.KeywordBreakdown != nil {
		b.WriteString("Keyword Breakdown\n")
		b.WriteString("-----------------\n")
		writeCategory(&b, "Skills", analysis.KeywordBreakdown.Skills)
		writeCategory(&b, "Experience", analysis.KeywordBreakdown.Experience)
		writeCategory(&b, "Tools", analysis.KeywordBreakdown.Tools)
		writeCategory(&b, "Education", analysis.KeywordBreakdown.Education)
		b.WriteString("\n")
	}

	if analysis.ScoreBreakdown != nil {
		b.WriteString("Score Breakdown\n")
		b.WriteString("---------------\n")
		fmt.Fprintf(&b, "Skills: %.0f\n", analysis.ScoreBreakdown.Skills)
		fmt.Fprintf(&b, "Experience: %.0f\n", analysis.ScoreBreakdown.Experience)
		fmt.Fprintf(&b, "Tools: %.0f\n", analysis.ScoreBreakdown.Tools)
		fmt.Fprintf(&b, "Education: %.0f\n", analysis.ScoreBreakdown.Education)
		b.WriteString("\n")
	}

	report := b.String()
	if r.asciiOnly {
		report = asciiReplacer.Replace(report)
	}

	return report
}

func writeSection(b *strings.Builder, title, content string) {
	if strings.TrimSpace(content) == "" {
		return
	}

	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", len(title)) + "\n")
	b.WriteString(strings.TrimSpace(content) + "\n\n")
}

func writeCategory(b *strings.Builder, name string, category models.KeywordCategory) {
	fmt.Fprintf(b, "%s matched: %s\n", name, joinOrNone(category.Matched))
	fmt.Fprintf(b, "%s missing: %s\n", name, joinOrNone(category.Missing))
}

func joinOrNone(terms []string) string {
	if len(terms) == 0 {
		return "none"
	}
	return strings.Join(terms, ", ")
}
