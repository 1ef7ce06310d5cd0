package services

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"hirely/resume-matcher/internal/models"
)

// ResponseParser extracts structured values from raw LLM text. It is a
// best-effort parser: every method has a defined degraded result (zero,
// empty, or nil) and none of them ever returns an error, so a malformed
// response can never block the pipeline.
type ResponseParser struct{}

func NewResponseParser() *ResponseParser {
	return &ResponseParser{}
}

// Narrative is the qualitative feedback split out of a narrative response.
// Sections absent from the response stay empty.
type Narrative struct {
	Summary       string
	MissingSkills string
	Suggestions   string
}

var (
	categoryHeaderPattern = regexp.MustCompile(`(?i)###\s*(Skills|Experience|Tools|Education)\b`)
	matchedPattern        = regexp.MustCompile(`(?is)Matched\s*:(.*?)(?:Missing\s*:|\z)`)
	missingPattern        = regexp.MustCompile(`(?is)Missing\s*:(.*)`)

	summaryPattern       = regexp.MustCompile(`(?is)SUMMARY\s*:?(.*?)(?:MISSING\s+SKILLS\s*:?|\z)`)
	missingSkillsPattern = regexp.MustCompile(`(?is)MISSING\s+SKILLS\s*:?(.*?)(?:SUGGESTIONS\s*:?|\z)`)
	suggestionsPattern   = regexp.MustCompile(`(?is)SUGGESTIONS\s*:?(.*)`)
)

// ParseMatchScore concatenates every decimal digit in the response, parses
// the result as an integer, and clamps it to 100. No digits means 0. This
// is deliberately crude: "100%twice" and unrelated embedded numbers all
// count, exactly as the backends are prompted to avoid.
func (p *ResponseParser) ParseMatchScore(raw string) int {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	if digits.Len() == 0 {
		return 0
	}

	score, err := strconv.Atoi(digits.String())
	if err != nil {
		// Only reachable when the digit run overflows int, which is
		// necessarily above the cap anyway.
		return 100
	}

	if score > 100 {
		return 100
	}
	return score
}

// ParseNarrative splits a narrative response on its section headers.
func (p *ResponseParser) ParseNarrative(raw string) Narrative {
	return Narrative{
		Summary:       firstGroup(summaryPattern, raw),
		MissingSkills: firstGroup(missingSkillsPattern, raw),
		Suggestions:   firstGroup(suggestionsPattern, raw),
	}
}

// ParseKeywordBreakdown splits a categorized response around the fixed
// section markers. Categories the response does not contain yield empty
// matched and missing lists; parse failure is silent, not an error.
func (p *ResponseParser) ParseKeywordBreakdown(raw string) models.KeywordBreakdown {
	var breakdown models.KeywordBreakdown

	// Locate all headers first, then slice each body up to the next header.
	// A single match-and-consume pass would swallow the marker that opens
	// the following category and skip every other section.
	headers := categoryHeaderPattern.FindAllStringSubmatchIndex(raw, -1)
	for i, header := range headers {
		end := len(raw)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		body := raw[header[1]:end]

		category := models.KeywordCategory{
			Matched: parseTermList(firstGroup(matchedPattern, body)),
			Missing: parseTermList(firstGroup(missingPattern, body)),
		}

		switch strings.ToLower(raw[header[2]:header[3]]) {
		case "skills":
			breakdown.Skills = category
		case "experience":
			breakdown.Experience = category
		case "tools":
			breakdown.Tools = category
		case "education":
			breakdown.Education = category
		}
	}

	return breakdown
}

// ParseScoreBreakdown expects a JSON object with the four fixed numeric
// keys. Any failure returns nil: the breakdown is optional data and its
// absence never halts the pipeline.
func (p *ResponseParser) ParseScoreBreakdown(raw string) *models.ScoreBreakdown {
	jsonStr := extractJSON(raw)

	var breakdown models.ScoreBreakdown
	if err := json.Unmarshal([]byte(jsonStr), &breakdown); err != nil {
		return nil
	}

	return &breakdown
}

func firstGroup(pattern *regexp.Regexp, text string) string {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

// parseTermList splits a matched/missing block into individual terms,
// accepting both comma-separated lines and bullet lists.
func parseTermList(block string) []string {
	var terms []string

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimLeftFunc(line, func(r rune) bool {
			return unicode.IsSpace(r) || r == '-' || r == '*' || r == '•'
		})
		for _, term := range strings.Split(line, ",") {
			term = strings.TrimSpace(term)
			if term != "" && !strings.EqualFold(term, "none") {
				terms = append(terms, term)
			}
		}
	}

	return terms
}

// extractJSON pulls a JSON object or array out of text that may wrap it in
// markdown fences or prose.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
