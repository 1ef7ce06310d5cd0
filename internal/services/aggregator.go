package services

import (
	"math"
	"sort"

	"hirely/resume-matcher/internal/models"
)

// Aggregator combines per-backend scores into an average and ranks resumes
// against one job description.
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Average is the arithmetic mean of the available scores, rounded to two
// decimal places. Backends marked unavailable are excluded instead of
// being folded in as zeros, so a failed backend cannot silently drag the
// aggregate down. No available scores means 0.
func (a *Aggregator) Average(scores []models.BackendScore) float64 {
	sum := 0
	count := 0
	for _, s := range scores {
		if !s.Available {
			continue
		}
		sum += s.Score
		count++
	}

	if count == 0 {
		return 0
	}

	return math.Round(float64(sum)/float64(count)*100) / 100
}

// Rank orders analyses by average score, highest first. The sort is stable
// so equal scores keep their input (upload) order.
func (a *Aggregator) Rank(results []models.Analysis) []models.Analysis {
	ranked := make([]models.Analysis, len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageScore > ranked[j].AverageScore
	})

	return ranked
}

// BestMatch picks the analysis with the strictly maximum average score.
// On an exact tie the first occurrence in input order wins; the strict >
// comparison makes that rule explicit rather than incidental.
func (a *Aggregator) BestMatch(results []models.Analysis) (*models.Analysis, bool) {
	if len(results) == 0 {
		return nil, false
	}

	best := 0
	for i := 1; i < len(results); i++ {
		if results[i].AverageScore > results[best].AverageScore {
			best = i
		}
	}

	return &results[best], true
}
