package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirely/resume-matcher/internal/models"
)

func TestAverage(t *testing.T) {
	aggregator := NewAggregator()

	tests := []struct {
		name     string
		scores   []models.BackendScore
		expected float64
	}{
		{
			"two backends",
			[]models.BackendScore{
				{Backend: "A", Score: 80, Available: true},
				{Backend: "B", Score: 95, Available: true},
			},
			87.5,
		},
		{
			"rounding to two decimals",
			[]models.BackendScore{
				{Backend: "A", Score: 70, Available: true},
				{Backend: "B", Score: 75, Available: true},
				{Backend: "C", Score: 90, Available: true},
			},
			78.33,
		},
		{
			"unavailable backend excluded",
			[]models.BackendScore{
				{Backend: "A", Score: 80, Available: true},
				{Backend: "B", Score: 0, Available: false},
			},
			80,
		},
		{
			"all unavailable",
			[]models.BackendScore{
				{Backend: "A", Score: 0, Available: false},
				{Backend: "B", Score: 0, Available: false},
			},
			0,
		},
		{
			"no scores",
			nil,
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, aggregator.Average(tt.scores))
		})
	}
}

func TestBestMatchTieBreak(t *testing.T) {
	aggregator := NewAggregator()

	results := []models.Analysis{
		{CandidateName: "First", AverageScore: 85},
		{CandidateName: "Second", AverageScore: 85},
		{CandidateName: "Third", AverageScore: 70},
	}

	best, ok := aggregator.BestMatch(results)
	require.True(t, ok)
	// Exact tie: first in upload order wins.
	assert.Equal(t, "First", best.CandidateName)
}

func TestBestMatchStrictMaximum(t *testing.T) {
	aggregator := NewAggregator()

	results := []models.Analysis{
		{CandidateName: "Low", AverageScore: 40},
		{CandidateName: "High", AverageScore: 92.5},
		{CandidateName: "Mid", AverageScore: 60},
	}

	best, ok := aggregator.BestMatch(results)
	require.True(t, ok)
	assert.Equal(t, "High", best.CandidateName)
}

func TestBestMatchEmpty(t *testing.T) {
	aggregator := NewAggregator()

	best, ok := aggregator.BestMatch(nil)
	assert.False(t, ok)
	assert.Nil(t, best)
}

func TestRankOrdersByScoreKeepingInputOrderOnTies(t *testing.T) {
	aggregator := NewAggregator()

	results := []models.Analysis{
		{CandidateName: "A", AverageScore: 50},
		{CandidateName: "B", AverageScore: 90},
		{CandidateName: "C", AverageScore: 50},
	}

	ranked := aggregator.Rank(results)

	require.Len(t, ranked, 3)
	assert.Equal(t, "B", ranked[0].CandidateName)
	assert.Equal(t, "A", ranked[1].CandidateName)
	assert.Equal(t, "C", ranked[2].CandidateName)

	// Input slice untouched.
	assert.Equal(t, "A", results[0].CandidateName)
}
