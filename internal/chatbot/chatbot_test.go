package chatbot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/tubesense/internal/models"
)

func TestBuildContext(t *testing.T) {
	summary := &models.AnalysisSummary{
		TotalComments: 42,
		SentimentDistribution: map[string]int{
			models.SentimentPositive: 30,
			models.SentimentNegative: 5,
			models.SentimentNeutral:  7,
		},
		LanguageDistribution: map[string]int{
			"en": 40,
			"es": 2,
		},
		ToxicCommentsCount: 3,
		SampleComments: map[string][]string{
			"positive": {"love this", "so good"},
			"negative": {"hated it"},
			"neutral":  {},
		},
	}

	got := BuildContext(summary)

	assert.Contains(t, got, "Total Comments Analyzed: 42")
	assert.Contains(t, got, "Positive: 30")
	assert.Contains(t, got, "Negative: 5")
	assert.Contains(t, got, "en: 40")
	assert.Contains(t, got, "Toxic Comments: 3")
	assert.Contains(t, got, "Positive Comments:\n  1. love this\n  2. so good")
	assert.Contains(t, got, "Negative Comments:\n  1. hated it")
	// Empty sample buckets are omitted entirely.
	assert.NotContains(t, got, "Neutral Comments:")
}

func TestBuildContext_SortedDistributions(t *testing.T) {
	summary := &models.AnalysisSummary{
		TotalComments: 3,
		SentimentDistribution: map[string]int{
			models.SentimentNeutral:  1,
			models.SentimentPositive: 1,
			models.SentimentNegative: 1,
		},
		LanguageDistribution: map[string]int{"fr": 1, "de": 1, "en": 1},
		SampleComments:       map[string][]string{},
	}

	got := BuildContext(summary)

	// Map iteration order is random; the rendered block must not be.
	assert.Less(t, strings.Index(got, "de: 1"), strings.Index(got, "en: 1"))
	assert.Less(t, strings.Index(got, "en: 1"), strings.Index(got, "fr: 1"))
	assert.Less(t, strings.Index(got, "Negative: 1"), strings.Index(got, "Neutral: 1"))
	assert.Less(t, strings.Index(got, "Neutral: 1"), strings.Index(got, "Positive: 1"))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Positive", capitalize("positive"))
	assert.Equal(t, "A", capitalize("a"))
	assert.Equal(t, "", capitalize(""))
}
