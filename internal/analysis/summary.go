package analysis

import (
	"sort"
	"strings"

	"github.com/spacesedan/tubesense/internal/models"
)

const (
	// ExcerptLength caps sample comment text; excerpts are display-only.
	ExcerptLength = 100

	// SummarySampleCap is used for standalone summaries, APISampleCap for
	// the interactive API response.
	SummarySampleCap = 3
	APISampleCap     = 5

	TopCommentsCap = 5
)

// BuildSummary tallies sentiment and language distributions over an enriched
// batch and collects up to sampleCap excerpts per sentiment label in
// pipeline-output order.
func BuildSummary(comments []models.EnrichedComment, sampleCap int) models.AnalysisSummary {
	summary := models.AnalysisSummary{
		TotalComments:         len(comments),
		SentimentDistribution: make(map[string]int),
		LanguageDistribution:  make(map[string]int),
		SampleComments: map[string][]string{
			"positive": {},
			"negative": {},
			"neutral":  {},
		},
	}

	for _, comment := range comments {
		summary.SentimentDistribution[comment.Sentiment]++
		summary.LanguageDistribution[comment.OriginalLanguage]++
		if comment.IsToxic {
			summary.ToxicCommentsCount++
		}

		label := strings.ToLower(comment.Sentiment)
		if len(summary.SampleComments[label]) < sampleCap {
			summary.SampleComments[label] = append(summary.SampleComments[label], Excerpt(comment.Text))
		}
	}

	return summary
}

// Excerpt truncates comment text for display, marking the cut with an
// ellipsis. Classification always runs on the full text, never on excerpts.
func Excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= ExcerptLength {
		return text
	}
	return string(runes[:ExcerptLength]) + "..."
}

// TopComments returns the n most extreme comments of a sentiment label:
// highest polarity first for Positive, lowest first for Negative. The sort
// is stable, so ties keep pipeline-output order.
func TopComments(comments []models.EnrichedComment, label string, n int) []models.EnrichedComment {
	var filtered []models.EnrichedComment
	for _, comment := range comments {
		if comment.Sentiment == label {
			filtered = append(filtered, comment)
		}
	}

	if label == models.SentimentNegative {
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Polarity < filtered[j].Polarity
		})
	} else {
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Polarity > filtered[j].Polarity
		})
	}

	if len(filtered) > n {
		filtered = filtered[:n]
	}
	return filtered
}

// BuildDashboard assembles the chart-ready view of a run.
func BuildDashboard(comments []models.EnrichedComment) models.DashboardData {
	dashboard := models.DashboardData{
		SentimentDistribution: make(map[string]int),
		LanguageDistribution:  make(map[string]int),
	}

	for _, comment := range comments {
		dashboard.SentimentDistribution[comment.Sentiment]++
		dashboard.LanguageDistribution[comment.OriginalLanguage]++
	}

	dashboard.TopPositive = TopComments(comments, models.SentimentPositive, TopCommentsCap)
	dashboard.TopNegative = TopComments(comments, models.SentimentNegative, TopCommentsCap)

	return dashboard
}
