package models

// AnalysisSummary aggregates one enrichment run. It is the only artifact
// handed to the persistence and assistant boundaries.
type AnalysisSummary struct {
	TotalComments         int                 `json:"total_comments"`
	SentimentDistribution map[string]int      `json:"sentiment_distribution"`
	LanguageDistribution  map[string]int      `json:"language_distribution"`
	ToxicCommentsCount    int                 `json:"toxic_comments_count"`
	SampleComments        map[string][]string `json:"sample_comments"`
}

// DashboardData is the chart-ready view of a run: raw distributions plus the
// most extreme comments per polarity direction.
type DashboardData struct {
	SentimentDistribution map[string]int    `json:"sentiment_distribution"`
	LanguageDistribution  map[string]int    `json:"language_distribution"`
	TopPositive           []EnrichedComment `json:"top_positive"`
	TopNegative           []EnrichedComment `json:"top_negative"`
}
