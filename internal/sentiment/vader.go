package sentiment

import (
	"html"
	"log/slog"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/tubesense/internal/models"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

func RemoveLinks(input string) string {
	linkPattern := regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text

	urlPattern := regexp.MustCompile(`https?://\S+|www\.\S+`)
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// FlattenCommentText reduces a comment to plain scoreable text. YouTube
// returns textDisplay with HTML entities and tags, and commenters use
// markdown-ish formatting, both of which throw the lexical scorer off.
func FlattenCommentText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := htmlTagPattern.ReplaceAllString(string(output), " ")
	plain = html.UnescapeString(plain)
	plain = RemoveLinks(plain)

	return strings.Join(strings.Fields(plain), " ")
}

// LabelForPolarity maps a polarity score in [-1, 1] to a sentiment label.
// Thresholds are fixed: > 0.1 Positive, < -0.1 Negative, Neutral otherwise.
func LabelForPolarity(polarity float64) string {
	switch {
	case polarity > 0.1:
		return models.SentimentPositive
	case polarity < -0.1:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// AnalyzeSentiment scores text with VADER and labels it. It never fails:
// empty or unscoreable text comes back as Neutral with polarity 0.
func AnalyzeSentiment(text string) (result models.SentimentResult) {
	result = models.SentimentResult{Sentiment: models.SentimentNeutral, Polarity: 0.0}

	defer func() {
		if r := recover(); r != nil {
			slog.Warn("[Sentiment] Scorer failed, defaulting to neutral",
				slog.Any("panic", r))
			result = models.SentimentResult{Sentiment: models.SentimentNeutral, Polarity: 0.0}
		}
	}()

	plainText := FlattenCommentText(text)
	if plainText == "" {
		return result
	}

	score := analyzer.PolarityScores(plainText).Compound

	return models.SentimentResult{
		Sentiment: LabelForPolarity(score),
		Polarity:  score,
	}
}
