package pipeline

import (
	"context"
	"log/slog"

	"github.com/spacesedan/tubesense/internal/language"
	"github.com/spacesedan/tubesense/internal/models"
	"github.com/spacesedan/tubesense/internal/sentiment"
)

// Enricher runs the per-comment classification stages: language detection,
// translation, sentiment scoring, and toxicity flagging.
type Enricher struct {
	translator language.Translator
}

func NewEnricher(translator language.Translator) *Enricher {
	return &Enricher{translator: translator}
}

// EnrichComments classifies a batch sequentially, preserving input order.
// Every stage is internally fault-tolerant, and each comment is additionally
// isolated: a defect while processing one comment yields safe defaults for
// that comment instead of aborting the batch.
func (e *Enricher) EnrichComments(ctx context.Context, comments []models.RawComment) []models.EnrichedComment {
	enriched := make([]models.EnrichedComment, 0, len(comments))

	for i, comment := range comments {
		if (i+1)%50 == 0 || i+1 == len(comments) {
			slog.Info("[Pipeline] Processing comments",
				slog.Int("done", i+1), slog.Int("total", len(comments)))
		}
		enriched = append(enriched, e.enrichOne(ctx, comment))
	}

	return enriched
}

func (e *Enricher) enrichOne(ctx context.Context, comment models.RawComment) (out models.EnrichedComment) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[Pipeline] Recovered from enrichment failure, using defaults",
				slog.String("comment_id", comment.ID),
				slog.Any("panic", r))
			out = models.EnrichedComment{
				RawComment:       comment,
				OriginalLanguage: models.LanguageUnknown,
				TranslatedText:   comment.Text,
				Sentiment:        models.SentimentNeutral,
				Polarity:         0.0,
				IsToxic:          false,
			}
		}
	}()

	originalLanguage := language.DetectLanguage(comment.Text)

	translatedText := comment.Text
	if originalLanguage != models.LanguageEnglish {
		translatedText = language.TranslateToEnglish(ctx, e.translator, comment.Text, originalLanguage)
	}

	// Sentiment and toxicity both run on the translated text.
	sentimentResult := sentiment.AnalyzeSentiment(translatedText)

	return models.EnrichedComment{
		RawComment:       comment,
		OriginalLanguage: originalLanguage,
		TranslatedText:   translatedText,
		Sentiment:        sentimentResult.Sentiment,
		Polarity:         sentimentResult.Polarity,
		IsToxic:          sentiment.IsToxic(translatedText),
	}
}
