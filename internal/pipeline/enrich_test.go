package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/tubesense/internal/models"
)

type stubTranslator struct {
	result string
	err    error
	calls  int
}

func (s *stubTranslator) Translate(ctx context.Context, text string) (string, error) {
	s.calls++
	return s.result, s.err
}

func TestEnrichComments_MixedBatch(t *testing.T) {
	comments := []models.RawComment{
		{ID: "c1", Text: "I absolutely love this song, it makes me so happy every time"},
		{ID: "c2", Text: "Amazing video, wonderful editing, great work"},
		{ID: "c3", Text: "This is awful and I hate everything about it"},
		{ID: "c4", Text: "Me encanta esta canción, la música española siempre me hace muy feliz cuando la escucho"},
		{ID: "c5", Text: ""},
	}

	// The stub stands in for the translate backend and returns flat,
	// sentiment-free English for the one non-English comment.
	stub := &stubTranslator{result: "the video shows a song being played"}

	enricher := NewEnricher(stub)
	enriched := enricher.EnrichComments(context.Background(), comments)

	require.Len(t, enriched, len(comments))

	// Output order mirrors input order.
	for i, comment := range enriched {
		assert.Equal(t, comments[i].ID, comment.ID)
	}

	totals := map[string]int{}
	for _, comment := range enriched {
		totals[comment.Sentiment]++
	}
	assert.Equal(t, 2, totals[models.SentimentPositive])
	assert.Equal(t, 1, totals[models.SentimentNegative])
	assert.Equal(t, 2, totals[models.SentimentNeutral])

	// English comments keep their text and never hit the backend.
	assert.Equal(t, comments[0].Text, enriched[0].TranslatedText)
	assert.Equal(t, models.LanguageEnglish, enriched[0].OriginalLanguage)

	// The Spanish comment was translated and classified on the translation.
	assert.Equal(t, 1, stub.calls)
	assert.NotEqual(t, models.LanguageEnglish, enriched[3].OriginalLanguage)
	assert.Equal(t, stub.result, enriched[3].TranslatedText)
	assert.Equal(t, models.SentimentNeutral, enriched[3].Sentiment)

	// Empty comment gets safe defaults.
	assert.Equal(t, models.LanguageUnknown, enriched[4].OriginalLanguage)
	assert.Equal(t, models.SentimentNeutral, enriched[4].Sentiment)
	assert.Zero(t, enriched[4].Polarity)
	assert.False(t, enriched[4].IsToxic)
}

func TestEnrichComments_TranslatorFailureDoesNotAbort(t *testing.T) {
	comments := []models.RawComment{
		{ID: "c1", Text: "Me encanta esta canción, la música española siempre me hace muy feliz cuando la escucho"},
		{ID: "c2", Text: "Great video, I really enjoyed this"},
	}

	stub := &stubTranslator{err: errors.New("backend down")}

	enricher := NewEnricher(stub)
	enriched := enricher.EnrichComments(context.Background(), comments)

	require.Len(t, enriched, 2)

	// Translation failure falls back to the original text; the batch and
	// the English comment behind it are unaffected.
	assert.Equal(t, comments[0].Text, enriched[0].TranslatedText)
	assert.Equal(t, models.SentimentPositive, enriched[1].Sentiment)
}

func TestEnrichComments_EmptyBatch(t *testing.T) {
	enricher := NewEnricher(&stubTranslator{})
	enriched := enricher.EnrichComments(context.Background(), nil)

	assert.NotNil(t, enriched)
	assert.Empty(t, enriched)
}

func TestEnrichComments_ToxicityOnTranslatedText(t *testing.T) {
	comments := []models.RawComment{
		{ID: "c1", Text: "Eres un completo idiota y lo sabes perfectamente bien amigo mío"},
	}

	stub := &stubTranslator{result: "you are a complete idiot and you know it"}

	enricher := NewEnricher(stub)
	enriched := enricher.EnrichComments(context.Background(), comments)

	require.Len(t, enriched, 1)
	assert.True(t, enriched[0].IsToxic)
}
