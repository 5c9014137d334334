package models

import "time"

const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"

	LanguageEnglish = "en"
	LanguageUnknown = "unknown"
)

// RawComment is a single top-level comment as returned by the YouTube Data API.
type RawComment struct {
	ID          string    `json:"id"`
	Author      string    `json:"author"`
	Text        string    `json:"text"`
	PublishedAt time.Time `json:"published_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	LikeCount   int       `json:"like_count"`
}

// EnrichedComment is a RawComment with classification results attached.
// TranslatedText equals Text when the comment is already English or
// translation was unavailable.
type EnrichedComment struct {
	RawComment
	OriginalLanguage string  `json:"original_language"`
	TranslatedText   string  `json:"translated_text"`
	Sentiment        string  `json:"sentiment"`
	Polarity         float64 `json:"polarity"`
	IsToxic          bool    `json:"is_toxic"`
}

type SentimentResult struct {
	Sentiment string  `json:"sentiment"`
	Polarity  float64 `json:"polarity"`
}
