package language

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spacesedan/tubesense/internal/models"
)

// Translator is the translation backend boundary. Implemented by
// clients.TranslateClient; tests substitute stubs.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// TranslateToEnglish converts text to English through the given backend.
// sourceLang may be empty, in which case the language is detected first.
// English and undetectable input is returned unchanged without a network
// call, and any backend failure or empty result falls back to the original
// text. Never returns empty output for non-empty input.
func TranslateToEnglish(ctx context.Context, backend Translator, text, sourceLang string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	if sourceLang == "" {
		sourceLang = DetectLanguage(text)
	}

	if sourceLang == models.LanguageEnglish || sourceLang == models.LanguageUnknown {
		return text
	}

	translated, err := backend.Translate(ctx, text)
	if err != nil {
		slog.Warn("[Translate] Translation failed, keeping original text",
			slog.String("source_lang", sourceLang),
			slog.String("error", err.Error()))
		return text
	}

	if translated == "" {
		return text
	}

	return translated
}
