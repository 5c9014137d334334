package language

import (
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"

	"github.com/spacesedan/tubesense/internal/models"
)

// DetectLanguage returns the ISO-639-1 code of the dominant language of text,
// or "unknown" when there is nothing to detect. Pure emoji/symbol input is
// filtered out before the statistical detector runs, since it destabilizes
// trigram profiles. Never fails.
func DetectLanguage(text string) string {
	if strings.TrimSpace(text) == "" {
		return models.LanguageUnknown
	}

	if !containsAlphanumeric(text) {
		return models.LanguageUnknown
	}

	info := whatlanggo.Detect(text)
	iso := info.Lang.Iso6391()
	if iso == "" {
		return models.LanguageUnknown
	}

	return iso
}

func containsAlphanumeric(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
